package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"dominicbreuker/gosock/cmd/connect"
	"dominicbreuker/gosock/cmd/hostname"
	"dominicbreuker/gosock/cmd/listen"
	resolvecmd "dominicbreuker/gosock/cmd/resolve"
	"dominicbreuker/gosock/cmd/version"
)

func main() {
	app := &cli.Command{
		Name:  "gosock",
		Usage: "socket toolbox for TCP and UDP connections",
		Commands: []*cli.Command{
			connect.GetCommand(),
			listen.GetCommand(),
			resolvecmd.GetCommand(),
			hostname.GetCommand(),
			version.GetCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Printf("[!] Error: %s\n", err)
	}
}
