// Package hostname implements the CLI command printing the local
// machine name.
package hostname

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"dominicbreuker/gosock/pkg/resolve"
)

// GetCommand returns the hostname command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:   "hostname",
		Usage:  "Print the name of the local machine",
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	name, err := resolve.Hostname()
	if err != nil {
		return fmt.Errorf("resolve.Hostname(): %w", err)
	}

	fmt.Println(name)
	return nil
}
