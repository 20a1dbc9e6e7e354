// Package resolve implements the CLI command for forward and reverse
// name resolution.
package resolve

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	resolver "dominicbreuker/gosock/pkg/resolve"
	"dominicbreuker/gosock/pkg/socket"
)

const categoryResolve = "resolve"

const familyFlag = "family"
const reverseFlag = "reverse"

// GetCommand returns the resolve command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Resolve a host name to an address, or the reverse",
		ArgsUsage: "host-or-address",
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     familyFlag,
				Aliases:  []string{"f"},
				Usage:    "Address family: inet, inet6 or unspec",
				Category: categoryResolve,
				Value:    "inet",
				Required: false,
			},
			&cli.BoolFlag{
				Name:     reverseFlag,
				Aliases:  []string{"x"},
				Usage:    "Reverse lookup: resolve an IP address to its host name",
				Category: categoryResolve,
				Value:    false,
				Required: false,
			},
		},
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	arg := cmd.Args().First()
	if arg == "" {
		return fmt.Errorf("missing host or address argument")
	}

	family, err := socket.ParseFamily(cmd.String(familyFlag))
	if err != nil {
		return err
	}

	var result string
	if cmd.Bool(reverseFlag) {
		result, err = resolver.AddrToHost(ctx, arg, family)
	} else {
		result, err = resolver.HostToAddr(ctx, arg, family)
	}
	if err != nil {
		return fmt.Errorf("resolving %s: %w", arg, err)
	}

	fmt.Println(result)
	return nil
}
