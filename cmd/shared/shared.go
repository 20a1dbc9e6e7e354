// Package shared provides common CLI flag definitions and utility
// functions used across gosock's command-line interface.
package shared

import (
	"strings"

	"github.com/urfave/cli/v3"

	"dominicbreuker/gosock/pkg/socket"
)

const categoryCommon = "common"

// TimeoutFlag is the name of the flag to specify the operation timeout
// in milliseconds.
const TimeoutFlag = "timeout"

// VerboseFlag is the name of the flag to enable verbose logging.
const VerboseFlag = "verbose"

// ReliableFlag is the name of the flag to upgrade udp endpoints to
// reliable KCP streams.
const ReliableFlag = "reliable"

// GetBaseDescription returns the base description text for endpoint
// specifications used in CLI commands.
func GetBaseDescription() string {
	return strings.Join([]string{
		"Specify the endpoint like this: tcp://127.0.0.1:123 (supports tcp|tcp4|tcp6|udp|udp4|udp6)",
		"You can omit the host (or use *) when listening to bind to all interfaces.",
	}, "\n")
}

// GetArgsUsage returns the arguments usage string for CLI commands.
func GetArgsUsage() string {
	return "endpoint"
}

// GetCommonFlags returns the CLI flags shared by the connect and listen
// commands.
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     TimeoutFlag,
			Aliases:  []string{"t"},
			Usage:    "Operation timeout in milliseconds, 0 for non-blocking, negative to wait forever",
			Category: categoryCommon,
			Value:    -1,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose error logging",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     ReliableFlag,
			Aliases:  []string{"r"},
			Usage:    "Layer reliable KCP streams over udp endpoints",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
	}
}

// TimeoutFromMillis maps the CLI timeout flag to the socket timeout
// domain: negative waits forever, zero never blocks, positive is a
// duration.
func TimeoutFromMillis(ms int64) socket.Timeout {
	switch {
	case ms < 0:
		return socket.Forever
	case ms == 0:
		return socket.Immediate
	default:
		return socket.Timeout(ms * 1000)
	}
}
