// Package connect implements the CLI command that connects to a remote
// endpoint and pipes standard I/O to the connection.
package connect

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"dominicbreuker/gosock/cmd/shared"
	"dominicbreuker/gosock/pkg/format"
	"dominicbreuker/gosock/pkg/log"
	"dominicbreuker/gosock/pkg/pipeio"
	"dominicbreuker/gosock/pkg/socket"
	"dominicbreuker/gosock/pkg/transport/rudp"
)

// GetCommand returns the connect command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:        "connect",
		Usage:       "Connect to a remote endpoint and pipe stdio to it",
		ArgsUsage:   shared.GetArgsUsage(),
		Description: shared.GetBaseDescription(),
		Action:      run,
		Flags:       shared.GetCommonFlags(),
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	endpoint := cmd.Args().First()
	if endpoint == "" {
		return fmt.Errorf("missing endpoint argument, example: tcp://localhost:1234")
	}

	proto, family, host, port, err := shared.ParseEndpoint(endpoint)
	if err != nil {
		return err
	}

	reliable := cmd.Bool(shared.ReliableFlag)
	if reliable && proto != socket.UDP {
		return fmt.Errorf("'--reliable' works on udp endpoints only")
	}

	logger := log.NewLogger(cmd.Bool(shared.VerboseFlag))
	timeout := shared.TimeoutFromMillis(int64(cmd.Int(shared.TimeoutFlag)))

	sock, err := socket.New(proto, family, nil)
	if err != nil {
		return fmt.Errorf("socket.New(%s, %s): %w", proto, family, err)
	}
	defer sock.Close()

	if err := sock.SetTimeout(timeout); err != nil {
		return fmt.Errorf("SetTimeout(%s): %w", timeout, err)
	}

	log.InfoMsg("Connecting to %s\n", format.Addr(host, port))

	rwc, err := open(sock, reliable, host, port)
	if err != nil {
		return err
	}

	logger.VerboseMsg("Connection established\n")

	stdio := pipeio.NewStdio()
	if stdio.InteractiveInput() {
		logger.VerboseMsg("Reading from a terminal, close input with ^D\n")
	}

	pipeio.Pipe(stdio, rwc, func(err error) {
		logger.VerboseMsg("Piping stdio: %s\n", err)
	})

	return nil
}

// open establishes the byte stream: a plain connect, or a KCP session
// over a bound packet socket when the reliable upgrade is requested.
func open(sock *socket.Socket, reliable bool, host string, port int) (io.ReadWriteCloser, error) {
	if reliable {
		if err := sock.Bind("*", 0); err != nil {
			return nil, fmt.Errorf("Bind(*, 0): %w", err)
		}
		pc, err := sock.PacketConn()
		if err != nil {
			return nil, fmt.Errorf("PacketConn(): %w", err)
		}
		conn, err := rudp.Dial(pc, format.Addr(host, port))
		if err != nil {
			return nil, fmt.Errorf("rudp.Dial(%s): %w", format.Addr(host, port), err)
		}
		return conn, nil
	}

	if err := sock.Connect(host, port); err != nil {
		return nil, fmt.Errorf("Connect(%s, %d): %w", host, port, err)
	}
	return sock.IO(), nil
}
