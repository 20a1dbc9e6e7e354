// Package listen implements the CLI command that waits for an inbound
// connection and pipes standard I/O to it.
package listen

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"dominicbreuker/gosock/cmd/shared"
	"dominicbreuker/gosock/pkg/log"
	"dominicbreuker/gosock/pkg/pipeio"
	"dominicbreuker/gosock/pkg/socket"
	"dominicbreuker/gosock/pkg/transport/rudp"
)

// backlog for the demo server; connections beyond the first wait here.
const listenBacklog = 5

// GetCommand returns the listen command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:        "listen",
		Usage:       "Listen on an endpoint and pipe stdio to the first connection",
		ArgsUsage:   shared.GetArgsUsage(),
		Description: shared.GetBaseDescription(),
		Action:      run,
		Flags:       shared.GetCommonFlags(),
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	endpoint := cmd.Args().First()
	if endpoint == "" {
		return fmt.Errorf("missing endpoint argument, example: tcp://*:1234")
	}

	proto, family, host, port, err := shared.ParseEndpoint(endpoint)
	if err != nil {
		return err
	}
	if host == "" {
		host = "*"
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

	if err := sock.Bind(host, port); err != nil {
		return fmt.Errorf("Bind(%s, %d): %w", host, port, err)
	}

	log.InfoMsg("Listening on %s\n", sock.LocalAddr())

	rwc, closeConn, err := wait(sock, proto, reliable)
	if err != nil {
		return err
	}
	defer closeConn()

	stdio := pipeio.NewStdio()
	if stdio.InteractiveInput() {
		logger.VerboseMsg("Reading from a terminal, close input with ^D\n")
	}

	pipeio.Pipe(stdio, rwc, func(err error) {
		logger.VerboseMsg("Piping stdio: %s\n", err)
	})

	return nil
}

// wait produces the byte stream of the first peer: an accepted stream
// connection, a KCP session, or the datagram socket itself for plain udp.
func wait(sock *socket.Socket, proto socket.Protocol, reliable bool) (io.ReadWriteCloser, func(), error) {
	switch {
	case reliable:
		pc, err := sock.PacketConn()
		if err != nil {
			return nil, nil, fmt.Errorf("PacketConn(): %w", err)
		}
		l, err := rudp.Listen(pc)
		if err != nil {
			return nil, nil, fmt.Errorf("rudp.Listen(): %w", err)
		}
		conn, err := l.Accept()
		if err != nil {
			l.Close()
			return nil, nil, fmt.Errorf("rudp Accept(): %w", err)
		}
		log.InfoMsg("New connection from %s\n", conn.RemoteAddr())
		return conn, func() { l.Close() }, nil

	case proto == socket.UDP:
		// Plain datagram sockets have no handshake: the bound socket is
		// the stream, receive-only until a peer is known.
		return sock.IO(), func() {}, nil

	default:
		if err := sock.Listen(listenBacklog); err != nil {
			return nil, nil, fmt.Errorf("Listen(%d): %w", listenBacklog, err)
		}
		client, err := sock.Accept()
		if err != nil {
			return nil, nil, fmt.Errorf("Accept(): %w", err)
		}
		if ip, name, err := client.Addr(socket.Remote); err == nil {
			if name != "" {
				log.InfoMsg("New connection from %s (%s)\n", ip, name)
			} else {
				log.InfoMsg("New connection from %s\n", ip)
			}
		}
		return client.IO(), func() { client.Close() }, nil
	}
}
