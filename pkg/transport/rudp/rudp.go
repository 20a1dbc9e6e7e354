// Package rudp layers reliable, ordered byte streams over a datagram
// socket using the KCP protocol. It is the optional upgrade path for udp
// endpoints: both sides keep their packet socket and exchange KCP frames
// through it.
package rudp

import (
	"fmt"
	"net"

	kcp "github.com/xtaci/kcp-go/v5"
)

// tune applies the stream configuration used on both ends:
// low-latency mode, stream semantics, and a generous window.
func tune(conn *kcp.UDPSession) {
	// SetNoDelay(nodelay, interval, resend, nc):
	// nodelay 1 = enable, interval = update interval in ms,
	// resend 2 = fast resend after 2 crossed ACKs, nc 1 = no congestion control
	conn.SetNoDelay(1, 10, 2, 1)
	conn.SetStreamMode(true)
	conn.SetWindowSize(1024, 1024)
}

// Dial establishes a KCP session to raddr over the given packet
// connection. The packet connection stays owned by the caller.
func Dial(pc net.PacketConn, raddr string) (net.Conn, error) {
	// block cipher nil (no encryption), no FEC shards
	conn, err := kcp.NewConn(raddr, nil, 0, 0, pc)
	if err != nil {
		return nil, fmt.Errorf("kcp.NewConn(%s): %w", raddr, err)
	}

	tune(conn)
	return conn, nil
}

// Listener accepts KCP sessions arriving on a packet connection.
type Listener struct {
	kl *kcp.Listener
}

// Listen wraps a packet connection into a KCP session listener.
func Listen(pc net.PacketConn) (*Listener, error) {
	kl, err := kcp.ServeConn(nil, 0, 0, pc)
	if err != nil {
		return nil, fmt.Errorf("kcp.ServeConn(): %w", err)
	}
	return &Listener{kl: kl}, nil
}

// Accept blocks until the next KCP session arrives.
func (l *Listener) Accept() (net.Conn, error) {
	conn, err := l.kl.AcceptKCP()
	if err != nil {
		return nil, fmt.Errorf("AcceptKCP(): %w", err)
	}

	tune(conn)
	return conn, nil
}

// Close stops the listener. The underlying packet connection is closed
// with it.
func (l *Listener) Close() error {
	return l.kl.Close()
}
