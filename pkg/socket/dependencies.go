package socket

import (
	"net"
	"strings"
	"time"
)

// Dependencies contains injectable network primitives for testing and
// customization. All fields are optional and fall back to the net
// package when nil.
type Dependencies struct {
	Dial         DialFunc
	Listen       ListenFunc
	ListenPacket ListenPacketFunc
}

// DialFunc establishes an outbound connection. laddr may be empty when
// the socket is not bound locally. A zero timeout blocks indefinitely.
type DialFunc func(network, laddr, raddr string, timeout time.Duration) (net.Conn, error)

// ListenFunc creates a stream listener.
type ListenFunc func(network, addr string) (net.Listener, error)

// ListenPacketFunc creates a datagram listener.
type ListenPacketFunc func(network, addr string) (net.PacketConn, error)

// getDialFunc returns the dial function from dependencies, or a default
// built on net.Dialer with keep-alive enabled for TCP.
func getDialFunc(deps *Dependencies) DialFunc {
	if deps != nil && deps.Dial != nil {
		return deps.Dial
	}
	return func(network, laddr, raddr string, timeout time.Duration) (net.Conn, error) {
		d := net.Dialer{Timeout: timeout}
		if laddr != "" {
			local, err := resolveLocalAddr(network, laddr)
			if err != nil {
				return nil, err
			}
			d.LocalAddr = local
		}

		conn, err := d.Dial(network, raddr)
		if err != nil {
			return nil, err
		}
		if tc, ok := conn.(*net.TCPConn); ok {
			tc.SetKeepAlive(true)
		}
		return conn, nil
	}
}

func resolveLocalAddr(network, laddr string) (net.Addr, error) {
	if strings.HasPrefix(network, "udp") {
		return net.ResolveUDPAddr(network, laddr)
	}
	return net.ResolveTCPAddr(network, laddr)
}

// getListenFunc returns the listen function from dependencies, or
// net.Listen.
func getListenFunc(deps *Dependencies) ListenFunc {
	if deps != nil && deps.Listen != nil {
		return deps.Listen
	}
	return net.Listen
}

// getListenPacketFunc returns the packet listen function from
// dependencies, or net.ListenPacket.
func getListenPacketFunc(deps *Dependencies) ListenPacketFunc {
	if deps != nil && deps.ListenPacket != nil {
		return deps.ListenPacket
	}
	return net.ListenPacket
}
