package socket

import (
	"fmt"
	"net"
	"sync"
)

// Protocol selects the transport protocol of a socket.
type Protocol int

const (
	// TCP is a stream socket. This is the default protocol.
	TCP Protocol = iota
	// UDP is a datagram socket.
	UDP
)

var protocolTokens = map[string]Protocol{
	"tcp": TCP,
	"udp": UDP,
}

// String returns the option token for the protocol.
func (p Protocol) String() string {
	switch p {
	case TCP:
		return "tcp"
	case UDP:
		return "udp"
	}
	return fmt.Sprintf("protocol(%d)", int(p))
}

// ParseProtocol maps a protocol option token to its constant. The empty
// token selects TCP.
func ParseProtocol(token string) (Protocol, error) {
	if token == "" {
		return TCP, nil
	}
	p, ok := protocolTokens[token]
	if !ok {
		return 0, fmt.Errorf("unknown protocol %q (want tcp or udp)", token)
	}
	return p, nil
}

// Family selects the address family of a socket.
type Family int

const (
	// Inet is the IPv4 address family. This is the default family.
	Inet Family = iota
	// Inet6 is the IPv6 address family. Only valid when the platform
	// supports IPv6, see SupportsIPv6.
	Inet6
	// Unspec lets the platform pick an address family.
	Unspec
)

var familyTokens = map[string]Family{
	"inet":   Inet,
	"inet6":  Inet6,
	"unspec": Unspec,
}

// String returns the option token for the family.
func (f Family) String() string {
	switch f {
	case Inet:
		return "inet"
	case Inet6:
		return "inet6"
	case Unspec:
		return "unspec"
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// ParseFamily maps a family option token to its constant. The empty token
// selects Inet. The "inet6" token is rejected when the platform does not
// support IPv6.
func ParseFamily(token string) (Family, error) {
	if token == "" {
		return Inet, nil
	}
	f, ok := familyTokens[token]
	if !ok {
		return 0, fmt.Errorf("unknown family %q (want inet, inet6 or unspec)", token)
	}
	if f == Inet6 && !SupportsIPv6() {
		return 0, fmt.Errorf("family %q is not supported on this platform", token)
	}
	return f, nil
}

// network maps protocol and family to the network string understood by
// the net package.
func network(p Protocol, f Family) string {
	base := "tcp"
	if p == UDP {
		base = "udp"
	}
	switch f {
	case Inet:
		return base + "4"
	case Inet6:
		return base + "6"
	}
	return base
}

// ipNetwork maps a family to the network string used for name resolution.
func ipNetwork(f Family) string {
	switch f {
	case Inet:
		return "ip4"
	case Inet6:
		return "ip6"
	}
	return "ip"
}

var (
	ipv6Once      sync.Once
	ipv6Supported bool
)

// SupportsIPv6 reports whether the platform can open IPv6 sockets. The
// probe binds an ephemeral loopback port once and caches the outcome.
func SupportsIPv6() bool {
	ipv6Once.Do(func() {
		ln, err := net.Listen("tcp6", "[::1]:0")
		if err == nil {
			ln.Close()
			ipv6Supported = true
		}
	})
	return ipv6Supported
}
