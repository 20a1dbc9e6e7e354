package socket

import (
	"fmt"
	"net"
	"strings"
)

// AddrSide selects which of a socket's two addresses to inspect.
type AddrSide int

const (
	// Remote is the peer's address. This is the default side.
	Remote AddrSide = iota
	// Local is the address the socket is bound to.
	Local
)

var addrSideTokens = map[string]AddrSide{
	"remote": Remote,
	"local":  Local,
}

// String returns the option token for the address side.
func (w AddrSide) String() string {
	switch w {
	case Remote:
		return "remote"
	case Local:
		return "local"
	}
	return fmt.Sprintf("side(%d)", int(w))
}

// ParseAddrSide maps an address-side option token to its constant. The
// empty token selects Remote.
func ParseAddrSide(token string) (AddrSide, error) {
	if token == "" {
		return Remote, nil
	}
	w, ok := addrSideTokens[token]
	if !ok {
		return 0, fmt.Errorf("unknown address side %q (want local or remote)", token)
	}
	return w, nil
}

// LocalAddr returns the socket's local address, or nil when it has none
// yet. Low-level companion to Addr.
func (s *Socket) LocalAddr() net.Addr {
	switch {
	case s.conn != nil:
		return s.conn.LocalAddr()
	case s.pc != nil:
		return s.pc.LocalAddr()
	case s.ln != nil:
		return s.ln.Addr()
	}
	return nil
}

// RemoteAddr returns the peer's address, or nil when the socket is not
// connected.
func (s *Socket) RemoteAddr() net.Addr {
	if s.conn != nil {
		return s.conn.RemoteAddr()
	}
	return nil
}

// Addr returns the IP address of the requested side of the socket and,
// when the name service can resolve one, the associated host name (empty
// otherwise). Requires an open handle with an address on that side.
func (s *Socket) Addr(which AddrSide) (string, string, error) {
	if err := s.checkOpen(); err != nil {
		return "", "", err
	}

	var na net.Addr
	switch which {
	case Local:
		na = s.LocalAddr()
	case Remote:
		na = s.RemoteAddr()
	default:
		return "", "", fmt.Errorf("unknown address side %d", int(which))
	}
	if na == nil {
		return "", "", fmt.Errorf("socket has no %s address", which)
	}

	ip, _, err := net.SplitHostPort(na.String())
	if err != nil {
		return "", "", fmt.Errorf("net.SplitHostPort(%s): %w", na.String(), err)
	}

	// Reverse resolution is best effort, like the name field of a
	// resolved platform address.
	host := ""
	if names, err := net.LookupAddr(ip); err == nil && len(names) > 0 {
		host = strings.TrimSuffix(names[0], ".")
	}

	return ip, host, nil
}
