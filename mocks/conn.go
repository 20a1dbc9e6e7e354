package mocks

import "net"

// Conn wraps a net.Conn and overrides its addresses, so in-memory pipes
// can impersonate real network endpoints.
type Conn struct {
	net.Conn
	Local  net.Addr
	Remote net.Addr
}

// LocalAddr returns the overridden local address if set.
func (c *Conn) LocalAddr() net.Addr {
	if c.Local != nil {
		return c.Local
	}
	return c.Conn.LocalAddr()
}

// RemoteAddr returns the overridden remote address if set.
func (c *Conn) RemoteAddr() net.Addr {
	if c.Remote != nil {
		return c.Remote
	}
	return c.Conn.RemoteAddr()
}

var _ net.Conn = (*Conn)(nil)
