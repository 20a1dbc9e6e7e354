package socket

import (
	"fmt"
	"time"

	"dominicbreuker/gosock/pkg/format"
)

// checkPort guards the 16-bit unsigned port domain.
func checkPort(port int) error {
	if port < 0 || port > 65535 {
		return fmt.Errorf("port %d out of range [0, 65535]", port)
	}
	return nil
}

// Connect issues a single synchronous connection attempt to host:port,
// resolving host under the handle's address family. Valid from the
// Unbound and Bound states; on success the handle is Connected. The
// attempt is subject to the handle's timeout.
func (s *Socket) Connect(host string, port int) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.state != Unbound && s.state != Bound {
		return fmt.Errorf("cannot connect a %s socket", s.state)
	}
	if err := checkPort(port); err != nil {
		return err
	}

	netw := network(s.proto, s.family)
	raddr := format.Addr(host, port)

	// A bound handle dials from its reserved local address. The
	// reservation endpoint must be released first since the platform
	// will not share the port with the outbound socket; a failed dial
	// re-establishes it so the handle stays coherently Bound.
	var laddr string
	if s.state == Bound {
		laddr = s.laddr
		s.releaseReservation()
	}

	conn, err := s.dialFn(netw, laddr, raddr, s.timeout.connectTimeout())
	if err != nil {
		if laddr != "" {
			s.restoreReservation(netw, laddr)
		}
		return fmt.Errorf("dial(%s, %s): %w", netw, raddr, err)
	}

	s.conn = conn
	s.state = Connected
	return nil
}

// connectTimeout converts the three-way timeout domain into a dialer
// timeout. Forever means no limit. Immediate degrades to the shortest
// wait the dialer supports, since a true non-blocking connect cannot
// complete in one step.
func (t Timeout) connectTimeout() time.Duration {
	switch {
	case t < 0:
		return 0
	case t == 0:
		return time.Microsecond
	default:
		return t.Duration()
	}
}

// restoreReservation takes the local address back after a failed dial
// so the handle keeps the Bound state it had before Connect. When the
// address cannot be retaken (another socket grabbed it in the window)
// the handle falls back to Unbound with no local address.
func (s *Socket) restoreReservation(netw, laddr string) {
	if s.proto == UDP {
		if pc, err := s.listenPktFn(netw, laddr); err == nil {
			s.pc = pc
			return
		}
	} else {
		if ln, err := s.listenFn(netw, laddr); err == nil {
			s.ln = ln
			return
		}
	}
	s.state = Unbound
	s.laddr = ""
}

func (s *Socket) releaseReservation() {
	if s.ln != nil {
		_ = s.ln.Close()
		s.ln = nil
	}
	if s.pc != nil {
		_ = s.pc.Close()
		s.pc = nil
	}
}

// Bind reserves host:port as the handle's local address. Valid only from
// the Unbound state. The wildcard host "*" (or the empty string) binds
// all interfaces. Datagram sockets open their packet endpoint here;
// stream sockets reserve the address with a listening endpoint because
// the platform offers no bind-without-listen for them (Listen later only
// records the backlog).
func (s *Socket) Bind(host string, port int) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.state != Unbound {
		return fmt.Errorf("cannot bind a %s socket", s.state)
	}
	if err := checkPort(port); err != nil {
		return err
	}

	if host == "*" {
		host = "" // all interfaces
	}
	netw := network(s.proto, s.family)
	addr := format.Addr(host, port)

	if s.proto == UDP {
		pc, err := s.listenPktFn(netw, addr)
		if err != nil {
			return fmt.Errorf("listen(%s, %s): %w", netw, addr, err)
		}
		s.pc = pc
		s.laddr = pc.LocalAddr().String()
	} else {
		ln, err := s.listenFn(netw, addr)
		if err != nil {
			return fmt.Errorf("listen(%s, %s): %w", netw, addr, err)
		}
		s.ln = ln
		s.laddr = ln.Addr().String()
	}

	s.state = Bound
	return nil
}

// Listen marks the socket as willing to accept connections. Valid only
// for stream sockets in the Bound state; it does not block. A negative
// backlog is clamped to zero. The platform manages the actual accept
// queue; the value is recorded for introspection.
func (s *Socket) Listen(backlog int) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.proto != TCP {
		return fmt.Errorf("cannot listen on a %s socket", s.proto)
	}
	if s.state != Bound || s.ln == nil {
		return fmt.Errorf("cannot listen on a %s socket", s.state)
	}

	if backlog < 0 {
		backlog = 0
	}
	s.backlog = backlog
	s.state = Listening
	return nil
}

// Backlog returns the listen queue limit recorded by Listen.
func (s *Socket) Backlog() int {
	return s.backlog
}

// deadlineListener is the subset of listeners supporting accept
// deadlines (net.TCPListener does).
type deadlineListener interface {
	SetDeadline(t time.Time) error
}

// Accept blocks until a connection arrives or the handle's timeout
// expires, then returns a fresh Connected handle sharing this handle's
// protocol and family. The listening handle itself stays Listening. On
// failure no handle is returned.
func (s *Socket) Accept() (*Socket, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if s.state != Listening || s.ln == nil {
		return nil, fmt.Errorf("cannot accept on a %s socket", s.state)
	}

	if dl, ok := s.ln.(deadlineListener); ok {
		if err := dl.SetDeadline(s.timeout.deadline(time.Now())); err != nil {
			return nil, fmt.Errorf("SetDeadline(): %w", err)
		}
	}

	conn, err := s.ln.Accept()
	if err != nil {
		return nil, fmt.Errorf("Accept(): %w", err)
	}

	// Buffering is wired by newAccepted only now that the accept
	// succeeded; a failed accept must not leave a half-initialized
	// handle behind.
	return newAccepted(s, conn), nil
}
