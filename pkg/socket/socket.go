// Package socket provides an opaque socket handle with a deterministic
// lifecycle on top of the platform's TCP and UDP primitives. A handle is
// created with New, driven through Connect/Bind/Listen/Accept, read and
// written through an attached buffered I/O engine, and torn down exactly
// once by Close (with a finalizer as safety net for abandoned handles).
//
// Connect, Accept, Read and Write are synchronous and may suspend the
// calling goroutine for up to the handle's configured timeout. A handle
// must not be used from more than one goroutine at a time; concurrency
// across handles (one goroutine per accepted connection) is the caller's
// business.
package socket

import (
	"errors"
	"fmt"
	"net"
	"runtime"

	"dominicbreuker/gosock/pkg/stream"
)

// ErrClosed is returned by every operation attempted on a closed handle.
var ErrClosed = errors.New("attempt to use a closed socket")

// State describes where a handle is in the connection state machine.
type State int

const (
	// Unbound is the state of a freshly created socket.
	Unbound State = iota
	// Bound means the socket reserved a local address.
	Bound
	// Listening means the socket accepts incoming connections.
	Listening
	// Connected means the socket is attached to a peer.
	Connected
	// Closed means the socket was torn down.
	Closed
)

// String returns a readable name for the state.
func (st State) String() string {
	switch st {
	case Unbound:
		return "unbound"
	case Bound:
		return "bound"
	case Listening:
		return "listening"
	case Connected:
		return "connected"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(st))
}

// Socket is an opaque handle for one network socket. The zero value is
// not usable; create handles with New or Accept.
type Socket struct {
	proto  Protocol
	family Family

	state   State
	timeout Timeout

	laddr   string // resolved local address after Bind
	backlog int

	conn net.Conn       // connected endpoint (stream, or dialed datagram)
	pc   net.PacketConn // bound datagram endpoint
	ln   net.Listener   // listening stream endpoint

	buf *stream.Buffer

	deps         *Dependencies
	dialFn       DialFunc
	listenFn     ListenFunc
	listenPktFn  ListenPacketFunc
	closeFailure error // recorded by the finalizer path, never propagated
}

// New creates a socket handle for the given protocol and address family.
// deps may be nil to use the platform's net package. The handle starts
// Unbound with its buffered I/O engine attached and timeout Forever.
//
// Callers are expected to Close the handle explicitly. The registered
// finalizer only covers abandonment, and it is best effort: the handle
// and its buffered engine reference each other, and the runtime does
// not guarantee finalizers on cyclic structures ever run.
func New(proto Protocol, family Family, deps *Dependencies) (*Socket, error) {
	switch proto {
	case TCP, UDP:
	default:
		return nil, fmt.Errorf("unknown protocol %d", int(proto))
	}
	switch family {
	case Inet, Unspec:
	case Inet6:
		if !SupportsIPv6() {
			return nil, fmt.Errorf("family inet6 is not supported on this platform")
		}
	default:
		return nil, fmt.Errorf("unknown family %d", int(family))
	}

	s := &Socket{
		proto:       proto,
		family:      family,
		state:       Unbound,
		timeout:     Forever,
		deps:        deps,
		dialFn:      getDialFunc(deps),
		listenFn:    getListenFunc(deps),
		listenPktFn: getListenPacketFunc(deps),
	}
	s.buf = stream.New(&rawChannel{s: s}, 0)
	runtime.SetFinalizer(s, (*Socket).finalize)

	return s, nil
}

// newAccepted builds the handle for a connection produced by Accept. It
// shares the listener's protocol, family and dependencies but owns its
// endpoint, buffers and timeout.
func newAccepted(server *Socket, conn net.Conn) *Socket {
	c := &Socket{
		proto:       server.proto,
		family:      server.family,
		state:       Connected,
		timeout:     Forever,
		deps:        server.deps,
		dialFn:      server.dialFn,
		listenFn:    server.listenFn,
		listenPktFn: server.listenPktFn,
		conn:        conn,
	}
	c.buf = stream.New(&rawChannel{s: c}, 0)
	runtime.SetFinalizer(c, (*Socket).finalize)
	return c
}

// Protocol returns the handle's transport protocol.
func (s *Socket) Protocol() Protocol {
	return s.proto
}

// Family returns the handle's address family.
func (s *Socket) Family() Family {
	return s.family
}

// State returns the handle's position in the connection state machine.
func (s *Socket) State() State {
	return s.state
}

// checkOpen guards every operation that requires an open socket.
func (s *Socket) checkOpen() error {
	if s.state == Closed {
		return ErrClosed
	}
	return nil
}

// Close tears the handle down: the native endpoints and the buffered
// channel state are released together, exactly once. Closing a closed
// handle is a no-op returning nil.
func (s *Socket) Close() error {
	if s.state == Closed {
		return nil
	}
	if err := s.teardown(); err != nil {
		return fmt.Errorf("closing socket: %w", err)
	}
	return nil
}

// teardown is the single convergence point for Close and the finalizer.
// It is idempotent: endpoints are nulled as they are released so a second
// pass finds nothing to do.
func (s *Socket) teardown() error {
	var first error

	if s.conn != nil {
		if err := s.conn.Close(); err != nil && first == nil {
			first = err
		}
		s.conn = nil
	}
	if s.pc != nil {
		if err := s.pc.Close(); err != nil && first == nil {
			first = err
		}
		s.pc = nil
	}
	if s.ln != nil {
		if err := s.ln.Close(); err != nil && first == nil {
			first = err
		}
		s.ln = nil
	}

	s.buf = nil
	s.state = Closed
	runtime.SetFinalizer(s, nil)

	return first
}

// finalize is the garbage-collector safety net for handles that were
// never closed. Errors are recorded but never surface: no caller is
// positioned to observe them.
func (s *Socket) finalize() {
	if s.state != Closed {
		s.closeFailure = s.teardown()
	}
}

// Describe returns a short status string for the handle. It never fails,
// whatever the lifecycle state.
func (s *Socket) Describe() string {
	if s == nil || s.state == Closed {
		return "Closed gosock socket"
	}
	return "Open gosock socket"
}
