package socket

import (
	"errors"
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	s, err := New(TCP, Inet, nil)
	if err != nil {
		t.Fatalf("New() error: %s", err)
	}

	if got := s.Describe(); !strings.HasPrefix(got, "Open ") {
		t.Errorf("Describe() = %q, want prefix \"Open \"", got)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %s", err)
	}

	if got := s.Describe(); !strings.HasPrefix(got, "Closed ") {
		t.Errorf("Describe() after close = %q, want prefix \"Closed \"", got)
	}
}

func TestCloseIdempotent(t *testing.T) {
	t.Parallel()

	s, err := New(TCP, Inet, nil)
	if err != nil {
		t.Fatalf("New() error: %s", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("first Close() error: %s", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error: %s, want nil", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("third Close() error: %s, want nil", err)
	}
}

func TestOperationsOnClosedSocket(t *testing.T) {
	t.Parallel()

	s, err := New(TCP, Inet, nil)
	if err != nil {
		t.Fatalf("New() error: %s", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %s", err)
	}

	tests := []struct {
		name string
		op   func() error
	}{
		{name: "Connect", op: func() error { return s.Connect("127.0.0.1", 1) }},
		{name: "Bind", op: func() error { return s.Bind("127.0.0.1", 0) }},
		{name: "Listen", op: func() error { return s.Listen(5) }},
		{name: "Accept", op: func() error { _, err := s.Accept(); return err }},
		{name: "Read", op: func() error { _, err := s.Read(); return err }},
		{name: "Write", op: func() error { return s.Write("x") }},
		{name: "Lines", op: func() error { _, err := s.Lines(); return err }},
		{name: "Timeout", op: func() error { _, err := s.Timeout(); return err }},
		{name: "SetTimeout", op: func() error { return s.SetTimeout(Immediate) }},
		{name: "Addr", op: func() error { _, _, err := s.Addr(Local); return err }},
		{name: "PacketConn", op: func() error { _, err := s.PacketConn(); return err }},
	}

	for _, tt := range tests {
		if err := tt.op(); !errors.Is(err, ErrClosed) {
			t.Errorf("%s on closed socket: error = %v, want ErrClosed", tt.name, err)
		}
	}
}

func TestNewInvalidOptions(t *testing.T) {
	t.Parallel()

	if _, err := New(Protocol(42), Inet, nil); err == nil {
		t.Errorf("New() with invalid protocol expected error")
	}
	if _, err := New(TCP, Family(42), nil); err == nil {
		t.Errorf("New() with invalid family expected error")
	}
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	s, err := New(TCP, Inet, nil)
	if err != nil {
		t.Fatalf("New() error: %s", err)
	}
	defer s.Close()

	if s.State() != Unbound {
		t.Errorf("State() = %s, want unbound", s.State())
	}
	if s.Protocol() != TCP {
		t.Errorf("Protocol() = %s, want tcp", s.Protocol())
	}
	if s.Family() != Inet {
		t.Errorf("Family() = %s, want inet", s.Family())
	}

	timeout, err := s.Timeout()
	if err != nil {
		t.Fatalf("Timeout() error: %s", err)
	}
	if timeout != Forever {
		t.Errorf("Timeout() = %v, want Forever", timeout)
	}
}
