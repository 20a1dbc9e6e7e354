package socket

import (
	"fmt"
	"time"
)

// Timeout controls how long blocking socket operations (connect, accept,
// read, write) may suspend the caller. The domain is three-way: Forever
// blocks indefinitely, Immediate never blocks, and a positive value is a
// duration in microseconds. This mirrors the native representation where
// a negative value means forever and zero means non-blocking.
type Timeout int64

const (
	// Forever blocks until the operation completes.
	Forever Timeout = -1
	// Immediate returns at once when no data or connection is ready.
	Immediate Timeout = 0
)

// Micros builds a Timeout from a microsecond count. Negative counts are
// rejected; use Forever instead.
func Micros(us int64) (Timeout, error) {
	if us < 0 {
		return 0, fmt.Errorf("negative timeout %d", us)
	}
	return Timeout(us), nil
}

// FromDuration builds a Timeout from a time.Duration, rounding down to
// whole microseconds.
func FromDuration(d time.Duration) (Timeout, error) {
	return Micros(d.Microseconds())
}

// Duration converts a positive timeout to a time.Duration. Forever and
// Immediate convert to 0.
func (t Timeout) Duration() time.Duration {
	if t <= 0 {
		return 0
	}
	return time.Duration(t) * time.Microsecond
}

// String renders the timeout for logs and error messages.
func (t Timeout) String() string {
	switch {
	case t < 0:
		return "forever"
	case t == 0:
		return "immediate"
	default:
		return fmt.Sprintf("%dus", int64(t))
	}
}

// deadline translates the timeout into an absolute deadline suitable for
// net.Conn and net.Listener deadline setters. Forever maps to the zero
// time (no deadline), Immediate to now (expire at once).
func (t Timeout) deadline(now time.Time) time.Time {
	switch {
	case t < 0:
		return time.Time{}
	case t == 0:
		return now
	default:
		return now.Add(t.Duration())
	}
}

// Timeout returns the handle's current timeout setting.
func (s *Socket) Timeout() (Timeout, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}
	return s.timeout, nil
}

// SetTimeout sets the handle's timeout. It affects connect, accept, read
// and write uniformly.
func (s *Socket) SetTimeout(t Timeout) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if t < Forever {
		return fmt.Errorf("invalid timeout %d", int64(t))
	}
	s.timeout = t
	return nil
}
