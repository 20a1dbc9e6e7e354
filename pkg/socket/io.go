package socket

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"dominicbreuker/gosock/pkg/stream"
)

// rawChannel is the duplex byte channel handed to the buffered I/O
// engine. Every pass through it re-checks that the handle is open and
// applies the handle's current timeout as a fresh deadline, so timeout
// changes take effect on the next operation.
type rawChannel struct {
	s *Socket
}

func (c *rawChannel) Read(p []byte) (int, error) {
	conn, err := c.s.endpoint()
	if err != nil {
		return 0, err
	}
	if err := conn.SetReadDeadline(c.s.timeout.deadline(time.Now())); err != nil {
		return 0, fmt.Errorf("SetReadDeadline(): %w", err)
	}
	return conn.Read(p)
}

func (c *rawChannel) Write(p []byte) (int, error) {
	conn, err := c.s.endpoint()
	if err != nil {
		return 0, err
	}
	if err := conn.SetWriteDeadline(c.s.timeout.deadline(time.Now())); err != nil {
		return 0, fmt.Errorf("SetWriteDeadline(): %w", err)
	}
	return conn.Write(p)
}

// endpoint returns the net.Conn carrying the handle's byte stream.
func (s *Socket) endpoint() (net.Conn, error) {
	if s.state == Closed {
		return nil, ErrClosed
	}
	if s.conn != nil {
		return s.conn, nil
	}
	// A bound datagram socket can receive without being connected.
	if s.pc != nil {
		if c, ok := s.pc.(net.Conn); ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("socket is not connected")
}

// Read performs one buffered read per format (a line by default) and
// returns the results in order. See the stream package for the available
// formats. Reads block per the handle's timeout.
func (s *Socket) Read(formats ...stream.Format) ([][]byte, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return s.buf.ReadFormats(formats...)
}

// Write appends the values to the output buffer and flushes synchronously.
// It reports success only after all bytes were handed to the transport.
// Strings and byte slices are written as-is, other values through their
// default string representation.
func (s *Socket) Write(values ...interface{}) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if _, err := s.buf.WriteValues(values...); err != nil {
		return fmt.Errorf("buffering write: %w", err)
	}
	if err := s.buf.Flush(); err != nil {
		return fmt.Errorf("flushing write: %w", err)
	}
	return nil
}

// Lines returns a lazy iterator over the lines arriving on the socket.
// Each advance may block per the handle's timeout; the iteration ends
// cleanly when the peer closes the connection.
func (s *Socket) Lines() (*stream.LineIter, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return s.buf.Lines(), nil
}

// ioView adapts a handle to io.ReadWriteCloser for byte-stream plumbing
// (io.Copy and friends). Reads drain the handle's input buffer first;
// writes flush immediately, matching the handle's Write contract.
type ioView struct {
	s *Socket
}

func (v ioView) Read(p []byte) (int, error) {
	if err := v.s.checkOpen(); err != nil {
		return 0, err
	}
	return v.s.buf.Read(p)
}

func (v ioView) Write(p []byte) (int, error) {
	if err := v.s.checkOpen(); err != nil {
		return 0, err
	}
	n, err := v.s.buf.Write(p)
	if err != nil {
		return n, err
	}
	return n, v.s.buf.Flush()
}

func (v ioView) Close() error {
	return v.s.Close()
}

// IO returns an io.ReadWriteCloser view of the handle.
func (s *Socket) IO() io.ReadWriteCloser {
	return ioView{s: s}
}

// PacketConn exposes the packet endpoint of a datagram socket, e.g. to
// layer a reliable stream protocol over it. The handle stays the owner:
// closing the handle closes the endpoint.
func (s *Socket) PacketConn() (net.PacketConn, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if s.proto != UDP {
		return nil, fmt.Errorf("not a udp socket")
	}
	if s.pc != nil {
		return s.pc, nil
	}
	if pc, ok := s.conn.(net.PacketConn); ok {
		return pc, nil
	}
	return nil, fmt.Errorf("socket is not bound")
}

// IsTimeout reports whether an error from a socket operation was caused
// by timeout expiry, so callers can implement retry or backoff.
func IsTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
