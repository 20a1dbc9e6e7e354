// Package stream provides the buffered I/O engine used by socket handles.
// It wraps a raw duplex byte channel with read buffering (fixed-size reads,
// line reads, read-to-end) and write buffering with explicit flush. The
// raw channel plays the role of the recv/send callbacks: any io.ReadWriter
// will do.
package stream

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultBufferSize is the buffer size used when the caller passes 0.
const DefaultBufferSize = 4096

// Buffer is the buffered channel state bound 1:1 to a raw byte channel.
// It is exclusively owned by the handle it is attached to and must not be
// used from more than one goroutine at a time.
type Buffer struct {
	r *bufio.Reader
	w *bufio.Writer
}

// New attaches a buffered engine to the given raw channel. A size of 0
// selects DefaultBufferSize.
func New(raw io.ReadWriter, size int) *Buffer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Buffer{
		r: bufio.NewReaderSize(raw, size),
		w: bufio.NewWriterSize(raw, size),
	}
}

// Read reads raw bytes from the buffered input channel.
func (b *Buffer) Read(p []byte) (int, error) {
	return b.r.Read(p)
}

// Write appends raw bytes to the buffered output channel. Data is not
// handed to the underlying channel until Flush is called.
func (b *Buffer) Write(p []byte) (int, error) {
	return b.w.Write(p)
}

// Flush hands all buffered output to the underlying channel.
func (b *Buffer) Flush() error {
	return b.w.Flush()
}

// Buffered returns the number of unread bytes sitting in the input buffer.
func (b *Buffer) Buffered() int {
	return b.r.Buffered()
}

// ReadLine reads the next newline-delimited line. The delimiter (and a
// preceding carriage return, if any) is stripped. A final line without a
// trailing newline is returned as-is; io.EOF is returned only when no
// bytes remain.
func (b *Buffer) ReadLine() ([]byte, error) {
	line, err := b.r.ReadBytes('\n')
	if len(line) > 0 {
		return trimEOL(line), nil
	}
	if err == nil {
		err = io.EOF
	}
	return nil, err
}

func trimEOL(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

// ReadN reads up to n bytes. Fewer bytes are returned if the channel ends
// early; io.EOF is returned only when no bytes remain.
func (b *Buffer) ReadN(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid read size %d", n)
	}
	if n == 0 {
		if _, err := b.r.Peek(1); err != nil {
			return nil, io.EOF
		}
		return []byte{}, nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(b.r, buf)
	if read > 0 {
		return buf[:read], nil
	}
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	return nil, err
}

// ReadAll reads the remainder of the channel until EOF.
func (b *Buffer) ReadAll() ([]byte, error) {
	data, err := io.ReadAll(b.r)
	if err != nil {
		return nil, err
	}
	return data, nil
}
