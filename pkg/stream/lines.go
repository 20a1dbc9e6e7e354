package stream

import "io"

// LineIter iterates lazily over the lines of a buffered input channel.
// Each call to Next may block until a full line arrives or the channel's
// timeout expires. The iteration ends cleanly at EOF; any other failure
// is reported through Err.
//
// Usage follows the bufio.Scanner pattern:
//
//	it := buf.Lines()
//	for it.Next() {
//		handle(it.Text())
//	}
//	if err := it.Err(); err != nil { ... }
type LineIter struct {
	b    *Buffer
	line []byte
	err  error
	done bool
}

// Lines returns a lazy line iterator over the input buffer. The iterator
// shares the buffer state: interleaving it with other reads on the same
// buffer continues from wherever the previous read stopped.
func (b *Buffer) Lines() *LineIter {
	return &LineIter{b: b}
}

// Next advances to the next line. It returns false when the channel is
// exhausted or a read fails.
func (it *LineIter) Next() bool {
	if it.done {
		return false
	}
	line, err := it.b.ReadLine()
	if err != nil {
		it.done = true
		if err != io.EOF {
			it.err = err
		}
		return false
	}
	it.line = line
	return true
}

// Text returns the current line without its delimiter.
func (it *LineIter) Text() string {
	return string(it.line)
}

// Bytes returns the current line without its delimiter. The slice is
// owned by the caller.
func (it *LineIter) Bytes() []byte {
	return it.line
}

// Err returns the first non-EOF error encountered, if any.
func (it *LineIter) Err() error {
	return it.err
}
