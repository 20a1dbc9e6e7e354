// Package pipeio shuttles bytes between two duplex channels until one of
// them ends, used by the CLI to wire standard I/O to a socket.
package pipeio

import (
	"fmt"
	"io"
	"sync"
)

// Pipe copies data in both directions between rwc1 and rwc2. It returns
// once either direction ends; both channels are closed exactly once on
// the way out. Copy errors are reported through logfunc.
func Pipe(rwc1 io.ReadWriteCloser, rwc2 io.ReadWriteCloser, logfunc func(error)) {
	var wg sync.WaitGroup
	var o sync.Once

	closeBoth := func() {
		rwc1.Close()
		rwc2.Close()

		wg.Done()
	}
	wg.Add(1)

	go func() {
		if _, err := io.Copy(rwc1, rwc2); err != nil {
			logfunc(fmt.Errorf("io.Copy(rwc1, rwc2): %w", err))
		}
		o.Do(closeBoth)
	}()

	go func() {
		if _, err := io.Copy(rwc2, rwc1); err != nil {
			logfunc(fmt.Errorf("io.Copy(rwc2, rwc1): %w", err))
		}
		o.Do(closeBoth)
	}()

	wg.Wait()
}
