// Package utils holds small io helpers shared by the CLI.
package utils

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// DefaultDeferredLimit caps how much a DeferredWriter buffers when Limit is
// zero.
const DefaultDeferredLimit = 1 << 20

// DeferredWriter holds writes in memory until Flush, so output produced while
// a full-screen program owns the terminal can be printed afterwards. Writes
// beyond Limit are counted and dropped. Safe for concurrent use.
type DeferredWriter struct {
	Limit int

	mu      sync.Mutex
	buf     bytes.Buffer
	dropped int
}

// Write buffers p. It always reports success so callers such as loggers never
// fail because the buffer is full.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	limit := d.Limit
	if limit <= 0 {
		limit = DefaultDeferredLimit
	}

	if d.buf.Len()+len(p) > limit {
		d.dropped += len(p)
		return len(p), nil
	}
	d.buf.Write(p)
	return len(p), nil
}

// Flush writes the buffered data to w, followed by a note when writes were
// dropped, and resets the writer.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	defer func() {
		d.buf.Reset()
		d.dropped = 0
	}()

	if d.buf.Len() > 0 {
		if _, err := d.buf.WriteTo(w); err != nil {
			return err
		}
	}
	if d.dropped > 0 {
		if _, err := fmt.Fprintf(w, "... %d bytes of output dropped\n", d.dropped); err != nil {
			return err
		}
	}
	return nil
}
