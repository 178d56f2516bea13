// Package flushio provides a flush-able io.Writer, used by the VM's output
// sink (emit/tell write through it) so that a buffered stdout and an
// in-memory test buffer can be handled uniformly.
package flushio

import (
	"bufio"
	"io"
	"io/ioutil"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

var discard WriteFlusher = nopFlusher{ioutil.Discard}

// NewWriteFlusher wraps w in a WriteFlusher: ioutil.Discard and in-memory
// buffers (anything shaped like bytes.Buffer) get a no-op Flush; a value
// already satisfying WriteFlusher is returned unwrapped; anything else is
// wrapped in a bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == ioutil.Discard {
		return discard
	}
	if wf, ok := w.(WriteFlusher); ok {
		return wf
	}
	if _, ok := w.(buffer); ok {
		return nopFlusher{w}
	}
	return bufio.NewWriter(w)
}

// buffer matches the subset of bytes.Buffer/strings.Builder that marks a
// writer as an in-memory sink needing no flush.
type buffer interface {
	io.Writer
	Cap() int
	Len() int
	Grow(n int)
	Reset()
}

type nopFlusher struct{ io.Writer }

func (nopFlusher) Flush() error { return nil }

// WriteFlushers broadcasts writes and flushes across any number of
// WriteFlusher-s, collapsing a single one (or zero) to itself (or nil).
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	switch all := flattenWriteFlushers(nil, wfs...); len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

type writeFlushers []WriteFlusher

func (wfs writeFlushers) Write(p []byte) (n int, err error) {
	for _, wf := range wfs {
		if n, err = wf.Write(p); err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (wfs writeFlushers) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

func flattenWriteFlushers(all writeFlushers, some ...WriteFlusher) writeFlushers {
	for _, one := range some {
		if many, ok := one.(writeFlushers); ok {
			all = append(all, many...)
		} else if one != nil {
			all = append(all, one)
		}
	}
	return all
}
