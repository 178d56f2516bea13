// Package iostream implements the byte-oriented, handle-addressed input
// streams behind the VM's stdin/get-input-stream/set-input-stream/
// open-read-file/close-file primitives.
//
// Unlike a queue that auto-advances to the next reader on EOF, every stream
// here is addressed by an explicit integer handle that FORTH code pushes and
// pops; switching which stream is "current" is always an explicit act
// (set-input-stream), matching the spec this VM implements.
package iostream

import (
	"bufio"
	"fmt"
	"io"
)

// Location tracks a byte position for diagnostics: a stream name and a line
// number, incremented on every '\n' read.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string {
	return fmt.Sprintf("%s:%d", loc.Name, loc.Line)
}

// Stream is one open, byte-addressable input source.
type Stream struct {
	Location
	r      *bufio.Reader
	closer io.Closer
}

// Open wraps r as a named Stream starting at line 1. If r also implements
// io.Closer, Close will close it.
func Open(name string, r io.Reader) *Stream {
	s := &Stream{Location: Location{Name: name, Line: 1}}
	if br, ok := r.(*bufio.Reader); ok {
		s.r = br
	} else {
		s.r = bufio.NewReader(r)
	}
	s.closer, _ = r.(io.Closer)
	return s
}

// ReadByte reads the next byte, advancing the line counter on '\n'.
func (s *Stream) ReadByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if b == '\n' {
		s.Line++
	}
	return b, nil
}

// Close closes the underlying reader, if it is closable. Safe to call on a
// stream (like stdin) that isn't.
func (s *Stream) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// Table is a 1-indexed handle table of open streams; handle 0 means "none".
type Table struct {
	streams []*Stream
}

// Register opens a new handle for s and returns it.
func (t *Table) Register(s *Stream) int {
	t.streams = append(t.streams, s)
	return len(t.streams)
}

// Get returns the stream for handle, or nil if handle is out of range.
func (t *Table) Get(handle int) *Stream {
	if handle < 1 || handle > len(t.streams) {
		return nil
	}
	return t.streams[handle-1]
}

// Close closes and forgets the stream at handle; the handle becomes invalid.
func (t *Table) Close(handle int) error {
	s := t.Get(handle)
	if s == nil {
		return fmt.Errorf("iostream: invalid handle %d", handle)
	}
	t.streams[handle-1] = nil
	return s.Close()
}
