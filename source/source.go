// Package source provides line oriented sources for charstream over
// already open resources. Nothing here opens or closes anything: the
// caller keeps ownership of the reader it hands in.
package source

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// Reader reads a plain io.Reader one line at a time, keeping line
// terminators in place.
type Reader struct {
	name string
	br   *bufio.Reader
	eof  bool
}

// NewReader returns an anonymous source reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// NewNamedReader returns a source reading from r identified by name.
// An empty name makes the source anonymous.
func NewNamedReader(name string, r io.Reader) *Reader {
	return &Reader{name: name, br: bufio.NewReader(r)}
}

// NewFile returns a source over an already open file, named by its path.
func NewFile(f *os.File) *Reader {
	return NewNamedReader(f.Name(), f)
}

// ReadLine appends the next line, terminator included, to buf and returns
// the extended slice. At end of input it returns a zero length result and
// no error, however often it is called. Data returned together with a
// non-nil error is incomplete and must be discarded.
func (r *Reader) ReadLine(buf []byte) ([]byte, error) {
	if r.eof {
		return buf, nil
	}

	for {
		frag, err := r.br.ReadSlice('\n')
		buf = append(buf, frag...)

		switch {
		case err == nil:
			return buf, nil
		case errors.Is(err, bufio.ErrBufferFull):
			// line longer than the read buffer, keep collecting
		case errors.Is(err, io.EOF):
			r.eof = true
			return buf, nil
		default:
			return buf, err
		}
	}
}

// EOF reports whether the underlying reader has been read to its end.
func (r *Reader) EOF() bool {
	return r.eof
}

// Name returns the source name, if any.
func (r *Reader) Name() (string, bool) {
	return r.name, r.name != ""
}
