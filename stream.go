// Package charstream provides a character level cursor over line oriented
// input, meant as the reading front end for lexers and style checkers.
package charstream

import (
	"fmt"
)

// Source is the line oriented input a Stream reads from. The stream owns
// the read cursor of the source for its lifetime; opening and closing the
// underlying resource stays with whoever created it.
type Source interface {
	// ReadLine appends the next line, terminator included, to buf and
	// returns the extended slice. At end of input it returns a zero
	// length result and no error, no matter how often it is called.
	ReadLine(buf []byte) ([]byte, error)
	// EOF reports whether end of input has been reached. It must not
	// turn true while ReadLine still has characters to hand out.
	EOF() bool
	// Name identifies the underlying resource, e.g. a file path.
	// Anonymous sources return ("", false).
	Name() (string, bool)
}

// Position is a cursor location within a source. Line and Column are
// 1-based.
type Position struct {
	Name   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.Name == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}

	return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.Column)
}

// Stream is a pull cursor over the characters of a Source. It buffers one
// line at a time and tracks the line and column of the byte the cursor
// points at. Line terminators are ordinary stream bytes and occupy real
// columns. A Stream is not safe for concurrent use.
type Stream struct {
	src  Source
	buf  []byte
	line int
	col  int
}

// New takes over the read cursor of src and immediately reads the first
// line. An already exhausted source is not an error, the new stream just
// reports EOF right away.
func New(src Source) (*Stream, error) {
	buf, err := src.ReadLine(nil)
	if err != nil {
		return nil, err
	}

	return &Stream{
		src:  src,
		buf:  buf,
		line: 1,
		col:  1,
	}, nil
}

// Name identifies the underlying source, if it has a stable name.
func (s *Stream) Name() (string, bool) {
	return s.src.Name()
}

func (s *Stream) Line() int {
	return s.line
}

func (s *Stream) Column() int {
	return s.col
}

// Pos returns the cursor location for diagnostics.
func (s *Stream) Pos() Position {
	name, _ := s.src.Name()
	return Position{Name: name, Line: s.line, Column: s.col}
}

// EOF reports whether the stream is exhausted. The source being done at
// the storage layer is not enough on its own: the last line read may
// still hold unconsumed bytes, so the buffer has to be used up too.
func (s *Stream) EOF() bool {
	return s.src.EOF() && s.col-1 == len(s.buf)
}

// Peek returns the byte at the cursor without consuming it. Calling it
// again without Next in between returns the same byte. Peek must not be
// called on an exhausted stream, doing so panics.
func (s *Stream) Peek() byte {
	return s.buf[bufferIndex(s.col)]
}

// Next consumes one byte. Stepping over the end of the buffered line
// replaces it with the next line from the source, resetting Column to 1
// and incrementing Line. Next on an exhausted stream does nothing.
// A failed source read is returned as is.
func (s *Stream) Next() error {
	if s.EOF() {
		return nil
	}

	s.col++
	if s.col-1 >= len(s.buf) {
		return s.refill()
	}

	return nil
}

func (s *Stream) refill() error {
	buf, err := s.src.ReadLine(s.buf[:0])
	if err != nil {
		return err
	}

	s.buf = buf
	s.col = 1
	s.line++

	return nil
}

// bufferIndex maps a 1-based column to its offset in the line buffer.
// Columns below 1 cannot occur and mean the cursor state is corrupt.
func bufferIndex(col int) int {
	if col <= 0 {
		panic(fmt.Sprintf("invalid column %d", col))
	}

	return col - 1
}
