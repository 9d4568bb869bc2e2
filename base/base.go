package base

import (
	"bufio"
	"context"
	"io"
)

// Iterator is a common interface implemented by all iterators.
type Iterator interface {
	// Next advances an iterator.
	Next(ctx context.Context) bool
	// Err returns a last encountered error.
	Err() error
	// Close frees resources.
	Close() error
}

// Source is an iterator over untyped values. A value may be nil.
type Source interface {
	Iterator
	// Value returns the current value.
	Value() interface{}
}

var (
	_ Source = (*sliceSource)(nil)
	_ Source = (*lineSource)(nil)
)

// Slice returns a Source over a fixed set of values.
func Slice(vals ...interface{}) Source {
	return &sliceSource{vals: vals, i: -1}
}

type sliceSource struct {
	vals []interface{}
	i    int
	err  error
}

func (s *sliceSource) Next(ctx context.Context) bool {
	if s.err != nil {
		return false
	} else if err := ctx.Err(); err != nil {
		s.err = err
		return false
	}
	if s.i+1 >= len(s.vals) {
		s.i = len(s.vals)
		return false
	}
	s.i++
	return true
}

func (s *sliceSource) Value() interface{} {
	if s.i < 0 || s.i >= len(s.vals) {
		return nil
	}
	return s.vals[s.i]
}

func (s *sliceSource) Err() error {
	return s.err
}

func (s *sliceSource) Close() error {
	s.i = len(s.vals)
	return nil
}

// MaxLineSize is the longest line accepted by Lines.
const MaxLineSize = 16 << 20

// Lines returns a Source that yields each line of r as a string.
// Lines are read on demand; the reader is closed by Close if it implements io.Closer.
// A line longer than MaxLineSize stops the iteration with bufio.ErrTooLong.
func Lines(r io.Reader) Source {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	return &lineSource{r: r, sc: sc}
}

type lineSource struct {
	r    io.Reader
	sc   *bufio.Scanner
	cur  string
	err  error
	done bool
}

func (s *lineSource) Next(ctx context.Context) bool {
	if s.done || s.err != nil {
		return false
	} else if err := ctx.Err(); err != nil {
		s.err = err
		return false
	}
	if !s.sc.Scan() {
		s.done = true
		s.err = s.sc.Err()
		s.cur = ""
		return false
	}
	s.cur = s.sc.Text()
	return true
}

func (s *lineSource) Value() interface{} {
	if s.done {
		return nil
	}
	return s.cur
}

func (s *lineSource) Err() error {
	return s.err
}

func (s *lineSource) Close() error {
	s.done = true
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
