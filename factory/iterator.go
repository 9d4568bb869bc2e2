package factory

import (
	"context"

	"github.com/hidal-go/graphval/base"
	"github.com/hidal-go/graphval/values"
)

var _ base.Iterator = (*Iterator[values.Value])(nil)

// Iterator lazily converts values of an untyped source.
//
// Each element is converted when it is pulled by Next, according to its dynamic type.
// The first failed conversion stops the iteration and is reported by Err; values
// returned before it remain valid. The iterator is single-pass.
type Iterator[T values.Value] struct {
	src  base.Source
	conv func(v interface{}) (T, bool, error)

	cur   T
	valid bool
	err   error
	done  bool
}

func newIterator[T values.Value](src base.Source, conv func(v interface{}) (T, bool, error)) *Iterator[T] {
	return &Iterator[T]{src: src, conv: conv}
}

// Next converts the next element. It returns false when the source is exhausted,
// the context is cancelled or the conversion fails.
func (it *Iterator[T]) Next(ctx context.Context) bool {
	var zero T
	it.cur, it.valid = zero, false
	if it.done || it.err != nil {
		return false
	} else if err := ctx.Err(); err != nil {
		it.err = err
		return false
	}
	if !it.src.Next(ctx) {
		it.done = true
		it.err = it.src.Err()
		return false
	}
	v, ok, err := it.conv(it.src.Value())
	if err != nil {
		it.err = err
		return false
	}
	it.cur, it.valid = v, ok
	return true
}

// Value returns the current converted value. It returns false if the source element is nil.
func (it *Iterator[T]) Value() (T, bool) {
	return it.cur, it.valid
}

func (it *Iterator[T]) Err() error {
	return it.err
}

func (it *Iterator[T]) Close() error {
	it.done = true
	return it.src.Close()
}

// Remove always fails: converted sequences are read-only.
func (it *Iterator[T]) Remove() error {
	return base.ErrUnsupported
}
