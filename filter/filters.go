// Package filter implements predicates over property values.
package filter

import (
	"github.com/hidal-go/graphval/values"
)

type ValueFilter interface {
	FilterValue(v values.Value) bool
}

var _ ValueFilter = Any{}

// Any matches all non-nil values.
type Any struct{}

func (Any) FilterValue(v values.Value) bool {
	return v != nil
}

// EQ is a shorthand for Equal.
func EQ(v values.Value) ValueFilter {
	return Equal{Value: v}
}

var _ ValueFilter = Equal{}

// Equal matches values of the same type that compare as equal, thus decimal 1.0 equals 1.
type Equal struct {
	Value values.Value
}

func (f Equal) FilterValue(a values.Value) bool {
	return values.Compare(a, f.Value) == 0
}

// LT is a "less than" filter. Shorthand for Less.
func LT(v values.Value) *Less {
	return &Less{Value: v}
}

// LTE is a "less than or equal" filter. Shorthand for Less.
func LTE(v values.Value) *Less {
	return &Less{Value: v, Equal: true}
}

var _ ValueFilter = Less{}

// Less matches values ordered before Value by values.Compare.
type Less struct {
	Value values.Value
	Equal bool
}

func (f Less) FilterValue(v values.Value) bool {
	c := values.Compare(v, f.Value)
	return c == -1 || (f.Equal && c == 0)
}

// GT is a "greater than" filter. Shorthand for Greater.
func GT(v values.Value) *Greater {
	return &Greater{Value: v}
}

// GTE is a "greater than or equal" filter. Shorthand for Greater.
func GTE(v values.Value) *Greater {
	return &Greater{Value: v, Equal: true}
}

var _ ValueFilter = Greater{}

// Greater matches values ordered after Value by values.Compare.
type Greater struct {
	Value values.Value
	Equal bool
}

func (f Greater) FilterValue(v values.Value) bool {
	c := values.Compare(v, f.Value)
	return c == +1 || (f.Equal && c == 0)
}

var _ ValueFilter = Range{}

// Range represents a range of values. Either bound may be nil, meaning the range is not limited from that side.
type Range struct {
	Start *Greater
	End   *Less
}

// Between returns an inclusive range. A nil bound leaves that side of the range open.
func Between(lo, hi values.Value) Range {
	var r Range
	if lo != nil {
		r.Start = GTE(lo)
	}
	if hi != nil {
		r.End = LTE(hi)
	}
	return r
}

func (f Range) FilterValue(v values.Value) bool {
	if f.Start != nil && !f.Start.FilterValue(v) {
		return false
	}
	if f.End != nil && !f.End.FilterValue(v) {
		return false
	}
	return true
}

type And []ValueFilter

func (arr And) FilterValue(v values.Value) bool {
	for _, f := range arr {
		if !f.FilterValue(v) {
			return false
		}
	}
	return true
}

type Or []ValueFilter

func (arr Or) FilterValue(v values.Value) bool {
	for _, f := range arr {
		if f.FilterValue(v) {
			return true
		}
	}
	return false
}

type Not struct {
	Filter ValueFilter
}

func (f Not) FilterValue(v values.Value) bool {
	return !f.Filter.FilterValue(v)
}
