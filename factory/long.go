package factory

import (
	"strconv"
	"strings"
	"time"

	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

var _ ValueFactory[values.Long] = (*LongFactory)(nil)

// LongFactory is a factory for Long values.
//
// Fractional sources are truncated toward zero. Sources that do not fit into int64,
// NaN and infinities are rejected.
type LongFactory struct {
	valueFactory[values.Long]
}

func NewLongFactory(dec codec.Decoder, strs *StringFactory) *LongFactory {
	f := &LongFactory{}
	f.valueFactory = newValueFactory[values.Long](values.TypeLong, dec, strs, f)
	return f
}

func (f *LongFactory) FromString(s string) (values.Long, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return f.invalid(s, s, err)
	}
	return values.Long(v), nil
}

func (f *LongFactory) FromInt(v int32) (values.Long, error) {
	return values.Long(v), nil
}

func (f *LongFactory) FromLong(v int64) (values.Long, error) {
	return values.Long(v), nil
}

func (f *LongFactory) FromFloat(v float32) (values.Long, error) {
	l, ok := floatToLong(float64(v))
	if !ok {
		return f.reject(v)
	}
	return values.Long(l), nil
}

func (f *LongFactory) FromDouble(v float64) (values.Long, error) {
	l, ok := floatToLong(v)
	if !ok {
		return f.reject(v)
	}
	return values.Long(l), nil
}

func (f *LongFactory) FromBool(v bool) (values.Long, error) {
	return f.reject(v)
}

func (f *LongFactory) FromDecimal(v values.Decimal) (values.Long, error) {
	l, ok := decimalToLong(v.Decimal)
	if !ok {
		return f.reject(v)
	}
	return values.Long(l), nil
}

func (f *LongFactory) FromTime(v time.Time) (values.Long, error) {
	return values.Long(v.UnixMilli()), nil
}

func (f *LongFactory) FromDateTime(v values.DateTime) (values.Long, error) {
	return values.Long(v.Milliseconds()), nil
}

func (f *LongFactory) FromName(v values.Name) (values.Long, error) {
	return f.reject(v)
}

func (f *LongFactory) FromPath(v values.Path) (values.Long, error) {
	return f.reject(v)
}

func (f *LongFactory) FromReference(v values.Reference) (values.Long, error) {
	return f.reject(v)
}

func (f *LongFactory) FromURI(v values.URI) (values.Long, error) {
	return f.reject(v)
}

func (f *LongFactory) FromUUID(v values.UUID) (values.Long, error) {
	return f.reject(v)
}
