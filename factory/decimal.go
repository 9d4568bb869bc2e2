package factory

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

var _ ValueFactory[values.Decimal] = (*DecimalFactory)(nil)

// DecimalFactory is a factory for Decimal values.
//
// Floating point sources are converted through their shortest canonical decimal text,
// so 0.1 becomes exactly 0.1 instead of the binary expansion of the float.
type DecimalFactory struct {
	valueFactory[values.Decimal]
}

func NewDecimalFactory(dec codec.Decoder, strs *StringFactory) *DecimalFactory {
	f := &DecimalFactory{}
	f.valueFactory = newValueFactory[values.Decimal](values.TypeDecimal, dec, strs, f)
	return f
}

func (f *DecimalFactory) FromString(s string) (values.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return f.invalid(s, s, err)
	}
	return values.AsDecimal(d), nil
}

func (f *DecimalFactory) FromInt(v int32) (values.Decimal, error) {
	return values.AsDecimal(decimal.NewFromInt32(v)), nil
}

func (f *DecimalFactory) FromLong(v int64) (values.Decimal, error) {
	return values.AsDecimal(decimal.NewFromInt(v)), nil
}

func (f *DecimalFactory) fromFloat(src interface{}, v float64, bits int) (values.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return f.reject(src)
	}
	s := canonicalFloat(v, bits)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return f.invalid(src, s, err)
	}
	return values.AsDecimal(d), nil
}

func (f *DecimalFactory) FromFloat(v float32) (values.Decimal, error) {
	return f.fromFloat(v, float64(v), 32)
}

func (f *DecimalFactory) FromDouble(v float64) (values.Decimal, error) {
	return f.fromFloat(v, v, 64)
}

func (f *DecimalFactory) FromBool(v bool) (values.Decimal, error) {
	return f.reject(v)
}

func (f *DecimalFactory) FromDecimal(v values.Decimal) (values.Decimal, error) {
	return v, nil
}

func (f *DecimalFactory) FromTime(v time.Time) (values.Decimal, error) {
	return f.FromLong(v.UnixMilli())
}

func (f *DecimalFactory) FromDateTime(v values.DateTime) (values.Decimal, error) {
	return f.FromLong(v.Milliseconds())
}

func (f *DecimalFactory) FromName(v values.Name) (values.Decimal, error) {
	return f.reject(v)
}

func (f *DecimalFactory) FromPath(v values.Path) (values.Decimal, error) {
	return f.reject(v)
}

func (f *DecimalFactory) FromReference(v values.Reference) (values.Decimal, error) {
	return f.reject(v)
}

func (f *DecimalFactory) FromURI(v values.URI) (values.Decimal, error) {
	return f.reject(v)
}

func (f *DecimalFactory) FromUUID(v values.UUID) (values.Decimal, error) {
	return f.reject(v)
}
