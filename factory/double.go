package factory

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

var (
	_ ValueFactory[values.Double] = (*DoubleFactory)(nil)
	_ ValueFactory[values.Float]  = (*FloatFactory)(nil)
)

// DoubleFactory is a factory for Double values.
//
// Integers and decimals are rounded to the nearest representable float64;
// decimals beyond the float64 range are rejected.
// A float32 is widened through its canonical text, so float32(0.1) becomes 0.1.
type DoubleFactory struct {
	valueFactory[values.Double]
}

func NewDoubleFactory(dec codec.Decoder, strs *StringFactory) *DoubleFactory {
	f := &DoubleFactory{}
	f.valueFactory = newValueFactory[values.Double](values.TypeDouble, dec, strs, f)
	return f
}

func (f *DoubleFactory) FromString(s string) (values.Double, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return f.invalid(s, s, err)
	}
	return values.Double(v), nil
}

func (f *DoubleFactory) FromInt(v int32) (values.Double, error) {
	return values.Double(v), nil
}

func (f *DoubleFactory) FromLong(v int64) (values.Double, error) {
	return values.Double(v), nil
}

func (f *DoubleFactory) FromFloat(v float32) (values.Double, error) {
	s := canonicalFloat(float64(v), 32)
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return f.invalid(v, s, err)
	}
	return values.Double(d), nil
}

func (f *DoubleFactory) FromDouble(v float64) (values.Double, error) {
	return values.Double(v), nil
}

func (f *DoubleFactory) FromBool(v bool) (values.Double, error) {
	return f.reject(v)
}

func (f *DoubleFactory) FromDecimal(v values.Decimal) (values.Double, error) {
	d, _ := v.Float64()
	if math.IsInf(d, 0) {
		return f.reject(v)
	}
	return values.Double(d), nil
}

func (f *DoubleFactory) FromTime(v time.Time) (values.Double, error) {
	return values.Double(v.UnixMilli()), nil
}

func (f *DoubleFactory) FromDateTime(v values.DateTime) (values.Double, error) {
	return values.Double(v.Milliseconds()), nil
}

func (f *DoubleFactory) FromName(v values.Name) (values.Double, error) {
	return f.reject(v)
}

func (f *DoubleFactory) FromPath(v values.Path) (values.Double, error) {
	return f.reject(v)
}

func (f *DoubleFactory) FromReference(v values.Reference) (values.Double, error) {
	return f.reject(v)
}

func (f *DoubleFactory) FromURI(v values.URI) (values.Double, error) {
	return f.reject(v)
}

func (f *DoubleFactory) FromUUID(v values.UUID) (values.Double, error) {
	return f.reject(v)
}

// FloatFactory is a factory for Float values.
//
// Wider numbers are rounded to the nearest float32; finite values beyond the float32 range are rejected.
type FloatFactory struct {
	valueFactory[values.Float]
}

func NewFloatFactory(dec codec.Decoder, strs *StringFactory) *FloatFactory {
	f := &FloatFactory{}
	f.valueFactory = newValueFactory[values.Float](values.TypeFloat, dec, strs, f)
	return f
}

func (f *FloatFactory) FromString(s string) (values.Float, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return f.invalid(s, s, err)
	}
	return values.Float(v), nil
}

func (f *FloatFactory) FromInt(v int32) (values.Float, error) {
	return values.Float(v), nil
}

func (f *FloatFactory) FromLong(v int64) (values.Float, error) {
	return values.Float(v), nil
}

func (f *FloatFactory) FromFloat(v float32) (values.Float, error) {
	return values.Float(v), nil
}

func (f *FloatFactory) FromDouble(v float64) (values.Float, error) {
	if !math.IsInf(v, 0) && math.Abs(v) > math.MaxFloat32 {
		return f.reject(v)
	}
	return values.Float(v), nil
}

func (f *FloatFactory) FromBool(v bool) (values.Float, error) {
	return f.reject(v)
}

func (f *FloatFactory) FromDecimal(v values.Decimal) (values.Float, error) {
	d, _ := v.Float64()
	if math.IsInf(d, 0) || math.Abs(d) > math.MaxFloat32 {
		return f.reject(v)
	}
	return values.Float(d), nil
}

func (f *FloatFactory) FromTime(v time.Time) (values.Float, error) {
	return values.Float(v.UnixMilli()), nil
}

func (f *FloatFactory) FromDateTime(v values.DateTime) (values.Float, error) {
	return values.Float(v.Milliseconds()), nil
}

func (f *FloatFactory) FromName(v values.Name) (values.Float, error) {
	return f.reject(v)
}

func (f *FloatFactory) FromPath(v values.Path) (values.Float, error) {
	return f.reject(v)
}

func (f *FloatFactory) FromReference(v values.Reference) (values.Float, error) {
	return f.reject(v)
}

func (f *FloatFactory) FromURI(v values.URI) (values.Float, error) {
	return f.reject(v)
}

func (f *FloatFactory) FromUUID(v values.UUID) (values.Float, error) {
	return f.reject(v)
}
