package factory

import (
	"errors"
	"strings"
	"time"

	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

var _ ValueFactory[values.Boolean] = (*BooleanFactory)(nil)

var errNotBoolean = errors.New(`expected "true" or "false"`)

// BooleanFactory is a factory for Boolean values. Only the literals "true" and "false" are accepted,
// in any case; numbers are never treated as booleans.
type BooleanFactory struct {
	valueFactory[values.Boolean]
}

func NewBooleanFactory(dec codec.Decoder, strs *StringFactory) *BooleanFactory {
	f := &BooleanFactory{}
	f.valueFactory = newValueFactory[values.Boolean](values.TypeBoolean, dec, strs, f)
	return f
}

func (f *BooleanFactory) FromString(s string) (values.Boolean, error) {
	switch t := strings.TrimSpace(s); {
	case strings.EqualFold(t, "true"):
		return true, nil
	case strings.EqualFold(t, "false"):
		return false, nil
	}
	return f.invalid(s, s, errNotBoolean)
}

func (f *BooleanFactory) FromInt(v int32) (values.Boolean, error) {
	return f.reject(v)
}

func (f *BooleanFactory) FromLong(v int64) (values.Boolean, error) {
	return f.reject(v)
}

func (f *BooleanFactory) FromFloat(v float32) (values.Boolean, error) {
	return f.reject(v)
}

func (f *BooleanFactory) FromDouble(v float64) (values.Boolean, error) {
	return f.reject(v)
}

func (f *BooleanFactory) FromBool(v bool) (values.Boolean, error) {
	return values.Boolean(v), nil
}

func (f *BooleanFactory) FromDecimal(v values.Decimal) (values.Boolean, error) {
	return f.reject(v)
}

func (f *BooleanFactory) FromTime(v time.Time) (values.Boolean, error) {
	return f.reject(v)
}

func (f *BooleanFactory) FromDateTime(v values.DateTime) (values.Boolean, error) {
	return f.reject(v)
}

func (f *BooleanFactory) FromName(v values.Name) (values.Boolean, error) {
	return f.reject(v)
}

func (f *BooleanFactory) FromPath(v values.Path) (values.Boolean, error) {
	return f.reject(v)
}

func (f *BooleanFactory) FromReference(v values.Reference) (values.Boolean, error) {
	return f.reject(v)
}

func (f *BooleanFactory) FromURI(v values.URI) (values.Boolean, error) {
	return f.reject(v)
}

func (f *BooleanFactory) FromUUID(v values.UUID) (values.Boolean, error) {
	return f.reject(v)
}
