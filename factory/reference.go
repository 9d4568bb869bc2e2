package factory

import (
	"errors"
	"strings"
	"time"

	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

var _ ValueFactory[values.Reference] = (*ReferenceFactory)(nil)

var errEmptyReference = errors.New("empty reference")

// ReferenceFactory is a factory for Reference values. References are opaque identifiers;
// they can be created from text and UUIDs only.
type ReferenceFactory struct {
	valueFactory[values.Reference]
}

func NewReferenceFactory(dec codec.Decoder, strs *StringFactory) *ReferenceFactory {
	f := &ReferenceFactory{}
	f.valueFactory = newValueFactory[values.Reference](values.TypeReference, dec, strs, f)
	return f
}

func (f *ReferenceFactory) FromString(s string) (values.Reference, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return f.invalid(s, s, errEmptyReference)
	}
	return values.Reference(t), nil
}

func (f *ReferenceFactory) FromInt(v int32) (values.Reference, error) {
	return f.reject(v)
}

func (f *ReferenceFactory) FromLong(v int64) (values.Reference, error) {
	return f.reject(v)
}

func (f *ReferenceFactory) FromFloat(v float32) (values.Reference, error) {
	return f.reject(v)
}

func (f *ReferenceFactory) FromDouble(v float64) (values.Reference, error) {
	return f.reject(v)
}

func (f *ReferenceFactory) FromBool(v bool) (values.Reference, error) {
	return f.reject(v)
}

func (f *ReferenceFactory) FromDecimal(v values.Decimal) (values.Reference, error) {
	return f.reject(v)
}

func (f *ReferenceFactory) FromTime(v time.Time) (values.Reference, error) {
	return f.reject(v)
}

func (f *ReferenceFactory) FromDateTime(v values.DateTime) (values.Reference, error) {
	return f.reject(v)
}

func (f *ReferenceFactory) FromName(v values.Name) (values.Reference, error) {
	return f.reject(v)
}

func (f *ReferenceFactory) FromPath(v values.Path) (values.Reference, error) {
	return f.reject(v)
}

func (f *ReferenceFactory) FromReference(v values.Reference) (values.Reference, error) {
	return v, nil
}

func (f *ReferenceFactory) FromURI(v values.URI) (values.Reference, error) {
	return f.reject(v)
}

func (f *ReferenceFactory) FromUUID(v values.UUID) (values.Reference, error) {
	return values.Reference(v.String()), nil
}
