package factory

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

var _ ValueFactory[values.UUID] = (*UUIDFactory)(nil)

// UUIDFactory is a factory for UUID values. Text and references are parsed in any form accepted by uuid.Parse.
type UUIDFactory struct {
	valueFactory[values.UUID]
}

func NewUUIDFactory(dec codec.Decoder, strs *StringFactory) *UUIDFactory {
	f := &UUIDFactory{}
	f.valueFactory = newValueFactory[values.UUID](values.TypeUUID, dec, strs, f)
	return f
}

func (f *UUIDFactory) FromString(s string) (values.UUID, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return f.invalid(s, s, err)
	}
	return values.UUID(u), nil
}

func (f *UUIDFactory) FromInt(v int32) (values.UUID, error) {
	return f.reject(v)
}

func (f *UUIDFactory) FromLong(v int64) (values.UUID, error) {
	return f.reject(v)
}

func (f *UUIDFactory) FromFloat(v float32) (values.UUID, error) {
	return f.reject(v)
}

func (f *UUIDFactory) FromDouble(v float64) (values.UUID, error) {
	return f.reject(v)
}

func (f *UUIDFactory) FromBool(v bool) (values.UUID, error) {
	return f.reject(v)
}

func (f *UUIDFactory) FromDecimal(v values.Decimal) (values.UUID, error) {
	return f.reject(v)
}

func (f *UUIDFactory) FromTime(v time.Time) (values.UUID, error) {
	return f.reject(v)
}

func (f *UUIDFactory) FromDateTime(v values.DateTime) (values.UUID, error) {
	return f.reject(v)
}

func (f *UUIDFactory) FromName(v values.Name) (values.UUID, error) {
	return f.reject(v)
}

func (f *UUIDFactory) FromPath(v values.Path) (values.UUID, error) {
	return f.reject(v)
}

func (f *UUIDFactory) FromReference(v values.Reference) (values.UUID, error) {
	u, err := uuid.Parse(strings.TrimSpace(string(v)))
	if err != nil {
		return f.invalid(v, string(v), err)
	}
	return values.UUID(u), nil
}

func (f *UUIDFactory) FromURI(v values.URI) (values.UUID, error) {
	return f.reject(v)
}

func (f *UUIDFactory) FromUUID(v values.UUID) (values.UUID, error) {
	return v, nil
}
