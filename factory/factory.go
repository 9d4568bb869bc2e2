// Package factory implements conversion of property values between declared types.
//
// Each declared property type has a factory that materializes values of that type
// from any supported source: text, Go numbers, booleans, times, other property values,
// byte arrays, binary payloads and byte or character streams. Sources that have no
// structural relation to the target type are converted through their String form.
package factory

import (
	"io"
	"math"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hidal-go/graphval/base"
	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

// Factory is a type-erased view of a value factory.
type Factory interface {
	// PropertyType returns the type of values created by this factory.
	PropertyType() values.PropertyType
	// Create converts a value of any supported source type.
	// A nil source results in a nil value and no error.
	Create(src interface{}) (values.Value, error)
	// CreateDecoded decodes the text with a given decoder (or the default one, if nil) and converts it.
	CreateDecoded(s string, dec codec.Decoder) (values.Value, error)
	// CreateFromStream reads the stream fully and converts its content.
	// The length is only a hint and may be negative if unknown.
	CreateFromStream(r io.Reader, approxLen int64) (values.Value, error)
	// CreateFromRunes reads the character stream fully and converts its content.
	CreateFromRunes(r io.RuneReader, approxLen int64) (values.Value, error)
	// Values returns a lazy sequence of converted values.
	Values(src base.Source) *Iterator[values.Value]
}

// ValueFactory creates values of a specific type T from every supported source type.
type ValueFactory[T values.Value] interface {
	Factory

	// Decoder returns the explicit decoder if it is set, or the default decoder of this factory.
	Decoder(explicit codec.Decoder) codec.Decoder
	// NewArray allocates a slice for n values.
	NewArray(n int) []T

	FromString(s string) (T, error)
	FromDecoded(s string, dec codec.Decoder) (T, error)
	FromInt(v int32) (T, error)
	FromLong(v int64) (T, error)
	FromFloat(v float32) (T, error)
	FromDouble(v float64) (T, error)
	FromBool(v bool) (T, error)
	FromDecimal(v values.Decimal) (T, error)
	FromTime(v time.Time) (T, error)
	FromDateTime(v values.DateTime) (T, error)
	FromName(v values.Name) (T, error)
	FromPath(v values.Path) (T, error)
	FromReference(v values.Reference) (T, error)
	FromURI(v values.URI) (T, error)
	FromUUID(v values.UUID) (T, error)
	FromBytes(v []byte) (T, error)
	FromBinary(v values.Binary) (T, error)
	FromStream(r io.Reader, approxLen int64) (T, error)
	FromRunes(r io.RuneReader, approxLen int64) (T, error)

	// Iterate returns a lazy sequence of converted values.
	Iterate(src base.Source) *Iterator[T]
}

// ByteStream is a byte stream source with an approximate length of its content.
type ByteStream struct {
	R         io.Reader
	ApproxLen int64
}

// CharStream is a character stream source with an approximate length of its content.
type CharStream struct {
	R         io.RuneReader
	ApproxLen int64
}

// valueFactory holds the state shared by all factories and implements
// the conversions that do not depend on the target type.
type valueFactory[T values.Value] struct {
	typ     values.PropertyType
	decoder codec.Decoder
	strings *StringFactory
	self    ValueFactory[T]
}

func newValueFactory[T values.Value](typ values.PropertyType, dec codec.Decoder, strs *StringFactory, self ValueFactory[T]) valueFactory[T] {
	if dec == nil {
		dec = codec.NoOp{}
	}
	if strs == nil {
		strs = NewStringFactory(dec, nil)
	}
	return valueFactory[T]{typ: typ, decoder: dec, strings: strs, self: self}
}

func (f *valueFactory[T]) PropertyType() values.PropertyType {
	return f.typ
}

func (f *valueFactory[T]) Decoder(explicit codec.Decoder) codec.Decoder {
	if explicit != nil {
		return explicit
	}
	return f.decoder
}

func (f *valueFactory[T]) NewArray(n int) []T {
	return make([]T, n)
}

func (f *valueFactory[T]) FromDecoded(s string, dec codec.Decoder) (T, error) {
	return f.self.FromString(f.Decoder(dec).Decode(strings.TrimSpace(s)))
}

func (f *valueFactory[T]) FromBytes(v []byte) (T, error) {
	s, err := f.strings.FromBytes(v)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.self.FromString(string(s))
}

func (f *valueFactory[T]) FromBinary(v values.Binary) (T, error) {
	s, err := f.strings.FromBinary(v)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.self.FromString(string(s))
}

func (f *valueFactory[T]) FromStream(r io.Reader, approxLen int64) (T, error) {
	s, err := f.strings.FromStream(r, approxLen)
	if err != nil {
		var zero T
		return zero, withType(err, f.typ)
	}
	return f.self.FromString(string(s))
}

func (f *valueFactory[T]) FromRunes(r io.RuneReader, approxLen int64) (T, error) {
	s, err := f.strings.FromRunes(r, approxLen)
	if err != nil {
		var zero T
		return zero, withType(err, f.typ)
	}
	return f.self.FromString(string(s))
}

func (f *valueFactory[T]) Create(src interface{}) (values.Value, error) {
	v, ok, err := convert(f.self, src)
	if err != nil || !ok {
		return nil, err
	}
	return v, nil
}

func (f *valueFactory[T]) CreateDecoded(s string, dec codec.Decoder) (values.Value, error) {
	return box(f.self.FromDecoded(s, dec))
}

func (f *valueFactory[T]) CreateFromStream(r io.Reader, approxLen int64) (values.Value, error) {
	if isNilReader(r) {
		return nil, nil
	}
	return box(f.self.FromStream(r, approxLen))
}

func (f *valueFactory[T]) CreateFromRunes(r io.RuneReader, approxLen int64) (values.Value, error) {
	if isNilReader(r) {
		return nil, nil
	}
	return box(f.self.FromRunes(r, approxLen))
}

func (f *valueFactory[T]) Iterate(src base.Source) *Iterator[T] {
	return newIterator(src, func(v interface{}) (T, bool, error) {
		return convert(f.self, v)
	})
}

func (f *valueFactory[T]) Values(src base.Source) *Iterator[values.Value] {
	return newIterator(src, func(v interface{}) (values.Value, bool, error) {
		out, err := f.Create(v)
		return out, out != nil, err
	})
}

// reject returns an error for a source that cannot be represented as the factory type.
func (f *valueFactory[T]) reject(src interface{}) (T, error) {
	var zero T
	return zero, newRejectError(f.typ, src)
}

// invalid returns an error for a malformed text representation.
func (f *valueFactory[T]) invalid(src interface{}, text string, err error) (T, error) {
	var zero T
	return zero, newParseError(f.typ, src, text, err)
}

// isNilReader reports if r is nil or holds a nil pointer, map, channel, func or slice.
func isNilReader(r interface{}) bool {
	if r == nil {
		return true
	}
	switch rv := reflect.ValueOf(r); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func box[T values.Value](v T, err error) (values.Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// convert dispatches the source by its dynamic type to a typed conversion of f.
// It returns false if the source is nil.
func convert[T values.Value](f ValueFactory[T], src interface{}) (v T, ok bool, err error) {
	switch s := src.(type) {
	case nil:
		return v, false, nil
	case string:
		v, err = f.FromString(s)
	case values.String:
		v, err = f.FromString(string(s))
	case int:
		v, err = f.FromLong(int64(s))
	case int8:
		v, err = f.FromInt(int32(s))
	case int16:
		v, err = f.FromInt(int32(s))
	case int32:
		v, err = f.FromInt(s)
	case int64:
		v, err = f.FromLong(s)
	case values.Long:
		v, err = f.FromLong(int64(s))
	case uint8:
		v, err = f.FromInt(int32(s))
	case uint16:
		v, err = f.FromInt(int32(s))
	case uint32:
		v, err = f.FromLong(int64(s))
	case uint:
		if uint64(s) > math.MaxInt64 {
			return v, false, newRejectError(f.PropertyType(), src)
		}
		v, err = f.FromLong(int64(s))
	case uint64:
		if s > math.MaxInt64 {
			return v, false, newRejectError(f.PropertyType(), src)
		}
		v, err = f.FromLong(int64(s))
	case float32:
		v, err = f.FromFloat(s)
	case values.Float:
		v, err = f.FromFloat(float32(s))
	case float64:
		v, err = f.FromDouble(s)
	case values.Double:
		v, err = f.FromDouble(float64(s))
	case bool:
		v, err = f.FromBool(s)
	case values.Boolean:
		v, err = f.FromBool(bool(s))
	case decimal.Decimal:
		v, err = f.FromDecimal(values.AsDecimal(s))
	case *decimal.Decimal:
		if s == nil {
			return v, false, nil
		}
		v, err = f.FromDecimal(values.AsDecimal(*s))
	case values.Decimal:
		v, err = f.FromDecimal(s)
	case time.Time:
		v, err = f.FromTime(s)
	case *time.Time:
		if s == nil {
			return v, false, nil
		}
		v, err = f.FromTime(*s)
	case values.DateTime:
		v, err = f.FromDateTime(s)
	case values.Name:
		v, err = f.FromName(s)
	case values.Path:
		v, err = f.FromPath(s)
	case values.Reference:
		v, err = f.FromReference(s)
	case values.URI:
		v, err = f.FromURI(s)
	case *url.URL:
		if s == nil {
			return v, false, nil
		}
		v, err = f.FromURI(values.URI(s.String()))
	case values.UUID:
		v, err = f.FromUUID(s)
	case uuid.UUID:
		v, err = f.FromUUID(values.UUID(s))
	case []byte:
		if s == nil {
			return v, false, nil
		}
		v, err = f.FromBytes(s)
	case values.Binary:
		if s == nil {
			return v, false, nil
		}
		v, err = f.FromBinary(s)
	case ByteStream:
		if isNilReader(s.R) {
			return v, false, nil
		}
		v, err = f.FromStream(s.R, s.ApproxLen)
	case CharStream:
		if isNilReader(s.R) {
			return v, false, nil
		}
		v, err = f.FromRunes(s.R, s.ApproxLen)
	case io.Reader:
		if isNilReader(s) {
			return v, false, nil
		}
		v, err = f.FromStream(s, -1)
	case io.RuneReader:
		if isNilReader(s) {
			return v, false, nil
		}
		v, err = f.FromRunes(s, -1)
	default:
		return v, false, newRejectError(f.PropertyType(), src)
	}
	if err != nil {
		var zero T
		return zero, false, err
	}
	return v, true, nil
}
