package factory

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hidal-go/graphval/values"
)

// ErrNotRegistered is returned when no factory is registered for a property type.
var ErrNotRegistered = errors.New("factory: no factory for the property type")

var (
	_ error = (*ValueFormatError)(nil)
	_ error = (*IOError)(nil)
)

// ValueFormatError is returned when a source value cannot be represented as the target type.
type ValueFormatError struct {
	Value interface{}         // rejected source value
	Type  values.PropertyType // target type
	Msg   string
	Err   error // parser error, if any
}

func (e *ValueFormatError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ValueFormatError) Unwrap() error {
	return e.Err
}

func newRejectError(t values.PropertyType, src interface{}) *ValueFormatError {
	return &ValueFormatError{
		Value: src, Type: t,
		Msg: fmt.Sprintf("unable to create %s value from %s: %v", t, shapeOf(src), src),
	}
}

func newParseError(t values.PropertyType, src interface{}, text string, err error) *ValueFormatError {
	return &ValueFormatError{
		Value: src, Type: t, Err: err,
		Msg: fmt.Sprintf("error converting %s to %s: %q", shapeOf(src), t, text),
	}
}

// IOError is returned when a stream source cannot be read.
type IOError struct {
	Type values.PropertyType // target type
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("unable to read %s value: %v", e.Type, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// withType re-targets an IOError from the string bridge to the type of the calling factory.
func withType(err error, t values.PropertyType) error {
	var ioe *IOError
	if errors.As(err, &ioe) && ioe.Type != t {
		return &IOError{Type: t, Err: ioe.Err}
	}
	return err
}

// shapeOf describes the kind of a source value for error messages.
func shapeOf(src interface{}) string {
	switch s := src.(type) {
	case values.Value:
		return s.Type().String()
	case string:
		return values.TypeString.String()
	case bool:
		return values.TypeBoolean.String()
	case int8, int16, int32, uint8, uint16:
		return "Integer"
	case int, int64, uint, uint32, uint64:
		return values.TypeLong.String()
	case float32:
		return values.TypeFloat.String()
	case float64:
		return values.TypeDouble.String()
	case decimal.Decimal:
		return values.TypeDecimal.String()
	case time.Time:
		return values.TypeDate.String()
	case []byte:
		return "byte array"
	}
	return fmt.Sprintf("%T", src)
}
