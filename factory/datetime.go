package factory

import (
	"strings"
	"time"

	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

var _ ValueFactory[values.DateTime] = (*DateTimeFactory)(nil)

// dateTimeLayouts are ISO-8601 forms accepted from text. Times without a zone are in UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// DateTimeFactory is a factory for Date values.
//
// Numbers are interpreted as milliseconds since the Unix epoch; fractions of a millisecond are truncated.
type DateTimeFactory struct {
	valueFactory[values.DateTime]
}

func NewDateTimeFactory(dec codec.Decoder, strs *StringFactory) *DateTimeFactory {
	f := &DateTimeFactory{}
	f.valueFactory = newValueFactory[values.DateTime](values.TypeDate, dec, strs, f)
	return f
}

func (f *DateTimeFactory) FromString(s string) (values.DateTime, error) {
	t := strings.TrimSpace(s)
	var last error
	for _, layout := range dateTimeLayouts {
		v, err := time.Parse(layout, t)
		if err == nil {
			return values.AsDateTime(v), nil
		}
		last = err
	}
	return f.invalid(s, s, last)
}

func (f *DateTimeFactory) FromInt(v int32) (values.DateTime, error) {
	return values.DateTimeFromMillis(int64(v)), nil
}

func (f *DateTimeFactory) FromLong(v int64) (values.DateTime, error) {
	return values.DateTimeFromMillis(v), nil
}

func (f *DateTimeFactory) FromFloat(v float32) (values.DateTime, error) {
	ms, ok := floatToLong(float64(v))
	if !ok {
		return f.reject(v)
	}
	return values.DateTimeFromMillis(ms), nil
}

func (f *DateTimeFactory) FromDouble(v float64) (values.DateTime, error) {
	ms, ok := floatToLong(v)
	if !ok {
		return f.reject(v)
	}
	return values.DateTimeFromMillis(ms), nil
}

func (f *DateTimeFactory) FromBool(v bool) (values.DateTime, error) {
	return f.reject(v)
}

func (f *DateTimeFactory) FromDecimal(v values.Decimal) (values.DateTime, error) {
	ms, ok := decimalToLong(v.Decimal)
	if !ok {
		return f.reject(v)
	}
	return values.DateTimeFromMillis(ms), nil
}

func (f *DateTimeFactory) FromTime(v time.Time) (values.DateTime, error) {
	return values.AsDateTime(v), nil
}

func (f *DateTimeFactory) FromDateTime(v values.DateTime) (values.DateTime, error) {
	return v, nil
}

func (f *DateTimeFactory) FromName(v values.Name) (values.DateTime, error) {
	return f.reject(v)
}

func (f *DateTimeFactory) FromPath(v values.Path) (values.DateTime, error) {
	return f.reject(v)
}

func (f *DateTimeFactory) FromReference(v values.Reference) (values.DateTime, error) {
	return f.reject(v)
}

func (f *DateTimeFactory) FromURI(v values.URI) (values.DateTime, error) {
	return f.reject(v)
}

func (f *DateTimeFactory) FromUUID(v values.UUID) (values.DateTime, error) {
	return f.reject(v)
}
