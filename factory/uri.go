package factory

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

var _ ValueFactory[values.URI] = (*URIFactory)(nil)

var errEmptyURI = errors.New("empty URI")

// URIFactory is a factory for URI values. Text is parsed as a URI reference and stored in its normalized form.
type URIFactory struct {
	valueFactory[values.URI]
}

func NewURIFactory(dec codec.Decoder, strs *StringFactory) *URIFactory {
	f := &URIFactory{}
	f.valueFactory = newValueFactory[values.URI](values.TypeURI, dec, strs, f)
	return f
}

func (f *URIFactory) FromString(s string) (values.URI, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return f.invalid(s, s, errEmptyURI)
	}
	u, err := url.Parse(t)
	if err != nil {
		return f.invalid(s, s, err)
	}
	return values.URI(u.String()), nil
}

func (f *URIFactory) FromInt(v int32) (values.URI, error) {
	return f.reject(v)
}

func (f *URIFactory) FromLong(v int64) (values.URI, error) {
	return f.reject(v)
}

func (f *URIFactory) FromFloat(v float32) (values.URI, error) {
	return f.reject(v)
}

func (f *URIFactory) FromDouble(v float64) (values.URI, error) {
	return f.reject(v)
}

func (f *URIFactory) FromBool(v bool) (values.URI, error) {
	return f.reject(v)
}

func (f *URIFactory) FromDecimal(v values.Decimal) (values.URI, error) {
	return f.reject(v)
}

func (f *URIFactory) FromTime(v time.Time) (values.URI, error) {
	return f.reject(v)
}

func (f *URIFactory) FromDateTime(v values.DateTime) (values.URI, error) {
	return f.reject(v)
}

func (f *URIFactory) FromName(v values.Name) (values.URI, error) {
	return f.reject(v)
}

func (f *URIFactory) FromPath(v values.Path) (values.URI, error) {
	return f.reject(v)
}

func (f *URIFactory) FromReference(v values.Reference) (values.URI, error) {
	return f.reject(v)
}

func (f *URIFactory) FromURI(v values.URI) (values.URI, error) {
	return v, nil
}

func (f *URIFactory) FromUUID(v values.UUID) (values.URI, error) {
	return f.reject(v)
}
