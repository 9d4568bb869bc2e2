package factory

import (
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

// maxSizeHint limits the buffer preallocated from a length hint of a stream.
const maxSizeHint = 1 << 20

func sizeHint(n int64) int {
	if n <= 0 {
		return 0
	} else if n > maxSizeHint {
		return maxSizeHint
	}
	return int(n)
}

var _ ValueFactory[values.String] = (*StringFactory)(nil)

// StringFactory is a factory for String values.
//
// Every other factory uses it to render byte arrays, binary payloads and streams as text.
// Bytes are decoded as UTF-8, unless a byte order mark selects another Unicode encoding.
type StringFactory struct {
	valueFactory[values.String]
	ns values.Namespaces
}

// NewStringFactory creates a String factory. Names and paths are rendered using prefixes from ns, if any.
func NewStringFactory(dec codec.Decoder, ns values.Namespaces) *StringFactory {
	f := &StringFactory{ns: ns}
	f.valueFactory = newValueFactory[values.String](values.TypeString, dec, f, f)
	return f
}

func (f *StringFactory) FromString(s string) (values.String, error) {
	return values.String(s), nil
}

// FromDecoded decodes the text. Unlike other factories, the text is not trimmed.
func (f *StringFactory) FromDecoded(s string, dec codec.Decoder) (values.String, error) {
	return values.String(f.Decoder(dec).Decode(s)), nil
}

func (f *StringFactory) FromInt(v int32) (values.String, error) {
	return values.String(strconv.FormatInt(int64(v), 10)), nil
}

func (f *StringFactory) FromLong(v int64) (values.String, error) {
	return values.String(strconv.FormatInt(v, 10)), nil
}

func (f *StringFactory) FromFloat(v float32) (values.String, error) {
	return values.String(values.Float(v).String()), nil
}

func (f *StringFactory) FromDouble(v float64) (values.String, error) {
	return values.String(values.Double(v).String()), nil
}

func (f *StringFactory) FromBool(v bool) (values.String, error) {
	return values.String(strconv.FormatBool(v)), nil
}

func (f *StringFactory) FromDecimal(v values.Decimal) (values.String, error) {
	return values.String(v.String()), nil
}

func (f *StringFactory) FromTime(v time.Time) (values.String, error) {
	return values.String(values.AsDateTime(v).String()), nil
}

func (f *StringFactory) FromDateTime(v values.DateTime) (values.String, error) {
	return values.String(v.String()), nil
}

func (f *StringFactory) FromName(v values.Name) (values.String, error) {
	return values.String(v.Format(f.ns)), nil
}

func (f *StringFactory) FromPath(v values.Path) (values.String, error) {
	var sb strings.Builder
	if v.Absolute {
		sb.WriteByte('/')
	}
	for i, s := range v.Segments {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(s.Name.Format(f.ns))
		if s.Index > 1 {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(s.Index))
			sb.WriteByte(']')
		}
	}
	return values.String(sb.String()), nil
}

func (f *StringFactory) FromReference(v values.Reference) (values.String, error) {
	return values.String(v), nil
}

func (f *StringFactory) FromURI(v values.URI) (values.String, error) {
	return values.String(v), nil
}

func (f *StringFactory) FromUUID(v values.UUID) (values.String, error) {
	return values.String(v.String()), nil
}

func newTextDecoder() transform.Transformer {
	return unicode.BOMOverride(unicode.UTF8.NewDecoder())
}

func (f *StringFactory) FromBytes(v []byte) (values.String, error) {
	out, _, err := transform.Bytes(newTextDecoder(), v)
	if err != nil {
		return f.invalid(v, string(v), err)
	}
	return values.String(out), nil
}

func (f *StringFactory) FromBinary(v values.Binary) (values.String, error) {
	return f.FromBytes(v)
}

func (f *StringFactory) FromStream(r io.Reader, approxLen int64) (values.String, error) {
	var sb strings.Builder
	sb.Grow(sizeHint(approxLen))
	if _, err := io.Copy(&sb, transform.NewReader(r, newTextDecoder())); err != nil {
		return "", &IOError{Type: f.typ, Err: err}
	}
	return values.String(sb.String()), nil
}

func (f *StringFactory) FromRunes(r io.RuneReader, approxLen int64) (values.String, error) {
	var sb strings.Builder
	sb.Grow(sizeHint(approxLen))
	for {
		c, _, err := r.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", &IOError{Type: f.typ, Err: err}
		}
		sb.WriteRune(c)
	}
	return values.String(sb.String()), nil
}
