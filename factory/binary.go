package factory

import (
	"bytes"
	"io"
	"time"

	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

var _ ValueFactory[values.Binary] = (*BinaryFactory)(nil)

// BinaryFactory is a factory for Binary values.
//
// Byte arrays and byte streams are copied as is. Any other source is stored as the UTF-8
// encoding of its String form, so every value can be represented as a binary payload.
type BinaryFactory struct {
	valueFactory[values.Binary]
}

func NewBinaryFactory(dec codec.Decoder, strs *StringFactory) *BinaryFactory {
	f := &BinaryFactory{}
	f.valueFactory = newValueFactory[values.Binary](values.TypeBinary, dec, strs, f)
	return f
}

func (f *BinaryFactory) text(s values.String, err error) (values.Binary, error) {
	if err != nil {
		return nil, withType(err, f.typ)
	}
	return values.Binary(s), nil
}

func (f *BinaryFactory) FromString(s string) (values.Binary, error) {
	return values.Binary(s), nil
}

// FromDecoded decodes the text and stores it without trimming.
func (f *BinaryFactory) FromDecoded(s string, dec codec.Decoder) (values.Binary, error) {
	return f.text(f.strings.FromDecoded(s, f.Decoder(dec)))
}

func (f *BinaryFactory) FromInt(v int32) (values.Binary, error) {
	return f.text(f.strings.FromInt(v))
}

func (f *BinaryFactory) FromLong(v int64) (values.Binary, error) {
	return f.text(f.strings.FromLong(v))
}

func (f *BinaryFactory) FromFloat(v float32) (values.Binary, error) {
	return f.text(f.strings.FromFloat(v))
}

func (f *BinaryFactory) FromDouble(v float64) (values.Binary, error) {
	return f.text(f.strings.FromDouble(v))
}

func (f *BinaryFactory) FromBool(v bool) (values.Binary, error) {
	return f.text(f.strings.FromBool(v))
}

func (f *BinaryFactory) FromDecimal(v values.Decimal) (values.Binary, error) {
	return f.text(f.strings.FromDecimal(v))
}

func (f *BinaryFactory) FromTime(v time.Time) (values.Binary, error) {
	return f.text(f.strings.FromTime(v))
}

func (f *BinaryFactory) FromDateTime(v values.DateTime) (values.Binary, error) {
	return f.text(f.strings.FromDateTime(v))
}

func (f *BinaryFactory) FromName(v values.Name) (values.Binary, error) {
	return f.text(f.strings.FromName(v))
}

func (f *BinaryFactory) FromPath(v values.Path) (values.Binary, error) {
	return f.text(f.strings.FromPath(v))
}

func (f *BinaryFactory) FromReference(v values.Reference) (values.Binary, error) {
	return f.text(f.strings.FromReference(v))
}

func (f *BinaryFactory) FromURI(v values.URI) (values.Binary, error) {
	return f.text(f.strings.FromURI(v))
}

func (f *BinaryFactory) FromUUID(v values.UUID) (values.Binary, error) {
	return f.text(f.strings.FromUUID(v))
}

func (f *BinaryFactory) FromBytes(v []byte) (values.Binary, error) {
	return values.Binary(bytes.Clone(v)), nil
}

func (f *BinaryFactory) FromBinary(v values.Binary) (values.Binary, error) {
	return v, nil
}

func (f *BinaryFactory) FromStream(r io.Reader, approxLen int64) (values.Binary, error) {
	var buf bytes.Buffer
	buf.Grow(sizeHint(approxLen))
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, &IOError{Type: f.typ, Err: err}
	} else if buf.Len() == 0 {
		return values.Binary{}, nil
	}
	return values.Binary(buf.Bytes()), nil
}

func (f *BinaryFactory) FromRunes(r io.RuneReader, approxLen int64) (values.Binary, error) {
	return f.text(f.strings.FromRunes(r, approxLen))
}
