package factory

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/hidal-go/graphval/base"
	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

func requireDecimal(t testing.TB, exp string, v values.Value) {
	t.Helper()
	d, ok := v.(values.Decimal)
	require.True(t, ok, "expected decimal, got %T", v)
	require.True(t, decimal.RequireFromString(exp).Equal(d.Decimal), "expected %s, got %s", exp, d)
}

func requireFormatError(t testing.TB, err error, src interface{}, typ values.PropertyType) *ValueFormatError {
	t.Helper()
	var verr *ValueFormatError
	require.True(t, errors.As(err, &verr), "expected format error, got %v", err)
	if x, ok := src.(float64); ok && math.IsNaN(x) {
		require.True(t, math.IsNaN(verr.Value.(float64)))
	} else {
		require.Equal(t, src, verr.Value)
	}
	require.Equal(t, typ, verr.Type)
	return verr
}

func TestDecimalCreate(t *testing.T) {
	f := NewDecimalFactory(nil, nil)
	cases := []struct {
		name string
		src  interface{}
		exp  string
	}{
		{"text", "42", "42"},
		{"text spaces", "  3.14  ", "3.14"},
		{"text exponent", "1e3", "1000"},
		{"string value", values.String("-0.5"), "-0.5"},
		{"int", 7, "7"},
		{"int8", int8(-8), "-8"},
		{"int32", int32(32), "32"},
		{"int64", int64(math.MaxInt64), "9223372036854775807"},
		{"uint64", uint64(64), "64"},
		{"long value", values.Long(-3), "-3"},
		{"double", 0.1, "0.1"},
		{"double value", values.Double(2.5), "2.5"},
		{"float", float32(0.1), "0.1"},
		{"float value", values.Float(1.25), "1.25"},
		{"decimal", decimal.RequireFromString("1.50"), "1.5"},
		{"time", time.UnixMilli(1500), "1500"},
		{"date", values.DateTimeFromMillis(1000), "1000"},
		{"bytes", []byte(" 12.5 "), "12.5"},
		{"binary", values.Binary("99"), "99"},
		{"byte stream", ByteStream{R: strings.NewReader("12.50"), ApproxLen: 2}, "12.5"},
		{"char stream", CharStream{R: strings.NewReader("7"), ApproxLen: 100}, "7"},
		{"reader", strings.NewReader("-1"), "-1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := f.Create(c.src)
			require.NoError(t, err)
			requireDecimal(t, c.exp, v)
		})
	}
}

func TestDecimalIdentity(t *testing.T) {
	f := NewDecimalFactory(nil, nil)
	d := values.AsDecimal(decimal.New(314, -2))
	v, err := f.FromDecimal(d)
	require.NoError(t, err)
	require.Equal(t, d, v)

	out, err := f.Create(d)
	require.NoError(t, err)
	require.Equal(t, values.Value(d), out)
}

func TestDecimalFidelity(t *testing.T) {
	f := NewDecimalFactory(nil, nil)
	v, err := f.FromDouble(0.1)
	require.NoError(t, err)
	require.Equal(t, "0.1", v.String())

	v, err = f.FromFloat(0.1)
	require.NoError(t, err)
	require.Equal(t, "0.1", v.String())

	v, err = f.FromDouble(1e21)
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000000", v.String())

	for _, x := range []float64{math.NaN(), math.Inf(+1), math.Inf(-1)} {
		_, err = f.FromDouble(x)
		requireFormatError(t, err, x, values.TypeDecimal)
	}
}

func TestDecimalNull(t *testing.T) {
	f := NewDecimalFactory(nil, nil)
	for _, src := range []interface{}{
		nil, []byte(nil), values.Binary(nil), (*time.Time)(nil), (*decimal.Decimal)(nil),
		ByteStream{}, CharStream{},
	} {
		v, err := f.Create(src)
		require.NoError(t, err)
		require.Nil(t, v)
	}
	v, err := f.CreateFromStream(nil, 10)
	require.NoError(t, err)
	require.Nil(t, v)
	v, err = f.CreateFromRunes(nil, 10)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestDecimalInvalidText(t *testing.T) {
	f := NewDecimalFactory(nil, nil)
	_, err := f.Create("not-a-number")
	verr := requireFormatError(t, err, "not-a-number", values.TypeDecimal)
	require.NotNil(t, errors.Unwrap(verr))
	require.Contains(t, verr.Error(), `error converting String to Decimal: "not-a-number"`)

	_, err = f.FromString("")
	requireFormatError(t, err, "", values.TypeDecimal)
}

func TestDecimalRejects(t *testing.T) {
	f := NewDecimalFactory(nil, nil)
	for _, src := range []interface{}{
		true,
		values.Name{Local: "a"},
		values.Path{Absolute: true},
		values.Reference("r"),
		values.URI("http://example.com"),
		values.UUID{},
		uint64(math.MaxUint64),
		struct{}{},
	} {
		v, err := f.Create(src)
		require.Nil(t, v)
		requireFormatError(t, err, src, values.TypeDecimal)
	}
	_, err := f.Create(true)
	require.EqualError(t, err, "unable to create Decimal value from Boolean: true")
}

func TestDecimalBridge(t *testing.T) {
	f := NewDecimalFactory(nil, nil)
	for _, b := range [][]byte{[]byte("1"), []byte("\xef\xbb\xbf2.5"), []byte(" -3 ")} {
		s, err := f.strings.FromBytes(b)
		require.NoError(t, err)
		exp, err := f.FromString(string(s))
		require.NoError(t, err)
		got, err := f.FromBytes(b)
		require.NoError(t, err)
		require.True(t, exp.Equal(got.Decimal))
	}
	_, err := f.FromBytes([]byte("x"))
	requireFormatError(t, err, "x", values.TypeDecimal)
}

func TestDecimalStreamError(t *testing.T) {
	f := NewDecimalFactory(nil, nil)
	boom := errors.New("boom")
	_, err := f.CreateFromStream(iotest.ErrReader(boom), 10)
	var ioerr *IOError
	require.True(t, errors.As(err, &ioerr))
	require.Equal(t, values.TypeDecimal, ioerr.Type)
	require.True(t, errors.Is(err, boom))

	_, err = f.Create(CharStream{R: strings.NewReader("1"), ApproxLen: 1})
	require.NoError(t, err)
}

func TestDecimalDecoder(t *testing.T) {
	f := NewDecimalFactory(codec.URL{}, nil)
	require.Equal(t, codec.URL{}, f.Decoder(nil))
	require.Equal(t, codec.NoOp{}, f.Decoder(codec.NoOp{}))

	v, err := f.CreateDecoded(" 1%2E5 ", nil)
	require.NoError(t, err)
	requireDecimal(t, "1.5", v)

	_, err = f.FromDecoded("1%2E5", codec.NoOp{})
	require.Error(t, err)

	v, err = NewDecimalFactory(nil, nil).CreateDecoded("2%2E5", codec.URL{})
	require.NoError(t, err)
	requireDecimal(t, "2.5", v)
}

func TestDecimalIterate(t *testing.T) {
	ctx := context.Background()
	f := NewDecimalFactory(nil, nil)
	it := f.Iterate(base.Slice("1", "2", "x", "3"))
	defer it.Close()

	require.True(t, it.Next(ctx))
	v, ok := it.Value()
	require.True(t, ok)
	require.Equal(t, "1", v.String())

	require.True(t, it.Next(ctx))
	v, ok = it.Value()
	require.True(t, ok)
	require.Equal(t, "2", v.String())

	require.False(t, it.Next(ctx))
	requireFormatError(t, it.Err(), "x", values.TypeDecimal)
	require.False(t, it.Next(ctx))
}

func TestDecimalNewArray(t *testing.T) {
	f := NewDecimalFactory(nil, nil)
	arr := f.NewArray(3)
	require.Len(t, arr, 3)
	require.Empty(t, f.NewArray(0))
	require.Equal(t, values.TypeDecimal, f.PropertyType())
}
