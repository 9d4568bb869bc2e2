package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecoders(t *testing.T) {
	cases := []struct {
		name string
		dec  Decoder
		in   string
		exp  string
	}{
		{"noop", NoOp{}, "a%20b+c", "a%20b+c"},
		{"url", URL{}, "a%20b+c", "a b+c"},
		{"url invalid", URL{}, "100%", "100%"},
		{"query", URL{Query: true}, "a%20b+c", "a b c"},
		{"func", DecoderFunc(strings.ToUpper), "abc", "ABC"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.exp, c.dec.Decode(c.in))
		})
	}
}

func TestByName(t *testing.T) {
	require.Equal(t, []string{"noop", "query", "url"}, Names())
	for _, name := range Names() {
		d, err := ByName(strings.ToUpper(name))
		require.NoError(t, err)
		require.NotNil(t, d)
	}
	d, err := ByName("")
	require.NoError(t, err)
	require.Equal(t, NoOp{}, d)

	_, err = ByName("base64")
	require.Error(t, err)
}
