// Package codec defines text decoding strategies applied to encoded textual values before they are parsed.
package codec

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Decoder decodes an encoded textual representation into literal text.
// Implementations must be pure and safe for concurrent use.
type Decoder interface {
	Decode(s string) string
}

// DecoderFunc is an adapter to use ordinary functions as a Decoder.
type DecoderFunc func(s string) string

func (f DecoderFunc) Decode(s string) string {
	return f(s)
}

var (
	_ Decoder = NoOp{}
	_ Decoder = URL{}
	_ Decoder = DecoderFunc(nil)
)

// NoOp returns the text unchanged.
type NoOp struct{}

func (NoOp) Decode(s string) string {
	return s
}

// URL decodes percent-encoded text.
//
// When Query is set, '+' is decoded as a space, as in URL query components.
// Text that is not a valid encoding is returned unchanged.
type URL struct {
	Query bool
}

func (d URL) Decode(s string) string {
	var (
		out string
		err error
	)
	if d.Query {
		out, err = url.QueryUnescape(s)
	} else {
		out, err = url.PathUnescape(s)
	}
	if err != nil {
		return s
	}
	return out
}

var byName = map[string]Decoder{
	"noop":  NoOp{},
	"url":   URL{},
	"query": URL{Query: true},
}

// Names lists the names of all standard decoders.
func Names() []string {
	out := make([]string, 0, len(byName))
	for name := range byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ByName returns a standard decoder by its name. An empty name selects NoOp.
func ByName(name string) (Decoder, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return NoOp{}, nil
	}
	d, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown decoder: %q", name)
	}
	return d, nil
}
