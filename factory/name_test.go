package factory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

func seg(ns, local string, index int) values.Segment {
	return values.Segment{Name: values.Name{Namespace: ns, Local: local}, Index: index}
}

func TestNameCreate(t *testing.T) {
	f := NewNameFactory(nil, nil, testNamespaces)
	runConvCases(t, f, []convCase{
		{name: "prefixed", src: "dna:node", exp: values.Name{Namespace: "http://www.jboss.org/dna", Local: "node"}},
		{name: "expanded", src: " {urn:x}a ", exp: values.Name{Namespace: "urn:x", Local: "a"}},
		{name: "default ns", src: "local", exp: values.Name{Namespace: "urn:default", Local: "local"}},
		{name: "unknown prefix", src: "bad:x", err: true},
		{name: "empty", src: "  ", err: true},
		{name: "empty local", src: "dna:", err: true},
		{name: "unterminated", src: "{urn:x", err: true},
		{name: "slash", src: "a/b", err: true},
		{name: "path", src: values.Path{Segments: []values.Segment{seg("urn:x", "a", 1)}}, exp: values.Name{Namespace: "urn:x", Local: "a"}},
		{name: "absolute path", src: values.Path{Absolute: true, Segments: []values.Segment{seg("", "a", 1)}}, exp: values.Name{Local: "a"}},
		{name: "long path", src: values.Path{Segments: []values.Segment{seg("", "a", 1), seg("", "b", 1)}}, err: true},
		{name: "indexed path", src: values.Path{Segments: []values.Segment{seg("", "a", 2)}}, err: true},
		{name: "parent path", src: values.Path{Segments: []values.Segment{seg("", values.ParentName, 1)}}, err: true},
		{name: "root path", src: values.Path{Absolute: true}, err: true},
		{name: "long", src: int64(1), err: true},
		{name: "reference", src: values.Reference("a"), err: true},
		{name: "bytes", src: []byte("dna:node"), exp: values.Name{Namespace: "http://www.jboss.org/dna", Local: "node"}},
	})
}

func TestNameDecoded(t *testing.T) {
	f := NewNameFactory(codec.URL{}, nil, nil)
	v, err := f.FromString("{urn%3Ax}a%20b")
	require.NoError(t, err)
	require.Equal(t, values.Name{Namespace: "urn:x", Local: "a b"}, v)

	// an encoded slash is part of the local name
	v, err = f.FromString("a%2Fb")
	require.NoError(t, err)
	require.Equal(t, values.Name{Local: "a/b"}, v)

	v, err = f.FromDecoded("a%20b", codec.NoOp{})
	require.NoError(t, err)
	require.Equal(t, values.Name{Local: "a%20b"}, v)

	out, err := NewNameFactory(nil, nil, nil).CreateDecoded("x%3Ay", codec.URL{})
	require.NoError(t, err)
	require.Equal(t, values.Name{Local: "x:y"}, out)
}

func TestPathCreate(t *testing.T) {
	f := NewPathFactory(nil, nil, testNamespaces)
	runConvCases(t, f, []convCase{
		{name: "root", src: "/", exp: values.Path{Absolute: true}},
		{name: "absolute", src: "/dna:a/b[2]/..", exp: values.Path{Absolute: true, Segments: []values.Segment{
			seg("http://www.jboss.org/dna", "a", 1),
			seg("urn:default", "b", 2),
			seg("", values.ParentName, 1),
		}}},
		{name: "relative", src: " ./a/ ", exp: values.Path{Segments: []values.Segment{
			seg("", values.SelfName, 1),
			seg("urn:default", "a", 1),
		}}},
		{name: "expanded ns", src: "{http://a/b}c/d", exp: values.Path{Segments: []values.Segment{
			seg("http://a/b", "c", 1),
			seg("urn:default", "d", 1),
		}}},
		{name: "empty", src: "", err: true},
		{name: "empty segment", src: "a//b", err: true},
		{name: "zero index", src: "a[0]", err: true},
		{name: "bad index", src: "a[x]", err: true},
		{name: "unterminated index", src: "a]", err: true},
		{name: "indexed self", src: ".[2]", err: true},
		{name: "name", src: values.Name{Namespace: "urn:x", Local: "a"}, exp: values.Path{Segments: []values.Segment{seg("urn:x", "a", 1)}}},
		{name: "uri", src: values.URI("/a"), err: true},
		{name: "double", src: 1.0, err: true},
	})
}

func TestPathDecoded(t *testing.T) {
	f := NewPathFactory(codec.URL{}, nil, nil)
	v, err := f.FromString("/a%20b/c%2Fd[2]")
	require.NoError(t, err)
	require.Equal(t, values.Path{Absolute: true, Segments: []values.Segment{seg("", "a b", 1), seg("", "c/d", 2)}}, v)
}

func TestPathRoundTrip(t *testing.T) {
	r := newTestRegistry()
	for _, s := range []string{"/", "/dna:a/b[2]", "a/../b", "{urn:x}a"} {
		p, err := r.Convert(values.TypePath, s)
		require.NoError(t, err)
		str, err := r.Strings().Create(p)
		require.NoError(t, err)
		back, err := r.Convert(values.TypePath, str)
		require.NoError(t, err)
		require.Equal(t, p, back, "%s -> %s", s, str)
	}
}
