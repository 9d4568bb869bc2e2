package factory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

var (
	_ ValueFactory[values.Name] = (*NameFactory)(nil)
	_ ValueFactory[values.Path] = (*PathFactory)(nil)
)

var (
	errEmptyName    = errors.New("empty name")
	errEmptyPath    = errors.New("empty path")
	errEmptySegment = errors.New("empty path segment")
)

// parseName parses a name in "{namespace}local", "prefix:local" or "local" form.
// The namespace and the local part are decoded separately, after the structure is parsed.
// A name without a prefix belongs to the namespace registered for an empty prefix.
func parseName(s string, dec codec.Decoder, ns values.Namespaces) (values.Name, error) {
	var n values.Name
	if s == "" {
		return n, errEmptyName
	}
	if s[0] == '{' {
		i := strings.IndexByte(s, '}')
		if i < 0 {
			return n, errors.New("unterminated namespace")
		}
		n.Namespace = dec.Decode(s[1:i])
		s = s[i+1:]
	} else if i := strings.IndexByte(s, ':'); i >= 0 {
		prefix := s[:i]
		uri, ok := ns.URI(prefix)
		if !ok {
			return n, fmt.Errorf("unknown namespace prefix: %q", prefix)
		}
		n.Namespace = uri
		s = s[i+1:]
	} else if uri, ok := ns.URI(""); ok {
		n.Namespace = uri
	}
	if s == "" {
		return n, errEmptyName
	} else if strings.ContainsAny(s, "/[]{}") {
		return n, fmt.Errorf("invalid character in local name: %q", s)
	}
	n.Local = dec.Decode(s)
	return n, nil
}

// splitSegments splits the path on slashes that are not part of a namespace.
func splitSegments(s string) []string {
	var (
		out   []string
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case '/':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

func parseSegment(s string, dec codec.Decoder, ns values.Namespaces) (values.Segment, error) {
	if s == "" {
		return values.Segment{}, errEmptySegment
	}
	index := 1
	if strings.HasSuffix(s, "]") {
		i := strings.LastIndexByte(s, '[')
		if i < 0 {
			return values.Segment{}, fmt.Errorf("invalid segment: %q", s)
		}
		n, err := strconv.Atoi(s[i+1 : len(s)-1])
		if err != nil || n < 1 {
			return values.Segment{}, fmt.Errorf("invalid segment index: %q", s)
		}
		index, s = n, s[:i]
	}
	if s == values.SelfName || s == values.ParentName {
		if index != 1 {
			return values.Segment{}, fmt.Errorf("index on %q segment", s)
		}
		return values.Segment{Name: values.Name{Local: s}, Index: 1}, nil
	}
	name, err := parseName(s, dec, ns)
	if err != nil {
		return values.Segment{}, err
	}
	return values.Segment{Name: name, Index: index}, nil
}

// parsePath parses an absolute ("/a/b[2]") or relative ("a/../b") path.
// A single trailing slash is ignored.
func parsePath(s string, dec codec.Decoder, ns values.Namespaces) (values.Path, error) {
	var p values.Path
	if s == "" {
		return p, errEmptyPath
	}
	if s[0] == '/' {
		p.Absolute = true
		s = s[1:]
		if s == "" {
			return p, nil
		}
	}
	if len(s) > 1 {
		s = strings.TrimSuffix(s, "/")
	}
	for _, part := range splitSegments(s) {
		seg, err := parseSegment(part, dec, ns)
		if err != nil {
			return values.Path{}, err
		}
		p.Segments = append(p.Segments, seg)
	}
	return p, nil
}

// NameFactory is a factory for Name values. Text is decoded with the default decoder,
// unless an explicit one is given. Only String sources and single-segment paths can
// be converted to a name.
type NameFactory struct {
	valueFactory[values.Name]
	ns values.Namespaces
}

func NewNameFactory(dec codec.Decoder, strs *StringFactory, ns values.Namespaces) *NameFactory {
	f := &NameFactory{ns: ns}
	f.valueFactory = newValueFactory[values.Name](values.TypeName, dec, strs, f)
	return f
}

func (f *NameFactory) FromString(s string) (values.Name, error) {
	return f.FromDecoded(s, nil)
}

func (f *NameFactory) FromDecoded(s string, dec codec.Decoder) (values.Name, error) {
	n, err := parseName(strings.TrimSpace(s), f.Decoder(dec), f.ns)
	if err != nil {
		return f.invalid(s, s, err)
	}
	return n, nil
}

func (f *NameFactory) FromInt(v int32) (values.Name, error) {
	return f.reject(v)
}

func (f *NameFactory) FromLong(v int64) (values.Name, error) {
	return f.reject(v)
}

func (f *NameFactory) FromFloat(v float32) (values.Name, error) {
	return f.reject(v)
}

func (f *NameFactory) FromDouble(v float64) (values.Name, error) {
	return f.reject(v)
}

func (f *NameFactory) FromBool(v bool) (values.Name, error) {
	return f.reject(v)
}

func (f *NameFactory) FromDecimal(v values.Decimal) (values.Name, error) {
	return f.reject(v)
}

func (f *NameFactory) FromTime(v time.Time) (values.Name, error) {
	return f.reject(v)
}

func (f *NameFactory) FromDateTime(v values.DateTime) (values.Name, error) {
	return f.reject(v)
}

func (f *NameFactory) FromName(v values.Name) (values.Name, error) {
	return v, nil
}

// FromPath returns the name of a path with a single segment.
func (f *NameFactory) FromPath(v values.Path) (values.Name, error) {
	if v.Len() != 1 {
		return f.reject(v)
	}
	seg := v.Segments[0]
	if seg.Index > 1 || seg.IsSelf() || seg.IsParent() {
		return f.reject(v)
	}
	return seg.Name, nil
}

func (f *NameFactory) FromReference(v values.Reference) (values.Name, error) {
	return f.reject(v)
}

func (f *NameFactory) FromURI(v values.URI) (values.Name, error) {
	return f.reject(v)
}

func (f *NameFactory) FromUUID(v values.UUID) (values.Name, error) {
	return f.reject(v)
}

// PathFactory is a factory for Path values. Text is decoded with the default decoder,
// unless an explicit one is given. A name converts to a relative single-segment path.
type PathFactory struct {
	valueFactory[values.Path]
	ns values.Namespaces
}

func NewPathFactory(dec codec.Decoder, strs *StringFactory, ns values.Namespaces) *PathFactory {
	f := &PathFactory{ns: ns}
	f.valueFactory = newValueFactory[values.Path](values.TypePath, dec, strs, f)
	return f
}

func (f *PathFactory) FromString(s string) (values.Path, error) {
	return f.FromDecoded(s, nil)
}

func (f *PathFactory) FromDecoded(s string, dec codec.Decoder) (values.Path, error) {
	p, err := parsePath(strings.TrimSpace(s), f.Decoder(dec), f.ns)
	if err != nil {
		return f.invalid(s, s, err)
	}
	return p, nil
}

func (f *PathFactory) FromInt(v int32) (values.Path, error) {
	return f.reject(v)
}

func (f *PathFactory) FromLong(v int64) (values.Path, error) {
	return f.reject(v)
}

func (f *PathFactory) FromFloat(v float32) (values.Path, error) {
	return f.reject(v)
}

func (f *PathFactory) FromDouble(v float64) (values.Path, error) {
	return f.reject(v)
}

func (f *PathFactory) FromBool(v bool) (values.Path, error) {
	return f.reject(v)
}

func (f *PathFactory) FromDecimal(v values.Decimal) (values.Path, error) {
	return f.reject(v)
}

func (f *PathFactory) FromTime(v time.Time) (values.Path, error) {
	return f.reject(v)
}

func (f *PathFactory) FromDateTime(v values.DateTime) (values.Path, error) {
	return f.reject(v)
}

func (f *PathFactory) FromName(v values.Name) (values.Path, error) {
	return values.Path{Segments: []values.Segment{{Name: v, Index: 1}}}, nil
}

func (f *PathFactory) FromPath(v values.Path) (values.Path, error) {
	return v, nil
}

func (f *PathFactory) FromReference(v values.Reference) (values.Path, error) {
	return f.reject(v)
}

func (f *PathFactory) FromURI(v values.URI) (values.Path, error) {
	return f.reject(v)
}

func (f *PathFactory) FromUUID(v values.UUID) (values.Path, error) {
	return f.reject(v)
}
