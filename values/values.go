package values

import (
	"bytes"
	"crypto/sha1"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Value is a typed property value.
type Value interface {
	// Native returns a native Go value represented by this type.
	Native() interface{}
	// Type returns a declared property type of this value.
	Type() PropertyType
}

var (
	_ Value = String("")
	_ Value = Binary(nil)
	_ Value = Long(0)
	_ Value = Double(0)
	_ Value = Float(0)
	_ Value = Decimal{}
	_ Value = DateTime{}
	_ Value = Boolean(false)
	_ Value = Name{}
	_ Value = Path{}
	_ Value = Reference("")
	_ Value = URI("")
	_ Value = UUID{}
)

type String string

func (v String) Native() interface{} {
	return string(v)
}

func (String) Type() PropertyType {
	return TypeString
}

// Binary is an opaque binary payload.
type Binary []byte

func (v Binary) Native() interface{} {
	return []byte(v)
}

func (Binary) Type() PropertyType {
	return TypeBinary
}

// Size returns the length of the payload in bytes.
func (v Binary) Size() int64 {
	return int64(len(v))
}

// Hash returns SHA-1 of the payload.
func (v Binary) Hash() []byte {
	h := sha1.Sum(v)
	return h[:]
}

// Reader returns a reader over the payload.
func (v Binary) Reader() io.Reader {
	return bytes.NewReader(v)
}

type Long int64

func (v Long) Native() interface{} {
	return int64(v)
}

func (Long) Type() PropertyType {
	return TypeLong
}

func (v Long) String() string {
	return strconv.FormatInt(int64(v), 10)
}

type Double float64

func (v Double) Native() interface{} {
	return float64(v)
}

func (Double) Type() PropertyType {
	return TypeDouble
}

func (v Double) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

type Float float32

func (v Float) Native() interface{} {
	return float32(v)
}

func (Float) Type() PropertyType {
	return TypeFloat
}

func (v Float) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// Decimal is an arbitrary-precision decimal number.
type Decimal struct {
	decimal.Decimal
}

// AsDecimal wraps d into a Decimal value.
func AsDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

func (v Decimal) Native() interface{} {
	return v.Decimal
}

func (Decimal) Type() PropertyType {
	return TypeDecimal
}

// DateTimeLayout is ISO-8601 with millisecond precision.
const DateTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// AsDateTime converts t into a DateTime value. The value is always kept in UTC.
func AsDateTime(t time.Time) DateTime {
	return DateTime(t.UTC().Round(0))
}

// DateTimeFromMillis returns a DateTime for the number of milliseconds since the Unix epoch.
func DateTimeFromMillis(ms int64) DateTime {
	return DateTime(time.UnixMilli(ms).UTC())
}

type DateTime time.Time

func (v DateTime) Native() interface{} {
	return time.Time(v)
}

func (DateTime) Type() PropertyType {
	return TypeDate
}

// Milliseconds returns the number of milliseconds since the Unix epoch.
func (v DateTime) Milliseconds() int64 {
	return time.Time(v).UnixMilli()
}

func (v DateTime) String() string {
	return time.Time(v).Format(DateTimeLayout)
}

type Boolean bool

func (v Boolean) Native() interface{} {
	return bool(v)
}

func (Boolean) Type() PropertyType {
	return TypeBoolean
}

func (v Boolean) String() string {
	return strconv.FormatBool(bool(v))
}

// Name is a local name qualified by an optional namespace URI.
type Name struct {
	Namespace string
	Local     string
}

func (v Name) Native() interface{} {
	return v.String()
}

func (Name) Type() PropertyType {
	return TypeName
}

// String returns the name in "{namespace}local" form, or just the local part
// when the namespace is empty.
func (v Name) String() string {
	if v.Namespace == "" {
		return v.Local
	}
	return "{" + v.Namespace + "}" + v.Local
}

// Format returns the name in "prefix:local" form if the namespace has a registered prefix.
func (v Name) Format(ns Namespaces) string {
	if v.Namespace == "" {
		return v.Local
	}
	if p, ok := ns.Prefix(v.Namespace); ok {
		if p == "" {
			return v.Local
		}
		return p + ":" + v.Local
	}
	return v.String()
}

const (
	// SelfName is a path segment that refers to the current node.
	SelfName = "."
	// ParentName is a path segment that refers to the parent node.
	ParentName = ".."
)

// Segment is a single path element. Index is 1-based and is used to distinguish same-name siblings.
type Segment struct {
	Name  Name
	Index int
}

func (s Segment) String() string {
	if s.Index > 1 {
		return s.Name.String() + "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Name.String()
}

// IsSelf reports if the segment is a self reference (".").
func (s Segment) IsSelf() bool {
	return s.Name == Name{Local: SelfName}
}

// IsParent reports if the segment is a parent reference ("..").
func (s Segment) IsParent() bool {
	return s.Name == Name{Local: ParentName}
}

// Path is a sequence of name segments, either absolute or relative.
type Path struct {
	Absolute bool
	Segments []Segment
}

func (v Path) Native() interface{} {
	return v.String()
}

func (Path) Type() PropertyType {
	return TypePath
}

// Len returns the number of segments.
func (v Path) Len() int {
	return len(v.Segments)
}

// IsRoot reports if the path is the root path.
func (v Path) IsRoot() bool {
	return v.Absolute && len(v.Segments) == 0
}

func (v Path) String() string {
	var sb strings.Builder
	if v.Absolute {
		sb.WriteByte('/')
	}
	for i, s := range v.Segments {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Reference is an opaque identifier of another node.
type Reference string

func (v Reference) Native() interface{} {
	return string(v)
}

func (Reference) Type() PropertyType {
	return TypeReference
}

// URI is a normalized URI reference.
type URI string

func (v URI) Native() interface{} {
	return string(v)
}

func (URI) Type() PropertyType {
	return TypeURI
}

// URL parses the value into url.URL.
func (v URI) URL() (*url.URL, error) {
	return url.Parse(string(v))
}

type UUID uuid.UUID

func (v UUID) Native() interface{} {
	return uuid.UUID(v)
}

func (UUID) Type() PropertyType {
	return TypeUUID
}

func (v UUID) String() string {
	return uuid.UUID(v).String()
}
