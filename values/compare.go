package values

import (
	"bytes"
	"cmp"
	"strings"
	"time"
)

// Compare returns 0 if a == b, -1 if a < b and +1 if a > b.
//
// A nil value is less than any other value. Values of different property types
// are ordered by their type. A floating point NaN is less than any other number
// and equal to another NaN.
func Compare(a, b Value) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		}
		return +1
	}
	if ta, tb := a.Type(), b.Type(); ta != tb {
		return cmp.Compare(ta, tb)
	}
	switch a := a.(type) {
	case String:
		return strings.Compare(string(a), string(b.(String)))
	case Binary:
		return bytes.Compare(a, b.(Binary))
	case Long:
		return cmp.Compare(a, b.(Long))
	case Double:
		return cmp.Compare(a, b.(Double))
	case Float:
		return cmp.Compare(a, b.(Float))
	case Decimal:
		return a.Cmp(b.(Decimal).Decimal)
	case DateTime:
		return time.Time(a).Compare(time.Time(b.(DateTime)))
	case Boolean:
		switch b := b.(Boolean); {
		case a == b:
			return 0
		case !bool(a):
			return -1
		}
		return +1
	case UUID:
		bv := b.(UUID)
		return bytes.Compare(a[:], bv[:])
	}
	// names, paths, references and URIs are ordered by their canonical form
	return strings.Compare(canonical(a), canonical(b))
}

func canonical(v Value) string {
	switch v := v.(type) {
	case Name:
		return v.String()
	case Path:
		return v.String()
	case Reference:
		return string(v)
	case URI:
		return string(v)
	}
	return ""
}
