package values

import (
	"fmt"
	"strings"
)

// PropertyType is a canonical declared type of a property value.
type PropertyType int

const (
	TypeString PropertyType = iota + 1
	TypeBinary
	TypeLong
	TypeDouble
	TypeFloat
	TypeDecimal
	TypeDate
	TypeBoolean
	TypeName
	TypePath
	TypeReference
	TypeURI
	TypeUUID
)

var typeNames = []string{
	TypeString:    "String",
	TypeBinary:    "Binary",
	TypeLong:      "Long",
	TypeDouble:    "Double",
	TypeFloat:     "Float",
	TypeDecimal:   "Decimal",
	TypeDate:      "Date",
	TypeBoolean:   "Boolean",
	TypeName:      "Name",
	TypePath:      "Path",
	TypeReference: "Reference",
	TypeURI:       "URI",
	TypeUUID:      "UUID",
}

// Types returns all property types in declaration order.
func Types() []PropertyType {
	out := make([]PropertyType, 0, len(typeNames)-1)
	for t := TypeString; t <= TypeUUID; t++ {
		out = append(out, t)
	}
	return out
}

// Valid reports if t is one of the declared property types.
func (t PropertyType) Valid() bool {
	return t >= TypeString && t <= TypeUUID
}

func (t PropertyType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("PropertyType(%d)", int(t))
	}
	return typeNames[t]
}

// ParsePropertyType finds a property type by its name. Matching is case-insensitive.
func ParsePropertyType(name string) (PropertyType, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "DateTime") {
		return TypeDate, nil
	}
	for _, t := range Types() {
		if strings.EqualFold(name, typeNames[t]) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown property type: %q", name)
}
