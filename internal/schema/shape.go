package schema

import (
	"fmt"
	"strings"
)

// Type is the expected JSON-level type of a value.
type Type int

const (
	TypeString Type = iota
	TypeInt
	TypeFloat
	TypeObject
	TypeMap
	TypeList
)

// Value describes an acceptable value.
type Value struct {
	Type Type
	// Nullable accepts an explicit null.
	Nullable bool
	// Enum restricts a TypeString to a closed set, in display order.
	Enum []string
	// NonNegative rejects numbers below zero.
	NonNegative bool
	// Shape is the nested shape of a TypeObject.
	Shape *Shape
	// Keys restricts the keys of a TypeMap. Nil allows any key.
	Keys []string
	// Elem describes TypeMap values and TypeList elements.
	Elem *Value
}

// Field is a named member of a Shape.
type Field struct {
	Name     string
	Required bool
	Value
}

// Check is a whole-object invariant. It receives the already field-validated
// object and returns an error describing the violation, or nil.
type Check func(obj map[string]any) error

// Shape is a closed-world object definition.
type Shape struct {
	Name   string
	Fields []Field
	Checks []Check
}

func (s *Shape) field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Violation types, kept stable for callers that branch on them.
const (
	TypeMissing        = "missing"
	TypeExtraForbidden = "extra_forbidden"
	TypeIntType        = "int_type"
	TypeFloatType      = "float_type"
	TypeStringType     = "string_type"
	TypeEnum           = "enum"
	TypeDictType       = "dict_type"
	TypeListType       = "list_type"
	TypeModelType      = "model_type"
	TypeGreaterEqual   = "greater_than_equal"
	TypeValueError     = "value_error"
)

// KeySegment marks a violation on a map key rather than its value.
const KeySegment = "[key]"

// Violation is a single validation failure.
type Violation struct {
	Path []string
	Type string
	Msg  string
}

// Location renders the path in dotted form. Root-level violations have an
// empty location.
func (v Violation) Location() string {
	return strings.Join(v.Path, ".")
}

// String renders "<dotted.path>: <message>", or just the message at root.
func (v Violation) String() string {
	loc := v.Location()
	if loc == "" {
		return v.Msg
	}
	return fmt.Sprintf("%s: %s", loc, v.Msg)
}

// enumMessage lists the allowed values the way users read them:
// 'a', 'b' or 'c'.
func enumMessage(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	switch len(quoted) {
	case 0:
		return "Input should be one of no values"
	case 1:
		return "Input should be " + quoted[0]
	}
	return "Input should be " + strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
