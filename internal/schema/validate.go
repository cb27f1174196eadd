package schema

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Validate checks value against shape and returns every violation found,
// in deterministic order. An empty result means the value conforms.
func Validate(shape *Shape, value any) []Violation {
	var out []Violation
	validateObject(shape, value, nil, &out)
	return out
}

func appendPath(path []string, seg string) []string {
	p := make([]string, len(path), len(path)+1)
	copy(p, path)
	return append(p, seg)
}

func validateObject(shape *Shape, value any, path []string, out *[]Violation) {
	obj, ok := value.(map[string]any)
	if !ok {
		*out = append(*out, Violation{
			Path: path,
			Type: TypeModelType,
			Msg:  "Input should be a valid dictionary or instance of " + shape.Name,
		})
		return
	}

	before := len(*out)
	for _, f := range shape.Fields {
		fieldPath := appendPath(path, f.Name)
		v, present := obj[f.Name]
		if !present {
			if f.Required {
				*out = append(*out, Violation{Path: fieldPath, Type: TypeMissing, Msg: "Field required"})
			}
			continue
		}
		validateValue(f.Value, v, fieldPath, out)
	}

	extras := make([]string, 0)
	for key := range obj {
		if _, declared := shape.field(key); !declared {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	for _, key := range extras {
		*out = append(*out, Violation{
			Path: appendPath(path, key),
			Type: TypeExtraForbidden,
			Msg:  "Extra inputs are not permitted",
		})
	}

	if len(*out) > before {
		return
	}
	for _, check := range shape.Checks {
		if err := check(obj); err != nil {
			*out = append(*out, Violation{
				Path: path,
				Type: TypeValueError,
				Msg:  "Value error, " + err.Error(),
			})
		}
	}
}

func validateValue(decl Value, v any, path []string, out *[]Violation) {
	if v == nil && decl.Nullable {
		return
	}

	switch decl.Type {
	case TypeString:
		s, ok := v.(string)
		if len(decl.Enum) > 0 {
			if !ok || !inSet(decl.Enum, s) {
				*out = append(*out, Violation{Path: path, Type: TypeEnum, Msg: enumMessage(decl.Enum)})
			}
			return
		}
		if !ok {
			*out = append(*out, Violation{Path: path, Type: TypeStringType, Msg: "Input should be a valid string"})
		}

	case TypeInt:
		n, ok := AsInt(v)
		if !ok {
			*out = append(*out, Violation{Path: path, Type: TypeIntType, Msg: "Input should be a valid integer"})
			return
		}
		if decl.NonNegative && n < 0 {
			*out = append(*out, Violation{Path: path, Type: TypeGreaterEqual, Msg: "Input should be greater than or equal to 0"})
		}

	case TypeFloat:
		f, ok := AsFloat(v)
		if !ok {
			*out = append(*out, Violation{Path: path, Type: TypeFloatType, Msg: "Input should be a valid number"})
			return
		}
		if decl.NonNegative && f < 0 {
			*out = append(*out, Violation{Path: path, Type: TypeGreaterEqual, Msg: "Input should be greater than or equal to 0"})
		}

	case TypeObject:
		validateObject(decl.Shape, v, path, out)

	case TypeMap:
		m, ok := v.(map[string]any)
		if !ok {
			*out = append(*out, Violation{Path: path, Type: TypeDictType, Msg: "Input should be a valid dictionary"})
			return
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			entryPath := appendPath(path, k)
			if decl.Keys != nil && !inSet(decl.Keys, k) {
				*out = append(*out, Violation{
					Path: appendPath(entryPath, KeySegment),
					Type: TypeEnum,
					Msg:  enumMessage(decl.Keys),
				})
			}
			if decl.Elem != nil {
				validateValue(*decl.Elem, m[k], entryPath, out)
			}
		}

	case TypeList:
		items, ok := v.([]any)
		if !ok {
			*out = append(*out, Violation{Path: path, Type: TypeListType, Msg: "Input should be a valid list"})
			return
		}
		if decl.Elem == nil {
			return
		}
		for i, item := range items {
			validateValue(*decl.Elem, item, appendPath(path, strconv.Itoa(i)), out)
		}
	}
}

func inSet(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// AsInt reports v as an int64 when it is an integer value. Floats (even
// whole ones), strings and bools are not integers.
func AsInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToInt(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt(n)
	case json.Number:
		if strings.ContainsAny(string(n), ".eE") {
			return 0, false
		}
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

func uintToInt(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// AsFloat reports v as a float64 when it is any number. Integers are
// accepted as numbers; strings and bools are not.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	if i, ok := AsInt(v); ok {
		return float64(i), true
	}
	if u, ok := v.(uint64); ok {
		return float64(u), true
	}
	return 0, false
}
