package contracts

import (
	"encoding/json"

	"mealplan/internal/failure"
	"mealplan/internal/payload"
	"mealplan/internal/schema"
)

// Boundary is implemented by every contract model.
type Boundary interface {
	Shape() *schema.Shape
}

// Parse validates an untyped payload against T's shape and builds T.
//
// On failure it returns a validation failure describing only the first
// violation, as "<dotted.path>: <message>" or "<message>" at root level.
// Later violations are discarded.
func Parse[T Boundary](raw any) (T, error) {
	var out T
	if violations := schema.Validate(out.Shape(), raw); len(violations) > 0 {
		return out, failure.Validation(violations[0].String())
	}

	// The tree is known-good here, so a JSON round trip only maps names to
	// struct fields.
	data, err := json.Marshal(raw)
	if err != nil {
		return out, failure.Wrap(failure.KindValidation, err, "encode payload")
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, failure.Wrap(failure.KindValidation, err, "decode payload")
	}
	return out, nil
}

// ParseDocument decodes a JSON or YAML document and parses it as T.
func ParseDocument[T Boundary](data []byte, f payload.Format) (T, error) {
	raw, err := payload.Decode(data, f)
	if err != nil {
		var zero T
		return zero, failure.Validation(err.Error())
	}
	return Parse[T](raw)
}

// Check re-validates an already-typed value against its own shape. It is
// used before emitting output, where the typed structs alone cannot enforce
// enum membership or meal ordering.
func Check[T Boundary](v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return failure.Wrap(failure.KindValidation, err, "encode value")
	}
	raw, err := payload.DecodeJSON(data)
	if err != nil {
		return failure.Validation(err.Error())
	}
	if violations := schema.Validate(v.Shape(), raw); len(violations) > 0 {
		return failure.Validation(violations[0].String())
	}
	return nil
}
