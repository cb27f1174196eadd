// Package payload decodes raw JSON and YAML documents into untyped trees for
// schema validation, and encodes typed values back out canonically.
//
// Decoded trees only ever contain map[string]any, []any, string, bool, nil,
// int64 and float64. Number literals keep their lexical kind: 35 decodes to
// int64, 35.0 and 3.5e1 decode to float64.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q (expected json or yaml)", s)
}

// FormatFromPath picks a format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Decode parses data in the given format into an untyped tree.
func Decode(data []byte, f Format) (any, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}

// DecodeJSON parses exactly one JSON value.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid json document: empty input")
		}
		return nil, fmt.Errorf("invalid json document: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid json document: trailing data after top-level value")
	}
	return normalize(raw)
}

// DecodeYAML parses a single YAML document. An empty document decodes to nil.
func DecodeYAML(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid yaml document: %w", err)
	}
	return normalize(raw)
}

func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		// YAML allows integer keys such as `1: 20`; the interchange format
		// only has string keys.
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, err := scalarKey(k)
			if err != nil {
				return nil, err
			}
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case json.Number:
		return numberLiteral(string(t))
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case uint64:
		return float64(t), nil
	case float64, string, bool, nil:
		return t, nil
	}
	// YAML timestamps, binary and the like have no interchange form.
	return nil, fmt.Errorf("invalid yaml document: unsupported value of type %T", v)
}

func numberLiteral(lit string) (any, error) {
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return i, nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", lit, err)
	}
	return f, nil
}

func scalarKey(k any) (string, error) {
	switch key := k.(type) {
	case string:
		return key, nil
	case int, int64, uint64:
		return fmt.Sprint(key), nil
	}
	// 1.0 or true would otherwise alias "1" or "true".
	return "", fmt.Errorf("invalid yaml document: unsupported mapping key of type %T", k)
}

// Encode renders v canonically: indented JSON with a trailing newline, or
// YAML. Struct fields keep declaration order and map keys are sorted, so the
// same value always encodes to the same bytes.
func Encode(v any, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}
