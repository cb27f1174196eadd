// Package schema validates untyped payload trees (as produced by decoding
// JSON or YAML into `any`) against declared closed-world shapes.
//
// Validation never coerces: "35" is not an integer, 35.0 is not an integer,
// and a string is never a number. Fields not declared by a shape are
// violations at every nesting level. Violations come back in a
// deterministic order so that the first one can be used as a stable
// user-facing message:
//
//   - declared fields, in declaration order (nested violations inline);
//   - undeclared fields, in sorted key order;
//   - map entries in sorted key order, key before value;
//   - whole-object checks last, and only when the object had no
//     field-level violations.
package schema
