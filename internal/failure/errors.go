// Package failure classifies mealplan failures into a flat set of kinds and
// maps each kind to a process exit code.
package failure

import (
	"errors"
	"fmt"
)

// Kind tags a failure with its category.
type Kind int

const (
	// KindUnclassified is anything not raised as a *Error.
	KindUnclassified Kind = iota
	// KindBase is a controlled failure with no more specific category.
	KindBase
	// KindValidation is bad user input.
	KindValidation
	// KindDomainRule is a business-rule violation.
	KindDomainRule
	// KindConfig is missing or invalid runtime configuration.
	KindConfig
	// KindOutput is a failure rendering or writing output.
	KindOutput
)

var kindNames = map[Kind]string{
	KindUnclassified: "unclassified",
	KindBase:         "base",
	KindValidation:   "validation",
	KindDomainRule:   "domain_rule",
	KindConfig:       "config",
	KindOutput:       "output",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a controlled mealplan failure. Msg is the user-facing text and is
// printed verbatim by the CLI.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional cause
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same kind, so callers can write
// errors.Is(err, &failure.Error{Kind: failure.KindConfig}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil {
		return false
	}
	return t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

// New returns a base-kind failure.
func New(msg string) *Error { return &Error{Kind: KindBase, Msg: msg} }

// Validation returns a failure for bad user input.
func Validation(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }

// Validationf formats a validation failure.
func Validationf(format string, args ...any) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// DomainRule returns a failure for a business-rule violation.
func DomainRule(msg string) *Error { return &Error{Kind: KindDomainRule, Msg: msg} }

// Config returns a configuration failure.
func Config(msg string) *Error { return &Error{Kind: KindConfig, Msg: msg} }

// Output returns an output failure.
func Output(msg string) *Error { return &Error{Kind: KindOutput, Msg: msg} }

// Wrap tags cause with kind, prefixing msg onto the cause text.
func Wrap(kind Kind, cause error, msg string) *Error {
	if cause == nil {
		return &Error{Kind: kind, Msg: msg}
	}
	return &Error{Kind: kind, Msg: fmt.Sprintf("%s: %v", msg, cause), Err: cause}
}

// KindOf returns the kind of the outermost *Error in err's chain, or
// KindUnclassified when there is none.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) && fe != nil {
		return fe.Kind
	}
	return KindUnclassified
}
