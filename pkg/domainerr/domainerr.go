// Package domainerr defines the error taxonomy shared by every bounded context.
// Context packages keep their own sentinels (not found, unknown item) and wrap
// these kinds when a rule is broken.
package domainerr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation indicates a precondition on the entity's fields failed.
	ErrValidation = errors.New("validation failed")

	// ErrTemporalOrder indicates a date is in the future or earlier than the open interval's start.
	ErrTemporalOrder = errors.New("temporal order violated")

	// ErrValue indicates a malformed numeric value (negative price, zero quantity).
	ErrValue = errors.New("invalid value")
)

// Kind classifies an error for transport layers.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindTemporalOrder Kind = "temporal_order"
	KindValue         Kind = "value"
	KindUnknown       Kind = ""
)

// FieldError names one failing field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every failing field of one operation.
// It matches ErrValidation and, when set, Cause under errors.Is.
type ValidationError struct {
	Fields []FieldError
	Cause  error
}

// Invalid returns a ValidationError for a single field.
func Invalid(field, message string, cause error) *ValidationError {
	return &ValidationError{
		Fields: []FieldError{{Field: field, Message: message}},
		Cause:  cause,
	}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Cause}
}

// Add appends a failing field.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Has reports whether field already failed.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Err returns nil when no field failed so callers can `return v.Err()`.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// FieldMap flattens Fields into field -> message, joining repeated fields.
func (e *ValidationError) FieldMap() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if prev, ok := out[f.Field]; ok {
			out[f.Field] = prev + "; " + f.Message
			continue
		}
		out[f.Field] = f.Message
	}
	return out
}

// FieldNames returns the failing field names sorted.
func (e *ValidationError) FieldNames() []string {
	m := e.FieldMap()
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Temporal wraps ErrTemporalOrder with a formatted reason.
func Temporal(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTemporalOrder, fmt.Sprintf(format, args...))
}

// Value wraps ErrValue with a formatted reason.
func Value(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValue, fmt.Sprintf(format, args...))
}

// KindOf reports which taxonomy kind err belongs to.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrTemporalOrder):
		return KindTemporalOrder
	case errors.Is(err, ErrValue):
		return KindValue
	default:
		return KindUnknown
	}
}

// AsValidation extracts the ValidationError from err's chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
