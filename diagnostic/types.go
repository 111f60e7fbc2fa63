package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"pnp-mapper/internal/common"
)

// Codes reported by the mapper.
const (
	CodeFieldAssign      = "FIELD_ASSIGN"
	CodeTextCoercion     = "TEXT_COERCION"
	CodeNilCollection    = "NIL_COLLECTION"
	CodeCollectionAppend = "COLLECTION_APPEND"
	CodeDeprecatedField  = "DEPRECATED_FIELD"
)

// Diagnostics holds all diagnostic information from one mapping call.
type Diagnostics struct {
	Errors []Diagnostic
	Infos  []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// TypePair identifies which type mapping this relates to (if any).
	TypePair string
	// FieldPath identifies which field this relates to (if any).
	FieldPath string
	// Err is the underlying cause (if any).
	Err error
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic wrapping cause.
func (d *Diagnostics) AddError(code string, cause error, typePair, fieldPath string) {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}

	d.Errors = append(d.Errors, Diagnostic{
		Severity:  DiagnosticError,
		Code:      code,
		Message:   msg,
		TypePair:  typePair,
		FieldPath: fieldPath,
		Err:       cause,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typePair, fieldPath string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:  DiagnosticInfo,
		Code:      code,
		Message:   message,
		TypePair:  typePair,
		FieldPath: fieldPath,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Fields returns the field paths of all error diagnostics, in report order.
func (d *Diagnostics) Fields() []string {
	paths := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		paths = append(paths, e.FieldPath)
	}

	return paths
}

// Error returns a combined error from all error diagnostics, or nil if valid.
// The result unwraps to every diagnostic, so errors.Is reaches the causes.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, e)
	}

	return errors.Join(errs...)
}

// Error implements error.
func (d Diagnostic) Error() string {
	return d.String()
}

// Unwrap returns the underlying cause.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.TypePair != "" {
		prefix = append(prefix, "["+d.TypePair+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
