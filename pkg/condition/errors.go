package condition

import (
	"errors"
	"fmt"
)

// Class classifies an evaluation error for abort and reporting logic.
type Class string

const (
	// ClassAuthor indicates a configuration-author mistake: conflicting or
	// missing attributes, malformed expressions, mixed combinator phases.
	// Author errors abort the bootstrap pass immediately.
	ClassAuthor Class = "author"

	// ClassInternal indicates a defect in the engine itself.
	ClassInternal Class = "internal"
)

// Common error codes.
const (
	CodeMissingAttribute      = "MISSING_ATTRIBUTE"
	CodeConflictingAttributes = "CONFLICTING_ATTRIBUTES"
	CodeMalformedExpression   = "MALFORMED_EXPRESSION"
	CodeMixedPhases           = "MIXED_PHASES"
	CodeOrderingCycle         = "ORDERING_CYCLE"
	CodeInternal              = "INTERNAL_ERROR"
)

// Error is a classified evaluation error carrying the offending declaration
// and condition for diagnostics.
type Error struct {
	// Class is the error classification.
	Class Class `json:"class"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Code is an optional error code for programmatic handling.
	Code string `json:"code,omitempty"`

	// Declaration is the name of the declaration being evaluated, if known.
	Declaration string `json:"declaration,omitempty"`

	// Condition is the name of the condition that raised the error.
	Condition string `json:"condition,omitempty"`

	// Err is the underlying error, if any.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Class, e.Message)
	if e.Condition != "" {
		msg += fmt.Sprintf(" (condition=%s", e.Condition)
		if e.Declaration != "" {
			msg += fmt.Sprintf(", declaration=%s", e.Declaration)
		}
		msg += ")"
	} else if e.Declaration != "" {
		msg += fmt.Sprintf(" (declaration=%s)", e.Declaration)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error equality for errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Class == t.Class && e.Code == t.Code
}

// NewAuthorError creates a configuration-author error.
func NewAuthorError(message string, err error) *Error {
	return &Error{Class: ClassAuthor, Message: message, Err: err}
}

// NewInternalError creates an internal engine error.
func NewInternalError(message string, err error) *Error {
	return &Error{Class: ClassInternal, Message: message, Err: err, Code: CodeInternal}
}

// WithCode adds an error code.
func (e *Error) WithCode(code string) *Error {
	e.Code = code
	return e
}

// WithDeclaration adds the offending declaration name.
func (e *Error) WithDeclaration(name string) *Error {
	e.Declaration = name
	return e
}

// WithCondition adds the raising condition name.
func (e *Error) WithCondition(name string) *Error {
	e.Condition = name
	return e
}

// IsAuthorError reports whether err is a configuration-author error.
func IsAuthorError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Class == ClassAuthor
	}
	return false
}
