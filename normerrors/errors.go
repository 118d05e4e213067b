package normerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrCircularReference indicates a circular $ref was detected.
	ErrCircularReference = errors.New("circular reference")

	// ErrInvalidPointer indicates a $ref value that is not a local fragment pointer.
	ErrInvalidPointer = errors.New("invalid pointer")

	// ErrPathNotFound indicates a JSONPath expression matched no nodes.
	ErrPathNotFound = errors.New("path not found")

	// ErrInvalidPath indicates a JSONPath expression could not be parsed.
	ErrInvalidPath = errors.New("invalid path expression")

	// ErrEmptyComposition indicates an empty oneOf or anyOf alternative list.
	ErrEmptyComposition = errors.New("empty composition")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// ReferenceError represents a failure to resolve a $ref.
// This includes missing targets, circular references, and pointers that are
// not in local fragment syntax.
type ReferenceError struct {
	// Ref is the literal $ref string that failed to resolve
	Ref string
	// IsCircular is true if this error is due to a circular reference
	IsCircular bool
	// IsInvalid is true if the pointer is not a supported local fragment pointer
	IsInvalid bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCircular {
		msg = "circular reference"
	} else if e.IsInvalid {
		msg = "invalid pointer"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also ErrCircularReference or ErrInvalidPointer
// when the appropriate flags are set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	if target == ErrCircularReference && e.IsCircular {
		return true
	}
	if target == ErrInvalidPointer && e.IsInvalid {
		return true
	}
	return false
}

// PathError represents a JSONPath expression that is invalid or matched
// no nodes in the document.
type PathError struct {
	// Expr is the path expression that failed
	Expr string
	// NotFound is true when the expression is valid but matched nothing
	NotFound bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PathError) Error() string {
	msg := "invalid path expression"
	if e.NotFound {
		msg = "path not found"
	}
	if e.Expr != "" {
		msg += ": " + e.Expr
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PathError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PathError) Is(target error) bool {
	if target == ErrPathNotFound && e.NotFound {
		return true
	}
	if target == ErrInvalidPath && !e.NotFound {
		return true
	}
	return false
}

// CompositionError represents a malformed composition keyword, such as an
// empty oneOf or anyOf alternative list that has no first element to select.
type CompositionError struct {
	// Keyword is the composition keyword ("oneOf" or "anyOf")
	Keyword string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *CompositionError) Error() string {
	msg := "empty composition"
	if e.Keyword != "" {
		msg += ": " + e.Keyword
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *CompositionError) Is(target error) bool {
	return target == ErrEmptyComposition
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when a walk or resolution exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "nesting_depth"
	ResourceType string
	// Limit is the configured maximum value
	Limit int
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
