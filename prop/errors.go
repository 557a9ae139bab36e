package prop

import (
	"errors"
	"fmt"
)

// AssertionError marks a property failure as a framework assertion
// (t.Errorf-equivalent) rather than an unexpected panic or plain error.
// Classification at reporting time prefers assertion errors over opaque
// ones, since they carry an intentional, human-authored message.
type AssertionError struct {
	Msg string
}

func (e *AssertionError) Error() string { return e.Msg }

// NewAssertionError builds an AssertionError with a formatted message.
func NewAssertionError(format string, args ...any) *AssertionError {
	return &AssertionError{Msg: fmt.Sprintf(format, args...)}
}

func isAssertionError(err error) bool {
	var ae *AssertionError
	return errors.As(err, &ae)
}

// GeneratedBinding records one generator-bound value that fed a property
// evaluation, in the order it was bound.
type GeneratedBinding struct {
	Clause string
	Value  any
}

// FailureRecord captures a single property evaluation's failure: the
// error it raised and the values that produced it.
type FailureRecord struct {
	Err             error
	GeneratedValues []GeneratedBinding
}

// ClassifyFailure picks which of original/shrunk to lead a report with:
// if both are assertion errors, prefer shrunk (it's more minimized); if
// only one is, prefer that one (the shrink path may have wandered into an
// unrelated error); otherwise shrunk, augmented with its full bindings.
func ClassifyFailure(original, shrunk *FailureRecord) *FailureRecord {
	if original == nil {
		return shrunk
	}
	if shrunk == nil {
		return original
	}
	origIsAssert := isAssertionError(original.Err)
	shrunkIsAssert := isAssertionError(shrunk.Err)
	if origIsAssert && !shrunkIsAssert {
		return original
	}
	return shrunk
}
