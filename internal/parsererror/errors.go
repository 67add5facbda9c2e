// Package parsererror defines the error types returned while turning a
// pacs.008 document into an MT103 message.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of conversion failure. Every concrete error below matches exactly
// one of these through errors.Is.
var (
	ErrDecodeFailure     = errors.New("decode failure")
	ErrStructureNotFound = errors.New("structure not found")
	ErrUnexpectedShape   = errors.New("unexpected shape")
)

// DecodeError reports input that is not well-formed XML.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode XML: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches ErrDecodeFailure.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecodeFailure
}

// StructureNotFoundError reports a document in which none of the expected
// root paths leads to a credit transfer transaction.
type StructureNotFoundError struct {
	Element string
	Paths   []string
}

func (e *StructureNotFoundError) Error() string {
	return fmt.Sprintf("%s not found (tried %s)", e.Element, strings.Join(e.Paths, ", "))
}

// Is matches ErrStructureNotFound.
func (e *StructureNotFoundError) Is(target error) bool {
	return target == ErrStructureNotFound
}

// UnexpectedShapeError reports a node that exists but cannot be read the
// way the message layout requires.
type UnexpectedShapeError struct {
	Path   string
	Reason string
}

func (e *UnexpectedShapeError) Error() string {
	return fmt.Sprintf("unexpected shape at %s: %s", e.Path, e.Reason)
}

// Is matches ErrUnexpectedShape.
func (e *UnexpectedShapeError) Is(target error) bool {
	return target == ErrUnexpectedShape
}

// Kind returns a short machine-readable name for the failure kind of err,
// or "" when err is not a conversion failure.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrDecodeFailure):
		return "DecodeFailure"
	case errors.Is(err, ErrStructureNotFound):
		return "StructureNotFound"
	case errors.Is(err, ErrUnexpectedShape):
		return "UnexpectedShape"
	default:
		return ""
	}
}

// ValidationError represents a validation failure
type ValidationError struct {
	FilePath string
	Reason   string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FileNotFoundError returns a ValidationError for a missing input file.
func FileNotFoundError(filePath string) error {
	return &ValidationError{
		FilePath: filePath,
		Reason:   "file does not exist",
	}
}
