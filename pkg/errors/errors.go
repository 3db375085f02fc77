// Package errors provides the structured error types used at the boundary
// between the safe wrapper and the LightGBM C API. Local validation failures
// (encoding, shape, overflow, lifecycle) and native failures each get their
// own type so callers can distinguish them with errors.As.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NativeError wraps a non-zero return code from a LightGBM C API call.
// Description carries the message reported by LGBM_GetLastError at the
// moment of failure.
type NativeError struct {
	Op          string
	Description string
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("lightgbm: %s: %s", e.Op, e.Description)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *NativeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("op", e.Op).
		Str("description", e.Description).
		Str("type", "NativeError")
}

// NewNativeError creates a new NativeError with a stack trace attached.
func NewNativeError(op, description string) error {
	err := &NativeError{Op: op, Description: description}
	return errors.WithStack(err)
}

// ShapeError reports a mismatch between the declared matrix dimensions and
// the length of the supplied buffer. It is raised before any native call.
type ShapeError struct {
	Op       string
	Rows     int
	Cols     int
	Expected int
	Got      int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("lightgbm: %s: input data size mismatch: expected %d elements (%d rows x %d cols), got %d",
		e.Op, e.Expected, e.Rows, e.Cols, e.Got)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ShapeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("op", e.Op).
		Int("rows", e.Rows).
		Int("cols", e.Cols).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "ShapeError")
}

// NewShapeError creates a new ShapeError with a stack trace attached.
func NewShapeError(op string, rows, cols, expected, got int) error {
	err := &ShapeError{Op: op, Rows: rows, Cols: cols, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// SizeOverflowError reports that rows*cols does not fit in an int. The
// product would be meaningless as a buffer length, so the wrapper refuses
// to cross the native boundary with it.
type SizeOverflowError struct {
	Op   string
	Rows int
	Cols int
}

func (e *SizeOverflowError) Error() string {
	return fmt.Sprintf("lightgbm: %s: integer overflow computing expected data size: rows (%d) * cols (%d)",
		e.Op, e.Rows, e.Cols)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *SizeOverflowError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("op", e.Op).
		Int("rows", e.Rows).
		Int("cols", e.Cols).
		Str("type", "SizeOverflowError")
}

// NewSizeOverflowError creates a new SizeOverflowError with a stack trace attached.
func NewSizeOverflowError(op string, rows, cols int) error {
	err := &SizeOverflowError{Op: op, Rows: rows, Cols: cols}
	return errors.WithStack(err)
}

// EncodingError reports input that cannot be represented in the
// null-terminated text form the C API requires: an embedded NUL byte, or
// bytes that are not valid UTF-8.
type EncodingError struct {
	Field  string
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("lightgbm: %s: %s", e.Field, e.Reason)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *EncodingError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("field", e.Field).
		Str("reason", e.Reason).
		Str("type", "EncodingError")
}

// NewEncodingError creates a new EncodingError with a stack trace attached.
func NewEncodingError(field, reason string) error {
	err := &EncodingError{Field: field, Reason: reason}
	return errors.WithStack(err)
}

// ClosedError reports an operation on a Booster whose native handle has
// already been released.
type ClosedError struct {
	Op string
}

func (e *ClosedError) Error() string {
	return fmt.Sprintf("lightgbm: %s: booster is closed", e.Op)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ClosedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("op", e.Op).
		Str("type", "ClosedError")
}

// NewClosedError creates a new ClosedError with a stack trace attached.
func NewClosedError(op string) error {
	err := &ClosedError{Op: op}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}
