// Package apperr classifies errors into the kinds the HTTP boundary
// knows how to translate.
package apperr

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	Unknown Kind = iota
	// Validation covers missing or malformed request fields.
	Validation
	// NotFound covers lookups for ids that were never issued or were deleted.
	NotFound
	// TooLarge covers uploads exceeding the size cap.
	TooLarge
	// Storage covers blob-store failures.
	Storage
	// Database covers record-store failures.
	Database
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func New(kind Kind, msg string) error {
	return &Error{kind: kind, msg: msg}
}

func Newf(kind Kind, format string, args ...any) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{kind: kind, msg: msg, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// Message returns the client-safe message without the wrapped cause.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.msg
	}

	return err.Error()
}

// KindOf reports the kind of the first classified error in the chain,
// or Unknown if none is found.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}

	return Unknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
