package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an error so callers can react without string matching.
type Kind string

const (
	// KindMalformedInput marks unreadable input, a wrong schema, or no usable rows.
	KindMalformedInput Kind = "malformed_input"
	// KindValidation marks a row that could not be turned into a valid record.
	KindValidation Kind = "validation"
	// KindStore marks a read or write failure of the record store.
	KindStore Kind = "store"
	// KindInternal is the fallback for anything unanticipated.
	KindInternal Kind = "internal"
)

// Error is a classified, human-readable failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MalformedInput returns a KindMalformedInput error.
func MalformedInput(format string, args ...any) *Error {
	return &Error{Kind: KindMalformedInput, Message: fmt.Sprintf(format, args...)}
}

// Validation returns a KindValidation error.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags err with kind. Errors that already carry a kind keep it.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	var tagged *Error
	if errors.As(err, &tagged) {
		return err
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind carried by err, or KindInternal.
func KindOf(err error) Kind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return KindInternal
}

// HTTPStatus maps a kind to the status code returned by the transport layer.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindMalformedInput:
		return fiber.StatusBadRequest
	case KindValidation:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// Title returns the short message used in error responses.
func Title(kind Kind) string {
	switch kind {
	case KindMalformedInput:
		return "Excel processing error"
	case KindValidation:
		return "Domain error"
	case KindStore:
		return "Repository error"
	default:
		return "Internal server error"
	}
}
