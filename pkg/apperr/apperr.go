package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a service error so handlers can map it to an HTTP
// status without matching on message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindForbidden
	KindConflict
	KindInvalidCredentials
	KindStore
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Forbidden(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

func InvalidCredentials(message string) error {
	return &Error{Kind: KindInvalidCredentials, Message: message}
}

// Store wraps an opaque collaborator fault. Treated as fatal by callers,
// no retries.
func Store(message string, err error) error {
	return &Error{Kind: KindStore, Message: message, Err: err}
}

// KindOf returns the Kind carried anywhere in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsForbidden(err error) bool {
	return KindOf(err) == KindForbidden
}

func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

func IsInvalidCredentials(err error) bool {
	return KindOf(err) == KindInvalidCredentials
}
