package service

import (
	"errors"
	"fmt"
)

// Kind classifies procedure failures so the transport layer can map them to stable codes.
type Kind string

const (
	KindBadRequest         Kind = "bad_request"
	KindUnauthorized       Kind = "unauthorized"
	KindForbidden          Kind = "forbidden"
	KindNotFound           Kind = "not_found"
	KindStorageUnavailable Kind = "storage_unavailable"
	KindCompletionFailed   Kind = "completion_failed"
)

// Error is the typed failure returned by ContentService.
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

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func badRequest(message string) *Error {
	return newError(KindBadRequest, message, nil)
}

func forbidden(message string) *Error {
	return newError(KindForbidden, message, nil)
}

func notFound(message string) *Error {
	return newError(KindNotFound, message, nil)
}

func storageUnavailable(err error) *Error {
	return newError(KindStorageUnavailable, "storage is unavailable", err)
}

// KindOf returns the kind of the first service error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
