package apperrors

import (
	"github.com/pkg/errors"
)

// Kind classifies an error so controllers can map it to an HTTP status.
// Entity-mutation errors abort the operation before any write; collaborator
// failures never surface through this package - they are logged at the call
// site and the primary transition result stands.
type Kind string

const (
	KindValidation Kind = "validation"
	KindForbidden  Kind = "forbidden"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
)

type appError struct {
	kind Kind
	msg  string
}

func (e *appError) Error() string {
	return e.msg
}

func New(kind Kind, msg string) error {
	return &appError{kind: kind, msg: msg}
}

func Validation(msg string) error {
	return &appError{kind: KindValidation, msg: msg}
}

func Forbidden(msg string) error {
	return &appError{kind: KindForbidden, msg: msg}
}

func NotFound(msg string) error {
	return &appError{kind: KindNotFound, msg: msg}
}

func Conflict(msg string) error {
	return &appError{kind: KindConflict, msg: msg}
}

func KindOf(err error) (Kind, bool) {
	var appErr *appError
	if errors.As(err, &appErr) {
		return appErr.kind, true
	}
	return "", false
}

func Is(err error, kind Kind) bool {
	got, ok := KindOf(err)
	return ok && got == kind
}
