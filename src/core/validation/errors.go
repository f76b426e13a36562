package validation

import (
	"errors"

	"registration/src/core/domain"
)

// Code identifies the rule a record violated.
type Code string

const (
	CodeInvalidUser       Code = "INVALID_USER"
	CodeAgeUnder18        Code = "AGE_UNDER_18"
	CodeInvalidPostalCode Code = "INVALID_POSTAL_CODE"
	CodeInvalidEmail      Code = "INVALID_EMAIL"
	CodeInvalidIdentity   Code = "INVALID_IDENTITY"
)

// Codes lists every code in the order the aggregate validator can raise them.
func Codes() []Code {
	return []Code{
		CodeInvalidUser,
		CodeAgeUnder18,
		CodeInvalidPostalCode,
		CodeInvalidEmail,
		CodeInvalidIdentity,
	}
}

// Record field names carried by errors raised from ValidateUser.
const (
	FieldBirth      = "birth"
	FieldPostalCode = "postalCode"
	FieldEmail      = "email"
	FieldFirstName  = "firstName"
	FieldLastName   = "lastName"
)

// Error is a rejected record. It carries exactly one Code.
type Error struct {
	// Code is the violated rule.
	Code Code

	// Field is the record field that failed, empty when the rule is not tied to one.
	Field string

	// Err is the lower-level cause, if any.
	Err error
}

// Error returns the code, which is the error's identity.
func (e *Error) Error() string {
	return string(e.Code)
}

// Unwrap exposes the cause and domain.ErrInvalidInput to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{domain.ErrInvalidInput, e.Err}
	}
	return []error{domain.ErrInvalidInput}
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidUser       = &Error{Code: CodeInvalidUser}
	ErrAgeUnder18        = &Error{Code: CodeAgeUnder18}
	ErrInvalidPostalCode = &Error{Code: CodeInvalidPostalCode}
	ErrInvalidEmail      = &Error{Code: CodeInvalidEmail}
	ErrInvalidIdentity   = &Error{Code: CodeInvalidIdentity}
)

// CodeOf returns the code carried by err.
func CodeOf(err error) (Code, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Code, true
	}
	return "", false
}

// FieldOf returns the field carried by err, if any.
func FieldOf(err error) string {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Field
	}
	return ""
}

func reject(code Code, field string, cause error) *Error {
	return &Error{Code: code, Field: field, Err: cause}
}
