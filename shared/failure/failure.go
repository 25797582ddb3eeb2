package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that carries the HTTP status it should be reported
// with. Hint and Details are only set for operator-facing errors.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
	Details any    `json:"details,omitempty"`
}

var (
	RegistrationClosedError = New(http.StatusForbidden, "Admin registration is closed. Contact the existing admin for consent.")
	EmailMismatchError      = New(http.StatusUnauthorized, "Email does not match this booking")
	SignatureInvalidError   = New(http.StatusUnauthorized, "Invalid webhook signature")
)

func New(code int, msg string) *Failure {
	return &Failure{Code: code, Message: msg}
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest wraps err as a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

// InternalError wraps err as a 500. A nil err stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusInternalServerError, err.Error())
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

// ServiceUnavailable reports an unconfigured dependency; hint names what is
// missing.
func ServiceUnavailable(msg, hint string) error {
	fail := New(http.StatusServiceUnavailable, msg)
	fail.Hint = hint

	return fail
}

// BadGateway reports a failed or malformed upstream call with the raw
// upstream payload attached.
func BadGateway(msg string, details any) error {
	fail := New(http.StatusBadGateway, msg)
	fail.Details = details

	return fail
}

// GetCode returns the status carried by err, or 500 for anything that is
// not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Is reports whether err wraps a Failure with the given code.
func Is(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}
