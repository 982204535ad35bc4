package errors

import "net/http"

// TypedError carries an HTTP-equivalent code so handlers can map domain
// failures to responses without inspecting message strings.
type TypedError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *TypedError) Error() string {
	return e.Message
}

func BadRequest(msg string) error {
	return &TypedError{Code: http.StatusBadRequest, Message: msg}
}

func UnauthorizedError(msg string) error {
	return &TypedError{Code: http.StatusUnauthorized, Message: msg}
}

func ForbiddenError(msg string) error {
	return &TypedError{Code: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) error {
	return &TypedError{Code: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &TypedError{Code: http.StatusConflict, Message: msg}
}

func InternalServerError(msg string) error {
	return &TypedError{Code: http.StatusInternalServerError, Message: msg}
}

// HTTPCode resolves the status code for an error, defaulting to 500 for
// anything untyped.
func HTTPCode(err error) int {
	if te, ok := err.(*TypedError); ok {
		return te.Code
	}
	return http.StatusInternalServerError
}

// Is reports whether err is a TypedError with the given code.
func Is(err error, code int) bool {
	te, ok := err.(*TypedError)
	return ok && te.Code == code
}
