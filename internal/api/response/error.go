package response

import "net/http"

// Error is an HTTP-facing error with the status it should be reported with.
type Error struct {
	Code    int
	Message string
}

func (e Error) Error() string {
	return e.Message
}

func NewError(code int, message string) Error {
	return Error{
		Code:    code,
		Message: message,
	}
}

func BadRequest(message string) Error {
	return NewError(http.StatusBadRequest, message)
}

func Unauthorized(message string) Error {
	return NewError(http.StatusUnauthorized, message)
}

func InternalError() Error {
	return NewError(http.StatusInternalServerError, "Internal server error")
}
