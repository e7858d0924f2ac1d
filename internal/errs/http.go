package errs

import (
	"net/http"
)

func newHTTPError(status int, message string, internal error) *HTTPError {
	return &HTTPError{
		// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message:  message,
		Status:   status,
		Internal: internal,
	}
}

// NewBadRequestError creates a 400 for malformed bodies and rejected payloads.
func NewBadRequestError(internal error) *HTTPError {
	return newHTTPError(http.StatusBadRequest, MessageBadRequest, internal)
}

// NewNotFoundError creates a 404 for unknown routes and missing records.
func NewNotFoundError(internal error) *HTTPError {
	return newHTTPError(http.StatusNotFound, MessageNotFound, internal)
}

// NewMethodNotAllowedError creates a 405.
func NewMethodNotAllowedError(internal error) *HTTPError {
	return newHTTPError(http.StatusMethodNotAllowed, MessageMethodNotAllowed, internal)
}

// NewTooManyRequestsError creates a 429 used by the rate limiter.
func NewTooManyRequestsError(internal error) *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, MessageTooManyRequests, internal)
}

// NewDatabaseError creates a 500 for any failure reported by the database.
// The client only ever sees the generic message.
func NewDatabaseError(internal error) *HTTPError {
	err := newHTTPError(http.StatusInternalServerError, MessageDatabaseFailed, internal)
	err.Code = "DATABASE_ERROR"
	return err
}

// NewInternalServerError creates a 500 for everything else.
func NewInternalServerError(internal error) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, MessageInternal, internal)
}
