package errs

import "strings"

// Client-facing messages. They are fixed so that responses never leak
// internal detail.
const (
	MessageBadRequest       = "Bad request"
	MessageNotFound         = "Not found"
	MessageDatabaseFailed   = "Database operation failed"
	MessageMethodNotAllowed = "Method not allowed"
	MessageTooManyRequests  = "Too many requests"
	MessageInternal         = "Internal server error"
)

// FieldError represents a field-level validation problem.
// Example:
//
//	{ "field": "email", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Response is the JSON body written for every error.
type Response struct {
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST"), used in logs.
//   - Message: the message the client sees.
//   - Status: HTTP status code.
//   - Internal: the cause, logged server-side only.
type HTTPError struct {
	Code     string
	Message  string
	Status   int
	Internal error
}

// Error returns the client message, followed by the cause when there is one,
// so logging the error shows everything.
func (e *HTTPError) Error() string {
	if e.Internal == nil {
		return e.Message
	}
	return e.Message + ": " + e.Internal.Error()
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *HTTPError) Unwrap() error {
	return e.Internal
}

// Is reports whether target is also an *HTTPError. It does not compare
// Code/Status; use errors.As for that.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithInternal returns a copy of e carrying err as its cause.
func (e *HTTPError) WithInternal(err error) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  e.Message,
		Status:   e.Status,
		Internal: err,
	}
}

// Response builds the JSON body for this error.
func (e *HTTPError) Response() Response {
	return Response{Error: e.Message}
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
