// Package errs defines the HTTP error type returned to API clients.
//
// Every failure leaves the service as a JSON body of the form
// {"error": "<message>"}. The underlying cause rides along in
// HTTPError.Internal for logging and is never serialized.
package errs
