// Package handler is the HTTP layer behind the router.
//
// It binds and validates requests through the validation package, calls
// the service layer and writes responses. Errors are returned to the
// global error handler rather than written here.
package handler
