// Package validation contains the logic for validating
// request data.
//
// It binds the request into a typed payload, runs the payload's own
// Validate method (usually go-playground/validator tags) and turns any
// failure into a 400 for the client.
package validation
