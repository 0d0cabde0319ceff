// Package login provides HTTP handlers for the owner's authentication flow.
package login

import "errors"

var (
	// ErrInvalidCredentials is returned when the provided username and/or password
	// are not valid.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInactiveUser is returned when the account exists but cannot log in.
	ErrInactiveUser = errors.New("account is inactive")

	// ErrInternalServerError is returned for unexpected failures during the login
	// process.
	ErrInternalServerError = errors.New("internal server error")
)
