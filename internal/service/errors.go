package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when the caller supplies a request
	// that fails basic structural validation (e.g. empty username or
	// password).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrBadCredentials is returned when a login or password check fails.
	// It deliberately does not distinguish an unknown username from a
	// wrong password.
	ErrBadCredentials = errors.New("invalid username or password")

	// ErrLoginSuspended is returned while an account is throttled after
	// too many consecutive login failures. The cryptographic check is
	// skipped entirely while suspended.
	ErrLoginSuspended = errors.New("too many attempts, try again later")

	// ErrInvalidToken is returned when a token string cannot be decoded,
	// does not bind to a live session row, or the session sat idle past
	// its timeout. All of these look identical to the caller.
	ErrInvalidToken = errors.New("login expired")
)
