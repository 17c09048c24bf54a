package domain

import "errors"

var (
	// ErrUserNotFound is returned when no account matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when signing up with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for a bad email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a session token fails verification.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrGenerationFailed indicates the completion call could not be completed.
	ErrGenerationFailed = errors.New("quiz generation failed")
	// ErrInvalidScore is returned for score submissions violating score <= total.
	ErrInvalidScore = errors.New("invalid score submission")
)
