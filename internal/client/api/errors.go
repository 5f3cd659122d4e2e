package api

import "errors"

// Sentinel errors for the remote gateway. Callers match them with errors.Is.
var (
	// ErrUnavailable covers transport failures and unexpected backend
	// statuses. It always maps to a "failed to load/submit" message with a
	// manual retry affordance; the client never retries on its own.
	ErrUnavailable = errors.New("server unavailable")

	// ErrInvalidCredentials is returned by Login on a 401.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when any other call gets a 401, i.e. the
	// bearer token is missing, expired or rejected.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned on a 404; views render it as an empty state.
	ErrNotFound = errors.New("not found")
)
