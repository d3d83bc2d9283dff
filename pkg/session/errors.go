package session

import "errors"

var (
	// ErrInvalidView is returned when a view identifier is outside the closed set.
	ErrInvalidView = errors.New("invalid view")

	// ErrNotAuthenticated is returned when the dashboard is requested by a
	// session that has not logged in.
	ErrNotAuthenticated = errors.New("dashboard requires authentication")
)
