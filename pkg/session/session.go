// Package session holds the navigation and login state for The Hiring.
//
// A Session is an immutable value. Every transition returns a new Session
// and leaves the receiver untouched, so callers can keep the previous value
// around for comparison or logging.
package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FallbackName is the display name used when Login receives an empty name.
const FallbackName = "User"

// DefaultName is the placeholder display name of a logged-out session.
const DefaultName = "Alex"

// Session is the in-memory record of the current view, auth status and
// display name.
type Session struct {
	ID             uuid.UUID
	View           View
	Authenticated  bool
	DisplayName    string
	AuthPromptOpen bool

	// Placeholder is the display name restored on logout.
	Placeholder string
}

// New returns the initial session: landing view, logged out, prompt closed.
// An empty placeholder falls back to DefaultName.
func New(placeholder string) Session {
	placeholder = strings.TrimSpace(placeholder)
	if placeholder == "" {
		placeholder = DefaultName
	}
	return Session{
		ID:          uuid.New(),
		View:        ViewLanding,
		DisplayName: placeholder,
		Placeholder: placeholder,
	}
}

// OpenAuthPrompt presents the login/signup overlay. Idempotent.
func (s Session) OpenAuthPrompt() Session {
	s.AuthPromptOpen = true
	return s
}

// CloseAuthPrompt dismisses the login/signup overlay. Idempotent.
func (s Session) CloseAuthPrompt() Session {
	s.AuthPromptOpen = false
	return s
}

// Login authenticates the session under name and lands on the dashboard.
// It never fails; an empty name becomes FallbackName. Any other name,
// whitespace included, is stored as given.
func (s Session) Login(name string) Session {
	if name == "" {
		name = FallbackName
	}
	s.DisplayName = name
	s.Authenticated = true
	s.View = ViewDashboard
	s.AuthPromptOpen = false
	return s
}

// Logout discards the session and starts a fresh one on the landing view.
// Calling it while logged out still forces the landing view.
func (s Session) Logout() Session {
	return New(s.Placeholder)
}

// NavigateTo switches to target. It rejects targets outside the closed set
// and the dashboard while logged out; the receiver is returned unchanged
// alongside the error.
func (s Session) NavigateTo(target View) (Session, error) {
	if !target.Valid() {
		return s, fmt.Errorf("session.NavigateTo %q: %w", target, ErrInvalidView)
	}
	if target == ViewDashboard && !s.Authenticated {
		return s, fmt.Errorf("session.NavigateTo %q: %w", target, ErrNotAuthenticated)
	}
	s.View = target
	return s, nil
}

// Home returns the view a "home" action routes to: the dashboard when
// logged in, the landing page otherwise.
func (s Session) Home() View {
	if s.Authenticated {
		return ViewDashboard
	}
	return ViewLanding
}
