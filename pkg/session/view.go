package session

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// View is one of the six named application screens.
type View string

// The closed set of views.
const (
	ViewLanding   View = "landing"
	ViewLearn     View = "learn"
	ViewCertify   View = "certify"
	ViewMatch     View = "match"
	ViewCommunity View = "community"
	ViewDashboard View = "dashboard"
)

// views lists every valid View in display order.
var views = [...]View{
	ViewLanding,
	ViewLearn,
	ViewCertify,
	ViewMatch,
	ViewCommunity,
	ViewDashboard,
}

// Views returns the closed set of views in display order.
func Views() []View {
	out := make([]View, len(views))
	copy(out, views[:])
	return out
}

// Valid returns true if v is a member of the closed view set.
func (v View) Valid() bool {
	for _, known := range views {
		if v == known {
			return true
		}
	}
	return false
}

func (v View) String() string {
	return string(v)
}

// Title returns the display label, e.g. "Community".
func (v View) Title() string {
	// Casers carry state, so each call gets its own.
	return cases.Title(language.English).String(string(v))
}

// ParseView converts a view identifier into a View.
func ParseView(s string) (View, error) {
	v := View(s)
	if !v.Valid() {
		return "", fmt.Errorf("session.ParseView %q: %w", s, ErrInvalidView)
	}
	return v, nil
}
