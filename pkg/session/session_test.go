package session

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ignoreID compares sessions without their random identifier.
var ignoreID = cmpopts.IgnoreFields(Session{}, "ID")

func TestNewSession(t *testing.T) {
	s := New("")
	want := Session{
		View:        ViewLanding,
		DisplayName: DefaultName,
		Placeholder: DefaultName,
	}
	if diff := cmp.Diff(want, s, ignoreID); diff != "" {
		t.Errorf("New() mismatch (-want +got):\n%s", diff)
	}
	assert.NotEqual(t, New("").ID, s.ID, "each session gets its own ID")
}

func TestNewSessionCustomPlaceholder(t *testing.T) {
	s := New("  Sam ")
	assert.Equal(t, "Sam", s.DisplayName)
	assert.Equal(t, "Sam", s.Placeholder)
}

func TestNavigateToLearnWhileLoggedOut(t *testing.T) {
	s, err := New("").NavigateTo(ViewLearn)
	require.NoError(t, err)
	assert.Equal(t, ViewLearn, s.View)
	assert.False(t, s.Authenticated)
}

func TestLoginWithName(t *testing.T) {
	s := New("").Login("Jordan")
	want := Session{
		View:          ViewDashboard,
		Authenticated: true,
		DisplayName:   "Jordan",
		Placeholder:   DefaultName,
	}
	if diff := cmp.Diff(want, s, ignoreID); diff != "" {
		t.Errorf("Login(Jordan) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoginEmptyNameFallsBack(t *testing.T) {
	s := New("").Login("")
	assert.Equal(t, FallbackName, s.DisplayName)
	assert.True(t, s.Authenticated)
}

func TestLoginKeepsWhitespaceName(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"spaces", "   "},
		{"tab", "\t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("").Login(tt.input)
			assert.Equal(t, tt.input, s.DisplayName)
			assert.True(t, s.Authenticated)
		})
	}
}

func TestLoginClosesPrompt(t *testing.T) {
	s := New("").OpenAuthPrompt()
	require.True(t, s.AuthPromptOpen)

	s = s.Login("Jordan")
	assert.False(t, s.AuthPromptOpen)
	assert.Equal(t, ViewDashboard, s.View)
}

func TestLogoutFromDashboard(t *testing.T) {
	before := New("").Login("Jordan")
	s := before.Logout()

	assert.Equal(t, ViewLanding, s.View)
	assert.False(t, s.Authenticated)
	assert.Equal(t, DefaultName, s.DisplayName)
	assert.False(t, s.AuthPromptOpen)
	assert.NotEqual(t, before.ID, s.ID, "logout starts a new session")
}

func TestLogoutWhileLoggedOutForcesLanding(t *testing.T) {
	s, err := New("").NavigateTo(ViewMatch)
	require.NoError(t, err)

	s = s.Logout()
	assert.Equal(t, ViewLanding, s.View)
	assert.False(t, s.Authenticated)
	assert.Equal(t, DefaultName, s.DisplayName)
}

func TestNavigateToDashboardRejectedWhenLoggedOut(t *testing.T) {
	before := New("")
	after, err := before.NavigateTo(ViewDashboard)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotAuthenticated))
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("rejected navigation changed the session (-before +after):\n%s", diff)
	}
}

func TestNavigateToDashboardAllowedWhenLoggedIn(t *testing.T) {
	s := New("").Login("Jordan")
	s, err := s.NavigateTo(ViewCommunity)
	require.NoError(t, err)

	s, err = s.NavigateTo(ViewDashboard)
	require.NoError(t, err)
	assert.Equal(t, ViewDashboard, s.View)
}

func TestNavigateToInvalidView(t *testing.T) {
	before := New("")
	after, err := before.NavigateTo(View("settings"))

	require.ErrorIs(t, err, ErrInvalidView)
	assert.Equal(t, before, after)
}

func TestNavigateLeavesPromptAlone(t *testing.T) {
	s := New("").OpenAuthPrompt()
	s, err := s.NavigateTo(ViewCertify)
	require.NoError(t, err)
	assert.True(t, s.AuthPromptOpen)
}

func TestAuthPromptRoundTrip(t *testing.T) {
	start, err := New("").NavigateTo(ViewLearn)
	require.NoError(t, err)

	s := start.OpenAuthPrompt().CloseAuthPrompt()
	assert.False(t, s.AuthPromptOpen)
	assert.Equal(t, start.View, s.View)
	assert.Equal(t, start.Authenticated, s.Authenticated)
}

func TestOpenAuthPromptIdempotent(t *testing.T) {
	once := New("").OpenAuthPrompt()
	twice := once.OpenAuthPrompt()
	assert.Equal(t, once, twice)

	closedOnce := once.CloseAuthPrompt()
	assert.Equal(t, closedOnce, closedOnce.CloseAuthPrompt())
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	s := New("")
	snapshot := s

	_ = s.OpenAuthPrompt()
	_ = s.Login("Jordan")
	_, _ = s.NavigateTo(ViewLearn) //nolint:errcheck
	_ = s.Logout()

	assert.Equal(t, snapshot, s)
}

func TestHome(t *testing.T) {
	assert.Equal(t, ViewLanding, New("").Home())
	assert.Equal(t, ViewDashboard, New("").Login("Jordan").Home())
}

// TestRandomSequencesKeepInvariants drives the session through random
// operation sequences and checks the invariants after every step.
func TestRandomSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	targets := append(Views(), View(""), View("admin"))
	names := []string{"", "Jordan", "  ", "Riley"}

	for run := 0; run < 200; run++ {
		s := New("")
		enteredDashboard := false
		for step := 0; step < 50; step++ {
			prev := s
			switch rng.IntN(5) {
			case 0:
				s = s.OpenAuthPrompt()
			case 1:
				s = s.CloseAuthPrompt()
			case 2:
				s = s.Login(names[rng.IntN(len(names))])
				enteredDashboard = true
			case 3:
				s = s.Logout()
			case 4:
				target := targets[rng.IntN(len(targets))]
				next, err := s.NavigateTo(target)
				if err != nil {
					require.Equal(t, prev, next, "rejected navigation must not change state")
				} else if target == ViewDashboard {
					enteredDashboard = true
				}
				s = next
			}

			require.True(t, s.View.Valid(), "view %q left the closed set", s.View)
			require.NotEmpty(t, s.DisplayName)
			if s.View == ViewDashboard {
				require.True(t, s.Authenticated, "dashboard while logged out")
				require.True(t, enteredDashboard)
			}
		}
	}
}
