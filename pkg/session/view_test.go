package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseView(t *testing.T) {
	tests := []struct {
		in      string
		want    View
		wantErr bool
	}{
		{"landing", ViewLanding, false},
		{"learn", ViewLearn, false},
		{"certify", ViewCertify, false},
		{"match", ViewMatch, false},
		{"community", ViewCommunity, false},
		{"dashboard", ViewDashboard, false},
		{"", "", true},
		{"Learn", "", true},
		{"settings", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseView(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidView)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestViewsClosedSet(t *testing.T) {
	vs := Views()
	require.Len(t, vs, 6)
	assert.Equal(t, ViewLanding, vs[0])

	// Callers get a copy.
	vs[0] = "mutated"
	assert.Equal(t, ViewLanding, Views()[0])
}

func TestViewTitle(t *testing.T) {
	assert.Equal(t, "Community", ViewCommunity.Title())
	assert.Equal(t, "Dashboard", ViewDashboard.Title())
}
