package tui

import (
	"strings"
	"testing"
)

func TestHelpEntryFormat(t *testing.T) {
	result := helpEntry("q", "quit")
	if !strings.Contains(result, "q") || !strings.Contains(result, "quit") {
		t.Errorf("helpEntry('q','quit') = %q", result)
	}
}

func TestShimmerLogoKeepsLetters(t *testing.T) {
	for _, frame := range []int{0, 17, 500} {
		logo := renderShimmerLogo(frame)
		for _, ch := range strings.ReplaceAll(logoText, " ", "") {
			if !strings.ContainsRune(logo, ch) {
				t.Errorf("frame %d: logo missing %q", frame, ch)
			}
		}
	}
}

func TestMatchStyleTiers(t *testing.T) {
	strong := matchStyle(95).Render("x")
	weak := matchStyle(50).Render("x")
	if !strings.Contains(strong, "x") || !strings.Contains(weak, "x") {
		t.Error("matchStyle must render its text")
	}
	if matchStyle(90).GetForeground() == matchStyle(80).GetForeground() {
		t.Error("strong and weak matches should differ in color")
	}
}

func TestClampByte(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-3, 0},
		{12.7, 12},
		{300, 255},
	}
	for _, tc := range tests {
		if got := clampByte(tc.in); got != tc.want {
			t.Errorf("clampByte(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestHelpViewMarksCursor(t *testing.T) {
	view := helpView(2)
	if !strings.Contains(view, "> ") {
		t.Error("expected cursor marker in help view")
	}
	for _, item := range helpItems {
		if !strings.Contains(view, item.label) {
			t.Errorf("help view missing %q", item.label)
		}
	}
}
