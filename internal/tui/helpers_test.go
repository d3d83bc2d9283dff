package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/thehiring/pkg/domain"
)

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("l%d", i)
	}
	return lines
}

func TestScrollWindow(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		focus     int
		height    int
		wantFirst string
		wantLen   int
	}{
		{"fits", 5, 2, 10, "l0", 5},
		{"no focus keeps top", 20, -1, 5, "l0", 5},
		{"focus inside first window", 20, 3, 5, "l0", 5},
		{"focus below window", 20, 9, 5, "l5", 5},
		{"focus at end", 20, 19, 5, "l15", 5},
		{"zero height", 20, 9, 0, "l0", 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := scrollWindow(numbered(tc.total), tc.focus, tc.height)
			if len(got) != tc.wantLen || got[0] != tc.wantFirst {
				t.Errorf("scrollWindow = %v, want %d lines starting at %s", got, tc.wantLen, tc.wantFirst)
			}
		})
	}
}

func TestPageTracksFocus(t *testing.T) {
	p := newPage()
	p.add("header\nsubheader")
	for i := 0; i < 10; i++ {
		p.addSelectable(fmt.Sprintf("row%d", i), i == 8)
	}
	if p.focus != 10 {
		t.Fatalf("focus = %d, want 10", p.focus)
	}
	out := p.render(4)
	if !strings.Contains(out, "row8") {
		t.Errorf("render(4) = %q, want the focused row visible", out)
	}
	if strings.Contains(out, "header") {
		t.Errorf("render(4) = %q, header should have scrolled off", out)
	}
}

func TestCenterLineAndPadCenter(t *testing.T) {
	if got := centerLine("ab", 6); got != "  ab" {
		t.Errorf("centerLine = %q", got)
	}
	if got := centerLine("toolong", 3); got != "toolong" {
		t.Errorf("centerLine overflow = %q", got)
	}
	if got := padCenter("ab", 6); got != "  ab  " {
		t.Errorf("padCenter = %q", got)
	}
	if got := lipgloss.Width(padCenter("abc", 10)); got != 10 {
		t.Errorf("padCenter width = %d, want 10", got)
	}
}

func TestRenderStats(t *testing.T) {
	out := renderStats([]domain.Stat{
		{Value: "12", Label: "Courses Enrolled", Trend: "+3 this month"},
		{Value: "4", Label: "Certifications"},
	})
	for _, want := range []string{"12", "Courses Enrolled", "+3 this month", "Certifications"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderStats missing %q: %q", want, out)
		}
	}
}

func TestSectionHeaderUppercases(t *testing.T) {
	if got := sectionHeader("Top Mentors"); !strings.Contains(got, "TOP MENTORS") {
		t.Errorf("sectionHeader = %q", got)
	}
}
