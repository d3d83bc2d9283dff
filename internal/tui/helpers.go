package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/thehiring/pkg/domain"
)

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// centerLine pads s on the left so it sits in the middle of width.
func centerLine(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}

// renderStats renders headline numbers on one line: "50K+ Active Learners · 500+ Courses".
func renderStats(stats []domain.Stat) string {
	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		p := statValueStyle.Render(s.Value) + " " + dimStyle.Render(s.Label)
		if s.Trend != "" {
			p += " " + trendStyle.Render("↑ "+s.Trend)
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, metaStyle.Render("  ·  "))
}

// sectionHeader renders a "── TITLE ──" divider.
func sectionHeader(title string) string {
	return sectionHeaderStyle.Render("── " + strings.ToUpper(title) + " ──")
}

// rowPrefix returns the cursor gutter for a selectable row.
func rowPrefix(selected bool) string {
	if selected {
		return accentStyle.Render(" > ")
	}
	return "   "
}

// scrollWindow returns at most height lines from lines, shifted so the line
// at focus stays visible. A negative focus keeps the top of the page.
func scrollWindow(lines []string, focus, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := 0
	if focus >= height {
		start = focus - height + 1
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}

// page collects rendered lines and remembers where the selected row sits.
type page struct {
	lines []string
	focus int
}

func newPage() *page {
	return &page{focus: -1}
}

// add appends one or more lines. Multi-line strings are split.
func (p *page) add(s string) {
	p.lines = append(p.lines, strings.Split(s, "\n")...)
}

// addSelectable appends a row and records it as the focus when selected.
func (p *page) addSelectable(s string, selected bool) {
	if selected {
		p.focus = len(p.lines)
	}
	p.add(s)
}

// render returns the visible window of the page for the given height.
func (p *page) render(height int) string {
	return strings.Join(scrollWindow(p.lines, p.focus, height), "\n")
}

// padCenter centers s in a column of width cells.
func padCenter(s string, width int) string {
	w := lipgloss.Width(s)
	left := max((width-w)/2, 0)
	right := max(width-w-left, 0)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
