package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shimmer animation for the header wordmark.
type shimmerTickMsg time.Time

const shimmerInterval = 80 * time.Millisecond

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(shimmerInterval, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// logoText is the wordmark rendered by renderShimmerLogo.
const logoText = "THE HIRING"

// renderShimmerLogo renders the wordmark as a slow wave of coral light.
// Deep ember (#5a2418) -> bright coral (#ff7a59). Spaces are kept as gaps.
func renderShimmerLogo(frame int) string {
	n := len(logoText)
	t := float64(frame)

	var out strings.Builder
	for i := 0; i < n; i++ {
		ch := logoText[i]
		if ch == ' ' {
			out.WriteString("    ")
			continue
		}
		x := float64(i) / float64(n-1)

		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		r := clampByte(90 + b*(255-90))
		g := clampByte(36 + b*(122-36))
		bl := clampByte(24 + b*(89-24))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)
		out.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color)).
			Render(string(ch)))

		if i < n-1 && logoText[i+1] != ' ' {
			out.WriteString("  ")
		}
	}
	return out.String()
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base styles, cream on charcoal
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9a948a"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f5f0e8")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d8d2c6"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5e5a54"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9a948a"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5e5a54"))

	// Brand accent
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff7a59"))

	accentBoldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff7a59")).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f5f0e8")).
			Bold(true)

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6e6a62"))

	statValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff7a59")).
			Bold(true)

	trendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7bc47f"))

	ratingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f0b429"))

	verifiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7bc47f"))

	remoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a0e0"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0b8aa"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7bc47f")).
			Italic(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06060"))

	// Surface colors
	borderColor  = lipgloss.Color("#3a3632")
	surfaceColor = lipgloss.Color("#1a1816")
)

// matchStyle colors a match percentage: strong matches glow, weaker ones fade.
func matchStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 90:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#7bc47f")).Bold(true)
	case pct >= 85:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#f0b429")).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#9a948a"))
	}
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpItem is a selectable link in the help overlay.
type helpItem struct {
	label string
	desc  string
	url   string
}

var helpItems = []helpItem{
	{"Terms of Service", "thehiring.example/terms", "https://thehiring.example/terms"},
	{"Privacy Policy", "thehiring.example/privacy", "https://thehiring.example/privacy"},
	{"FAQ", "thehiring.example/faq", "https://thehiring.example/faq"},
	{"Website", "thehiring.example", "https://thehiring.example"},
}

// helpView renders the interactive help overlay with a cursor.
func helpView(cursor int) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ff7a59")).
		Bold(true).
		Render("T H E   H I R I N G")

	quote := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render(`"Where talent meets opportunity."`)

	keyStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff7a59"))
	linkDescStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	keys := []struct{ key, desc string }{
		{"0 / esc", "Home (dashboard when signed in)"},
		{"1-4", "Learn, Certify, Match, Community"},
		{"d", "Dashboard (requires sign in)"},
		{"j/k enter", "Move and select"},
		{"s / o", "Sign in / sign out"},
		{"q", "Quit"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n  %s\n\n", title, quote)

	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Keys"))
	for _, k := range keys {
		fmt.Fprintf(&b, "    %s  %s\n", keyStyle.Render(fmt.Sprintf("%-12s", k.key)), descStyle.Render(k.desc))
	}

	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Links (enter to open)"))
	for i, item := range helpItems {
		label := keyStyle.Render(fmt.Sprintf("%-20s", item.label))
		prefix := "    "
		if i == cursor {
			label = cursorStyle.Render(fmt.Sprintf("%-20s", item.label))
			prefix = "  > "
		}
		fmt.Fprintf(&b, "%s%s  %s\n", prefix, label, linkDescStyle.Render(item.desc))
	}
	return b.String()
}
