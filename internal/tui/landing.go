package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/thehiring/pkg/domain"
	"github.com/naveenspark/thehiring/pkg/session"
)

// landingModel is the marketing page shown to signed-out visitors.
// Selectable rows are the four feature cards followed by the call to action.
type landingModel struct {
	content domain.Landing
	cursor  cursor
	width   int
	height  int
}

func newLandingModel(c domain.Landing) landingModel {
	return landingModel{
		content: c,
		cursor:  cursor{n: len(c.Features) + 1},
	}
}

// ctaIndex is the cursor position of the call-to-action row.
func (m landingModel) ctaIndex() int {
	return len(m.content.Features)
}

func (m landingModel) Update(msg tea.Msg) (landingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.cursor.pos == m.ctaIndex() {
				return m, openAuthCmd()
			}
			f := m.content.Features[m.cursor.pos]
			v, err := session.ParseView(f.Section)
			if err != nil {
				return m, nil
			}
			return m, navigateCmd(v)
		default:
			m.cursor = m.cursor.move(msg.String())
		}
	}
	return m, nil
}

func (m landingModel) View() string {
	c := m.content
	p := newPage()
	wrap := lipgloss.NewStyle().Width(max(m.width-4, 20))

	p.add("")
	p.add(centerLine(accentStyle.Render("✦ "+c.Badge), m.width))
	p.add("")
	p.add(centerLine(headingStyle.Render(c.Headline), m.width))
	p.add("")
	for _, line := range strings.Split(wrap.Render(dimStyle.Render(c.Subheadline)), "\n") {
		p.add("  " + line)
	}
	p.add("")
	p.add(centerLine(renderStats(c.Stats), m.width))
	p.add("")

	p.add(" " + sectionHeader(c.WhyTitle))
	for _, line := range strings.Split(wrap.Render(normalStyle.Render(c.WhyBody)), "\n") {
		p.add("  " + line)
	}
	for _, b := range c.Benefits {
		p.add("   " + accentStyle.Render("✓") + " " + normalStyle.Render(b))
	}
	p.add("   " + statValueStyle.Render(c.Placement.Value) + " " + dimStyle.Render(c.Placement.Label))
	p.add("")

	p.add(" " + sectionHeader("The Complete Ecosystem"))
	for i, f := range c.Features {
		selected := i == m.cursor.pos
		title := normalStyle.Render(f.Title)
		if selected {
			title = selectedStyle.Render(f.Title)
		}
		p.addSelectable(rowPrefix(selected)+title, selected)
		p.add("     " + dimStyle.Render(truncStr(f.Description, max(m.width-8, 20))))
	}
	p.add("")

	p.add(" " + sectionHeader(c.CTATitle))
	p.add("  " + dimStyle.Render(c.CTABody))
	ctaSelected := m.cursor.pos == m.ctaIndex()
	cta := accentStyle.Render(`[ Join "The Hiring" ]`)
	if ctaSelected {
		cta = accentBoldStyle.Reverse(true).Render(` Join "The Hiring" `)
	}
	p.addSelectable(rowPrefix(ctaSelected)+cta, ctaSelected)
	p.add("")
	p.add(" " + metaStyle.Render(c.Footer))

	return p.render(m.height)
}
