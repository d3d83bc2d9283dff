package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/thehiring/pkg/domain"
)

type certifyModel struct {
	content domain.Certify
	cursor  cursor
	width   int
	height  int
}

func newCertifyModel(c domain.Certify) certifyModel {
	return certifyModel{
		content: c,
		cursor:  cursor{}.resize(len(c.Certifications)),
	}
}

func (m certifyModel) Update(msg tea.Msg) (certifyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.cursor.pos < len(m.content.Certifications) {
				return m, gatedCmd("started", m.content.Certifications[m.cursor.pos].Title)
			}
		default:
			m.cursor = m.cursor.move(msg.String())
		}
	}
	return m, nil
}

func (m certifyModel) View() string {
	p := newPage()
	p.add("")
	p.add(" " + headingStyle.Render("Certify") + "  " + dimStyle.Render(m.content.Tagline))
	p.add("")
	for _, b := range m.content.Benefits {
		p.add("   " + accentStyle.Render("◆") + " " + normalStyle.Render(b.Title) + "  " + dimStyle.Render(b.Desc))
	}
	p.add("")
	p.add(" " + sectionHeader("Available Certifications"))

	for i, c := range m.content.Certifications {
		selected := i == m.cursor.pos
		title := normalStyle.Render(c.Title)
		if selected {
			title = selectedStyle.Render(c.Title)
		}
		line := rowPrefix(selected) + c.Badge + " " + title
		if c.Verified {
			line += "  " + verifiedStyle.Render("✓ verified")
		}
		p.addSelectable(line, selected)
		meta := fmt.Sprintf("%s · %s · %d exams", c.Provider, c.Duration, c.Exams)
		p.add("      " + dimStyle.Render(meta))
	}
	return p.render(m.height)
}
