package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/thehiring/pkg/domain"
)

type matchModel struct {
	content domain.Match
	cursor  cursor
	width   int
	height  int
}

func newMatchModel(c domain.Match) matchModel {
	return matchModel{
		content: c,
		cursor:  cursor{}.resize(len(c.Jobs)),
	}
}

// jobSummary is the text copied to the clipboard for a posting.
func jobSummary(j domain.Job) string {
	s := fmt.Sprintf("%s at %s (%s) %s", j.Title, j.Company, j.Location, j.Salary)
	if j.Remote {
		s += " · remote"
	}
	return s
}

func (m matchModel) Update(msg tea.Msg) (matchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.cursor.pos >= len(m.content.Jobs) {
			return m, nil
		}
		job := m.content.Jobs[m.cursor.pos]
		switch msg.String() {
		case "enter":
			return m, gatedCmd("applied to", job.Title+" at "+job.Company)
		case "c":
			return m, copyCmd(jobSummary(job))
		default:
			m.cursor = m.cursor.move(msg.String())
		}
	}
	return m, nil
}

func (m matchModel) View() string {
	p := newPage()
	p.add("")
	p.add(" " + headingStyle.Render("Match") + "  " + dimStyle.Render(m.content.Tagline))
	p.add("")
	p.add(" " + renderStats(m.content.Stats))
	p.add("")

	for i, j := range m.content.Jobs {
		selected := i == m.cursor.pos
		title := normalStyle.Render(j.Title)
		if selected {
			title = selectedStyle.Render(j.Title)
		}
		p.addSelectable(rowPrefix(selected)+title+"  "+matchStyle(j.Match).Render(fmt.Sprintf("%d%% match", j.Match)), selected)
		p.add("     " + dimStyle.Render(strings.Join([]string{j.Company, j.Location, j.Salary, j.Type, j.Posted}, " · ")))

		chips := make([]string, 0, len(j.Skills)+1)
		for _, s := range j.Skills {
			chips = append(chips, chipStyle.Render(s))
		}
		if j.Remote {
			chips = append(chips, remoteStyle.Render("Remote"))
		}
		p.add("     " + strings.Join(chips, metaStyle.Render(" · ")))
		p.add("")
	}
	return p.render(m.height)
}
