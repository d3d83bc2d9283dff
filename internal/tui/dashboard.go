package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/thehiring/pkg/domain"
	"github.com/naveenspark/thehiring/pkg/session"
)

// dashboardModel is the signed-in overview. Selectable rows are the quick
// actions followed by the recommended jobs; every row opens a section.
type dashboardModel struct {
	content domain.Dashboard
	cursor  cursor
	width   int
	height  int
}

func newDashboardModel(c domain.Dashboard) dashboardModel {
	return dashboardModel{
		content: c,
		cursor:  cursor{}.resize(len(c.QuickActions) + len(c.RecommendedJobs)),
	}
}

// target returns the view opened by the selected row.
func (m dashboardModel) target() (session.View, bool) {
	i := m.cursor.pos
	if i < len(m.content.QuickActions) {
		v, err := session.ParseView(m.content.QuickActions[i].Section)
		return v, err == nil
	}
	if i-len(m.content.QuickActions) < len(m.content.RecommendedJobs) {
		return session.ViewMatch, true
	}
	return "", false
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if v, ok := m.target(); ok {
				return m, navigateCmd(v)
			}
		default:
			m.cursor = m.cursor.move(msg.String())
		}
	}
	return m, nil
}

// View renders the dashboard greeting for name.
func (m dashboardModel) View(name string) string {
	c := m.content
	p := newPage()
	p.add("")
	p.add(" " + headingStyle.Render(fmt.Sprintf("Welcome back, %s! 👋", name)))
	p.add(" " + dimStyle.Render(c.Tagline))
	p.add("")

	p.add(" " + sectionHeader("Quick Actions"))
	row := 0
	for _, qa := range c.QuickActions {
		selected := row == m.cursor.pos
		label := normalStyle.Render(qa.Label)
		if selected {
			label = selectedStyle.Render(qa.Label)
		}
		p.addSelectable(rowPrefix(selected)+label+" "+metaStyle.Render("→"), selected)
		row++
	}
	p.add("")

	for _, s := range c.Stats {
		line := "   " + statValueStyle.Render(fmt.Sprintf("%-5s", s.Value)) + " " + normalStyle.Render(s.Label)
		if s.Trend != "" {
			line += "  " + trendStyle.Render(s.Trend)
		}
		p.add(line)
	}
	p.add("")

	p.add(" " + sectionHeader("Recent Activity"))
	for _, a := range c.RecentActivity {
		p.add("   " + a.Icon + " " + normalStyle.Render(a.Action) + " " + accentStyle.Render(a.Subject) + "  " + metaStyle.Render(a.Time))
	}
	p.add("")

	p.add(" " + sectionHeader("Recommended Jobs"))
	for _, j := range c.RecommendedJobs {
		selected := row == m.cursor.pos
		title := normalStyle.Render(j.Title)
		if selected {
			title = selectedStyle.Render(j.Title)
		}
		p.addSelectable(rowPrefix(selected)+title+"  "+dimStyle.Render(j.Company)+"  "+matchStyle(j.Match).Render(fmt.Sprintf("%d%%", j.Match)), selected)
		row++
	}
	return p.render(m.height)
}
