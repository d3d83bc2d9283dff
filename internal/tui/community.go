package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/thehiring/pkg/domain"
)

// communityModel lists discussions, events and mentors as one selectable list,
// in that order.
type communityModel struct {
	content domain.Community
	cursor  cursor
	width   int
	height  int
}

func newCommunityModel(c domain.Community) communityModel {
	return communityModel{
		content: c,
		cursor:  cursor{}.resize(len(c.Discussions) + len(c.Events) + len(c.Mentors)),
	}
}

// selection maps the cursor to an action: the verb, its subject and the text
// copied by "c".
func (m communityModel) selection() (verb, subject, copyText string, ok bool) {
	i := m.cursor.pos
	if i < len(m.content.Discussions) {
		d := m.content.Discussions[i]
		return "joined the discussion", d.Title, d.Title + " (by " + d.Author + ")", true
	}
	i -= len(m.content.Discussions)
	if i < len(m.content.Events) {
		e := m.content.Events[i]
		return "registered for", e.Title, fmt.Sprintf("%s, %s at %s", e.Title, e.Date, e.Time), true
	}
	i -= len(m.content.Events)
	if i < len(m.content.Mentors) {
		mt := m.content.Mentors[i]
		return "requested a session with", mt.Name, mt.Name + ", " + mt.Role, true
	}
	return "", "", "", false
}

func (m communityModel) Update(msg tea.Msg) (communityModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if verb, subject, _, ok := m.selection(); ok {
				return m, gatedCmd(verb, subject)
			}
		case "c":
			if _, _, text, ok := m.selection(); ok {
				return m, copyCmd(text)
			}
		default:
			m.cursor = m.cursor.move(msg.String())
		}
	}
	return m, nil
}

func (m communityModel) View() string {
	c := m.content
	p := newPage()
	p.add("")
	p.add(" " + headingStyle.Render("Community") + "  " + dimStyle.Render(c.Tagline))
	p.add("")
	p.add(" " + renderStats(c.Stats))
	p.add("")

	row := 0
	p.add(" " + sectionHeader("Trending Discussions"))
	for _, d := range c.Discussions {
		selected := row == m.cursor.pos
		title := normalStyle.Render(d.Title)
		if selected {
			title = selectedStyle.Render(d.Title)
		}
		p.addSelectable(rowPrefix(selected)+metaStyle.Render(d.Avatar)+" "+title, selected)
		p.add("       " + dimStyle.Render(fmt.Sprintf("%s · %s · %d replies · %d likes", d.Author, d.Category, d.Replies, d.Likes)))
		row++
	}
	p.add("")

	p.add(" " + sectionHeader("Upcoming Events"))
	for _, e := range c.Events {
		selected := row == m.cursor.pos
		title := normalStyle.Render(e.Title)
		if selected {
			title = selectedStyle.Render(e.Title)
		}
		p.addSelectable(rowPrefix(selected)+title+"  "+chipStyle.Render(e.Type), selected)
		p.add("     " + dimStyle.Render(fmt.Sprintf("%s · %s · %d attending", e.Date, e.Time, e.Attendees)))
		row++
	}
	p.add("")

	p.add(" " + sectionHeader("Top Mentors"))
	for _, mt := range c.Mentors {
		selected := row == m.cursor.pos
		name := normalStyle.Render(mt.Name)
		if selected {
			name = selectedStyle.Render(mt.Name)
		}
		p.addSelectable(rowPrefix(selected)+metaStyle.Render(mt.Avatar)+" "+name+"  "+dimStyle.Render(mt.Role)+"  "+ratingStyle.Render(fmt.Sprintf("★ %.1f", mt.Rating)), selected)
		row++
	}
	return p.render(m.height)
}
