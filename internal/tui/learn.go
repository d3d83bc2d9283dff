package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/thehiring/pkg/domain"
)

type learnModel struct {
	content  domain.Learn
	category int // index into content.Categories
	cursor   cursor
	width    int
	height   int
}

func newLearnModel(c domain.Learn) learnModel {
	m := learnModel{content: c}
	m.cursor = cursor{}.resize(len(m.courses()))
	return m
}

// selectedCategory returns the active filter, CategoryAll when none.
func (m learnModel) selectedCategory() string {
	if m.category < 0 || m.category >= len(m.content.Categories) {
		return domain.CategoryAll
	}
	return m.content.Categories[m.category]
}

func (m learnModel) courses() []domain.Course {
	return m.content.CoursesIn(m.selectedCategory())
}

func (m learnModel) Update(msg tea.Msg) (learnModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "t", "right", "l":
			m = m.cycleCategory(1)
		case "T", "left":
			m = m.cycleCategory(-1)
		case "enter":
			courses := m.courses()
			if m.cursor.pos < len(courses) {
				return m, gatedCmd("enrolled in", courses[m.cursor.pos].Title)
			}
		default:
			m.cursor = m.cursor.move(msg.String())
		}
	}
	return m, nil
}

func (m learnModel) cycleCategory(step int) learnModel {
	n := len(m.content.Categories)
	if n == 0 {
		return m
	}
	m.category = (m.category + step + n) % n
	m.cursor = cursor{}.resize(len(m.courses()))
	return m
}

func (m learnModel) View() string {
	p := newPage()
	p.add("")
	p.add(" " + headingStyle.Render("Learn") + "  " + dimStyle.Render(m.content.Tagline))
	p.add("")

	var cats strings.Builder
	cats.WriteString(" ")
	for i, c := range m.content.Categories {
		if i == m.category {
			cats.WriteString(accentBoldStyle.Render("[" + c + "]"))
		} else {
			cats.WriteString(dimStyle.Render(" " + c + " "))
		}
		cats.WriteString(" ")
	}
	p.add(cats.String())
	p.add("")

	courses := m.courses()
	if len(courses) == 0 {
		p.add(" " + dimStyle.Render("no courses in this category yet"))
		return p.render(m.height)
	}

	for i, c := range courses {
		selected := i == m.cursor.pos
		title := normalStyle.Render(c.Title)
		if selected {
			title = selectedStyle.Render(c.Title)
		}
		p.addSelectable(rowPrefix(selected)+title+"  "+chipStyle.Render(c.Category)+" "+metaStyle.Render("· "+c.Level), selected)
		meta := fmt.Sprintf("%s · %s · %s students", c.Instructor, c.Duration, c.Students)
		p.add("     " + dimStyle.Render(meta) + "  " + ratingStyle.Render(fmt.Sprintf("★ %.1f", c.Rating)))
		p.add("")
	}
	return p.render(m.height)
}
