package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type authField int

const (
	authName authField = iota
	authEmail
	authPassword
	numAuthFields
)

// authModel is the sign-in / sign-up overlay. Credentials are collected but
// never checked; submitting always signs the visitor in.
type authModel struct {
	inputs [numAuthFields]textinput.Model
	focus  authField
	signUp bool
	width  int
}

func newAuthModel() authModel {
	var m authModel
	placeholders := [numAuthFields]string{"Your name", "you@example.com", "••••••••"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = maxNameLen
		ti.Prompt = ""
		ti.Width = 32
		m.inputs[i] = ti
	}
	m.inputs[authPassword].EchoMode = textinput.EchoPassword
	m.inputs[authPassword].EchoCharacter = '•'
	return m
}

// fields returns the fields visible in the current mode, in tab order.
func (m authModel) fields() []authField {
	if m.signUp {
		return []authField{authName, authEmail, authPassword}
	}
	return []authField{authEmail, authPassword}
}

// open resets the form and focuses its first field.
func (m authModel) open() (authModel, tea.Cmd) {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.signUp = false
	return m.focusField(m.fields()[0])
}

func (m authModel) focusField(f authField) (authModel, tea.Cmd) {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if authField(i) == f {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, cmd
}

// step moves focus by delta through the visible fields, wrapping.
func (m authModel) step(delta int) (authModel, tea.Cmd) {
	fields := m.fields()
	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	return m.focusField(fields[idx])
}

func (m authModel) isLastField() bool {
	fields := m.fields()
	return m.focus == fields[len(fields)-1]
}

// submittedName is the name handed to the session. Only the sign-up form asks
// for one; sign-in leaves it empty so the session falls back.
func (m authModel) submittedName() string {
	if !m.signUp {
		return ""
	}
	return strings.TrimSpace(m.inputs[authName].Value())
}

func (m authModel) Update(msg tea.Msg) (authModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return closeAuthMsg{} }
		case "ctrl+t":
			m.signUp = !m.signUp
			return m.focusField(m.fields()[0])
		case "tab", "down":
			return m.step(1)
		case "shift+tab", "up":
			return m.step(-1)
		case "ctrl+s":
			return m, loginCmd(m.submittedName())
		case "enter":
			if m.isLastField() {
				return m, loginCmd(m.submittedName())
			}
			return m.step(1)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m authModel) View() string {
	title := "Welcome Back"
	sub := "Sign in to continue your journey"
	toggle := "No account? ctrl+t to sign up"
	action := "Sign In"
	if m.signUp {
		title = "Join The Hiring"
		sub = "Create your account to get started"
		toggle = "Have an account? ctrl+t to sign in"
		action = "Create Account"
	}

	labels := [numAuthFields]string{"Name", "Email", "Password"}

	var b strings.Builder
	b.WriteString(headingStyle.Render(title) + "\n")
	b.WriteString(dimStyle.Render(sub) + "\n\n")
	for _, f := range m.fields() {
		label := dimStyle.Render(labels[f])
		if f == m.focus {
			label = accentStyle.Render(labels[f])
		}
		b.WriteString(label + "\n")
		b.WriteString(m.inputs[f].View() + "\n\n")
	}
	b.WriteString(accentBoldStyle.Render("[ "+action+" ]") + "\n\n")
	b.WriteString(metaStyle.Render(toggle) + "\n")
	b.WriteString(helpEntry("tab", "next") + "  " + helpEntry("enter", "submit") + "  " + helpEntry("esc", "cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Background(surfaceColor).
		Padding(1, 3).
		Render(b.String())
	return centerBlock(box, m.width)
}

// centerBlock indents every line of a multi-line block so it sits centered.
func centerBlock(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad <= 0 {
		return s
	}
	indent := strings.Repeat(" ", pad)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}
