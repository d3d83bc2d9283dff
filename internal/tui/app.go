package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/naveenspark/thehiring/internal/browser"
	"github.com/naveenspark/thehiring/pkg/domain"
	"github.com/naveenspark/thehiring/pkg/session"
)

// navigateMsg asks the app to move the session to a view.
type navigateMsg struct {
	view session.View
}

// openAuthMsg asks the app to show the sign-in prompt.
type openAuthMsg struct{}

// closeAuthMsg dismisses the sign-in prompt without signing in.
type closeAuthMsg struct{}

// loginMsg carries the name submitted from the auth form.
type loginMsg struct {
	name string
}

// gatedActionMsg is an action that needs a signed-in visitor,
// e.g. applying to a job or enrolling in a course.
type gatedActionMsg struct {
	verb    string
	subject string
}

type copyResultMsg struct {
	err error
}

type openURLResultMsg struct {
	url string
	err error
}

func navigateCmd(v session.View) tea.Cmd {
	return func() tea.Msg { return navigateMsg{view: v} }
}

func openAuthCmd() tea.Cmd {
	return func() tea.Msg { return openAuthMsg{} }
}

func loginCmd(name string) tea.Cmd {
	return func() tea.Msg { return loginMsg{name: name} }
}

func gatedCmd(verb, subject string) tea.Cmd {
	return func() tea.Msg { return gatedActionMsg{verb: verb, subject: subject} }
}

// Replaced in tests so they never touch the real clipboard or browser.
var (
	writeClipboard = clipboard.WriteAll
	openURL        = browser.Open
)

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{err: writeClipboard(text)}
	}
}

func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return openURLResultMsg{url: url, err: openURL(url)}
	}
}

// Options tune the app at construction.
type Options struct {
	// Splash is how long the loader shows. Zero skips it.
	Splash time.Duration
	Logger *zap.Logger
}

// App is the root Bubbletea model. The session controller is the single
// source of truth for the current view, identity and prompt state; the
// sub-models only render content and emit intent messages.
type App struct {
	ctrl       *session.Controller
	logger     *zap.Logger
	landing    landingModel
	learn      learnModel
	certify    certifyModel
	match      matchModel
	community  communityModel
	dashboard  dashboardModel
	auth       authModel
	splash     splashModel
	loading    bool
	helpOpen   bool
	helpCursor int
	notice     string
	warn       bool // notice is an error
	width      int
	height     int
	frame      int // logo shimmer animation frame
}

// NewApp creates a new TUI application over ctrl and the content catalog.
func NewApp(ctrl *session.Controller, cat *domain.Catalog, opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return App{
		ctrl:      ctrl,
		logger:    logger.Named("tui"),
		landing:   newLandingModel(cat.Landing),
		learn:     newLearnModel(cat.Learn),
		certify:   newCertifyModel(cat.Certify),
		match:     newMatchModel(cat.Match),
		community: newCommunityModel(cat.Community),
		dashboard: newDashboardModel(cat.Dashboard),
		auth:      newAuthModel(),
		splash:    newSplashModel(opts.Splash),
		loading:   opts.Splash > 0,
	}
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{shimmerTickCmd()}
	if a.loading {
		cmds = append(cmds, a.splash.done())
	}
	return tea.Batch(cmds...)
}

func (a App) current() session.Session {
	return a.ctrl.Snapshot()
}

func (a App) setNotice(s string) App {
	a.notice = s
	a.warn = false
	return a
}

func (a App) setWarning(s string) App {
	a.notice = s
	a.warn = true
	return a
}

// openAuth opens the prompt in the session and resets the form.
func (a App) openAuth() (App, tea.Cmd) {
	a.ctrl.OpenAuthPrompt()
	var cmd tea.Cmd
	a.auth, cmd = a.auth.open()
	return a, cmd
}

// navigate applies a view change. A signed-out visitor asking for the
// dashboard gets the sign-in prompt instead.
func (a App) navigate(v session.View) (App, tea.Cmd) {
	err := a.ctrl.NavigateTo(v)
	switch {
	case err == nil:
		return a, nil
	case errors.Is(err, session.ErrNotAuthenticated):
		a = a.setWarning("Sign in to view your dashboard")
		return a.openAuth()
	default:
		return a.setWarning(err.Error()), nil
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + status(1) + help(1) = 5 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-5, 0)}
		a.landing, _ = a.landing.Update(bodyMsg)
		a.learn, _ = a.learn.Update(bodyMsg)
		a.certify, _ = a.certify.Update(bodyMsg)
		a.match, _ = a.match.Update(bodyMsg)
		a.community, _ = a.community.Update(bodyMsg)
		a.dashboard, _ = a.dashboard.Update(bodyMsg)
		a.auth, _ = a.auth.Update(bodyMsg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case splashDoneMsg:
		a.loading = false
		return a, nil

	case navigateMsg:
		return a.navigate(msg.view)

	case openAuthMsg:
		return a.openAuth()

	case closeAuthMsg:
		a.ctrl.CloseAuthPrompt()
		return a, nil

	case loginMsg:
		a.ctrl.Login(msg.name)
		return a.setNotice("Signed in as " + a.current().DisplayName), nil

	case gatedActionMsg:
		if !a.current().Authenticated {
			a = a.setWarning("Sign in to continue")
			return a.openAuth()
		}
		return a.setNotice(fmt.Sprintf("You %s %s", msg.verb, msg.subject)), nil

	case copyResultMsg:
		if msg.err != nil {
			a.logger.Warn("clipboard write failed", zap.Error(msg.err))
			return a.setWarning("copy failed: " + msg.err.Error()), nil
		}
		return a.setNotice("copied to clipboard"), nil

	case openURLResultMsg:
		if msg.err != nil {
			a.logger.Warn("open url failed", zap.String("url", msg.url), zap.Error(msg.err))
			return a.setWarning("could not open " + msg.url), nil
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Any key skips the loader
		if a.loading {
			a.loading = false
			return a, nil
		}

		// Help overlay captures all keys when open
		if a.helpOpen {
			switch msg.String() {
			case "h", "esc":
				a.helpOpen = false
			case "q":
				return a, tea.Quit
			case "j", "down":
				if a.helpCursor < len(helpItems)-1 {
					a.helpCursor++
				}
			case "k", "up":
				if a.helpCursor > 0 {
					a.helpCursor--
				}
			case "enter":
				return a, openURLCmd(helpItems[a.helpCursor].url)
			}
			return a, nil
		}

		// Auth overlay captures all keys when open
		if a.current().AuthPromptOpen {
			var cmd tea.Cmd
			a.auth, cmd = a.auth.Update(msg)
			return a, cmd
		}

		a.notice = ""
		s := a.current()
		switch msg.String() {
		case "h":
			a.helpOpen = true
			a.helpCursor = 0
			return a, nil
		case "q":
			return a, tea.Quit
		case "0", "esc":
			a.ctrl.GoHome()
			return a, nil
		case "1":
			return a.navigate(session.ViewLearn)
		case "2":
			return a.navigate(session.ViewCertify)
		case "3":
			return a.navigate(session.ViewMatch)
		case "4":
			return a.navigate(session.ViewCommunity)
		case "d":
			return a.navigate(session.ViewDashboard)
		case "s":
			if !s.Authenticated {
				return a.openAuth()
			}
		case "o":
			if s.Authenticated {
				a.ctrl.Logout()
				return a.setNotice("Signed out"), nil
			}
		}
	}

	// Non-key messages (cursor blink) go to the form while it is open
	if a.current().AuthPromptOpen {
		var cmd tea.Cmd
		a.auth, cmd = a.auth.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.current().View {
	case session.ViewLanding:
		a.landing, cmd = a.landing.Update(msg)
	case session.ViewLearn:
		a.learn, cmd = a.learn.Update(msg)
	case session.ViewCertify:
		a.certify, cmd = a.certify.Update(msg)
	case session.ViewMatch:
		a.match, cmd = a.match.Update(msg)
	case session.ViewCommunity:
		a.community, cmd = a.community.Update(msg)
	case session.ViewDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	if a.loading {
		return a.splash.View(a.frame, a.width, a.height)
	}

	s := a.current()

	// Header: centered shimmer logo and identity line
	identity := metaStyle.Render("guest") + "  " + helpEntry("s", "sign in")
	if s.Authenticated {
		identity = accentStyle.Render("● ") + normalStyle.Render(s.DisplayName) + "  " + helpEntry("o", "sign out")
	}
	header := centerLine(renderShimmerLogo(a.frame), a.width) + "\n" + centerLine(identity, a.width)

	body, help := a.body(s)

	if s.AuthPromptOpen {
		body = "\n" + a.auth.View()
		help = " " + helpEntry("tab", "next") + "  " + helpEntry("ctrl+t", "sign up/in") + "  " + helpEntry("enter", "submit") + "  " + helpEntry("esc", "cancel")
	}
	if a.helpOpen {
		body = helpView(a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	status := ""
	if a.notice != "" {
		if a.warn {
			status = " " + warnStyle.Render(a.notice)
		} else {
			status = " " + noticeStyle.Render(a.notice)
		}
	}

	// Chrome budget: header(2) + tabs(1) + status(1) + help(1) = 5 lines + body
	chrome := 5
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", header, a.tabBar(s), body, status, help)
}

// tabBar renders "0 Home  1 Learn  2 Certify  3 Match  4 Community" spread
// across the terminal. Tab 0 reads Dashboard once signed in.
func (a App) tabBar(s session.Session) string {
	type tabEntry struct {
		key  string
		name string
		v    session.View
	}
	home := s.Home()
	homeName := "Home"
	if home == session.ViewDashboard {
		homeName = home.Title()
	}
	tabs := []tabEntry{{"0", homeName, home}}
	for i, v := range []session.View{session.ViewLearn, session.ViewCertify, session.ViewMatch, session.ViewCommunity} {
		tabs = append(tabs, tabEntry{fmt.Sprint(i + 1), v.Title(), v})
	}

	colWidth := a.width / len(tabs)
	var bar strings.Builder
	for _, t := range tabs {
		var label string
		if t.v == s.View {
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		} else {
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		bar.WriteString(padCenter(label, colWidth))
	}
	return bar.String()
}

func (a App) body(s session.Session) (body, help string) {
	nav := helpEntry("0-4", "tabs") + "  " + helpEntry("j/k", "nav")
	tail := "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	switch s.View {
	case session.ViewLanding:
		return a.landing.View(), " " + nav + "  " + helpEntry("enter", "open") + "  " + helpEntry("d", "dashboard") + tail
	case session.ViewLearn:
		return a.learn.View(), " " + nav + "  " + helpEntry("t", "category") + "  " + helpEntry("enter", "enroll") + tail
	case session.ViewCertify:
		return a.certify.View(), " " + nav + "  " + helpEntry("enter", "start") + tail
	case session.ViewMatch:
		return a.match.View(), " " + nav + "  " + helpEntry("enter", "apply") + "  " + helpEntry("c", "copy") + tail
	case session.ViewCommunity:
		return a.community.View(), " " + nav + "  " + helpEntry("enter", "join") + "  " + helpEntry("c", "copy") + tail
	case session.ViewDashboard:
		return a.dashboard.View(s.DisplayName), " " + nav + "  " + helpEntry("enter", "open") + tail
	}
	return "", " " + nav + tail
}
