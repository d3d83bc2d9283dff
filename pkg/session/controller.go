package session

import (
	"go.uber.org/zap"
)

// Transition maps one Session to the next. A non-nil error means the
// transition was rejected and the input Session must be kept.
type Transition func(Session) (Session, error)

// Controller owns the current Session and applies transitions to it.
//
// It is not safe for concurrent use. The TUI event loop is its only caller
// and processes one message at a time.
type Controller struct {
	current Session
	logger  *zap.Logger
}

// NewController creates a controller holding a fresh session. A nil logger
// disables logging.
func NewController(placeholder string, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		current: New(placeholder),
		logger:  logger.Named("session"),
	}
	c.logger.Debug("session created",
		zap.Stringer("id", c.current.ID),
		zap.Stringer("view", c.current.View))
	return c
}

// Snapshot returns the current session. The value is a copy; mutating it
// does not affect the controller.
func (c *Controller) Snapshot() Session {
	return c.current
}

// Apply runs t against the current session. On success the result replaces
// the current session; on failure the current session is kept and the
// error is returned.
func (c *Controller) Apply(op string, t Transition) error {
	from := c.current
	to, err := t(from)
	if err != nil {
		c.logger.Warn("transition rejected",
			zap.String("op", op),
			zap.Stringer("view", from.View),
			zap.Bool("authenticated", from.Authenticated),
			zap.Error(err))
		return err
	}
	c.current = to
	c.logger.Debug("transition",
		zap.String("op", op),
		zap.Stringer("from", from.View),
		zap.Stringer("to", to.View),
		zap.Bool("authenticated", to.Authenticated),
		zap.Bool("auth_prompt", to.AuthPromptOpen))
	if from.ID != to.ID {
		c.logger.Debug("session replaced",
			zap.Stringer("old_id", from.ID),
			zap.Stringer("new_id", to.ID))
	}
	return nil
}

// OpenAuthPrompt presents the login/signup overlay.
func (c *Controller) OpenAuthPrompt() {
	_ = c.Apply("open_auth_prompt", total(Session.OpenAuthPrompt)) //nolint:errcheck // total transition
}

// CloseAuthPrompt dismisses the login/signup overlay.
func (c *Controller) CloseAuthPrompt() {
	_ = c.Apply("close_auth_prompt", total(Session.CloseAuthPrompt)) //nolint:errcheck // total transition
}

// Login authenticates the session under name and lands on the dashboard.
func (c *Controller) Login(name string) {
	_ = c.Apply("login", func(s Session) (Session, error) { //nolint:errcheck // total transition
		return s.Login(name), nil
	})
}

// Logout resets to a fresh, logged-out session on the landing view.
func (c *Controller) Logout() {
	_ = c.Apply("logout", total(Session.Logout)) //nolint:errcheck // total transition
}

// NavigateTo switches the current view. See Session.NavigateTo for the
// rejection rules.
func (c *Controller) NavigateTo(target View) error {
	return c.Apply("navigate", func(s Session) (Session, error) {
		return s.NavigateTo(target)
	})
}

// GoHome navigates to the dashboard when logged in, else the landing page.
func (c *Controller) GoHome() {
	_ = c.NavigateTo(c.current.Home()) //nolint:errcheck // Home never yields a rejected target
}

func total(f func(Session) Session) Transition {
	return func(s Session) (Session, error) {
		return f(s), nil
	}
}
