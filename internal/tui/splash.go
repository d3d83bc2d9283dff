package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type splashDoneMsg struct{}

// splashModel is the loader shown before the first page.
type splashModel struct {
	duration time.Duration
	bar      progress.Model
}

func newSplashModel(d time.Duration) splashModel {
	return splashModel{
		duration: d,
		bar: progress.New(
			progress.WithGradient("#5a2418", "#ff7a59"),
			progress.WithoutPercentage(),
			progress.WithWidth(32),
		),
	}
}

func (s splashModel) done() tea.Cmd {
	return tea.Tick(s.duration, func(time.Time) tea.Msg { return splashDoneMsg{} })
}

// percent is the share of the splash elapsed after frame shimmer ticks.
func (s splashModel) percent(frame int) float64 {
	if s.duration <= 0 {
		return 1
	}
	p := float64(time.Duration(frame)*shimmerInterval) / float64(s.duration)
	return min(p, 1)
}

func (s splashModel) View(frame, width, height int) string {
	p := newPage()
	for i := 0; i < max(height/2-3, 0); i++ {
		p.add("")
	}
	p.add(centerLine(renderShimmerLogo(frame), width))
	p.add("")
	p.add(centerLine(dimStyle.Render("Where Talent Meets Opportunity"), width))
	p.add("")
	p.add(centerLine(s.bar.ViewAs(s.percent(frame)), width))
	p.add("")
	p.add(centerLine(metaStyle.Render("press any key to skip"), width))
	return p.render(height)
}
