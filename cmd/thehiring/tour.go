package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/thehiring/pkg/domain"
)

var greetings = [...]string{
	"Your next role is closer than your last excuse.",
	"Six courses, six certifications, six open roles. Pick a door.",
	"Somewhere a recruiter is searching for exactly your skills.",
	"Learning compounds. So does procrastination.",
	"The community answered 47 questions today. One of them was yours.",
	"A certificate is just proof you finished. Finish something.",
	"Match scores go up when you show up.",
	"Mentors are waiting. They are also busy. Book early.",
	"Every hire started as a visitor reading a landing page.",
	"The best time to update your portfolio was last year. The second best is now.",
}

var (
	tourTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff7a59")).
			Bold(true)
	tourQuoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
	tourHeadStyle = lipgloss.NewStyle().Bold(true)
	tourDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// printTour writes a plain-text walkthrough of the catalog to w.
func printTour(w io.Writer, cat *domain.Catalog) {
	greeting := greetings[rand.IntN(len(greetings))]

	fmt.Fprintf(w, "\n  %s\n\n  %s\n\n", tourTitleStyle.Render("T H E   H I R I N G"), tourQuoteStyle.Render(greeting))
	fmt.Fprintf(w, "  %s\n  %s\n\n", tourHeadStyle.Render(cat.Landing.Headline), tourDimStyle.Render(cat.Landing.Subheadline))

	section := func(name, tagline string) {
		fmt.Fprintf(w, "  %s  %s\n", tourHeadStyle.Render(fmt.Sprintf("%-10s", name)), tourDimStyle.Render(tagline))
	}

	section("Learn", cat.Learn.Tagline)
	for _, c := range cat.Learn.Courses {
		fmt.Fprintf(w, "    · %s (%s, %s)\n", c.Title, c.Level, c.Duration)
	}
	fmt.Fprintln(w)

	section("Certify", cat.Certify.Tagline)
	for _, c := range cat.Certify.Certifications {
		fmt.Fprintf(w, "    · %s (%s, %d exams)\n", c.Title, c.Provider, c.Exams)
	}
	fmt.Fprintln(w)

	section("Match", cat.Match.Tagline)
	for _, j := range cat.Match.Jobs {
		fmt.Fprintf(w, "    · %s at %s, %d%% match\n", j.Title, j.Company, j.Match)
	}
	fmt.Fprintln(w)

	section("Community", cat.Community.Tagline)
	for _, d := range cat.Community.Discussions {
		fmt.Fprintf(w, "    · %s (%d replies)\n", d.Title, d.Replies)
	}
	for _, e := range cat.Community.Events {
		fmt.Fprintf(w, "    · %s, %s\n", e.Title, e.Date)
	}

	fmt.Fprintf(w, "\n  %s\n\n", tourDimStyle.Render("Run `thehiring` to explore. "+siteURL))
}
