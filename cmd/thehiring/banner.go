package main

import (
	"fmt"
	"io"
)

// ANSI color constants for plain output (no lipgloss, runs outside the TUI).
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiItalic = "\033[3m"
	ansiCoral  = "\033[38;2;255;122;89m"  // #ff7a59
	ansiEmber  = "\033[38;2;196;84;56m"   // #c45438
	ansiSlate  = "\033[38;2;154;148;138m" // #9a948a
)

// printLogo prints the spaced wordmark in alternating coral.
func printLogo(w io.Writer) {
	letters := "THEHIRING"
	colors := [2]string{ansiCoral, ansiEmber}
	fmt.Fprint(w, "\n  ")
	for i, ch := range letters {
		fmt.Fprintf(w, "%s%s%c%s", colors[i%2], ansiBold, ch, ansiReset)
		switch {
		case i == 2:
			fmt.Fprint(w, "    ")
		case i < len(letters)-1:
			fmt.Fprint(w, "  ")
		}
	}
	fmt.Fprintln(w)
}

// printVersion prints the wordmark and the build version.
func printVersion(w io.Writer, v string) {
	printLogo(w)
	fmt.Fprintf(w, "\n  %s%s%s  %s%swhere talent meets opportunity%s\n\n",
		ansiBold, v, ansiReset,
		ansiSlate, ansiItalic, ansiReset,
	)
}
