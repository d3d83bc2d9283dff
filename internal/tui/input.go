package tui

// maxNameLen is the maximum number of runes allowed in auth form fields.
const maxNameLen = 80

// cursor tracks the selected row of a list of n items.
type cursor struct {
	pos int
	n   int
}

// move applies a navigation key and clamps the position to the list.
// Returns the cursor unchanged for keys it does not handle.
func (c cursor) move(key string) cursor {
	switch key {
	case "j", "down":
		if c.pos < c.n-1 {
			c.pos++
		}
	case "k", "up":
		if c.pos > 0 {
			c.pos--
		}
	case "g", "home":
		c.pos = 0
	case "G", "end":
		if c.n > 0 {
			c.pos = c.n - 1
		}
	}
	return c
}

// resize sets the item count and pulls the position back into range.
func (c cursor) resize(n int) cursor {
	c.n = n
	if c.pos >= n {
		c.pos = n - 1
	}
	if c.pos < 0 {
		c.pos = 0
	}
	return c
}

// truncateToHeight limits output to maxLines newline-delimited lines.
// Returns the original string if it fits or maxLines is <= 0.
func truncateToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
			if n >= maxLines {
				return s[:i+1]
			}
		}
	}
	return s
}
