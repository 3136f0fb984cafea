package format

import "github.com/fatih/color"

// Palette maps log elements to colors. The zero value renders plain text.
type Palette struct {
	Hash    *color.Color
	Message *color.Color
	Author  *color.Color
	Date    *color.Color
}

// TerminalPalette returns the default palette for colored output.
// Whether escape codes are actually emitted follows the fatih/color
// terminal detection, so piped output stays plain.
func TerminalPalette() Palette {
	return Palette{
		Hash:    color.New(color.FgYellow),
		Message: color.New(color.FgHiWhite),
		Author:  color.New(color.FgCyan),
		Date:    color.New(color.FgGreen),
	}
}

// Forced returns a copy of the palette that always emits escape codes,
// regardless of whether output goes to a terminal. Used when serving a
// consumer known to interpret ANSI, such as the web terminal emulator.
func (p Palette) Forced() Palette {
	return Palette{
		Hash:    forceColor(p.Hash),
		Message: forceColor(p.Message),
		Author:  forceColor(p.Author),
		Date:    forceColor(p.Date),
	}
}

func forceColor(c *color.Color) *color.Color {
	if c == nil {
		return nil
	}
	forced := *c
	forced.EnableColor()
	return &forced
}

// paint renders s with the given color, or unchanged when no color is set.
func (p Palette) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}
