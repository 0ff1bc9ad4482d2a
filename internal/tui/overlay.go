package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay draws fg over base with its top-left corner at column x, row y.
// Both may contain ANSI sequences. Parts of fg falling outside base are
// dropped.
func Overlay(base, fg string, x, y int) string {
	if fg == "" {
		return base
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(base, "\n")
	for i, fgLine := range strings.Split(fg, "\n") {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		baseLines[row] = spliceLine(baseLines[row], fgLine, x)
	}
	return strings.Join(baseLines, "\n")
}

func spliceLine(base, fg string, x int) string {
	width := ansi.StringWidth(fg)
	baseWidth := ansi.StringWidth(base)

	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}

	right := ""
	if baseWidth > x+width {
		right = ansi.TruncateLeft(base, x+width, "")
	}

	return left + "\x1b[0m" + fg + "\x1b[0m" + right
}
