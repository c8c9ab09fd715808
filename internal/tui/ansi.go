package tui

import "github.com/charmbracelet/x/ansi"

// StripANSI removes terminal escape sequences (colors, bold, dim) from s.
// The result is only used for measuring and truncating; printed output keeps
// its styling.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleLength returns the number of terminal columns s occupies, ignoring
// escape sequences.
func VisibleLength(s string) int {
	return ansi.StringWidth(s)
}

// truncateVisible cuts the unstyled text of s so that, together with the
// trailing ellipsis, it fits in width columns. Styling is dropped.
func truncateVisible(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(StripANSI(s), width, ellipsis)
}
