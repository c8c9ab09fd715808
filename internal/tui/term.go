package tui

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// Bounds for the rendered box width.
const (
	MinWidth     = 60
	MaxWidth     = 100
	DefaultWidth = 80
)

// TerminalWidth reports the column count of the terminal behind f. It falls
// back to the COLUMNS environment variable and then to DefaultWidth.
func TerminalWidth(f *os.File) int {
	if f != nil {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}

	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}

	return DefaultWidth
}

// ClampWidth bounds w to [MinWidth, MaxWidth]. Non-positive widths mean
// "unknown" and yield DefaultWidth.
func ClampWidth(w int) int {
	switch {
	case w <= 0:
		return DefaultWidth
	case w < MinWidth:
		return MinWidth
	case w > MaxWidth:
		return MaxWidth
	default:
		return w
	}
}
