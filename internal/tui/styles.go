package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color constants for the blue-accent theme.
var (
	ColorAccent = lipgloss.Color("69")  // blue, primary accent
	colorLabel  = lipgloss.Color("75")  // lighter blue
	colorValue  = lipgloss.Color("255") // white
	colorDim    = lipgloss.Color("242") // gray
	colorBorder = lipgloss.Color("240") // dark gray
)

// StyleKind names one of the text styles used by the box renderer.
type StyleKind int

const (
	StylePlain  StyleKind = iota
	StyleBold             // header name
	StyleDim              // pronouns, full name
	StyleLabel            // field labels ("Email:")
	StyleValue            // field values
	StyleAccent           // box title, divider labels
	StyleBorder           // box-drawing glyphs
)

// Styler applies StyleKinds to text for one output. Color support is decided
// by the renderer it wraps, so two Stylers never affect each other.
type Styler struct {
	r *lipgloss.Renderer
}

// NewStyler returns a Styler whose color profile is detected from w
// (TTY, NO_COLOR, TERM).
func NewStyler(w io.Writer) Styler {
	return Styler{r: lipgloss.NewRenderer(w)}
}

// NewStylerWithProfile returns a Styler pinned to profile p. termenv.Ascii
// disables styling entirely.
func NewStylerWithProfile(p termenv.Profile) Styler {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(p)
	return Styler{r: r}
}

// PlainStyler returns a Styler that never emits escape sequences.
func PlainStyler() Styler {
	return NewStylerWithProfile(termenv.Ascii)
}

// Colorize renders text with the style for kind.
func (s Styler) Colorize(kind StyleKind, text string) string {
	if text == "" || s.r == nil {
		return text
	}
	return s.style(kind).Render(text)
}

func (s Styler) style(kind StyleKind) lipgloss.Style {
	st := s.r.NewStyle()
	switch kind {
	case StyleBold:
		return st.Bold(true)
	case StyleDim:
		return st.Foreground(colorDim)
	case StyleLabel:
		return st.Foreground(colorLabel)
	case StyleValue:
		return st.Foreground(colorValue)
	case StyleAccent:
		return st.Foreground(ColorAccent).Bold(true)
	case StyleBorder:
		return st.Foreground(colorBorder)
	default:
		return st
	}
}
