package profile

import (
	"regexp"
	"strings"

	"github.com/fsmiamoto/profilebox/internal/tui"
)

const (
	boxTitle      = "Profile"
	contentMargin = 1
)

var (
	quoteMarker  = regexp.MustCompile(`(?m)^> `)
	indentedLine = regexp.MustCompile(`\n\s+`)
)

// CleanAbout strips the markdown leftovers found in about/bio texts: bold
// markers, block-quote markers and indentation after line breaks.
func CleanAbout(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = quoteMarker.ReplaceAllString(s, "")
	s = indentedLine.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// Header returns the bold name followed by the dimmed pronouns, if any.
func Header(p Profile, st tui.Styler) string {
	header := st.Colorize(tui.StyleBold, tui.SingleLine(p.Name()))
	if pronouns := strings.TrimSpace(p.Pronouns); pronouns != "" {
		header += " " + st.Colorize(tui.StyleDim, "("+tui.SingleLine(pronouns)+")")
	}
	return strings.TrimSpace(header)
}

// Rows lays p out as rows for b: header, full name, then the details,
// contact and about sections. Sections with nothing to show are left out
// together with their divider.
func Rows(p Profile, b tui.Box) []tui.Row {
	st := b.Style
	rows := []tui.Row{tui.TextRow(Header(p, st))}

	if name := p.FullName(); name != "" {
		rows = append(rows, tui.TextRow(st.Colorize(tui.StyleDim, tui.SingleLine(name))))
	}

	rows = appendSection(rows, "details",
		field(b, "Role", p.JobTitle),
		field(b, "Zone", p.TimeZone),
	)
	rows = appendSection(rows, "contact",
		field(b, "Email", p.Email),
		field(b, "Web", p.Website),
	)

	if about := CleanAbout(p.AboutText()); about != "" {
		rows = appendSection(rows, "about", tui.Wrap(about, b.Inner()-2, 2)...)
	}

	return rows
}

// Render draws p as a box of the given width, clamped to the supported range.
func Render(p Profile, width int, st tui.Styler) string {
	b := tui.Box{Width: tui.ClampWidth(width), Margin: contentMargin, Style: st}
	return b.Render(boxTitle, Rows(p, b))
}

func field(b tui.Box, label, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return b.Field(label, value)
}

func appendSection(rows []tui.Row, label string, lines ...string) []tui.Row {
	var present []tui.Row
	for _, l := range lines {
		if l != "" {
			present = append(present, tui.TextRow(l))
		}
	}
	if len(present) == 0 {
		return rows
	}
	rows = append(rows, tui.DividerRow(label))
	return append(rows, present...)
}
