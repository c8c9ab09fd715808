package tui

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

// Rounded box-drawing glyphs.
const (
	cornerTopLeft     = "╭"
	cornerTopRight    = "╮"
	cornerBottomLeft  = "╰"
	cornerBottomRight = "╯"
	horizontal        = "─"
	vertical          = "│"
	teeLeft           = "├"
	teeRight          = "┤"
	ellipsis          = "…"
)

// fieldLabelWidth is the column cell field labels are padded to.
const fieldLabelWidth = 6

// flatten keeps a row on one terminal line.
var flatten = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ")

// SingleLine replaces line breaks and tabs in s with spaces. Text must be
// flattened before it is styled: the renderer pads multi-line input to its
// widest line and expands tabs.
func SingleLine(s string) string { return flatten.Replace(s) }

// Box lays out rows inside a rounded border of a fixed visible width.
// Every row it produces is exactly Width columns wide.
type Box struct {
	Width  int // total visible columns, corners included
	Margin int // extra spaces on each side of the content
	Style  Styler
}

// Row is one line of box content: either text or a labeled divider.
type Row struct {
	text    string
	divider bool
}

// TextRow returns a content row. An empty string renders as a blank row.
func TextRow(s string) Row { return Row{text: s} }

// DividerRow returns a section divider labeled with label.
func DividerRow(label string) Row { return Row{text: label, divider: true} }

// Inner returns the number of columns available to content in a row.
func (b Box) Inner() int {
	inner := b.Width - 4 - 2*b.Margin
	if inner < 0 {
		return 0
	}
	return inner
}

// Top returns the top border with label centered in it.
func (b Box) Top(label string) string {
	token := ""
	if label != "" {
		token = " " + label + " "
	}
	fill := max(b.Width-2-VisibleLength(token), 0)
	left := fill / 2
	right := fill - left

	return b.border(cornerTopLeft+strings.Repeat(horizontal, left)) +
		b.Style.Colorize(StyleAccent, token) +
		b.border(strings.Repeat(horizontal, right)+cornerTopRight)
}

// Bottom returns the bottom border.
func (b Box) Bottom() string {
	return b.border(cornerBottomLeft + strings.Repeat(horizontal, max(b.Width-2, 0)) + cornerBottomRight)
}

// Line renders text as a content row. Text wider than Inner is unstyled,
// cut and given a trailing ellipsis; anything else keeps its styling and is
// padded on the right.
func (b Box) Line(text string) string {
	inner := b.Inner()
	content := flatten.Replace(text)
	if VisibleLength(content) > inner {
		content = truncateVisible(content, inner)
	}
	pad := max(inner-VisibleLength(content), 0)
	margin := strings.Repeat(" ", max(b.Margin, 0))

	return b.border(vertical) + " " + margin + content + strings.Repeat(" ", pad) + margin + " " + b.border(vertical)
}

// Divider returns a section separator carrying the upper-cased label.
func (b Box) Divider(label string) string {
	token := ""
	if label != "" {
		token = " " + strings.ToUpper(label) + " "
	}
	fill := max(b.Width-2-VisibleLength(token), 0)

	return b.border(teeLeft) +
		b.Style.Colorize(StyleAccent, token) +
		b.border(strings.Repeat(horizontal, fill)+teeRight)
}

// Field formats a "Label: value" pair with the label padded to a fixed cell.
func (b Box) Field(label, value string) string {
	cell := runewidth.FillRight(SingleLine(label)+":", fieldLabelWidth)
	return b.Style.Colorize(StyleLabel, cell) + " " + b.Style.Colorize(StyleValue, SingleLine(value))
}

// Render draws the whole box: the labeled top border, one line per row and
// the bottom border, joined by newlines.
func (b Box) Render(label string, rows []Row) string {
	out := make([]string, 0, len(rows)+2)
	out = append(out, b.Top(label))
	for _, r := range rows {
		if r.divider {
			out = append(out, b.Divider(r.text))
			continue
		}
		out = append(out, b.Line(r.text))
	}
	out = append(out, b.Bottom())
	return strings.Join(out, "\n")
}

func (b Box) border(s string) string {
	return b.Style.Colorize(StyleBorder, s)
}
