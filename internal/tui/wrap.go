// Package tui renders profilebox output for the terminal.
// wrap.go contains utilities for soft-wrapping text to a given width.
package tui

import "strings"

// WrapLine greedily packs the words of a single paragraph into lines of at
// most width visible columns. A word wider than width is never broken: it is
// emitted alone on its own line and may overflow.
func WrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var result []string
	cur := ""
	curW := 0

	for _, word := range words {
		ww := VisibleLength(word)

		if cur == "" {
			cur = word
			curW = ww
			continue
		}

		// One separator space between words.
		if curW+1+ww > width {
			result = append(result, cur)
			cur = word
			curW = ww
			continue
		}
		cur += " " + word
		curW += 1 + ww
	}

	// Flush remaining content.
	if cur != "" {
		result = append(result, cur)
	}

	return result
}

// Wrap splits text into paragraphs on newlines, trims them, drops the empty
// ones and wraps each to width columns with WrapLine. Every produced line is
// prefixed with indent spaces. Paragraphs are never reflowed into each other.
func Wrap(text string, width, indent int) []string {
	if text == "" {
		return nil
	}

	prefix := ""
	if indent > 0 {
		prefix = strings.Repeat(" ", indent)
	}

	var out []string
	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		for _, l := range WrapLine(para, width) {
			out = append(out, prefix+l)
		}
	}
	return out
}

// WrapText is Wrap without indentation, joined back with newlines.
func WrapText(text string, width int) string {
	return strings.Join(Wrap(text, width, 0), "\n")
}
