// Package logging writes tagged diagnostic lines to stderr.
//
// Debug output is only produced when the logger has Debug set (the CLI turns
// it on with PROFILEBOX_DEBUG). Errors are always printed with a red "Error:"
// tag. Whether tags are colored is decided for the writer the logger prints
// to: NO_COLOR and anything that is not a terminal get plain tags.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode selects when tags are colored.
type ColorMode int

const (
	ColorAuto ColorMode = iota // color only when Out is a terminal
	ColorAlways
	ColorNever
)

var (
	debugAttrs = []color.Attribute{color.FgCyan}
	errorAttrs = []color.Attribute{color.FgRed, color.Bold}
)

// Logger is usable as its zero value, which writes to os.Stderr with debug
// output off.
type Logger struct {
	Out   io.Writer
	Debug bool
	Color ColorMode
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		l.printf(debugAttrs, "[debug]", msg, args...)
	}
}

// Errorf prints "Error: <message>".
func (l Logger) Errorf(msg string, args ...any) {
	l.printf(errorAttrs, "Error:", msg, args...)
}

func (l Logger) printf(attrs []color.Attribute, tag, msg string, args ...any) {
	out := l.Out
	if out == nil {
		out = os.Stderr
	}
	c := color.New(attrs...)
	if l.colored(out) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	fmt.Fprintf(out, "%s %s\n", c.Sprint(tag), fmt.Sprintf(msg, args...))
}

func (l Logger) colored(out io.Writer) bool {
	switch l.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
