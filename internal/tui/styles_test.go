package tui

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestColorizePlainProfile(t *testing.T) {
	st := PlainStyler()
	for _, kind := range []StyleKind{StylePlain, StyleBold, StyleDim, StyleLabel, StyleValue, StyleAccent, StyleBorder} {
		if got := st.Colorize(kind, "text"); got != "text" {
			t.Errorf("Colorize(%d) = %q, want plain text", kind, got)
		}
	}
}

func TestColorizeColorProfile(t *testing.T) {
	st := NewStylerWithProfile(termenv.ANSI256)
	got := st.Colorize(StyleLabel, "Email:")
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("Colorize() = %q, want escape codes", got)
	}
	if StripANSI(got) != "Email:" {
		t.Fatalf("StripANSI(Colorize()) = %q, want %q", StripANSI(got), "Email:")
	}
}

func TestColorizeEmpty(t *testing.T) {
	st := NewStylerWithProfile(termenv.ANSI256)
	if got := st.Colorize(StyleBold, ""); got != "" {
		t.Fatalf("Colorize(\"\") = %q, want empty", got)
	}
}

func TestStylersAreIndependent(t *testing.T) {
	colored := NewStylerWithProfile(termenv.ANSI256)
	plain := PlainStyler()

	_ = colored.Colorize(StyleBold, "x")
	if got := plain.Colorize(StyleBold, "x"); got != "x" {
		t.Fatalf("plain styler emitted %q", got)
	}
	if got := colored.Colorize(StyleBold, "x"); got == "x" {
		t.Fatal("colored styler emitted no styling")
	}
}
