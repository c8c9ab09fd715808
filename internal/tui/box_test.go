package tui

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func plainBox(width int) Box {
	return Box{Width: width, Margin: 1, Style: PlainStyler()}
}

func TestBoxBorders(t *testing.T) {
	b := plainBox(20)

	if got, want := b.Top("Profile"), "╭──── Profile ─────╮"; got != want {
		t.Errorf("Top() = %q, want %q", got, want)
	}
	if got, want := b.Top(""), "╭"+strings.Repeat("─", 18)+"╮"; got != want {
		t.Errorf("Top(\"\") = %q, want %q", got, want)
	}
	if got, want := b.Bottom(), "╰"+strings.Repeat("─", 18)+"╯"; got != want {
		t.Errorf("Bottom() = %q, want %q", got, want)
	}
	if got, want := b.Divider("details"), "├ DETAILS "+strings.Repeat("─", 9)+"┤"; got != want {
		t.Errorf("Divider() = %q, want %q", got, want)
	}
}

func TestBoxLinePadsShortText(t *testing.T) {
	b := plainBox(20)
	got := b.Line("hello")
	want := "│  hello" + strings.Repeat(" ", 9) + "  │"
	if got != want {
		t.Fatalf("Line() = %q, want %q", got, want)
	}
}

func TestBoxLineEmpty(t *testing.T) {
	b := plainBox(20)
	want := "│" + strings.Repeat(" ", 18) + "│"
	if got := b.Line(""); got != want {
		t.Fatalf("Line(\"\") = %q, want %q", got, want)
	}
}

func TestBoxLineTruncates(t *testing.T) {
	b := plainBox(20)
	got := b.Line("abcdefghijklmnopqrstuvwxyz")
	want := "│  abcdefghijklm…  │"
	if got != want {
		t.Fatalf("Line() = %q, want %q", got, want)
	}
}

func TestBoxLineTruncationDropsStyling(t *testing.T) {
	st := NewStylerWithProfile(termenv.ANSI256)
	b := Box{Width: 20, Margin: 1, Style: PlainStyler()}
	got := b.Line(st.Colorize(StyleBold, "abcdefghijklmnopqrstuvwxyz"))
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("truncated line kept escape codes: %q", got)
	}
}

func TestBoxLineKeepsStyling(t *testing.T) {
	st := NewStylerWithProfile(termenv.ANSI256)
	b := Box{Width: 30, Margin: 1, Style: st}
	styled := st.Colorize(StyleBold, "Ada")
	got := b.Line(styled)
	if !strings.Contains(got, styled) {
		t.Fatalf("Line() = %q, want it to contain %q", got, styled)
	}
	if n := VisibleLength(got); n != 30 {
		t.Fatalf("VisibleLength(Line()) = %d, want 30", n)
	}
}

func TestBoxLineAlwaysFullWidth(t *testing.T) {
	st := NewStylerWithProfile(termenv.ANSI256)
	inputs := []string{
		"",
		"x",
		"exactly fitting text",
		strings.Repeat("w", 200),
		st.Colorize(StyleLabel, "Email:") + " " + st.Colorize(StyleValue, "someone@example.com"),
		st.Colorize(StyleValue, strings.Repeat("long styled ", 20)),
		"multi\nline\ttext",
	}
	for _, width := range []int{60, 73, 100} {
		for _, margin := range []int{0, 1, 2} {
			b := Box{Width: width, Margin: margin, Style: st}
			for _, in := range inputs {
				if n := VisibleLength(b.Line(in)); n != width {
					t.Errorf("width=%d margin=%d input=%q: got %d columns", width, margin, in, n)
				}
			}
			for _, row := range []string{b.Top("Profile"), b.Bottom(), b.Divider("contact")} {
				if n := VisibleLength(row); n != width {
					t.Errorf("width=%d: border %q has %d columns", width, row, n)
				}
			}
		}
	}
}

func TestBoxField(t *testing.T) {
	b := plainBox(60)
	if got, want := b.Field("Email", "a@x.com"), "Email: a@x.com"; got != want {
		t.Errorf("Field() = %q, want %q", got, want)
	}
	if got, want := b.Field("Role", "Engineer"), "Role:  Engineer"; got != want {
		t.Errorf("Field() = %q, want %q", got, want)
	}
}

func TestBoxFieldFlattensValue(t *testing.T) {
	b := Box{Width: 60, Margin: 1, Style: NewStylerWithProfile(termenv.ANSI256)}
	cases := []struct {
		value, want string
	}{
		{value: "a\tb", want: "Role:  a b"},
		{value: "Senior\nEngineer", want: "Role:  Senior Engineer"},
		{value: "x\r\ny", want: "Role:  x y"},
	}
	for _, tc := range cases {
		if got := StripANSI(b.Field("Role", tc.value)); got != tc.want {
			t.Errorf("Field(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestSingleLine(t *testing.T) {
	if got, want := SingleLine("Ada\nLovelace\tthe\r\nfirst"), "Ada Lovelace the first"; got != want {
		t.Errorf("SingleLine() = %q, want %q", got, want)
	}
}

func TestBoxRender(t *testing.T) {
	b := plainBox(20)
	out := b.Render("Profile", []Row{TextRow("hi"), DividerRow("about"), TextRow("there")})
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "╭") || !strings.HasPrefix(lines[4], "╰") {
		t.Errorf("unexpected borders:\n%s", out)
	}
	if !strings.HasPrefix(lines[2], "├ ABOUT ") {
		t.Errorf("line 2 = %q, want ABOUT divider", lines[2])
	}
	for i, l := range lines {
		if n := VisibleLength(l); n != 20 {
			t.Errorf("line %d %q has %d columns", i, l, n)
		}
	}
}
