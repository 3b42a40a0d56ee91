package render

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// MinBoxWidth is the narrowest box ever drawn, borders excluded.
const MinBoxWidth = 50

// boxMargin is the blank space kept on each side of a box line.
const boxMargin = 2

const indent = "  "

type Frame struct {
	TopLeft, TopRight, BottomLeft, BottomRight string
	SplitLeft, SplitRight                      string
	Horizontal, Vertical                       string
}

var (
	Double = Frame{"╔", "╗", "╚", "╝", "╠", "╣", "═", "║"}
	Single = Frame{"┌", "┐", "└", "┘", "├", "┤", "─", "│"}
)

// BoxWidth is the interior width of a box titled title: wide enough for the
// title plus margins, never below MinBoxWidth.
func BoxWidth(title string) int {
	return max(MinBoxWidth, runewidth.StringWidth(title)+2*boxMargin+2)
}

// Center pads s with spaces to width display columns. When the padding is
// odd the extra space goes on the right. s wider than width is returned as is.
func Center(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func Fit(s string, width int) string {
	return Center(runewidth.Truncate(s, width, ""), width)
}

// Box draws title in a framed box. Each detail line goes below a split line,
// truncated to the box's interior.
func Box(w io.Writer, f Frame, title string, details ...string) {
	width := BoxWidth(title)
	inner := width - 2*boxMargin
	bar := strings.Repeat(f.Horizontal, width)
	margin := strings.Repeat(" ", boxMargin)
	line := func(s string) {
		fmt.Fprintln(w, indent+f.Vertical+margin+Fit(s, inner)+margin+f.Vertical)
	}

	fmt.Fprintln(w, indent+f.TopLeft+bar+f.TopRight)
	line(title)
	if len(details) > 0 {
		fmt.Fprintln(w, indent+f.SplitLeft+bar+f.SplitRight)
		for _, d := range details {
			line(d)
		}
	}
	fmt.Fprintln(w, indent+f.BottomLeft+bar+f.BottomRight)
}

func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
