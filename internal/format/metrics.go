package format

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Align selects the side padding is applied to when fitting text into a
// fixed column width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// DisplayWidth returns the number of terminal columns s occupies. ANSI
// escape sequences contribute zero width; wide characters (CJK, emoji)
// count as two columns.
func DisplayWidth(s string) int {
	return ansi.StringWidth(s)
}

// StripANSI removes all escape sequences from s, leaving the raw content.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// asciiWidth measures s by rune count of its stripped content, the
// fallback used when unicode support is disabled and wide-glyph widths
// cannot be trusted.
func asciiWidth(s string) int {
	return utf8.RuneCountInString(ansi.Strip(s))
}

// Pad pads text with spaces to exactly width columns. Measurement uses
// display width rather than character count, so pre-colorized text still
// aligns visually. Text already wider than width is returned unmodified;
// truncation is the caller's responsibility.
func Pad(text string, width int, align Align) string {
	return padWidth(text, width, align, DisplayWidth)
}

func padWidth(text string, width int, align Align, widthOf func(string) int) string {
	current := widthOf(text)
	if current >= width {
		return text
	}

	total := width - current
	switch align {
	case AlignRight:
		return strings.Repeat(" ", total) + text
	case AlignCenter:
		left := total / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", total-left)
	default:
		return text + strings.Repeat(" ", total)
	}
}

// TruncateEllipsis is appended when Truncate shortens a string.
const TruncateEllipsis = "…"

// Truncate shortens plain (unstyled) text to at most maxWidth columns,
// appending an ellipsis when content is dropped. The ellipsis counts
// toward maxWidth.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	available := maxWidth - runewidth.StringWidth(TruncateEllipsis)
	if available < 0 {
		return TruncateEllipsis
	}

	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > available {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + TruncateEllipsis
}
