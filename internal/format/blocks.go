package format

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// KeyValue is one labeled entry of a key-value block.
type KeyValue struct {
	Key   string
	Value string
}

// KeyValues renders an aligned block of labeled values. Keys are muted
// and padded to a common width so the values line up in one column.
func (f *Formatter) KeyValues(pairs []KeyValue) string {
	cfg := f.snapshot()

	keyWidth := 0
	for _, p := range pairs {
		if w := utf8.RuneCountInString(p.Key); w > keyWidth {
			keyWidth = w
		}
	}

	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		label := padWidth(p.Key+":", keyWidth+1, AlignLeft, utf8.RuneCountInString)
		lines = append(lines, colorize(cfg, label, cfg.Theme.Muted)+" "+p.Value)
	}

	return strings.Join(lines, "\n")
}

// List renders items as a bulleted list, using a unicode bullet with an
// ASCII dash fallback.
func (f *Formatter) List(items []string) string {
	cfg := f.snapshot()

	bullet := "-"
	if cfg.UnicodeEnabled {
		bullet = "•"
	}
	bullet = colorize(cfg, bullet, cfg.Theme.Accent)

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "  "+bullet+" "+item)
	}

	return strings.Join(lines, "\n")
}

type progressOptions struct {
	width int
	label string
}

// ProgressOption customizes ProgressBar output.
type ProgressOption func(*progressOptions)

// WithBarWidth sets the bar's character width, excluding brackets and the
// percentage suffix.
func WithBarWidth(width int) ProgressOption {
	return func(o *progressOptions) { o.width = width }
}

// WithLabel prefixes the bar with a label.
func WithLabel(label string) ProgressOption {
	return func(o *progressOptions) { o.label = label }
}

// defaultBarWidth is the bar width used when none is requested.
const defaultBarWidth = 30

// ProgressBar renders a filled/empty bar followed by a percentage. A
// non-positive total renders as 0% rather than dividing; a negative
// current clamps to 0% and current beyond total clamps to 100%.
func (f *Formatter) ProgressBar(current, total int, opts ...ProgressOption) string {
	o := progressOptions{width: defaultBarWidth}
	for _, opt := range opts {
		opt(&o)
	}
	if o.width < 1 {
		o.width = 1
	}

	cfg := f.snapshot()

	ratio := 0.0
	if total > 0 {
		ratio = float64(current) / float64(total)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filledGlyph, emptyGlyph := "#", "-"
	if cfg.UnicodeEnabled {
		filledGlyph, emptyGlyph = "█", "░"
	}

	filled := int(math.Round(ratio * float64(o.width)))
	bar := colorize(cfg, strings.Repeat(filledGlyph, filled), cfg.Theme.Accent) +
		colorize(cfg, strings.Repeat(emptyGlyph, o.width-filled), cfg.Theme.Muted)

	out := fmt.Sprintf("[%s] %.1f%%", bar, ratio*100)
	if o.label != "" {
		out = o.label + " " + out
	}
	return out
}
