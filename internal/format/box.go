package format

import (
	"strings"
)

type boxOptions struct {
	title       string
	style       string
	padding     int
	width       int
	borderColor Color
	hasColor    bool
}

// BoxOption customizes Box output.
type BoxOption func(*boxOptions)

// WithTitle embeds a title in the top border, centered between the
// border-fill characters.
func WithTitle(title string) BoxOption {
	return func(o *boxOptions) { o.title = title }
}

// WithBoxStyle selects a border style from the catalog (single, double,
// rounded, ascii).
func WithBoxStyle(style string) BoxOption {
	return func(o *boxOptions) { o.style = style }
}

// WithPadding sets the number of blank columns and rows between the
// border and the content. Negative values are treated as zero.
func WithPadding(padding int) BoxOption {
	return func(o *boxOptions) { o.padding = padding }
}

// WithWidth fixes the box's total width instead of sizing it to the
// widest content line.
func WithWidth(width int) BoxOption {
	return func(o *boxOptions) { o.width = width }
}

// WithBorderColor overrides the theme's primary color for the border.
func WithBorderColor(c Color) BoxOption {
	return func(o *boxOptions) { o.borderColor = c; o.hasColor = true }
}

// Box lays out content inside a border, splitting it on line breaks.
func (f *Formatter) Box(content string, opts ...BoxOption) string {
	return f.BoxLines(strings.Split(content, "\n"), opts...)
}

// BoxLines lays out pre-split lines inside a border. Content is measured
// by display width so pre-colorized lines align correctly. Lines wider
// than the computed inner width are neither wrapped nor truncated; the
// box overflows and the caller is responsible for fitting content.
func (f *Formatter) BoxLines(lines []string, opts ...BoxOption) string {
	o := boxOptions{style: "single", padding: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.padding < 0 {
		o.padding = 0
	}

	cfg := f.snapshot()
	glyphs := f.boxGlyphs(o.style)
	widthOf := cfg.widthOf()

	borderColor := cfg.Theme.Primary
	if o.hasColor {
		borderColor = o.borderColor
	}

	maxContent := 0
	for _, line := range lines {
		if w := widthOf(line); w > maxContent {
			maxContent = w
		}
	}

	total := o.width
	if total <= 0 {
		total = maxContent + 2*o.padding + 2
		if limit := cfg.TerminalWidth - 2; total > limit {
			total = limit
		}
	}
	if total < 2+2*o.padding {
		total = 2 + 2*o.padding
	}

	inner := total - 2
	contentWidth := inner - 2*o.padding
	pad := strings.Repeat(" ", o.padding)
	edge := colorize(cfg, glyphs.Vertical, borderColor)

	out := make([]string, 0, len(lines)+2+2*o.padding)
	out = append(out, colorize(cfg, topBorder(glyphs, o.title, inner, widthOf), borderColor))

	blank := edge + strings.Repeat(" ", inner) + edge
	for i := 0; i < o.padding; i++ {
		out = append(out, blank)
	}

	for _, line := range lines {
		filled := line
		if gap := contentWidth - widthOf(line); gap > 0 {
			filled += strings.Repeat(" ", gap)
		}
		out = append(out, edge+pad+filled+pad+edge)
	}

	for i := 0; i < o.padding; i++ {
		out = append(out, blank)
	}

	bottom := glyphs.BottomLeft + strings.Repeat(glyphs.Horizontal, inner) + glyphs.BottomRight
	out = append(out, colorize(cfg, bottom, borderColor))

	return strings.Join(out, "\n")
}

// topBorder builds the top border line, centering the title between
// border-fill characters when one is given. With an odd fill count the
// extra character goes to the right.
func topBorder(glyphs BoxGlyphs, title string, inner int, widthOf func(string) int) string {
	if title == "" {
		return glyphs.TopLeft + strings.Repeat(glyphs.Horizontal, inner) + glyphs.TopRight
	}

	label := " " + title + " "
	fill := inner - widthOf(label)
	if fill < 0 {
		fill = 0
	}
	left := fill / 2
	right := fill - left

	return glyphs.TopLeft +
		strings.Repeat(glyphs.Horizontal, left) +
		label +
		strings.Repeat(glyphs.Horizontal, right) +
		glyphs.TopRight
}
