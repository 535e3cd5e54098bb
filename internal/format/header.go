package format

import (
	"strings"
	"unicode/utf8"
)

// HeaderStyleBanner renders a level-1 header as a full-width banded block
// instead of the default underlined title.
const HeaderStyleBanner = "banner"

// bannerWidth caps banner bands so they stay readable on very wide
// terminals.
const bannerWidth = 80

type headerOptions struct {
	subtitle string
	level    int
	style    string
}

// HeaderOption customizes Header output.
type HeaderOption func(*headerOptions)

// WithSubtitle adds a secondary line under the title.
func WithSubtitle(subtitle string) HeaderOption {
	return func(o *headerOptions) { o.subtitle = subtitle }
}

// WithLevel sets the header level; levels below 1 are treated as 1.
func WithLevel(level int) HeaderOption {
	return func(o *headerOptions) { o.level = level }
}

// WithHeaderStyle selects a named header style for level-1 headers.
func WithHeaderStyle(style string) HeaderOption {
	return func(o *headerOptions) { o.style = style }
}

// Header produces a titled block. Level 1 renders an uppercase bold title
// with a "=" underline (or a centered banner band with the banner style),
// level 2 a plain-case title with a "-" underline and muted subtitle, and
// deeper levels a single "> title" line with an indented subtitle.
//
// Underlines are sized to the title's raw character count, never to its
// colorized escape length.
func (f *Formatter) Header(title string, opts ...HeaderOption) string {
	o := headerOptions{level: 1, style: "default"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.level < 1 {
		o.level = 1
	}

	cfg := f.snapshot()

	switch {
	case o.level == 1 && strings.EqualFold(o.style, HeaderStyleBanner):
		return bannerHeader(cfg, title, o.subtitle)
	case o.level == 1:
		return underlinedHeader(cfg, title, o.subtitle, "=", true)
	case o.level == 2:
		return underlinedHeader(cfg, title, o.subtitle, "-", false)
	default:
		return inlineHeader(cfg, title, o.subtitle)
	}
}

func bannerHeader(cfg Config, title, subtitle string) string {
	width := min(bannerWidth, cfg.TerminalWidth)
	rule := strings.Repeat("=", width)

	lines := []string{
		colorize(cfg, rule, cfg.Theme.Primary),
		Pad(colorize(cfg, strings.ToUpper(title), cfg.Theme.Header, ColorBold), width, AlignCenter),
	}
	if subtitle != "" {
		lines = append(lines, Pad(colorize(cfg, subtitle, cfg.Theme.Muted), width, AlignCenter))
	}
	lines = append(lines, colorize(cfg, rule, cfg.Theme.Primary))

	return strings.Join(lines, "\n")
}

func underlinedHeader(cfg Config, title, subtitle, rule string, upper bool) string {
	display := title
	if upper {
		display = strings.ToUpper(title)
	}

	lines := []string{
		colorize(cfg, display, cfg.Theme.Header, ColorBold),
		strings.Repeat(rule, utf8.RuneCountInString(StripANSI(title))),
	}
	if subtitle != "" {
		lines = append(lines, colorize(cfg, subtitle, cfg.Theme.Muted))
	}

	return strings.Join(lines, "\n")
}

func inlineHeader(cfg Config, title, subtitle string) string {
	line := colorize(cfg, ">", cfg.Theme.Accent) + " " + colorize(cfg, title, cfg.Theme.Header, ColorBold)
	if subtitle == "" {
		return line
	}
	return line + "\n  " + colorize(cfg, subtitle, cfg.Theme.Muted)
}
