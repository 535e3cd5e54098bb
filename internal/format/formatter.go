// Package format renders structured content (strings, lists, key-value
// pairs, tabular data) into positioned, colorized, width-aware text
// blocks for terminal output. Operations return strings; callers decide
// whether and where to print them.
package format

import (
	"strings"
	"sync"
)

// Formatter is the rendering pipeline. It owns a Config and exposes the
// formatting operations that compose themes, box styles, and text metrics
// into final text blocks. All methods are safe for concurrent use: each
// operation works on a config snapshot taken under the lock, and
// mutators invalidate the glyph cache.
type Formatter struct {
	mu     sync.RWMutex
	cfg    Config
	glyphs map[glyphKey]BoxGlyphs
}

type glyphKey struct {
	style   string
	unicode bool
}

// glyphCacheLimit bounds the memoized glyph resolutions; the catalog is
// small so the bound is only hit by a stream of unrecognized style names.
const glyphCacheLimit = 16

// New creates a Formatter from Options, resolving the theme and platform
// names and applying any explicit capability overrides.
func New(opts Options) *Formatter {
	platform := NamedPlatform(opts.Platform)

	cfg := Config{
		Theme:          NamedTheme(opts.Theme),
		Platform:       platform,
		UnicodeEnabled: platform.SupportsUnicode,
		ColorsEnabled:  platform.SupportsColor,
		TerminalWidth:  platform.Columns,
	}
	if opts.Unicode != nil {
		cfg.UnicodeEnabled = *opts.Unicode
	}
	if opts.Colors != nil {
		cfg.ColorsEnabled = *opts.Colors
	}
	if opts.Width > 0 {
		cfg.TerminalWidth = opts.Width
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates a Formatter with a fully explicit configuration,
// bypassing platform detection. Mainly useful for tests and callers that
// manage capabilities themselves.
func NewWithConfig(cfg Config) *Formatter {
	return &Formatter{
		cfg:    cfg.normalized(),
		glyphs: make(map[glyphKey]BoxGlyphs),
	}
}

// Config returns a snapshot of the current configuration.
func (f *Formatter) Config() Config {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.cfg
}

func (f *Formatter) snapshot() Config {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.cfg
}

// EnableColors turns on ANSI color emission for subsequent operations.
func (f *Formatter) EnableColors() {
	f.mutate(func(c *Config) { c.ColorsEnabled = true })
}

// DisableColors turns off ANSI color emission; Colorize becomes the
// identity function.
func (f *Formatter) DisableColors() {
	f.mutate(func(c *Config) { c.ColorsEnabled = false })
}

// SetUnicode switches between unicode and ASCII glyph sets and width
// measurement.
func (f *Formatter) SetUnicode(enabled bool) {
	f.mutate(func(c *Config) { c.UnicodeEnabled = enabled })
}

// SetTheme swaps the active theme as a unit. Unknown names resolve to the
// default theme.
func (f *Formatter) SetTheme(name string) {
	f.mutate(func(c *Config) { c.Theme = NamedTheme(name) })
}

func (f *Formatter) mutate(apply func(*Config)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	apply(&f.cfg)
	// Cached glyph resolutions depend on the unicode flag.
	clear(f.glyphs)
}

// boxGlyphs resolves border glyphs through the bounded memoization cache.
func (f *Formatter) boxGlyphs(style string) BoxGlyphs {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := glyphKey{style: strings.ToLower(strings.TrimSpace(style)), unicode: f.cfg.UnicodeEnabled}
	if g, ok := f.glyphs[key]; ok {
		return g
	}

	g := ResolveBoxStyle(key.style, key.unicode)
	if len(f.glyphs) >= glyphCacheLimit {
		clear(f.glyphs)
	}
	f.glyphs[key] = g
	return g
}

// Colorize wraps text in the escape codes for color and any additional
// styles, followed by a reset. When colors are disabled the text is
// returned unchanged.
func (f *Formatter) Colorize(text string, color Color, styles ...Color) string {
	cfg := f.snapshot()
	return colorize(cfg, text, color, styles...)
}

func colorize(cfg Config, text string, color Color, styles ...Color) string {
	if !cfg.ColorsEnabled {
		return text
	}

	var b strings.Builder
	b.WriteString(color.Code())
	for _, s := range styles {
		b.WriteString(s.Code())
	}
	b.WriteString(text)
	b.WriteString(ColorReset.Code())
	return b.String()
}
