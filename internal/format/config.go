package format

// Config is the complete rendering configuration a Formatter operates
// under. Every formatting operation is a pure function of its arguments
// and a snapshot of this value.
type Config struct {
	Theme          Theme
	Platform       Platform
	UnicodeEnabled bool
	ColorsEnabled  bool
	TerminalWidth  int
}

// normalized enforces the TerminalWidth > 0 invariant all layout
// computations rely on.
func (c Config) normalized() Config {
	if c.TerminalWidth <= 0 {
		c.TerminalWidth = DefaultColumns
	}
	if c.Theme.Name == "" {
		c.Theme = NamedTheme(DefaultThemeName)
	}
	return c
}

// widthOf returns the width measurement function matching the unicode
// setting: grapheme-aware display width when enabled, rune count of the
// stripped string otherwise.
func (c Config) widthOf() func(string) int {
	if c.UnicodeEnabled {
		return DisplayWidth
	}
	return asciiWidth
}

// Options configures the New factory. Zero values mean "follow the
// platform": unknown theme and platform names resolve to documented
// defaults, nil Unicode/Colors inherit the detected capability, and a
// zero Width uses the detected column count.
type Options struct {
	Theme    string
	Platform string
	Unicode  *bool
	Colors   *bool
	Width    int
}
