package format

import (
	"sort"
	"strings"
)

// Theme maps semantic roles to concrete colors so output can be restyled
// without touching layout logic. Themes are immutable values; swapping one
// replaces all roles at once.
type Theme struct {
	Name      string
	Primary   Color
	Secondary Color
	Accent    Color
	Highlight Color
	Header    Color
	Muted     Color
	Text      Color
}

// Color is a compatibility accessor for callers that predate role-based
// themes; it resolves to the primary role.
func (t Theme) Color() Color {
	return t.Primary
}

// DefaultThemeName is the theme used when a requested name is unknown.
const DefaultThemeName = "default"

var themes = map[string]Theme{
	"default": {
		Name:      "default",
		Primary:   ColorCyan,
		Secondary: ColorBlue,
		Accent:    ColorMagenta,
		Highlight: ColorYellow,
		Header:    ColorBrightCyan,
		Muted:     ColorBrightBlack,
		Text:      ColorWhite,
	},
	"dark": {
		Name:      "dark",
		Primary:   ColorBrightBlue,
		Secondary: ColorCyan,
		Accent:    ColorBrightMagenta,
		Highlight: ColorBrightYellow,
		Header:    ColorBrightWhite,
		Muted:     ColorBrightBlack,
		Text:      ColorBrightWhite,
	},
	"light": {
		Name:      "light",
		Primary:   ColorBlue,
		Secondary: ColorMagenta,
		Accent:    ColorRed,
		Highlight: ColorYellow,
		Header:    ColorBlue,
		Muted:     ColorWhite,
		Text:      ColorBrightBlack,
	},
	"mono": {
		Name:      "mono",
		Primary:   ColorWhite,
		Secondary: ColorWhite,
		Accent:    ColorBrightWhite,
		Highlight: ColorBrightWhite,
		Header:    ColorBrightWhite,
		Muted:     ColorBrightBlack,
		Text:      ColorWhite,
	},
}

// NamedTheme resolves a theme name, case-insensitively, to its role
// mapping. Unknown names resolve to the default theme rather than failing.
func NamedTheme(name string) Theme {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return themes[DefaultThemeName]
}

// ThemeNames returns the available theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
