package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamedThemeResolvesKnownNames(t *testing.T) {
	t.Parallel()

	for _, name := range ThemeNames() {
		theme := NamedTheme(name)
		require.Equal(t, name, theme.Name)
	}
}

func TestNamedThemeFallsBackToDefault(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "neon", "solarized", "DOES-NOT-EXIST"} {
		require.Equal(t, DefaultThemeName, NamedTheme(name).Name, "name %q", name)
	}
}

func TestNamedThemeIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dark", NamedTheme("DARK").Name)
	require.Equal(t, "mono", NamedTheme("  Mono ").Name)
}

func TestEveryThemeRoleResolvesToValidColor(t *testing.T) {
	t.Parallel()

	for _, name := range ThemeNames() {
		theme := NamedTheme(name)
		for role, c := range map[string]Color{
			"primary":   theme.Primary,
			"secondary": theme.Secondary,
			"accent":    theme.Accent,
			"highlight": theme.Highlight,
			"header":    theme.Header,
			"muted":     theme.Muted,
			"text":      theme.Text,
		} {
			require.True(t, c.Valid(), "theme %s role %s", name, role)
			require.NotEmpty(t, c.Code(), "theme %s role %s", name, role)
		}
	}
}

func TestThemeColorAliasTracksPrimary(t *testing.T) {
	t.Parallel()

	theme := NamedTheme("dark")
	require.Equal(t, theme.Primary, theme.Color())
}

func TestColorCodesAreClosedEnum(t *testing.T) {
	t.Parallel()

	require.Equal(t, "\x1b[0m", ColorReset.Code())
	require.Equal(t, "\x1b[1m", ColorBold.Code())
	require.Equal(t, "\x1b[31m", ColorRed.Code())

	invalid := Color(200)
	require.False(t, invalid.Valid())
	require.Equal(t, "", invalid.Code())
	require.Equal(t, "unknown", invalid.String())
}
