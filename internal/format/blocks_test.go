package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyValuesAlignsValues(t *testing.T) {
	t.Parallel()

	f := testFormatter()

	block := f.KeyValues([]KeyValue{
		{Key: "ID", Value: "intro-to-go"},
		{Key: "Importance", Value: "4"},
	})
	lines := strings.Split(block, "\n")
	require.Equal(t, "ID:         intro-to-go", lines[0])
	require.Equal(t, "Importance: 4", lines[1])
}

func TestKeyValuesMutedKeysWhenColorized(t *testing.T) {
	t.Parallel()

	f := testFormatter()
	f.EnableColors()

	block := f.KeyValues([]KeyValue{{Key: "Kind", Value: "lesson"}})
	require.Contains(t, block, f.Config().Theme.Muted.Code())
	require.Contains(t, block, "lesson")
}

func TestListBulletsFollowUnicodeSetting(t *testing.T) {
	t.Parallel()

	f := testFormatter()

	block := f.List([]string{"first", "second"})
	lines := strings.Split(block, "\n")
	require.Equal(t, "  • first", lines[0])
	require.Equal(t, "  • second", lines[1])

	f.SetUnicode(false)
	block = f.List([]string{"first"})
	require.Equal(t, "  - first", block)
}

func TestProgressBarZeroTotalIsZeroPercent(t *testing.T) {
	t.Parallel()

	f := testFormatter()

	bar := f.ProgressBar(0, 0)
	require.Contains(t, bar, "0.0%")
	require.NotContains(t, bar, "█")
}

func TestProgressBarFullIsHundredPercent(t *testing.T) {
	t.Parallel()

	f := testFormatter()

	bar := f.ProgressBar(5, 5)
	require.Contains(t, bar, "100.0%")
	require.Contains(t, bar, strings.Repeat("█", defaultBarWidth))
}

func TestProgressBarClampsOutOfRangeInput(t *testing.T) {
	t.Parallel()

	f := testFormatter()

	require.Contains(t, f.ProgressBar(-3, 10), "0.0%")
	require.Contains(t, f.ProgressBar(20, 10), "100.0%")
	require.Contains(t, f.ProgressBar(1, -1), "0.0%")
}

func TestProgressBarHalf(t *testing.T) {
	t.Parallel()

	f := testFormatter()

	bar := f.ProgressBar(1, 2, WithBarWidth(10))
	require.Contains(t, bar, "50.0%")
	require.Contains(t, bar, strings.Repeat("█", 5)+strings.Repeat("░", 5))
}

func TestProgressBarAsciiGlyphs(t *testing.T) {
	t.Parallel()

	f := testFormatter()
	f.SetUnicode(false)

	bar := f.ProgressBar(1, 2, WithBarWidth(4))
	require.Contains(t, bar, "##--")
	require.NotContains(t, bar, "█")
}

func TestProgressBarLabel(t *testing.T) {
	t.Parallel()

	f := testFormatter()

	bar := f.ProgressBar(3, 4, WithLabel("Lessons"))
	require.True(t, strings.HasPrefix(bar, "Lessons ["))
	require.Contains(t, bar, "75.0%")
}
