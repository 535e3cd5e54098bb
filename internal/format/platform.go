package format

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Platform describes the host terminal's rendering capabilities. Detection
// never fails; anything that cannot be determined degrades to the safe
// default of ASCII output, no color, and 80 columns.
type Platform struct {
	SupportsColor   bool
	SupportsUnicode bool
	Columns         int
}

// DefaultColumns is the column count assumed when the terminal size
// cannot be determined.
const DefaultColumns = 80

// DetectPlatform inspects the environment and the standard output stream
// to determine color support, unicode support, and terminal width.
func DetectPlatform() Platform {
	return Platform{
		SupportsColor:   detectColor(),
		SupportsUnicode: detectUnicode(),
		Columns:         detectColumns(),
	}
}

// NamedPlatform resolves a platform profile name. "dumb" forces ASCII and
// no color, "ansi" allows color without unicode, "full" enables both.
// "auto", an empty name, and unrecognized names all fall back to
// detection.
func NamedPlatform(name string) Platform {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dumb":
		return Platform{SupportsColor: false, SupportsUnicode: false, Columns: DefaultColumns}
	case "ansi":
		return Platform{SupportsColor: true, SupportsUnicode: false, Columns: detectColumns()}
	case "full":
		return Platform{SupportsColor: true, SupportsUnicode: true, Columns: detectColumns()}
	default:
		return DetectPlatform()
	}
}

func detectColor() bool {
	// NO_COLOR is a standard convention (https://no-color.org/) and
	// overrides capability detection.
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}

	termEnv := os.Getenv("TERM")
	if termEnv == "" || termEnv == "dumb" {
		return false
	}

	return termenv.EnvColorProfile() != termenv.Ascii
}

func detectUnicode() bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := strings.ToLower(os.Getenv(key))
		if value == "" {
			continue
		}
		return strings.Contains(value, "utf-8") || strings.Contains(value, "utf8")
	}

	// Windows Terminal and most modern emulators advertise themselves;
	// legacy conhost does not handle line-drawing glyphs reliably.
	if runtime.GOOS == "windows" {
		return os.Getenv("WT_SESSION") != "" || os.Getenv("TERM_PROGRAM") != ""
	}

	return os.Getenv("TERM_PROGRAM") != ""
}

func detectColumns() int {
	for _, file := range []*os.File{os.Stdout, os.Stderr} {
		if w, _, err := term.GetSize(int(file.Fd())); err == nil && w > 0 {
			return w
		}
	}

	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}

	return DefaultColumns
}
