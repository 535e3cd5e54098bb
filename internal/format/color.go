package format

// Color identifies a single ANSI SGR foreground or style code. The set is
// closed: every member maps to a fixed escape sequence and there is no way
// to construct additional colors.
type Color uint8

const (
	ColorReset Color = iota
	ColorBold
	ColorDim
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	colorCount
)

var ansiCodes = [...]string{
	ColorReset:         "\x1b[0m",
	ColorBold:          "\x1b[1m",
	ColorDim:           "\x1b[2m",
	ColorRed:           "\x1b[31m",
	ColorGreen:         "\x1b[32m",
	ColorYellow:        "\x1b[33m",
	ColorBlue:          "\x1b[34m",
	ColorMagenta:       "\x1b[35m",
	ColorCyan:          "\x1b[36m",
	ColorWhite:         "\x1b[37m",
	ColorBrightBlack:   "\x1b[90m",
	ColorBrightRed:     "\x1b[91m",
	ColorBrightGreen:   "\x1b[92m",
	ColorBrightYellow:  "\x1b[93m",
	ColorBrightBlue:    "\x1b[94m",
	ColorBrightMagenta: "\x1b[95m",
	ColorBrightCyan:    "\x1b[96m",
	ColorBrightWhite:   "\x1b[97m",
}

var colorNames = [...]string{
	ColorReset:         "reset",
	ColorBold:          "bold",
	ColorDim:           "dim",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightBlack:   "bright-black",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightBlue:    "bright-blue",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
}

// Valid reports whether c is a member of the enumeration.
func (c Color) Valid() bool {
	return c < colorCount
}

// Code returns the escape sequence for c, or an empty string for values
// outside the enumeration.
func (c Color) Code() string {
	if !c.Valid() {
		return ""
	}
	return ansiCodes[c]
}

// String returns the human-readable name of the color.
func (c Color) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return colorNames[c]
}
