package format

import "strings"

// BoxGlyphs is the character set used to draw one box border style:
// four corners plus the horizontal and vertical edge characters.
type BoxGlyphs struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var asciiBox = BoxGlyphs{
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
	Horizontal:  "-",
	Vertical:    "|",
}

var boxStyles = map[string]BoxGlyphs{
	"single": {
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
		Horizontal:  "─",
		Vertical:    "│",
	},
	"double": {
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
		Horizontal:  "═",
		Vertical:    "║",
	},
	"rounded": {
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
		Horizontal:  "─",
		Vertical:    "│",
	},
	"ascii": asciiBox,
}

// ResolveBoxStyle returns the glyph set for the named border style. The
// ASCII set is returned whenever unicode is unavailable, the name is
// "ascii", or the name is unrecognized.
func ResolveBoxStyle(name string, unicode bool) BoxGlyphs {
	if !unicode {
		return asciiBox
	}
	if g, ok := boxStyles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return g
	}
	return asciiBox
}

// tableGlyphs is the character set for table borders, including the tee
// and cross junctions that boxes do not need.
type tableGlyphs struct {
	TopLeft     string
	TopMid      string
	TopRight    string
	MidLeft     string
	MidMid      string
	MidRight    string
	BottomLeft  string
	BottomMid   string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var asciiTable = tableGlyphs{
	TopLeft: "+", TopMid: "+", TopRight: "+",
	MidLeft: "+", MidMid: "+", MidRight: "+",
	BottomLeft: "+", BottomMid: "+", BottomRight: "+",
	Horizontal: "-", Vertical: "|",
}

var gridTable = tableGlyphs{
	TopLeft: "┌", TopMid: "┬", TopRight: "┐",
	MidLeft: "├", MidMid: "┼", MidRight: "┤",
	BottomLeft: "└", BottomMid: "┴", BottomRight: "┘",
	Horizontal: "─", Vertical: "│",
}

// resolveTableStyle returns unicode line-drawing glyphs only for the
// "grid" style with unicode enabled; every other combination falls back
// to plain ASCII.
func resolveTableStyle(name string, unicode bool) tableGlyphs {
	if unicode && strings.ToLower(strings.TrimSpace(name)) == "grid" {
		return gridTable
	}
	return asciiTable
}
