package core

// Color is the foreground color of a screen cell. The zero value is the
// terminal default and doubles as "empty" in color grids.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

var colorInfo = [colorCount]struct {
	name string
	ansi string
}{
	ColorDefault:       {"default", ""},
	ColorRed:           {"red", "1"},
	ColorGreen:         {"green", "2"},
	ColorYellow:        {"yellow", "3"},
	ColorBlue:          {"blue", "4"},
	ColorMagenta:       {"magenta", "5"},
	ColorCyan:          {"cyan", "6"},
	ColorWhite:         {"white", "7"},
	ColorBrightRed:     {"bright-red", "9"},
	ColorBrightGreen:   {"bright-green", "10"},
	ColorBrightYellow:  {"bright-yellow", "11"},
	ColorBrightBlue:    {"bright-blue", "12"},
	ColorBrightMagenta: {"bright-magenta", "13"},
	ColorBrightCyan:    {"bright-cyan", "14"},
	ColorBrightWhite:   {"bright-white", "15"},
	ColorOrange:        {"orange", "208"},
	ColorGray:          {"gray", "245"},
}

// Colors returns every named color except ColorDefault.
func Colors() []Color {
	out := make([]Color, 0, colorCount-1)
	for c := ColorDefault + 1; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}

// ANSI returns the 256-color code of c, or "" for the terminal default
// and unknown values.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return colorInfo[c].ansi
}

// IsEmpty reports whether c is the default color.
func (c Color) IsEmpty() bool { return c == ColorDefault }

func (c Color) String() string {
	if c >= colorCount {
		return "unknown"
	}
	return colorInfo[c].name
}
