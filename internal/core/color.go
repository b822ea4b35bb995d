package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI colors for terminal display.
type Color uint8

// Predefined colors for game elements.
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
)

// palette is the display order of tile colors. Bright colors first so
// small palettes get the most distinguishable set.
var palette = []Color{
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightYellow,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
	ColorWhite,
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorGray,
}

// PaletteColor maps a tile color index to a display color.
// Indices beyond the palette wrap around, so oversized palettes still render.
func PaletteColor(index int) Color {
	if index < 0 {
		return ColorDefault
	}
	return palette[index%len(palette)]
}

// PaletteSize returns the number of distinct display colors available.
func PaletteSize() int {
	return len(palette)
}
