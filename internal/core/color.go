package core

// Color represents a foreground color for a screen cell.
// Terminal hosts map each value to an ANSI color.
type Color uint8

// Palette of the terminal host.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
)
