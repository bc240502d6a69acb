package core

// Color represents a foreground color for a screen cell. The palette is
// a small fixed set mapped to ANSI 256-color codes by the renderer.
type Color uint8

// Predefined colors for maze elements, agents and HUD text.
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
