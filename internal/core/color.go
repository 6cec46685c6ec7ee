package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Semantic aliases used by the crawler renderer.
const (
	ColorPlayer = ColorBrightWhite
	ColorWall   = ColorOrange
	ColorBorder = ColorGray
	ColorHUD    = ColorCyan
	ColorFlash  = ColorYellow
)
