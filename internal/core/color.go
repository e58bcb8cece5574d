package core

// Color is the foreground colour of a screen cell.
// Values are mapped to ANSI 256-colour styles by the platform layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorPink
	ColorOrange
	ColorGray
)
