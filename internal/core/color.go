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
	ColorWhite
	ColorBrightWhite
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// ParseColor maps a color name (as used in sprite and config files) to a Color.
// Unknown names return ColorDefault and false.
func ParseColor(name string) (Color, bool) {
	switch name {
	case "", "default":
		return ColorDefault, true
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "blue":
		return ColorBlue, true
	case "white":
		return ColorWhite, true
	case "bright_white":
		return ColorBrightWhite, true
	case "bright_yellow":
		return ColorBrightYellow, true
	case "orange":
		return ColorOrange, true
	case "gray", "grey":
		return ColorGray, true
	}
	return ColorDefault, false
}
