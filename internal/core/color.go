package core

// Color is the foreground color of a screen cell.
// The platform layer maps each value to an ANSI color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorGray
	ColorBrightBlue
	ColorBrightWhite
)

// String returns a short name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorBrightBlue:
		return "bright-blue"
	case ColorBrightWhite:
		return "bright-white"
	default:
		return "unknown"
	}
}
