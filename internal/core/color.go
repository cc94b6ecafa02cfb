package core

// Color is a logical foreground color for a screen cell. The terminal
// host maps it to an ANSI color.
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
	ColorOrange
	ColorGray
)

// StatusColor picks a brick color from its remaining hit points.
// Full-strength bricks are green and fade through yellow and orange to red.
func StatusColor(status, full int) Color {
	switch {
	case full <= 0 || status >= full:
		return ColorGreen
	case status*4 >= full*3:
		return ColorYellow
	case status*2 >= full:
		return ColorOrange
	default:
		return ColorRed
	}
}
