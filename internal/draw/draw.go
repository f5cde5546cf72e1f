// Package draw renders the game onto an ANSI terminal using half-block characters.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Anchor selects which point of a text box is placed at the given position.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTopLeft
)

// Color is a terminal foreground color for text.
type Color int

const (
	ColorDefault Color = iota
	ColorGreen
	ColorGray
	ColorMagenta
	ColorBold
)

func (c Color) sgr() string {
	switch c {
	case ColorGreen:
		return "\033[32m"
	case ColorGray:
		return "\033[90m"
	case ColorMagenta:
		return "\033[35m"
	case ColorBold:
		return "\033[1m"
	default:
		return ""
	}
}

// TextStyle controls placement and color of overlay text.
type TextStyle struct {
	Anchor Anchor
	Color  Color
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
