package geom

import "fmt"

// Color is a solid RGBA paint.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Black is the default text paint.
var Black = RGB(0, 0, 0)

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
