package core

import "fmt"

// Color is a 24-bit foreground color for a screen cell.
// The zero value means the terminal's default color.
type Color uint32

const colorSet Color = 1 << 24

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Predefined colors for HUD and slot rendering.
var (
	ColorDefault Color
	ColorWhite   = RGB(240, 240, 240)
	ColorSlate   = RGB(60, 60, 60)
	ColorGray    = RGB(140, 140, 140)
	ColorPlaced  = RGB(0, 200, 0)
	ColorScore   = RGB(0, 150, 0)
	ColorBanner  = RGB(255, 0, 0)
)

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Components returns the red, green and blue channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
