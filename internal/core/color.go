package core

import "fmt"

// Color represents a foreground color for a screen cell.
// Values below 256 are ANSI 256-color codes offset by one so that the zero
// value means "terminal default". Values with rgbFlag set carry a 24-bit color.
type Color uint32

const rgbFlag Color = 1 << 24

// Predefined palette colors for game elements.
const (
	ColorDefault       Color = 0
	ColorRed           Color = 1 + 1
	ColorGreen         Color = 2 + 1
	ColorYellow        Color = 3 + 1
	ColorBlue          Color = 4 + 1
	ColorMagenta       Color = 5 + 1
	ColorCyan          Color = 6 + 1
	ColorWhite         Color = 7 + 1
	ColorBrightRed     Color = 9 + 1
	ColorBrightGreen   Color = 10 + 1
	ColorBrightYellow  Color = 11 + 1
	ColorBrightBlue    Color = 12 + 1
	ColorBrightMagenta Color = 13 + 1
	ColorBrightCyan    Color = 14 + 1
	ColorBrightWhite   Color = 15 + 1
	ColorOrange        Color = 208 + 1
	ColorGray          Color = 245 + 1
)

// RGB is a 24-bit color value.
type RGB struct {
	R, G, B uint8
}

// Color converts the RGB value to a screen Color.
func (c RGB) Color() Color {
	return rgbFlag | Color(c.R)<<16 | Color(c.G)<<8 | Color(c.B)
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsRGB reports whether the color carries a 24-bit value.
func (c Color) IsRGB() bool {
	return c&rgbFlag != 0
}

// RGB returns the 24-bit components of an RGB color.
// Palette colors return the zero RGB.
func (c Color) RGB() RGB {
	if !c.IsRGB() {
		return RGB{}
	}
	return RGB{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// ANSI returns the ANSI 256-color code and whether the color is a palette color.
func (c Color) ANSI() (int, bool) {
	if c == ColorDefault || c.IsRGB() {
		return 0, false
	}
	return int(c) - 1, true
}

// Shade darkens base linearly along a sequence of n elements.
// Index 0 keeps the full color; later indices fade toward black with
// factor (n-i)*255/n.
func Shade(base RGB, i, n int) RGB {
	if n <= 0 {
		return base
	}
	i = Clamp(i, 0, n-1)
	factor := (n - i) * 255 / n
	return RGB{
		R: uint8(int(base.R) * factor / 255),
		G: uint8(int(base.G) * factor / 255),
		B: uint8(int(base.B) * factor / 255),
	}
}
