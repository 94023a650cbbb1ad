package domain

import "math/rand/v2"

// Color is a named entry in the fixed packing color palette.
// It is persisted as its string name, which keeps the stored value
// portable and human-readable.
type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPink   Color = "pink"
	ColorPurple Color = "purple"
)

// Palette lists every valid packing color, in display order.
var Palette = []Color{
	ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPink, ColorPurple,
}

// Valid reports whether c is a member of the palette.
func (c Color) Valid() bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}

// RandomColor returns a random palette color. Used as the default when a
// packing is created without an explicit color choice.
func RandomColor() Color {
	return Palette[rand.IntN(len(Palette))]
}
