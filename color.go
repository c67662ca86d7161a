package starburst

import (
	"fmt"
	"math/rand/v2"
)

// Color is an RGBA colour. R, G and B are nominally in [0, 255]; A is in
// [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the default particle colour.
	ColorWhite = Color{255, 255, 255, 1}
	// ColorBlack is opaque black.
	ColorBlack = Color{0, 0, 0, 1}
)

// RandColor returns an opaque colour with uniformly random channels.
func RandColor() Color {
	return Color{
		R: rand.Float64() * 255,
		G: rand.Float64() * 255,
		B: rand.Float64() * 255,
		A: 1,
	}
}

// RandColorMix returns a random colour averaged with mix. Mixing with white
// keeps bursts pastel.
func RandColorMix(mix Color) Color {
	return RandColor().Mix(mix)
}

// Mix averages the RGB channels of c and m. Alpha is kept from c.
func (c Color) Mix(m Color) Color {
	return Color{
		R: (c.R + m.R) / 2,
		G: (c.G + m.G) / 2,
		B: (c.B + m.B) / 2,
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Lerp linearly interpolates every channel from c to o by t.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: lerp(c.R, o.R, t),
		G: lerp(c.G, o.G, t),
		B: lerp(c.B, o.B, t),
		A: lerp(c.A, o.A, t),
	}
}

// String serializes the colour in CSS rgba() form.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// RGBA implements color.Color. Channels are clamped and premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := Range{0, 1}.Clamp(c.A)
	ch := func(v float64) uint32 {
		return uint32(Range{0, 255}.Clamp(v) / 255 * alpha * 0xffff)
	}
	return ch(c.R), ch(c.G), ch(c.B), uint32(alpha * 0xffff)
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
