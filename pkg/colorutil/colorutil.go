// Package colorutil provides shared color utilities for chart rendering.
package colorutil

import (
	"image/color"
	"math"
)

// Common plot colors.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Blue    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	Orange  = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	Green   = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	Red     = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// HSVToRGB converts HSV (H 0-360, S and V 0-1) to 8-bit RGB.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}
	return uint8((rf + m) * 255), uint8((gf + m) * 255), uint8((bf + m) * 255)
}

// Heat maps a normalized value in [0, 1] onto a blue-to-red heat ramp.
// Values outside the range are clamped.
func Heat(t float64) color.RGBA {
	if math.IsNaN(t) {
		return Black
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	// Hue 240 (blue) down to 0 (red).
	r, g, b := HSVToRGB(240*(1-t), 1, 1)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
