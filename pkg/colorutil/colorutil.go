// Package colorutil provides shared color utilities for the skin analyzer.
package colorutil

import (
	"image/color"
	"math"
)

// Overlay colors used when annotating analyzed frames.
var (
	FaceBox    = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BlemishBox = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Label      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// HSV is a color in OpenCV's 8-bit convention: H 0-180, S 0-255, V 0-255.
type HSV struct {
	H, S, V float64
}

// RGBToHSV converts RGB (0-255) to HSV (OpenCV convention: H 0-180, S 0-255, V 0-255).
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	r /= 255.0
	g /= 255.0
	b /= 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	diff := maxC - minC

	v = maxC * 255.0

	if maxC == 0 {
		s = 0
	} else {
		s = (diff / maxC) * 255.0
	}

	if diff == 0 {
		h = 0
	} else if maxC == r {
		h = 60 * math.Mod((g-b)/diff, 6)
	} else if maxC == g {
		h = 60 * ((b-r)/diff + 2)
	} else {
		h = 60 * ((r-g)/diff + 4)
	}

	if h < 0 {
		h += 360
	}

	h = h / 2 // OpenCV's 0-180 range

	return h, s, v
}

// ToHSV converts a color.Color, ignoring alpha.
func ToHSV(c color.Color) HSV {
	r, g, b, _ := c.RGBA()
	h, s, v := RGBToHSV(float64(r>>8), float64(g>>8), float64(b>>8))
	return HSV{H: h, S: s, V: v}
}

// InRange reports whether c lies inside the inclusive box [lo, hi].
func (c HSV) InRange(lo, hi HSV) bool {
	return c.H >= lo.H && c.H <= hi.H &&
		c.S >= lo.S && c.S <= hi.S &&
		c.V >= lo.V && c.V <= hi.V
}
