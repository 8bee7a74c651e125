// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds amount to every channel, clamping at 255, and sets alpha.
// The result is non-premultiplied so a low alpha keeps the lightened hue.
func LightenColor(c color.RGBA, amount int, alpha uint8) color.NRGBA {
	return color.NRGBA{
		R: addClamp(c.R, amount),
		G: addClamp(c.G, amount),
		B: addClamp(c.B, amount),
		A: alpha,
	}
}

func addClamp(v uint8, amount int) uint8 {
	return uint8(min(255, max(0, int(v)+amount)))
}
