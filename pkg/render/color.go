// pkg/render/color.go
package render

import "image/color"

// TileStyle holds the colours of one kind of hex on screen.
type TileStyle struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	Marker      color.RGBA
	StrokeWidth float32
}

// Palette holds every style the board needs.
type Palette struct {
	Background color.RGBA
	Placed     TileStyle
	Candidate  TileStyle
	Frontier   TileStyle
	Blocked    TileStyle
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Brighten mixes c towards white by t in [0, 1].
func Brighten(c color.RGBA, t float64) color.RGBA {
	mix := func(v uint8) uint8 { return uint8(float64(v) + (255-float64(v))*t) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
