// Package png implements spec.md §6: encoding a rendered canvas to an
// 8-bit sRGB PNG via the standard image/png encoder. No ecosystem PNG
// library appears anywhere in the retrieval pack — image/png is the
// idiomatic choice the corpus itself would reach for here, so this one
// ambient concern is carried on the standard library; see DESIGN.md.
package png

import (
	"image"
	"image/color"
	stdpng "image/png"
	"io"

	rcolor "github.com/nicolasmd87/gophertrace/internal/raytracer/color"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/canvas"
)

// clampByte maps a [0,1] linear channel into a [0,255] byte, clamping
// out-of-range values the way over-bright reflections and lights produce.
// Per spec.md §6, the in-range conversion floors rather than rounds — the
// uint8 cast truncates, matching _examples/original_source/src/canvas.rs's
// `(component * 255.0) as u8`.
func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// Encode writes c to w as a PNG, row (x,y) landing at image column x, row y.
func Encode(w io.Writer, c *canvas.Canvas) error {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	c.Pixels(func(x, y int, col rcolor.Color) {
		img.Set(x, y, color.RGBA{
			R: clampByte(col.R),
			G: clampByte(col.G),
			B: clampByte(col.B),
			A: 255,
		})
	})
	return stdpng.Encode(w, img)
}
