// Package canvas implements the fixed-size row-major 2-D pixel grid of
// spec.md §3/§4.1: the camera's render target.
package canvas

import "github.com/nicolasmd87/gophertrace/internal/raytracer/color"

type Canvas struct {
	Width, Height int
	pixels        []color.Color
}

func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]color.Color, width*height),
	}
}

func (c *Canvas) index(x, y int) int { return y*c.Width + x }

func (c *Canvas) At(x, y int) color.Color {
	return c.pixels[c.index(x, y)]
}

func (c *Canvas) Set(x, y int, col color.Color) {
	c.pixels[c.index(x, y)] = col
}

// SetRow overwrites an entire row in one call; used by the row-granular
// render dispatch so a worker touches only its own disjoint slice.
func (c *Canvas) SetRow(y int, row []color.Color) {
	copy(c.pixels[c.index(0, y):c.index(0, y)+c.Width], row)
}

// Pixels iterates every pixel in row-major order, handing the encoder (or
// a test) the (x, y, color) triple without exposing the backing slice.
func (c *Canvas) Pixels(fn func(x, y int, col color.Color)) {
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			fn(x, y, c.At(x, y))
		}
	}
}
