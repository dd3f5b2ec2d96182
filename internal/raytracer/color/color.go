// Package color implements the linear-RGB Color triple of spec.md §3/§4.1.
// Kept deliberately independent of vecmath: a Color is a 3-tuple with its
// own arithmetic (Hadamard product for light*pattern mixing), not a
// geometric point or vector, so it gets plain float64 fields rather than a
// vecmath.Tuple.
package color

import "math"

const epsilon = 1e-3

type Color struct {
	R, G, B float64
}

func New(r, g, b float64) Color { return Color{r, g, b} }

func Black() Color { return Color{0, 0, 0} }
func White() Color { return Color{1, 1, 1} }

func (c Color) Add(o Color) Color { return Color{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c Color) Sub(o Color) Color { return Color{c.R - o.R, c.G - o.G, c.B - o.B} }

// Mul is the Hadamard (component-wise) product used to mix a light's color
// with a surface's pattern color.
func (c Color) Mul(o Color) Color { return Color{c.R * o.R, c.G * o.G, c.B * o.B} }

func (c Color) Scale(s float64) Color { return Color{c.R * s, c.G * s, c.B * s} }

func (c Color) Equal(o Color) bool {
	return math.Abs(c.R-o.R) < epsilon && math.Abs(c.G-o.G) < epsilon && math.Abs(c.B-o.B) < epsilon
}
