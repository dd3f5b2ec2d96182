package pattern

import (
	"github.com/aquilax/go-perlin"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/color"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// Perlin is a supplemental 7th pattern variant beyond spec.md's closed set
// of six: it perturbs an underlying pattern's sample point by real
// simplex-ish Perlin noise, grounded on the teacher's
// internal/renderer/improved_perlin.go (ImprovedPerlinNoise.Turbulence),
// but backed by the actual github.com/aquilax/go-perlin library instead of
// a hand-rolled permutation table.
type perlinPattern struct {
	underlying Pattern
	noise      *perlin.Perlin
	scale      float64
}

// NewPerlin wraps underlying with coordinate jitter of the given scale.
// alpha/beta/n follow go-perlin's own constructor; 2/2/3 and a fixed seed
// reproduce the teacher's "deterministic, seeded" noise generator.
func NewPerlin(underlying Pattern, scale float64, seed int64) Pattern {
	return &perlinPattern{
		underlying: underlying,
		noise:      perlin.NewPerlin(2, 2, 3, seed),
		scale:      scale,
	}
}

func (p *perlinPattern) ColorAt(pt vecmath.Tuple) color.Color {
	n := p.noise.Noise3D(pt.X, pt.Y, pt.Z)
	jittered := vecmath.Point(
		pt.X+n*p.scale,
		pt.Y+n*p.scale,
		pt.Z+n*p.scale,
	)
	return p.underlying.ColorAt(jittered)
}
