package light

import (
	"github.com/nicolasmd87/gophertrace/internal/raytracer/color"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// AreaLight is a rectangular emitter spanning Corner, Corner+UVecFull and
// Corner+VVecFull, sampled as USteps*VSteps cells (spec.md §3/§4.10).
type AreaLight struct {
	Corner              vecmath.Tuple
	UVecFull, VVecFull  vecmath.Tuple
	USteps, VSteps      int
	intensity           color.Color
	uStep, vStep        vecmath.Tuple
	samples             int
	cellCenters         []vecmath.Tuple // precomputed, no-jitter positions
	Jitter              Jitter          // nil means use cell centers (no jitter)
}

func NewAreaLight(corner, uFull, vFull vecmath.Tuple, usteps, vsteps int, intensity color.Color) *AreaLight {
	a := &AreaLight{
		Corner:     corner,
		UVecFull:   uFull,
		VVecFull:   vFull,
		USteps:     usteps,
		VSteps:     vsteps,
		intensity:  intensity,
		uStep:      uFull.Div(float64(usteps)),
		vStep:      vFull.Div(float64(vsteps)),
		samples:    usteps * vsteps,
	}
	a.cellCenters = make([]vecmath.Tuple, 0, a.samples)
	for j := 0; j < vsteps; j++ {
		for i := 0; i < usteps; i++ {
			a.cellCenters = append(a.cellCenters, a.pointOnLight(float64(i)+0.5, float64(j)+0.5))
		}
	}
	return a
}

func (a *AreaLight) pointOnLight(u, v float64) vecmath.Tuple {
	return a.Corner.Add(a.uStep.Mul(u)).Add(a.vStep.Mul(v))
}

// Position is the light's overall center, the single representative point
// material.Lighting uses for the Phong direction term (see package doc).
func (a *AreaLight) Position() vecmath.Tuple {
	return a.Corner.Add(a.UVecFull.Mul(0.5)).Add(a.VVecFull.Mul(0.5))
}

func (a *AreaLight) Color() color.Color { return a.intensity }

// IntensityAt averages the unobstructed-sample fraction across every cell,
// per spec.md §4.10. With Jitter set, each cell's sample point is
// corner + uStep*(i+jitterU) + vStep*(j+jitterV); with Jitter nil, the
// precomputed cell centers are reused.
func (a *AreaLight) IntensityAt(point vecmath.Tuple, occluder Occluder) float64 {
	total := 0.0
	idx := 0
	for j := 0; j < a.VSteps; j++ {
		for i := 0; i < a.USteps; i++ {
			var sample vecmath.Tuple
			if a.Jitter != nil {
				sample = a.pointOnLight(float64(i)+a.Jitter.Next(), float64(j)+a.Jitter.Next())
			} else {
				sample = a.cellCenters[idx]
			}
			if !occluder.IsShadowed(point, sample) {
				total += 1.0
			}
			idx++
		}
	}
	return total / float64(a.samples)
}
