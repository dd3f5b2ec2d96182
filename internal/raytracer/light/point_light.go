package light

import (
	"github.com/nicolasmd87/gophertrace/internal/raytracer/color"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

type PointLight struct {
	position  vecmath.Tuple
	intensity color.Color
}

func NewPointLight(position vecmath.Tuple, intensity color.Color) *PointLight {
	return &PointLight{position: position, intensity: intensity}
}

func (p *PointLight) Position() vecmath.Tuple { return p.position }
func (p *PointLight) Color() color.Color      { return p.intensity }

// IntensityAt is binary: 1.0 if the light is visible from point, 0.0 if a
// shadow-casting object occludes the segment (spec.md §4.10).
func (p *PointLight) IntensityAt(point vecmath.Tuple, occluder Occluder) float64 {
	if occluder.IsShadowed(point, p.position) {
		return 0.0
	}
	return 1.0
}
