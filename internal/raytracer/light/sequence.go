package light

import "math/rand"

// Jitter supplies the fractional offsets area-light sampling uses to
// stratify each cell, grounded on _examples/original_source/src/sequence.rs:
// ConstantSequence is a deterministic cyclic sequence for tests,
// RandomSequence draws a fresh uniform [0,1) value on every call. Isolating
// it behind an interface keeps the random source injectable and tests
// reproducible. Area lights built by the scene-file loader leave
// AreaLight.Jitter nil, so they sample the precomputed cell centers.
type Jitter interface {
	Next() float64
}

// ConstantSequence cycles through a fixed list of floats, wrapping around
// when exhausted — used by tests that need reproducible sample offsets.
type ConstantSequence struct {
	values []float64
	pos    int
}

func NewConstantSequence(values ...float64) *ConstantSequence {
	if len(values) == 0 {
		values = []float64{0.5}
	}
	return &ConstantSequence{values: values}
}

func (c *ConstantSequence) Next() float64 {
	v := c.values[c.pos%len(c.values)]
	c.pos++
	return v
}

// RandomSequence draws a fresh uniform [0,1) value on every call. Camera
// Render creates one per image row, seeded from Camera.Seed plus the row
// index, for its supersampling offsets.
type RandomSequence struct {
	rng *rand.Rand
}

func NewRandomSequence(seed int64) *RandomSequence {
	return &RandomSequence{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomSequence) Next() float64 { return r.rng.Float64() }
