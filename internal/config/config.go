// Package config resolves gophertrace's CLI flags into a render Config,
// grounded on drsaluml-mu-bmd-to-webp's internal/config Flags/Resolve
// pattern (flags override defaults, zero values fall back to sane
// defaults including runtime.NumCPU() workers).
package config

import "runtime"

type Config struct {
	Width        int
	Height       int
	Antialiasing int
	MaxDepth     int
	Workers      int
	Seed         int64
	ScenePath    string
	OutputPath   string
}

type Flags struct {
	Width        int
	Height       int
	Antialiasing int
	MaxDepth     int
	Workers      int
	Seed         int64
	ScenePath    string
	OutputPath   string
}

// Resolve fills in defaults for any zero-valued flag.
func Resolve(f Flags) Config {
	c := Config{
		Width:        f.Width,
		Height:       f.Height,
		Antialiasing: f.Antialiasing,
		MaxDepth:     f.MaxDepth,
		Workers:      f.Workers,
		Seed:         f.Seed,
		ScenePath:    f.ScenePath,
		OutputPath:   f.OutputPath,
	}

	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Antialiasing <= 0 {
		c.Antialiasing = 1
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = 5
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Seed <= 0 {
		c.Seed = 1
	}
	if c.OutputPath == "" {
		c.OutputPath = "render.png"
	}
	return c
}
