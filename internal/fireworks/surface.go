// Package fireworks simulates rockets that rise, burst into particles and fade
// out, drawing every frame onto an abstract Surface.
package fireworks

import (
	"image/color"
	"math/rand/v2"
)

// White is the color of a rising rocket's inner spark.
var White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Black is the color of the per-tick trail overlay.
var Black = color.RGBA{A: 0xff}

// Surface is the raster target the simulation draws onto. Opacity is passed
// with every call and never persists between calls.
type Surface interface {
	FillRect(x, y, w, h float64, c color.RGBA, alpha float64)
	FillCircle(x, y, r float64, c color.RGBA, alpha float64)
	// Size reports the current dimensions, which may change between frames.
	Size() (w, h float64)
}

// Source yields uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
