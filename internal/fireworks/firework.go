package fireworks

import (
	"image/color"

	"github.com/iburimskiy/fireworks/internal/config"
)

// Firework is a rocket that rises to TargetY and then bursts into particles.
//
// A firework is Rising until it explodes, Exploded afterwards, and Dead once
// every particle has faded.
type Firework struct {
	X, Y    float64
	Color   color.RGBA
	Speed   float64
	TargetY float64

	exploded  bool
	particles []Particle
	rnd       Source
}

// NewFirework creates a rising firework at a random spot on the bottom edge
// of a width x height surface, aimed somewhere in the upper half.
func NewFirework(width, height float64, palette []color.RGBA, rnd Source) *Firework {
	x := rnd.Float64() * width
	c := palette[int(rnd.Float64()*float64(len(palette)))%len(palette)]
	speed := rnd.Float64()*config.AscentSpread + config.MinAscentSpeed
	targetY := rnd.Float64()*(height/2) + config.TargetMargin

	return &Firework{
		X:       x,
		Y:       height,
		Color:   c,
		Speed:   speed,
		TargetY: targetY,
		rnd:     rnd,
	}
}

// Update advances the rocket, or its particles once it has exploded.
func (f *Firework) Update() {
	if !f.exploded {
		f.Y -= f.Speed
		if f.Y <= f.TargetY {
			f.Explode()
		}
		return
	}

	live := f.particles[:0]
	for i := range f.particles {
		p := &f.particles[i]
		p.Update()
		if !p.IsDead() {
			live = append(live, *p)
		}
	}
	f.particles = live
}

// Render draws the rising spark, or every particle after the explosion.
func (f *Firework) Render(s Surface) {
	if !f.exploded {
		s.FillCircle(f.X, f.Y, config.RocketRadius, f.Color, 1)
		s.FillCircle(f.X, f.Y, config.SparkRadius, White, 1)
		return
	}

	for i := range f.particles {
		f.particles[i].Render(s)
	}
}

// Explode bursts the firework into particles at its current position. It has
// no effect on a firework that already exploded.
func (f *Firework) Explode() {
	if f.exploded {
		return
	}
	f.exploded = true
	f.particles = make([]Particle, 0, config.ParticleCount)
	for i := 0; i < config.ParticleCount; i++ {
		f.particles = append(f.particles, NewParticle(f.X, f.Y, f.Color, f.rnd))
	}
}

// IsDead reports whether the firework exploded and all its particles faded.
// A rising firework is never dead, wherever it is.
func (f *Firework) IsDead() bool {
	return f.exploded && len(f.particles) == 0
}

func (f *Firework) Exploded() bool { return f.exploded }

// Particles returns the live particles. The slice is owned by the firework.
func (f *Firework) Particles() []Particle { return f.particles }
