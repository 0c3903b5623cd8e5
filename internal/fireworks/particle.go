package fireworks

import (
	"image/color"
	"math"

	"github.com/iburimskiy/fireworks/internal/config"
)

// Particle is a single fading spark produced by an exploding firework.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  color.RGBA

	radius  float64
	gravity float64
	decay   float64
	// updates counts calls to Update; opacity is derived from it so that
	// N updates always leave exactly 1 - N*decay.
	updates int
}

// NewParticle creates a particle at (x, y) flying in a random direction.
func NewParticle(x, y float64, c color.RGBA, rnd Source) Particle {
	radius := rnd.Float64()*config.RadiusSpread + config.MinRadius
	angle := rnd.Float64() * 2 * math.Pi
	speed := rnd.Float64()*config.SpeedSpread + config.MinSpeed
	decay := rnd.Float64()*config.DecaySpread + config.MinDecay

	return Particle{
		X:       x,
		Y:       y,
		VX:      math.Cos(angle) * speed,
		VY:      math.Sin(angle) * speed,
		Color:   c,
		radius:  radius,
		gravity: config.Gravity,
		decay:   decay,
	}
}

// Update applies gravity, moves the particle and fades it by one step.
func (p *Particle) Update() {
	p.VY += p.gravity
	p.X += p.VX
	p.Y += p.VY
	p.updates++
}

// Render draws the particle at its current opacity.
func (p *Particle) Render(s Surface) {
	s.FillCircle(p.X, p.Y, p.radius, p.Color, p.Alpha())
}

// IsDead reports whether the particle has faded out completely.
func (p *Particle) IsDead() bool {
	return p.Alpha() <= 0
}

// Alpha returns the current opacity.
func (p *Particle) Alpha() float64 {
	return 1 - float64(p.updates)*p.decay
}

func (p *Particle) Radius() float64 { return p.radius }

func (p *Particle) Decay() float64 { return p.decay }
