package fireworks

import (
	"image/color"

	"github.com/iburimskiy/fireworks/internal/config"
)

// Options tunes a Simulation. Zero values fall back to the built-in defaults,
// except SpawnChance where zero disables random launches.
type Options struct {
	SpawnChance float64
	TrailAlpha  float64
	Palette     []color.RGBA
}

// DefaultOptions returns the built-in loop parameters.
func DefaultOptions() Options {
	return Options{
		SpawnChance: config.SpawnChance,
		TrailAlpha:  config.TrailAlpha,
	}
}

// Simulation owns the live fireworks and advances them once per Tick.
//
// It is not safe for concurrent use: the host calls Tick and Launch from the
// same goroutine, never two at once.
type Simulation struct {
	opts      Options
	rnd       Source
	fireworks []*Firework

	launched int
}

// NewSimulation returns an empty simulation drawing randomness from rnd.
func NewSimulation(rnd Source, opts Options) *Simulation {
	if opts.TrailAlpha <= 0 {
		opts.TrailAlpha = config.TrailAlpha
	}
	if len(opts.Palette) == 0 {
		opts.Palette = defaultPalette()
	}
	return &Simulation{
		opts: opts,
		rnd:  rnd,
	}
}

// Tick runs one frame: fade the previous frame, maybe spawn a firework, then
// update, render and reap every live firework.
//
// Frames where the surface has no area are skipped entirely so that no
// rocket is spawned against a degenerate size; live fireworks resume on the
// next frame that has one.
func (s *Simulation) Tick(surface Surface) {
	w, h := surface.Size()
	if w <= 0 || h <= 0 {
		return
	}

	surface.FillRect(0, 0, w, h, Black, s.opts.TrailAlpha)

	if s.rnd.Float64() < s.opts.SpawnChance {
		s.add(NewFirework(w, h, s.opts.Palette, s.rnd))
	}

	live := s.fireworks[:0]
	for _, fw := range s.fireworks {
		fw.Update()
		fw.Render(surface)
		if !fw.IsDead() {
			live = append(live, fw)
		}
	}
	clear(s.fireworks[len(live):])
	s.fireworks = live
}

// Launch fires a rocket from the bottom edge that explodes at (x, y). It joins
// the live set immediately, regardless of the spawn chance.
func (s *Simulation) Launch(surface Surface, x, y float64) *Firework {
	w, h := surface.Size()
	fw := NewFirework(w, h, s.opts.Palette, s.rnd)
	fw.X = x
	fw.TargetY = y
	s.add(fw)
	return fw
}

// Add inserts an externally built firework into the live set.
func (s *Simulation) Add(fw *Firework) {
	if fw.rnd == nil {
		fw.rnd = s.rnd
	}
	s.add(fw)
}

func (s *Simulation) add(fw *Firework) {
	s.fireworks = append(s.fireworks, fw)
	s.launched++
}

// Len returns the number of live fireworks.
func (s *Simulation) Len() int { return len(s.fireworks) }

// Fireworks returns the live fireworks in launch order. The slice is owned by
// the simulation and is only valid until the next Tick.
func (s *Simulation) Fireworks() []*Firework { return s.fireworks }

// Launched returns how many fireworks have ever joined the live set.
func (s *Simulation) Launched() int { return s.launched }

func defaultPalette() []color.RGBA {
	out := make([]color.RGBA, 0, len(config.DefaultPalette))
	for _, hex := range config.DefaultPalette {
		c, err := config.ParseHexColor(hex)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}
