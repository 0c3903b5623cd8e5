package fireworks

import (
	"image/color"
	"testing"
)

var testPalette = []color.RGBA{
	{R: 0xff, A: 0xff},
	{G: 0xff, A: 0xff},
	{B: 0xff, A: 0xff},
}

func TestNewFireworkStartsOnBottomEdge(t *testing.T) {
	// x, color, speed, targetY
	rnd := &scriptedSource{vals: []float64{0.25, 0.5, 0.5, 0.5}}

	fw := NewFirework(800, 600, testPalette, rnd)

	if fw.X != 200 {
		t.Errorf("X: got %v, want 200", fw.X)
	}
	if fw.Y != 600 {
		t.Errorf("Y: got %v, want 600", fw.Y)
	}
	if fw.Color != testPalette[1] {
		t.Errorf("Color: got %v, want %v", fw.Color, testPalette[1])
	}
	if fw.Speed != 8.5 {
		t.Errorf("Speed: got %v, want 8.5", fw.Speed)
	}
	if fw.TargetY != 200 {
		t.Errorf("TargetY: got %v, want 200", fw.TargetY)
	}
	if fw.Exploded() || len(fw.Particles()) != 0 {
		t.Error("new firework should be rising with no particles")
	}
}

func TestNewFireworkPaletteIndexStaysInRange(t *testing.T) {
	rnd := &scriptedSource{vals: []float64{0, 0.9999999}}
	fw := NewFirework(100, 100, testPalette, rnd)
	if fw.Color != testPalette[2] {
		t.Errorf("Color: got %v, want last palette entry", fw.Color)
	}
}

func TestFireworkReachesTargetAfterFortyUpdates(t *testing.T) {
	fw := &Firework{X: 50, Y: 500, Color: red, Speed: 10, TargetY: 100, rnd: &scriptedSource{fallback: 0.5}}

	for i := 1; i < 40; i++ {
		fw.Update()
		if fw.Exploded() {
			t.Fatalf("exploded early after %d updates (y=%v)", i, fw.Y)
		}
		if fw.IsDead() {
			t.Fatalf("rising firework reported dead after %d updates", i)
		}
	}

	fw.Update()
	if !fw.Exploded() {
		t.Fatalf("not exploded after 40 updates (y=%v)", fw.Y)
	}
	if fw.Y != 100 {
		t.Errorf("Y at explosion: got %v, want 100", fw.Y)
	}
	if n := len(fw.Particles()); n != 100 {
		t.Errorf("particles: got %d, want 100", n)
	}
}

func TestExplodeSpawnsHundredParticlesAtPosition(t *testing.T) {
	fw := &Firework{X: 123, Y: 45, Color: red, rnd: NewSource(7)}

	fw.Explode()

	ps := fw.Particles()
	if len(ps) != 100 {
		t.Fatalf("particles: got %d, want 100", len(ps))
	}
	for i, p := range ps {
		if p.Color != red {
			t.Errorf("particle %d color %v, want %v", i, p.Color, red)
		}
		if p.X != 123 || p.Y != 45 {
			t.Errorf("particle %d at (%v, %v), want (123, 45)", i, p.X, p.Y)
		}
		if r := p.Radius(); r < 1 || r >= 3 {
			t.Errorf("particle %d radius %v out of range", i, r)
		}
		if d := p.Decay(); d < 0.005 || d >= 0.015 {
			t.Errorf("particle %d decay %v out of range", i, d)
		}
	}
}

func TestFireworkExplodesOnlyOnce(t *testing.T) {
	fw := &Firework{X: 0, Y: 10, Speed: 10, TargetY: 5, rnd: &scriptedSource{fallback: 0.5}}

	fw.Update()
	if !fw.Exploded() {
		t.Fatal("expected explosion")
	}
	fw.Explode()
	if n := len(fw.Particles()); n != 100 {
		t.Fatalf("explicit Explode re-triggered: %d particles", n)
	}

	y := fw.Y
	for i := 0; i < 5; i++ {
		fw.Update()
	}
	if fw.Y != y {
		t.Errorf("exploded firework kept rising: y %v -> %v", y, fw.Y)
	}
	if n := len(fw.Particles()); n != 100 {
		t.Errorf("particle count changed to %d", n)
	}
}

func TestRisingFireworkNeverDeadOffSurface(t *testing.T) {
	fw := &Firework{X: -500, Y: 1e6, Speed: 7, TargetY: -1e6}
	for i := 0; i < 1000; i++ {
		fw.Update()
		if fw.IsDead() {
			t.Fatalf("rising firework dead at update %d", i)
		}
	}
}

func TestExplodedFireworkDiesWhenParticlesFade(t *testing.T) {
	// Every draw 0.5: decay 0.01, so all particles die on update 100.
	fw := &Firework{Y: 0, TargetY: 0, Color: red, rnd: &scriptedSource{fallback: 0.5}}
	fw.Explode()

	for i := 0; i < 99; i++ {
		fw.Update()
	}
	if fw.IsDead() || len(fw.Particles()) != 100 {
		t.Fatalf("expected 100 live particles after 99 updates, got %d", len(fw.Particles()))
	}

	fw.Update()
	if len(fw.Particles()) != 0 {
		t.Fatalf("expected all particles removed, got %d", len(fw.Particles()))
	}
	if !fw.IsDead() {
		t.Error("firework should be dead")
	}
}

func TestFireworkRemovesOnlyDeadParticles(t *testing.T) {
	fw := &Firework{Color: red, exploded: true}
	fw.particles = []Particle{
		{X: 1, decay: 0.5},
		{X: 2, decay: 1},
		{X: 3, decay: 0.5},
		{X: 4, decay: 2},
		{X: 5, decay: 0.1},
	}

	fw.Update()

	ps := fw.Particles()
	if len(ps) != 3 {
		t.Fatalf("live particles: got %d, want 3", len(ps))
	}
	for i, wantX := range []float64{1, 3, 5} {
		if ps[i].X != wantX {
			t.Errorf("particle %d: X %v, want %v", i, ps[i].X, wantX)
		}
		if ps[i].updates != 1 {
			t.Errorf("particle %d updated %d times, want 1", i, ps[i].updates)
		}
	}
}

func TestFireworkRender(t *testing.T) {
	fw := &Firework{X: 10, Y: 20, Color: red, rnd: &scriptedSource{fallback: 0.5}}
	s := &recordingSurface{w: 100, h: 100}

	fw.Render(s)
	if len(s.calls) != 2 {
		t.Fatalf("rising render: got %d calls, want 2", len(s.calls))
	}
	outer, inner := s.calls[0], s.calls[1]
	if outer.size != 3 || outer.c != red || outer.alpha != 1 {
		t.Errorf("outer circle %+v", outer)
	}
	if inner.size != 1 || inner.c != White || inner.alpha != 1 {
		t.Errorf("inner circle %+v", inner)
	}

	s.reset()
	fw.Explode()
	fw.Render(s)
	if len(s.calls) != 100 {
		t.Fatalf("exploded render: got %d calls, want 100", len(s.calls))
	}
}
