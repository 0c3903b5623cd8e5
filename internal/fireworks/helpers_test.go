package fireworks

import "image/color"

// scriptedSource replays vals in order, then repeats fallback.
type scriptedSource struct {
	vals     []float64
	fallback float64
}

func (s *scriptedSource) Float64() float64 {
	if len(s.vals) == 0 {
		return s.fallback
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

type drawCall struct {
	kind       string
	x, y, size float64
	c          color.RGBA
	alpha      float64
}

// recordingSurface records every draw command.
type recordingSurface struct {
	w, h  float64
	calls []drawCall
}

func (r *recordingSurface) FillRect(x, y, w, h float64, c color.RGBA, alpha float64) {
	r.calls = append(r.calls, drawCall{kind: "rect", x: x, y: y, size: w * h, c: c, alpha: alpha})
}

func (r *recordingSurface) FillCircle(x, y, radius float64, c color.RGBA, alpha float64) {
	r.calls = append(r.calls, drawCall{kind: "circle", x: x, y: y, size: radius, c: c, alpha: alpha})
}

func (r *recordingSurface) Size() (float64, float64) { return r.w, r.h }

func (r *recordingSurface) reset() { r.calls = r.calls[:0] }
