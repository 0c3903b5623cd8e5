// Package term renders the fireworks simulation in a terminal.
//
// Every cell holds two square pixels drawn with an upper half block: the
// foreground paints the top pixel, the background the bottom one.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

type rgb struct {
	r, g, b float64
}

// Surface is an off-screen pixel buffer the simulation draws into. Each pixel
// covers Scale x Scale simulation units.
type Surface struct {
	Scale float64

	cols, rows int
	// pixels is (rows*2) x cols, row major
	pixels []rgb
}

func NewSurface(cols, rows int, scale float64) *Surface {
	s := &Surface{Scale: scale}
	s.Resize(cols, rows)
	return s
}

// Resize reallocates the buffer for a cols x rows terminal, blanking it.
func (s *Surface) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	s.cols, s.rows = cols, rows
	s.pixels = make([]rgb, cols*rows*2)
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.cols) * s.Scale, float64(s.rows*2) * s.Scale
}

func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA, alpha float64) {
	x0, x1 := s.span(x, x+w, s.cols)
	y0, y1 := s.span(y, y+h, s.rows*2)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.blend(px, py, c, alpha)
		}
	}
}

// FillCircle paints every pixel whose center lies inside the circle, and
// always the pixel holding the center so small sparks stay visible.
func (s *Surface) FillCircle(x, y, r float64, c color.RGBA, alpha float64) {
	cx, cy := x/s.Scale, y/s.Scale
	pr := r / s.Scale
	centerX, centerY := int(math.Floor(cx)), int(math.Floor(cy))
	centerPainted := false

	x0, x1 := s.span(x-r, x+r, s.cols)
	y0, y1 := s.span(y-r, y+r, s.rows*2)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			if dx*dx+dy*dy <= pr*pr {
				s.blend(px, py, c, alpha)
				if px == centerX && py == centerY {
					centerPainted = true
				}
			}
		}
	}

	if !centerPainted {
		s.blend(centerX, centerY, c, alpha)
	}
}

// span converts a [lo, hi) range in simulation units to clamped pixel indices.
func (s *Surface) span(lo, hi float64, limit int) (int, int) {
	a := int(math.Floor(lo / s.Scale))
	b := int(math.Ceil(hi / s.Scale))
	if a < 0 {
		a = 0
	}
	if b > limit {
		b = limit
	}
	return a, b
}

func (s *Surface) blend(px, py int, c color.RGBA, alpha float64) {
	if px < 0 || py < 0 || px >= s.cols || py >= s.rows*2 {
		return
	}
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	p := &s.pixels[py*s.cols+px]
	p.r = p.r*(1-alpha) + float64(c.R)/255*alpha
	p.g = p.g*(1-alpha) + float64(c.G)/255*alpha
	p.b = p.b*(1-alpha) + float64(c.B)/255*alpha
}

// Pixel returns the current color of a pixel, for tests and debugging.
func (s *Surface) Pixel(px, py int) color.RGBA {
	p := s.pixels[py*s.cols+px]
	return color.RGBA{R: to8(p.r), G: to8(p.g), B: to8(p.b), A: 0xff}
}

// CellCenter maps a terminal cell to simulation coordinates.
func (s *Surface) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.Scale, float64(row*2+1) * s.Scale
}

// Flush copies the buffer to screen. The caller calls Show.
func (s *Surface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.Pixel(col, row*2)
			bottom := s.Pixel(col, row*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(col, row, '▀', nil, style)
		}
	}
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
