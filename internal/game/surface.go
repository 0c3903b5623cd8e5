package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface draws simulation commands onto an ebiten image.
type screenSurface struct {
	img *ebiten.Image
}

func (s screenSurface) FillRect(x, y, w, h float64, c color.RGBA, alpha float64) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), withAlpha(c, alpha), false)
}

func (s screenSurface) FillCircle(x, y, r float64, c color.RGBA, alpha float64) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), withAlpha(c, alpha), true)
}

func (s screenSurface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// sizeOnly answers Size for input handling that happens outside Draw.
type sizeOnly struct {
	w, h int
}

func (s sizeOnly) FillRect(float64, float64, float64, float64, color.RGBA, float64) {}

func (s sizeOnly) FillCircle(float64, float64, float64, color.RGBA, float64) {}

func (s sizeOnly) Size() (float64, float64) { return float64(s.w), float64(s.h) }
