package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/fireworks/internal/fireworks"
)

type Game struct {
	sim *fireworks.Simulation

	// logical screen size from the last Layout call
	width, height int

	debug    bool
	touchIDs []ebiten.TouchID
}

// NewGame wraps sim in an ebiten game. The screen is not cleared between
// frames; the simulation fades it itself.
func NewGame(sim *fireworks.Simulation, width, height int, debug bool) *Game {
	ebiten.SetScreenClearedEveryFrame(false)
	return &Game{
		sim:    sim,
		width:  width,
		height: height,
		debug:  debug,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		log.Printf("[Game] Quit requested, %d fireworks launched", g.sim.Launched())
		return ebiten.Termination
	}

	// Clicks and taps launch a firework aimed at the pointer.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.launch(x, y)
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.launch(x, y)
	}

	return nil
}

func (g *Game) launch(x, y int) {
	g.sim.Launch(sizeOnly{w: g.width, h: g.height}, float64(x), float64(y))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Tick(screenSurface{img: screen})

	if g.debug {
		vector.DrawFilledRect(screen, 0, 0, 220, 20, color.Black, false)
		status := fmt.Sprintf("FPS %.0f  live %d  launched %d", ebiten.ActualFPS(), g.sim.Len(), g.sim.Launched())
		ebitenutil.DebugPrintAt(screen, status, 4, 2)
	}
}

// Layout follows the window so the drawing surface resizes with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
