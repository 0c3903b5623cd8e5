package term

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/fireworks/internal/fireworks"
)

// Runner drives a simulation from a tcell screen: a ticker schedules frames
// and mouse clicks launch fireworks. Everything that touches the simulation
// runs on the goroutine calling Run.
type Runner struct {
	screen  tcell.Screen
	sim     *fireworks.Simulation
	surface *Surface
	frame   time.Duration

	// left button state from the previous mouse event, for click edges
	buttonDown bool
}

func NewRunner(screen tcell.Screen, sim *fireworks.Simulation, fps int, scale float64) *Runner {
	if fps <= 0 {
		fps = 60
	}
	cols, rows := screen.Size()
	return &Runner{
		screen:  screen,
		sim:     sim,
		surface: NewSurface(cols, rows, scale),
		frame:   time.Second / time.Duration(fps),
	}
}

// Run loops until ctx is done or the user quits.
func (r *Runner) Run(ctx context.Context) error {
	r.screen.EnableMouse()
	r.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	ticker := time.NewTicker(r.frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !r.handleEvent(ev) {
				log.Printf("[Term] Quit requested, %d fireworks launched", r.sim.Launched())
				return nil
			}
		case <-ticker.C:
			r.drawFrame()
		}
	}
}

func (r *Runner) drawFrame() {
	r.sim.Tick(r.surface)
	r.surface.Flush(r.screen)
	r.screen.Show()
}

// handleEvent reacts to one input event and reports whether to keep running.
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !r.buttonDown {
			col, row := ev.Position()
			x, y := r.surface.CellCenter(col, row)
			r.sim.Launch(r.surface, x, y)
		}
		r.buttonDown = down

	case *tcell.EventResize:
		cols, rows := r.screen.Size()
		r.surface.Resize(cols, rows)
		r.screen.Sync()
	}

	return true
}
