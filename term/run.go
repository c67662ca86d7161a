package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/starburst"
)

// Config configures the terminal driver.
type Config struct {
	// CellWidth and CellHeight are the world size of one terminal cell.
	// Defaults are 8 and 16, roughly the pixel size of a terminal glyph.
	CellWidth  float64
	CellHeight float64
	// Twilight paints the twilight gradient behind the sky.
	Twilight bool
	// Screen overrides the terminal screen. Nil opens the real terminal.
	Screen tcell.Screen
}

func (c Config) withDefaults() Config {
	if c.CellWidth <= 0 {
		c.CellWidth = 8
	}
	if c.CellHeight <= 0 {
		c.CellHeight = 16
	}
	return c
}

// Run drives sky in the terminal until Esc, Ctrl-C or q is pressed or ctx
// is cancelled. Mouse clicks are delivered as sky clicks, resizes replace
// the sky bounds and focus changes toggle visibility.
func Run(ctx context.Context, sky *starburst.Sky, cfg Config) error {
	cfg = cfg.withDefaults()
	screen := cfg.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("term: new screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	d := newDriver(screen, sky, cfg)
	d.resize(screen.Size())

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	log := sky.Logger()
	log.Info().Float64("cell_w", cfg.CellWidth).Float64("cell_h", cfg.CellHeight).Msg("terminal driver started")

	ticker := time.NewTicker(starburst.TickDuration)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("terminal driver cancelled")
			return nil
		case ev := <-events:
			if !d.handleEvent(ev) {
				log.Info().Msg("terminal driver exit requested")
				return nil
			}
		case now := <-ticker.C:
			sky.Advance(now.Sub(last))
			last = now
			d.draw()
		}
	}
}

// driver owns the screen side of the loop. It runs on the loop goroutine.
type driver struct {
	screen  tcell.Screen
	sky     *starburst.Sky
	surface *Surface
	cfg     Config
}

func newDriver(screen tcell.Screen, sky *starburst.Sky, cfg Config) *driver {
	return &driver{
		screen:  screen,
		sky:     sky,
		surface: NewSurface(screen, cfg.CellWidth, cfg.CellHeight),
		cfg:     cfg,
	}
}

// handleEvent applies one terminal event and reports whether the loop
// should keep running.
func (d *driver) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x, y := d.surface.CellCenter(cx, cy)
		pressed, button := mouseButton(ev.Buttons())
		d.sky.Pointer(0, x, y, pressed, button)
	case *tcell.EventResize:
		d.resize(ev.Size())
	case *tcell.EventFocus:
		d.sky.SetVisible(ev.Focused)
	}
	return true
}

func mouseButton(b tcell.ButtonMask) (bool, starburst.MouseButton) {
	switch {
	case b&tcell.Button1 != 0:
		return true, starburst.MouseButtonLeft
	case b&tcell.Button2 != 0:
		return true, starburst.MouseButtonRight
	case b&tcell.Button3 != 0:
		return true, starburst.MouseButtonMiddle
	}
	return false, starburst.MouseButtonLeft
}

func (d *driver) resize(cols, rows int) {
	w := float64(cols) * d.cfg.CellWidth
	h := float64(rows) * d.cfg.CellHeight
	d.sky.SetBounds(starburst.NewRect(starburst.Vec2{}, w, h))
	if d.cfg.Twilight {
		g := starburst.TwilightGradient(w, h)
		d.sky.Background = &g
	}
}

func (d *driver) draw() {
	d.screen.Clear()
	d.surface.ResetBackground()
	d.sky.Draw(d.surface)
	d.screen.Show()
}
