package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/starburst"
)

func newTestDriver(t *testing.T, cfg Config) (*driver, *starburst.Sky) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	sky := starburst.NewSky(starburst.Rect{})
	return newDriver(screen, sky, cfg.withDefaults()), sky
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.CellWidth != 8 || cfg.CellHeight != 16 {
		t.Errorf("defaults = %vx%v, want 8x16", cfg.CellWidth, cfg.CellHeight)
	}
	cfg = Config{CellWidth: 4, CellHeight: 4}.withDefaults()
	if cfg.CellWidth != 4 || cfg.CellHeight != 4 {
		t.Errorf("explicit = %vx%v, want 4x4", cfg.CellWidth, cfg.CellHeight)
	}
}

func TestDriverQuitKeys(t *testing.T) {
	d, _ := newTestDriver(t, Config{})
	tests := []struct {
		name string
		ev   *tcell.EventKey
		keep bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.handleEvent(tt.ev); got != tt.keep {
				t.Errorf("handleEvent = %v, want %v", got, tt.keep)
			}
		})
	}
}

func TestDriverResizeSetsBounds(t *testing.T) {
	d, sky := newTestDriver(t, Config{Twilight: true})
	d.handleEvent(tcell.NewEventResize(100, 30))

	b := sky.Bounds()
	if b.Dimensions.X != 800 || b.Dimensions.Y != 480 {
		t.Errorf("bounds = %v, want 800x480", b.Dimensions)
	}
	if sky.Background == nil {
		t.Fatal("twilight background not set")
	}
	if sky.Background.To.Y != 480*1.4 {
		t.Errorf("gradient end = %v, want %v", sky.Background.To.Y, 480*1.4)
	}
}

func TestDriverMouseClick(t *testing.T) {
	d, sky := newTestDriver(t, Config{})
	var got []starburst.ClickContext
	sky.OnClick(func(ctx starburst.ClickContext) { got = append(got, ctx) })

	d.handleEvent(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	if len(got) != 0 {
		t.Fatal("click fired on press")
	}
	d.handleEvent(tcell.NewEventMouse(5, 4, tcell.ButtonNone, tcell.ModNone))

	if len(got) != 1 {
		t.Fatalf("clicks = %d, want 1", len(got))
	}
	// Cell (5,4) centre with 8x16 cells.
	if got[0].X != 44 || got[0].Y != 72 {
		t.Errorf("click at (%v,%v), want (44,72)", got[0].X, got[0].Y)
	}
	if got[0].Button != starburst.MouseButtonLeft {
		t.Errorf("button = %v, want left", got[0].Button)
	}
}

func TestMouseButton(t *testing.T) {
	tests := []struct {
		mask    tcell.ButtonMask
		pressed bool
		button  starburst.MouseButton
	}{
		{tcell.ButtonNone, false, starburst.MouseButtonLeft},
		{tcell.Button1, true, starburst.MouseButtonLeft},
		{tcell.Button2, true, starburst.MouseButtonRight},
		{tcell.Button3, true, starburst.MouseButtonMiddle},
	}
	for _, tt := range tests {
		pressed, button := mouseButton(tt.mask)
		if pressed != tt.pressed || button != tt.button {
			t.Errorf("mouseButton(%v) = (%v,%v), want (%v,%v)", tt.mask, pressed, button, tt.pressed, tt.button)
		}
	}
}

func TestDriverFocusTogglesVisibility(t *testing.T) {
	d, sky := newTestDriver(t, Config{})
	d.handleEvent(tcell.NewEventFocus(false))
	if sky.Visible() {
		t.Error("sky should be hidden after focus loss")
	}
	if !sky.Scheduler().Paused() {
		t.Error("scheduler should pause while hidden")
	}
	d.handleEvent(tcell.NewEventFocus(true))
	if !sky.Visible() {
		t.Error("sky should be visible after focus gain")
	}
}

func TestDriverDraw(t *testing.T) {
	d, sky := newTestDriver(t, Config{Twilight: true})
	d.resize(80, 24)
	sky.SpawnFirework(starburst.FireworkRing, starburst.NewPoint(320, 192))
	d.draw()
}
