package starburst

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

// headerFadeSeconds is how long the header takes to fade after the first
// click.
const headerFadeSeconds = 1.5

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool
	// Header is drawn centred near the top and fades out after the first
	// click. Empty disables it.
	Header    string
	Resizable bool
	// ExitWhenScriptDone quits once an attached test runner has finished.
	ExitWhenScriptDone bool
}

// Run opens a window and drives sky at TicksPerSecond until the window is
// closed. Every Update runs exactly one logical tick; Draw runs every frame.
// When sky has no Background a twilight gradient sized to the window is
// used.
func Run(sky *Sky, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(TicksPerSecond)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := newGame(sky, cfg)
	sky.poll = sky.pollEbiten
	sky.log.Info().Int("w", cfg.Width).Int("h", cfg.Height).Msg("window starting")

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// game adapts a Sky to ebiten.Game.
type game struct {
	sky     *Sky
	cfg     RunConfig
	surface *ImageSurface
	fps     *fpsWidget

	header     string
	headerFace *text.GoXFace
	fade       *Fade

	autoBackground bool
	focused        bool
	w, h           int
}

func newGame(sky *Sky, cfg RunConfig) *game {
	g := &game{
		sky:            sky,
		cfg:            cfg,
		surface:        NewImageSurface(nil),
		header:         cfg.Header,
		autoBackground: sky.Background == nil,
		focused:        true,
	}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	if g.header != "" {
		g.headerFace = text.NewGoXFace(basicfont.Face7x13)
		g.fade = NewFade(headerFadeSeconds, ease.OutQuad)
		sky.OnClick(func(ClickContext) { g.fade.Start() })
	}
	return g
}

// Update runs one logical tick.
func (g *game) Update() error {
	if focused := ebiten.IsFocused(); focused != g.focused {
		g.focused = focused
		g.sky.SetVisible(focused)
	}

	g.sky.Update()

	dt := 1.0 / float64(ebiten.TPS())
	if g.fade != nil {
		g.fade.Update(float32(dt))
	}
	if g.fps != nil {
		g.fps.update(dt, g.sky)
	}

	if g.cfg.ExitWhenScriptDone && g.sky.testRunner != nil && g.sky.testRunner.Done() &&
		len(g.sky.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the sky, header and HUD, then writes queued screenshots.
func (g *game) Draw(screen *ebiten.Image) {
	t0 := time.Now()
	g.surface.SetTarget(screen)
	g.sky.Draw(g.surface)
	g.sky.recordDraw(time.Since(t0))

	g.drawHeader(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.sky.flushScreenshots(screen)
}

func (g *game) drawHeader(screen *ebiten.Image) {
	if g.fade == nil || g.fade.Done() {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(3, 3)
	op.GeoM.Translate(float64(g.w)/2, float64(g.h)/6)
	op.ColorScale.ScaleAlpha(float32(g.fade.Alpha()))
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, g.header, g.headerFace, op)
}

// Layout tracks the window size and resizes the sky bounds to match.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		w, h := float64(g.w), float64(g.h)
		g.sky.SetBounds(NewRect(Vec2{}, w, h))
		if g.autoBackground {
			bg := TwilightGradient(w, h)
			g.sky.Background = &bg
		}
	}
	return outsideWidth, outsideHeight
}
