// Package sound plays synthesized effects for starburst sky events: a bang
// for every firework and a whoosh for every group of shooting stars.
//
// Usage:
//
//	p := sound.NewPlayer(sound.DefaultConfig())
//	if err := p.Init(); err != nil { ... }
//	defer p.Close()
//	sky.AddEventStore(p)
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/starburst"
)

// Config configures a Player.
type Config struct {
	SampleRate int
	// Buffer is the speaker buffer length. Longer is safer, shorter is
	// snappier.
	Buffer time.Duration
	// Volume is the linear master gain in [0, 1].
	Volume float64
	// MaxVoices caps the number of effects playing at once. Events beyond
	// it are dropped.
	MaxVoices int
}

// DefaultConfig returns 44.1 kHz, a 100 ms buffer, 60% volume and 12
// voices.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Buffer:     100 * time.Millisecond,
		Volume:     0.6,
		MaxVoices:  12,
	}
}

// bangCountScale is the burst size that produces the deepest bang.
const bangCountScale = 300

// Player is a starburst.EventStore that turns sky events into sound. Events
// arrive on the driver goroutine while the speaker streams on its own, so
// the mixer is guarded by a mutex.
type Player struct {
	mu      sync.Mutex
	cfg     Config
	sr      beep.SampleRate
	mixer   *beep.Mixer
	ctrl    *beep.Ctrl
	out     beep.Streamer
	enabled bool
}

var _ starburst.EventStore = (*Player)(nil)

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = DefaultConfig().Buffer
	}
	if cfg.MaxVoices <= 0 {
		cfg.MaxVoices = DefaultConfig().MaxVoices
	}
	cfg.Volume = min(max(cfg.Volume, 0), 1)

	p := &Player{
		cfg:   cfg,
		sr:    beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
	p.ctrl = &beep.Ctrl{Streamer: p.mixer}
	p.out = newVolume(p.ctrl, cfg.Volume)
	return p
}

// Init opens the speaker and starts streaming.
func (p *Player) Init() error {
	p.mu.Lock()
	if p.enabled {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	if err := speaker.Init(p.sr, p.sr.N(p.cfg.Buffer)); err != nil {
		return fmt.Errorf("sound: init speaker: %w", err)
	}
	speaker.Play(p)

	p.mu.Lock()
	p.enabled = true
	p.mu.Unlock()
	return nil
}

// Close stops every effect and closes the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	if !p.enabled {
		p.mu.Unlock()
		return
	}
	p.enabled = false
	p.mixer.Clear()
	p.mu.Unlock()

	speaker.Close()
}

// Stream implements beep.Streamer. The speaker calls it from its own
// goroutine.
func (p *Player) Stream(samples [][2]float64) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out.Stream(samples)
}

// Err implements beep.Streamer.
func (p *Player) Err() error { return nil }

// EmitEvent implements starburst.EventStore.
func (p *Player) EmitEvent(ev starburst.SkyEvent) {
	switch ev.Type {
	case starburst.EventFirework:
		p.play(NewBang(p.sr, float64(ev.Count)/bangCountScale))
	case starburst.EventShootingStar:
		p.play(NewWhoosh(p.sr))
	case starburst.EventVisibility:
		p.mu.Lock()
		p.ctrl.Paused = ev.Count == 0
		p.mu.Unlock()
	}
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || p.ctrl.Paused || p.mixer.Len() >= p.cfg.MaxVoices {
		return
	}
	p.mixer.Add(s)
}

// Voices returns the number of effects still playing.
func (p *Player) Voices() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// Paused reports whether output is paused because the sky is hidden.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctrl.Paused
}
