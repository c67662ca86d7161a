package sound

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/phanxgames/starburst"
)

const testRate = beep.SampleRate(8000)

// drain streams s to the end and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 256)
	for range 1000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("stream did not end")
	return nil
}

func rms(samples []float64) float64 {
	var sum float64
	for _, v := range samples {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func assertBounded(t *testing.T, samples []float64) {
	t.Helper()
	for i, v := range samples {
		if v < -1 || v > 1 || math.IsNaN(v) {
			t.Fatalf("sample %d out of range: %f", i, v)
		}
	}
}

func TestBangDecays(t *testing.T) {
	for _, size := range []float64{-1, 0, 0.5, 1, 3} {
		samples := drain(t, NewBang(testRate, size))
		if len(samples) != testRate.N(BangDuration) {
			t.Errorf("size %v: %d samples, want %d", size, len(samples), testRate.N(BangDuration))
		}
		assertBounded(t, samples)

		window := testRate.N(BangDuration) / 10
		head := rms(samples[:window])
		tail := rms(samples[len(samples)-window:])
		if tail >= head {
			t.Errorf("size %v: tail rms %f should be below head rms %f", size, tail, head)
		}
	}
}

func TestWhooshSwells(t *testing.T) {
	samples := drain(t, NewWhoosh(testRate))
	if len(samples) != testRate.N(WhooshDuration) {
		t.Fatalf("%d samples, want %d", len(samples), testRate.N(WhooshDuration))
	}
	assertBounded(t, samples)

	if samples[0] != 0 {
		t.Errorf("first sample = %f, want 0 (envelope starts silent)", samples[0])
	}
	n := len(samples)
	peak := rms(samples[n/10 : n*3/10])
	tail := rms(samples[n*9/10:])
	if tail >= peak {
		t.Errorf("tail rms %f should be below peak rms %f", tail, peak)
	}
}

func newTestPlayer(cfg Config) *Player {
	p := NewPlayer(cfg)
	p.enabled = true
	return p
}

func TestPlayerConfigDefaults(t *testing.T) {
	p := NewPlayer(Config{Volume: 5})
	def := DefaultConfig()
	if p.cfg.SampleRate != def.SampleRate || p.cfg.Buffer != def.Buffer || p.cfg.MaxVoices != def.MaxVoices {
		t.Errorf("cfg = %+v, want defaults", p.cfg)
	}
	if p.cfg.Volume != 1 {
		t.Errorf("volume = %v, want clamped to 1", p.cfg.Volume)
	}
}

func TestPlayerSilentUntilInit(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	p.EmitEvent(starburst.SkyEvent{Type: starburst.EventFirework, Count: 100})
	if p.Voices() != 0 {
		t.Errorf("voices = %d, want 0 before Init", p.Voices())
	}
	// Close without Init is a no-op.
	p.Close()
}

func TestPlayerEvents(t *testing.T) {
	p := newTestPlayer(Config{SampleRate: int(testRate)})

	p.EmitEvent(starburst.SkyEvent{Type: starburst.EventFirework, Count: 200})
	p.EmitEvent(starburst.SkyEvent{Type: starburst.EventShootingStar, Count: 3})
	p.EmitEvent(starburst.SkyEvent{Type: starburst.EventCull, Count: 50})
	p.EmitEvent(starburst.SkyEvent{Type: starburst.EventClick})

	if p.Voices() != 2 {
		t.Fatalf("voices = %d, want 2", p.Voices())
	}

	buf := make([][2]float64, 512)
	for range 2 * testRate.N(BangDuration) / len(buf) {
		p.Stream(buf)
	}
	if p.Voices() != 0 {
		t.Errorf("voices = %d after draining, want 0", p.Voices())
	}
}

func TestPlayerMaxVoices(t *testing.T) {
	p := newTestPlayer(Config{SampleRate: int(testRate), MaxVoices: 3})
	for range 10 {
		p.EmitEvent(starburst.SkyEvent{Type: starburst.EventFirework, Count: 10})
	}
	if p.Voices() != 3 {
		t.Errorf("voices = %d, want 3", p.Voices())
	}
}

func TestPlayerVisibilityPauses(t *testing.T) {
	p := newTestPlayer(Config{SampleRate: int(testRate)})
	p.EmitEvent(starburst.SkyEvent{Type: starburst.EventVisibility, Count: 0})
	if !p.Paused() {
		t.Fatal("player should pause when the sky is hidden")
	}
	p.EmitEvent(starburst.SkyEvent{Type: starburst.EventFirework, Count: 10})
	if p.Voices() != 0 {
		t.Errorf("voices = %d, want 0 while paused", p.Voices())
	}

	p.EmitEvent(starburst.SkyEvent{Type: starburst.EventVisibility, Count: 1})
	if p.Paused() {
		t.Error("player should resume when the sky is shown")
	}
}

func TestPlayerReceivesSkyEvents(t *testing.T) {
	p := newTestPlayer(Config{SampleRate: int(testRate)})
	sky := starburst.NewSky(starburst.NewRect(starburst.Vec2{}, 800, 600))
	sky.AddEventStore(p)

	sky.SpawnFirework(starburst.FireworkClassic, starburst.NewPoint(400, 300))
	if p.Voices() != 1 {
		t.Errorf("voices = %d, want 1", p.Voices())
	}
}
