package sound

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Durations of the synthesized effects.
const (
	BangDuration   = 900 * time.Millisecond
	WhooshDuration = 600 * time.Millisecond
)

// bang is a noise crackle over a low thump, both decaying exponentially.
type bang struct {
	sr    beep.SampleRate
	pos   int
	decay float64
	thump float64
}

func (g *bang) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * g.decay)

		noise := rand.Float64()*2 - 1
		low := math.Sin(2 * math.Pi * g.thump * t)
		v := env * (0.55*noise + 0.45*low)

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *bang) Err() error { return nil }

// NewBang returns a firework bang. size in [0, 1] makes it deeper and
// longer; it is clamped.
func NewBang(sr beep.SampleRate, size float64) beep.Streamer {
	size = min(max(size, 0), 1)
	g := &bang{
		sr:    sr,
		decay: 9 - 4*size,
		thump: 90 - 40*size,
	}
	return beep.Take(sr.N(BangDuration), g)
}

// envelope scales a stream by a rise-then-fall curve peaking at peak
// (a fraction of the total length).
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	peak     float64
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, false
		}
		x := float64(e.pos) / float64(e.total)
		var vol float64
		if x < e.peak {
			vol = x / e.peak
		} else {
			vol = (1 - x) / (1 - e.peak)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// noise is white noise at the given amplitude.
type noise struct{ amp float64 }

func (g noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := g.amp * (rand.Float64()*2 - 1)
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (g noise) Err() error { return nil }

// NewWhoosh returns a shooting-star whoosh: soft noise with a faint high
// tone, swelling quickly and trailing off.
func NewWhoosh(sr beep.SampleRate) beep.Streamer {
	total := sr.N(WhooshDuration)
	parts := []beep.Streamer{noise{amp: 0.35}}
	if tone, err := generators.SineTone(sr, 1320); err == nil {
		parts = append(parts, newVolume(tone, 0.12))
	}
	mixed := beep.Take(total, beep.Mix(parts...))
	return &envelope{streamer: mixed, total: total, peak: 0.2}
}

// newVolume wraps s with a linear gain. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
