package starburst

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Interval is a [Min, Max] range of delays between spawns.
type Interval struct {
	Min, Max time.Duration
}

// NightConfig is the spawn schedule of a night sky.
type NightConfig struct {
	// Stars is the number of background stars seeded at start. Zero skips
	// seeding.
	Stars int
	// Disabled intervals (zero Min) never fire.
	ShootingStars Interval
	Fireworks     Interval
	Twinkle       Interval
	// Style is used for scheduled bursts and clicks. When Mixed is set each
	// burst picks a random style instead.
	Style FireworkStyle
	Mixed bool
	// ClickFireworks spawns a burst at every click.
	ClickFireworks bool
}

// DefaultNightConfig returns the stock schedule: 500 stars, shooting stars
// every 5-10 s, fireworks every 0.75-5 s and a twinkle every 1-2 s.
func DefaultNightConfig() NightConfig {
	return NightConfig{
		Stars:          500,
		ShootingStars:  Interval{5 * time.Second, 10 * time.Second},
		Fireworks:      Interval{750 * time.Millisecond, 5 * time.Second},
		Twinkle:        Interval{time.Second, 2 * time.Second},
		Style:          FireworkClassic,
		ClickFireworks: true,
	}
}

// Night is a running schedule. Stop cancels it.
type Night struct {
	tasks []*Task
	click CallbackHandle
	cfg   NightConfig
}

// Stop cancels every scheduled spawn and removes the click handler.
func (n *Night) Stop() {
	for _, t := range n.tasks {
		t.Cancel()
	}
	n.click.Remove()
}

// Config returns the schedule the night was started with.
func (n *Night) Config() NightConfig {
	return n.cfg
}

// Spawn regions, relative to the sky bounds at the time of the spawn.
func starRegion(b Rect) Rect {
	w, h := b.Dimensions.X, b.Dimensions.Y
	return NewRect(Vec2{0.01 * w, 20}, 0.99*w, h)
}

func shootingRegion(b Rect) Rect {
	w, h := b.Dimensions.X, b.Dimensions.Y
	return NewRect(Vec2{0.01 * w, 20}, 0.9*w, h/4)
}

func fireworkRegion(b Rect) Rect {
	w, h := b.Dimensions.X, b.Dimensions.Y
	return NewRect(Vec2{0.01 * w, 200}, 0.9*w, h/3)
}

// ScheduleNight registers the spawn intervals, seeds background stars and
// installs the click handler on sky. An invalid interval leaves sky
// untouched.
func ScheduleNight(sky *Sky, cfg NightConfig) (*Night, error) {
	n := &Night{cfg: cfg}

	style := func() FireworkStyle {
		if cfg.Mixed {
			return FireworkStyle(rand.IntN(int(FireworkShards) + 1))
		}
		return cfg.Style
	}

	intervals := []struct {
		name string
		iv   Interval
		fn   func()
	}{
		{"shooting stars", cfg.ShootingStars, func() { sky.SpawnShootingStars(shootingRegion(sky.Bounds())) }},
		{"fireworks", cfg.Fireworks, func() {
			sky.SpawnFirework(style(), fireworkRegion(sky.Bounds()).RandomPointWithin())
		}},
		{"twinkle", cfg.Twinkle, func() { sky.SpawnTwinkle(starRegion(sky.Bounds())) }},
	}
	for _, it := range intervals {
		if it.iv.Min == 0 {
			continue
		}
		t, err := sky.Scheduler().Every(it.iv.Min, it.iv.Max, it.fn)
		if err != nil {
			n.Stop()
			return nil, fmt.Errorf("starburst: schedule %s: %w", it.name, err)
		}
		n.tasks = append(n.tasks, t)
	}

	// Stars go in only once every interval has been accepted.
	if cfg.Stars > 0 {
		if err := sky.SeedStars(starRegion(sky.Bounds()), cfg.Stars); err != nil {
			n.Stop()
			return nil, err
		}
	}

	if cfg.ClickFireworks {
		n.click = sky.OnClick(func(ctx ClickContext) {
			sky.SpawnFirework(style(), NewPoint(ctx.X, ctx.Y))
		})
	}

	sky.log.Info().
		Int("stars", cfg.Stars).
		Int("tasks", len(n.tasks)).
		Str("style", cfg.Style.String()).
		Bool("mixed", cfg.Mixed).
		Msg("night scheduled")
	return n, nil
}
