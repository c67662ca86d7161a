// stress launches a burst of every style every few ticks on top of
// thousands of background stars, with debug stats logged once a second. A
// stress test for the sky update and the path fill.
package main

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/phanxgames/starburst"
)

const (
	screenW = 1280
	screenH = 720
	stars   = 5_000
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(zerolog.DebugLevel)

	sky := starburst.NewSky(starburst.NewRect(starburst.Vec2{}, screenW, screenH))
	sky.SetLogger(log)
	sky.SetDebugMode(true)

	cfg := starburst.NightConfig{
		Stars:          stars,
		ShootingStars:  starburst.Interval{Min: 250 * time.Millisecond, Max: time.Second},
		Fireworks:      starburst.Interval{Min: 50 * time.Millisecond, Max: 200 * time.Millisecond},
		Twinkle:        starburst.Interval{Min: 25 * time.Millisecond, Max: 100 * time.Millisecond},
		Mixed:          true,
		ClickFireworks: true,
	}
	if _, err := starburst.ScheduleNight(sky, cfg); err != nil {
		log.Fatal().Err(err).Msg("schedule night")
	}

	// A salvo every five seconds: one burst of each style side by side.
	if _, err := sky.Scheduler().Every(5*time.Second, 5*time.Second, func() {
		b := sky.Bounds()
		for i, style := range []starburst.FireworkStyle{
			starburst.FireworkClassic, starburst.FireworkRing, starburst.FireworkShards,
		} {
			x := b.Dimensions.X * float64(i+1) / 4
			y := b.Dimensions.Y * (0.3 + 0.2*rand.Float64())
			sky.SpawnFirework(style, starburst.NewPoint(x, y))
		}
	}); err != nil {
		log.Fatal().Err(err).Msg("salvo")
	}

	if err := starburst.Run(sky, starburst.RunConfig{
		Title:   "starburst stress",
		Width:   screenW,
		Height:  screenH,
		ShowFPS: true,
	}); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}
