package starburst

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// GenStars returns count static background stars with radii in [0, 1),
// scattered uniformly over region.
func GenStars(region Rect, count int) ([]*Circle, error) {
	if count < 1 {
		return nil, fmt.Errorf("starburst: star count %d: %w", count, ErrInvalidArgument)
	}
	out := make([]*Circle, count)
	for i := range out {
		out[i] = MustCircle(CircleConfig{
			Position: region.RandomPointWithin(),
			Radius:   rand.Float64(),
		})
	}
	return out, nil
}

// GenShootingStar returns one to four fast dots falling to the right with
// smooth trails. They start inside a small spawner rectangle placed at
// random within region.
func GenShootingStar(region Rect) []*Circle {
	w := Range{100, 150}.Random()
	h := Range{100, 150}.Random()
	spawner := NewRect(Vec2{
		X: region.X + rand.Float64()*max(region.Dimensions.X-w, 0),
		Y: region.Y + rand.Float64()*max(region.Dimensions.Y-h, 0),
	}, w, h)

	n := int(math.Ceil(rand.Float64()*3)) + 1
	out := make([]*Circle, n)
	for i := range out {
		mult := 1 + rand.Float64()
		out[i] = MustCircle(CircleConfig{
			Position:     spawner.RandomPointWithin(),
			Radius:       3,
			Velocity:     Vec2{13 * mult, 5 * mult},
			Acceleration: Vec2{0, 0.1},
			Steps:        1,
			Lifetime:     5,
			Trail:        &TrailConfig{Lifetime: 1, MaxLength: 10, Smooth: true},
		})
	}
	return out
}

// TwinklingStar returns a single star that fades over 20 seconds.
func TwinklingStar(region Rect) *Circle {
	return MustCircle(CircleConfig{
		Position: region.RandomPointWithin(),
		Radius:   3,
		Lifetime: 20,
	})
}
