package starburst

import (
	"math"
	"math/rand/v2"
)

// Burst tuning shared by the generators.
const (
	classicShells      = 7
	burstLifetimeMin   = 8.0 // seconds
	burstLifetimeMax   = 16.0
	burstRadiusThresh  = 0.2
	burstSpeedDivisor  = 250.0
	shardSpeedDivisor  = 150.0
	shardLifetime      = 2.0 // seconds
	shardPhaseTicks    = 20
	shardTrailLifetime = 0.18
	shardTrailLength   = 4
	shardScale         = 0.1
)

// FireworkStyle selects a burst generator.
type FireworkStyle uint8

const (
	// FireworkClassic launches dots at random angles.
	FireworkClassic FireworkStyle = iota
	// FireworkRing launches evenly spaced rings.
	FireworkRing
	// FireworkShards launches rings plus spinning triangular shards.
	FireworkShards
)

// String returns the style name used on the command line.
func (s FireworkStyle) String() string {
	switch s {
	case FireworkClassic:
		return "classic"
	case FireworkRing:
		return "ring"
	case FireworkShards:
		return "shards"
	default:
		return "unknown"
	}
}

// ParseFireworkStyle is the inverse of FireworkStyle.String.
func ParseFireworkStyle(name string) (FireworkStyle, bool) {
	for _, s := range []FireworkStyle{FireworkClassic, FireworkRing, FireworkShards} {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// SpawnFirework runs the generator for style at pos. viewport scales the
// ring and shard intensity. Only FireworkShards returns polygons.
func SpawnFirework(style FireworkStyle, pos Point, viewport Rect) ([]*Circle, []*Polygon) {
	switch style {
	case FireworkRing:
		return GenFirework2At(pos, viewport), nil
	case FireworkShards:
		return GenFirework3At(pos, viewport)
	default:
		return GenFireworkAt(pos), nil
	}
}

// burstVelocity returns the launch velocity towards target. Dots that start
// further out move faster.
func burstVelocity(pos, target Point, divisor float64) Vec2 {
	dir := pos.Component(target)
	d := target.Distance(pos)
	return Vec2{dir.X * d / divisor, dir.Y * d / divisor}
}

// burstDot creates one firework dot.
func burstDot(pos Point, radius float64, c Color, lifetime float64, v Vec2) *Circle {
	return MustCircle(CircleConfig{
		Position:        pos,
		Radius:          radius,
		Color:           c,
		Velocity:        v,
		Steps:           1,
		Lifetime:        lifetime,
		RadiusThreshold: burstRadiusThresh,
	})
}

// GenFireworkAt returns a classic burst at pos: seven shells of 20 to 40
// dots, each shell with its own colour, intensity and lifetime.
func GenFireworkAt(pos Point) []*Circle {
	out := make([]*Circle, 0, classicShells*40)
	for range classicShells {
		count := int(math.Ceil(Range{20, 40}.Random()))
		c := RandColorMix(ColorWhite)
		intensity := Range{0, 1800}.Random()
		lifetime := Range{burstLifetimeMin, burstLifetimeMax}.Random()

		for range count {
			a := rand.Float64() * 2 * math.Pi
			target := NewPoint(pos.X+math.Cos(a)*intensity, pos.Y+math.Sin(a)*intensity)
			radius := Range{2, 12}.Random()
			out = append(out, burstDot(pos, radius, c, lifetime, burstVelocity(pos, target, burstSpeedDivisor)))
		}
	}
	return out
}

// GenFireworkWithin returns a classic burst at a random point in region.
func GenFireworkWithin(region Rect) []*Circle {
	return GenFireworkAt(region.RandomPointWithin())
}

// ringIntensity returns the intensity ceiling for a viewport.
func ringIntensity(base float64, viewport Rect) float64 {
	return Range{600, 2500}.Clamp(base * SizeCoefficient(viewport.Area()))
}

// GenFirework2At returns a ring burst at pos: five to nine shells, each a
// ring of 8 to 40 evenly spaced dots.
func GenFirework2At(pos Point, viewport Rect) []*Circle {
	return genRings(pos, viewport)
}

// GenFirework2Within returns a ring burst at a random point in region.
func GenFirework2Within(region, viewport Rect) []*Circle {
	return GenFirework2At(region.RandomPointWithin(), viewport)
}

func genRings(pos Point, viewport Rect) []*Circle {
	shells := 5 + rand.IntN(5)
	ceiling := ringIntensity(1800, viewport)

	var out []*Circle
	for range shells {
		c := RandColorMix(ColorWhite)
		intensity := Range{0, ceiling}.Random()
		lifetime := Range{burstLifetimeMin, burstLifetimeMax}.Random()
		segments := int(math.Round(rand.Float64()*32)) + 8
		radius := Range{3, 13}.Random()

		for i := range segments {
			a := float64(i) / float64(segments) * 2 * math.Pi
			target := NewPoint(pos.X+math.Cos(a)*intensity, pos.Y+math.Sin(a)*intensity)
			out = append(out, burstDot(pos, radius, c, lifetime, burstVelocity(pos, target, burstSpeedDivisor)))
		}
	}
	return out
}

// shardVertices is the shard outline before the virtual center shifts it.
var shardVertices = []Point{{X: -100, Y: 0}, {X: -100, Y: -100}, {X: 0, Y: -100}}

// shardCenter recentres the shard so it spins around its anchor.
var shardCenter = Point{X: 50, Y: 50}

// GenFirework3At returns a ring burst plus five to ten spinning shards.
// Each shard spins up, spins, then spins down over three 20-tick phases.
func GenFirework3At(pos Point, viewport Rect) ([]*Circle, []*Polygon) {
	circles := genRings(pos, viewport)

	count := int(math.Ceil(rand.Float64()*6)) + 4
	intensity := Range{0, ringIntensity(800, viewport)}.Random() + 500
	center := shardCenter

	shards := make([]*Polygon, 0, count)
	for i := range count {
		a := float64(i) / float64(count) * 2 * math.Pi
		target := NewPoint(pos.X+math.Cos(a)*intensity, pos.Y+math.Sin(a)*intensity)

		shards = append(shards, NewPolygon(PolygonConfig{
			Position:      pos,
			Vertices:      shardVertices,
			VirtualCenter: &center,
			Color:         RandColorMix(ColorWhite),
			Velocity:      burstVelocity(pos, target, shardSpeedDivisor),
			Lifetime:      shardLifetime,
			Animations: []*Animation{
				NewAnimation(SpinUpLogic(shardScale), shardPhaseTicks),
				NewAnimation(SpinLogic(shardScale), shardPhaseTicks),
				NewAnimation(SpinDownLogic(shardScale), shardPhaseTicks),
			},
			Trail: &TrailConfig{Lifetime: shardTrailLifetime, MaxLength: shardTrailLength},
		}))
	}
	return circles, shards
}
