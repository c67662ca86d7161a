package starburst

import (
	"math"
	"math/rand/v2"
	"time"
)

// TicksPerSecond is the fixed logical update rate. Lifetimes given in seconds
// are converted to ticks with this factor.
const TicksPerSecond = 40

// TickDuration is the wall-clock length of one logical tick.
const TickDuration = time.Second / TicksPerSecond

// Vec2 is a 2D vector used for velocities, accelerations, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect is an axis-aligned region anchored at (X, Y) with the given
// Dimensions. The coordinate system has its origin at the top-left, with Y
// increasing downward.
//
// When used as a collision boundary the far edges are Dimensions.X and
// Dimensions.Y taken as absolute coordinates, the left edge is X, and the
// top edge is never tested.
type Rect struct {
	X, Y       float64
	Dimensions Vec2
}

// NewRect creates a rectangle at pos. Negative dimensions are clamped to 0.
func NewRect(pos Vec2, width, height float64) Rect {
	r := Rect{X: pos.X, Y: pos.Y}
	r.SetDimensions(width, height)
	return r
}

// SetDimensions replaces the rectangle's size. Negative values are clamped to 0.
func (r *Rect) SetDimensions(width, height float64) {
	r.Dimensions = Vec2{max(width, 0), max(height, 0)}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Dimensions.X &&
		y >= r.Y && y <= r.Y+r.Dimensions.Y
}

// RandomPointWithin returns a uniformly distributed point in
// [X, X+Dimensions.X] × [Y, Y+Dimensions.Y].
func (r Rect) RandomPointWithin() Point {
	return NewPoint(
		Range{r.X, r.X + r.Dimensions.X}.Random(),
		Range{r.Y, r.Y + r.Dimensions.Y}.Random(),
	)
}

// Area returns Dimensions.X * Dimensions.Y.
func (r Rect) Area() float64 {
	return r.Dimensions.X * r.Dimensions.Y
}

// referenceArea is the viewport area at which SizeCoefficient returns 1.
const referenceArea = 1300 * 2560

// SizeCoefficient scales burst intensity to the viewport. It returns
// area / (1300*2560).
func SizeCoefficient(area float64) float64 {
	return area / referenceArea
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EventType identifies a kind of sky event.
type EventType uint8

const (
	EventFirework     EventType = iota // a burst was spawned
	EventShootingStar                  // shooting stars were spawned
	EventTwinkle                       // a twinkling star was spawned
	EventStars                         // background stars were seeded
	EventClick                         // the click handler fired
	EventCull                          // inert entities were removed
	EventVisibility                    // the sky was hidden or shown
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventFirework:
		return "firework"
	case EventShootingStar:
		return "shooting-star"
	case EventTwinkle:
		return "twinkle"
	case EventStars:
		return "stars"
	case EventClick:
		return "click"
	case EventCull:
		return "cull"
	case EventVisibility:
		return "visibility"
	default:
		return "unknown"
	}
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max).
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return min(max(v, r.Min), r.Max)
}
