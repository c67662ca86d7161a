package starburst

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// DefaultSteps is the number of collisions a circle survives when
// CircleConfig.Steps is zero.
const DefaultSteps = 3

// MaxSteps is the largest accepted step count.
const MaxSteps = 127

// CircleConfig describes a new Circle.
type CircleConfig struct {
	Position Point
	Radius   float64
	// Color defaults to ColorWhite when left zero.
	Color        Color
	Velocity     Vec2
	Acceleration Vec2
	// Bounce scales the y velocity on each new vertical contact. Values <= 0
	// reflect at full speed.
	Bounce float64
	// Steps is the number of collisions before the radius reaches zero.
	// Zero means DefaultSteps; negative disables collision decay.
	Steps int
	// Lifetime in seconds. Zero means the radius never decays with time.
	Lifetime float64
	// RadiusThreshold is the radius at or below which the circle is inert.
	RadiusThreshold float64
	// Trail enables a trail when non-nil.
	Trail *TrailConfig
	// SeparateCollisions disables collision handling inside Update. The
	// caller drives it with CheckCollisions and ApplyCollisions instead.
	SeparateCollisions bool
}

// Circle is a round particle. Its radius shrinks with time when it has a
// lifetime and by one step per new boundary contact. Once the radius is at
// or below the threshold the circle is inert for good.
type Circle struct {
	Point

	radius         float64
	radiusOriginal float64
	threshold      float64
	color          Color
	velocity       Vec2
	acceleration   Vec2
	bounce         float64
	steps          int

	tick     int
	lifetime float64 // ticks

	separate             bool
	collidedX, collidedY bool
	changedX, changedY   bool

	trail *trail[*Circle]
}

// NewCircle creates a circle from cfg.
func NewCircle(cfg CircleConfig) (*Circle, error) {
	c := &Circle{
		Point:          NewPoint(cfg.Position.X, cfg.Position.Y),
		radius:         cfg.Radius,
		radiusOriginal: cfg.Radius,
		threshold:      cfg.RadiusThreshold,
		color:          cfg.Color,
		velocity:       cfg.Velocity,
		acceleration:   cfg.Acceleration,
		bounce:         cfg.Bounce,
		steps:          DefaultSteps,
		separate:       cfg.SeparateCollisions,
	}
	if c.color == (Color{}) {
		c.color = ColorWhite
	}
	if cfg.Steps != 0 {
		if err := c.SetSteps(cfg.Steps); err != nil {
			return nil, err
		}
	}
	c.SetLifetime(cfg.Lifetime)
	if cfg.Trail != nil {
		c.EnableTrail(*cfg.Trail)
	}
	return c, nil
}

// MustCircle is like NewCircle but panics on error.
func MustCircle(cfg CircleConfig) *Circle {
	c, err := NewCircle(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// Alive reports whether the radius is above the threshold.
func (c *Circle) Alive() bool {
	return c.radius > c.threshold
}

// Update advances the circle by one tick. bounds may be nil to skip
// boundary collisions. Inert circles are left untouched.
func (c *Circle) Update(bounds *Rect) {
	if !c.Alive() {
		return
	}

	c.tick++
	if c.lifetime > 0 {
		c.radius *= (c.lifetime - float64(c.tick)) / c.lifetime
	}

	c.applyTrail()

	if !c.separate {
		if bounds != nil {
			c.checkCollisions(*bounds)
		} else {
			c.collidedX, c.collidedY = false, false
		}
		c.applyCollisions()
	}

	c.velocity = c.velocity.Add(c.acceleration)
	c.X += c.velocity.X
	c.Y += c.velocity.Y
}

// Draw fills the disc and then the trail. Inert circles draw nothing.
func (c *Circle) Draw(s Surface) {
	if !c.Alive() {
		return
	}
	s.BeginPath()
	s.Arc(c.X, c.Y, c.radius, 0, 2*math.Pi, false)
	s.Fill(c.color)

	if c.trail != nil {
		c.trail.draw(s)
	}
}

func (c *Circle) applyTrail() {
	if c.trail == nil {
		return
	}
	if c.trail.cfg.Smooth {
		if last, ok := c.trail.newest(); ok {
			c.trail.push(c.snapshot((last.X+c.X)/2, (last.Y+c.Y)/2))
		}
	}
	c.trail.push(c.snapshot(c.X, c.Y))
	c.trail.update()
}

func (c *Circle) snapshot(x, y float64) *Circle {
	s := &Circle{
		Point:          NewPoint(x, y),
		radius:         c.radius,
		radiusOriginal: c.radius,
		color:          c.color,
		steps:          DefaultSteps,
	}
	s.lifetime = c.trail.lifetimeTicks()
	return s
}

// checkCollisions compares against the far edges as absolute coordinates
// and the left edge. The top edge is never tested.
func (c *Circle) checkCollisions(b Rect) {
	if !c.Alive() {
		return
	}
	c.collidedY = c.Y+c.radius > b.Dimensions.Y
	c.collidedX = c.X+c.radius > b.Dimensions.X || c.X-c.radius < b.X
}

func (c *Circle) applyCollisions() {
	if c.collidedY {
		if !c.changedY {
			f := c.bounce
			if f <= 0 {
				f = 1
			}
			c.velocity.Y = -c.velocity.Y * f
			c.changedY = true
			c.ApplySteps()
		}
	} else {
		c.changedY = false
	}

	if c.collidedX {
		if !c.changedX {
			c.velocity.X = -c.velocity.X
			c.changedX = true
			c.ApplySteps()
		}
	} else {
		c.changedX = false
	}
}

// CheckCollisions tests the circle against bounds. It is only allowed when
// the circle was created with SeparateCollisions.
func (c *Circle) CheckCollisions(bounds Rect) error {
	if !c.separate {
		return fmt.Errorf("starburst: check collisions without separate collision logic: %w", ErrInvariantViolation)
	}
	c.checkCollisions(bounds)
	return nil
}

// ApplyCollisions applies the response for the last CheckCollisions. It is
// only allowed when the circle was created with SeparateCollisions.
func (c *Circle) ApplyCollisions() error {
	if !c.separate {
		return fmt.Errorf("starburst: apply collisions without separate collision logic: %w", ErrInvariantViolation)
	}
	c.applyCollisions()
	return nil
}

// CollidedX reports whether the last check found a horizontal contact.
func (c *Circle) CollidedX() bool { return c.collidedX }

// CollidedY reports whether the last check found a vertical contact.
func (c *Circle) CollidedY() bool { return c.collidedY }

// ApplySteps shrinks the radius by one step. No-op when steps < 1.
func (c *Circle) ApplySteps() {
	if c.steps < 1 {
		return
	}
	c.radius -= c.radiusOriginal / float64(c.steps)
}

// SetSteps sets the number of collisions the circle survives.
func (c *Circle) SetSteps(n int) error {
	if n > MaxSteps {
		return fmt.Errorf("starburst: step count %d exceeds %d: %w", n, MaxSteps, ErrInvalidArgument)
	}
	c.steps = n
	return nil
}

// Steps returns the step count.
func (c *Circle) Steps() int { return c.steps }

// SetLifetime sets the lifetime in seconds. Zero disables decay.
func (c *Circle) SetLifetime(seconds float64) {
	c.lifetime = seconds * TicksPerSecond
}

// Lifetime returns the lifetime in ticks.
func (c *Circle) Lifetime() float64 { return c.lifetime }

// Tick returns the number of updates applied.
func (c *Circle) Tick() int { return c.tick }

// EnableTrail starts a fresh trail.
func (c *Circle) EnableTrail(cfg TrailConfig) {
	c.trail = newTrail[*Circle](cfg)
}

// DisableTrail drops the trail and its snapshots.
func (c *Circle) DisableTrail() {
	c.trail = nil
}

// TrailLen returns the number of live trail snapshots.
func (c *Circle) TrailLen() int {
	return c.trail.len()
}

// Velocity returns the velocity in pixels per tick.
func (c *Circle) Velocity() Vec2 { return c.velocity }

// SetVelocity replaces the velocity.
func (c *Circle) SetVelocity(v Vec2) { c.velocity = v }

// Acceleration returns the acceleration in pixels per tick squared.
func (c *Circle) Acceleration() Vec2 { return c.acceleration }

// SetAcceleration replaces the acceleration.
func (c *Circle) SetAcceleration(a Vec2) { c.acceleration = a }

// Radius returns the current radius.
func (c *Circle) Radius() float64 { return c.radius }

// RadiusOriginal returns the radius the circle was created with.
func (c *Circle) RadiusOriginal() float64 { return c.radiusOriginal }

// RadiusThreshold returns the radius at or below which the circle is dead.
func (c *Circle) RadiusThreshold() float64 { return c.threshold }

// Color returns the fill colour.
func (c *Circle) Color() Color { return c.color }

// Bounce returns the factor applied to velocity on contact with a wall.
func (c *Circle) Bounce() float64 { return c.bounce }

// SetColor replaces the fill colour.
func (c *Circle) SetColor(col Color) { c.color = col }

// RandomPointWithin returns a random point inside the disc.
func (c *Circle) RandomPointWithin() Point {
	a := rand.Float64() * 2 * math.Pi
	d := c.radius * rand.Float64()
	return NewPoint(c.X+math.Cos(a)*d, c.Y+math.Sin(a)*d)
}
