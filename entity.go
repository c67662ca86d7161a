package starburst

// Entity is anything the sky ticks and draws. Update advances one logical
// tick; a nil bounds skips boundary collisions. Draw must not change state.
// Alive reports false once the entity is inert, after which the sky culls it.
type Entity interface {
	Update(bounds *Rect)
	Draw(s Surface)
	Alive() bool
}

// Mover is an entity integrated with velocity and acceleration every tick.
type Mover interface {
	Velocity() Vec2
	SetVelocity(v Vec2)
	Acceleration() Vec2
	SetAcceleration(a Vec2)
}

// Stepper is an entity that loses a fraction of its size per collision.
type Stepper interface {
	Steps() int
	SetSteps(n int) error
	ApplySteps()
}

// Collider is an entity whose boundary collisions can be checked and
// applied separately from Update.
type Collider interface {
	CheckCollisions(bounds Rect) error
	ApplyCollisions() error
	CollidedX() bool
	CollidedY() bool
}

// Trailer is an entity that can leave a trail.
type Trailer interface {
	EnableTrail(cfg TrailConfig)
	DisableTrail()
	TrailLen() int
}

var (
	_ Entity   = (*Circle)(nil)
	_ Mover    = (*Circle)(nil)
	_ Stepper  = (*Circle)(nil)
	_ Collider = (*Circle)(nil)
	_ Trailer  = (*Circle)(nil)

	_ Entity  = (*Polygon)(nil)
	_ Mover   = (*Polygon)(nil)
	_ Stepper = (*Polygon)(nil)
	_ Trailer = (*Polygon)(nil)
)
