package starburst

import "fmt"

// VertexMode selects how polygon vertices are interpreted.
type VertexMode uint8

const (
	// VertexRelative vertices are offsets from the anchor.
	VertexRelative VertexMode = iota
	// VertexAbsolute vertices are world coordinates that move with the
	// polygon's velocity.
	VertexAbsolute
)

// PolygonConfig describes a new Polygon.
type PolygonConfig struct {
	// Position is the anchor.
	Position Point
	// Vertices are copied. In VertexAbsolute mode they are given relative to
	// Position and converted to world coordinates.
	Vertices []Point
	Mode     VertexMode
	// VirtualCenter, when set, turns the polygon into an emitter: every
	// vertex becomes center+v, the center itself is appended as a final
	// vertex, and the shape is drawn around the anchor from vertex 0.
	VirtualCenter *Point
	// Color defaults to ColorWhite when left zero.
	Color        Color
	Velocity     Vec2
	Acceleration Vec2
	// Lifetime in seconds. Zero means the polygon never expires.
	Lifetime   float64
	Animations []*Animation
	Trail      *TrailConfig
}

// Polygon is a filled shape anchored at a moving point, transformed by a
// queue of animations. It is inert once its lifetime ratio reaches zero.
type Polygon struct {
	Point

	vertices   []*Point
	mode       VertexMode
	virtual    bool
	animations AnimationQueue

	color        Color
	velocity     Vec2
	acceleration Vec2

	tick          int
	lifetime      float64 // ticks
	lifetimeRatio float64
	steps         int

	trail *trail[*Polygon]
}

// NewPolygon creates a polygon from cfg.
func NewPolygon(cfg PolygonConfig) *Polygon {
	p := &Polygon{
		Point:         NewPoint(cfg.Position.X, cfg.Position.Y),
		mode:          cfg.Mode,
		color:         cfg.Color,
		velocity:      cfg.Velocity,
		acceleration:  cfg.Acceleration,
		lifetime:      cfg.Lifetime * TicksPerSecond,
		lifetimeRatio: 1,
	}
	if p.color == (Color{}) {
		p.color = ColorWhite
	}

	p.vertices = make([]*Point, 0, len(cfg.Vertices)+1)
	for _, v := range cfg.Vertices {
		if p.mode == VertexAbsolute {
			v = v.Add(cfg.Position)
		}
		p.vertices = append(p.vertices, &Point{X: v.X, Y: v.Y})
	}
	if cfg.VirtualCenter != nil {
		p.SetVirtualCenter(*cfg.VirtualCenter)
	}

	p.animations.Push(cfg.Animations...)
	if cfg.Trail != nil {
		p.EnableTrail(*cfg.Trail)
	}
	return p
}

// SetVirtualCenter switches the polygon to emitter mode around center.
func (p *Polygon) SetVirtualCenter(center Point) {
	for _, v := range p.vertices {
		*v = NewPoint(center.X+v.X, center.Y+v.Y)
	}
	p.vertices = append(p.vertices, &Point{X: center.X, Y: center.Y})
	p.virtual = true
}

// Animate queues an animation behind the existing ones.
func (p *Polygon) Animate(a *Animation) {
	p.animations.Push(a)
}

// Alive reports whether the lifetime ratio is still positive.
func (p *Polygon) Alive() bool {
	return p.lifetimeRatio > 0
}

// Update advances the polygon by one tick. Bounds are accepted for
// interface symmetry and ignored.
func (p *Polygon) Update(_ *Rect) {
	if !p.Alive() {
		return
	}
	if p.trail != nil {
		p.trail.push(p.snapshot())
		p.trail.update()
	}

	p.tick++

	p.velocity = p.velocity.Add(p.acceleration)
	p.X += p.velocity.X
	p.Y += p.velocity.Y
	if p.mode == VertexAbsolute && !p.virtual {
		for _, v := range p.vertices {
			v.Translate(p.velocity.X, p.velocity.Y)
		}
	}

	if p.lifetime >= 1 {
		p.lifetimeRatio = (p.lifetime - float64(p.tick)) / p.lifetime
	}
	p.animations.Advance()
}

// Draw applies the playing animation to the vertices, fills the shape and
// then draws the trail.
func (p *Polygon) Draw(s Surface) {
	if !p.Alive() || len(p.vertices) == 0 {
		return
	}
	p.animations.Apply(p.vertices)

	s.BeginPath()
	switch {
	case p.virtual:
		s.MoveTo(p.vertices[0].X+p.X, p.vertices[0].Y+p.Y)
		for _, v := range p.vertices[1:] {
			s.LineTo(v.X+p.X, v.Y+p.Y)
		}
	case p.mode == VertexAbsolute:
		s.MoveTo(p.X, p.Y)
		for _, v := range p.vertices {
			s.LineTo(v.X, v.Y)
		}
	default:
		s.MoveTo(p.X, p.Y)
		for _, v := range p.vertices {
			s.LineTo(v.X+p.X, v.Y+p.Y)
		}
	}
	s.ClosePath()
	s.Fill(p.color)

	if p.trail != nil {
		p.trail.draw(s)
	}
}

// snapshot returns a trail piece at the anchor with the current shape,
// shrinking to nothing over the trail lifetime.
func (p *Polygon) snapshot() *Polygon {
	ticks := p.trail.lifetimeTicks()
	s := &Polygon{
		Point:         NewPoint(p.X, p.Y),
		mode:          VertexRelative,
		virtual:       p.virtual,
		color:         p.color,
		lifetime:      ticks,
		lifetimeRatio: 1,
		vertices:      make([]*Point, 0, len(p.vertices)),
	}
	for _, v := range p.vertices {
		x, y := v.X, v.Y
		if p.mode == VertexAbsolute && !p.virtual {
			x, y = x-p.X, y-p.Y
		}
		s.vertices = append(s.vertices, &Point{X: x, Y: y})
	}
	if s.virtual && len(s.vertices) > 0 {
		// The emitter center is not part of the outline.
		s.vertices = s.vertices[:len(s.vertices)-1]
	}
	s.animations.Push(NewAnimation(ShrinkLogic, int(ticks)))
	return s
}

// Vertices returns copies of the current vertex coordinates.
func (p *Polygon) Vertices() []Point {
	out := make([]Point, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = NewPoint(v.X, v.Y)
	}
	return out
}

// Mode returns the vertex mode.
func (p *Polygon) Mode() VertexMode { return p.mode }

// Virtual reports whether the polygon is in emitter mode.
func (p *Polygon) Virtual() bool { return p.virtual }

// Animations returns the number of queued animations.
func (p *Polygon) Animations() int { return p.animations.Len() }

// LifetimeRatio returns (lifetime - tick) / lifetime, or 1 for polygons
// without a lifetime.
func (p *Polygon) LifetimeRatio() float64 { return p.lifetimeRatio }

// Lifetime returns the lifetime in ticks.
func (p *Polygon) Lifetime() float64 { return p.lifetime }

// Tick returns the number of updates applied.
func (p *Polygon) Tick() int { return p.tick }

// Color returns the fill colour.
func (p *Polygon) Color() Color { return p.color }

// SetColor replaces the fill colour.
func (p *Polygon) SetColor(c Color) { p.color = c }

// Velocity returns the per-tick displacement of the anchor.
func (p *Polygon) Velocity() Vec2 { return p.velocity }

// SetVelocity replaces the velocity.
func (p *Polygon) SetVelocity(v Vec2) { p.velocity = v }

// Acceleration returns the per-tick change in velocity.
func (p *Polygon) Acceleration() Vec2 { return p.acceleration }

// SetAcceleration replaces the acceleration.
func (p *Polygon) SetAcceleration(a Vec2) { p.acceleration = a }

// Steps returns the stored step count. Polygons do not shrink on contact.
func (p *Polygon) Steps() int { return p.steps }

// SetSteps stores n. It only validates the range.
func (p *Polygon) SetSteps(n int) error {
	if n > MaxSteps {
		return fmt.Errorf("starburst: step count %d exceeds %d: %w", n, MaxSteps, ErrInvalidArgument)
	}
	p.steps = n
	return nil
}

// ApplySteps does nothing.
func (p *Polygon) ApplySteps() {}

// EnableTrail starts a fresh trail. Smooth is ignored for polygons.
func (p *Polygon) EnableTrail(cfg TrailConfig) {
	p.trail = newTrail[*Polygon](cfg)
}

// DisableTrail drops the trail.
func (p *Polygon) DisableTrail() {
	p.trail = nil
}

// TrailLen returns the number of live trail pieces.
func (p *Polygon) TrailLen() int {
	return p.trail.len()
}
