package starburst

import "math"

// Point is a mutable 2D coordinate. The first call to Transform captures the
// current coordinates as the point's original; every later Transform is
// applied to that original, so transforms replace each other instead of
// compounding.
type Point struct {
	X, Y float64

	ox, oy  float64
	hasOrig bool
}

// NewPoint creates a point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec returns the point's current coordinates as a Vec2.
func (p Point) Vec() Vec2 {
	return Vec2{p.X, p.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return NewPoint(p.X+q.X, p.Y+q.Y)
}

// Multiply returns p scaled by s.
func (p Point) Multiply(s float64) Point {
	return NewPoint(p.X*s, p.Y*s)
}

// ComponentDifference returns p - q.
func (p Point) ComponentDifference(q Point) Point {
	return NewPoint(p.X-q.X, p.Y-q.Y)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Component returns the unit vector pointing from p towards q. When the two
// points coincide the zero vector is returned.
func (p Point) Component(q Point) Point {
	d := p.Distance(q)
	if d == 0 {
		return Point{}
	}
	return NewPoint((q.X-p.X)/d, (q.Y-p.Y)/d)
}

// Flip swaps X and Y.
func (p *Point) Flip() {
	p.X, p.Y = p.Y, p.X
}

// Original returns the coordinates that transforms are applied to.
func (p Point) Original() Point {
	if !p.hasOrig {
		return NewPoint(p.X, p.Y)
	}
	return NewPoint(p.ox, p.oy)
}

// Rebase makes the current coordinates the new original.
func (p *Point) Rebase() {
	p.ox, p.oy = p.X, p.Y
	p.hasOrig = true
}

// Translate moves both the current and the original coordinates, so a later
// Transform keeps the offset.
func (p *Point) Translate(dx, dy float64) {
	p.X += dx
	p.Y += dy
	if p.hasOrig {
		p.ox += dx
		p.oy += dy
	}
}

// Transform sets the point to m applied to its original coordinates and
// returns p for chaining.
func (p *Point) Transform(m *Matrix2D) *Point {
	if !p.hasOrig {
		p.Rebase()
	}
	p.X, p.Y = m.Apply(p.ox, p.oy)
	return p
}
