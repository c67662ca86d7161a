package starburst

import "math"

// Matrix2D is a 2×2 linear map described by its two basis columns. There is
// no translation component.
//
//	| I.X  J.X |
//	| I.Y  J.Y |
type Matrix2D struct {
	I, J Vec2
}

// Identity returns a new identity matrix.
func Identity() *Matrix2D {
	return &Matrix2D{I: Vec2{1, 0}, J: Vec2{0, 1}}
}

// NewMatrix2D creates a matrix from its basis columns.
func NewMatrix2D(i, j Vec2) *Matrix2D {
	return &Matrix2D{I: i, J: j}
}

// Apply maps (x, y) through the matrix.
func (m *Matrix2D) Apply(x, y float64) (float64, float64) {
	return m.I.X*x + m.J.X*y, m.I.Y*x + m.J.Y*y
}

// Multiply returns the point's current coordinates mapped through the matrix.
func (m *Matrix2D) Multiply(p Point) Point {
	x, y := m.Apply(p.X, p.Y)
	return NewPoint(x, y)
}

// Scale multiplies both basis columns by s in place.
func (m *Matrix2D) Scale(s float64) *Matrix2D {
	m.I = m.I.Scale(s)
	m.J = m.J.Scale(s)
	return m
}

// Rotate composes a rotation by radians with the current basis in place.
// On an identity matrix the columns become the unit vectors at radians and
// radians+π/2.
func (m *Matrix2D) Rotate(radians float64) *Matrix2D {
	sin, cos := math.Sincos(radians)
	sinJ, cosJ := math.Sincos(radians + math.Pi/2)
	r := Matrix2D{I: Vec2{cos, sin}, J: Vec2{cosJ, sinJ}}
	m.I = Vec2{r.I.X*m.I.X + r.J.X*m.I.Y, r.I.Y*m.I.X + r.J.Y*m.I.Y}
	m.J = Vec2{r.I.X*m.J.X + r.J.X*m.J.Y, r.I.Y*m.J.X + r.J.Y*m.J.Y}
	return m
}

// Determinant returns the matrix determinant.
func (m *Matrix2D) Determinant() float64 {
	return m.I.X*m.J.Y - m.J.X*m.I.Y
}
