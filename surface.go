package starburst

import "math"

// Surface is the immediate-mode 2D drawing context entities draw onto.
// A path is started with BeginPath, traced with MoveTo, LineTo and Arc, and
// painted with Fill.
type Surface interface {
	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc centred at (x, y) from start to end radians.
	Arc(x, y, radius, start, end float64, counterClockwise bool)
	Fill(c Color)
}

// GradientFiller is implemented by surfaces that can paint a rectangle with
// a linear gradient. Only the background uses it.
type GradientFiller interface {
	FillGradient(r Rect, g LinearGradient)
}

// ColorStop is one stop of a LinearGradient. Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  Color
}

// LinearGradient interpolates colours along the line From → To.
type LinearGradient struct {
	From, To Vec2
	Stops    []ColorStop
}

// AddColorStop appends a stop. Stops must be added in ascending offset order.
func (g *LinearGradient) AddColorStop(offset float64, c Color) {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
}

// At returns the colour at parameter t along the gradient line.
func (g LinearGradient) At(t float64) Color {
	if len(g.Stops) == 0 {
		return Color{}
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return a.Color.Lerp(b.Color, (t-a.Offset)/span)
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}

// ColorAt returns the colour at point (x, y) by projecting it onto the
// gradient line.
func (g LinearGradient) ColorAt(x, y float64) Color {
	d := g.To.Sub(g.From)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return g.At(0)
	}
	t := ((x-g.From.X)*d.X + (y-g.From.Y)*d.Y) / l2
	return g.At(t)
}

// TwilightGradient is the night-sky background for a w×h viewport: black at
// the top, deep blue two thirds down, a red glow below the bottom edge.
func TwilightGradient(w, h float64) LinearGradient {
	g := LinearGradient{From: Vec2{w / 2, 0}, To: Vec2{w / 2, h * 1.4}}
	g.AddColorStop(0, Color{0, 0, 0, 1})
	g.AddColorStop(0.66, Color{9, 15, 45, 1})
	g.AddColorStop(1, Color{180, 50, 40, 1})
	return g
}

// --- Path ---

// Arc flattening: segments are about arcSegmentLength pixels long, clamped
// to [arcMinSegments, arcMaxSegments].
const (
	arcSegmentLength = 2.0
	arcMinSegments   = 8
	arcMaxSegments   = 64
)

// Path records the contours of a traced path with arcs flattened into line
// segments. It backs surfaces that rasterize on the CPU.
type Path struct {
	contours [][]Vec2
}

// Reset discards every contour.
func (p *Path) Reset() {
	p.contours = p.contours[:0]
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.contours = append(p.contours, []Vec2{{x, y}})
}

// LineTo extends the current contour to (x, y), starting one if needed.
func (p *Path) LineTo(x, y float64) {
	if len(p.contours) == 0 {
		p.MoveTo(x, y)
		return
	}
	last := len(p.contours) - 1
	p.contours[last] = append(p.contours[last], Vec2{x, y})
}

// Close ends the current contour. Contours are always treated as closed, so
// the next segment starts a new contour at the same point.
func (p *Path) Close() {
	if len(p.contours) == 0 {
		return
	}
	c := p.contours[len(p.contours)-1]
	if len(c) > 0 {
		p.MoveTo(c[0].X, c[0].Y)
	}
}

// Arc appends a flattened arc to the current contour.
func (p *Path) Arc(x, y, radius, start, end float64, counterClockwise bool) {
	sweep := end - start
	if counterClockwise {
		if sweep > 0 {
			sweep -= 2 * math.Pi
		}
		sweep = max(sweep, -2*math.Pi)
	} else {
		if sweep < 0 {
			sweep += 2 * math.Pi
		}
		sweep = min(sweep, 2*math.Pi)
	}
	n := int(math.Ceil(math.Abs(sweep) * max(radius, 1) / arcSegmentLength))
	n = min(max(n, arcMinSegments), arcMaxSegments)
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		sin, cos := math.Sincos(a)
		p.LineTo(x+cos*radius, y+sin*radius)
	}
}

// Contours returns the recorded contours with degenerate ones removed.
func (p *Path) Contours() [][]Vec2 {
	out := make([][]Vec2, 0, len(p.contours))
	for _, c := range p.contours {
		if len(c) >= 3 {
			out = append(out, c)
		}
	}
	return out
}

// Bounds returns the bounding box of every recorded point.
func (p *Path) Bounds() Rect {
	first := true
	var minX, minY, maxX, maxY float64
	for _, c := range p.contours {
		for _, v := range c {
			if first {
				minX, minY, maxX, maxY = v.X, v.Y, v.X, v.Y
				first = false
				continue
			}
			minX, maxX = min(minX, v.X), max(maxX, v.X)
			minY, maxY = min(minY, v.Y), max(maxY, v.Y)
		}
	}
	return Rect{X: minX, Y: minY, Dimensions: Vec2{maxX - minX, maxY - minY}}
}

// Contains reports whether (x, y) is inside the path using the non-zero
// winding rule.
func (p *Path) Contains(x, y float64) bool {
	winding := 0
	for _, c := range p.contours {
		if len(c) < 3 {
			continue
		}
		for i := range c {
			a := c[i]
			b := c[(i+1)%len(c)]
			if a.Y <= y {
				if b.Y > y && cross(a, b, x, y) > 0 {
					winding++
				}
			} else if b.Y <= y && cross(a, b, x, y) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// cross returns which side of segment a→b the point (x, y) lies on.
func cross(a, b Vec2, x, y float64) float64 {
	return (b.X-a.X)*(y-a.Y) - (x-a.X)*(b.Y-a.Y)
}

// --- Recorder ---

// FillOp is one recorded Fill call.
type FillOp struct {
	Contours [][]Vec2
	Color    Color
}

// Recorder is a Surface that records every fill. It draws nothing and is
// used for tests and headless runs.
type Recorder struct {
	Ops  []FillOp
	path Path
}

// BeginPath implements Surface.
func (r *Recorder) BeginPath() { r.path.Reset() }

// ClosePath implements Surface.
func (r *Recorder) ClosePath() { r.path.Close() }

// MoveTo implements Surface.
func (r *Recorder) MoveTo(x, y float64) { r.path.MoveTo(x, y) }

// LineTo implements Surface.
func (r *Recorder) LineTo(x, y float64) { r.path.LineTo(x, y) }

// Arc implements Surface.
func (r *Recorder) Arc(x, y, radius, start, end float64, ccw bool) {
	r.path.Arc(x, y, radius, start, end, ccw)
}

// Fill implements Surface.
func (r *Recorder) Fill(c Color) {
	r.Ops = append(r.Ops, FillOp{Contours: r.path.Contours(), Color: c})
}

// Reset drops every recorded op.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.path.Reset()
}
