package starburst

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- White pixel singleton (no sync.Once, the sky is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image. The
// gradient bands sample it and take their colour from the vertices.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// gradientRows is the number of horizontal bands a gradient fill is split
// into. Colours are interpolated linearly inside each band.
const gradientRows = 32

// ImageSurface is a Surface that draws onto an Ebitengine image. Paths are
// filled with vector.FillPath using the non-zero winding rule, so concave
// and self-intersecting outlines fill the same way they do on every other
// surface. Ebitengine batches consecutive fills until the target is next
// used.
type ImageSurface struct {
	target *ebiten.Image

	// path mirrors vpath with flattened contours; an empty or degenerate
	// path is skipped without touching the GPU.
	path  Path
	vpath vector.Path

	fillOpts  vector.FillOptions
	drawOpts  vector.DrawPathOptions
	fillCount int

	verts []ebiten.Vertex
	inds  []uint32
}

// NewImageSurface creates a surface drawing onto target. A nil target
// traces and counts fills without drawing.
func NewImageSurface(target *ebiten.Image) *ImageSurface {
	return &ImageSurface{
		target:   target,
		fillOpts: vector.FillOptions{FillRule: vector.FillRuleNonZero},
		drawOpts: vector.DrawPathOptions{AntiAlias: true},
		verts:    make([]ebiten.Vertex, 0, 2*(gradientRows+1)),
		inds:     make([]uint32, 0, 6*gradientRows),
	}
}

// SetTarget switches the destination image and resets the fill count.
func (s *ImageSurface) SetTarget(target *ebiten.Image) {
	s.target = target
	s.fillCount = 0
}

// Fills returns the number of fills issued since the target was last set.
func (s *ImageSurface) Fills() int {
	return s.fillCount
}

// BeginPath implements Surface.
func (s *ImageSurface) BeginPath() {
	s.path.Reset()
	s.vpath.Reset()
}

// ClosePath implements Surface.
func (s *ImageSurface) ClosePath() {
	s.path.Close()
	s.vpath.Close()
}

// MoveTo implements Surface.
func (s *ImageSurface) MoveTo(x, y float64) {
	s.path.MoveTo(x, y)
	s.vpath.MoveTo(float32(x), float32(y))
}

// LineTo implements Surface.
func (s *ImageSurface) LineTo(x, y float64) {
	s.path.LineTo(x, y)
	s.vpath.LineTo(float32(x), float32(y))
}

// Arc implements Surface.
func (s *ImageSurface) Arc(x, y, radius, start, end float64, ccw bool) {
	s.path.Arc(x, y, radius, start, end, ccw)
	dir := vector.Clockwise
	if ccw {
		dir = vector.CounterClockwise
	}
	s.vpath.Arc(float32(x), float32(y), float32(radius), float32(start), float32(end), dir)
}

// Fill implements Surface.
func (s *ImageSurface) Fill(c Color) {
	r, g, b, a := premultiplied(c)
	if a == 0 || len(s.path.Contours()) == 0 {
		return
	}
	s.fillCount++
	if s.target == nil {
		return
	}
	s.drawOpts.ColorScale.Reset()
	s.drawOpts.ColorScale.Scale(r, g, b, a)
	vector.FillPath(s.target, &s.vpath, &s.fillOpts, &s.drawOpts)
}

// FillGradient implements GradientFiller. The rectangle is split into
// horizontal bands whose corner colours are sampled from g and drawn at
// once, underneath any fills that follow.
func (s *ImageSurface) FillGradient(rect Rect, g LinearGradient) {
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]

	x0, x1 := rect.X, rect.X+rect.Dimensions.X
	for row := 0; row <= gradientRows; row++ {
		y := rect.Y + rect.Dimensions.Y*float64(row)/gradientRows
		for _, x := range [2]float64{x0, x1} {
			r, gg, b, a := premultiplied(g.ColorAt(x, y))
			s.verts = append(s.verts, ebiten.Vertex{
				DstX: float32(x), DstY: float32(y),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: r, ColorG: gg, ColorB: b, ColorA: a,
			})
		}
	}
	for row := uint32(0); row < gradientRows; row++ {
		tl := row * 2
		// Two triangles per band: TL-TR-BL, TR-BR-BL.
		s.inds = append(s.inds, tl, tl+1, tl+2, tl+1, tl+3, tl+2)
	}

	if s.target == nil {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	s.target.DrawTriangles32(s.verts, s.inds, ensureWhitePixel(), &op)
}

// premultiplied converts c to premultiplied colour components.
func premultiplied(c Color) (r, g, b, a float32) {
	alpha := Range{0, 1}.Clamp(c.A)
	ch := func(v float64) float32 {
		return float32(Range{0, 255}.Clamp(v) / 255 * alpha)
	}
	return ch(c.R), ch(c.G), ch(c.B), float32(alpha)
}
