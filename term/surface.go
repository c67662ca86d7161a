// Package term renders a starburst sky in a terminal with tcell.
//
// Each terminal cell covers CellWidth x CellHeight world units. Shapes are
// rasterized by sampling cell centres; shapes smaller than a cell still mark
// the cell under their centre so distant stars stay visible.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/starburst"
)

const (
	blockRune = '█'
	dotRune   = '·'
)

// Canvas is the part of tcell.Screen the surface draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Surface is a starburst.Surface backed by a terminal canvas.
type Surface struct {
	canvas       Canvas
	cellW, cellH float64
	path         starburst.Path

	// Background colour per row from the last gradient fill.
	rowBg []tcell.Color
}

var (
	_ starburst.Surface        = (*Surface)(nil)
	_ starburst.GradientFiller = (*Surface)(nil)
)

// NewSurface creates a surface over canvas. cellW and cellH are the world
// size of one cell; values <= 0 fall back to 1.
func NewSurface(canvas Canvas, cellW, cellH float64) *Surface {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Surface{canvas: canvas, cellW: cellW, cellH: cellH}
}

// WorldSize returns the world dimensions covered by the canvas.
func (s *Surface) WorldSize() (float64, float64) {
	cols, rows := s.canvas.Size()
	return float64(cols) * s.cellW, float64(rows) * s.cellH
}

// CellAt maps a world position to a cell.
func (s *Surface) CellAt(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

// CellCenter maps a cell to the world position of its centre.
func (s *Surface) CellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * s.cellW, (float64(cy) + 0.5) * s.cellH
}

// BeginPath implements starburst.Surface.
func (s *Surface) BeginPath() { s.path.Reset() }

// ClosePath implements starburst.Surface.
func (s *Surface) ClosePath() { s.path.Close() }

// MoveTo implements starburst.Surface.
func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }

// LineTo implements starburst.Surface.
func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }

// Arc implements starburst.Surface.
func (s *Surface) Arc(x, y, radius, start, end float64, ccw bool) {
	s.path.Arc(x, y, radius, start, end, ccw)
}

// Fill implements starburst.Surface. Cells whose centre lies inside the
// path get a full block. A path that covers no cell centre leaves a dot in
// the cell under its middle.
func (s *Surface) Fill(c starburst.Color) {
	if c.A <= 0 || len(s.path.Contours()) == 0 {
		return
	}
	cols, rows := s.canvas.Size()
	b := s.path.Bounds()
	fg := cellColor(c)

	x0, y0 := s.CellAt(b.X, b.Y)
	x1, y1 := s.CellAt(b.X+b.Dimensions.X, b.Y+b.Dimensions.Y)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, cols-1), min(y1, rows-1)

	hit := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			wx, wy := s.CellCenter(cx, cy)
			if s.path.Contains(wx, wy) {
				s.plot(cx, cy, blockRune, fg)
				hit = true
			}
		}
	}
	if hit {
		return
	}
	cx, cy := s.CellAt(b.X+b.Dimensions.X/2, b.Y+b.Dimensions.Y/2)
	if cx >= 0 && cx < cols && cy >= 0 && cy < rows {
		s.plot(cx, cy, dotRune, fg)
	}
}

// FillGradient implements starburst.GradientFiller. Every row is painted
// with the gradient colour sampled at the row's centre.
func (s *Surface) FillGradient(r starburst.Rect, g starburst.LinearGradient) {
	cols, rows := s.canvas.Size()
	if cap(s.rowBg) < rows {
		s.rowBg = make([]tcell.Color, rows)
	}
	s.rowBg = s.rowBg[:rows]

	x0, y0 := s.CellAt(r.X, r.Y)
	x1, y1 := s.CellAt(r.X+r.Dimensions.X, r.Y+r.Dimensions.Y)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, cols-1), min(y1, rows-1)

	for cy := y0; cy <= y1; cy++ {
		wx, wy := s.CellCenter(x0, cy)
		bg := cellColor(g.ColorAt(wx, wy))
		s.rowBg[cy] = bg
		style := tcell.StyleDefault.Background(bg)
		for cx := x0; cx <= x1; cx++ {
			s.canvas.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

// ResetBackground forgets the row colours of the last gradient fill.
func (s *Surface) ResetBackground() {
	s.rowBg = s.rowBg[:0]
}

func (s *Surface) plot(cx, cy int, r rune, fg tcell.Color) {
	style := tcell.StyleDefault.Foreground(fg)
	if cy < len(s.rowBg) {
		style = style.Background(s.rowBg[cy])
	}
	s.canvas.SetContent(cx, cy, r, nil, style)
}

// cellColor flattens c onto black by its alpha.
func cellColor(c starburst.Color) tcell.Color {
	a := starburst.Range{Min: 0, Max: 1}.Clamp(c.A)
	ch := func(v float64) int32 {
		return int32(math.Round(starburst.Range{Min: 0, Max: 255}.Clamp(v) * a))
	}
	return tcell.NewRGBColor(ch(c.R), ch(c.G), ch(c.B))
}
