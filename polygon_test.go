package starburst

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func triangle() []Point {
	return []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
}

func TestPolygonDrawRelative(t *testing.T) {
	p := NewPolygon(PolygonConfig{Position: NewPoint(5, 5), Vertices: triangle()})

	var rec Recorder
	p.Draw(&rec)
	if len(rec.Ops) != 1 {
		t.Fatalf("ops = %d, want 1", len(rec.Ops))
	}
	want := [][]Vec2{{{5, 5}, {5, 5}, {15, 5}, {5, 15}}}
	if diff := cmp.Diff(want, rec.Ops[0].Contours, approx); diff != "" {
		t.Errorf("contours mismatch (-want +got):\n%s", diff)
	}
	if rec.Ops[0].Color != ColorWhite {
		t.Errorf("Color = %v, want white", rec.Ops[0].Color)
	}
}

func TestPolygonAbsoluteVerticesMove(t *testing.T) {
	p := NewPolygon(PolygonConfig{
		Position: NewPoint(5, 5),
		Vertices: triangle(),
		Mode:     VertexAbsolute,
		Velocity: Vec2{1, 0},
	})
	if diff := cmp.Diff([]Vec2{{5, 5}, {15, 5}, {5, 15}}, vecs(p.Vertices()), approx); diff != "" {
		t.Errorf("initial vertices (-want +got):\n%s", diff)
	}

	p.Update(nil)
	assertPoint(t, "anchor", p.Point, 6, 5)
	if diff := cmp.Diff([]Vec2{{6, 5}, {16, 5}, {6, 15}}, vecs(p.Vertices()), approx); diff != "" {
		t.Errorf("moved vertices (-want +got):\n%s", diff)
	}

	var rec Recorder
	p.Draw(&rec)
	want := [][]Vec2{{{6, 5}, {6, 5}, {16, 5}, {6, 15}}}
	if diff := cmp.Diff(want, rec.Ops[0].Contours, approx); diff != "" {
		t.Errorf("contours (-want +got):\n%s", diff)
	}
}

func vecs(ps []Point) []Vec2 {
	out := make([]Vec2, len(ps))
	for i, p := range ps {
		out[i] = p.Vec()
	}
	return out
}

func TestPolygonVirtualCenter(t *testing.T) {
	center := NewPoint(50, 50)
	p := NewPolygon(PolygonConfig{
		Position:      NewPoint(200, 100),
		Vertices:      shardVertices,
		VirtualCenter: &center,
	})
	if !p.Virtual() {
		t.Fatal("expected emitter mode")
	}
	want := []Vec2{{-50, 50}, {-50, -50}, {50, -50}, {50, 50}}
	if diff := cmp.Diff(want, vecs(p.Vertices()), approx); diff != "" {
		t.Errorf("vertices (-want +got):\n%s", diff)
	}

	var rec Recorder
	p.Draw(&rec)
	got := rec.Ops[0].Contours[0]
	if got[0] != (Vec2{150, 150}) {
		t.Errorf("outline starts at %v, want vertex 0 around the anchor {150 150}", got[0])
	}
	if len(got) != 4 {
		t.Errorf("outline has %d points, want 4", len(got))
	}
}

func TestPolygonLifetime(t *testing.T) {
	p := NewPolygon(PolygonConfig{Vertices: triangle(), Lifetime: 10.0 / TicksPerSecond})
	for range 5 {
		p.Update(nil)
	}
	assertNear(t, "half", p.LifetimeRatio(), 0.5)

	for range 5 {
		p.Update(nil)
	}
	if p.Alive() {
		t.Fatalf("ratio %v: want inert at end of lifetime", p.LifetimeRatio())
	}

	p.Update(nil)
	if p.Tick() != 10 {
		t.Errorf("inert polygon ticked to %d", p.Tick())
	}
	var rec Recorder
	p.Draw(&rec)
	if len(rec.Ops) != 0 {
		t.Errorf("inert polygon drew %d ops", len(rec.Ops))
	}
}

func TestPolygonWithoutLifetimeNeverExpires(t *testing.T) {
	p := NewPolygon(PolygonConfig{Vertices: triangle()})
	for range 1000 {
		p.Update(nil)
	}
	if !p.Alive() || p.LifetimeRatio() != 1 {
		t.Errorf("ratio = %v, want 1", p.LifetimeRatio())
	}
}

func TestPolygonAnimationPhases(t *testing.T) {
	p := NewPolygon(PolygonConfig{
		Vertices: triangle(),
		Animations: []*Animation{
			NewAnimation(SpinUpLogic(0.1), 20),
			NewAnimation(SpinLogic(0.1), 20),
			NewAnimation(SpinDownLogic(0.1), 20),
		},
	})
	checks := []struct {
		ticks int
		want  int
	}{
		{20, 3},
		{1, 2},
		{20, 2},
		{1, 1},
		{21, 0},
	}
	for _, c := range checks {
		for range c.ticks {
			p.Update(nil)
		}
		if p.Animations() != c.want {
			t.Fatalf("after tick %d: %d animations, want %d", p.Tick(), p.Animations(), c.want)
		}
	}
}

func TestPolygonDrawAppliesFrontAnimation(t *testing.T) {
	p := NewPolygon(PolygonConfig{Vertices: []Point{{X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}}})
	p.Animate(NewAnimation(ShrinkLogic, 2))
	p.Update(nil)

	var rec Recorder
	p.Draw(&rec)
	p.Draw(&rec)
	want := []Vec2{{0, 0}, {5, 0}, {0, 5}, {5, 5}}
	for i, op := range rec.Ops {
		if diff := cmp.Diff(want, op.Contours[0], approx); diff != "" {
			t.Errorf("draw %d (-want +got):\n%s", i, diff)
		}
	}
}

func TestPolygonTrail(t *testing.T) {
	center := shardCenter
	p := NewPolygon(PolygonConfig{
		Vertices:      shardVertices,
		VirtualCenter: &center,
		Velocity:      Vec2{3, 0},
		Trail:         &TrailConfig{Lifetime: 1, MaxLength: 4},
	})
	for range 10 {
		p.Update(nil)
	}
	if p.TrailLen() != 4 {
		t.Fatalf("TrailLen = %d, want 4", p.TrailLen())
	}
	snap := p.trail.items[0]
	if len(snap.vertices) != len(shardVertices) {
		t.Errorf("snapshot has %d vertices, want the outline only (%d)", len(snap.vertices), len(shardVertices))
	}
	if snap.Animations() != 1 {
		t.Errorf("snapshot animations = %d, want a shrink", snap.Animations())
	}

	var rec Recorder
	p.Draw(&rec)
	if len(rec.Ops) != 5 {
		t.Errorf("ops = %d, want polygon plus 4 snapshots", len(rec.Ops))
	}

	p.DisableTrail()
	if p.TrailLen() != 0 {
		t.Errorf("TrailLen after disable = %d", p.TrailLen())
	}
}

func TestPolygonSteps(t *testing.T) {
	p := NewPolygon(PolygonConfig{Vertices: triangle()})
	if err := p.SetSteps(MaxSteps + 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SetSteps = %v, want ErrInvalidArgument", err)
	}
	if err := p.SetSteps(5); err != nil || p.Steps() != 5 {
		t.Errorf("SetSteps(5) = %v, Steps = %d", err, p.Steps())
	}
}

func TestPolygonMotion(t *testing.T) {
	p := NewPolygon(PolygonConfig{Vertices: triangle(), Velocity: Vec2{1, 1}, Acceleration: Vec2{0, 1}})
	p.Update(nil)
	p.Update(nil)
	assertPoint(t, "anchor", p.Point, 2, 5)
	// Relative vertices stay put.
	if diff := cmp.Diff(vecs(triangle()), vecs(p.Vertices()), approx); diff != "" {
		t.Errorf("vertices (-want +got):\n%s", diff)
	}
}
