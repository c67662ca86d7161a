package starburst

import "testing"

func TestInjectClick_QueuesTwoEvents(t *testing.T) {
	s := NewSky(NewRect(Vec2{}, 800, 600))
	s.InjectClick(100, 200)
	if s.PendingInjections() != 2 {
		t.Fatalf("pending = %d, want 2", s.PendingInjections())
	}
}

func TestInjectClick_ConsumedOnePerTick(t *testing.T) {
	s := NewSky(NewRect(Vec2{}, 800, 600))
	var got []ClickContext
	s.OnClick(func(ctx ClickContext) { got = append(got, ctx) })
	s.InjectClick(100, 200)

	s.Update()
	if s.PendingInjections() != 1 {
		t.Errorf("pending = %d after one tick, want 1", s.PendingInjections())
	}
	if len(got) != 0 {
		t.Fatal("press alone should not click")
	}

	s.Update()
	if s.PendingInjections() != 0 {
		t.Errorf("pending = %d, want 0", s.PendingInjections())
	}
	if len(got) != 1 {
		t.Fatalf("clicks = %d, want 1", len(got))
	}
	if got[0].X != 100 || got[0].Y != 200 || got[0].Button != MouseButtonLeft {
		t.Errorf("click = %+v", got[0])
	}
}

func TestInjectedInput_SkipsPoll(t *testing.T) {
	s := NewSky(NewRect(Vec2{}, 800, 600))
	polled := 0
	s.poll = func() { polled++ }

	s.InjectPress(1, 1)
	s.Update()
	if polled != 0 {
		t.Errorf("polled = %d while injecting, want 0", polled)
	}
	s.Update()
	if polled != 1 {
		t.Errorf("polled = %d, want 1", polled)
	}
}

func TestInjectRelease_WithoutPress(t *testing.T) {
	s := NewSky(NewRect(Vec2{}, 800, 600))
	n := 0
	s.OnClick(func(ClickContext) { n++ })
	s.InjectRelease(5, 5)
	if !s.processInjectedInput() {
		t.Fatal("expected an event to be consumed")
	}
	if s.processInjectedInput() {
		t.Error("queue should be empty")
	}
	if n != 0 {
		t.Errorf("clicks = %d, want 0", n)
	}
}
