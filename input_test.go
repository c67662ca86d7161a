package starburst

import "testing"

func click(s *Sky, id int, x, y float64, button MouseButton) {
	s.Pointer(id, x, y, true, button)
	s.Pointer(id, x, y, false, button)
}

func TestOnClick_FiresOnRelease(t *testing.T) {
	s := NewSky(NewRect(Vec2{}, 800, 600))
	var got []ClickContext
	s.OnClick(func(ctx ClickContext) { got = append(got, ctx) })

	s.Pointer(0, 10, 20, true, MouseButtonRight)
	if len(got) != 0 {
		t.Fatal("press alone should not click")
	}
	s.Pointer(0, 15, 25, true, MouseButtonRight)
	s.Pointer(0, 30, 40, false, MouseButtonLeft)

	if len(got) != 1 {
		t.Fatalf("clicks = %d, want 1", len(got))
	}
	want := ClickContext{X: 30, Y: 40, Button: MouseButtonRight, PointerID: 0}
	if got[0] != want {
		t.Errorf("click = %+v, want %+v", got[0], want)
	}
}

func TestOnClick_ReleaseWithoutPress(t *testing.T) {
	s := NewSky(NewRect(Vec2{}, 800, 600))
	n := 0
	s.OnClick(func(ClickContext) { n++ })
	s.Pointer(0, 10, 10, false, MouseButtonLeft)
	s.Pointer(0, 10, 10, false, MouseButtonLeft)
	if n != 0 {
		t.Errorf("clicks = %d, want 0", n)
	}
}

func TestOnClick_RegistrationOrder(t *testing.T) {
	s := NewSky(NewRect(Vec2{}, 800, 600))
	var order []int
	for i := range 3 {
		s.OnClick(func(ClickContext) { order = append(order, i) })
	}
	click(s, 0, 1, 1, MouseButtonLeft)
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order = %v", order)
	}
}

func TestCallbackHandle_Remove(t *testing.T) {
	s := NewSky(NewRect(Vec2{}, 800, 600))
	a, b := 0, 0
	ha := s.OnClick(func(ClickContext) { a++ })
	s.OnClick(func(ClickContext) { b++ })

	click(s, 0, 1, 1, MouseButtonLeft)
	ha.Remove()
	ha.Remove()
	click(s, 0, 1, 1, MouseButtonLeft)

	if a != 1 || b != 2 {
		t.Errorf("a = %d, b = %d, want 1 and 2", a, b)
	}

	var zero CallbackHandle
	zero.Remove()
}

func TestCallbackHandle_RemoveDuringClick(t *testing.T) {
	s := NewSky(NewRect(Vec2{}, 800, 600))
	var h CallbackHandle
	first, second := 0, 0
	h = s.OnClick(func(ClickContext) {
		first++
		h.Remove()
	})
	s.OnClick(func(ClickContext) { second++ })

	click(s, 0, 1, 1, MouseButtonLeft)
	click(s, 0, 1, 1, MouseButtonLeft)
	if first != 1 || second != 2 {
		t.Errorf("first = %d, second = %d, want 1 and 2", first, second)
	}
}

func TestPointer_Independent(t *testing.T) {
	s := NewSky(NewRect(Vec2{}, 800, 600))
	var ids []int
	s.OnClick(func(ctx ClickContext) { ids = append(ids, ctx.PointerID) })

	s.Pointer(1, 10, 10, true, MouseButtonLeft)
	s.Pointer(2, 20, 20, true, MouseButtonLeft)
	s.Pointer(2, 20, 20, false, MouseButtonLeft)
	s.Pointer(1, 10, 10, false, MouseButtonLeft)

	if len(ids) != 2 || ids[0] != 2 || ids[1] != 1 {
		t.Errorf("ids = %v, want [2 1]", ids)
	}
}

func TestPointer_OutOfRange(t *testing.T) {
	s := NewSky(NewRect(Vec2{}, 800, 600))
	n := 0
	s.OnClick(func(ClickContext) { n++ })
	for _, id := range []int{-1, maxPointers, 100} {
		click(s, id, 1, 1, MouseButtonLeft)
	}
	if n != 0 {
		t.Errorf("clicks = %d, want 0", n)
	}
}

func TestPointer_EmitsClickEvent(t *testing.T) {
	s, log := newTestSky()
	click(s, 0, 12, 34, MouseButtonMiddle)
	ev := log.ofType(EventClick)
	if len(ev) != 1 {
		t.Fatalf("click events = %d, want 1", len(ev))
	}
	if ev[0].X != 12 || ev[0].Y != 34 || ev[0].Count != 1 {
		t.Errorf("event = %+v", ev[0])
	}
}
