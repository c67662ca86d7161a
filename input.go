package starburst

import "github.com/hajimehoshi/ebiten/v2"

// maxPointers is the number of tracked pointers: 0 is the mouse, 1-9 touch.
const maxPointers = 10

// ClickContext describes a click: a press followed by a release.
type ClickContext struct {
	X, Y      float64 // release position
	Button    MouseButton
	PointerID int
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	startX float64
	startY float64
	lastX  float64
	lastY  float64
	button MouseButton // button captured at press time
}

// --- Handler registry ---

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type clickRegistry struct {
	click  []clickHandler
	nextID uint32
}

// CallbackHandle allows removing a registered click callback.
type CallbackHandle struct {
	id  uint32
	reg *clickRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	for i, ch := range h.reg.click {
		if ch.id == h.id {
			h.reg.click = append(h.reg.click[:i], h.reg.click[i+1:]...)
			return
		}
	}
}

// OnClick registers fn to run for every click, in registration order.
func (s *Sky) OnClick(fn func(ClickContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.click = append(s.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers}
}

// Pointer feeds one pointer sample into the click state machine. Drivers
// without Ebitengine input (the terminal driver) call it directly.
func (s *Sky) Pointer(pointerID int, x, y float64, pressed bool, button MouseButton) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	s.processPointer(pointerID, x, y, pressed, button)
}

// processPointer runs the press/release state machine for a single pointer.
func (s *Sky) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
	case !pressed && ps.down:
		ps.down = false
		s.fireClick(ClickContext{X: x, Y: y, Button: ps.button, PointerID: pointerID})
	default:
		ps.lastX, ps.lastY = x, y
	}
}

func (s *Sky) fireClick(ctx ClickContext) {
	// Handlers may remove themselves.
	handlers := append([]clickHandler(nil), s.handlers.click...)
	for _, h := range handlers {
		h.fn(ctx)
	}
	s.emit(SkyEvent{Type: EventClick, X: ctx.X, Y: ctx.Y, Count: 1})
}

// --- Ebitengine input ---

// pollEbiten reads mouse and touch state. The window driver installs it as
// the sky's pointer source.
func (s *Sky) pollEbiten() {
	s.processMousePointer()
	s.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Sky) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	// If the pointer is already down, keep the button from the press.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Sky) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	// Lifted touches release their slot, which completes the click.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Sky) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}
