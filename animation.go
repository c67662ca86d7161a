package starburst

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimationLogic maps the animation's progress ratio and tick to the
// transform applied to every vertex of the owning polygon.
type AnimationLogic func(ratio float64, tick int) *Matrix2D

// Animation is a timed vertex transformation. Its ratio runs from 0 to 1
// over Duration ticks (1 to 0 when Reversed). Every Animate call transforms
// vertices from their original coordinates, so repeated evaluation on the
// same tick is idempotent.
type Animation struct {
	Logic    AnimationLogic
	Duration int
	Reversed bool
	// Ease optionally reshapes the ratio before it reaches Logic.
	Ease ease.TweenFunc

	tick  int
	ratio float64
}

// NewAnimation creates a forward animation lasting duration ticks. A
// duration below 1 is raised to 1.
func NewAnimation(logic AnimationLogic, duration int) *Animation {
	a := &Animation{Logic: logic, Duration: max(duration, 1)}
	a.applyRatio()
	return a
}

// NewReversedAnimation creates an animation whose ratio runs from 1 to 0.
func NewReversedAnimation(logic AnimationLogic, duration int) *Animation {
	a := &Animation{Logic: logic, Duration: max(duration, 1), Reversed: true}
	a.applyRatio()
	return a
}

// Update advances the animation by one tick and reports whether it is done.
func (a *Animation) Update() bool {
	a.tick++
	a.applyRatio()
	return a.Done()
}

// Animate applies the transform for the current ratio to every vertex and
// reports whether the animation is done.
func (a *Animation) Animate(vertices []*Point) bool {
	if a.Logic == nil {
		return a.Done()
	}
	m := a.Logic(a.easedRatio(), a.tick)
	if m == nil {
		return a.Done()
	}
	for _, v := range vertices {
		v.Transform(m)
	}
	return a.Done()
}

// Done reports whether the animation has run past its duration.
func (a *Animation) Done() bool {
	return a.tick > a.Duration
}

// Ratio returns the raw progress ratio.
func (a *Animation) Ratio() float64 {
	return a.ratio
}

// Tick returns the number of ticks elapsed.
func (a *Animation) Tick() int {
	return a.tick
}

func (a *Animation) applyRatio() {
	d := float64(a.Duration)
	remaining := (d - float64(a.tick)) / d
	if a.Reversed {
		a.ratio = remaining
	} else {
		a.ratio = 1 - remaining
	}
}

func (a *Animation) easedRatio() float64 {
	if a.Ease == nil || a.ratio < 0 || a.ratio > 1 {
		return a.ratio
	}
	return float64(a.Ease(float32(a.ratio), 0, 1, 1))
}

// --- Logic helpers ---

// ShrinkLogic scales vertices from full size down to nothing.
func ShrinkLogic(ratio float64, _ int) *Matrix2D {
	return Identity().Scale(1 - ratio)
}

// SpinUpLogic wobbles while growing from 0 to scale.
func SpinUpLogic(scale float64) AnimationLogic {
	return func(ratio float64, tick int) *Matrix2D {
		return Identity().Rotate(math.Sin(float64(tick))).Scale(scale * ratio)
	}
}

// SpinLogic spins at a constant scale.
func SpinLogic(scale float64) AnimationLogic {
	return func(_ float64, tick int) *Matrix2D {
		return Identity().Rotate(math.Sin(float64(tick)/2) * 2 * math.Pi).Scale(scale)
	}
}

// SpinDownLogic wobbles while shrinking from scale to 0.
func SpinDownLogic(scale float64) AnimationLogic {
	return func(ratio float64, tick int) *Matrix2D {
		return Identity().Rotate(math.Sin(float64(tick))).Scale(scale * (1 - ratio))
	}
}

// --- Queue ---

// AnimationQueue plays animations one at a time, oldest first. Only the
// front animation advances; it is dropped once done and the next one takes
// over on the following tick.
type AnimationQueue struct {
	items []*Animation
}

// Push appends animations to the back of the queue.
func (q *AnimationQueue) Push(anims ...*Animation) {
	q.items = append(q.items, anims...)
}

// Len returns the number of queued animations.
func (q *AnimationQueue) Len() int {
	return len(q.items)
}

// Front returns the playing animation, or nil when the queue is empty.
func (q *AnimationQueue) Front() *Animation {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

// Advance ticks the front animation and drops it when done.
func (q *AnimationQueue) Advance() {
	front := q.Front()
	if front == nil {
		return
	}
	if front.Update() {
		q.items[0] = nil
		q.items = q.items[1:]
	}
}

// Apply transforms vertices with the front animation.
func (q *AnimationQueue) Apply(vertices []*Point) {
	if front := q.Front(); front != nil {
		front.Animate(vertices)
	}
}

// --- Fade ---

// Fade tweens an alpha value from 1 to 0 once started. The window driver
// uses it to fade the header after the first click.
type Fade struct {
	tween   *gween.Tween
	alpha   float64
	started bool
	done    bool
}

// NewFade creates a fade lasting duration seconds with the given easing.
func NewFade(duration float32, fn ease.TweenFunc) *Fade {
	return &Fade{tween: gween.New(1, 0, duration, fn), alpha: 1}
}

// Start begins fading. Calling Start again has no effect.
func (f *Fade) Start() {
	f.started = true
}

// Started reports whether Start has been called.
func (f *Fade) Started() bool {
	return f.started
}

// Update advances the fade by dt seconds.
func (f *Fade) Update(dt float32) {
	if !f.started || f.done {
		return
	}
	val, finished := f.tween.Update(dt)
	f.alpha = float64(val)
	f.done = finished
}

// Done reports whether the fade has reached zero.
func (f *Fade) Done() bool {
	return f.done
}

// Alpha returns the current alpha in [0, 1].
func (f *Fade) Alpha() float64 {
	return f.alpha
}
