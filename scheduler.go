package starburst

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Task is a scheduled callback. Cancel is its cancellation token.
type Task struct {
	fn       func()
	min, max time.Duration
	repeat   bool

	next      time.Duration // remaining until the next fire
	cancelled bool
}

// Cancel stops the task. It will not fire again.
func (t *Task) Cancel() {
	t.cancelled = true
}

// Cancelled reports whether Cancel was called or a one-shot task fired.
func (t *Task) Cancelled() bool {
	return t.cancelled
}

// Remaining returns the time left until the task fires.
func (t *Task) Remaining() time.Duration {
	return t.next
}

func (t *Task) roll() {
	if t.max <= t.min {
		t.next = t.min
		return
	}
	t.next = t.min + time.Duration(rand.Int64N(int64(t.max-t.min)+1))
}

// Scheduler runs interval and one-shot tasks against logical time. It is
// advanced explicitly, so hidden or paused skies accumulate no backlog.
// Not safe for concurrent use.
type Scheduler struct {
	tasks  []*Task
	paused bool
}

// Every schedules fn to run repeatedly. After each run a new interval is
// drawn uniformly from [min, max].
func (s *Scheduler) Every(min, max time.Duration, fn func()) (*Task, error) {
	if min <= 0 || max < min {
		return nil, fmt.Errorf("starburst: interval [%v, %v]: %w", min, max, ErrInvalidArgument)
	}
	t := &Task{fn: fn, min: min, max: max, repeat: true}
	t.roll()
	s.tasks = append(s.tasks, t)
	return t, nil
}

// After schedules fn to run once after d.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	t := &Task{fn: fn, min: max(d, 0), max: max(d, 0)}
	t.roll()
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves logical time forward by dt and runs every task that comes
// due, in registration order. A repeating task fires at most once per call.
func (s *Scheduler) Advance(dt time.Duration) {
	if s.paused {
		return
	}
	// Tasks added by callbacks wait for the next Advance.
	n := len(s.tasks)
	for i := 0; i < n; i++ {
		t := s.tasks[i]
		if t.cancelled {
			continue
		}
		t.next -= dt
		if t.next > 0 {
			continue
		}
		if t.repeat {
			t.roll()
		} else {
			t.cancelled = true
		}
		t.fn()
	}
	s.compact()
}

// compact drops cancelled tasks, keeping order.
func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Pause clears every running interval. Nothing fires until Resume.
func (s *Scheduler) Pause() {
	s.paused = true
}

// Resume restarts every interval from a freshly drawn delay.
func (s *Scheduler) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	for _, t := range s.tasks {
		if t.repeat {
			t.roll()
		}
	}
}

// Paused reports whether the scheduler is paused.
func (s *Scheduler) Paused() bool {
	return s.paused
}

// CancelAll cancels every task. They are dropped on the next Advance.
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.Cancel()
	}
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}
