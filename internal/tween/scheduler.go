package tween

import (
	"container/heap"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween drives one float32 from its value at start time to a target.
type Tween struct {
	target   *float32
	to       float32
	duration time.Duration
	tw       *gween.Tween
	onDone   func()
	done     bool
}

// Done reports whether the tween has reached its end value.
func (tw *Tween) Done() bool {
	return tw.done
}

// Duration returns the configured duration.
func (tw *Tween) Duration() time.Duration {
	return tw.duration
}

type timer struct {
	wake time.Duration
	seq  uint64
	fn   func()
}

type timerHeap []timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].wake == h[j].wake {
		return h[i].seq < h[j].seq
	}
	return h[i].wake < h[j].wake
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]
	return t
}

// Scheduler owns every running tween and pending delayed call. It has no goroutines:
// the frame loop calls Advance once per tick and all callbacks run inside that call.
type Scheduler struct {
	now    time.Duration
	tweens []*Tween
	timers timerHeap
	seq    uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's accumulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Active returns the number of running tweens.
func (s *Scheduler) Active() int {
	return len(s.tweens)
}

// Pending returns the number of delayed calls not yet fired.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// To starts interpolating *target from its current value to `to` over d along fn
// (ease.Linear when nil). onDone runs once, after *target has been set exactly to `to`.
func (s *Scheduler) To(target *float32, to float32, d time.Duration, fn ease.TweenFunc, onDone func()) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	tw := &Tween{
		target:   target,
		to:       to,
		duration: d,
		tw:       gween.New(*target, to, float32(d.Seconds()), fn),
		onDone:   onDone,
	}
	s.tweens = append(s.tweens, tw)
	return tw
}

// After runs fn once the scheduler has advanced by at least d.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.seq++
	heap.Push(&s.timers, timer{wake: s.now + d, seq: s.seq, fn: fn})
}

// Advance moves time forward by dt, updates every tween, then fires due timers in
// wake order. Tweens or timers created by callbacks start at the new time.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.now += dt
	step := float32(dt.Seconds())

	// Snapshot: callbacks may append new tweens which must not be stepped this tick
	running := s.tweens
	s.tweens = nil
	var finished []*Tween
	for _, tw := range running {
		if tw.advance(step) {
			finished = append(finished, tw)
			continue
		}
		s.tweens = append(s.tweens, tw)
	}
	for _, tw := range finished {
		if tw.onDone != nil {
			tw.onDone()
		}
	}

	for len(s.timers) > 0 && s.timers[0].wake <= s.now {
		t := heap.Pop(&s.timers).(timer)
		t.fn()
	}
}

// advance moves the tween by dt seconds, writes its value and reports whether it
// completed
func (tw *Tween) advance(dt float32) bool {
	if tw.duration <= 0 {
		*tw.target = tw.to
		tw.done = true
		return true
	}
	v, finished := tw.tw.Update(dt)
	if finished {
		v = tw.to
		tw.done = true
	}
	*tw.target = v
	return finished
}
