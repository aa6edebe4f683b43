package engine

import (
	"sort"
	"time"
)

type task struct {
	due time.Duration
	fn  func()
}

// Scheduler runs one-shot continuations in virtual time. Time moves only
// when Advance is called, so a deferred continuation never blocks and
// headless runs stay deterministic.
type Scheduler struct {
	now   time.Duration
	tasks []task
}

// After schedules fn to run once d has elapsed.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.tasks = append(s.tasks, task{due: s.now + d, fn: fn})
}

// CancelAll drops every pending continuation.
func (s *Scheduler) CancelAll() {
	s.tasks = nil
}

// Advance moves virtual time forward by dt and runs every continuation that
// became due, earliest first (ties in scheduling order). It returns the
// number of continuations run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	var due []task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept

	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })
	for _, t := range due {
		t.fn()
	}
	return len(due)
}
