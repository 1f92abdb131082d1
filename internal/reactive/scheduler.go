// Package reactive provides explicit signals, derived cells and effects that
// re-run synchronously when their sources change.
//
// There is no ambient dependency tracking: every effect and computed cell is
// given its sources when it is created. Reactions queued while a Batch is open
// run once when the outermost Batch returns.
package reactive

import "fmt"

// maxRunsPerFlush bounds how often a single reaction may re-trigger itself
// within one flush before it is treated as a cycle.
const maxRunsPerFlush = 64

// Scheduler owns the flush queue shared by a group of signals.
// It is not safe for concurrent use; all reads and writes happen on the
// goroutine that drives the UI.
type Scheduler struct {
	depth    int
	flushing bool
	epoch    uint64
	pending  []*reaction
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Epoch returns the number of flushes that have started so far.
func (s *Scheduler) Epoch() uint64 {
	return s.epoch
}

// Batch runs fn with reactions deferred. Reactions triggered inside fn run
// once, after the outermost Batch returns.
func (s *Scheduler) Batch(fn func()) {
	s.depth++
	defer func() {
		s.depth--
		if s.depth == 0 {
			s.flush()
		}
	}()
	fn()
}

func (s *Scheduler) schedule(r *reaction) {
	if r.stopped || r.queued {
		return
	}
	r.queued = true
	s.pending = append(s.pending, r)
	if s.depth == 0 {
		s.flush()
	}
}

func (s *Scheduler) flush() {
	if s.flushing || len(s.pending) == 0 {
		return
	}
	s.flushing = true
	s.epoch++
	defer func() { s.flushing = false }()

	for len(s.pending) > 0 {
		r := s.pending[0]
		s.pending = s.pending[1:]
		r.queued = false
		if r.stopped {
			continue
		}
		if r.epoch != s.epoch {
			r.epoch = s.epoch
			r.runs = 0
		}
		r.runs++
		if r.runs > maxRunsPerFlush {
			for _, p := range s.pending {
				p.queued = false
			}
			s.pending = nil
			panic(fmt.Sprintf("reactive: reaction re-triggered more than %d times in one flush", maxRunsPerFlush))
		}
		r.fn()
	}
}

// reaction is a scheduled callback subscribed to one or more sources.
type reaction struct {
	sched   *Scheduler
	fn      func()
	queued  bool
	stopped bool
	epoch   uint64
	runs    int
}

func (r *reaction) invalidate() {
	r.sched.schedule(r)
}

// observer is notified when a source it watches changes.
type observer interface {
	invalidate()
}

// Source is a value that effects and computed cells can depend on.
type Source interface {
	observe(o observer) (cancel func())
}

// observers is an ordered subscriber list shared by signals and computed cells.
type observers struct {
	list []*observerEntry
}

type observerEntry struct {
	o observer
}

func (obs *observers) add(o observer) func() {
	e := &observerEntry{o: o}
	obs.list = append(obs.list, e)
	return func() {
		for i, cur := range obs.list {
			if cur == e {
				obs.list = append(obs.list[:i:i], obs.list[i+1:]...)
				return
			}
		}
	}
}

func (obs *observers) notify() {
	// Copy so observers may unsubscribe while being notified.
	snapshot := append([]*observerEntry(nil), obs.list...)
	for _, e := range snapshot {
		e.o.invalidate()
	}
}
