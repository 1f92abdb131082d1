package reactive

// Signal holds a value and notifies its observers when the value changes.
type Signal[T comparable] struct {
	sched *Scheduler
	value T
	subs  observers
}

// NewSignal creates a signal bound to sched.
func NewSignal[T comparable](sched *Scheduler, initial T) *Signal[T] {
	return &Signal[T]{sched: sched, value: initial}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	return s.value
}

// Set stores v and notifies observers. Setting an equal value is a no-op.
func (s *Signal[T]) Set(v T) {
	if s.value == v {
		return
	}
	s.value = v
	s.sched.Batch(s.subs.notify)
}

// Update replaces the value with fn applied to the current value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Subscribe registers fn to run after every change. The returned function
// cancels the subscription and may be called more than once.
func (s *Signal[T]) Subscribe(fn func()) (cancel func()) {
	return watch(s.sched, fn, s)
}

func (s *Signal[T]) observe(o observer) func() {
	return s.subs.add(o)
}
