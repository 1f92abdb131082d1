package reactive

// Computed is a pull-based cell derived from explicit sources. It recomputes
// lazily on the first Get after any source changed, so a read never observes
// a stale value.
type Computed[T any] struct {
	fn      func() T
	value   T
	dirty   bool
	subs    observers
	cancels []func()
}

// NewComputed creates a cell whose value is fn, recomputed when any of
// sources changes.
func NewComputed[T any](fn func() T, sources ...Source) *Computed[T] {
	c := &Computed[T]{fn: fn, dirty: true}
	for _, src := range sources {
		c.cancels = append(c.cancels, src.observe(c))
	}
	return c
}

// Get returns the current derived value.
func (c *Computed[T]) Get() T {
	if c.dirty {
		c.value = c.fn()
		c.dirty = false
	}
	return c.value
}

// Close detaches the cell from its sources.
func (c *Computed[T]) Close() {
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil
}

func (c *Computed[T]) invalidate() {
	c.dirty = true
	c.subs.notify()
}

func (c *Computed[T]) observe(o observer) func() {
	return c.subs.add(o)
}
