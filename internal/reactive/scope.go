package reactive

import (
	"fmt"

	"go.uber.org/multierr"
)

// Scope is a stack of teardown callbacks. Close runs them in reverse order of
// registration, each exactly once.
type Scope struct {
	teardowns []func() error
}

// Defer registers a teardown that cannot fail.
func (s *Scope) Defer(fn func()) {
	s.teardowns = append(s.teardowns, func() error {
		fn()
		return nil
	})
}

// DeferErr registers a teardown that may fail.
func (s *Scope) DeferErr(fn func() error) {
	s.teardowns = append(s.teardowns, fn)
}

// Len returns the number of pending teardowns.
func (s *Scope) Len() int {
	return len(s.teardowns)
}

// Close pops and runs every pending teardown, last registered first.
// A failing or panicking teardown does not stop the others; all errors are
// combined. Closing an empty scope is a no-op, so Close is idempotent and the
// scope can be reused afterwards.
func (s *Scope) Close() error {
	var err error
	for len(s.teardowns) > 0 {
		last := len(s.teardowns) - 1
		fn := s.teardowns[last]
		s.teardowns = s.teardowns[:last]
		err = multierr.Append(err, runTeardown(fn))
	}
	return err
}

func runTeardown(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("teardown panicked: %v", r)
		}
	}()
	return fn()
}
