package icons

import (
	"fmt"

	"go.uber.org/zap"
)

// Selector owns the one active strategy of a component.
type Selector struct {
	factory     Factory
	logger      *zap.Logger
	active      Strategy
	connects    int
	disconnects int
}

// NewSelector creates a selector with no active strategy.
func NewSelector(factory Factory, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{factory: factory, logger: logger}
}

// Switch disconnects the active strategy, if any, then connects a new one of
// the kind selected by custom. A connect failure is returned as is; no other
// strategy is tried and the selector is left without an active strategy.
func (s *Selector) Switch(custom bool) error {
	s.release()

	kind := KindFor(custom)
	next := s.factory(kind)
	if err := next.Connect(); err != nil {
		s.logger.Warn("icon strategy failed to connect",
			zap.Stringer("kind", kind), zap.Error(err))
		return fmt.Errorf("connect %s icons: %w", kind, err)
	}
	s.active = next
	s.connects++
	s.logger.Debug("icon strategy connected", zap.Stringer("kind", kind))
	return nil
}

// Release disconnects the active strategy. It is a no-op when none is active.
func (s *Selector) Release() {
	s.release()
}

func (s *Selector) release() {
	if s.active == nil {
		return
	}
	prev := s.active
	s.active = nil
	prev.Disconnect()
	s.disconnects++
	s.logger.Debug("icon strategy disconnected", zap.Stringer("kind", prev.Kind()))
}

// Active returns the connected strategy, or nil.
func (s *Selector) Active() Strategy {
	return s.active
}

// Connects returns how many strategies have connected successfully.
func (s *Selector) Connects() int {
	return s.connects
}

// Disconnects returns how many strategies have been disconnected.
func (s *Selector) Disconnects() int {
	return s.disconnects
}
