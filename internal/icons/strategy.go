package icons

//go:generate mockgen -destination=mocks/mock_strategy.go -package=mocks . Strategy

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownSlot is returned when custom glyphs name a slot that does not exist.
var ErrUnknownSlot = errors.New("unknown icon slot")

// Kind identifies an icon strategy.
type Kind int

const (
	SlotBased       Kind = iota // user-supplied glyphs
	GeneratedLoader             // built-in style
)

// String returns the kind name for debugging.
func (k Kind) String() string {
	switch k {
	case SlotBased:
		return "slot-based"
	case GeneratedLoader:
		return "generated"
	default:
		return "unknown"
	}
}

// KindFor returns the strategy kind for the custom icons flag.
func KindFor(custom bool) Kind {
	if custom {
		return SlotBased
	}
	return GeneratedLoader
}

// Strategy supplies glyphs to a component's slots while connected.
type Strategy interface {
	Kind() Kind
	Connect() error
	Disconnect()
}

// SlotStrategy installs glyphs supplied by the user, keyed by slot name.
// Slots without a user glyph stay empty and render their fallback.
type SlotStrategy struct {
	slots  *Slots
	custom map[string]string
}

// NewSlotStrategy creates a strategy for the given user glyphs.
func NewSlotStrategy(slots *Slots, custom map[string]string) *SlotStrategy {
	return &SlotStrategy{slots: slots, custom: custom}
}

func (s *SlotStrategy) Kind() Kind { return SlotBased }

// Connect validates the user glyphs and installs them.
func (s *SlotStrategy) Connect() error {
	var set Set
	names := make([]string, 0, len(s.custom))
	for name := range s.custom {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		f := set.field(name)
		if f == nil {
			return fmt.Errorf("%w: %q", ErrUnknownSlot, name)
		}
		*f = s.custom[name]
	}
	s.slots.fill(s, set)
	return nil
}

// Disconnect removes the glyphs this strategy installed.
func (s *SlotStrategy) Disconnect() {
	s.slots.clear(s)
}

// LoaderStrategy installs the glyphs of a built-in style.
type LoaderStrategy struct {
	slots *Slots
	style Style
}

// NewLoaderStrategy creates a strategy generating icons for style.
func NewLoaderStrategy(slots *Slots, style Style) *LoaderStrategy {
	return &LoaderStrategy{slots: slots, style: style}
}

func (l *LoaderStrategy) Kind() Kind { return GeneratedLoader }

// Connect generates the style's set and installs it.
func (l *LoaderStrategy) Connect() error {
	set, err := Lookup(l.style)
	if err != nil {
		return err
	}
	l.slots.fill(l, set)
	return nil
}

// Disconnect removes the glyphs this strategy installed.
func (l *LoaderStrategy) Disconnect() {
	l.slots.clear(l)
}

// Factory builds a fresh strategy of the given kind.
type Factory func(kind Kind) Strategy

// DefaultFactory builds slot strategies from custom and loader strategies
// from style, both filling slots.
func DefaultFactory(slots *Slots, style Style, custom map[string]string) Factory {
	return func(kind Kind) Strategy {
		if kind == SlotBased {
			return NewSlotStrategy(slots, custom)
		}
		return NewLoaderStrategy(slots, style)
	}
}
