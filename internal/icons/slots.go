package icons

// Slots holds the glyphs currently installed for a component. A strategy
// fills the slots on connect and clears them on disconnect.
type Slots struct {
	set   Set
	owner any
}

// NewSlots creates empty slots.
func NewSlots() *Slots {
	return &Slots{}
}

// Get returns the installed glyph for name, or the plain-text fallback when
// the slot is empty.
func (s *Slots) Get(name string) string {
	if g := s.set.Glyph(name); g != "" {
		return g
	}
	return Fallback(name)
}

// Set returns a copy of the installed glyphs.
func (s *Slots) Set() Set {
	return s.set
}

// Filled reports whether a strategy currently owns the slots.
func (s *Slots) Filled() bool {
	return s.owner != nil
}

func (s *Slots) fill(owner any, set Set) {
	s.owner = owner
	s.set = set
}

// clear empties the slots if owner installed the current glyphs.
func (s *Slots) clear(owner any) {
	if s.owner != owner {
		return
	}
	s.owner = nil
	s.set = Set{}
}
