package animation

import (
	"fmt"

	"github.com/matt-g-everett/keyframe/rgb"
)

// Positioner is a target with a mutable integer position.
type Positioner interface {
	Position() (x, y int)
	SetPosition(x, y int)
}

// Colorer is a target with a single mutable colour, such as a text label.
type Colorer interface {
	SetColor(c rgb.Color)
}

// Paletted is a target exposing a palette that behaviours write in place.
type Paletted interface {
	Palette() rgb.Palette
}

// Handle refers to a target held in a Stage. The zero Handle refers to no
// target at all.
type Handle struct {
	index      int // 1-based so the zero value is "none"
	generation uint32
}

// IsZero reports whether h refers to no target.
func (h Handle) IsZero() bool {
	return h.index == 0
}

func (h Handle) String() string {
	if h.IsZero() {
		return "handle(none)"
	}
	return fmt.Sprintf("handle(%d#%d)", h.index, h.generation)
}

type slot struct {
	target     interface{}
	generation uint32
	live       bool
}

// Stage owns references to the caller's animatable objects. Entries refer to
// targets by Handle so that a removed target is reported as dangling instead
// of being silently mutated.
type Stage struct {
	slots []slot
	free  []int
}

// NewStage creates an empty Stage.
func NewStage() *Stage {
	s := new(Stage)
	s.slots = make([]slot, 0, 8)
	return s
}

// Add places a target on the stage.
func (s *Stage) Add(target interface{}) Handle {
	if n := len(s.free); n > 0 {
		i := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[i].target = target
		s.slots[i].live = true
		return Handle{index: i + 1, generation: s.slots[i].generation}
	}

	s.slots = append(s.slots, slot{target: target, live: true})
	return Handle{index: len(s.slots)}
}

// Remove takes a target off the stage. Every Handle to it becomes dangling,
// including after its slot is reused.
func (s *Stage) Remove(h Handle) error {
	i, err := s.lookup(h)
	if err != nil {
		return err
	}
	s.slots[i] = slot{generation: s.slots[i].generation + 1}
	s.free = append(s.free, i)
	return nil
}

// Get resolves a handle. The zero Handle resolves to nil without error.
func (s *Stage) Get(h Handle) (interface{}, error) {
	if h.IsZero() {
		return nil, nil
	}
	i, err := s.lookup(h)
	if err != nil {
		return nil, err
	}
	return s.slots[i].target, nil
}

// Len returns the number of live targets.
func (s *Stage) Len() int {
	return len(s.slots) - len(s.free)
}

func (s *Stage) lookup(h Handle) (int, error) {
	i := h.index - 1
	if i < 0 || i >= len(s.slots) {
		return 0, &DanglingTargetError{Handle: h}
	}
	sl := s.slots[i]
	if !sl.live || sl.generation != h.generation {
		return 0, &DanglingTargetError{Handle: h}
	}
	return i, nil
}
