package animation

import (
	"math"
)

// Scheduler runs an ordered list of entries against caller supplied frames.
// It is not safe for concurrent use.
type Scheduler struct {
	stage   *Stage
	entries []*Entry

	// SnapshotTolerance widens the frame == FrameStart test that captures
	// start positions. Zero means exact equality.
	SnapshotTolerance float64
}

// NewScheduler creates an empty Scheduler resolving targets on stage.
func NewScheduler(stage *Stage) *Scheduler {
	s := new(Scheduler)
	if stage == nil {
		stage = NewStage()
	}
	s.stage = stage
	s.entries = make([]*Entry, 0, 16)
	return s
}

// Stage returns the stage targets are resolved on.
func (s *Scheduler) Stage() *Stage {
	return s.stage
}

// AddEntry appends an entry. Nothing is validated here; an unusable
// behaviour or target surfaces from ExecuteFrame.
func (s *Scheduler) AddEntry(target Handle, frameStart, frameEnd float64, behavior Behavior) *Entry {
	e := &Entry{
		Target:     target,
		FrameStart: frameStart,
		FrameEnd:   frameEnd,
		Behavior:   behavior,
	}
	s.entries = append(s.entries, e)
	return e
}

// Len returns the number of entries.
func (s *Scheduler) Len() int {
	return len(s.entries)
}

// Entries returns the entries in registration order.
func (s *Scheduler) Entries() []*Entry {
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// LastFrame returns the largest FrameEnd, or 0 with no entries.
func (s *Scheduler) LastFrame() float64 {
	last := 0.0
	for i, e := range s.entries {
		if i == 0 || e.FrameEnd > last {
			last = e.FrameEnd
		}
	}
	return last
}

// ExecuteFrame runs every entry whose window contains frame, in registration
// order, so later entries overwrite what earlier ones wrote to a shared
// target. An entry whose FrameStart equals frame first snapshots its target's
// position. The first failure stops the call and is returned as an
// *EntryError.
func (s *Scheduler) ExecuteFrame(frame float64) error {
	for i, e := range s.entries {
		if err := s.executeEntry(e, frame); err != nil {
			return &EntryError{Index: i, Frame: frame, Err: err}
		}
	}
	return nil
}

func (s *Scheduler) executeEntry(e *Entry, frame float64) error {
	atStart := s.atStart(e, frame)
	active := e.Contains(frame)
	if !atStart && !active {
		return nil
	}

	target, err := s.stage.Get(e.Target)
	if err != nil {
		return err
	}

	if atStart && target != nil {
		if p, ok := target.(Positioner); ok {
			x, y := p.Position()
			e.snapshot(x, y)
		}
	}

	if !active {
		return nil
	}
	if e.Behavior == nil {
		return &MissingParameterError{Behavior: "entry", Name: "behavior"}
	}

	ctx := Context{
		Position:   e.PositionAt(frame),
		Target:     target,
		X0:         e.startX,
		Y0:         e.startY,
		Started:    e.started,
		Frame:      frame,
		FrameStart: e.FrameStart,
		FrameEnd:   e.FrameEnd,
	}
	return e.Behavior.Apply(&ctx)
}

func (s *Scheduler) atStart(e *Entry, frame float64) bool {
	if s.SnapshotTolerance <= 0 {
		return frame == e.FrameStart
	}
	return math.Abs(frame-e.FrameStart) <= s.SnapshotTolerance
}
