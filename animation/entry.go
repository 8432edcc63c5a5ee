package animation

// Entry is one scheduled animation: a target, a frame window and the
// behaviour to run while the frame is inside that window.
type Entry struct {
	Target     Handle
	FrameStart float64
	FrameEnd   float64
	Behavior   Behavior

	startX, startY int
	started        bool
}

// Start returns the target position snapshotted at FrameStart. ok is false
// until the scheduler has executed the start frame for this entry.
func (e *Entry) Start() (x, y int, ok bool) {
	return e.startX, e.startY, e.started
}

// Window returns the entry's frame range.
func (e *Entry) Window() (start, end float64) {
	return e.FrameStart, e.FrameEnd
}

// Contains reports whether frame lies in the closed window.
func (e *Entry) Contains(frame float64) bool {
	return e.FrameStart <= frame && frame <= e.FrameEnd
}

// PositionAt returns the progress through the window. An empty or inverted
// window is always complete.
func (e *Entry) PositionAt(frame float64) float64 {
	length := e.FrameEnd - e.FrameStart
	if length <= 0 {
		return 1.0
	}
	return (frame - e.FrameStart) / length
}

func (e *Entry) snapshot(x, y int) {
	e.startX = x
	e.startY = y
	e.started = true
}
