// Package animation schedules keyframe animations against a caller supplied
// frame value. Nothing here keeps time: each ExecuteFrame call is a pure
// function of the frame, the entries and the cached start positions, so
// playback can run forward, backward or jump around.
package animation

// Context is what the Scheduler hands to a Behavior for one active entry.
type Context struct {
	// Position is the progress through the entry's window, in [0, 1].
	Position float64

	// Target is the resolved target, nil when the entry has none.
	Target interface{}

	// X0 and Y0 hold the target's position snapshotted at FrameStart. They
	// are only meaningful when Started is true.
	X0, Y0  int
	Started bool

	Frame      float64
	FrameStart float64
	FrameEnd   float64
}

// A Behavior mutates its target for one frame.
type Behavior interface {
	Apply(ctx *Context) error
}

// BehaviorFunc adapts a plain function to a Behavior.
type BehaviorFunc func(ctx *Context) error

// Apply calls f(ctx).
func (f BehaviorFunc) Apply(ctx *Context) error {
	return f(ctx)
}

func positioner(behavior string, target interface{}) (Positioner, error) {
	p, ok := target.(Positioner)
	if !ok {
		return nil, &TargetCapabilityError{Behavior: behavior, Capability: "set position", Target: target}
	}
	return p, nil
}

func requireStart(behavior string, ctx *Context) error {
	if !ctx.Started {
		return &MissingParameterError{Behavior: behavior, Name: "x0"}
	}
	return nil
}
