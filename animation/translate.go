package animation

import (
	"math"

	"github.com/matt-g-everett/keyframe/easing"
)

// Translate moves the target from (X1, Y1) to (X2, Y2) across the window.
// Separate easing per axis gives curved paths. It does not depend on the
// start snapshot, so it can be entered at any frame.
type Translate struct {
	X1, Y1, X2, Y2   int
	EasingX, EasingY easing.Func
}

// Apply implements Behavior.
func (t Translate) Apply(ctx *Context) error {
	p, err := positioner("translate", ctx.Target)
	if err != nil {
		return err
	}

	x := round(float64(t.X2-t.X1)*easing.OrLinear(t.EasingX)(ctx.Position)) + t.X1
	y := round(float64(t.Y2-t.Y1)*easing.OrLinear(t.EasingY)(ctx.Position)) + t.Y1
	p.SetPosition(x, y)
	return nil
}

// TranslateRelative moves the target by (DeltaX, DeltaY) from wherever it was
// at FrameStart. The start frame must have been executed first; playing in
// reverse therefore needs one pass through FrameStart beforehand.
type TranslateRelative struct {
	DeltaX, DeltaY   int
	EasingX, EasingY easing.Func
}

// Apply implements Behavior.
func (t TranslateRelative) Apply(ctx *Context) error {
	p, err := positioner("translate_relative", ctx.Target)
	if err != nil {
		return err
	}
	if err := requireStart("translate_relative", ctx); err != nil {
		return err
	}

	x := round(float64(t.DeltaX)*easing.OrLinear(t.EasingX)(ctx.Position)) + ctx.X0
	y := round(float64(t.DeltaY)*easing.OrLinear(t.EasingY)(ctx.Position)) + ctx.Y0
	p.SetPosition(x, y)
	return nil
}

// round halves to even so that offsets are symmetric around zero.
func round(v float64) int {
	return int(math.RoundToEven(v))
}
