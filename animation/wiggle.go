package animation

import (
	"math"

	"github.com/matt-g-everett/keyframe/util"
)

var wiggleLuts = util.NewMemoizer()

// Wiggle jitters the target around its start position. Each axis follows a
// zig-zag table of XSteps (or YSteps) entries scaled so a full swing spans
// roughly DeltaX (or DeltaY) pixels. Two different prime step counts give a
// random looking path. An axis with no steps or no delta is left alone.
type Wiggle struct {
	DeltaX, DeltaY int
	XSteps, YSteps int
}

// Apply implements Behavior.
func (w Wiggle) Apply(ctx *Context) error {
	p, err := positioner("wiggle", ctx.Target)
	if err != nil {
		return err
	}
	if err := requireStart("wiggle", ctx); err != nil {
		return err
	}

	x, y := p.Position()
	elapsed := ctx.Frame - ctx.FrameStart
	if dx, ok := wiggleOffset(w.DeltaX, w.XSteps, elapsed); ok {
		x = ctx.X0 + dx
	}
	if dy, ok := wiggleOffset(w.DeltaY, w.YSteps, elapsed); ok {
		y = ctx.Y0 + dy
	}
	p.SetPosition(x, y)
	return nil
}

func wiggleOffset(delta, steps int, elapsed float64) (int, bool) {
	if steps <= 0 || delta == 0 {
		return 0, false
	}
	lut := util.GenerateWiggleLutMemoized(steps, wiggleLuts)
	if len(lut) == 0 {
		return 0, false
	}

	idx := int(math.Mod(elapsed, float64(len(lut))))
	if idx < 0 {
		idx += len(lut)
	}
	return round(float64(delta) / float64(steps) * float64(lut[idx])), true
}
