package animation

import (
	"fmt"

	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/rgb"
)

// ColorMorphShape fades one entry of a shape's palette from Start to End.
type ColorMorphShape struct {
	Start, End rgb.Color
	// Index is the palette slot that carries the shape's colour.
	Index   int
	Easing  easing.Func
	Blender rgb.Blender
}

// Apply implements Behavior.
func (m ColorMorphShape) Apply(ctx *Context) error {
	pt, ok := ctx.Target.(Paletted)
	if !ok {
		return &TargetCapabilityError{Behavior: "color_morph_vector_shape", Capability: "recolor palette", Target: ctx.Target}
	}
	palette := pt.Palette()
	if m.Index < 0 || m.Index >= len(palette) {
		return &TargetCapabilityError{
			Behavior:   "color_morph_vector_shape",
			Capability: fmt.Sprintf("recolor palette index %d", m.Index),
			Target:     ctx.Target,
		}
	}

	palette[m.Index] = rgb.OrLinear(m.Blender)(m.Start, m.End, easing.OrLinear(m.Easing)(ctx.Position))
	return nil
}

// ColorMorphLabel fades a label's colour from Start to End.
type ColorMorphLabel struct {
	Start, End rgb.Color
	Easing     easing.Func
	Blender    rgb.Blender
}

// Apply implements Behavior.
func (m ColorMorphLabel) Apply(ctx *Context) error {
	c, ok := ctx.Target.(Colorer)
	if !ok {
		return &TargetCapabilityError{Behavior: "color_morph_label", Capability: "set color", Target: ctx.Target}
	}

	c.SetColor(rgb.OrLinear(m.Blender)(m.Start, m.End, easing.OrLinear(m.Easing)(ctx.Position)))
	return nil
}

// ColorMorphPalette fades every colour of Source toward End and writes the
// results into the target palette at the same indices. Indices present in
// only one of the two palettes are skipped.
type ColorMorphPalette struct {
	Source  rgb.Palette
	End     rgb.Color
	Easing  easing.Func
	Blender rgb.Blender
}

// Apply implements Behavior.
func (m ColorMorphPalette) Apply(ctx *Context) error {
	pt, ok := ctx.Target.(Paletted)
	if !ok {
		return &TargetCapabilityError{Behavior: "color_morph_palette", Capability: "recolor palette", Target: ctx.Target}
	}
	if m.Source == nil {
		return &MissingParameterError{Behavior: "color_morph_palette", Name: "source"}
	}

	fraction := easing.OrLinear(m.Easing)(ctx.Position)
	copy(pt.Palette(), m.Source.BlendTo(m.End, fraction, m.Blender))
	return nil
}
