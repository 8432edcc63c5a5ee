// Package scene provides simple animatable objects: positioned groups,
// palette shaded shapes, coloured labels and bare palettes.
package scene

import (
	"fmt"
	"strings"

	"github.com/matt-g-everett/keyframe/rgb"
)

// Group is a positioned container.
type Group struct {
	X, Y int
}

// NewGroup creates a Group at (x, y).
func NewGroup(x, y int) *Group {
	return &Group{X: x, Y: y}
}

// Position returns the group's coordinates.
func (g *Group) Position() (x, y int) {
	return g.X, g.Y
}

// SetPosition moves the group.
func (g *Group) SetPosition(x, y int) {
	g.X = x
	g.Y = y
}

func (g *Group) String() string {
	return fmt.Sprintf("(%d,%d)", g.X, g.Y)
}

// Shape is a group drawn through a palette. Index 0 is conventionally the
// transparent background and index 1 the fill.
type Shape struct {
	Group
	Shader rgb.Palette
}

// NewShape creates a Shape at (x, y) with a copy of palette.
func NewShape(x, y int, palette rgb.Palette) *Shape {
	return &Shape{Group: Group{X: x, Y: y}, Shader: palette.Clone()}
}

// Palette returns the shape's shader for in-place edits.
func (s *Shape) Palette() rgb.Palette {
	return s.Shader
}

func (s *Shape) String() string {
	return fmt.Sprintf("(%d,%d) [%s]", s.X, s.Y, strings.Join(s.Shader.Hex(), " "))
}

// Label is a group with a single text colour.
type Label struct {
	Group
	Color rgb.Color
}

// NewLabel creates a Label at (x, y).
func NewLabel(x, y int, c rgb.Color) *Label {
	return &Label{Group: Group{X: x, Y: y}, Color: c}
}

// SetColor changes the label colour.
func (l *Label) SetColor(c rgb.Color) {
	l.Color = c
}

func (l *Label) String() string {
	return fmt.Sprintf("(%d,%d) %s", l.X, l.Y, l.Color.Hex())
}

// PaletteBuffer is a palette with no position, such as one shared by several
// shapes.
type PaletteBuffer struct {
	Colors rgb.Palette
}

// NewPaletteBuffer creates a PaletteBuffer holding a copy of palette.
func NewPaletteBuffer(palette rgb.Palette) *PaletteBuffer {
	return &PaletteBuffer{Colors: palette.Clone()}
}

// Palette returns the buffer for in-place edits.
func (p *PaletteBuffer) Palette() rgb.Palette {
	return p.Colors
}

func (p *PaletteBuffer) String() string {
	return "[" + strings.Join(p.Colors.Hex(), " ") + "]"
}
