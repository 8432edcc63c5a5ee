package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matt-g-everett/keyframe/rgb"
)

func TestGroupPosition(t *testing.T) {
	g := NewGroup(3, 4)
	x, y := g.Position()
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)

	g.SetPosition(-1, 7)
	assert.Equal(t, "(-1,7)", g.String())
}

func TestShapeCopiesPalette(t *testing.T) {
	p := rgb.Palette{0, 0xFF0000}
	s := NewShape(1, 2, p)
	s.Palette()[1] = 0x00FF00

	assert.Equal(t, rgb.Color(0xFF0000), p[1])
	assert.Equal(t, "(1,2) [#000000 #00ff00]", s.String())

	s.SetPosition(5, 6)
	assert.Equal(t, 5, s.X)
}

func TestLabelColor(t *testing.T) {
	l := NewLabel(0, 0, 0xFFFFFF)
	l.SetColor(0x0000FF)
	assert.Equal(t, rgb.Color(0x0000FF), l.Color)
	assert.Equal(t, "(0,0) #0000ff", l.String())
}

func TestPaletteBuffer(t *testing.T) {
	p := NewPaletteBuffer(rgb.Palette{0x010101})
	p.Palette()[0] = 0x020202
	assert.Equal(t, "[#020202]", p.String())
}
