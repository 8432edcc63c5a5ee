package script

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/keyframe/animation"
	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/player"
	"github.com/matt-g-everett/keyframe/rgb"
	"github.com/matt-g-everett/keyframe/scene"
)

func build(t *testing.T, doc string) (*Scene, error) {
	t.Helper()
	s, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	return s.Build()
}

func TestLoadDemo(t *testing.T) {
	s, err := Load("testdata/demo.yaml")
	require.NoError(t, err)

	assert.Equal(t, player.Config{Frames: 100, Subframes: 15, DelayMs: 3, Reverse: true, Loops: 1, LoopDelayMs: 500}, s.Playback)
	assert.Len(t, s.Targets, 6)
	assert.Len(t, s.Entries, 12)

	sc, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "green", "blue", "cyan", "title", "backdrop"}, sc.Names)
	assert.Equal(t, 12, sc.Scheduler.Len())
	assert.Equal(t, 6, sc.Stage.Len())

	obj, err := sc.Target("backdrop")
	require.NoError(t, err)
	assert.Equal(t, rgb.Palette{0x101010, 0x202020, 0x303030}, obj.(*scene.PaletteBuffer).Colors)

	obj, err = sc.Target("title")
	require.NoError(t, err)
	assert.Equal(t, rgb.Color(0xFFFFFF), obj.(*scene.Label).Color)
}

func TestDemoPlaysForwardAndBack(t *testing.T) {
	s, err := Load("testdata/demo.yaml")
	require.NoError(t, err)
	sc, err := s.Build()
	require.NoError(t, err)

	cfg := s.Playback
	cfg.DelayMs = 0
	require.NoError(t, player.NewPlayer(cfg, sc.Scheduler).Run(nil))

	obj, err := sc.Target("red")
	require.NoError(t, err)
	red := obj.(*scene.Shape)
	// the reverse pass ends just after frame 0, back where red started
	assert.Equal(t, 50, red.X)
	assert.Equal(t, 20, red.Y)
	assert.Equal(t, rgb.Palette{0, 0xFF0000}, red.Shader)

	_, err = sc.Target("nobody")
	assert.Error(t, err)
}

func TestBuildTranslate(t *testing.T) {
	sc, err := build(t, `
targets:
  - {name: g, x: 50, y: 20}
entries:
  - {target: g, start: 0, end: 10, behavior: translate,
     params: {x1: 50, y1: 20, x2: 50, y2: 80, easing_y: linear_interpolation}}
`)
	require.NoError(t, err)

	require.NoError(t, sc.Scheduler.ExecuteFrame(5))
	obj, err := sc.Target("g")
	require.NoError(t, err)
	g := obj.(*scene.Group)
	assert.Equal(t, 50, g.X)
	assert.Equal(t, 50, g.Y)

	tr := sc.Scheduler.Entries()[0].Behavior.(animation.Translate)
	assert.Equal(t, 0.3, tr.EasingY(0.3))
}

func TestBuildFloatParamsAccepted(t *testing.T) {
	sc, err := build(t, `
targets: [{name: g}]
entries:
  - {target: g, start: 0, end: 1, behavior: wiggle, params: {delta_x: 4.0, xsteps: 3}}
`)
	require.NoError(t, err)
	w := sc.Scheduler.Entries()[0].Behavior.(animation.Wiggle)
	assert.Equal(t, animation.Wiggle{DeltaX: 4, XSteps: 3}, w)
}

func TestBuildMissingParameter(t *testing.T) {
	_, err := build(t, `
targets: [{name: g}]
entries:
  - {target: g, start: 0, end: 10, behavior: translate, params: {x1: 1, y1: 2, x2: 3}}
`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, animation.ErrMissingParameter))

	var missing *animation.MissingParameterError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "y2", missing.Name)
	assert.Contains(t, err.Error(), "entry 0")
}

func TestBuildUnknownParameter(t *testing.T) {
	_, err := build(t, `
targets: [{name: g}]
entries:
  - {target: g, start: 0, end: 10, behavior: translate_relative,
     params: {delta_x: 1, delta_y: 2, easing_function_x: quadratic_easeout}}
`)
	var unknown *UnknownParameterError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, []string{"easing_function_x"}, unknown.Names)
}

func TestBuildBadValues(t *testing.T) {
	cases := map[string]string{
		"easing": `
targets: [{name: g}]
entries: [{target: g, behavior: translate_relative, params: {delta_x: 1, delta_y: 1, easing_x: wobble}}]
`,
		"int": `
targets: [{name: g}]
entries: [{target: g, behavior: wiggle, params: {delta_x: 1.5}}]
`,
		"color": `
targets: [{name: l, kind: label}]
entries: [{target: l, behavior: color_morph_label, params: {start_color: red, end_color: 0}}]
`,
		"blend": `
targets: [{name: l, kind: label}]
entries: [{target: l, behavior: color_morph_label, params: {start_color: 0, end_color: 0, blend: rgb}}]
`,
		"palette": `
targets: [{name: p, kind: palette, palette: [0]}]
entries: [{target: p, behavior: color_morph_palette, params: {source: 0xff, end_color: 0}}]
`,
	}
	for name, doc := range cases {
		_, err := build(t, doc)
		assert.Error(t, err, name)
	}

	_, err := build(t, cases["easing"])
	var unknownEasing *easing.UnknownError
	assert.True(t, errors.As(err, &unknownEasing))

	_, err = build(t, cases["color"])
	assert.True(t, errors.Is(err, rgb.ErrInvalidColor))
}

func TestBuildTargetErrors(t *testing.T) {
	cases := []string{
		`targets: [{x: 1}]`,
		`targets: [{name: a}, {name: a}]`,
		`targets: [{name: a, kind: sprite}]`,
		`targets: [{name: a, kind: shape, palette: [0x1000000]}]`,
		`targets: [{name: a, kind: label, color: "#nothex"}]`,
		`entries: [{target: ghost, behavior: wiggle}]`,
		`entries: [{behavior: teleport}]`,
	}
	for _, doc := range cases {
		_, err := build(t, doc)
		assert.Error(t, err, doc)
	}
}

func TestBuildEntryWithoutTarget(t *testing.T) {
	sc, err := build(t, `entries: [{start: 0, end: 1, behavior: wiggle}]`)
	require.NoError(t, err)
	assert.True(t, sc.Scheduler.Entries()[0].Target.IsZero())
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("playback: {frames: 1, speed: 2}\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestColorMorphShapeDefaultsToFillSlot(t *testing.T) {
	sc, err := build(t, `
targets: [{name: s, kind: shape, palette: [0, 0xff0000]}]
entries:
  - {target: s, start: 0, end: 2, behavior: color_morph_vector_shape,
     params: {start_color: [255, 0, 0], end_color: "#0000ff"}}
`)
	require.NoError(t, err)
	require.NoError(t, sc.Scheduler.ExecuteFrame(2))

	obj, err := sc.Target("s")
	require.NoError(t, err)
	assert.Equal(t, rgb.Palette{0, 0x0000FF}, obj.(*scene.Shape).Shader)
}

func TestWritePalettes(t *testing.T) {
	sc, err := build(t, `
targets:
  - {name: g}
  - {name: s, kind: shape, palette: [0, 0xff0000]}
  - {name: l, kind: label, color: 0x00ff00}
  - {name: p, kind: palette, palette: [0x010203]}
entries:
  - {target: s, start: 0, end: 2, behavior: color_morph_vector_shape,
     params: {start_color: 0xff0000, end_color: 0x0000ff}}
`)
	require.NoError(t, err)
	require.NoError(t, sc.Scheduler.ExecuteFrame(2))

	var buf bytes.Buffer
	require.NoError(t, sc.WritePalettes(&buf))
	assert.Equal(t, []byte{
		2, 0, 0, 0, 0, 0, 0, 255,
		1, 0, 1, 2, 3,
	}, buf.Bytes())

	require.NoError(t, sc.Stage.Remove(sc.Targets["p"]))
	err = sc.WritePalettes(&buf)
	assert.True(t, errors.Is(err, animation.ErrDanglingTarget))
}
