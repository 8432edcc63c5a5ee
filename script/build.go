package script

import (
	"io"

	"github.com/pkg/errors"

	"github.com/matt-g-everett/keyframe/animation"
	"github.com/matt-g-everett/keyframe/rgb"
	"github.com/matt-g-everett/keyframe/scene"
)

// Scene is a script turned into live objects ready to play.
type Scene struct {
	Stage     *animation.Stage
	Scheduler *animation.Scheduler
	Targets   map[string]animation.Handle
	// Names lists target names in declaration order.
	Names []string
}

// Target resolves a named target.
func (s *Scene) Target(name string) (interface{}, error) {
	h, ok := s.Targets[name]
	if !ok {
		return nil, errors.Errorf("unknown target %q", name)
	}
	return s.Stage.Get(h)
}

// WritePalettes writes the binary encoding of every paletted target's
// palette to w, in declaration order.
func (s *Scene) WritePalettes(w io.Writer) error {
	for _, name := range s.Names {
		obj, err := s.Target(name)
		if err != nil {
			return errors.Wrapf(err, "target %q", name)
		}
		pt, ok := obj.(animation.Paletted)
		if !ok {
			continue
		}
		data, err := pt.Palette().MarshalBinary()
		if err != nil {
			return errors.Wrapf(err, "target %q", name)
		}
		if _, err = w.Write(data); err != nil {
			return errors.Wrap(err, "write palette")
		}
	}
	return nil
}

type behaviorBuilder func(p *params) (animation.Behavior, error)

var behaviors = map[string]behaviorBuilder{
	"translate":                buildTranslate,
	"translate_relative":       buildTranslateRelative,
	"wiggle":                   buildWiggle,
	"color_morph_vector_shape": buildColorMorphShape,
	"color_morph_label":        buildColorMorphLabel,
	"color_morph_palette":      buildColorMorphPalette,
}

// Build creates the targets and entries the script declares.
func (s *Script) Build() (*Scene, error) {
	stage := animation.NewStage()
	sc := &Scene{
		Stage:     stage,
		Scheduler: animation.NewScheduler(stage),
		Targets:   make(map[string]animation.Handle, len(s.Targets)),
		Names:     make([]string, 0, len(s.Targets)),
	}

	for i, t := range s.Targets {
		if t.Name == "" {
			return nil, errors.Errorf("target %d has no name", i)
		}
		if _, dup := sc.Targets[t.Name]; dup {
			return nil, errors.Errorf("duplicate target %q", t.Name)
		}
		obj, err := newTarget(t)
		if err != nil {
			return nil, errors.Wrapf(err, "target %q", t.Name)
		}
		sc.Targets[t.Name] = stage.Add(obj)
		sc.Names = append(sc.Names, t.Name)
	}

	for i, e := range s.Entries {
		var h animation.Handle
		if e.Target != "" {
			var ok bool
			h, ok = sc.Targets[e.Target]
			if !ok {
				return nil, errors.Errorf("entry %d: unknown target %q", i, e.Target)
			}
		}

		build, ok := behaviors[e.Behavior]
		if !ok {
			return nil, errors.Errorf("entry %d: unknown behavior %q", i, e.Behavior)
		}
		p := newParams(e.Behavior, e.Params)
		b, err := build(p)
		if err == nil {
			err = p.finish()
		}
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}

		sc.Scheduler.AddEntry(h, e.Start, e.End, b)
	}

	return sc, nil
}

func newTarget(t Target) (interface{}, error) {
	switch t.Kind {
	case "", "group":
		return scene.NewGroup(t.X, t.Y), nil
	case "shape":
		palette, err := parsePalette(t.Palette)
		if err != nil {
			return nil, err
		}
		return scene.NewShape(t.X, t.Y, palette), nil
	case "label":
		var c rgb.Color
		if t.Color != nil {
			var err error
			if c, err = rgb.Parse(t.Color); err != nil {
				return nil, err
			}
		}
		return scene.NewLabel(t.X, t.Y, c), nil
	case "palette":
		palette, err := parsePalette(t.Palette)
		if err != nil {
			return nil, err
		}
		return scene.NewPaletteBuffer(palette), nil
	}
	return nil, errors.Errorf("unknown kind %q", t.Kind)
}

func buildTranslate(p *params) (animation.Behavior, error) {
	var b animation.Translate
	var err error
	if b.X1, err = p.requireInt("x1"); err != nil {
		return nil, err
	}
	if b.Y1, err = p.requireInt("y1"); err != nil {
		return nil, err
	}
	if b.X2, err = p.requireInt("x2"); err != nil {
		return nil, err
	}
	if b.Y2, err = p.requireInt("y2"); err != nil {
		return nil, err
	}
	if b.EasingX, err = p.optEasing("easing_x"); err != nil {
		return nil, err
	}
	if b.EasingY, err = p.optEasing("easing_y"); err != nil {
		return nil, err
	}
	return b, nil
}

func buildTranslateRelative(p *params) (animation.Behavior, error) {
	var b animation.TranslateRelative
	var err error
	if b.DeltaX, err = p.requireInt("delta_x"); err != nil {
		return nil, err
	}
	if b.DeltaY, err = p.requireInt("delta_y"); err != nil {
		return nil, err
	}
	if b.EasingX, err = p.optEasing("easing_x"); err != nil {
		return nil, err
	}
	if b.EasingY, err = p.optEasing("easing_y"); err != nil {
		return nil, err
	}
	return b, nil
}

func buildWiggle(p *params) (animation.Behavior, error) {
	var b animation.Wiggle
	var err error
	if b.DeltaX, err = p.optInt("delta_x", 0); err != nil {
		return nil, err
	}
	if b.DeltaY, err = p.optInt("delta_y", 0); err != nil {
		return nil, err
	}
	if b.XSteps, err = p.optInt("xsteps", 0); err != nil {
		return nil, err
	}
	if b.YSteps, err = p.optInt("ysteps", 0); err != nil {
		return nil, err
	}
	return b, nil
}

func buildColorMorphShape(p *params) (animation.Behavior, error) {
	var b animation.ColorMorphShape
	var err error
	if b.Start, err = p.requireColor("start_color"); err != nil {
		return nil, err
	}
	if b.End, err = p.requireColor("end_color"); err != nil {
		return nil, err
	}
	// slot 0 of a vector shape's palette is its transparent background
	if b.Index, err = p.optInt("index", 1); err != nil {
		return nil, err
	}
	if b.Easing, err = p.optEasing("easing"); err != nil {
		return nil, err
	}
	if b.Blender, err = p.optBlender("blend"); err != nil {
		return nil, err
	}
	return b, nil
}

func buildColorMorphLabel(p *params) (animation.Behavior, error) {
	var b animation.ColorMorphLabel
	var err error
	if b.Start, err = p.requireColor("start_color"); err != nil {
		return nil, err
	}
	if b.End, err = p.requireColor("end_color"); err != nil {
		return nil, err
	}
	if b.Easing, err = p.optEasing("easing"); err != nil {
		return nil, err
	}
	if b.Blender, err = p.optBlender("blend"); err != nil {
		return nil, err
	}
	return b, nil
}

func buildColorMorphPalette(p *params) (animation.Behavior, error) {
	var b animation.ColorMorphPalette
	var err error
	if b.Source, err = p.requirePalette("source"); err != nil {
		return nil, err
	}
	if b.End, err = p.requireColor("end_color"); err != nil {
		return nil, err
	}
	if b.Easing, err = p.optEasing("easing"); err != nil {
		return nil, err
	}
	if b.Blender, err = p.optBlender("blend"); err != nil {
		return nil, err
	}
	return b, nil
}
