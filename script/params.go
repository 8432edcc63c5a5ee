package script

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/matt-g-everett/keyframe/animation"
	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/rgb"
)

// UnknownParameterError reports params a behaviour does not declare, which
// are usually misspelt names.
type UnknownParameterError struct {
	Behavior string
	Names    []string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("%s: unknown parameters %v", e.Behavior, e.Names)
}

// InvalidParameterError reports a param of the wrong type.
type InvalidParameterError struct {
	Behavior string
	Name     string
	Value    interface{}
	Want     string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: parameter %q is %#v, want %s", e.Behavior, e.Name, e.Value, e.Want)
}

// params reads a behaviour's parameter bag, remembering which keys were used
// so that leftovers can be reported.
type params struct {
	behavior string
	values   map[string]interface{}
	used     map[string]bool
}

func newParams(behavior string, values map[string]interface{}) *params {
	return &params{behavior: behavior, values: values, used: make(map[string]bool)}
}

func (p *params) lookup(name string) (interface{}, bool) {
	p.used[name] = true
	v, ok := p.values[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (p *params) missing(name string) error {
	return &animation.MissingParameterError{Behavior: p.behavior, Name: name}
}

func (p *params) invalid(name string, v interface{}, want string) error {
	return &InvalidParameterError{Behavior: p.behavior, Name: name, Value: v, Want: want}
}

func (p *params) requireInt(name string) (int, error) {
	v, ok := p.lookup(name)
	if !ok {
		return 0, p.missing(name)
	}
	return p.toInt(name, v)
}

func (p *params) optInt(name string, def int) (int, error) {
	v, ok := p.lookup(name)
	if !ok {
		return def, nil
	}
	return p.toInt(name, v)
}

func (p *params) toInt(name string, v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	}
	return 0, p.invalid(name, v, "an integer")
}

func (p *params) requireColor(name string) (rgb.Color, error) {
	v, ok := p.lookup(name)
	if !ok {
		return 0, p.missing(name)
	}
	c, err := rgb.Parse(v)
	if err != nil {
		return 0, errors.Wrapf(err, "%s: parameter %q", p.behavior, name)
	}
	return c, nil
}

func (p *params) requirePalette(name string) (rgb.Palette, error) {
	v, ok := p.lookup(name)
	if !ok {
		return nil, p.missing(name)
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, p.invalid(name, v, "a list of colors")
	}
	return parsePalette(list)
}

func (p *params) optEasing(name string) (easing.Func, error) {
	v, ok := p.lookup(name)
	if !ok {
		return easing.Linear, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, p.invalid(name, v, "an easing function name")
	}
	return easing.Lookup(s)
}

func (p *params) optBlender(name string) (rgb.Blender, error) {
	v, ok := p.lookup(name)
	if !ok {
		return rgb.Linear, nil
	}
	switch v {
	case "linear":
		return rgb.Linear, nil
	case "hcl":
		return rgb.Hcl, nil
	}
	return nil, p.invalid(name, v, `"linear" or "hcl"`)
}

// finish reports any key no accessor asked for.
func (p *params) finish() error {
	var unknown []string
	for name := range p.values {
		if !p.used[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &UnknownParameterError{Behavior: p.behavior, Names: unknown}
}

func parsePalette(list []interface{}) (rgb.Palette, error) {
	palette := make(rgb.Palette, len(list))
	for i, v := range list {
		c, err := rgb.Parse(v)
		if err != nil {
			return nil, errors.Wrapf(err, "palette index %d", i)
		}
		palette[i] = c
	}
	return palette, nil
}
