// Package easing maps normalised animation positions onto shaped positions.
package easing

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
	tween "github.com/tanema/gween/ease"
)

// Func shapes a position in [0, 1]. Overshooting curves such as back and
// elastic may return values outside that range.
type Func func(position float64) float64

// Linear is the identity curve.
func Linear(position float64) float64 {
	return position
}

// OrLinear returns f, or Linear when f is nil.
func OrLinear(f Func) Func {
	if f == nil {
		return Linear
	}
	return f
}

// FromTween adapts a gween curve, which works on (elapsed, begin, change,
// duration), to a Func over a unit duration.
func FromTween(fn tween.TweenFunc) Func {
	return func(position float64) float64 {
		return float64(fn(float32(position), 0, 1, 1))
	}
}

// UnknownError is returned by Lookup for unregistered names.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown easing function %q", e.Name)
}

var registry = map[string]Func{
	"linear_interpolation": Linear,

	"quadratic_easein":    ease.InQuad,
	"quadratic_easeout":   ease.OutQuad,
	"quadratic_easeinout": ease.InOutQuad,

	"cubic_easein":    ease.InCubic,
	"cubic_easeout":   ease.OutCubic,
	"cubic_easeinout": ease.InOutCubic,

	"quartic_easein":    ease.InQuart,
	"quartic_easeout":   ease.OutQuart,
	"quartic_easeinout": ease.InOutQuart,

	"quintic_easein":    ease.InQuint,
	"quintic_easeout":   ease.OutQuint,
	"quintic_easeinout": ease.InOutQuint,

	"sine_easein":    ease.InSine,
	"sine_easeout":   ease.OutSine,
	"sine_easeinout": ease.InOutSine,

	"circular_easein":    ease.InCirc,
	"circular_easeout":   ease.OutCirc,
	"circular_easeinout": ease.InOutCirc,

	"exponential_easein":    ease.InExpo,
	"exponential_easeout":   ease.OutExpo,
	"exponential_easeinout": ease.InOutExpo,

	"elastic_easein":    ease.InElastic,
	"elastic_easeout":   ease.OutElastic,
	"elastic_easeinout": ease.InOutElastic,

	"back_easein":    ease.InBack,
	"back_easeout":   ease.OutBack,
	"back_easeinout": ease.InOutBack,

	"bounce_easein":    ease.InBounce,
	"bounce_easeout":   ease.OutBounce,
	"bounce_easeinout": ease.InOutBounce,

	// fogleman/ease has no out-in curves
	"quadratic_easeoutin":   FromTween(tween.OutInQuad),
	"cubic_easeoutin":       FromTween(tween.OutInCubic),
	"quartic_easeoutin":     FromTween(tween.OutInQuart),
	"quintic_easeoutin":     FromTween(tween.OutInQuint),
	"sine_easeoutin":        FromTween(tween.OutInSine),
	"circular_easeoutin":    FromTween(tween.OutInCirc),
	"exponential_easeoutin": FromTween(tween.OutInExpo),
	"back_easeoutin":        FromTween(tween.OutInBack),
	"bounce_easeoutin":      FromTween(tween.OutInBounce),
}

// Lookup returns the curve registered under name.
func Lookup(name string) (Func, error) {
	f, ok := registry[name]
	if !ok {
		return nil, &UnknownError{Name: name}
	}
	return f, nil
}

// Names lists the registered curve names in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
