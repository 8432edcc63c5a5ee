package easing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tween "github.com/tanema/gween/ease"
)

func TestLinearIsIdentity(t *testing.T) {
	for _, p := range []float64{0, 0.25, 0.5, 1} {
		assert.Equal(t, p, Linear(p))
	}
}

func TestOrLinear(t *testing.T) {
	assert.Equal(t, 0.3, OrLinear(nil)(0.3))

	double := Func(func(p float64) float64 { return p * 2 })
	assert.Equal(t, 0.6, OrLinear(double)(0.3))
}

func TestRegisteredCurvesHitEndpoints(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name)
		require.NoError(t, err, name)
		assert.InDelta(t, 0.0, f(0), 1e-3, name)
		assert.InDelta(t, 1.0, f(1), 1e-3, name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("wobbly")
	require.Error(t, err)

	var unknown *UnknownError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "wobbly", unknown.Name)
}

func TestFromTweenLinear(t *testing.T) {
	f := FromTween(tween.Linear)
	assert.InDelta(t, 0.5, f(0.5), 1e-6)
	assert.InDelta(t, 0.25, f(0.25), 1e-6)
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
	assert.Contains(t, names, "linear_interpolation")
	assert.Contains(t, names, "quadratic_easeinout")
}
