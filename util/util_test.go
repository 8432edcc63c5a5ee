package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 2, FloorDiv(5, 2))
	assert.Equal(t, -3, FloorDiv(-5, 2))
	assert.Equal(t, -2, FloorDiv(-4, 2))
	assert.Equal(t, -1, FloorDiv(-1, 2))
	assert.Equal(t, 0, FloorDiv(0, 3))
}

func TestGenerateWiggleLut(t *testing.T) {
	cases := map[int][]int{
		0: {},
		1: {},
		2: {0},
		3: {0, -1},
		4: {0, 1, 0, -1},
		5: {0, 1, 0, -1, -2, -1},
		7: {0, 1, 2, 1, 0, -1, -2, -3, -2, -1},
	}
	for steps, want := range cases {
		assert.Equal(t, want, GenerateWiggleLut(steps), "steps=%d", steps)
	}
}

func TestGenerateWiggleLutTooFewSteps(t *testing.T) {
	assert.Empty(t, GenerateWiggleLut(-3))
	assert.Empty(t, GenerateWiggleLut(1))
	assert.Equal(t, []int{0}, GenerateWiggleLut(2))
	assert.Empty(t, GenerateWiggleLutMemoized(1, NewMemoizer()))
}

func TestGenerateWiggleLutStartsAtZero(t *testing.T) {
	for steps := 2; steps < 40; steps++ {
		lut := GenerateWiggleLut(steps)
		if assert.NotEmpty(t, lut, "steps=%d", steps) {
			assert.Equal(t, 0, lut[0], "steps=%d", steps)
		}
	}
}

func TestMemoizerSharesTables(t *testing.T) {
	m := NewMemoizer()
	a := GenerateWiggleLutMemoized(5, m)
	b := GenerateWiggleLutMemoized(5, m)
	assert.Equal(t, GenerateWiggleLut(5), a)
	assert.Same(t, &a[0], &b[0])

	var zero Memoizer
	assert.Equal(t, []int{0, -1}, GenerateWiggleLutMemoized(3, &zero))
}
