// Package rgb converts and blends 24-bit RGB colours.
package rgb

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxColor is the largest packed colour.
const MaxColor = 0xFFFFFF

// Color is a packed 24-bit colour, r<<16 | g<<8 | b.
type Color uint32

// Channels holds the red, green and blue bytes of a colour.
type Channels [3]uint8

// ErrInvalidColor matches every InvalidColorError through errors.Is.
var ErrInvalidColor = errors.New("invalid color")

// InvalidColorError reports a value that is neither a three channel tuple nor
// an integer in [0, MaxColor].
type InvalidColorError struct {
	Value interface{}
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %#v", e.Value)
}

func (e *InvalidColorError) Is(target error) bool {
	return target == ErrInvalidColor
}

// ToPacked composes three channels into a packed colour.
func ToPacked(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Packed composes the channels into a packed colour.
func (c Channels) Packed() Color {
	return ToPacked(c[0], c[1], c[2])
}

// Channels splits the colour into its red, green and blue bytes. Bits above
// 24 are ignored.
func (c Color) Channels() Channels {
	return Channels{uint8(c >> 16), uint8(c >> 8), uint8(c)}
}

// Hex formats the colour as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c&MaxColor))
}

func (c Color) String() string {
	return c.Hex()
}

// Colorful converts the colour to go-colorful's representation.
func (c Color) Colorful() colorful.Color {
	ch := c.Channels()
	return colorful.Color{R: float64(ch[0]) / 255.0, G: float64(ch[1]) / 255.0, B: float64(ch[2]) / 255.0}
}

// FromColorful packs a go-colorful colour, clamping out of gamut values.
func FromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return ToPacked(r, g, b)
}

// Parse is ToChannels followed by packing.
func Parse(v interface{}) (Color, error) {
	ch, err := ToChannels(v)
	if err != nil {
		return 0, err
	}
	return ch.Packed(), nil
}

// ToChannels normalises v to its channels. It accepts Channels, Color,
// [3]uint8, [3]int, three element int or interface slices (as produced by
// YAML decoding), colorful.Color, #rrggbb strings and any integer type whose
// value fits in 24 bits.
func ToChannels(v interface{}) (Channels, error) {
	switch c := v.(type) {
	case Channels:
		return c, nil
	case [3]uint8:
		return Channels(c), nil
	case Color:
		if c > MaxColor {
			return Channels{}, &InvalidColorError{Value: v}
		}
		return c.Channels(), nil
	case colorful.Color:
		return FromColorful(c).Channels(), nil
	case [3]int:
		return tupleChannels(v, c[:])
	case []int:
		return tupleChannels(v, c)
	case []interface{}:
		if len(c) != 3 {
			return Channels{}, &InvalidColorError{Value: v}
		}
		ints := make([]int, 3)
		for i, elem := range c {
			n, ok := toInt64(elem)
			if !ok {
				return Channels{}, &InvalidColorError{Value: v}
			}
			ints[i] = int(n)
		}
		return tupleChannels(v, ints)
	case string:
		if !strings.HasPrefix(c, "#") {
			return Channels{}, &InvalidColorError{Value: v}
		}
		cc, err := colorful.Hex(c)
		if err != nil {
			return Channels{}, &InvalidColorError{Value: v}
		}
		return FromColorful(cc).Channels(), nil
	}

	n, ok := toInt64(v)
	if !ok || n < 0 || n > MaxColor {
		return Channels{}, &InvalidColorError{Value: v}
	}
	return Color(n).Channels(), nil
}

func tupleChannels(orig interface{}, vals []int) (Channels, error) {
	if len(vals) != 3 {
		return Channels{}, &InvalidColorError{Value: orig}
	}
	var ch Channels
	for i, n := range vals {
		if n < 0 || n > 255 {
			return Channels{}, &InvalidColorError{Value: orig}
		}
		ch[i] = uint8(n)
	}
	return ch, nil
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return clampUint(uint64(n)), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return clampUint(n), true
	}
	return 0, false
}

// clampUint keeps huge unsigned values out of range rather than letting them
// wrap negative.
func clampUint(n uint64) int64 {
	if n > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(n)
}
