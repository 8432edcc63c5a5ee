package rgb

import (
	"encoding/binary"
	"errors"
	"math"
)

// Palette is an indexed set of colours, such as a shape's pixel shader.
type Palette []Color

// Clone copies the palette.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// BlendTo returns a new palette with every entry blended toward end.
func (p Palette) BlendTo(end Color, fraction float64, blend Blender) Palette {
	blend = OrLinear(blend)
	out := make(Palette, len(p))
	for i, c := range p {
		out[i] = blend(c, end, fraction)
	}
	return out
}

// Hex formats every entry as #rrggbb.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// MarshalBinary encodes the palette as a little-endian uint16 entry count
// followed by one RGB triple per entry.
func (p Palette) MarshalBinary() (data []byte, err error) {
	if len(p) > math.MaxUint16 {
		return nil, errors.New("palette too large to encode")
	}

	data = make([]byte, 2, (len(p)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(p)))
	for _, c := range p {
		ch := c.Channels()
		data = append(data, ch[0], ch[1], ch[2])
	}

	return data, nil
}
