package rgb

// A Blender mixes two colours, fraction 0 giving start and 1 giving end.
type Blender func(start, end Color, fraction float64) Color

// Linear blends channel by channel, truncating each step toward zero.
func Linear(start, end Color, fraction float64) Color {
	return start.Blend(end, fraction)
}

// Hcl blends through the HCL colour space.
func Hcl(start, end Color, fraction float64) Color {
	return start.BlendHcl(end, fraction)
}

// OrLinear returns b, or Linear when b is nil.
func OrLinear(b Blender) Blender {
	if b == nil {
		return Linear
	}
	return b
}

// Blend mixes two colours given in any form ToChannels accepts. The result is
// always packed, including at the clamped ends.
func Blend(start, end interface{}, fraction float64) (Color, error) {
	s, err := ToChannels(start)
	if err != nil {
		return 0, err
	}
	e, err := ToChannels(end)
	if err != nil {
		return 0, err
	}
	return s.Packed().Blend(e.Packed(), fraction), nil
}

// Blend mixes c toward end. Each channel moves by (start - end) * fraction
// truncated toward zero, so the result never overshoots end.
func (c Color) Blend(end Color, fraction float64) Color {
	if fraction >= 1 {
		return end
	}
	if fraction <= 0 {
		return c
	}

	s := c.Channels()
	e := end.Channels()
	var out Channels
	for i := range out {
		out[i] = uint8(int(s[i]) - int(float64(int(s[i])-int(e[i]))*fraction))
	}
	return out.Packed()
}

// BlendHcl mixes c toward end in HCL space.
func (c Color) BlendHcl(end Color, fraction float64) Color {
	if fraction >= 1 {
		return end
	}
	if fraction <= 0 {
		return c
	}
	return FromColorful(c.Colorful().BlendHcl(end.Colorful(), fraction))
}
