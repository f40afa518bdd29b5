package asciiray

import "math"

// glyphFor maps a brightness in [0,255] to a character of GlyphRamp.
// Out-of-range values saturate; NaN draws as the lightest glyph.
func glyphFor(d Real) byte {
	last := len(GlyphRamp) - 1
	if math.IsNaN(d) {
		return GlyphRamp[last]
	}
	idx := clamp(math.Floor((GlyphScale-d)/GlyphStep), 0, Real(last))
	return GlyphRamp[int(idx)]
}
