package asciiray

// Render defaults and fixed scene geometry.
const (
	Width     = 250
	Height    = 250
	PixelSize = 1
	// darkest-looking first; a pixel at brightness d uses GlyphRamp[(255-d)/4]
	GlyphRamp  = "MWN$@%#&B89EGA6mK5HRkbYT43V0JL7gpaseyxznocv?jIftr1li*=-~^`':;,. "
	GlyphScale = 255
	GlyphStep  = 4
	TimingFmt  = "Execution time: %.4f seconds\n"

	SphereX      = 0
	SphereY      = 1
	SphereZ      = 10
	SphereRadius = 2
	CeilingY     = 3  // upper reflection plane
	FloorY       = -5 // lower reflection plane
	FarZ         = 60 // floor brightness cutoff along depth
	CheckerGain  = 6
	CheckerFreq  = 4 // sin(x*pi/CheckerFreq): period 2*CheckerFreq
	FalloffGain  = 1000
)
