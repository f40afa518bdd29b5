package asciiray

// Scene holds the fixed geometry: one mirror sphere hanging between two
// checkered planes, camera at the origin looking down +Z.
type Scene struct {
	Center      Vector3 // sphere center
	Radius      Real
	CeilingY    Real // plane the reflected ray may reach going up
	FloorY      Real // plane the reflected ray may reach going down
	FarZ        Real // |z| beyond this is dark
	CheckerGain Real
	CheckerFreq Real
	FalloffGain Real
}

// DefaultScene returns the only scene this renderer draws.
func DefaultScene() Scene {
	return Scene{
		Center:      Vector3{SphereX, SphereY, SphereZ},
		Radius:      SphereRadius,
		CeilingY:    CeilingY,
		FloorY:      FloorY,
		FarZ:        FarZ,
		CheckerGain: CheckerGain,
		CheckerFreq: CheckerFreq,
		FalloffGain: FalloffGain,
	}
}
