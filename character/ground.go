package character

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Volume is the character's circular collision volume.
type Volume struct {
	Center cp.Vector
	Radius float64
}

// Contact describes the first blocking surface met by a cast.
type Contact struct {
	// Normal points out of the surface, toward the volume.
	Normal cp.Vector
	// Distance is how far the volume travels along the cast before touching.
	// Zero means the volume already penetrates the surface.
	Distance float64
	// Depth is how far the volume overlaps the surface when Distance is
	// zero.
	Depth float64
}

// SceneQuery is the read-only view of collision geometry.
type SceneQuery interface {
	// Probe casts v along dir, whose length is the probe range.
	Probe(v Volume, dir cp.Vector) (Contact, bool)
	// Sweep casts v along the full displacement.
	Sweep(v Volume, displacement cp.Vector) (Contact, bool)
}

// GroundContact is the Ground Probe's verdict for one tick.
type GroundContact struct {
	Grounded bool
	Hit      bool
	// Normal is set only when Hit.
	Normal   cp.Vector
	Distance float64
}

var up = cp.Vector{X: 0, Y: 1}

// ProbeGround casts the volume straight down and decides whether the
// character stands on walkable ground.
func ProbeGround(scene SceneQuery, v Volume, t Tuning) GroundContact {
	if scene == nil {
		return GroundContact{}
	}
	c, ok := scene.Probe(v, cp.Vector{X: 0, Y: -t.ProbeDistance})
	if !ok {
		return GroundContact{}
	}
	return GroundContact{
		Grounded: c.Distance <= t.GroundTolerance && walkable(c.Normal, t),
		Hit:      true,
		Normal:   c.Normal,
		Distance: c.Distance,
	}
}

func walkable(n cp.Vector, t Tuning) bool {
	l := n.Length()
	if l == 0 || math.IsNaN(l) {
		return false
	}
	return n.Dot(up)/l >= t.minWalkableNormalY()
}
