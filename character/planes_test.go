package character

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
)

// plane is a solid half-space: points with n·p < d are inside.
type plane struct {
	n cp.Vector
	d float64
}

func floorAt(y float64) plane { return plane{n: cp.Vector{X: 0, Y: 1}, d: y} }

func ceilingAt(y float64) plane { return plane{n: cp.Vector{X: 0, Y: -1}, d: -y} }

func wallRightOf(x float64) plane { return plane{n: cp.Vector{X: -1, Y: 0}, d: -x} }

// slopeThrough is a surface rising at deg degrees that passes through p.
func slopeThrough(deg float64, p cp.Vector) plane {
	rad := deg * math.Pi / 180
	n := cp.Vector{X: -math.Sin(rad), Y: math.Cos(rad)}
	return plane{n: n, d: n.Dot(p)}
}

func (p plane) gap(v Volume) float64 {
	return p.n.Dot(v.Center) - p.d - v.Radius
}

// planeScene is an exact scene double made of half-spaces.
type planeScene struct {
	planes []plane
}

func (s *planeScene) Probe(v Volume, dir cp.Vector) (Contact, bool) { return s.cast(v, dir) }

func (s *planeScene) Sweep(v Volume, disp cp.Vector) (Contact, bool) { return s.cast(v, disp) }

func (s *planeScene) cast(v Volume, disp cp.Vector) (Contact, bool) {
	length := disp.Length()
	best := Contact{}
	bestFrac := math.Inf(1)
	for _, p := range s.planes {
		g := p.gap(v)
		if g < 0 {
			return Contact{Normal: p.n, Distance: 0, Depth: -g}, true
		}
		approach := -p.n.Dot(disp)
		if approach <= 0 {
			continue
		}
		frac := g / approach
		if frac > 1 || frac >= bestFrac {
			continue
		}
		bestFrac = frac
		best = Contact{Normal: p.n, Distance: frac * length}
	}
	return best, !math.IsInf(bestFrac, 1)
}

// stuckScene reports every cast as penetrating its floor by depth.
type stuckScene struct {
	depth float64
}

func (s stuckScene) Probe(Volume, cp.Vector) (Contact, bool) {
	return Contact{Normal: cp.Vector{X: 0, Y: 1}, Depth: s.depth}, true
}

func (s stuckScene) Sweep(Volume, cp.Vector) (Contact, bool) {
	return Contact{Normal: cp.Vector{X: 0, Y: 1}, Depth: s.depth}, true
}

type recordingSink struct {
	plays []AnimationRequest
}

func (r *recordingSink) Play(clip ClipID, crossfade time.Duration) {
	r.plays = append(r.plays, AnimationRequest{Clip: clip, Crossfade: crossfade})
}

const tick = time.Second / 60

// restingOn returns a spawn point whose volume floats one skin above a floor
// at y.
func restingOn(x, y float64, t Tuning) cp.Vector {
	return cp.Vector{X: x, Y: y + t.Radius + t.Skin}
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
