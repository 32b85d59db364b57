// Package scene answers the character controller's geometry queries against
// a chipmunk space of static level shapes.
package scene

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/levels"
)

// penetrationSlop absorbs rounding when a volume rests exactly on a surface.
const penetrationSlop = 1e-9

// Scene is a static collision world. Shapes are only added while the scene
// is being built; queries after that are read-only and do not step the space.
type Scene struct {
	space  *cp.Space
	filter cp.ShapeFilter
	shapes int
}

var _ character.SceneQuery = (*Scene)(nil)

func New() *Scene {
	return &Scene{
		space:  cp.NewSpace(),
		filter: cp.SHAPE_FILTER_ALL,
	}
}

// FromLevel builds a scene holding every box and slope of lvl.
func FromLevel(lvl *levels.Spec) *Scene {
	s := New()
	if lvl == nil {
		return s
	}
	for _, b := range lvl.Boxes {
		s.AddBox(cp.BB{L: b.X, B: b.Y, R: b.X + b.W, T: b.Y + b.H})
	}
	for _, seg := range lvl.Slopes {
		s.AddSegment(cp.Vector{X: seg.A.X, Y: seg.A.Y}, cp.Vector{X: seg.B.X, Y: seg.B.Y})
	}
	return s
}

func (s *Scene) AddBox(bb cp.BB) *cp.Shape {
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	s.space.AddShape(shape)
	s.shapes++
	return shape
}

// AddSegment adds a zero-thickness solid line from a to b.
func (s *Scene) AddSegment(a, b cp.Vector) *cp.Shape {
	shape := cp.NewSegment(s.space.StaticBody, a, b, 0)
	s.space.AddShape(shape)
	s.shapes++
	return shape
}

// Space exposes the underlying space for debug drawing.
func (s *Scene) Space() *cp.Space { return s.space }

func (s *Scene) Len() int { return s.shapes }

func (s *Scene) Probe(v character.Volume, dir cp.Vector) (character.Contact, bool) {
	return s.cast(v, dir)
}

func (s *Scene) Sweep(v character.Volume, disp cp.Vector) (character.Contact, bool) {
	return s.cast(v, disp)
}

// Overlap reports whether v already intersects a shape, with the normal
// pointing out of that shape.
func (s *Scene) Overlap(v character.Volume) (character.Contact, bool) {
	info := s.space.PointQueryNearest(v.Center, v.Radius, s.filter)
	if info == nil || info.Shape == nil || info.Distance >= v.Radius-penetrationSlop {
		return character.Contact{}, false
	}
	n := info.Gradient
	if n.LengthSq() == 0 {
		n = cp.Vector{X: 0, Y: 1}
	}
	return character.Contact{Normal: n.Normalize(), Distance: 0, Depth: v.Radius - info.Distance}, true
}

func (s *Scene) cast(v character.Volume, disp cp.Vector) (character.Contact, bool) {
	if c, ok := s.Overlap(v); ok {
		return c, true
	}

	length := disp.Length()
	if length == 0 {
		return character.Contact{}, false
	}

	end := v.Center.Add(disp)
	info := s.space.SegmentQueryFirst(v.Center, end, v.Radius, s.filter)
	if info.Shape == nil {
		return character.Contact{}, false
	}
	return character.Contact{
		Normal:   info.Normal,
		Distance: info.Alpha * length,
	}, true
}
