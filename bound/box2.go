package bound

import (
	"math"

	"github.com/akmonengine/csg/dim2"
	"github.com/go-gl/mathgl/mgl64"
)

// Box2 is the 2D analogue of Box3.
type Box2 struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// FromSolid2D computes the axis-aligned envelope of every vertex in s. The
// zero Box2 is returned for a solid with no lines.
func FromSolid2D(s dim2.Solid) Box2 {
	lines := s.ToLines()
	if len(lines) == 0 {
		return Box2{}
	}

	min := lines[0].Vertices()[0].Pos
	max := min
	for _, l := range lines {
		for _, v := range l.Vertices() {
			min = mgl64.Vec2{math.Min(min.X(), v.Pos.X()), math.Min(min.Y(), v.Pos.Y())}
			max = mgl64.Vec2{math.Max(max.X(), v.Pos.X()), math.Max(max.Y(), v.Pos.Y())}
		}
	}
	return Box2{Min: min, Max: max}
}

// ContainsPoint reports whether point lies within the box, inclusive of
// its edges.
func (b Box2) ContainsPoint(point mgl64.Vec2) bool {
	return point.X() >= b.Min.X() && point.X() <= b.Max.X() &&
		point.Y() >= b.Min.Y() && point.Y() <= b.Max.Y()
}

// Overlaps reports whether b and other intersect, inclusive of their
// edges: boxes that only touch count as overlapping.
func (b Box2) Overlaps(other Box2) bool {
	return b.Max.X() >= other.Min.X() && b.Min.X() <= other.Max.X() &&
		b.Max.Y() >= other.Min.Y() && b.Min.Y() <= other.Max.Y()
}

// DiscreteMinMax is Box3.DiscreteMinMax's 2D counterpart.
func (b Box2) DiscreteMinMax(step float64) (min, max [2]int) {
	for axis := 0; axis < 2; axis++ {
		min[axis] = int(math.Round(b.Min[axis] * step))
		max[axis] = int(math.Round(b.Max[axis] * step))
	}
	return
}
