// Package bound adapts feather's actor.AABB into a CSG-domain bounding
// volume, used to compare solids by envelope rather than by face-list
// equality (spec testable property: "compare by bounding box and signed
// volume, not by list equality").
package bound

import (
	"math"

	"github.com/akmonengine/csg/dim3"
	"github.com/go-gl/mathgl/mgl64"
)

// Box3 is an axis-aligned bounding box in 3D, the same shape as
// feather's actor.AABB, repurposed here to wrap a dim3.Solid's envelope
// instead of a rigid body's collision volume.
type Box3 struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// FromSolid computes the axis-aligned envelope of every vertex in s. The
// zero Box3 is returned for a solid with no faces.
func FromSolid(s dim3.Solid) Box3 {
	faces := s.ToFaces()
	if len(faces) == 0 {
		return Box3{}
	}

	min := faces[0].Vertices()[0].Pos
	max := min
	for _, f := range faces {
		for _, v := range f.Vertices() {
			min = componentMin(min, v.Pos)
			max = componentMax(max, v.Pos)
		}
	}
	return Box3{Min: min, Max: max}
}

// ContainsPoint reports whether point lies within the box, inclusive of
// its faces.
func (b Box3) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= b.Min.X() && point.X() <= b.Max.X() &&
		point.Y() >= b.Min.Y() && point.Y() <= b.Max.Y() &&
		point.Z() >= b.Min.Z() && point.Z() <= b.Max.Z()
}

// Overlaps reports whether b and other intersect, inclusive of their faces:
// boxes that only touch count as overlapping.
func (b Box3) Overlaps(other Box3) bool {
	return b.Max.X() >= other.Min.X() && b.Min.X() <= other.Max.X() &&
		b.Max.Y() >= other.Min.Y() && b.Min.Y() <= other.Max.Y() &&
		b.Max.Z() >= other.Min.Z() && b.Min.Z() <= other.Max.Z()
}

// DiscreteMinMax rounds Min and Max to the nearest 1/step, then scales by
// step, returning integer-valued coordinates. Ported from the reference
// implementation's BoundBox::get_min_max_discreet, used to compare bounding
// boxes across independently-tessellated solids (e.g. sphere panels) at a
// coarse enough resolution that tessellation noise doesn't matter.
func (b Box3) DiscreteMinMax(step float64) (min, max [3]int) {
	for axis := 0; axis < 3; axis++ {
		min[axis] = int(math.Round(b.Min[axis] * step))
		max[axis] = int(math.Round(b.Max[axis] * step))
	}
	return
}

func componentMin(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()), math.Min(a.Z(), b.Z())}
}

func componentMax(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()), math.Max(a.Z(), b.Z())}
}
