package dim3

import (
	"errors"
	"math"

	"github.com/akmonengine/csg/bsp"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrDegenerateGeometry is returned when a face is built from fewer than 3
// distinct vertices, or from vertices so nearly collinear that no plane
// normal can be fit.
var ErrDegenerateGeometry = errors.New("dim3: degenerate face (fewer than 3 vertices, or zero area)")

// ErrNonCoplanarVertices is returned when a vertex lies more than Epsilon
// off the plane fitted to the rest of the face.
var ErrNonCoplanarVertices = errors.New("dim3: vertex lies off the face's plane beyond tolerance")

// Face is a 3D polygon: an ordered list of at least 3 coplanar vertices,
// with a cached oriented plane whose normal follows the right-hand rule
// from the vertex winding.
type Face struct {
	vertices []Vertex
	plane    bsp.Plane[mgl64.Vec3]
}

// NewFace validates and builds a Face from vertices. It rejects fewer than
// 3 vertices, zero-area (collinear) vertex sets, and vertices that don't
// lie on the fitted plane within Epsilon.
func NewFace(vertices []Vertex) (Face, error) {
	if len(vertices) < 3 {
		return Face{}, ErrDegenerateGeometry
	}

	plane, ok := fitPlane(vertices)
	if !ok {
		return Face{}, ErrDegenerateGeometry
	}

	for _, v := range vertices {
		t := plane.Normal.Dot(v.Position()) - plane.W
		if math.Abs(t) > Epsilon {
			return Face{}, ErrNonCoplanarVertices
		}
	}

	return Face{vertices: vertices, plane: plane}, nil
}

// buildFace fits a plane to vertices without validating that every vertex
// actually lies on it. bsp.Split uses this for fragments, which are
// coplanar with the source face's plane by construction; the primitive
// constructors (cube/sphere/cylinder/cone) use it too, since a tessellated
// curved surface is only approximately planar per panel — exactly the
// "external collaborator" responsibility §4.4 assigns them, not something
// the core validates. NewFace remains the strict, validating entry point
// for caller-supplied geometry.
func buildFace(vertices []Vertex) Face {
	plane, ok := fitPlane(vertices)
	if !ok {
		// A sliver too thin to fit a normal to still has to become some
		// face: keep the vertices and fall back to an arbitrary plane
		// rather than dropping geometry bsp.Split already decided to keep.
		plane = bsp.Plane[mgl64.Vec3]{Normal: mgl64.Vec3{0, 0, 1}, W: 0}
	}
	return Face{vertices: vertices, plane: plane}
}

// fitPlane fits an oriented plane to vertices using Newell's method, which
// is more robust than a single cross product on three of the vertices when
// a polygon has more than 3 vertices or near-collinear corners.
func fitPlane(vertices []Vertex) (bsp.Plane[mgl64.Vec3], bool) {
	n := len(vertices)
	var normal mgl64.Vec3
	for i := 0; i < n; i++ {
		cur := vertices[i].Position()
		next := vertices[(i+1)%n].Position()
		normal[0] += (cur.Y() - next.Y()) * (cur.Z() + next.Z())
		normal[1] += (cur.Z() - next.Z()) * (cur.X() + next.X())
		normal[2] += (cur.X() - next.X()) * (cur.Y() + next.Y())
	}

	length := normal.Len()
	if length < 1e-12 {
		return bsp.Plane[mgl64.Vec3]{}, false
	}
	normal = normal.Mul(1 / length)

	return bsp.Plane[mgl64.Vec3]{Normal: normal, W: normal.Dot(vertices[0].Position())}, true
}

// Vertices implements bsp.Face.
func (f Face) Vertices() []Vertex { return f.vertices }

// Plane implements bsp.Face.
func (f Face) Plane() bsp.Plane[mgl64.Vec3] { return f.plane }

// New implements bsp.Face.
func (f Face) New(vertices []Vertex) bsp.Face[Vertex, mgl64.Vec3] {
	return buildFace(vertices)
}

// Flip implements bsp.Face: it reverses winding (so the normal points the
// opposite way) and refits the plane from the reversed order.
func (f Face) Flip() bsp.Face[Vertex, mgl64.Vec3] {
	n := len(f.vertices)
	reversed := make([]Vertex, n)
	for i, v := range f.vertices {
		reversed[n-1-i] = Vertex{Pos: v.Pos, Normal: v.Normal.Mul(-1)}
	}
	return buildFace(reversed)
}

func asFace(f bsp.Face[Vertex, mgl64.Vec3]) Face {
	return f.(Face)
}
