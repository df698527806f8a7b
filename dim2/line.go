package dim2

import (
	"errors"

	"github.com/akmonengine/csg/bsp"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrDegenerateGeometry is returned when a line is built from fewer than
// 2 distinct points, or from two coincident points.
var ErrDegenerateGeometry = errors.New("dim2: degenerate line (fewer than 2 points, or zero length)")

// Line is a 2D line segment: exactly 2 vertices, with a cached oriented
// plane (a line in the 2D sense) orthogonal to the segment direction.
type Line struct {
	vertices []Vertex
	plane    bsp.Plane[mgl64.Vec2]
}

// NewLine builds a Line from its two endpoints, rejecting coincident
// points (no direction to fit a plane to).
func NewLine(p0, p1 Vertex) (Line, error) {
	plane, ok := fitPlane([]Vertex{p0, p1})
	if !ok {
		return Line{}, ErrDegenerateGeometry
	}
	return Line{vertices: []Vertex{p0, p1}, plane: plane}, nil
}

// buildLine is the unchecked counterpart of NewLine, and the one bsp.Split
// uses for fragments: a spanning split always crosses strictly
// between two non-coincident points, so its fragments are never degenerate.
func buildLine(vertices []Vertex) Line {
	plane, ok := fitPlane(vertices)
	if !ok {
		plane = bsp.Plane[mgl64.Vec2]{Normal: mgl64.Vec2{0, 1}, W: 0}
	}
	return Line{vertices: vertices, plane: plane}
}

func fitPlane(vertices []Vertex) (bsp.Plane[mgl64.Vec2], bool) {
	p0, p1 := vertices[0].Pos, vertices[1].Pos
	dir := p1.Sub(p0)
	length := dir.Len()
	if length < 1e-12 {
		return bsp.Plane[mgl64.Vec2]{}, false
	}

	normal := orthogonal(dir).Mul(1 / length)
	return bsp.Plane[mgl64.Vec2]{Normal: normal, W: normal.Dot(p0)}, true
}

// Vertices implements bsp.Face.
func (l Line) Vertices() []Vertex { return l.vertices }

// Plane implements bsp.Face.
func (l Line) Plane() bsp.Plane[mgl64.Vec2] { return l.plane }

// New implements bsp.Face.
func (l Line) New(vertices []Vertex) bsp.Face[Vertex, mgl64.Vec2] {
	return buildLine(vertices)
}

// Flip implements bsp.Face: it swaps endpoint order, which reverses the
// line's orientation, and refits the plane from the swapped order.
func (l Line) Flip() bsp.Face[Vertex, mgl64.Vec2] {
	return buildLine([]Vertex{l.vertices[1], l.vertices[0]})
}

func asLine(f bsp.Face[Vertex, mgl64.Vec2]) Line {
	return f.(Line)
}
