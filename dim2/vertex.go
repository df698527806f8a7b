// Package dim2 implements the 2D CSG variant: two-point line segments in
// place of 3D polygon faces, the same boolean operators built on package
// bsp, and the primitive constructors (line strips, regular polygons)
// external collaborators would otherwise have to supply.
package dim2

import "github.com/go-gl/mathgl/mgl64"

// Epsilon is the coplanarity and classification tolerance used throughout
// dim2, matching dim3.Epsilon.
const Epsilon = 1e-4

// Vertex is a single 2D point. Unlike dim3.Vertex it carries no normal or
// other interpolatable attribute: a 2D line's orientation is entirely
// determined by its two endpoints.
type Vertex struct {
	Pos mgl64.Vec2
}

// NewVertex builds a vertex at pos.
func NewVertex(pos mgl64.Vec2) Vertex {
	return Vertex{Pos: pos}
}

// Position implements bsp.Vertex.
func (v Vertex) Position() mgl64.Vec2 { return v.Pos }

// Interpolate implements bsp.Vertex: the position is linearly blended
// toward other; there is nothing else to blend.
func (v Vertex) Interpolate(other Vertex, t float64) Vertex {
	return Vertex{Pos: v.Pos.Add(other.Pos.Sub(v.Pos).Mul(t))}
}

// orthogonal turns v a quarter turn clockwise, so the lines of a
// counter-clockwise loop get normals pointing out of the loop.
func orthogonal(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v.Y(), -v.X()}
}
