// Package dim3 implements the 3D CSG solid: polygon faces on a common
// plane, the boolean operators built on package bsp, and the primitive
// constructors (cube, sphere, cylinder, cone) external collaborators would
// otherwise have to supply.
package dim3

import "github.com/go-gl/mathgl/mgl64"

// Epsilon is the coplanarity and classification tolerance used throughout
// dim3. mgl64 vectors are float64, so this can run tighter than the
// 32-bit-float 1e-4 floor the algorithm was originally tuned for, but 1e-4
// is kept as the default to match documented behavior.
const Epsilon = 1e-4

// Vertex is a point on a face plus its interpolatable normal. Additional
// per-vertex attributes (UVs, colors, ...) are not modeled — callers
// needing them should wrap Vertex rather than extend it, since
// Interpolate's linear blend is the only contract bsp.Split relies on.
type Vertex struct {
	Pos    mgl64.Vec3
	Normal mgl64.Vec3
}

// NewVertex builds a vertex at pos with the given normal. The normal is
// not required to be unit length, though most primitive constructors and
// all of the split/interpolation math assume it roughly is.
func NewVertex(pos, normal mgl64.Vec3) Vertex {
	return Vertex{Pos: pos, Normal: normal}
}

// Position implements bsp.Vertex.
func (v Vertex) Position() mgl64.Vec3 { return v.Pos }

// Interpolate implements bsp.Vertex: position and normal are both blended
// linearly toward other.
func (v Vertex) Interpolate(other Vertex, t float64) Vertex {
	return Vertex{
		Pos:    v.Pos.Add(other.Pos.Sub(v.Pos).Mul(t)),
		Normal: v.Normal.Add(other.Normal.Sub(v.Normal).Mul(t)),
	}
}
