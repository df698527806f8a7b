package dim2

import (
	"github.com/akmonengine/csg/bsp"
	"github.com/go-gl/mathgl/mgl64"
)

// Solid is the 2D analogue of dim3.Solid: a list of line segments
// interpreted as the closed boundary of a planar region.
type Solid struct {
	lines []Line
}

// FromLines wraps an existing line list as a Solid.
func FromLines(lines []Line) Solid {
	return Solid{lines: append([]Line(nil), lines...)}
}

// ToLines returns the solid's line list.
func (s Solid) ToLines() []Line {
	return append([]Line(nil), s.lines...)
}

func newTree(lines []Line) *bsp.Node[Vertex, mgl64.Vec2] {
	wrapped := make([]bsp.Face[Vertex, mgl64.Vec2], len(lines))
	for i, l := range lines {
		wrapped[i] = l
	}
	node := bsp.New[Vertex, mgl64.Vec2](bsp.Config{Epsilon: Epsilon, MinVertices: 2})
	_ = node.Build(wrapped)
	return node
}

func treeLines(node *bsp.Node[Vertex, mgl64.Vec2]) []Line {
	all, err := node.AllFaces()
	if err != nil {
		return nil
	}
	out := make([]Line, len(all))
	for i, f := range all {
		out[i] = asLine(f)
	}
	return out
}

// Union returns the boolean union of s and other, following the same
// Thabet/Naylor operation sequence as dim3.Solid.Union.
func (s Solid) Union(other Solid) Solid {
	// A tree built from no lines has no plane and clips away everything
	// passed to it, so an empty operand is handled before building trees.
	if len(other.lines) == 0 {
		return FromLines(s.lines)
	}
	if len(s.lines) == 0 {
		return FromLines(other.lines)
	}

	a := newTree(s.lines)
	b := newTree(other.lines)

	a.ClipTo(b)
	b.ClipTo(a)
	b.Invert()
	b.ClipTo(a)
	b.Invert()
	bLines, _ := b.AllFaces()
	a.Build(bLines)

	return FromLines(treeLines(a))
}

// Intersect returns the boolean intersection of s and other.
func (s Solid) Intersect(other Solid) Solid {
	a := newTree(s.lines)
	b := newTree(other.lines)

	a.Invert()
	b.ClipTo(a)
	b.Invert()
	a.ClipTo(b)
	b.ClipTo(a)
	bLines, _ := b.AllFaces()
	a.Build(bLines)
	a.Invert()

	return FromLines(treeLines(a))
}

// Subtract returns s minus other (s \ other).
func (s Solid) Subtract(other Solid) Solid {
	// An empty other would clip away all of s (see Union).
	if len(other.lines) == 0 {
		return FromLines(s.lines)
	}

	a := newTree(s.lines)
	b := newTree(other.lines)

	a.Invert()
	a.ClipTo(b)
	b.ClipTo(a)
	b.Invert()
	b.ClipTo(a)
	b.Invert()
	bLines, _ := b.AllFaces()
	a.Build(bLines)
	a.Invert()

	return FromLines(treeLines(a))
}

// Translate returns a copy of s with every vertex offset by delta.
func (s Solid) Translate(delta mgl64.Vec2) Solid {
	lines := make([]Line, len(s.lines))
	for i, l := range s.lines {
		vertices := make([]Vertex, len(l.vertices))
		for j, v := range l.vertices {
			vertices[j] = Vertex{Pos: v.Pos.Add(delta)}
		}
		lines[i] = buildLine(vertices)
	}
	return FromLines(lines)
}

// Scale returns a copy of s with every vertex position scaled
// component-wise by factor, mirroring dim3.Solid.Scale. A 2D line has no
// normal to correct for a non-uniform scale, so unlike dim3 there is no
// inverse-factor adjustment to make: the plane is simply refit from the
// scaled endpoints.
func (s Solid) Scale(factor mgl64.Vec2) Solid {
	lines := make([]Line, len(s.lines))
	for i, l := range s.lines {
		vertices := make([]Vertex, len(l.vertices))
		for j, v := range l.vertices {
			vertices[j] = Vertex{Pos: mgl64.Vec2{v.Pos.X() * factor.X(), v.Pos.Y() * factor.Y()}}
		}
		lines[i] = buildLine(vertices)
	}
	return FromLines(lines)
}

// Rotate returns a copy of s rotated by degrees around the origin,
// matching feather's use of mgl64's rotation helpers.
func (s Solid) Rotate(degrees float64) Solid {
	rot := mgl64.Rotate2D(mgl64.DegToRad(degrees))

	lines := make([]Line, len(s.lines))
	for i, l := range s.lines {
		vertices := make([]Vertex, len(l.vertices))
		for j, v := range l.vertices {
			vertices[j] = Vertex{Pos: rot.Mul2x1(v.Pos)}
		}
		lines[i] = buildLine(vertices)
	}
	return FromLines(lines)
}
