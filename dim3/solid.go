package dim3

import (
	"github.com/akmonengine/csg/bsp"
	"github.com/go-gl/mathgl/mgl64"
)

// Solid is a boundary representation: a list of faces interpreted as the
// closed surface of a volume. Meaningful boolean results require that
// boundary to actually be closed; Solid does not enforce this.
type Solid struct {
	faces []Face
}

// FromFaces wraps an existing face list as a Solid.
func FromFaces(faces []Face) Solid {
	return Solid{faces: append([]Face(nil), faces...)}
}

// ToFaces returns the solid's face list.
func (s Solid) ToFaces() []Face {
	return append([]Face(nil), s.faces...)
}

func newTree(faces []Face) *bsp.Node[Vertex, mgl64.Vec3] {
	wrapped := make([]bsp.Face[Vertex, mgl64.Vec3], len(faces))
	for i, f := range faces {
		wrapped[i] = f
	}
	node := bsp.New[Vertex, mgl64.Vec3](bsp.Config{Epsilon: Epsilon, MinVertices: 3})
	_ = node.Build(wrapped) // faces already validated; build cannot fail without a MaxFaces ceiling
	return node
}

func treeFaces(node *bsp.Node[Vertex, mgl64.Vec3]) []Face {
	all, err := node.AllFaces()
	if err != nil {
		// Only reachable if MaxDepth was exceeded, which newTree never sets;
		// surface an empty solid rather than a panic.
		return nil
	}
	out := make([]Face, len(all))
	for i, f := range all {
		out[i] = asFace(f)
	}
	return out
}

// Union returns the boolean union of s and other: the Thabet/Naylor BSP
// algorithm, operation order preserved exactly (reordering produces
// visibly incorrect coplanar boundaries).
func (s Solid) Union(other Solid) Solid {
	// A tree built from no faces has no plane and clips away everything
	// passed to it, so an empty operand is handled before building trees.
	if len(other.faces) == 0 {
		return FromFaces(s.faces)
	}
	if len(s.faces) == 0 {
		return FromFaces(other.faces)
	}

	a := newTree(s.faces)
	b := newTree(other.faces)

	a.ClipTo(b)
	b.ClipTo(a)
	b.Invert()
	b.ClipTo(a)
	b.Invert()
	bFaces, _ := b.AllFaces()
	a.Build(bFaces)

	return FromFaces(treeFaces(a))
}

// Intersect returns the boolean intersection of s and other.
func (s Solid) Intersect(other Solid) Solid {
	a := newTree(s.faces)
	b := newTree(other.faces)

	a.Invert()
	b.ClipTo(a)
	b.Invert()
	a.ClipTo(b)
	b.ClipTo(a)
	bFaces, _ := b.AllFaces()
	a.Build(bFaces)
	a.Invert()

	return FromFaces(treeFaces(a))
}

// Subtract returns s minus other (s \ other).
func (s Solid) Subtract(other Solid) Solid {
	// An empty other would clip away all of s (see Union).
	if len(other.faces) == 0 {
		return FromFaces(s.faces)
	}

	a := newTree(s.faces)
	b := newTree(other.faces)

	a.Invert()
	a.ClipTo(b)
	b.ClipTo(a)
	b.Invert()
	b.ClipTo(a)
	b.Invert()
	bFaces, _ := b.AllFaces()
	a.Build(bFaces)
	a.Invert()

	return FromFaces(treeFaces(a))
}
