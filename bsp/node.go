package bsp

// Node is one node of a BSP tree. A non-empty node has a splitting plane;
// every face in faces is coplanar with it (facing either direction). Faces
// strictly in front of the plane live, directly or transitively, in front;
// strictly-back faces live in back. An empty node has no plane, no
// children, no faces — this only occurs at the root of a tree that has
// never been built.
//
// A Node owns its children exclusively: there are no shared subtrees and
// no cycles. invert, clipTo and build all mutate the node in place; a
// single tree is not safe for concurrent mutation.
type Node[V Vertex[V, P], P Vec[P]] struct {
	plane *Plane[P]
	front *Node[V, P]
	back  *Node[V, P]
	faces []Face[V, P]

	cfg     Config
	limiter *faceLimiter
}

// New returns an empty BSP node ready to be built. cfg.Epsilon and
// cfg.MinVertices must be set by the caller (dim3/dim2 supply the
// dimension-appropriate values); cfg.MaxFaces/cfg.MaxDepth default to
// unlimited/defaultMaxDepth when zero.
func New[V Vertex[V, P], P Vec[P]](cfg Config) *Node[V, P] {
	cfg = cfg.normalized()
	var limiter *faceLimiter
	if cfg.MaxFaces > 0 {
		limiter = &faceLimiter{max: cfg.MaxFaces}
	}
	return &Node[V, P]{cfg: cfg, limiter: limiter}
}

func (n *Node[V, P]) newChild() *Node[V, P] {
	return &Node[V, P]{cfg: n.cfg, limiter: n.limiter}
}

// Faces returns the faces held directly at this node (coplanar with its
// splitting plane), not those of its children.
func (n *Node[V, P]) Faces() []Face[V, P] {
	return n.faces
}

// buildFrame is one unit of pending work for the iterative Build below: a
// node and the faces still waiting to be routed into it or its children.
type buildFrame[V Vertex[V, P], P Vec[P]] struct {
	node  *Node[V, P]
	faces []Face[V, P]
}

// Build partitions faces into the tree, routing coplanar fragments into
// the node they land on and recursing into (or creating) front/back
// children for the rest. Calling Build again on an existing tree is
// incremental: the new faces are filtered down to wherever they land,
// without disturbing faces already placed. The splitting plane of a node
// is always the plane of the first face it ever receives — there is no
// heuristic splitter selection, which is what makes output deterministic.
//
// Implemented with an explicit work stack rather than native recursion so
// that adversarial input (many mutually non-coplanar faces) cannot exhaust
// the goroutine stack.
func (n *Node[V, P]) Build(faces []Face[V, P]) error {
	if len(faces) == 0 {
		return nil
	}

	stack := []buildFrame[V, P]{{node: n, faces: faces}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node, pending := top.node, top.faces
		if len(pending) == 0 {
			continue
		}

		if node.plane == nil {
			plane := pending[0].Plane()
			node.plane = &plane
		}

		var front, back []Face[V, P]
		for _, face := range pending {
			result := Split[V, P](*node.plane, face, node.cfg.Epsilon, node.cfg.MinVertices)
			if result.CoplanarFront != nil {
				node.faces = append(node.faces, result.CoplanarFront)
			}
			if result.CoplanarBack != nil {
				node.faces = append(node.faces, result.CoplanarBack)
			}
			if result.Front != nil {
				front = append(front, result.Front)
			}
			if result.Back != nil {
				back = append(back, result.Back)
			}
		}

		if err := node.limiter.reserve(len(front) + len(back)); err != nil {
			return err
		}

		if len(front) > 0 {
			if node.front == nil {
				node.front = node.newChild()
			}
			stack = append(stack, buildFrame[V, P]{node: node.front, faces: front})
		}
		if len(back) > 0 {
			if node.back == nil {
				node.back = node.newChild()
			}
			stack = append(stack, buildFrame[V, P]{node: node.back, faces: back})
		}
	}
	return nil
}

// Invert converts solid space to empty space and empty space to solid
// space: every face is flipped, every plane is flipped, and front/back
// children are swapped, recursively. Applying Invert twice restores the
// tree (up to permutation).
func (n *Node[V, P]) Invert() {
	stack := []*Node[V, P]{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i, f := range node.faces {
			node.faces[i] = f.Flip()
		}
		if node.plane != nil {
			flipped := node.plane.Flip()
			node.plane = &flipped
		}

		node.front, node.back = node.back, node.front

		if node.front != nil {
			stack = append(stack, node.front)
		}
		if node.back != nil {
			stack = append(stack, node.back)
		}
	}
}

// ClipFaces recursively removes the portion of faces that lies inside this
// node's solid volume, returning the surviving fragments. It does not
// mutate the node.
//
// A node with no splitting plane returns its own (empty) faces rather than
// the input unchanged — this is the leaf convention: the only way normal
// construction reaches a planeless node is the root of a tree that has
// never been built, so "returns the node's own faces" and "returns nothing"
// coincide in practice, but the former is what a reimplementation must
// match.
func (n *Node[V, P]) ClipFaces(faces []Face[V, P]) ([]Face[V, P], error) {
	return n.clipFaces(faces, 0)
}

func (n *Node[V, P]) clipFaces(faces []Face[V, P], depth int) ([]Face[V, P], error) {
	if depth > n.cfg.MaxDepth {
		return nil, ErrDepthExceeded
	}
	if n.plane == nil {
		return append([]Face[V, P](nil), n.faces...), nil
	}

	var front, back []Face[V, P]
	for _, face := range faces {
		result := Split[V, P](*n.plane, face, n.cfg.Epsilon, n.cfg.MinVertices)
		if result.CoplanarFront != nil {
			front = append(front, result.CoplanarFront)
		}
		if result.CoplanarBack != nil {
			back = append(back, result.CoplanarBack)
		}
		if result.Front != nil {
			front = append(front, result.Front)
		}
		if result.Back != nil {
			back = append(back, result.Back)
		}
	}

	var err error
	if n.front != nil {
		front, err = n.front.clipFaces(front, depth+1)
		if err != nil {
			return nil, err
		}
	}
	if n.back != nil {
		back, err = n.back.clipFaces(back, depth+1)
		if err != nil {
			return nil, err
		}
	} else {
		// No back subtree: the back half-space is entirely solid, so
		// anything that fell there is inside this node's volume and is
		// discarded.
		back = nil
	}

	return append(front, back...), nil
}

// ClipTo removes, from this tree, every face that lies inside other's
// solid volume: it replaces this node's own faces with
// other.ClipFaces(self.faces) and recurses into each child.
func (n *Node[V, P]) ClipTo(other *Node[V, P]) error {
	return n.clipTo(other, 0)
}

func (n *Node[V, P]) clipTo(other *Node[V, P], depth int) error {
	if depth > n.cfg.MaxDepth {
		return ErrDepthExceeded
	}

	clipped, err := other.ClipFaces(n.faces)
	if err != nil {
		return err
	}
	n.faces = clipped

	if n.front != nil {
		if err := n.front.clipTo(other, depth+1); err != nil {
			return err
		}
	}
	if n.back != nil {
		if err := n.back.clipTo(other, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// AllFaces returns every face in the tree: this node's own faces, then the
// front subtree's, then the back subtree's. The order is deterministic but
// otherwise unspecified — callers must compare results by set/geometric
// equivalence, not by list equality.
func (n *Node[V, P]) AllFaces() ([]Face[V, P], error) {
	return n.allFaces(0)
}

func (n *Node[V, P]) allFaces(depth int) ([]Face[V, P], error) {
	if depth > n.cfg.MaxDepth {
		return nil, ErrDepthExceeded
	}

	out := append([]Face[V, P](nil), n.faces...)

	if n.front != nil {
		frontFaces, err := n.front.allFaces(depth + 1)
		if err != nil {
			return nil, err
		}
		out = append(out, frontFaces...)
	}
	if n.back != nil {
		backFaces, err := n.back.allFaces(depth + 1)
		if err != nil {
			return nil, err
		}
		out = append(out, backFaces...)
	}
	return out, nil
}
