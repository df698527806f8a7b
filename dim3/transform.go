package dim3

import "github.com/go-gl/mathgl/mgl64"

// Translate returns a copy of s with every vertex position offset by
// delta. Normals are unaffected, since translation carries no rotational
// component.
func (s Solid) Translate(delta mgl64.Vec3) Solid {
	faces := make([]Face, len(s.faces))
	for i, f := range s.faces {
		vertices := make([]Vertex, len(f.vertices))
		for j, v := range f.vertices {
			vertices[j] = Vertex{Pos: v.Pos.Add(delta), Normal: v.Normal}
		}
		faces[i] = buildFace(vertices)
	}
	return FromFaces(faces)
}

// Rotate returns a copy of s rotated by degrees around axis, following
// feather's actor.Transform convention of carrying rotation as an
// mgl64.Quat rather than a raw matrix. Normals rotate with the same quat
// and are not renormalized, matching Interpolate's plain linear blend.
func (s Solid) Rotate(axis mgl64.Vec3, degrees float64) Solid {
	q := mgl64.QuatRotate(mgl64.DegToRad(degrees), axis)

	faces := make([]Face, len(s.faces))
	for i, f := range s.faces {
		vertices := make([]Vertex, len(f.vertices))
		for j, v := range f.vertices {
			vertices[j] = Vertex{Pos: q.Rotate(v.Pos), Normal: q.Rotate(v.Normal)}
		}
		faces[i] = buildFace(vertices)
	}
	return FromFaces(faces)
}

// Scale returns a copy of s with every vertex position scaled
// component-wise by factor. Normals are scaled by the inverse factor and
// renormalized, which is the correct transform for a non-uniform scale;
// for a uniform factor this reduces to leaving the normal direction alone.
func (s Solid) Scale(factor mgl64.Vec3) Solid {
	inv := mgl64.Vec3{1 / factor.X(), 1 / factor.Y(), 1 / factor.Z()}

	faces := make([]Face, len(s.faces))
	for i, f := range s.faces {
		vertices := make([]Vertex, len(f.vertices))
		for j, v := range f.vertices {
			pos := mgl64.Vec3{v.Pos.X() * factor.X(), v.Pos.Y() * factor.Y(), v.Pos.Z() * factor.Z()}
			normal := mgl64.Vec3{v.Normal.X() * inv.X(), v.Normal.Y() * inv.Y(), v.Normal.Z() * inv.Z()}
			if l := normal.Len(); l > 1e-12 {
				normal = normal.Mul(1 / l)
			}
			vertices[j] = Vertex{Pos: pos, Normal: normal}
		}
		faces[i] = buildFace(vertices)
	}
	return FromFaces(faces)
}
