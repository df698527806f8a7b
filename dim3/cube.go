package dim3

import "github.com/go-gl/mathgl/mgl64"

// Cube builds a rectangular solid with the given full extent (width,
// height, depth) along each axis. When centered is true the cube spans
// [-extent/2, extent/2] per axis; otherwise it spans [0, extent] with one
// corner at the origin. Faces are six outward-facing quads.
func Cube(extent mgl64.Vec3, centered bool) Solid {
	var origin mgl64.Vec3
	if centered {
		origin = extent.Mul(-0.5)
	}
	min := origin
	max := origin.Add(extent)

	type corner struct {
		x, y, z float64
	}
	c := func(x, y, z float64) mgl64.Vec3 {
		px := min.X()
		if x > 0 {
			px = max.X()
		}
		py := min.Y()
		if y > 0 {
			py = max.Y()
		}
		pz := min.Z()
		if z > 0 {
			pz = max.Z()
		}
		return mgl64.Vec3{px, py, pz}
	}

	quad := func(normal mgl64.Vec3, corners [4]corner) Face {
		vertices := make([]Vertex, 4)
		for i, cr := range corners {
			vertices[i] = NewVertex(c(cr.x, cr.y, cr.z), normal)
		}
		return buildFace(vertices)
	}

	faces := []Face{
		quad(mgl64.Vec3{1, 0, 0}, [4]corner{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}),
		quad(mgl64.Vec3{-1, 0, 0}, [4]corner{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}),
		quad(mgl64.Vec3{0, 1, 0}, [4]corner{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}}),
		quad(mgl64.Vec3{0, -1, 0}, [4]corner{{-1, -1, 1}, {-1, -1, -1}, {1, -1, -1}, {1, -1, 1}}),
		quad(mgl64.Vec3{0, 0, 1}, [4]corner{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}),
		quad(mgl64.Vec3{0, 0, -1}, [4]corner{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}),
	}

	return FromFaces(faces)
}
