package dim3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sphere builds a UV sphere centered on center with the given radius,
// tessellated into slices longitude steps and stacks latitude steps. Polar
// stacks emit triangles; interior stacks emit quads. Ported from the
// reference implementation's dim3::sphere, which parameterizes each vertex
// by (theta, phi) and uses the point itself as its own normal direction.
func Sphere(center mgl64.Vec3, radius float64, slices, stacks int) Solid {
	vertexAt := func(theta, phi float64) Vertex {
		theta *= 2 * math.Pi
		phi *= math.Pi

		dir := mgl64.Vec3{
			math.Cos(theta) * math.Sin(phi),
			math.Cos(phi),
			math.Sin(theta) * math.Sin(phi),
		}
		return NewVertex(center.Add(dir.Mul(radius)), dir)
	}

	var faces []Face
	fslices, fstacks := float64(slices), float64(stacks)

	for slice := 0; slice < slices; slice++ {
		i := float64(slice)
		for stack := 0; stack < stacks; stack++ {
			j := float64(stack)

			var vertices []Vertex
			vertices = append(vertices, vertexAt(i/fslices, j/fstacks))
			if stack > 0 {
				vertices = append(vertices, vertexAt((i+1)/fslices, j/fstacks))
			}
			if stack < stacks-1 {
				vertices = append(vertices, vertexAt((i+1)/fslices, (j+1)/fstacks))
			}
			vertices = append(vertices, vertexAt(i/fslices, (j+1)/fstacks))

			faces = append(faces, buildFace(vertices))
		}
	}

	return FromFaces(faces)
}
