package dim3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Cylinder builds a capped cylinder from start to end with the given
// radius, tessellated into slices wedges. Each wedge contributes a
// start-cap triangle, a side quad, and an end-cap triangle, ported from
// the reference implementation's dim3::cylinder.
func Cylinder(start, end mgl64.Vec3, radius float64, slices int) Solid {
	return tessellateCylinder(start, end, radius, 0, radius, slices)
}

// Cone builds a cylinder whose base radius and apex radius differ; radius
// 0 at the apex end degenerates each side quad into a triangle fan,
// producing a cone. This falls out of the cylinder tessellation with no
// new geometry code, since its point() closure already blends an
// arbitrary per-stack radius — a cone is a cylinder the base constructor
// never bothered to expose.
func Cone(apex, base mgl64.Vec3, radius float64, slices int) Solid {
	return tessellateCylinder(base, apex, radius, radius, 0, slices)
}

func tessellateCylinder(start, end mgl64.Vec3, startRadius, _, endRadius float64, slices int) Solid {
	ray := end.Sub(start)
	axisZ := ray.Normalize()
	isY := math.Abs(axisZ.Y()) > 0.5

	var seed mgl64.Vec3
	if isY {
		seed = mgl64.Vec3{1, 0, 0}
	} else {
		seed = mgl64.Vec3{0, 1, 0}
	}
	axisX := seed.Cross(axisZ).Normalize()
	axisY := axisX.Cross(axisZ).Normalize()

	startCenter := NewVertex(start, axisZ.Mul(-1))
	endCenter := NewVertex(end, axisZ)

	radiusAt := func(stack float64) float64 {
		return startRadius + (endRadius-startRadius)*stack
	}

	point := func(stack, slice, normalBlend float64) Vertex {
		angle := slice * math.Pi * 2
		out := axisX.Mul(math.Cos(angle)).Add(axisY.Mul(math.Sin(angle)))
		pos := start.Add(ray.Mul(stack)).Add(out.Mul(radiusAt(stack)))
		normal := out.Mul(1 - math.Abs(normalBlend)).Add(axisZ.Mul(normalBlend))
		return NewVertex(pos, normal)
	}

	var faces []Face
	for i := 0; i < slices; i++ {
		t0 := float64(i) / float64(slices)
		t1 := float64(i+1) / float64(slices)

		if startRadius > 0 {
			faces = append(faces, buildFace([]Vertex{startCenter, point(0, t0, -1), point(0, t1, -1)}))
		}
		faces = append(faces, buildFace([]Vertex{
			point(0, t1, 0), point(0, t0, 0), point(1, t0, 0), point(1, t1, 0),
		}))
		if endRadius > 0 {
			faces = append(faces, buildFace([]Vertex{endCenter, point(1, t1, 1), point(1, t0, 1)}))
		}
	}

	return FromFaces(faces)
}
