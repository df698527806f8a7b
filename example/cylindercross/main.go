package main

import (
	"fmt"

	"github.com/akmonengine/csg/bound"
	"github.com/akmonengine/csg/dim3"
	"github.com/go-gl/mathgl/mgl64"
)

// cylinderCross builds a cross of two perpendicular cylinders, rotated by
// degrees around the x-axis, matching the reference implementation's
// stack-overflow regression scene.
func cylinderCross(armLength, radius float64, slices int, degrees float64) dim3.Solid {
	armX := dim3.Cylinder(mgl64.Vec3{-armLength, 0, 0}, mgl64.Vec3{armLength, 0, 0}, radius, slices)
	armY := dim3.Cylinder(mgl64.Vec3{0, -armLength, 0}, mgl64.Vec3{0, armLength, 0}, radius, slices)
	return armX.Union(armY).Rotate(mgl64.Vec3{1, 0, 0}, degrees)
}

func main() {
	block := dim3.Cube(mgl64.Vec3{1, 1, 1}, true)

	for step := 0; step < 3; step++ {
		cross := cylinderCross(2, 0.5, 8, 30+float64(step*4))
		result := block.Subtract(cross)
		box := bound.FromSolid(result)

		fmt.Printf("step %d: %d faces, bounding box min=%v max=%v\n",
			step, len(result.ToFaces()), box.Min, box.Max)
	}
}
