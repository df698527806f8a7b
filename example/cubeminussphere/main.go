package main

import (
	"fmt"

	"github.com/akmonengine/csg/bound"
	"github.com/akmonengine/csg/dim3"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	cube := dim3.Cube(mgl64.Vec3{2, 2, 2}, true)
	sphere := dim3.Sphere(mgl64.Vec3{0, 0, 0}, 1.3, 16, 8)

	result := cube.Subtract(sphere)
	box := bound.FromSolid(result)

	fmt.Printf("cube minus sphere: %d faces\n", len(result.ToFaces()))
	fmt.Printf("bounding box: min=%v max=%v\n", box.Min, box.Max)
}
