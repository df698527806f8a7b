package dim2

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RegularPolygon builds a closed regular n-gon inscribed in the given
// radius around center, the 2D equivalent of dim3's cube/sphere/cylinder
// primitive constructors. Not present in the reference implementation,
// which only ever exercises LineStrip directly in its tests; added since
// dim2 otherwise has no closed-shape constructor at all.
func RegularPolygon(center mgl64.Vec2, radius float64, sides int) Solid {
	strip := NewLineStrip()
	for i := 0; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		point := center.Add(mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(radius))
		strip = strip.LineTo(point)
	}
	return strip.Enclose().Build()
}
