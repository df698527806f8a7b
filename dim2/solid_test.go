package dim2_test

import (
	"testing"

	"github.com/akmonengine/csg/dim2"
	"github.com/go-gl/mathgl/mgl64"
)

func square(half float64) dim2.Solid {
	return dim2.NewLineStrip().
		LineTo(mgl64.Vec2{-half, -half}).
		LineTo(mgl64.Vec2{half, -half}).
		LineTo(mgl64.Vec2{half, half}).
		LineTo(mgl64.Vec2{-half, half}).
		Enclose().
		Build()
}

func boundingBox(s dim2.Solid) (min, max mgl64.Vec2) {
	lines := s.ToLines()
	if len(lines) == 0 {
		return
	}
	min = lines[0].Vertices()[0].Pos
	max = min
	for _, l := range lines {
		for _, v := range l.Vertices() {
			p := v.Pos
			for axis := 0; axis < 2; axis++ {
				if p[axis] < min[axis] {
					min[axis] = p[axis]
				}
				if p[axis] > max[axis] {
					max[axis] = p[axis]
				}
			}
		}
	}
	return
}

func TestSquareBoundingBox(t *testing.T) {
	s := square(1)
	min, max := boundingBox(s)

	if min.X() != -1 || min.Y() != -1 || max.X() != 1 || max.Y() != 1 {
		t.Fatalf("bounding box = %v/%v, want (-1,-1)/(1,1)", min, max)
	}
}

func TestTotalSubtraction(t *testing.T) {
	small := square(0.5)
	big := square(1)

	result := small.Subtract(big)
	if len(result.ToLines()) != 0 {
		t.Fatalf("subtract(small, big).ToLines() has %d lines, want 0", len(result.ToLines()))
	}
}

func TestUnionCommutative(t *testing.T) {
	a := square(1)
	b := square(0.5).Translate(mgl64.Vec2{0.25, 0.25})

	ab := a.Union(b)
	ba := b.Union(a)

	minAB, maxAB := boundingBox(ab)
	minBA, maxBA := boundingBox(ba)

	if minAB != minBA || maxAB != maxBA {
		t.Fatalf("union not commutative by bounding box: %v/%v vs %v/%v", minAB, maxAB, minBA, maxBA)
	}
}

func TestSelfSubtractionIsEmpty(t *testing.T) {
	a := square(1)

	result := a.Subtract(a)
	if len(result.ToLines()) != 0 {
		t.Fatalf("S.subtract(S).ToLines() has %d lines, want 0", len(result.ToLines()))
	}
}

func TestSelfIntersectionIsRoundTrip(t *testing.T) {
	a := square(1)

	result := a.Intersect(a)

	minA, maxA := boundingBox(a)
	minR, maxR := boundingBox(result)
	if minA != minR || maxA != maxR {
		t.Fatalf("S.intersect(S) changed bounding box: %v/%v vs %v/%v", minA, maxA, minR, maxR)
	}
}

func TestRegularPolygonBoundingBox(t *testing.T) {
	p := dim2.RegularPolygon(mgl64.Vec2{0, 0}, 1, 32)
	min, max := boundingBox(p)

	const tol = 1e-6
	if min.X() < -1-tol || min.Y() < -1-tol || max.X() > 1+tol || max.Y() > 1+tol {
		t.Fatalf("bounding box = %v/%v exceeds unit circle", min, max)
	}
}
