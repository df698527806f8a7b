package bsp_test

import (
	"math"
	"testing"

	"github.com/akmonengine/csg/bsp"
	"github.com/go-gl/mathgl/mgl64"
)

// testVertex and testFace give the generic engine a minimal 3D
// instantiation for testing in isolation from the dim3 package.

type testVertex struct {
	pos mgl64.Vec3
}

func (v testVertex) Position() mgl64.Vec3 { return v.pos }

func (v testVertex) Interpolate(other testVertex, t float64) testVertex {
	return testVertex{pos: v.pos.Add(other.pos.Sub(v.pos).Mul(t))}
}

type testFace struct {
	vertices []testVertex
	plane    bsp.Plane[mgl64.Vec3]
}

func newTestFace(vertices []testVertex) testFace {
	p0, p1, p2 := vertices[0].pos, vertices[1].pos, vertices[2].pos
	normal := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	return testFace{vertices: vertices, plane: bsp.Plane[mgl64.Vec3]{Normal: normal, W: normal.Dot(p0)}}
}

func (f testFace) Vertices() []testVertex       { return f.vertices }
func (f testFace) Plane() bsp.Plane[mgl64.Vec3] { return f.plane }

func (f testFace) New(vertices []testVertex) bsp.Face[testVertex, mgl64.Vec3] {
	return newTestFace(vertices)
}

func (f testFace) Flip() bsp.Face[testVertex, mgl64.Vec3] {
	n := len(f.vertices)
	flipped := make([]testVertex, n)
	for i, v := range f.vertices {
		flipped[n-1-i] = v
	}
	return newTestFace(flipped)
}

func quad(z float64) testFace {
	return newTestFace([]testVertex{
		{pos: mgl64.Vec3{-1, -1, z}},
		{pos: mgl64.Vec3{1, -1, z}},
		{pos: mgl64.Vec3{1, 1, z}},
		{pos: mgl64.Vec3{-1, 1, z}},
	})
}

func TestPlaneFlipIsInvolution(t *testing.T) {
	plane := bsp.Plane[mgl64.Vec3]{Normal: mgl64.Vec3{0, 0, 1}, W: 2}
	back := plane.Flip().Flip()

	if back.Normal != plane.Normal || back.W != plane.W {
		t.Fatalf("flip(flip(p)) = %+v, want %+v", back, plane)
	}
}

func TestSplitCoplanarOrientationDispatch(t *testing.T) {
	plane := bsp.Plane[mgl64.Vec3]{Normal: mgl64.Vec3{0, 0, 1}, W: 0}
	agreeing := quad(0)
	opposing := agreeing.Flip().(testFace)

	result := bsp.Split[testVertex, mgl64.Vec3](plane, agreeing, 1e-4, 3)
	if result.CoplanarFront == nil || result.CoplanarBack != nil {
		t.Fatalf("agreeing face should land in coplanarFront, got %+v", result)
	}

	result = bsp.Split[testVertex, mgl64.Vec3](plane, opposing, 1e-4, 3)
	if result.CoplanarBack == nil || result.CoplanarFront != nil {
		t.Fatalf("opposing face should land in coplanarBack, got %+v", result)
	}
}

func TestSplitQuadAcrossCenter(t *testing.T) {
	plane := bsp.Plane[mgl64.Vec3]{Normal: mgl64.Vec3{1, 0, 0}, W: 0}
	unitQuad := newTestFace([]testVertex{
		{pos: mgl64.Vec3{-1, -1, 0}},
		{pos: mgl64.Vec3{1, -1, 0}},
		{pos: mgl64.Vec3{1, 1, 0}},
		{pos: mgl64.Vec3{-1, 1, 0}},
	})

	result := bsp.Split[testVertex, mgl64.Vec3](plane, unitQuad, 1e-4, 3)
	if result.Front == nil || result.Back == nil {
		t.Fatalf("spanning quad must produce both fragments, got %+v", result)
	}

	front := result.Front.Vertices()
	back := result.Back.Vertices()
	if len(front) != 4 || len(back) != 4 {
		t.Fatalf("splitting a unit quad through its center should yield two quads, got front=%d back=%d", len(front), len(back))
	}

	union := map[mgl64.Vec3]bool{}
	for _, v := range front {
		union[v.Position()] = true
	}
	for _, v := range back {
		union[v.Position()] = true
	}
	for _, want := range []mgl64.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}, {0, -1, 0}, {0, 1, 0}} {
		if !union[want] {
			t.Errorf("expected vertex union to contain %v", want)
		}
	}
}

func TestSplitConservesArea(t *testing.T) {
	plane := bsp.Plane[mgl64.Vec3]{Normal: mgl64.Vec3{1, 0, 0}, W: 0.3}
	q := quad(0)

	result := bsp.Split[testVertex, mgl64.Vec3](plane, q, 1e-4, 3)
	total := polygonArea(result.Front.Vertices()) + polygonArea(result.Back.Vertices())
	want := polygonArea(q.vertices)

	if math.Abs(total-want) > 1e-9 {
		t.Fatalf("split fragments cover area %v, want %v", total, want)
	}
}

func polygonArea(vertices []testVertex) float64 {
	if len(vertices) == 0 {
		return 0
	}
	var sum mgl64.Vec3
	n := len(vertices)
	for i := 0; i < n; i++ {
		a := vertices[i].pos
		b := vertices[(i+1)%n].pos
		sum = sum.Add(a.Cross(b))
	}
	return sum.Len() / 2
}
