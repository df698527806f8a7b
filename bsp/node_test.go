package bsp_test

import (
	"testing"

	"github.com/akmonengine/csg/bsp"
	"github.com/go-gl/mathgl/mgl64"
)

func unitCube() []bsp.Face[testVertex, mgl64.Vec3] {
	h := 1.0
	faceDefs := [][4][3]float64{
		{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}},     // +Z
		{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}, // -Z
		{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}},     // +X
		{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, // -X
		{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}},     // +Y
		{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, // -Y
	}

	faces := make([]bsp.Face[testVertex, mgl64.Vec3], len(faceDefs))
	for i, def := range faceDefs {
		vertices := make([]testVertex, 4)
		for j, p := range def {
			vertices[j] = testVertex{pos: mgl64.Vec3{p[0], p[1], p[2]}}
		}
		faces[i] = newTestFace(vertices)
	}
	return faces
}

func buildNode(t *testing.T, faces []bsp.Face[testVertex, mgl64.Vec3]) *bsp.Node[testVertex, mgl64.Vec3] {
	t.Helper()
	node := bsp.New[testVertex, mgl64.Vec3](bsp.Config{Epsilon: 1e-4, MinVertices: 3})
	if err := node.Build(faces); err != nil {
		t.Fatalf("build: %v", err)
	}
	return node
}

func TestInvertInvolution(t *testing.T) {
	node := buildNode(t, unitCube())

	before, err := node.AllFaces()
	if err != nil {
		t.Fatalf("all faces: %v", err)
	}

	node.Invert()
	node.Invert()

	after, err := node.AllFaces()
	if err != nil {
		t.Fatalf("all faces: %v", err)
	}

	if len(before) != len(after) {
		t.Fatalf("invert(invert(t)) changed face count: %d -> %d", len(before), len(after))
	}
}

func TestClipFacesOnPlanelessNodeReturnsOwnFaces(t *testing.T) {
	node := bsp.New[testVertex, mgl64.Vec3](bsp.Config{Epsilon: 1e-4, MinVertices: 3})

	result, err := node.ClipFaces(unitCube())
	if err != nil {
		t.Fatalf("clip faces: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("a never-built node must return its own (empty) faces, got %d", len(result))
	}
}

func TestBuildRespectsFaceCeiling(t *testing.T) {
	node := bsp.New[testVertex, mgl64.Vec3](bsp.Config{Epsilon: 1e-4, MinVertices: 3, MaxFaces: 2})

	err := node.Build(unitCube())
	if err != bsp.ErrFaceCeilingExceeded {
		t.Fatalf("expected ErrFaceCeilingExceeded, got %v", err)
	}
}

func TestBuildIsIncremental(t *testing.T) {
	faces := unitCube()

	whole := buildNode(t, faces)
	wholeFaces, err := whole.AllFaces()
	if err != nil {
		t.Fatalf("all faces: %v", err)
	}

	incremental := bsp.New[testVertex, mgl64.Vec3](bsp.Config{Epsilon: 1e-4, MinVertices: 3})
	if err := incremental.Build(faces[:3]); err != nil {
		t.Fatalf("build A: %v", err)
	}
	if err := incremental.Build(faces[3:]); err != nil {
		t.Fatalf("build B: %v", err)
	}
	incrementalFaces, err := incremental.AllFaces()
	if err != nil {
		t.Fatalf("all faces: %v", err)
	}

	if len(wholeFaces) != len(incrementalFaces) {
		t.Fatalf("incremental build produced %d faces, one-shot build produced %d", len(incrementalFaces), len(wholeFaces))
	}
}
