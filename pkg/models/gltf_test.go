package models

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// writeTestGLB writes a document with one indexed triangle primitive, one
// unindexed primitive and one line primitive.
func writeTestGLB(t *testing.T) string {
	t.Helper()

	doc := gltf.NewDocument()
	indexed := gltf.Index(modeler.WriteIndices(doc, []uint16{0, 1, 2, 0, 2, 3}))
	quad := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}})
	tri := modeler.WritePosition(doc, [][3]float32{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}})

	doc.Meshes = []*gltf.Mesh{
		{
			Name: "Quad",
			Primitives: []*gltf.Primitive{
				{
					Indices:    indexed,
					Attributes: map[string]int{gltf.POSITION: quad},
				},
				{
					Attributes: map[string]int{gltf.POSITION: tri},
				},
				{
					Mode:       gltf.PrimitiveLines,
					Attributes: map[string]int{gltf.POSITION: tri},
				},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "quad.glb")
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}
	return path
}

func TestLoadGLTF(t *testing.T) {
	path := writeTestGLB(t)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Line primitive is skipped
	if len(s.Submodels) != 2 {
		t.Fatalf("got %d submodels, want 2", len(s.Submodels))
	}

	indexed := s.Submodels[0]
	if indexed.Name != "Quad.0" {
		t.Errorf("name = %q, want Quad.0", indexed.Name)
	}
	if indexed.VertexCount() != 4 || indexed.TriangleCount() != 2 {
		t.Errorf("indexed: %d vertices, %d triangles; want 4, 2", indexed.VertexCount(), indexed.TriangleCount())
	}

	seq := s.Submodels[1]
	if seq.TriangleCount() != 1 || seq.Indices[2] != 2 {
		t.Errorf("sequential indices = %v, want [0 1 2]", seq.Indices)
	}

	if s.BoundsMax.X != 2 || s.BoundsMax.Z != 1 {
		t.Errorf("bounds max = %v, want x=2 z=1", s.BoundsMax)
	}
}

func TestLoadGLTFInvalidPath(t *testing.T) {
	if _, err := LoadGLTF("/nonexistent/path.glb"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}
