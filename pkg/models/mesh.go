// Package models provides mesh loading and normalization for zraster.
//
// Importers hand back a Scene: one or more Submodels, each a flat XYZ
// position array plus a triangle index array into it. That is the only shape
// the rasterizer consumes.
package models

import (
	"fmt"

	"github.com/taigrr/zraster/pkg/math3d"
)

// Submodel is one named piece of a mesh file.
type Submodel struct {
	Name      string
	Positions []float64 // XYZ interleaved, len divisible by 3
	Indices   []uint32  // 3 per triangle, each < VertexCount()
}

// VertexCount returns the number of vertices.
func (s *Submodel) VertexCount() int {
	return len(s.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (s *Submodel) TriangleCount() int {
	return len(s.Indices) / 3
}

// Vertex returns the position of vertex i.
func (s *Submodel) Vertex(i int) math3d.Vec3 {
	return math3d.V3(s.Positions[i*3], s.Positions[i*3+1], s.Positions[i*3+2])
}

// SetVertex overwrites the position of vertex i.
func (s *Submodel) SetVertex(i int, v math3d.Vec3) {
	s.Positions[i*3] = v.X
	s.Positions[i*3+1] = v.Y
	s.Positions[i*3+2] = v.Z
}

// Validate checks the importer contract: both arrays hold whole triples and
// every index names an existing vertex.
func (s *Submodel) Validate() error {
	if len(s.Positions)%3 != 0 {
		return fmt.Errorf("submodel %q: %d position values is not a multiple of 3", s.Name, len(s.Positions))
	}
	if len(s.Indices)%3 != 0 {
		return fmt.Errorf("submodel %q: %d indices is not a multiple of 3", s.Name, len(s.Indices))
	}
	n := uint32(s.VertexCount())
	for i, idx := range s.Indices {
		if idx >= n {
			return fmt.Errorf("submodel %q: index %d at position %d out of range (%d vertices)", s.Name, idx, i, n)
		}
	}
	return nil
}

// Scene is everything loaded from one mesh file.
type Scene struct {
	Name      string
	Submodels []Submodel

	// Bounding box across all submodels (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewScene creates an empty scene.
func NewScene(name string) *Scene {
	return &Scene{
		Name:      name,
		Submodels: make([]Submodel, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box over every vertex
// of every submodel. An empty scene gets a zero box.
func (s *Scene) CalculateBounds() {
	first := true
	for i := range s.Submodels {
		sm := &s.Submodels[i]
		for v := range sm.VertexCount() {
			p := sm.Vertex(v)
			if first {
				s.BoundsMin, s.BoundsMax = p, p
				first = false
				continue
			}
			s.BoundsMin = s.BoundsMin.Min(p)
			s.BoundsMax = s.BoundsMax.Max(p)
		}
	}
	if first {
		s.BoundsMin, s.BoundsMax = math3d.Zero3(), math3d.Zero3()
	}
}

// Center returns the center of the bounding box.
func (s *Scene) Center() math3d.Vec3 {
	return s.BoundsMin.Add(s.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (s *Scene) Size() math3d.Vec3 {
	return s.BoundsMax.Sub(s.BoundsMin)
}

// VertexCount returns the number of vertices across all submodels.
func (s *Scene) VertexCount() int {
	n := 0
	for i := range s.Submodels {
		n += s.Submodels[i].VertexCount()
	}
	return n
}

// TriangleCount returns the number of triangles across all submodels.
func (s *Scene) TriangleCount() int {
	n := 0
	for i := range s.Submodels {
		n += s.Submodels[i].TriangleCount()
	}
	return n
}

// Validate checks every submodel.
func (s *Scene) Validate() error {
	for i := range s.Submodels {
		if err := s.Submodels[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Transform applies a transformation matrix to all vertices.
func (s *Scene) Transform(mat math3d.Mat4) {
	for i := range s.Submodels {
		sm := &s.Submodels[i]
		for v := range sm.VertexCount() {
			sm.SetVertex(v, mat.MulVec3(sm.Vertex(v)))
		}
	}
	s.CalculateBounds()
}

// SubmodelCount returns the number of submodels.
// Implements render.MeshSource interface.
func (s *Scene) SubmodelCount() int {
	return len(s.Submodels)
}

// SubmodelGeometry returns the position and index arrays of submodel i.
// Implements render.MeshSource interface.
func (s *Scene) SubmodelGeometry(i int) (positions []float64, indices []uint32) {
	sm := &s.Submodels[i]
	return sm.Positions, sm.Indices
}
