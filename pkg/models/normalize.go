package models

import (
	"math"

	"github.com/taigrr/zraster/pkg/math3d"
)

// Normalize fits the scene into the [-1, 1] cube in place.
//
// The bounding box is taken across all submodels. Every axis is centered on
// its own midpoint and scaled by the same factor, 2 / largest extent, so the
// model keeps its proportions and its longest axis spans exactly [-1, 1].
// Returns false, leaving the scene untouched, when there is nothing to scale
// (no vertices, or every vertex at one point).
func (s *Scene) Normalize() bool {
	s.CalculateBounds()
	if s.VertexCount() == 0 {
		return false
	}

	extent := s.Size().MaxComponent()
	if extent <= 0 || math.IsInf(extent, 0) || math.IsNaN(extent) {
		return false
	}

	s.Transform(math3d.ScaleUniform(2 / extent).Mul(math3d.Translate(s.Center().Negate())))
	for i := range s.Submodels {
		sm := &s.Submodels[i]
		for v := range sm.VertexCount() {
			sm.SetVertex(v, clampUnit(sm.Vertex(v)))
		}
	}
	s.CalculateBounds()
	return true
}

// clampUnit absorbs the last-ulp rounding of (v - c) * 2/E at the extremes.
func clampUnit(v math3d.Vec3) math3d.Vec3 {
	return math3d.V3(clamp1(v.X), clamp1(v.Y), clamp1(v.Z))
}

func clamp1(f float64) float64 {
	return math.Max(-1, math.Min(1, f))
}
