package render

import "math"

// BoundingBox is the inclusive pixel rectangle covering a triangle's corners.
type BoundingBox struct {
	XMin, XMax int64
	YMin, YMax int64
}

// Rows returns the inclusive row range.
func (b BoundingBox) Rows() (lo, hi int64) {
	return b.YMin, b.YMax
}

// Columns returns the inclusive column range.
func (b BoundingBox) Columns() (lo, hi int64) {
	return b.XMin, b.XMax
}

// Pixels returns how many pixels the box covers.
func (b BoundingBox) Pixels() int64 {
	return (b.XMax - b.XMin + 1) * (b.YMax - b.YMin + 1)
}

// BarycentricConstants are the per-triangle integer terms shared by every
// pixel test. AB and AC are the edge vectors from corner A.
type BarycentricConstants struct {
	AB, AC    Fragment
	ABAB      int64 // AB · AB
	ACAC      int64 // AC · AC
	ABAC      int64 // AB · AC
	TotalArea int64 // ABAB*ACAC - ABAC², zero for degenerate triangles
}

func newBarycentricConstants(a, b, c Fragment) BarycentricConstants {
	ab := b.Sub(a)
	ac := c.Sub(a)
	abab := ab.DotSelf()
	acac := ac.DotSelf()
	abac := ab.Dot(ac)
	return BarycentricConstants{
		AB:        ab,
		AC:        ac,
		ABAB:      abab,
		ACAC:      acac,
		ABAC:      abac,
		TotalArea: abab*acac - abac*abac,
	}
}

// Triangle is a triangle set up for rasterization: pixel-space corners
// carrying depth, their bounding box and the barycentric constants.
type Triangle struct {
	A, B, C   Fragment
	Bounds    BoundingBox
	Constants BarycentricConstants
}

// NewTriangle maps three window-space corners through vp and precomputes
// everything the pixel loop needs.
func NewTriangle(vp *Viewport, a, b, c Point) Triangle {
	fa := vp.WindowToPixel(a)
	fb := vp.WindowToPixel(b)
	fc := vp.WindowToPixel(c)
	return Triangle{
		A: fa,
		B: fb,
		C: fc,
		Bounds: BoundingBox{
			XMin: min(fa.X, fb.X, fc.X),
			XMax: max(fa.X, fb.X, fc.X),
			YMin: min(fa.Y, fb.Y, fc.Y),
			YMax: max(fa.Y, fb.Y, fc.Y),
		},
		Constants: newBarycentricConstants(fa, fb, fc),
	}
}

// Degenerate reports whether the pixel-space corners are collinear or
// coincident. Degenerate triangles cover no pixels.
func (t *Triangle) Degenerate() bool {
	return t.Constants.TotalArea == 0
}

// Barycentric holds the weights of corners A, B and C at a pixel together
// with the depth interpolated from them.
type Barycentric struct {
	Alpha, Beta, Gamma float64
	Z                  float64
}

// Barycentric computes the coordinates of pixel v relative to the triangle.
// For a degenerate triangle every field is NaN, so Inside reports false.
func (t *Triangle) Barycentric(v Fragment) Barycentric {
	k := &t.Constants
	if k.TotalArea == 0 {
		nan := math.NaN()
		return Barycentric{Alpha: nan, Beta: nan, Gamma: nan, Z: nan}
	}

	av := v.Sub(t.A)
	avab := av.Dot(k.AB)
	avac := av.Dot(k.AC)
	area := float64(k.TotalArea)

	beta := float64(k.ACAC*avab-k.ABAC*avac) / area
	gamma := float64(k.ABAB*avac-k.ABAC*avab) / area
	alpha := 1 - beta - gamma

	return Barycentric{
		Alpha: alpha,
		Beta:  beta,
		Gamma: gamma,
		Z:     alpha*t.A.Z + beta*t.B.Z + gamma*t.C.Z,
	}
}

// Inside reports whether all three coordinates lie in [0, 1]. Pixels exactly
// on an edge or corner count as inside.
func Inside(b Barycentric) bool {
	return inUnit(b.Alpha) && inUnit(b.Beta) && inUnit(b.Gamma)
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
