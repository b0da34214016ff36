package render

import (
	"math"
	"testing"
)

// unitTriangle maps to pixels (5,5), (5,9), (9,5) on a 10x10 viewport.
func unitTriangle(t *testing.T) (*Viewport, Triangle) {
	t.Helper()
	vp, err := NewViewport(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	tri := NewTriangle(vp,
		Point{X: 0, Y: 0, Z: 0},
		Point{X: 0, Y: 10, Z: 0},
		Point{X: 10, Y: 0, Z: 0},
	)
	return vp, tri
}

func TestNewTriangle(t *testing.T) {
	_, tri := unitTriangle(t)

	corners := []Fragment{tri.A, tri.B, tri.C}
	want := []Fragment{{X: 5, Y: 5}, {X: 5, Y: 9}, {X: 9, Y: 5}}
	for i := range corners {
		if corners[i] != want[i] {
			t.Errorf("corner %d = %+v, want %+v", i, corners[i], want[i])
		}
	}

	wantBox := BoundingBox{XMin: 5, XMax: 9, YMin: 5, YMax: 9}
	if tri.Bounds != wantBox {
		t.Errorf("bounds = %+v, want %+v", tri.Bounds, wantBox)
	}
	if tri.Bounds.Pixels() != 25 {
		t.Errorf("bounds pixels = %d, want 25", tri.Bounds.Pixels())
	}

	k := tri.Constants
	if k.ABAB != 16 || k.ACAC != 16 || k.ABAC != 0 || k.TotalArea != 256 {
		t.Errorf("constants = %+v", k)
	}
}

func TestInside(t *testing.T) {
	_, tri := unitTriangle(t)

	tests := []struct {
		name string
		x, y int64
		want bool
	}{
		{"corner a", 5, 5, true},
		{"above a", 5, 6, true},
		{"right of a", 6, 5, true},
		{"corner b", 5, 9, true},
		{"hypotenuse", 7, 7, true},
		{"past hypotenuse", 8, 8, false},
		{"far away", 2, 3, false},
		{"origin", 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bc := tri.Barycentric(Fragment{X: tc.x, Y: tc.y})
			if got := Inside(bc); got != tc.want {
				t.Errorf("Inside(%d, %d) = %v, want %v (bc %+v)", tc.x, tc.y, got, tc.want, bc)
			}
		})
	}
}

func TestBarycentricSumsToOne(t *testing.T) {
	vp, err := NewViewport(64, 48)
	if err != nil {
		t.Fatal(err)
	}
	tri := NewTriangle(vp,
		Point{X: -0.9, Y: -0.7, Z: 0.2},
		Point{X: 0.6, Y: -0.2, Z: -0.4},
		Point{X: 0.1, Y: 0.8, Z: 0.9},
	)
	for y := tri.Bounds.YMin; y <= tri.Bounds.YMax; y++ {
		for x := tri.Bounds.XMin; x <= tri.Bounds.XMax; x++ {
			bc := tri.Barycentric(Fragment{X: x, Y: y})
			if sum := bc.Alpha + bc.Beta + bc.Gamma; math.Abs(sum-1) > 1e-9 {
				t.Fatalf("(%d, %d): coordinates sum to %v", x, y, sum)
			}
		}
	}

	// At a corner the interpolated depth is that corner's depth.
	bc := tri.Barycentric(tri.B)
	if math.Abs(bc.Z-tri.B.Z) > 1e-12 {
		t.Errorf("depth at corner B = %v, want %v", bc.Z, tri.B.Z)
	}
}

func TestDegenerateTriangle(t *testing.T) {
	vp, err := NewViewport(10, 10)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		a, b, c Point
	}{
		{"collinear", Point{X: -1, Y: -1}, Point{X: 0, Y: 0}, Point{X: 1, Y: 1}},
		{"coincident", Point{X: 0.5, Y: 0.5}, Point{X: 0.5, Y: 0.5}, Point{X: 0.5, Y: 0.5}},
		{"collapses after rounding", Point{X: 0, Y: 0}, Point{X: 0.01, Y: 0}, Point{X: 0, Y: 0.01}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tri := NewTriangle(vp, tc.a, tc.b, tc.c)
			if !tri.Degenerate() {
				t.Fatalf("expected degenerate, constants %+v", tri.Constants)
			}
			if Inside(tri.Barycentric(tri.A)) {
				t.Error("degenerate triangle reported a pixel inside")
			}
		})
	}
}
