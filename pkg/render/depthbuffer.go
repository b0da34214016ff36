package render

import "math"

// FarDepth marks a cell no triangle has reached.
const FarDepth = math.MaxFloat64

// DepthBuffer is a width x height grid of depths, indexed by (x, y) with x
// the column. Smaller values are nearer to the viewer.
type DepthBuffer struct {
	Width  int       // columns
	Height int       // rows
	Depth  []float64 // row-major, Depth[y*Width+x]
}

// NewDepthBuffer creates a buffer with every cell set to FarDepth.
func NewDepthBuffer(width, height int) *DepthBuffer {
	width = max(width, 0)
	height = max(height, 0)
	db := &DepthBuffer{
		Width:  width,
		Height: height,
		Depth:  make([]float64, width*height),
	}
	db.Clear()
	return db
}

// Clear resets every cell to FarDepth.
func (db *DepthBuffer) Clear() {
	// Use copy-doubling for faster clearing
	n := len(db.Depth)
	if n == 0 {
		return
	}
	db.Depth[0] = FarDepth
	for i := 1; i < n; i *= 2 {
		copy(db.Depth[i:], db.Depth[:i])
	}
}

func (db *DepthBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < db.Width && y >= 0 && y < db.Height
}

// At returns the depth at (x, y), or FarDepth if out of bounds.
func (db *DepthBuffer) At(x, y int) float64 {
	if !db.inBounds(x, y) {
		return FarDepth
	}
	return db.Depth[y*db.Width+x]
}

// Update stores z at (x, y) if it is nearer than the current value and
// reports whether the cell changed. Out-of-range cells are ignored.
func (db *DepthBuffer) Update(x, y int, z float64) bool {
	if !db.inBounds(x, y) {
		return false
	}
	i := y*db.Width + x
	if !(z < db.Depth[i]) {
		return false
	}
	db.Depth[i] = z
	return true
}

// Covered reports whether any triangle wrote to (x, y).
func (db *DepthBuffer) Covered(x, y int) bool {
	return db.At(x, y) != FarDepth
}

// CoveredCount returns the number of cells written at least once.
func (db *DepthBuffer) CoveredCount() int {
	n := 0
	for _, d := range db.Depth {
		if d != FarDepth {
			n++
		}
	}
	return n
}
