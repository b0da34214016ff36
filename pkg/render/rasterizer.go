package render

import "fmt"

// MeshSource supplies the geometry of a normalized scene, one submodel at a
// time. Positions are flat x,y,z triples in window space; indices are flat
// triples into positions.
type MeshSource interface {
	SubmodelCount() int
	SubmodelGeometry(i int) (positions []float64, indices []uint32)
}

// Stats counts the work done by one or more Rasterize calls.
type Stats struct {
	Triangles  int // triangles set up
	Degenerate int // zero-area triangles skipped
	Tested     int // bounding-box pixels tested
	Inside     int // pixels that passed the inside test
	Plotted    int // inside pixels accepted by the mode
	Updated    int // depth-buffer cells that changed
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Triangles += o.Triangles
	s.Degenerate += o.Degenerate
	s.Tested += o.Tested
	s.Inside += o.Inside
	s.Plotted += o.Plotted
	s.Updated += o.Updated
}

// Rasterize draws one submodel into db.
//
// Every index triple is one triangle. A ragged index list or an index past
// the end of positions is a programming error and panics; validate imported
// geometry first. Triangles are independent, so the final buffer does not
// depend on triangle order.
func Rasterize(db *DepthBuffer, vp *Viewport, positions []float64, indices []uint32, mode Mode) Stats {
	if len(indices)%3 != 0 {
		panic(fmt.Sprintf("render: index count %d is not a multiple of 3", len(indices)))
	}
	plot := mode.policy()

	var stats Stats
	for i := 0; i < len(indices); i += 3 {
		tri := NewTriangle(vp,
			vertexAt(positions, indices[i]),
			vertexAt(positions, indices[i+1]),
			vertexAt(positions, indices[i+2]),
		)
		stats.Triangles++
		if tri.Degenerate() {
			stats.Degenerate++
			continue
		}
		drawTriangle(db, &tri, plot, &stats)
	}
	return stats
}

func vertexAt(positions []float64, idx uint32) Point {
	base := int(idx) * 3
	if base < 0 || base+2 >= len(positions) {
		panic(fmt.Sprintf("render: vertex index %d out of range (%d vertices)", idx, len(positions)/3))
	}
	return Point{X: positions[base], Y: positions[base+1], Z: positions[base+2]}
}

func drawTriangle(db *DepthBuffer, tri *Triangle, plot pixelPolicy, stats *Stats) {
	yMin, yMax := tri.Bounds.Rows()
	xMin, xMax := tri.Bounds.Columns()

	for y := yMin; y <= yMax; y++ {
		for x := xMin; x <= xMax; x++ {
			bc := tri.Barycentric(Fragment{X: x, Y: y})
			stats.Tested++

			if !Inside(bc) {
				continue
			}
			stats.Inside++

			if !plot(bc) {
				continue
			}
			stats.Plotted++

			if db.Update(int(x), int(y), bc.Z) {
				stats.Updated++
			}
		}
	}
}

// Render rasterizes every submodel of src into a fresh width x height depth
// buffer. It fails only on invalid dimensions.
func Render(src MeshSource, width, height int, mode Mode) (*DepthBuffer, Stats, error) {
	vp, err := NewViewport(width, height)
	if err != nil {
		return nil, Stats{}, err
	}
	db := NewDepthBuffer(width, height)
	log := Logger()

	var total Stats
	for i := range src.SubmodelCount() {
		positions, indices := src.SubmodelGeometry(i)
		stats := Rasterize(db, vp, positions, indices, mode)
		log.Debug("rasterized submodel",
			"index", i,
			"triangles", stats.Triangles,
			"degenerate", stats.Degenerate,
			"plotted", stats.Plotted)
		total.Add(stats)
	}

	log.Info("render complete",
		"width", width,
		"height", height,
		"mode", mode,
		"triangles", total.Triangles,
		"covered", db.CoveredCount())
	return db, total, nil
}
