// Package render turns normalized triangle meshes into a depth raster.
//
// The pipeline is: a Viewport maps window space onto the pixel grid, each
// triangle is set up once (pixel-space corners, bounding box, barycentric
// constants), then every pixel in its bounding box is tested and, when inside,
// offered to the DepthBuffer under the selected Mode.
package render

import "github.com/taigrr/zraster/pkg/math3d"

// Point is a window-space position. Positive Z points toward the viewer.
type Point = math3d.Vec3

// Fragment is a pixel-space sample: integer column X, integer row Y and a
// depth Z where smaller is nearer.
//
// Sub, Dot and DotSelf work on X and Y only so barycentric arithmetic stays
// in exact integer space.
type Fragment struct {
	X, Y int64
	Z    float64
}

// Sub returns the pixel-space vector a - b. Depth is not carried.
func (a Fragment) Sub(b Fragment) Fragment {
	return Fragment{X: a.X - b.X, Y: a.Y - b.Y}
}

// Dot returns the integer dot product of the (X, Y) components.
func (a Fragment) Dot(b Fragment) int64 {
	return a.X*b.X + a.Y*b.Y
}

// DotSelf returns a · a.
func (a Fragment) DotSelf() int64 {
	return a.X*a.X + a.Y*a.Y
}
