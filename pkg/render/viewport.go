package render

import (
	"errors"
	"fmt"
	"math"
)

// MaxExtent is the largest accepted pixel width or height. Up to this size
// every product in the barycentric setup fits in an int64 exactly.
const MaxExtent = 1 << 15

var (
	// ErrInvalidExtent is returned for a zero or negative image dimension.
	ErrInvalidExtent = errors.New("image width and height must be positive")
	// ErrExtentTooLarge is returned when a dimension exceeds MaxExtent.
	ErrExtentTooLarge = errors.New("image dimension too large")
	// ErrBadViewVolume is returned by NewAxisTransform for an interval that
	// is not symmetric around zero.
	ErrBadViewVolume = errors.New("view volume is not symmetric")
)

// ViewVolume is the symmetric window-space rectangle shown in the image.
// Right == -Left and Top == -Bottom always hold.
type ViewVolume struct {
	Left, Right float64
	Top, Bottom float64
}

// NewViewVolume builds a view volume with the same aspect ratio as a
// width x height pixel grid. The narrower dimension spans [-1, 1]; the wider
// one spans [-r, r] where r is the larger-to-smaller extent ratio.
func NewViewVolume(width, height int) ViewVolume {
	hw := float64(height) / float64(width)
	if width < height {
		return ViewVolume{Left: -1, Right: 1, Top: hw, Bottom: -hw}
	}
	return ViewVolume{Left: -1 / hw, Right: 1 / hw, Top: 1, Bottom: -1}
}

// AspectRatio returns height / width of the volume.
func (vv ViewVolume) AspectRatio() float64 {
	return (vv.Top - vv.Bottom) / (vv.Right - vv.Left)
}

// AxisTransform maps one window-space axis onto pixel indices:
// pixel = clamp(round(Scale*coord + Shift), 0, Extent-1).
type AxisTransform struct {
	Scale  float64
	Shift  float64
	Extent int64
}

// NewAxisTransform builds the transform for a pixel extent and the
// window-space interval [vvMin, vvMax], which must be symmetric (-vvMin == vvMax)
// and non-empty.
func NewAxisTransform(extent int, vvMin, vvMax float64) (AxisTransform, error) {
	if -vvMin != vvMax || !(vvMax > 0) {
		return AxisTransform{}, fmt.Errorf("%w: [%v, %v]", ErrBadViewVolume, vvMin, vvMax)
	}
	diff := vvMax - vvMin
	return AxisTransform{
		Scale:  float64(extent) / diff,
		Shift:  vvMax * float64(extent) / diff,
		Extent: int64(extent),
	}, nil
}

// WindowToPixel maps a window coordinate to a pixel index. Coordinates
// outside the view volume land on the first or last pixel instead of being
// discarded.
func (t AxisTransform) WindowToPixel(coord float64) int64 {
	p := math.Round(t.Scale*coord + t.Shift)
	// Clamp before converting so huge or NaN inputs never overflow int64
	if !(p > 0) {
		return 0
	}
	if p >= float64(t.Extent-1) {
		return t.Extent - 1
	}
	return int64(p)
}

// Viewport is the window-to-pixel mapping for one image. Build one per render.
type Viewport struct {
	Width  int
	Height int
	Volume ViewVolume
	X      AxisTransform
	Y      AxisTransform
}

// NewViewport builds the viewport for a width x height image.
//
// Dimensions must lie in [1, MaxExtent]. An asymmetric view volume can only
// come from a bug in NewViewVolume, so that case panics rather than
// returning an error.
func NewViewport(width, height int) (*Viewport, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidExtent, width, height)
	}
	if width > MaxExtent || height > MaxExtent {
		return nil, fmt.Errorf("%w: got %dx%d, max %d", ErrExtentTooLarge, width, height, MaxExtent)
	}

	vv := NewViewVolume(width, height)
	x, err := NewAxisTransform(width, vv.Left, vv.Right)
	if err != nil {
		panic(fmt.Sprintf("render: x axis of %dx%d viewport: %v", width, height, err))
	}
	y, err := NewAxisTransform(height, vv.Bottom, vv.Top)
	if err != nil {
		panic(fmt.Sprintf("render: y axis of %dx%d viewport: %v", width, height, err))
	}

	return &Viewport{
		Width:  width,
		Height: height,
		Volume: vv,
		X:      x,
		Y:      y,
	}, nil
}

// WindowToPixel maps a window-space point to a fragment. Depth is negated:
// window space has +Z toward the viewer, the depth buffer keeps the smallest
// value as nearest.
func (vp *Viewport) WindowToPixel(p Point) Fragment {
	return Fragment{
		X: vp.X.WindowToPixel(p.X),
		Y: vp.Y.WindowToPixel(p.Y),
		Z: -p.Z,
	}
}
