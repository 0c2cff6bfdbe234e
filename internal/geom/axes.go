package geom

// Axes holds a value for each of the two layout axes.
type Axes[T any] struct {
	X T
	Y T
}

// Splat creates Axes with the same value on both axes.
func Splat[T any](v T) Axes[T] {
	return Axes[T]{X: v, Y: v}
}

// Point is a position relative to a frame origin (top-left, y grows down).
type Point struct {
	X Abs
	Y Abs
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a two-dimensional extent.
type Size struct {
	W Abs
	H Abs
}

// Fits reports whether other fits into s on both axes.
func (s Size) Fits(other Size) bool {
	return s.W.Fits(other.W) && s.H.Fits(other.H)
}

func (s Size) String() string {
	return s.W.String() + " x " + s.H.String()
}

// Region describes the space offered to a layout operation: a size plus,
// per axis, whether the produced frame should expand to the full extent
// even if its content is smaller.
type Region struct {
	Size   Size
	Expand Axes[bool]
	// Repeat marks that further identical regions follow this one, as when
	// flowing across pages.
	Repeat bool
}

// UnboundedRegion is the region used for intrinsic-size measurement:
// infinite extent on both axes, non-expanding, no continuation.
func UnboundedRegion() Region {
	return Region{
		Size:   Size{W: Inf(), H: Inf()},
		Expand: Splat(false),
	}
}
