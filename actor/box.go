package actor

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the absolute tolerance used by ApproxEqual and IsEmpty.
const Epsilon float32 = 1e-5

// ErrNegativeScale is returned by Scale when given a negative scalar.
var ErrNegativeScale = errors.New("box: negative scale factor")

// UnitBox is the box of size 1x1 centered on the origin.
var UnitBox = Box{Left: -0.5, Bottom: -0.5, Right: 0.5, Top: 0.5}

// Box is an axis-aligned bounding box in a right-handed 2D coordinate
// system (X+ right, Y+ up), stored as its four edges.
//
// The edges are not required to be ordered: raw construction accepts
// Left > Right or Bottom > Top, and the measurement accessors (Width,
// Height, Size) use absolute differences so either ordering measures the
// same. The factory constructors and combinators always produce canonical
// boxes (Left <= Right, Bottom <= Top).
//
// Box is a plain immutable value: every operation returns a new Box and
// none allocates, so it is safe to use from concurrent workers.
type Box struct {
	Left   float32
	Bottom float32
	Right  float32
	Top    float32
}

// NewBox assigns the four edges directly, without validation or
// canonicalization.
func NewBox(left, bottom, right, top float32) Box {
	return Box{Left: left, Bottom: bottom, Right: right, Top: top}
}

// NewBoxFromCorners builds a box from its bottom-left and top-right corners.
func NewBoxFromCorners(bottomLeft, topRight mgl32.Vec2) Box {
	return NewBox(bottomLeft.X(), bottomLeft.Y(), topRight.X(), topRight.Y())
}

// BoxFromDimensions builds the box with the given bottom-left corner and
// dimensions. Negative dimensions are accepted and produce a
// non-canonical box.
func BoxFromDimensions(left, bottom, width, height float32) Box {
	return NewBox(left, bottom, left+width, bottom+height)
}

// BoxCenteredAt builds the box of the given size centered on center.
func BoxCenteredAt(center, size mgl32.Vec2) Box {
	bottomLeft := center.Sub(size.Mul(0.5))
	return BoxFromDimensions(bottomLeft.X(), bottomLeft.Y(), size.X(), size.Y())
}

// BoxOfPoints returns the smallest box containing both points.
func BoxOfPoints(a, b mgl32.Vec2) Box {
	return NewBox(
		min(a.X(), b.X()),
		min(a.Y(), b.Y()),
		max(a.X(), b.X()),
		max(a.Y(), b.Y()),
	)
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float32 {
	return mgl32.Abs(b.Right - b.Left)
}

// Height returns the vertical extent of the box.
func (b Box) Height() float32 {
	return mgl32.Abs(b.Bottom - b.Top)
}

// Size returns the extents of the box on both axes.
func (b Box) Size() mgl32.Vec2 {
	return mgl32.Vec2{b.Width(), b.Height()}
}

// Center returns the center point of the box.
func (b Box) Center() mgl32.Vec2 {
	return b.BottomLeft().Add(b.Size().Mul(0.5))
}

func (b Box) TopLeft() mgl32.Vec2     { return mgl32.Vec2{b.Left, b.Top} }
func (b Box) TopRight() mgl32.Vec2    { return mgl32.Vec2{b.Right, b.Top} }
func (b Box) BottomLeft() mgl32.Vec2  { return mgl32.Vec2{b.Left, b.Bottom} }
func (b Box) BottomRight() mgl32.Vec2 { return mgl32.Vec2{b.Right, b.Bottom} }

// Intersects reports whether the two boxes' projections overlap on both
// axes. The comparison is edge-inclusive: touching boxes intersect.
func (b Box) Intersects(other Box) bool {
	return other.Bottom <= b.Top && other.Top >= b.Bottom &&
		other.Right >= b.Left && other.Left <= b.Right
}

// Contains reports whether every edge of inner lies within or on the
// edges of b.
func (b Box) Contains(inner Box) bool {
	return b.Left <= inner.Left && inner.Right <= b.Right &&
		b.Bottom <= inner.Bottom && inner.Top <= b.Top
}

// Encloses reports whether every edge of inner lies strictly inside the
// edges of b; touching edges do not count.
func (b Box) Encloses(inner Box) bool {
	return b.Left < inner.Left && inner.Right < b.Right &&
		b.Bottom < inner.Bottom && inner.Top < b.Top
}

// ContainsPoint reports whether the point lies in the box. With
// closedRegion the near edges are inclusive; without it only points
// strictly past the near edges count. In both modes a point sitting on
// one far edge is inside, but a point on both far edges at once is not:
// the far-edge tests are combined with an exclusive or, so the top-right
// corner is excluded and a zero-size box contains no point at all.
func (b Box) ContainsPoint(point mgl32.Vec2, closedRegion bool) bool {
	var inX, inY bool
	if closedRegion {
		inX = point.X() >= b.Left && point.X() <= b.Right
		inY = point.Y() >= b.Bottom && point.Y() <= b.Top
	} else {
		inX = point.X() > b.Left && point.X() <= b.Right
		inY = point.Y() > b.Bottom && point.Y() <= b.Top
	}
	if !inX || !inY {
		return false
	}

	onRight := point.X() >= b.Right
	onTop := point.Y() >= b.Top

	return (onRight != onTop) || (!onRight && !onTop)
}

// IsEmpty reports whether both extents are within tolerance of zero.
func (b Box) IsEmpty() bool {
	return floatEqual(b.Width(), 0) && floatEqual(b.Height(), 0)
}

// ClosestPoint clamps each coordinate of point independently into the
// box's ranges.
func (b Box) ClosestPoint(point mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		mgl32.Clamp(point.X(), b.Left, b.Right),
		mgl32.Clamp(point.Y(), b.Bottom, b.Top),
	}
}

// Intersect returns the overlap region of the two boxes. When they do not
// overlap the result would be inverted, and the zero box is returned
// instead; callers distinguish "no overlap" from "overlap at the origin"
// with IsEmpty or by comparing extents.
func (b Box) Intersect(other Box) Box {
	result := NewBox(
		max(b.Left, other.Left),
		max(b.Bottom, other.Bottom),
		min(b.Right, other.Right),
		min(b.Top, other.Top),
	)

	if result.Left > result.Right || result.Bottom > result.Top {
		return Box{}
	}
	return result
}

// Union returns the smallest box containing both boxes, with the same
// degenerate fallback as Intersect.
func (b Box) Union(other Box) Box {
	result := NewBox(
		min(b.Left, other.Left),
		min(b.Bottom, other.Bottom),
		max(b.Right, other.Right),
		max(b.Top, other.Top),
	)

	if result.Left > result.Right || result.Bottom > result.Top {
		return Box{}
	}
	return result
}

// ExtendToContain returns a box whose bounds are widened minimally so the
// point lies within it.
func (b Box) ExtendToContain(point mgl32.Vec2) Box {
	return NewBox(
		min(b.Left, point.X()),
		min(b.Bottom, point.Y()),
		max(b.Right, point.X()),
		max(b.Top, point.Y()),
	)
}

// IntersectPercentage returns the Jaccard overlap ratio of the two boxes:
// area(intersection) / (area(b) + area(other) - area(intersection)).
// Two zero-area boxes divide zero by zero; the IEEE NaN result is
// propagated, not special-cased.
func (b Box) IntersectPercentage(other Box) float32 {
	intersection := area(b.Intersect(other))
	return intersection / (area(b) + area(other) - intersection)
}

// Enlarged expands all four edges outward by amount. A negative amount
// shrinks the box.
func (b Box) Enlarged(amount float32) Box {
	return NewBox(b.Left-amount, b.Bottom-amount, b.Right+amount, b.Top+amount)
}

// Scale scales the box's extents by scalar around its own center. A
// negative scalar is rejected with ErrNegativeScale; this is the only
// validated input in the package.
func (b Box) Scale(scalar float32) (Box, error) {
	if scalar < 0 {
		return Box{}, ErrNegativeScale
	}
	return BoxCenteredAt(b.Center(), b.Size().Mul(scalar)), nil
}

// Translated shifts all four edges by offset.
func (b Box) Translated(offset mgl32.Vec2) Box {
	return NewBox(
		b.Left+offset.X(),
		b.Bottom+offset.Y(),
		b.Right+offset.X(),
		b.Top+offset.Y(),
	)
}

// Equals compares the four fields exactly. Use this, not ApproxEqual,
// wherever hashing is involved.
func (b Box) Equals(other Box) bool {
	return b == other
}

// ApproxEqual compares the four fields within Epsilon. It absorbs
// floating-point noise and is intentionally not consistent with Hash;
// never use it as a map or set key comparison.
func (b Box) ApproxEqual(other Box) bool {
	return floatEqual(b.Left, other.Left) &&
		floatEqual(b.Bottom, other.Bottom) &&
		floatEqual(b.Right, other.Right) &&
		floatEqual(b.Top, other.Top)
}

// floatEqual compares with a fixed absolute tolerance. mgl32's own
// FloatEqualThreshold switches to relative error away from zero, which
// would make the tolerance depend on magnitude.
func floatEqual(a, b float32) bool {
	return mgl32.Abs(a-b) <= Epsilon
}

// Hash combines the four field bit patterns with an odd-multiplier mixing
// scheme. It is consistent with Equals: boxes that compare exactly equal
// hash identically.
func (b Box) Hash() uint64 {
	h := uint64(17)
	h = h*31 + uint64(fieldBits(b.Left))
	h = h*31 + uint64(fieldBits(b.Bottom))
	h = h*31 + uint64(fieldBits(b.Right))
	h = h*31 + uint64(fieldBits(b.Top))
	return h
}

// fieldBits maps negative zero onto positive zero so that Hash stays
// consistent with Equals, under which -0 == +0.
func fieldBits(f float32) uint32 {
	if f == 0 {
		return 0
	}
	return math.Float32bits(f)
}

func area(b Box) float32 {
	return b.Width() * b.Height()
}

// Perimeter returns the perimeter of the box.
func Perimeter(b Box) float32 {
	return (b.Width() + b.Height()) * 2
}
