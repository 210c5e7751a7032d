// Package geom holds the axis-aligned geometry shared by the library and
// placement models. Coordinates are database units unless a caller says
// otherwise.
package geom

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle given by its lower-left and upper-right
// corners.
type Rect struct {
	XLL, YLL float64
	XUR, YUR float64
}

// EmptyRect returns the identity of the bounding-box fold: LL at +Inf and UR
// at -Inf, so the first ExpandRect snaps to the expanded geometry.
func EmptyRect() Rect {
	return Rect{
		XLL: math.Inf(1),
		YLL: math.Inf(1),
		XUR: math.Inf(-1),
		YUR: math.Inf(-1),
	}
}

// NewRect builds a rectangle from two corners in any order.
func NewRect(x1, y1, x2, y2 float64) Rect {
	return Rect{
		XLL: math.Min(x1, x2),
		YLL: math.Min(y1, y2),
		XUR: math.Max(x1, x2),
		YUR: math.Max(y1, y2),
	}
}

// BoundingBoxOf folds rects into one covering rectangle. With no input it
// returns EmptyRect; callers must check IsEmpty before using the result.
func BoundingBoxOf(rects ...Rect) Rect {
	bbox := EmptyRect()
	for _, r := range rects {
		bbox.ExpandRect(r)
	}
	return bbox
}

// IsEmpty reports whether the rectangle is inverted (nothing folded in yet).
func (r Rect) IsEmpty() bool {
	return r.XLL > r.XUR || r.YLL > r.YUR
}

// Width returns the X extent.
func (r Rect) Width() float64 {
	return r.XUR - r.XLL
}

// Height returns the Y extent.
func (r Rect) Height() float64 {
	return r.YUR - r.YLL
}

// ExpandRect grows the rectangle to cover other.
func (r *Rect) ExpandRect(other Rect) {
	r.XLL = math.Min(r.XLL, other.XLL)
	r.YLL = math.Min(r.YLL, other.YLL)
	r.XUR = math.Max(r.XUR, other.XUR)
	r.YUR = math.Max(r.YUR, other.YUR)
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		XLL: r.XLL + dx,
		YLL: r.YLL + dy,
		XUR: r.XUR + dx,
		YUR: r.YUR + dy,
	}
}

// ContainsRect checks if other lies entirely within r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.XLL >= r.XLL && other.XUR <= r.XUR &&
		other.YLL >= r.YLL && other.YUR <= r.YUR
}

// Intersects checks if two rectangles overlap with positive area.
func (r Rect) Intersects(other Rect) bool {
	return r.XLL < other.XUR && r.XUR > other.XLL &&
		r.YLL < other.YUR && r.YUR > other.YLL
}

func (r Rect) String() string {
	return fmt.Sprintf("%f : %f - %f : %f", r.XLL, r.YLL, r.XUR, r.YUR)
}
