package rtree

import "math"

// BBox is an axis-aligned bounding box. It is a value type, so assigning a
// BBox clones it.
//
// Coordinates must be finite. Boxes holding NaN or infinite values give
// undefined results.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Rect creates a BBox from its origin and size.
func Rect(x, y, width, height float64) BBox {
	return BBox{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Width returns the horizontal extent of the box.
func (bb BBox) Width() float64 { return bb.MaxX - bb.MinX }

// Height returns the vertical extent of the box.
func (bb BBox) Height() float64 { return bb.MaxY - bb.MinY }

// Area returns the area of the box.
func (bb BBox) Area() float64 {
	return bb.Width() * bb.Height()
}

// Empty reports whether the box has no width or no height.
func (bb BBox) Empty() bool {
	return bb.MinX >= bb.MaxX || bb.MinY >= bb.MaxY
}

// Union gives the smallest bounding box containing both bb and other. Empty
// boxes still contribute their corners.
func (bb BBox) Union(other BBox) BBox {
	return BBox{
		MinX: math.Min(bb.MinX, other.MinX),
		MinY: math.Min(bb.MinY, other.MinY),
		MaxX: math.Max(bb.MaxX, other.MaxX),
		MaxY: math.Max(bb.MaxY, other.MaxY),
	}
}

// Grow enlarges bb in place so that it also covers other.
func (bb *BBox) Grow(other BBox) {
	*bb = bb.Union(other)
}

// Intersects reports whether the interiors of the two boxes overlap. Boxes
// sharing only an edge or a corner do not intersect, and an empty box
// intersects nothing.
func (bb BBox) Intersects(other BBox) bool {
	return !bb.Empty() && !other.Empty() &&
		bb.MinX < other.MaxX && other.MinX < bb.MaxX &&
		bb.MinY < other.MaxY && other.MinY < bb.MaxY
}

// Translate returns a copy of the box moved by (dx, dy).
func (bb BBox) Translate(dx, dy float64) BBox {
	return BBox{
		MinX: bb.MinX + dx,
		MinY: bb.MinY + dy,
		MaxX: bb.MaxX + dx,
		MaxY: bb.MaxY + dy,
	}
}

// enlargement returns how much additional area the existing BBox would have
// to enlarge by to accommodate the additional BBox.
func enlargement(existing, additional BBox) float64 {
	return existing.Union(additional).Area() - existing.Area()
}
