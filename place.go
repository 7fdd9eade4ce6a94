package rtree

import (
	"fmt"
	"math/rand"
)

// Orientation says where a placed box sits relative to its anchor point.
type Orientation int

const (
	// Centered puts the anchor at the centre of the box.
	Centered Orientation = iota
	// TopLeft puts the anchor at the box's minimum corner.
	TopLeft
	TopRight
	BottomLeft
	// BottomRight puts the anchor at the box's maximum corner.
	BottomRight
)

func (o Orientation) String() string {
	switch o {
	case Centered:
		return "centered"
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// boxAt returns the box of the given size anchored at p.
func (o Orientation) boxAt(p Point, size Point) BBox {
	switch o {
	case TopLeft:
		return Rect(p.X, p.Y, size.X, size.Y)
	case TopRight:
		return Rect(p.X-size.X, p.Y, size.X, size.Y)
	case BottomLeft:
		return Rect(p.X, p.Y-size.Y, size.X, size.Y)
	case BottomRight:
		return Rect(p.X-size.X, p.Y-size.Y, size.X, size.Y)
	default:
		return Rect(p.X-size.X/2, p.Y-size.Y/2, size.X, size.Y)
	}
}

// PlaceNear finds the anchor point closest to target at which a box of the
// given size overlaps no existing entry, inserts the box there with data,
// and returns the anchor.
//
// The target itself is tried first, and if it is free it is returned
// unchanged. After that, candidates are taken at distance k steps along each
// axis for k = 1, 2, 3 and so on, where a step is minDx horizontally and
// minDy vertically. Which axis is tried first, and whether the positive or
// negative direction comes first, is decided once per call from seed, so a
// given seed always searches in the same order.
//
// The search has no upper bound on k.
func (t *RTree[T]) PlaceNear(
	seed int64,
	target Point,
	minDx, minDy float64,
	orientation Orientation,
	size Point,
	data T,
) (Point, error) {
	if !(minDx > 0) || !(minDy > 0) {
		return Point{}, fmt.Errorf("%w: steps must be positive, got (%v, %v)", ErrInvalidPlacement, minDx, minDy)
	}
	if !(size.X > 0) || !(size.Y > 0) {
		return Point{}, fmt.Errorf("%w: box size must be positive, got (%v, %v)", ErrInvalidPlacement, size.X, size.Y)
	}

	rnd := rand.New(rand.NewSource(seed))
	xFirst := rnd.Intn(2) == 0
	sign := 1.0
	if rnd.Intn(2) == 0 {
		sign = -1.0
	}

	place := func(p Point) bool {
		bb := orientation.boxAt(p, size)
		if t.Overlaps(bb) {
			return false
		}
		t.Insert(bb, data)
		return true
	}

	if place(target) {
		t.logger().Trace("placed box", "anchor", target, "radius", 0)
		return target, nil
	}

	for k := 1; ; k++ {
		dx := float64(k) * minDx * sign
		dy := float64(k) * minDy * sign
		candidates := [4]Point{
			{target.X + dx, target.Y},
			{target.X - dx, target.Y},
			{target.X, target.Y + dy},
			{target.X, target.Y - dy},
		}
		if !xFirst {
			candidates[0], candidates[1], candidates[2], candidates[3] =
				candidates[2], candidates[3], candidates[0], candidates[1]
		}
		for _, p := range candidates {
			if place(p) {
				t.logger().Trace("placed box", "anchor", p, "radius", k)
				return p, nil
			}
		}
	}
}
