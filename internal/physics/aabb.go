// Package physics implements the axis-aligned box collision used in play mode:
// overlap tests, contact sides, minimum translation vectors and a
// move-and-slide resolver against static solids.
package physics

import "math"

// AABB is an axis-aligned bounding box stored as a center and half extents.
type AABB struct {
	Center Vec
	Half   Vec
}

// Box builds an AABB centered on c with full size (w, h).
func Box(c Vec, w, h float64) AABB {
	return AABB{Center: c, Half: Vec{w / 2, h / 2}}
}

// Min returns the top-left corner.
func (b AABB) Min() Vec { return b.Center.Sub(b.Half) }

// Max returns the bottom-right corner.
func (b AABB) Max() Vec { return b.Center.Add(b.Half) }

// Translate returns b moved by d.
func (b AABB) Translate(d Vec) AABB {
	b.Center = b.Center.Add(d)
	return b
}

// Overlaps reports whether a and b share interior area.
// Boxes that only touch along an edge do not overlap.
func (b AABB) Overlaps(o AABB) bool {
	bmin, bmax := b.Min(), b.Max()
	omin, omax := o.Min(), o.Max()
	return bmin.X < omax.X && bmax.X > omin.X &&
		bmin.Y < omax.Y && bmax.Y > omin.Y
}

// Side names the side of one box on which another box lies.
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	}
	return "none"
}

// Collide reports on which side of b the box a lies when they overlap.
// The side is chosen along the axis of least penetration.
func Collide(a, b AABB) (Side, bool) {
	px, py, ok := overlapDepth(a, b)
	if !ok {
		return SideNone, false
	}
	if px < py {
		if a.Center.X < b.Center.X {
			return SideLeft, true
		}
		return SideRight, true
	}
	if a.Center.Y < b.Center.Y {
		return SideTop, true
	}
	return SideBottom, true
}

// Penetration returns the minimum translation vector that pushes a out of b.
func Penetration(a, b AABB) (Vec, bool) {
	px, py, ok := overlapDepth(a, b)
	if !ok {
		return Vec{}, false
	}
	if px < py {
		if a.Center.X < b.Center.X {
			return Vec{X: -px}, true
		}
		return Vec{X: px}, true
	}
	if a.Center.Y < b.Center.Y {
		return Vec{Y: -py}, true
	}
	return Vec{Y: py}, true
}

// Separate resolves an overlap between two dynamic boxes by moving each one
// half of the minimum translation vector in opposite directions.
func Separate(a, b AABB) (da, db Vec) {
	mtv, ok := Penetration(a, b)
	if !ok {
		return Vec{}, Vec{}
	}
	half := mtv.Scale(0.5)
	return half, half.Scale(-1)
}

func overlapDepth(a, b AABB) (px, py float64, ok bool) {
	dx := math.Abs(b.Center.X - a.Center.X)
	dy := math.Abs(b.Center.Y - a.Center.Y)
	px = a.Half.X + b.Half.X - dx
	py = a.Half.Y + b.Half.Y - dy
	if px <= 0 || py <= 0 {
		return 0, 0, false
	}
	return px, py, true
}
