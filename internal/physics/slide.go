package physics

import "math"

// skin keeps a resolved box a hair away from the solid it was pushed out of so
// rounding never leaves the two overlapping.
const skin = 1e-9

// SolidQuery returns the static solids that may overlap area.
type SolidQuery func(area AABB) []AABB

// Contact records which axes were blocked during a MoveAndSlide.
type Contact struct {
	X, Y bool
}

// Any reports whether movement was blocked on either axis.
func (c Contact) Any() bool { return c.X || c.Y }

// MoveAndSlide moves box by delta, stopping flush against any solid returned
// by solids. X is resolved before Y on every substep so a blocked axis does not
// cancel motion along the free one. No substep is longer than the box's
// smallest half extent (see Substeps).
func MoveAndSlide(box AABB, delta Vec, solids SolidQuery) (AABB, Contact) {
	var contact Contact
	if delta.IsZero() {
		return box, contact
	}

	steps := Substeps(box, delta)
	step := delta.Scale(1 / float64(steps))

	for i := 0; i < steps; i++ {
		if step.X != 0 {
			var hit bool
			box, hit = moveX(box, step.X, solids)
			contact.X = contact.X || hit
		}
		if step.Y != 0 {
			var hit bool
			box, hit = moveY(box, step.Y, solids)
			contact.Y = contact.Y || hit
		}
	}
	return box, contact
}

// Substeps returns how many equal steps split delta so that none is longer
// than the box's smallest half extent. A box moved in those steps cannot skip
// over a solid at least as thick as the box. It is at least 1.
func Substeps(box AABB, delta Vec) int {
	maxStep := math.Min(box.Half.X, box.Half.Y)
	if maxStep <= 0 {
		return 1
	}
	return max(int(math.Ceil(delta.Len()/maxStep)), 1)
}

func moveX(box AABB, dx float64, solids SolidQuery) (AABB, bool) {
	box.Center.X += dx
	hit := false
	for _, s := range solids(box) {
		if !box.Overlaps(s) {
			continue
		}
		hit = true
		if dx > 0 {
			box.Center.X = s.Min().X - box.Half.X - skin
		} else {
			box.Center.X = s.Max().X + box.Half.X + skin
		}
	}
	return box, hit
}

func moveY(box AABB, dy float64, solids SolidQuery) (AABB, bool) {
	box.Center.Y += dy
	hit := false
	for _, s := range solids(box) {
		if !box.Overlaps(s) {
			continue
		}
		hit = true
		if dy > 0 {
			box.Center.Y = s.Min().Y - box.Half.Y - skin
		} else {
			box.Center.Y = s.Max().Y + box.Half.Y + skin
		}
	}
	return box, hit
}
