package common

import "github.com/jakecoffman/cp"

// Boxes use cp.BB with B as the smaller (upper on screen) y and T as the larger.

// RectBB builds a box from a top-left corner and size.
func RectBB(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

// CircleBB is the square around a circle, the shape the ball collides as.
func CircleBB(cx, cy, r float64) cp.BB {
	return cp.NewBBForCircle(cp.Vector{X: cx, Y: cy}, r)
}

// FootBB is a size x size square standing on (x, bottom).
func FootBB(x, bottom, size float64) cp.BB {
	return cp.BB{L: x - size/2, B: bottom - size, R: x + size/2, T: bottom}
}

// Overlaps is a strict AABB test: touching edges do not count.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}

// CirclesOverlap reports whether two circles strictly intersect.
func CirclesOverlap(a cp.Vector, ra float64, b cp.Vector, rb float64) bool {
	return a.Distance(b) < ra+rb
}

// Width and Height of a box.
func Width(bb cp.BB) float64  { return bb.R - bb.L }
func Height(bb cp.BB) float64 { return bb.T - bb.B }
