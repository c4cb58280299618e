package strokedtext

import "math"

// StrokeDepth is the local Z of every stroke copy. Any negative value sorts
// the copies behind the fill copy, which sits at Z 0.
const StrokeDepth = -1.0

// strokeCopies is the number of background copies per declaration.
const strokeCopies = 8

// ChildCount is the size of a fully synchronized child set: one fill copy
// plus the stroke copies.
const ChildCount = strokeCopies + 1

// unitOffsets is the 8-connected neighbourhood in emission order:
// four diagonals, then the four axis directions.
var unitOffsets = [strokeCopies]Vec2{
	{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
}

// StrokeOffsets returns the local offsets of the eight stroke copies for the
// given stroke width, in emission order. Negative or NaN widths yield zero
// offsets.
func StrokeOffsets(width float64) [strokeCopies]Vec3 {
	w := strokeWidth(width)
	var out [strokeCopies]Vec3
	for i, u := range unitOffsets {
		out[i] = Vec3{X: u.X * w, Y: u.Y * w, Z: StrokeDepth}
	}
	return out
}

func strokeWidth(w float64) float64 {
	if w < 0 || math.IsNaN(w) {
		return 0
	}
	return w
}
