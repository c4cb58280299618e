package strokedtext

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order: Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(n *Node) [6]float64 {
	sin, cos := math.Sincos(n.Rotation)
	sx, sy := n.ScaleX, n.ScaleY
	return [6]float64{cos * sx, sin * sx, -sin * sy, cos * sy, n.X, n.Y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes world transforms and world Z below n.
// parentRecomputed forces recomputation of clean descendants.
func updateWorldTransform(n *Node, parentTransform [6]float64, parentZ float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.worldZ = parentZ + n.Z
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldZ, recompute)
	}
}

// WorldToLocal converts a world-space point to this node's local space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(n.worldTransform), wx, wy)
}

// LocalToWorld converts a local-space point to world space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.worldTransform, lx, ly)
}

// WorldZ returns the accumulated draw depth computed on the last update.
func (n *Node) WorldZ() float64 {
	return n.worldZ
}
