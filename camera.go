package strokedtext

import "math"

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Camera controls the view into the scene: position, zoom, and rotation.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle the camera centers within.
	Viewport Rect
}

// NewCamera returns an unzoomed camera centered on the world origin.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Zoom: 1, Viewport: viewport}
}

// viewMatrix returns Translate(center) * Scale(zoom) * Rotate(-rot) * Translate(-X, -Y).
func (c *Camera) viewMatrix() [6]float64 {
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	cos := math.Cos(-c.Rotation)
	sin := math.Sin(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	return [6]float64{a, cc, b, d, tx, ty}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.viewMatrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return transformPoint(invertAffine(c.viewMatrix()), sx, sy)
}
