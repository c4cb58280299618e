package strokedtext

// StrokedText declares a run of text drawn with an outline. The outline is
// produced by eight copies of the text in StrokeColor placed behind the fill
// copy, offset by StrokeWidth in each of the eight neighbouring directions.
type StrokedText struct {
	Text        string
	Color       Color // fill
	StrokeColor Color
	Font        FontHandle // empty selects the default font
	FontSize    float64
	Anchor      Anchor
	Justify     TextAlign
	LineBreak   LineBreak
	StrokeWidth float64
	// WrapWidth bounds line length in local units; 0 disables wrapping.
	WrapWidth float64
}

// DefaultStrokedText returns white text with a one-unit black stroke at size 32.
func DefaultStrokedText() StrokedText {
	return StrokedText{
		Color:       ColorWhite,
		StrokeColor: ColorBlack,
		FontSize:    32,
		Anchor:      AnchorCenter,
		Justify:     TextAlignLeft,
		LineBreak:   LineBreakWordBoundary,
		StrokeWidth: 1,
	}
}

// Transform is the local placement of a spawned node.
type Transform struct {
	X, Y, Z        float64
	ScaleX, ScaleY float64
	Rotation       float64 // radians, clockwise
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// FromTranslation returns an unscaled transform at (x, y, z).
func FromTranslation(x, y, z float64) Transform {
	return Transform{X: x, Y: y, Z: z, ScaleX: 1, ScaleY: 1}
}

// WithScale returns t with both scale factors set to s.
func (t Transform) WithScale(s float64) Transform {
	t.ScaleX = s
	t.ScaleY = s
	return t
}

// Bundle groups a StrokedText declaration with the spatial and visibility
// fields needed to spawn it as one node.
type Bundle struct {
	Text       StrokedText
	Transform  Transform
	Visibility Visibility
}

// NewBundle returns a bundle for st at the origin.
func NewBundle(st StrokedText) Bundle {
	return Bundle{Text: st, Transform: NewTransform()}
}

// WithText returns b with the text content replaced.
func (b Bundle) WithText(s string) Bundle {
	b.Text.Text = s
	return b
}

// WithFont returns b using font.
func (b Bundle) WithFont(font FontHandle) Bundle {
	b.Text.Font = font
	return b
}

// WithFontSize returns b with the given font size.
func (b Bundle) WithFontSize(size float64) Bundle {
	b.Text.FontSize = size
	return b
}

// WithColor returns b with the given fill color.
func (b Bundle) WithColor(c Color) Bundle {
	b.Text.Color = c
	return b
}

// WithStrokeColor returns b with the given stroke color.
func (b Bundle) WithStrokeColor(c Color) Bundle {
	b.Text.StrokeColor = c
	return b
}

// WithStrokeWidth returns b with the given stroke width.
func (b Bundle) WithStrokeWidth(w float64) Bundle {
	b.Text.StrokeWidth = w
	return b
}

// WithTransform returns b placed at t.
func (b Bundle) WithTransform(t Transform) Bundle {
	b.Transform = t
	return b
}

// WithJustify returns b with the given line alignment.
func (b Bundle) WithJustify(align TextAlign) Bundle {
	b.Text.Justify = align
	return b
}

// WithLineBreak returns b with the given line break policy.
func (b Bundle) WithLineBreak(lb LineBreak) Bundle {
	b.Text.LineBreak = lb
	return b
}

// WithAnchor returns b with the given anchor.
func (b Bundle) WithAnchor(a Anchor) Bundle {
	b.Text.Anchor = a
	return b
}

// WithWrapWidth returns b wrapping lines at w local units.
func (b Bundle) WithWrapWidth(w float64) Bundle {
	b.Text.WrapWidth = w
	return b
}

// WithVisibility returns b with the given visibility.
func (b Bundle) WithVisibility(v Visibility) Bundle {
	b.Visibility = v
	return b
}
