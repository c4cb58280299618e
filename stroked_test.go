package strokedtext

import "testing"

func TestDefaultStrokedText(t *testing.T) {
	st := DefaultStrokedText()
	if st.Text != "" {
		t.Errorf("Text = %q, want empty", st.Text)
	}
	if st.Color != ColorWhite {
		t.Errorf("Color = %v, want white", st.Color)
	}
	if st.StrokeColor != ColorBlack {
		t.Errorf("StrokeColor = %v, want black", st.StrokeColor)
	}
	if st.FontSize != 32 {
		t.Errorf("FontSize = %v, want 32", st.FontSize)
	}
	if st.Anchor != AnchorCenter {
		t.Errorf("Anchor = %v, want AnchorCenter", st.Anchor)
	}
	if st.LineBreak != LineBreakWordBoundary {
		t.Errorf("LineBreak = %v, want LineBreakWordBoundary", st.LineBreak)
	}
	if st.StrokeWidth != 1 {
		t.Errorf("StrokeWidth = %v, want 1", st.StrokeWidth)
	}
	if st.Font != "" {
		t.Errorf("Font = %q, want default handle", st.Font)
	}
}

func TestBundleSetters(t *testing.T) {
	base := NewBundle(DefaultStrokedText())
	b := base.
		WithText("Hi").
		WithFont("fonts/bold.ttf").
		WithFontSize(18).
		WithColor(ColorRed).
		WithStrokeColor(ColorWhite).
		WithStrokeWidth(3).
		WithJustify(TextAlignRight).
		WithLineBreak(LineBreakAnyCharacter).
		WithAnchor(AnchorTopLeft).
		WithWrapWidth(120).
		WithVisibility(VisibilityHidden).
		WithTransform(FromTranslation(1, 2, 3).WithScale(0.5))

	want := StrokedText{
		Text:        "Hi",
		Color:       ColorRed,
		StrokeColor: ColorWhite,
		Font:        "fonts/bold.ttf",
		FontSize:    18,
		Anchor:      AnchorTopLeft,
		Justify:     TextAlignRight,
		LineBreak:   LineBreakAnyCharacter,
		StrokeWidth: 3,
		WrapWidth:   120,
	}
	if b.Text != want {
		t.Errorf("Text = %+v, want %+v", b.Text, want)
	}
	if b.Transform != (Transform{X: 1, Y: 2, Z: 3, ScaleX: 0.5, ScaleY: 0.5}) {
		t.Errorf("Transform = %+v", b.Transform)
	}
	if b.Visibility != VisibilityHidden {
		t.Errorf("Visibility = %v, want VisibilityHidden", b.Visibility)
	}

	// Setters return modified copies.
	if base.Text.Text != "" || base.Transform != NewTransform() {
		t.Errorf("base bundle was modified: %+v", base)
	}
}

func TestAnchorFraction(t *testing.T) {
	tests := []struct {
		a    Anchor
		want Vec2
	}{
		{AnchorCenter, Vec2{0.5, 0.5}},
		{AnchorTopLeft, Vec2{0, 0}},
		{AnchorTopCenter, Vec2{0.5, 0}},
		{AnchorTopRight, Vec2{1, 0}},
		{AnchorCenterLeft, Vec2{0, 0.5}},
		{AnchorCenterRight, Vec2{1, 0.5}},
		{AnchorBottomLeft, Vec2{0, 1}},
		{AnchorBottomCenter, Vec2{0.5, 1}},
		{AnchorBottomRight, Vec2{1, 1}},
	}
	for _, tt := range tests {
		if got := tt.a.Fraction(); got != tt.want {
			t.Errorf("Anchor(%d).Fraction() = %v, want %v", tt.a, got, tt.want)
		}
	}
}

func TestColorToRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if c.A != 128 {
		t.Errorf("A = %d, want 128", c.A)
	}
	if c.R != 128 {
		t.Errorf("R = %d, want 128 (premultiplied)", c.R)
	}
	if c.B != 0 {
		t.Errorf("B = %d, want 0", c.B)
	}
}
