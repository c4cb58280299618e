package strokedtext

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenColor_ReachesTarget(t *testing.T) {
	s, id := syncedScene(t, hiText())
	g := TweenColor(s, id, ColorRed, 1, ease.Linear)
	if g == nil {
		t.Fatal("TweenColor returned nil")
	}

	g.Update(0.5)
	st, _ := s.StrokedText(id)
	if !approx(st.Color.G, 0.5) || st.Color.R != 1 {
		t.Errorf("halfway color = %v, want G 0.5", st.Color)
	}
	if g.Done {
		t.Error("Done at half duration")
	}

	g.Update(0.6)
	st, _ = s.StrokedText(id)
	if st.Color != ColorRed {
		t.Errorf("final color = %v, want %v", st.Color, ColorRed)
	}
	if !g.Done {
		t.Error("Done = false after the full duration")
	}
}

func TestTweenStrokeColor_SyncsStrokeCopies(t *testing.T) {
	s, id := syncedScene(t, hiText())
	g := TweenStrokeColor(s, id, ColorWhite, 1, ease.Linear)
	g.Update(2)
	if err := Sync(s); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	for i, c := range s.Node(id).Children() {
		if c.Text.IsStroke() && c.Text.Style.Color != ColorWhite {
			t.Errorf("stroke child %d color = %v, want white", i, c.Text.Style.Color)
		}
	}
	if fill := s.Node(id).ChildAt(0); fill.Text.Style.Color != ColorWhite {
		t.Errorf("fill color = %v, want unchanged white", fill.Text.Style.Color)
	}
}

func TestTweenFontSize(t *testing.T) {
	s, id := syncedScene(t, hiText())
	g := TweenFontSize(s, id, 64, 1, ease.Linear)
	g.Update(1)
	if err := Sync(s); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	for i, c := range s.Node(id).Children() {
		if c.Text.Style.Size != 64 {
			t.Errorf("child %d size = %v, want 64", i, c.Text.Style.Size)
		}
	}
}

func TestTween_StopsWhenDespawned(t *testing.T) {
	s, id := syncedScene(t, hiText())
	g := TweenFontSize(s, id, 64, 1, ease.Linear)
	s.Despawn(id)
	g.Update(0.1)
	if !g.Done {
		t.Error("Done = false after the target was despawned")
	}
}

func TestTween_NilForNonDeclaration(t *testing.T) {
	s := NewScene()
	if TweenColor(s, s.Root().ID, ColorRed, 1, ease.Linear) != nil {
		t.Error("TweenColor on a container should return nil")
	}
	if TweenFontSize(s, 9999, 10, 1, ease.Linear) != nil {
		t.Error("TweenFontSize on a missing node should return nil")
	}
}

func TestFPSWidget(t *testing.T) {
	s := NewScene()
	Plugin{}.Build(s)
	id := NewFPSWidget(s)

	st, ok := s.StrokedText(id)
	if !ok || st.Anchor != AnchorTopLeft || st.FontSize != 14 {
		t.Fatalf("widget declaration = %+v", st)
	}
	s.Update()
	if s.Node(id).NumChildren() != 9 {
		t.Errorf("widget children = %d, want 9", s.Node(id).NumChildren())
	}
}
