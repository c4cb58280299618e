package strokedtext

import (
	"testing"
)

func collectedScene(t *testing.T, bundles ...Bundle) (*Scene, []NodeID) {
	t.Helper()
	s := NewScene()
	ids := make([]NodeID, len(bundles))
	for i, b := range bundles {
		ids[i] = s.Spawn(b)
	}
	if err := Sync(s); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	s.collect()
	s.mergeSort()
	return s, ids
}

func TestCollect_StrokesDrawBehindFill(t *testing.T) {
	s, ids := collectedScene(t, NewBundle(hiText()))
	if len(s.commands) != 9 {
		t.Fatalf("commands = %d, want 9", len(s.commands))
	}
	for i := 0; i < 8; i++ {
		if !s.commands[i].node.Text.IsStroke() {
			t.Errorf("command %d is the fill copy, want stroke copies first", i)
		}
	}
	last := s.commands[8].node
	if last.Text.IsStroke() || last.Parent.ID != ids[0] {
		t.Error("fill copy should draw last")
	}
}

func TestCollect_StrokeOrderFollowsTree(t *testing.T) {
	s, ids := collectedScene(t, NewBundle(hiText()))
	parent := s.Node(ids[0])
	for i := 0; i < 8; i++ {
		if s.commands[i].node != parent.ChildAt(i+1) {
			t.Errorf("command %d is not stroke copy %d", i, i)
		}
	}
}

func TestCollect_DeclarationsOrderedByZ(t *testing.T) {
	front := NewBundle(hiText()).WithTransform(FromTranslation(0, 0, 5))
	back := NewBundle(hiText())
	s, ids := collectedScene(t, front, back)

	if len(s.commands) != 18 {
		t.Fatalf("commands = %d, want 18", len(s.commands))
	}
	for i, cmd := range s.commands {
		wantParent := ids[1]
		if i >= 9 {
			wantParent = ids[0]
		}
		if cmd.node.Parent.ID != wantParent {
			t.Errorf("command %d belongs to %d, want %d", i, cmd.node.Parent.ID, wantParent)
		}
		if i > 0 && s.commands[i-1].z > cmd.z {
			t.Errorf("commands not sorted by z at %d: %v > %v", i, s.commands[i-1].z, cmd.z)
		}
	}
}

func TestCollect_SkipsHiddenAndUndrawable(t *testing.T) {
	empty := hiText()
	empty.Text = ""
	invisible := hiText()
	invisible.Color = ColorTransparent
	invisible.StrokeColor = ColorTransparent

	s, _ := collectedScene(t,
		NewBundle(hiText()).WithVisibility(VisibilityHidden),
		NewBundle(empty),
		NewBundle(invisible),
	)
	if len(s.commands) != 0 {
		t.Errorf("commands = %d, want 0", len(s.commands))
	}
}

func TestCollect_AnchorOrigin(t *testing.T) {
	st := hiText()
	st.Anchor = AnchorBottomRight
	s, _ := collectedScene(t, NewBundle(st))

	cmd := s.commands[0]
	lo := cmd.node.layout
	if cmd.originX != -lo.width || cmd.originY != -lo.height {
		t.Errorf("origin = (%v, %v), want (%v, %v)", cmd.originX, cmd.originY, -lo.width, -lo.height)
	}
}

func TestCollect_CameraTransform(t *testing.T) {
	s := NewScene()
	s.Camera = NewCamera(Rect{Width: 200, Height: 100})
	s.Spawn(NewBundle(hiText()))
	if err := Sync(s); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	s.collect()
	s.mergeSort()

	fill := s.commands[len(s.commands)-1]
	if fill.transform[4] != 100 || fill.transform[5] != 50 {
		t.Errorf("fill translation = (%v, %v), want viewport center (100, 50)", fill.transform[4], fill.transform[5])
	}
}

func TestNodeLayout_Cache(t *testing.T) {
	s, ids := collectedScene(t, NewBundle(hiText()))
	fill := s.Node(ids[0]).ChildAt(0)
	w := fill.layout.width

	if err := s.MutateStrokedText(ids[0], func(st *StrokedText) { st.Text = "Hi there" }); err != nil {
		t.Fatal(err)
	}
	if err := Sync(s); err != nil {
		t.Fatal(err)
	}
	if !fill.layoutDirty {
		t.Fatal("content change should dirty the layout")
	}
	s.collect()
	if fill.layout.width <= w {
		t.Errorf("layout width = %v, want wider than %v", fill.layout.width, w)
	}

	s.Fonts.Register("unused", defaultFont())
	if fill.layoutGen == s.Fonts.gen {
		t.Fatal("registry generation should differ before the next collect")
	}
	s.collect()
	if fill.layoutGen != s.Fonts.gen {
		t.Error("layout should be rebuilt for the new font generation")
	}
}

func TestMergeSort_Stable(t *testing.T) {
	s := NewScene()
	zs := []float64{3, -1, 3, 0, -1, 3, 0}
	for i, z := range zs {
		s.commands = append(s.commands, drawCommand{z: z, treeOrder: i})
	}
	s.mergeSort()
	for i := 1; i < len(s.commands); i++ {
		a, b := s.commands[i-1], s.commands[i]
		if a.z > b.z || (a.z == b.z && a.treeOrder > b.treeOrder) {
			t.Errorf("unsorted at %d: %+v then %+v", i, a, b)
		}
	}
}

func TestGeoM(t *testing.T) {
	m := [6]float64{2, 0.5, -0.5, 3, 10, 20}
	g := geoM(m)
	x, y := g.Apply(1, 1)
	wx, wy := transformPoint(m, 1, 1)
	if !near(x, wx) || !near(y, wy) {
		t.Errorf("GeoM.Apply = (%v, %v), want (%v, %v)", x, y, wx, wy)
	}
}

func TestDrawable(t *testing.T) {
	ok := TextChild{Content: "a", Style: TextStyle{Size: 10, Color: ColorWhite}}
	if !drawable(&ok) {
		t.Error("visible text should be drawable")
	}
	for name, tc := range map[string]TextChild{
		"empty":       {Style: ok.Style},
		"zero size":   {Content: "a", Style: TextStyle{Color: ColorWhite}},
		"transparent": {Content: "a", Style: TextStyle{Size: 10}},
	} {
		if drawable(&tc) {
			t.Errorf("%s: drawable = true, want false", name)
		}
	}
}
