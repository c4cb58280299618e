package strokedtext

import (
	"fmt"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "text", "node": 2, "text": "Bye"},
			{"action": "wait", "frames": 3},
			{"action": "stroke", "node": 2, "color": "#ff0000"}
		]
	}`)
	r, err := LoadScript(data)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(r.steps) != 4 {
		t.Fatalf("steps = %d, want 4", len(r.steps))
	}
	if r.steps[1].Node != 2 || r.steps[1].Text != "Bye" {
		t.Errorf("step 1 = %+v", r.steps[1])
	}
	if r.steps[2].Frames != 3 {
		t.Errorf("step 2 frames = %d, want 3", r.steps[2].Frames)
	}
}

func TestLoadScript_Errors(t *testing.T) {
	cases := map[string]string{
		"invalid json":  `not json`,
		"empty":         `{"steps": []}`,
		"unknown":       `{"steps": [{"action": "jump"}]}`,
		"bad color":     `{"steps": [{"action": "fill", "node": 1, "color": "#zzz"}]}`,
		"missing color": `{"steps": [{"action": "stroke", "node": 1}]}`,
	}
	for name, data := range cases {
		if _, err := LoadScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestScriptRunner_EditsAreSynchronized(t *testing.T) {
	s := NewScene()
	Plugin{}.Build(s)
	id := s.Spawn(NewBundle(hiText()))

	data := fmt.Sprintf(`{"steps": [
		{"action": "text", "node": %d, "text": "Bye"},
		{"action": "fill", "node": %d, "color": "#00ff00"}
	]}`, id, id)
	r, err := LoadScript([]byte(data))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	s.SetScript(r)

	s.Update()
	fill := s.Node(id).ChildAt(0)
	if fill.Text.Content != "Bye" {
		t.Errorf("content after tick 1 = %q, want %q", fill.Text.Content, "Bye")
	}
	if r.Done() {
		t.Error("Done after 1 of 2 steps")
	}

	s.Update()
	if want := (Color{G: 1, A: 1}); fill.Text.Style.Color != want {
		t.Errorf("fill color = %v, want %v", fill.Text.Style.Color, want)
	}
	if !r.Done() {
		t.Error("runner should be done after its last step")
	}
}

func TestScriptRunner_Wait(t *testing.T) {
	s := NewScene()
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	s.SetScript(r)

	for i := 0; i < 3; i++ {
		s.Update()
		if len(s.shots) != 0 {
			t.Fatalf("screenshot queued on tick %d, want after the wait", i+1)
		}
	}
	s.Update()
	if len(s.shots) != 1 || s.shots[0] != "after" {
		t.Errorf("queue = %v, want [after]", s.shots)
	}
	if !r.Done() {
		t.Error("runner should be done")
	}
}

func TestScriptRunner_MissingNodeSkipped(t *testing.T) {
	s := NewScene()
	r, err := LoadScript([]byte(`{"steps": [{"action": "width", "node": 404, "value": 3}]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	s.SetScript(r)
	s.Update()
	if !r.Done() {
		t.Error("runner should finish even when the target is missing")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ffffff", ColorWhite},
		{"000000", ColorBlack},
		{"#ff000000", Color{R: 1}},
		{"#00ff0080", Color{G: 1, A: 128.0 / 255}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q): expected error", bad)
		}
	}
}
