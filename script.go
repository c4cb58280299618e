package strokedtext

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// scriptStep is one action of a visual check script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Node   NodeID  `json:"node,omitempty"`
	Text   string  `json:"text,omitempty"`
	Color  string  `json:"color,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a sequence of declaration edits and screenshots, one
// step per tick, for automated visual checks of stroked text. Attach it with
// Scene.SetScript.
//
// Supported actions: "screenshot" (label), "wait" (frames), "text" (node,
// text), "fill" and "stroke" (node, color as #RRGGBB or #RRGGBBAA), "width"
// and "size" (node, value).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script. Colors are validated up front so a bad
// script fails here rather than mid-run.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("strokedtext: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, errors.New("strokedtext: parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "screenshot", "wait", "text", "width", "size":
		case "fill", "stroke":
			if _, err := ParseHexColor(st.Color); err != nil {
				return nil, fmt.Errorf("strokedtext: parse script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("strokedtext: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches r to the scene. Its steps run at the start of each
// Update, before the registered systems, so edits are synchronized in the
// same tick.
func (s *Scene) SetScript(r *ScriptRunner) {
	s.script = r
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	var err error
	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "text":
		err = s.MutateStrokedText(st.Node, func(d *StrokedText) { d.Text = st.Text })
	case "fill", "stroke":
		c, _ := ParseHexColor(st.Color)
		err = s.MutateStrokedText(st.Node, func(d *StrokedText) {
			if st.Action == "fill" {
				d.Color = c
			} else {
				d.StrokeColor = c
			}
		})
	case "width":
		err = s.MutateStrokedText(st.Node, func(d *StrokedText) { d.StrokeWidth = st.Value })
	case "size":
		err = s.MutateStrokedText(st.Node, func(d *StrokedText) { d.FontSize = st.Value })
	}
	if err != nil {
		Logger().Warn("strokedtext: script step skipped", "step", r.cursor-1, "action", st.Action, "err", err)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (the '#' is optional).
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("strokedtext: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("strokedtext: invalid color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
