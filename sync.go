package strokedtext

import (
	"errors"
	"fmt"
)

// Sync runs one synchronization pass over every changed declaration in h.
// A declaration that fails is re-flagged so the next pass retries it; the
// failures of the pass are returned joined.
func Sync(h Host) error {
	var errs []error
	visited := 0
	for c := range h.Changed() {
		visited++
		if err := Synchronize(h, c); err != nil {
			Logger().Error("strokedtext: sync failed, retrying next pass", "node", c.ID, "err", err)
			h.MarkChanged(c.ID)
			errs = append(errs, err)
		}
	}
	if visited > 0 {
		Logger().Debug("strokedtext: sync pass", "changed", visited, "failed", len(errs))
	}
	return errors.Join(errs...)
}

// Synchronize projects one changed declaration onto its children. With no
// children it creates the full set of nine; otherwise it updates every child
// in place. A child set that is not exactly one fill copy and eight stroke
// copies is destroyed and rebuilt.
//
// Updates never move a child or change its font or anchor. Those fields only
// take effect when the set is rebuilt.
func Synchronize(h Host, c Change) error {
	if len(c.Children) == 0 {
		return createChildren(h, c)
	}
	if reason := malformedReason(c.Children); reason != "" {
		return rebuildChildren(h, c, reason)
	}
	for _, child := range c.Children {
		stroke := child.Offset.Z < 0
		ok := h.UpdateTextChild(child.ID, func(tc *TextChild) {
			applyDeclaration(tc, &c.Text, stroke)
		})
		if !ok {
			return rebuildChildren(h, c, "child disappeared")
		}
	}
	return nil
}

func createChildren(h Host, c Change) error {
	children := buildChildren(&c.Text)
	if err := h.SpawnTextChildren(c.ID, children[:]); err != nil {
		return fmt.Errorf("strokedtext: create children of node %d: %w", c.ID, err)
	}
	return nil
}

func rebuildChildren(h Host, c Change, reason string) error {
	Logger().Warn("strokedtext: rebuilding inconsistent child set",
		"node", c.ID, "reason", reason, "children", len(c.Children))
	if err := h.DespawnChildren(c.ID); err != nil {
		return fmt.Errorf("strokedtext: clear children of node %d: %w", c.ID, err)
	}
	return createChildren(h, c)
}

// buildChildren returns the fill copy followed by the stroke copies in
// offset-table order.
func buildChildren(st *StrokedText) [ChildCount]TextChild {
	var out [ChildCount]TextChild
	out[0] = newTextChild(st, st.Color, Vec3{})
	for i, off := range StrokeOffsets(st.StrokeWidth) {
		out[i+1] = newTextChild(st, st.StrokeColor, off)
	}
	return out
}

func newTextChild(st *StrokedText, c Color, offset Vec3) TextChild {
	return TextChild{
		Content: st.Text,
		Style: TextStyle{
			Font:  st.Font,
			Size:  st.FontSize,
			Color: c,
		},
		Align:     st.Justify,
		LineBreak: st.LineBreak,
		WrapWidth: st.WrapWidth,
		Anchor:    st.Anchor,
		Offset:    offset,
	}
}

// applyDeclaration copies the updatable fields of st onto tc.
func applyDeclaration(tc *TextChild, st *StrokedText, stroke bool) {
	tc.Content = st.Text
	tc.Style.Size = st.FontSize
	tc.Align = st.Justify
	tc.LineBreak = st.LineBreak
	tc.WrapWidth = st.WrapWidth
	if stroke {
		tc.Style.Color = st.StrokeColor
	} else {
		tc.Style.Color = st.Color
	}
}

// malformedReason returns why children is not a valid set, or "" if it is.
func malformedReason(children []Child) string {
	if len(children) != ChildCount {
		return fmt.Sprintf("have %d children, want %d", len(children), ChildCount)
	}
	fill := 0
	for _, c := range children {
		if !c.Text {
			return fmt.Sprintf("child %d has no text", c.ID)
		}
		if c.Offset.Z >= 0 {
			fill++
		}
	}
	if fill != 1 {
		return fmt.Sprintf("have %d fill copies, want 1", fill)
	}
	return ""
}
