package strokedtext

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields of a stroked text declaration
// simultaneously. Create one via the convenience constructors (TweenColor,
// TweenStrokeColor, TweenFontSize) and call Update(dt) each frame. Every
// update writes through Scene.MutateStrokedText, so the generated children
// follow on the next sync pass. If the node is despawned, the group stops.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	apply  func(st *StrokedText, vals [4]float64)
	scene  *Scene
	target NodeID
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// declaration. If the node is gone, Done is set and nothing is written.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if _, ok := g.scene.StrokedText(g.target); !ok {
		g.Done = true
		return
	}

	var vals [4]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	_ = g.scene.MutateStrokedText(g.target, func(st *StrokedText) { g.apply(st, vals) })
}

func newTweenGroup(s *Scene, id NodeID, from, to []float64, duration float32, fn ease.TweenFunc, apply func(*StrokedText, [4]float64)) *TweenGroup {
	g := &TweenGroup{count: len(from), apply: apply, scene: s, target: id}
	for i := range from {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	return g
}

func colorTween(s *Scene, id NodeID, from, to Color, duration float32, fn ease.TweenFunc, field func(*StrokedText) *Color) *TweenGroup {
	return newTweenGroup(s, id,
		[]float64{from.R, from.G, from.B, from.A},
		[]float64{to.R, to.G, to.B, to.A},
		duration, fn,
		func(st *StrokedText, v [4]float64) {
			*field(st) = Color{v[0], v[1], v[2], v[3]}
		})
}

// TweenColor animates the fill color of node id to the target color. It
// returns nil if id is not a stroked text node.
func TweenColor(s *Scene, id NodeID, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	st, ok := s.StrokedText(id)
	if !ok {
		return nil
	}
	return colorTween(s, id, st.Color, to, duration, fn, func(st *StrokedText) *Color { return &st.Color })
}

// TweenStrokeColor animates the stroke color of node id to the target color.
// It returns nil if id is not a stroked text node.
func TweenStrokeColor(s *Scene, id NodeID, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	st, ok := s.StrokedText(id)
	if !ok {
		return nil
	}
	return colorTween(s, id, st.StrokeColor, to, duration, fn, func(st *StrokedText) *Color { return &st.StrokeColor })
}

// TweenFontSize animates the font size of node id. It returns nil if id is
// not a stroked text node.
func TweenFontSize(s *Scene, id NodeID, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	st, ok := s.StrokedText(id)
	if !ok {
		return nil
	}
	return newTweenGroup(s, id, []float64{st.FontSize}, []float64{to}, duration, fn,
		func(st *StrokedText, v [4]float64) { st.FontSize = v[0] })
}
