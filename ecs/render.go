package ecs

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/strokedtext"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var textChildQuery = donburi.NewQuery(filter.Contains(TextChildComponent, TransformComponent, ParentComponent))

// drawItem is one generated child queued for drawing.
type drawItem struct {
	entry *donburi.Entry
	geo   ebiten.GeoM
	z     float64
	order int
}

// Draw draws every generated child of every visible declaration onto
// screen, lowest world Z first. Fonts resolve the children's font handles.
func (w *World) Draw(screen *ebiten.Image, fonts *strokedtext.FontRegistry) {
	var items []drawItem
	textChildQuery.Each(w.world, func(child *donburi.Entry) {
		pe := ParentComponent.Get(child).Entity
		if !w.world.Valid(pe) {
			return
		}
		parent := w.world.Entry(pe)
		if parent.HasComponent(VisibilityComponent) && *VisibilityComponent.Get(parent) == strokedtext.VisibilityHidden {
			return
		}
		var pt strokedtext.Transform
		if parent.HasComponent(TransformComponent) {
			pt = *TransformComponent.Get(parent)
		}
		ct := TransformComponent.Get(child)

		var geo ebiten.GeoM
		geo.Translate(ct.X, ct.Y)
		geo.Scale(pt.ScaleX, pt.ScaleY)
		geo.Rotate(pt.Rotation)
		geo.Translate(pt.X, pt.Y)
		items = append(items, drawItem{entry: child, geo: geo, z: pt.Z + ct.Z, order: len(items)})
	})

	slices.SortStableFunc(items, func(a, b drawItem) int {
		switch {
		case a.z < b.z:
			return -1
		case a.z > b.z:
			return 1
		}
		return a.order - b.order
	})

	for _, it := range items {
		strokedtext.DrawText(screen, TextChildComponent.Get(it.entry), fonts, it.geo)
	}
}
