package ecs

import (
	"fmt"
	"iter"

	"github.com/phanxgames/strokedtext"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var changedQuery = donburi.NewQuery(filter.Contains(StrokedTextComponent, ChangedTag))

// World is a strokedtext.Host backed by a Donburi world.
// Like donburi.World, it is not safe for concurrent use.
type World struct {
	world donburi.World
}

var _ strokedtext.Host = (*World)(nil)

// NewWorld wraps w.
func NewWorld(w donburi.World) *World {
	return &World{world: w}
}

// Donburi returns the wrapped world.
func (w *World) Donburi() donburi.World {
	return w.world
}

// Spawn creates a declaration entity from b and flags it for the next pass.
func (w *World) Spawn(b strokedtext.Bundle) donburi.Entity {
	e := w.world.Create(StrokedTextComponent, TransformComponent, VisibilityComponent, ChangedTag)
	entry := w.world.Entry(e)
	StrokedTextComponent.SetValue(entry, b.Text)
	TransformComponent.SetValue(entry, b.Transform)
	VisibilityComponent.SetValue(entry, b.Visibility)
	return e
}

// StrokedText returns a copy of the declaration on e.
func (w *World) StrokedText(e donburi.Entity) (strokedtext.StrokedText, bool) {
	entry, ok := w.declaration(e)
	if !ok {
		return strokedtext.StrokedText{}, false
	}
	return *StrokedTextComponent.Get(entry), true
}

// Mutate applies fn to the declaration on e and flags it.
func (w *World) Mutate(e donburi.Entity, fn func(*strokedtext.StrokedText)) error {
	entry, ok := w.declaration(e)
	if !ok {
		return fmt.Errorf("strokedtext/ecs: mutate %v: %w", e, strokedtext.ErrNotStrokedText)
	}
	fn(StrokedTextComponent.Get(entry))
	w.flag(entry)
	return nil
}

// Despawn removes e together with its generated children.
func (w *World) Despawn(e donburi.Entity) {
	if !w.world.Valid(e) {
		return
	}
	w.removeChildren(w.world.Entry(e))
	w.world.Remove(e)
}

func (w *World) declaration(e donburi.Entity) (*donburi.Entry, bool) {
	if !w.world.Valid(e) {
		return nil, false
	}
	entry := w.world.Entry(e)
	if !entry.HasComponent(StrokedTextComponent) {
		return nil, false
	}
	return entry, true
}

func (w *World) flag(entry *donburi.Entry) {
	if !entry.HasComponent(ChangedTag) {
		entry.AddComponent(ChangedTag)
	}
}

// --- strokedtext.Host ---

// Changed collects the tagged declarations, clears their tags, then yields
// them. Tags added while the sequence is consumed belong to the next pass.
func (w *World) Changed() iter.Seq[strokedtext.Change] {
	return func(yield func(strokedtext.Change) bool) {
		var batch []donburi.Entity
		changedQuery.Each(w.world, func(entry *donburi.Entry) {
			batch = append(batch, entry.Entity())
		})
		for _, e := range batch {
			w.world.Entry(e).RemoveComponent(ChangedTag)
		}

		for i, e := range batch {
			entry, ok := w.declaration(e)
			if !ok {
				continue
			}
			c := strokedtext.Change{
				ID:       nodeID(e),
				Text:     *StrokedTextComponent.Get(entry),
				Children: w.childrenOf(entry),
			}
			if !yield(c) {
				for _, rest := range batch[i+1:] {
					w.MarkChanged(nodeID(rest))
				}
				return
			}
		}
	}
}

func (w *World) childrenOf(entry *donburi.Entry) []strokedtext.Child {
	if !entry.HasComponent(ChildrenComponent) {
		return nil
	}
	ents := ChildrenComponent.Get(entry).Entities
	if len(ents) == 0 {
		return nil
	}
	out := make([]strokedtext.Child, len(ents))
	for i, ce := range ents {
		out[i].ID = nodeID(ce)
		if !w.world.Valid(ce) {
			continue
		}
		child := w.world.Entry(ce)
		out[i].Text = child.HasComponent(TextChildComponent)
		if child.HasComponent(TransformComponent) {
			t := TransformComponent.Get(child)
			out[i].Offset = strokedtext.Vec3{X: t.X, Y: t.Y, Z: t.Z}
		}
	}
	return out
}

// SpawnTextChildren creates one child entity per record under parent. The
// batch is validated before any entity is created.
func (w *World) SpawnTextChildren(parent strokedtext.NodeID, children []strokedtext.TextChild) error {
	pe := entity(parent)
	if !w.world.Valid(pe) {
		return fmt.Errorf("strokedtext/ecs: spawn children of %v: %w", pe, strokedtext.ErrNodeNotFound)
	}
	entry := w.world.Entry(pe)
	switch {
	case !entry.HasComponent(StrokedTextComponent):
		return fmt.Errorf("strokedtext/ecs: spawn children of %v: %w", pe, strokedtext.ErrNotStrokedText)
	case entry.HasComponent(ChildrenComponent) && len(ChildrenComponent.Get(entry).Entities) > 0:
		return fmt.Errorf("strokedtext/ecs: spawn children of %v: %w", pe, strokedtext.ErrChildrenExist)
	case len(children) != strokedtext.ChildCount:
		return fmt.Errorf("strokedtext/ecs: spawn children of %v: %d records: %w", pe, len(children), strokedtext.ErrInvalidBatch)
	}

	ents := make([]donburi.Entity, len(children))
	for i, tc := range children {
		ce := w.world.Create(TextChildComponent, TransformComponent, ParentComponent)
		child := w.world.Entry(ce)
		TextChildComponent.SetValue(child, tc)
		TransformComponent.SetValue(child, strokedtext.FromTranslation(tc.Offset.X, tc.Offset.Y, tc.Offset.Z))
		ParentComponent.SetValue(child, Parent{Entity: pe})
		ents[i] = ce
	}
	if !entry.HasComponent(ChildrenComponent) {
		entry.AddComponent(ChildrenComponent)
	}
	ChildrenComponent.SetValue(entry, Children{Entities: ents})
	return nil
}

// UpdateTextChild applies fn to the TextChildComponent of id.
func (w *World) UpdateTextChild(id strokedtext.NodeID, fn func(*strokedtext.TextChild)) bool {
	e := entity(id)
	if !w.world.Valid(e) {
		return false
	}
	entry := w.world.Entry(e)
	if !entry.HasComponent(TextChildComponent) {
		return false
	}
	tc := TextChildComponent.Get(entry)
	before := tc.Offset
	fn(tc)
	if tc.Offset != before && entry.HasComponent(TransformComponent) {
		t := TransformComponent.Get(entry)
		t.X, t.Y, t.Z = tc.Offset.X, tc.Offset.Y, tc.Offset.Z
	}
	return true
}

// DespawnChildren removes every generated child of parent.
func (w *World) DespawnChildren(parent strokedtext.NodeID) error {
	pe := entity(parent)
	if !w.world.Valid(pe) {
		return fmt.Errorf("strokedtext/ecs: despawn children of %v: %w", pe, strokedtext.ErrNodeNotFound)
	}
	w.removeChildren(w.world.Entry(pe))
	return nil
}

func (w *World) removeChildren(entry *donburi.Entry) {
	if !entry.HasComponent(ChildrenComponent) {
		return
	}
	for _, ce := range ChildrenComponent.Get(entry).Entities {
		if w.world.Valid(ce) {
			w.world.Remove(ce)
		}
	}
	ChildrenComponent.SetValue(entry, Children{})
}

// MarkChanged tags declaration id for the next pass.
func (w *World) MarkChanged(id strokedtext.NodeID) {
	if entry, ok := w.declaration(entity(id)); ok {
		w.flag(entry)
	}
}
