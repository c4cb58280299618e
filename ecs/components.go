package ecs

import (
	"github.com/phanxgames/strokedtext"

	"github.com/yohamta/donburi"
)

// Children lists the entities generated for a declaration, in creation order.
type Children struct {
	Entities []donburi.Entity
}

// Parent points a generated child back at its declaration entity.
type Parent struct {
	Entity donburi.Entity
}

var (
	// StrokedTextComponent holds the declaration.
	StrokedTextComponent = donburi.NewComponentType[strokedtext.StrokedText]()
	// TransformComponent holds the local transform of declarations and children.
	TransformComponent = donburi.NewComponentType[strokedtext.Transform]()
	// VisibilityComponent holds the visibility of a declaration.
	VisibilityComponent = donburi.NewComponentType[strokedtext.Visibility]()
	// TextChildComponent holds the render record of a generated child.
	TextChildComponent = donburi.NewComponentType[strokedtext.TextChild]()
	// ChildrenComponent is present on declarations once children exist.
	ChildrenComponent = donburi.NewComponentType[Children]()
	// ParentComponent is present on every generated child.
	ParentComponent = donburi.NewComponentType[Parent]()
	// ChangedTag marks a declaration for the next sync pass.
	ChangedTag = donburi.NewTag()
)

func nodeID(e donburi.Entity) strokedtext.NodeID {
	return strokedtext.NodeID(e)
}

func entity(id strokedtext.NodeID) donburi.Entity {
	return donburi.Entity(id)
}
