package strokedtext

import (
	"errors"
	"iter"
)

var (
	// ErrNodeNotFound is returned when an ID no longer names a live node.
	ErrNodeNotFound = errors.New("strokedtext: node not found")
	// ErrNotStrokedText is returned when a node carries no declaration.
	ErrNotStrokedText = errors.New("strokedtext: node is not stroked text")
	// ErrChildrenExist is returned when children are spawned under a
	// declaration that already has some.
	ErrChildrenExist = errors.New("strokedtext: children already exist")
	// ErrInvalidBatch is returned when a child batch is not a full set of
	// ChildCount records.
	ErrInvalidBatch = errors.New("strokedtext: invalid child batch")
	// ErrInvalidParent is returned when a declaration is spawned under a
	// node whose children are owned by the sync engine.
	ErrInvalidParent = errors.New("strokedtext: parent cannot hold declarations")
)

// TextStyle is the font, size and color of one text child.
type TextStyle struct {
	Font  FontHandle
	Size  float64
	Color Color
}

// TextChild is the render record of one generated child node.
type TextChild struct {
	Content   string
	Style     TextStyle
	Align     TextAlign
	LineBreak LineBreak
	WrapWidth float64
	Anchor    Anchor
	// Offset is the local translation. Z < 0 marks a stroke copy.
	Offset Vec3
}

// IsStroke reports whether the child is one of the background copies.
func (tc *TextChild) IsStroke() bool {
	return tc.Offset.Z < 0
}

// Child describes an existing child of a declaration node as seen by the
// change detector.
type Child struct {
	ID NodeID
	// Offset is the child's current local translation.
	Offset Vec3
	// Text is false when the child carries no TextChild record.
	Text bool
}

// Change pairs a changed declaration with its current children.
type Change struct {
	ID   NodeID
	Text StrokedText
	// Children is nil when the declaration has never been synchronized.
	Children []Child
}

// Host is the scene store the sync engine projects declarations into.
// Implementations are not required to be safe for concurrent use.
type Host interface {
	// Changed yields every declaration created or mutated since the previous
	// pass, once each. Consuming a Change acknowledges it.
	Changed() iter.Seq[Change]

	// SpawnTextChildren attaches children under parent, in order, as one
	// operation: on error nothing is attached.
	SpawnTextChildren(parent NodeID, children []TextChild) error

	// UpdateTextChild applies fn to the record of child id in place. It
	// reports false when id has no text record.
	UpdateTextChild(id NodeID, fn func(*TextChild)) bool

	// DespawnChildren destroys every child of parent.
	DespawnChildren(parent NodeID) error

	// MarkChanged flags a declaration so the next pass visits it again. It
	// may be called while Changed is being consumed.
	MarkChanged(id NodeID)
}
