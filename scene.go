package strokedtext

import (
	"fmt"
	"iter"

	"github.com/hajimehoshi/ebiten/v2"
)

// System is a callback run once per Scene.Update, in registration order.
type System func(s *Scene)

const defaultCommandCap = 256

// Scene owns the node tree, the font registry, and the per-frame systems.
// It is the Host that stroked text declarations are synchronized into.
// A Scene is not safe for concurrent use.
type Scene struct {
	root   *Node
	nodes  map[NodeID]*Node
	nextID NodeID

	// Change tracking: ids mutated since the last Changed pass, deduplicated.
	changed []NodeID
	spare   []NodeID
	pending map[NodeID]bool

	// revision counts observable mutations of declarations and children.
	revision uint64

	systems       []System
	syncInstalled bool
	dt            float64

	// Fonts resolves the font handles of text children.
	Fonts *FontRegistry
	// Camera, when non-nil, supplies the view transform for Draw.
	Camera *Camera
	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// OnSyncError, when set, receives the error of every SyncSystem pass that
	// had failures. The failed declarations are retried on the next tick.
	OnSyncError func(error)

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	shots         []string
	script        *ScriptRunner

	debug bool

	// Render state
	commands []drawCommand
	sortBuf  []drawCommand
}

// NewScene creates a scene with a pre-created root container.
func NewScene() *Scene {
	s := &Scene{
		nodes:         make(map[NodeID]*Node),
		pending:       make(map[NodeID]bool),
		Fonts:         NewFontRegistry(),
		ScreenshotDir: defaultScreenshotDir,
		commands:      make([]drawCommand, 0, defaultCommandCap),
		sortBuf:       make([]drawCommand, 0, defaultCommandCap),
	}
	s.root = s.NewContainer("root")
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Node returns the live node with the given id, or nil.
func (s *Scene) Node(id NodeID) *Node {
	return s.nodes[id]
}

// Revision returns a counter that increases on every observable change to a
// declaration or a generated child.
func (s *Scene) Revision() uint64 {
	return s.revision
}

// DeltaTime returns the duration of the current tick in seconds.
func (s *Scene) DeltaTime() float64 {
	return s.dt
}

// NewContainer creates a container node owned by this scene. It is not
// attached to the tree until added as a child.
func (s *Scene) NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	s.register(n)
	return n
}

func (s *Scene) register(n *Node) {
	s.nextID++
	nodeDefaults(n, s.nextID)
	s.nodes[n.ID] = n
}

// Spawn creates a stroked text node from b under the root and flags it for
// synchronization.
func (s *Scene) Spawn(b Bundle) NodeID {
	return s.spawn(s.root, b).ID
}

// SpawnChild creates a stroked text node from b under parent. The children
// of stroked text and text nodes belong to the sync engine, so those parents
// are rejected with ErrInvalidParent; group declarations under a container.
func (s *Scene) SpawnChild(parent NodeID, b Bundle) (NodeID, error) {
	p := s.nodes[parent]
	if p == nil {
		return 0, fmt.Errorf("strokedtext: spawn under %d: %w", parent, ErrNodeNotFound)
	}
	if p.Type != NodeTypeContainer {
		return 0, fmt.Errorf("strokedtext: spawn under %d: %w", parent, ErrInvalidParent)
	}
	return s.spawn(p, b).ID, nil
}

func (s *Scene) spawn(parent *Node, b Bundle) *Node {
	st := b.Text
	n := &Node{Name: "stroked-text", Type: NodeTypeStrokedText, Stroked: &st}
	s.register(n)
	t := b.Transform
	n.X, n.Y, n.Z = t.X, t.Y, t.Z
	n.ScaleX, n.ScaleY = t.ScaleX, t.ScaleY
	n.Rotation = t.Rotation
	n.Visible = b.Visibility != VisibilityHidden
	parent.AddChild(n)
	s.revision++
	s.MarkChanged(n.ID)
	return n
}

// StrokedText returns a copy of the declaration of node id.
func (s *Scene) StrokedText(id NodeID) (StrokedText, bool) {
	n := s.nodes[id]
	if n == nil || n.Stroked == nil {
		return StrokedText{}, false
	}
	return *n.Stroked, true
}

// SetStrokedText replaces the declaration of node id and flags it.
func (s *Scene) SetStrokedText(id NodeID, st StrokedText) error {
	return s.MutateStrokedText(id, func(cur *StrokedText) { *cur = st })
}

// MutateStrokedText applies fn to the declaration of node id and flags it for
// synchronization. fn must not retain the pointer.
func (s *Scene) MutateStrokedText(id NodeID, fn func(*StrokedText)) error {
	n := s.nodes[id]
	if n == nil {
		return fmt.Errorf("strokedtext: mutate %d: %w", id, ErrNodeNotFound)
	}
	if n.Stroked == nil {
		return fmt.Errorf("strokedtext: mutate %d: %w", id, ErrNotStrokedText)
	}
	fn(n.Stroked)
	s.revision++
	s.MarkChanged(id)
	return nil
}

// Despawn removes node id and its whole subtree from the scene.
// No-op if id is not live.
func (s *Scene) Despawn(id NodeID) {
	n := s.nodes[id]
	if n == nil || n == s.root {
		return
	}
	n.RemoveFromParent()
	s.disposeSubtree(n)
}

func (s *Scene) disposeSubtree(n *Node) {
	n.dispose(func(d *Node) {
		delete(s.nodes, d.ID)
		delete(s.pending, d.ID)
	})
	s.revision++
}

// --- Host ---

// MarkChanged flags node id for the next synchronization pass.
func (s *Scene) MarkChanged(id NodeID) {
	if s.pending[id] {
		return
	}
	s.pending[id] = true
	s.changed = append(s.changed, id)
}

// Changed yields the declarations flagged since the previous pass. Flags
// raised while the sequence is consumed are kept for the next pass.
func (s *Scene) Changed() iter.Seq[Change] {
	return func(yield func(Change) bool) {
		batch := s.changed
		s.changed = s.spare[:0]
		clear(s.pending)
		defer func() { s.spare = batch[:0] }()

		for i, id := range batch {
			n := s.nodes[id]
			if n == nil || n.Stroked == nil {
				continue
			}
			if !yield(Change{ID: id, Text: *n.Stroked, Children: childrenOf(n)}) {
				for _, rest := range batch[i+1:] {
					s.MarkChanged(rest)
				}
				return
			}
		}
	}
}

func childrenOf(n *Node) []Child {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]Child, len(n.children))
	for i, c := range n.children {
		out[i] = Child{
			ID:     c.ID,
			Offset: Vec3{c.X, c.Y, c.Z},
			Text:   c.Type == NodeTypeText && c.Text != nil,
		}
	}
	return out
}

// SpawnTextChildren attaches one text node per record under parent. The batch
// is validated before any node is created, so it is attached whole or not
// at all.
func (s *Scene) SpawnTextChildren(parent NodeID, children []TextChild) error {
	p := s.nodes[parent]
	switch {
	case p == nil:
		return fmt.Errorf("strokedtext: spawn children of %d: %w", parent, ErrNodeNotFound)
	case p.Stroked == nil:
		return fmt.Errorf("strokedtext: spawn children of %d: %w", parent, ErrNotStrokedText)
	case len(p.children) > 0:
		return fmt.Errorf("strokedtext: spawn children of %d: %w", parent, ErrChildrenExist)
	case len(children) != ChildCount:
		return fmt.Errorf("strokedtext: spawn children of %d: %d records: %w", parent, len(children), ErrInvalidBatch)
	}

	for _, rec := range children {
		tc := rec
		n := &Node{Name: "fill", Type: NodeTypeText, Text: &tc, layoutDirty: true}
		if tc.IsStroke() {
			n.Name = "stroke"
		}
		s.register(n)
		n.X, n.Y, n.Z = tc.Offset.X, tc.Offset.Y, tc.Offset.Z
		p.AddChild(n)
	}
	s.revision++
	return nil
}

// UpdateTextChild applies fn to the record of text node id.
func (s *Scene) UpdateTextChild(id NodeID, fn func(*TextChild)) bool {
	n := s.nodes[id]
	if n == nil || n.Text == nil {
		return false
	}
	before := *n.Text
	fn(n.Text)
	if *n.Text == before {
		return true
	}
	if n.Text.Offset != before.Offset {
		n.SetPosition(n.Text.Offset.X, n.Text.Offset.Y, n.Text.Offset.Z)
	}
	n.layoutDirty = true
	s.revision++
	return true
}

// DespawnChildren destroys every child of parent.
func (s *Scene) DespawnChildren(parent NodeID) error {
	p := s.nodes[parent]
	if p == nil {
		return fmt.Errorf("strokedtext: despawn children of %d: %w", parent, ErrNodeNotFound)
	}
	children := p.children
	p.children = nil
	for _, c := range children {
		c.Parent = nil
		s.disposeSubtree(c)
	}
	return nil
}

// --- Frame ---

// AddSystem registers a per-tick callback.
func (s *Scene) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
}

// Update advances the attached script, runs every registered system, then
// refreshes world transforms.
func (s *Scene) Update() {
	s.dt = 1.0 / float64(ebiten.TPS())
	if s.script != nil {
		s.script.step(s)
	}
	for _, sys := range s.systems {
		sys(s)
	}
	updateWorldTransform(s.root, identityTransform, 0, false)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, deep trees are reported, and per-frame draw stats are
// logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
