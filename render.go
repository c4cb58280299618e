package strokedtext

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawCommand is one text node to draw this frame.
type drawCommand struct {
	node      *Node
	transform [6]float64 // view * world
	originX   float64    // anchor translation in node-local space
	originY   float64
	z         float64
	treeOrder int // assigned during traversal for stable sort
}

// Draw refreshes world transforms, collects visible text nodes, sorts them by
// world Z (then tree order), and draws them onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.collect()

	if s.debug {
		stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	s.mergeSort()

	if s.debug {
		stats.sortTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		t0 = time.Now()
	}

	stats.lineCount = s.submit(screen)

	if s.debug {
		stats.submitTime = time.Since(t0)
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
}

// collect rebuilds s.commands from the current tree.
func (s *Scene) collect() {
	s.commands = s.commands[:0]
	updateWorldTransform(s.root, identityTransform, 0, false)
	view := identityTransform
	if s.Camera != nil {
		view = s.Camera.viewMatrix()
	}
	treeOrder := 0
	s.traverse(s.root, view, &treeOrder)
}

// traverse walks the tree depth-first and emits a command for every visible
// text node. Hidden nodes hide their whole subtree.
func (s *Scene) traverse(n *Node, view [6]float64, treeOrder *int) {
	if !n.Visible {
		return
	}
	if n.Type == NodeTypeText && n.Text != nil {
		s.emitText(n, view, treeOrder)
	}
	for _, child := range n.children {
		s.traverse(child, view, treeOrder)
	}
}

func (s *Scene) emitText(n *Node, view [6]float64, treeOrder *int) {
	tc := n.Text
	if !drawable(tc) {
		return
	}
	lo := s.nodeLayout(n)
	ox, oy := lo.anchorOffset(tc.Anchor)
	*treeOrder++
	s.commands = append(s.commands, drawCommand{
		node:      n,
		transform: multiplyAffine(view, n.worldTransform),
		originX:   ox,
		originY:   oy,
		z:         n.worldZ,
		treeOrder: *treeOrder,
	})
}

// nodeLayout returns the cached layout of a text node, rebuilding it when
// the record or the font registry changed.
func (s *Scene) nodeLayout(n *Node) *textLayout {
	if n.layoutDirty || n.layoutGen != s.Fonts.gen {
		n.layout = layoutText(n.Text, s.Fonts.Resolve(n.Text.Style.Font))
		n.layoutDirty = false
		n.layoutGen = s.Fonts.gen
	}
	return &n.layout
}

// submit draws every command in order and returns the number of lines drawn.
func (s *Scene) submit(dst *ebiten.Image) int {
	lines := 0
	for i := range s.commands {
		cmd := &s.commands[i]
		tc := cmd.node.Text
		face := s.Fonts.Resolve(tc.Style.Font).Face(tc.Style.Size)
		lines += drawLines(dst, &cmd.node.layout, tc, face, geoM(cmd.transform), cmd.originX, cmd.originY)
	}
	return lines
}

// DrawText lays out tc and draws it onto dst. geo maps the text node's local
// space to dst. Hosts without a retained layout cache use this directly.
func DrawText(dst *ebiten.Image, tc *TextChild, fonts *FontRegistry, geo ebiten.GeoM) {
	if !drawable(tc) {
		return
	}
	f := fonts.Resolve(tc.Style.Font)
	lo := layoutText(tc, f)
	ox, oy := lo.anchorOffset(tc.Anchor)
	drawLines(dst, &lo, tc, f.Face(tc.Style.Size), geo, ox, oy)
}

func drawable(tc *TextChild) bool {
	return tc.Content != "" && tc.Style.Size > 0 && tc.Style.Color.A > 0
}

// drawLines draws each non-empty line of lo and returns how many were drawn.
func drawLines(dst *ebiten.Image, lo *textLayout, tc *TextChild, face text.Face, world ebiten.GeoM, ox, oy float64) int {
	n := 0
	for li, line := range lo.lines {
		if line.content == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(ox+line.x, oy+float64(li)*lo.lineHeight)
		op.GeoM.Concat(world)
		op.ColorScale.ScaleWithColor(tc.Style.Color.toRGBA())
		text.Draw(dst, line.content, face, op)
		n++
	}
	return n
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// --- Merge sort ---

// commandLessOrEqual reports whether a sorts before or with b.
// Using <= for treeOrder keeps the sort stable.
func commandLessOrEqual(a, b *drawCommand) bool {
	if a.z != b.z {
		return a.z < b.z
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts s.commands in place using s.sortBuf as scratch space.
// Bottom-up merge sort: no allocations once the sort buffer has grown.
func (s *Scene) mergeSort() {
	n := len(s.commands)
	if n <= 1 {
		return
	}
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]drawCommand, n)
	}
	s.sortBuf = s.sortBuf[:n]

	a := s.commands
	b := s.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(s.commands, s.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []drawCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
