package strokedtext

import (
	"fmt"
	"time"
)

// debugStats holds per-frame timing metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	traverseTime time.Duration
	sortTime     time.Duration
	submitTime   time.Duration
	commandCount int
	lineCount    int
}

// debugLog reports frame stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	Logger().Debug("strokedtext: frame",
		"traverse", stats.traverseTime,
		"sort", stats.sortTime,
		"submit", stats.submitTime,
		"total", stats.traverseTime+stats.sortTime+stats.submitTime,
		"commands", stats.commandCount,
		"lines", stats.lineCount)
}

// debugCheckDisposed panics with a descriptive message when a despawned node
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("strokedtext debug: %s on despawned node %q (ID %d)", op, n.Name, n.ID))
	}
}

// debugMaxTreeDepth is the depth beyond which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("strokedtext: deep tree", "depth", depth, "max", debugMaxTreeDepth, "node", n.Name)
	}
}
