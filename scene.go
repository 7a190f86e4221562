package headerview

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// Scene is the top-level object that owns the node tree and render buffers.
type Scene struct {
	root  *Node
	debug bool

	// ClearColor fills the target before drawing. The zero value leaves the
	// target untouched.
	ClearColor Color

	commands []RenderCommand
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:     NewContainer("root"),
		commands: make([]RenderCommand, 0, defaultCommandCap),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update runs per-node OnUpdate callbacks and refreshes world transforms.
func (s *Scene) Update() {
	s.UpdateDelta(1.0 / float64(ebiten.TPS()))
}

// UpdateDelta is Update with an explicit frame delta in seconds.
func (s *Scene) UpdateDelta(dt float64) {
	runUpdates(s.root, dt)
	updateWorldTransform(s.root, identityTransform, 1.0, false)
}

// runUpdates calls OnUpdate depth-first. Callbacks may dispose nodes or
// detach subtrees, so the child list is re-read after each call.
func runUpdates(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for i := 0; i < len(n.children); i++ {
		child := n.children[i]
		runUpdates(child, dt)
		if i < len(n.children) && n.children[i] != child {
			i--
		}
	}
}

// Draw traverses the scene tree, emits render commands and submits them to
// the given screen image.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	if !s.debug {
		s.collect()
		s.submit(screen)
		return
	}

	var stats debugStats
	t0 := time.Now()
	s.collect()
	stats.traverseTime = time.Since(t0)

	t0 = time.Now()
	s.submit(screen)
	stats.submitTime = time.Since(t0)
	stats.commandCount = len(s.commands)
	s.debugLog(stats)
}

// collect rebuilds the command list for the current tree.
func (s *Scene) collect() {
	s.commands = s.commands[:0]
	s.traverse(s.root, identityTransform, 1.0, false, Rect{}, false)
}

// SetDebugMode enables or disables per-frame timing stats on stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}
