package headerview

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields simultaneously.
// Create one via the convenience constructors (TweenAlpha, TweenPair,
// TweenFloat) and call Update(dt) each frame. The group auto-applies values
// and marks the target node dirty. If the target node is disposed, the group
// stops immediately.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenFloat(node, &node.Alpha, to, duration, fn)
}

// TweenFloat animates an arbitrary field owned by node. The group stops when
// node is disposed.
func TweenFloat(node *Node, field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenPair animates two fields owned by node together, such as the X and
// Y of a scroll offset.
func TweenPair(node *Node, fx, fy *float64, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(*fx), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(*fy), float32(toY), duration, fn)
	g.fields[0] = fx
	g.fields[1] = fy
	return g
}
