package headerview

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderCommand is a single draw instruction emitted during scene traversal.
type RenderCommand struct {
	Transform [6]float64 // world transform of the sprite, unit = one local pixel
	Width     float64
	Height    float64
	Color     Color // alpha already multiplied by the accumulated world alpha
	Image     *ebiten.Image
	Clip      Rect // screen-space clip; zero means unclipped
	clipped   bool
	node      *Node
}

// traverse walks the node tree depth-first in ZIndex order, updating
// transforms and emitting render commands for visible sprites.
func (s *Scene) traverse(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool, clip Rect, clipped bool) {
	if !n.Visible {
		return
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(n)
		n.worldTransform = multiplyAffine(parentTransform, local)
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	if n.Clip {
		own := worldAABB(n.worldTransform, n.Width, n.Height)
		if clipped {
			own = intersectRect(own, clip)
		}
		clip, clipped = own, true
		if clip.Empty() {
			return
		}
	}

	if n.Type == NodeTypeSprite && n.Width > 0 && n.Height > 0 && n.worldAlpha > 0 && n.Color.A > 0 {
		c := n.Color
		c.A *= n.worldAlpha
		s.commands = append(s.commands, RenderCommand{
			Transform: n.worldTransform,
			Width:     n.Width,
			Height:    n.Height,
			Color:     c,
			Image:     n.image,
			Clip:      clip,
			clipped:   clipped,
			node:      n,
		})
	}

	if len(n.children) == 0 {
		return
	}
	for _, child := range sortedChildrenOf(n) {
		s.traverse(child, n.worldTransform, n.worldAlpha, recompute, clip, clipped)
	}
}

// submit draws the emitted commands onto target in order.
func (s *Scene) submit(target *ebiten.Image) {
	for i := range s.commands {
		cmd := &s.commands[i]
		dst := target
		if cmd.clipped {
			r := image.Rect(
				int(math.Floor(cmd.Clip.X)), int(math.Floor(cmd.Clip.Y)),
				int(math.Ceil(cmd.Clip.X+cmd.Clip.Width)), int(math.Ceil(cmd.Clip.Y+cmd.Clip.Height)),
			)
			dst = target.SubImage(r).(*ebiten.Image)
		}

		src := cmd.Image
		if src == nil {
			src = WhitePixel
		}
		b := src.Bounds()
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(cmd.Width/float64(b.Dx()), cmd.Height/float64(b.Dy()))
		m := cmd.Transform
		var world ebiten.GeoM
		world.SetElement(0, 0, m[0])
		world.SetElement(0, 1, m[2])
		world.SetElement(0, 2, m[4])
		world.SetElement(1, 0, m[1])
		world.SetElement(1, 1, m[3])
		world.SetElement(1, 2, m[5])
		op.GeoM.Concat(world)
		a := float32(cmd.Color.A)
		op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(src, &op)
	}
}

// worldAABB computes the axis-aligned bounding box for a rectangle of size (w, h)
// transformed by the given affine matrix.
func worldAABB(transform [6]float64, w, h float64) Rect {
	x0, y0 := transformPoint(transform, 0, 0)
	x1, y1 := transformPoint(transform, w, 0)
	x2, y2 := transformPoint(transform, w, h)
	x3, y3 := transformPoint(transform, 0, h)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// intersectRect returns the overlap of a and b. Disjoint rectangles yield
// an empty Rect.
func intersectRect(a, b Rect) Rect {
	x0 := math.Max(a.X, b.X)
	y0 := math.Max(a.Y, b.Y)
	x1 := math.Min(a.X+a.Width, b.X+b.Width)
	y1 := math.Min(a.Y+a.Height, b.Y+b.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
