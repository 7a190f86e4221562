package headerview

import "github.com/hajimehoshi/ebiten/v2"

// compositor owns the layer tree of a HeaderScrollView and maps scroll
// offsets onto it. Paint order under root: background, header, body,
// touchable foreground, parallax foreground.
type compositor struct {
	cfg       Config
	renderers Renderers
	body      Scrollable

	root            *Node
	background      *Node
	header          *Node
	headerContent   *Node
	overlay         *Node // nil when the overlay is disabled
	fixedForeground *Node
	touchable       *Node // nil on the native path
	foreground      *Node

	headerImage *ebiten.Image
	imageFailed bool
	ownsContent bool // headerContent is an image sprite or placeholder
	width       float64
}

func newCompositor(cfg Config, r Renderers, body Scrollable) *compositor {
	c := &compositor{cfg: cfg, renderers: r, body: body}
	c.build()
	return c
}

// produce calls fn, substituting an empty container named name when fn is
// nil or returns nil.
func produce(fn func() *Node, name string) *Node {
	if fn != nil {
		if n := fn(); n != nil {
			return n
		}
	}
	return NewContainer(name)
}

func (c *compositor) build() {
	cfg := c.cfg
	c.root = NewContainer("container")
	c.background = NewRect("background", 0, 0, cfg.ScrollViewBackgroundColor)
	c.root.AddChild(c.background)

	c.header = NewRect("header", 0, cfg.MaxHeight, ColorTransparent)
	c.header.Clip = true
	c.headerContent = c.newHeaderContent()
	c.header.AddChild(c.headerContent)
	if !cfg.OverlayDisabled() {
		c.overlay = NewRect("overlay", 0, cfg.MaxHeight, cfg.OverlayColor)
		c.overlay.SetZIndex(ZIndexOverlay)
		c.header.AddChild(c.overlay)
	}
	c.fixedForeground = NewRect("fixedForeground", 0, cfg.MaxHeight, ColorTransparent)
	c.fixedForeground.SetZIndex(ZIndexFixedForeground)
	c.fixedForeground.AddChild(produce(c.renderers.FixedForeground, "fixedForegroundContent"))
	c.header.AddChild(c.fixedForeground)
	c.root.AddChild(c.header)

	c.root.AddChild(c.body.Node())

	switch {
	case cfg.UseNativeDriver:
		if c.renderers.TouchableFixedForeground != nil {
			debugWarn(cfg.Debug, "UseNativeDriver does not support a touchable fixed foreground; the layer is omitted")
		}
	default:
		c.touchable = NewContainer("touchableForeground")
		c.touchable.Clip = true
		c.touchable.SetZIndex(ZIndexTouchableFixedForeground)
		c.touchable.AddChild(produce(c.renderers.TouchableFixedForeground, "touchableForegroundContent"))
		c.root.AddChild(c.touchable)
	}

	if c.renderers.Foreground == nil {
		c.foreground = NewContainer("foregroundPlaceholder")
	} else {
		c.foreground = NewContainer("foreground")
		c.foreground.Clip = true
		c.foreground.AddChild(produce(c.renderers.Foreground, "foregroundContent"))
	}
	c.root.AddChild(c.foreground)
}

// newHeaderContent returns the header image sprite, the Header producer's
// subtree, or an empty placeholder, in that order of preference. The
// producer is skipped while a configured header image is still pending.
func (c *compositor) newHeaderContent() *Node {
	if c.headerImage != nil {
		c.ownsContent = true
		return NewSprite("headerImage", c.headerImage)
	}
	if c.cfg.HeaderImage == nil || c.imageFailed {
		if fn := c.renderers.Header; fn != nil {
			if n := fn(); n != nil {
				c.ownsContent = false
				return n
			}
		}
	}
	c.ownsContent = true
	n := NewContainer("headerPlaceholder")
	n.SetSize(c.width, c.cfg.MaxHeight)
	return n
}

// setHeaderImage swaps the header content for img. failed marks a load
// error, after which the Header producer stands in.
func (c *compositor) setHeaderImage(img *ebiten.Image, failed bool) {
	if img == c.headerImage && failed == c.imageFailed {
		return
	}
	c.headerImage, c.imageFailed = img, failed
	old := c.headerContent
	old.RemoveFromParent()
	if c.ownsContent {
		old.Dispose()
	}
	c.headerContent = c.newHeaderContent()
	c.header.AddChild(c.headerContent)
	c.sizeHeaderContent()
}

func (c *compositor) sizeHeaderContent() {
	if c.ownsContent {
		c.headerContent.SetSize(c.width, c.cfg.MaxHeight)
	}
}

// layout sizes every layer for frame and places the body below the
// collapsed header.
func (c *compositor) layout(frame Rect) {
	cfg := c.cfg
	w, h := frame.Width, frame.Height
	c.width = w
	c.root.SetPosition(frame.X, frame.Y)
	c.root.SetSize(w, h)
	c.background.SetSize(w, h)

	hs := cfg.HeaderContainerStyle
	off := orDefault(hs.Offset, Vec2{})
	c.header.SetPivot(w/2, cfg.MaxHeight/2)
	c.header.SetPosition(w/2+off.X, cfg.MaxHeight/2+off.Y)
	c.header.SetSize(w, cfg.MaxHeight)
	c.header.Color = orDefault(hs.BackgroundColor, ColorTransparent)
	c.header.SetAlpha(orDefault(hs.Opacity, 1))
	c.sizeHeaderContent()
	if c.overlay != nil {
		c.overlay.SetSize(w, cfg.MaxHeight)
	}

	fs := cfg.FixedForegroundContainerStyle
	foff := orDefault(fs.Offset, Vec2{})
	c.fixedForeground.SetPosition(foff.X, foff.Y)
	c.fixedForeground.SetSize(w, cfg.MaxHeight)
	c.fixedForeground.Color = orDefault(fs.BackgroundColor, ColorTransparent)
	c.fixedForeground.SetAlpha(orDefault(fs.Opacity, 1))

	if c.touchable != nil {
		c.touchable.SetSize(w, c.touchable.Height)
	}
	if c.renderers.Foreground != nil {
		c.foreground.SetSize(w, cfg.MaxHeight)
	}

	bodyH := h - cfg.MinHeight
	if bodyH < 0 {
		bodyH = 0
	}
	c.body.SetFrame(Rect{X: 0, Y: cfg.MinHeight, Width: w, Height: bodyH})
}

// apply sets every scroll-driven property for offset.
func (c *compositor) apply(offset float64) {
	c.applyTransforms(offset)
	if c.touchable != nil {
		c.touchable.SetSize(c.width, c.cfg.TouchableHeight(offset))
	}
}

// applyTransforms sets the transform and opacity properties only: header
// scale, overlay opacity and foreground translation.
func (c *compositor) applyTransforms(offset float64) {
	if !c.cfg.DisableHeaderGrow {
		s := c.cfg.HeaderScale(offset)
		c.header.SetScale(s, s)
	}
	if c.overlay != nil {
		c.overlay.SetAlpha(c.cfg.OverlayOpacity(offset))
	}
	if c.renderers.Foreground != nil {
		c.foreground.SetY(c.cfg.ForegroundTranslate(offset))
	}
}

// detach removes the layer tree from its parent and releases the body so
// a replacement compositor can adopt it.
func (c *compositor) detach() *Node {
	parent := c.root.Parent
	c.body.Node().RemoveFromParent()
	c.root.RemoveFromParent()
	return parent
}
