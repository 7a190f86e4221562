package headerview

import "time"

// Default scroll event throttles for the two animation paths.
const (
	nativeScrollThrottle = time.Millisecond
	scrollThrottle       = 16 * time.Millisecond
)

// Renderers produce the caller's layer content. Each is called when the
// layer tree is built; nil producers (or nil results) leave the layer empty.
type Renderers struct {
	Header                   func() *Node
	FixedForeground          func() *Node
	TouchableFixedForeground func() *Node
	Foreground               func() *Node
}

// HeaderScrollView hosts a scrollable body beneath a collapsing, parallax
// header. It forwards the body's control surface so it can stand in for a
// plain Scrollable.
//
// Lifecycle: New, Mount into a parent node, Layout whenever the frame
// changes, Unmount once. Unmount is final; afterwards every method is a
// no-op.
type HeaderScrollView struct {
	cfg       Config
	renderers Renderers
	props     ScrollProps // caller's props, before interception
	body      Scrollable  // nil after Unmount
	tracker   *ScrollTracker
	comp      *compositor
	loader    ImageLoader

	frame      Rect
	imageWidth float64 // frame width the header image was resolved for
	mounted    bool
	unmounted  bool
}

// New creates a header scroll view around body. A nil body uses a new
// ScrollView. props configures the body; its OnScroll still observes every
// scroll event.
func New(cfg Config, r Renderers, body Scrollable, props ScrollProps) *HeaderScrollView {
	if body == nil {
		body = NewScrollView()
	}
	h := &HeaderScrollView{
		cfg:        cfg,
		renderers:  r,
		props:      props,
		body:       body,
		tracker:    newScrollTracker(cfg.MinHeight),
		loader:     FileLoader{},
		imageWidth: -1,
	}
	h.build()
	return h
}

// build creates the layer tree for the current config and renderers.
func (h *HeaderScrollView) build() {
	h.comp = newCompositor(h.cfg, h.renderers, h.body)
	// The foreground updates after the body, so native sampling sees the
	// offset scrolled during the same frame.
	h.comp.foreground.OnUpdate = h.update
	h.body.SetProps(h.bodyProps())
	h.comp.apply(h.tracker.Offset())
}

// bodyProps returns the caller's props with the intercepted subset
// replaced: scroll handler, throttle, over-scroll mode and content insets.
func (h *HeaderScrollView) bodyProps() ScrollProps {
	p := h.props
	p.OnScroll = h.handleScroll
	if p.ScrollEventThrottle == 0 {
		p.ScrollEventThrottle = scrollThrottle
		if h.cfg.UseNativeDriver {
			p.ScrollEventThrottle = nativeScrollThrottle
		}
	}
	if p.OverScrollMode == OverScrollDefault {
		p.OverScrollMode = OverScrollNever
	}
	inset := h.cfg.HeaderScrollDistance()
	base := Style{
		BackgroundColor: Ptr(h.cfg.ScrollViewBackgroundColor),
		MarginTop:       Ptr(inset),
		PaddingBottom:   Ptr(inset),
	}
	p.ContentContainerStyle = base.Merge(h.props.ContentContainerStyle).Merge(h.cfg.ChildrenStyle)
	return p
}

// handleScroll receives every body scroll event.
func (h *HeaderScrollView) handleScroll(e ScrollEvent) {
	if h.unmounted {
		return
	}
	y := e.ContentOffset.Y
	if h.cfg.UseNativeDriver {
		h.tracker.Cell().Set(y)
	} else if h.tracker.OnScroll(y) {
		h.comp.apply(y)
	}
	if h.props.OnScroll != nil {
		h.props.OnScroll(e)
	}
}

// update samples the offset cell once per frame on the native path.
func (h *HeaderScrollView) update(float64) {
	if h.unmounted || !h.cfg.UseNativeDriver {
		return
	}
	h.comp.applyTransforms(h.tracker.Offset())
}

// SetImageLoader replaces the loader used for header image variants.
// Defaults to FileLoader.
func (h *HeaderScrollView) SetImageLoader(l ImageLoader) {
	if l == nil {
		l = FileLoader{}
	}
	h.loader = l
	h.imageWidth = -1
}

// State returns the read-only scroll state for descendants that track the
// header.
func (h *HeaderScrollView) State() ScrollReader {
	return h.tracker
}

// Config returns the current layout configuration.
func (h *HeaderScrollView) Config() Config {
	return h.cfg
}

// Root returns the root of the layer tree.
func (h *HeaderScrollView) Root() *Node {
	return h.comp.root
}

// Mount attaches the layer tree to parent and measures its page position.
func (h *HeaderScrollView) Mount(parent *Node) {
	if h.unmounted || parent == nil {
		return
	}
	parent.AddChild(h.comp.root)
	h.mounted = true
	h.tracker.OnLayout(h.comp.root)
}

// Layout sizes the component to frame, in the parent's coordinates.
func (h *HeaderScrollView) Layout(frame Rect) {
	if h.unmounted {
		return
	}
	h.frame = frame
	h.comp.layout(frame)
	h.resolveHeaderImage(frame.Width)
	h.comp.apply(h.tracker.Offset())
	if h.mounted {
		h.tracker.OnLayout(h.comp.root)
	}
}

// resolveHeaderImage loads the configured header image for width. Load
// errors fall back to the Header producer.
func (h *HeaderScrollView) resolveHeaderImage(width float64) {
	if h.cfg.HeaderImage == nil || width <= 0 || width == h.imageWidth {
		return
	}
	h.imageWidth = width
	img, err := resolveImage(h.cfg.HeaderImage, h.loader, width, h.cfg.MaxHeight)
	if err != nil {
		debugWarn(h.cfg.Debug, "header image: %v", err)
	}
	h.comp.setHeaderImage(img, err != nil || img == nil)
}

// Unmount tears down the component: scroll listening stops, the layer tree
// is disposed and the body is released.
func (h *HeaderScrollView) Unmount() {
	if h.unmounted {
		return
	}
	h.unmounted = true
	h.mounted = false
	h.tracker.teardown()

	p := h.bodyProps()
	p.OnScroll = nil
	h.body.SetProps(p)
	h.comp.detach()
	h.comp.root.Dispose()
	h.body = nil
}

// SetConfig replaces the layout configuration and rebuilds the layer tree.
// The scroll position is kept.
func (h *HeaderScrollView) SetConfig(cfg Config) {
	if h.unmounted {
		return
	}
	h.cfg = cfg
	h.tracker.minHeight = cfg.MinHeight
	h.imageWidth = -1
	h.rebuild()
}

// SetRenderers replaces the layer producers and rebuilds the layer tree.
func (h *HeaderScrollView) SetRenderers(r Renderers) {
	if h.unmounted {
		return
	}
	h.renderers = r
	h.imageWidth = -1
	h.rebuild()
}

// SetScrollProps replaces the caller's body props.
func (h *HeaderScrollView) SetScrollProps(p ScrollProps) {
	if h.unmounted {
		return
	}
	h.props = p
	h.body.SetProps(h.bodyProps())
}

func (h *HeaderScrollView) rebuild() {
	parent := h.comp.detach()
	h.build()
	if parent != nil {
		parent.AddChild(h.comp.root)
	}
	if h.frame != (Rect{}) {
		h.Layout(h.frame)
	}
}

// --- Forwarded control surface ---
//
// Each operation passes through to the body when it is attached and
// supports it, and silently does nothing otherwise.

// attached returns the body while mounted, else nil.
func (h *HeaderScrollView) attached() Scrollable {
	if !h.mounted {
		return nil
	}
	return h.body
}

// ScrollResponder returns the body's scroll responder, or nil.
func (h *HeaderScrollView) ScrollResponder() ScrollResponder {
	if p, ok := h.attached().(ScrollResponderProvider); ok {
		return p.ScrollResponder()
	}
	return nil
}

// ScrollableNode returns the body's scrollable node, or nil.
func (h *HeaderScrollView) ScrollableNode() *Node {
	if r := h.ScrollResponder(); r != nil {
		return r.ScrollableNode()
	}
	return nil
}

// InnerViewNode returns the body's inner content node, or nil.
func (h *HeaderScrollView) InnerViewNode() *Node {
	if r := h.ScrollResponder(); r != nil {
		return r.InnerViewNode()
	}
	return nil
}

// ScrollTo scrolls the body to (x, y).
func (h *HeaderScrollView) ScrollTo(x, y float64, animated bool) {
	if r := h.ScrollResponder(); r != nil {
		r.ScrollTo(x, y, animated)
	}
}

// ScrollToEnd scrolls the body to the end of its content.
func (h *HeaderScrollView) ScrollToEnd(animated bool) {
	if s, ok := h.attached().(EndScroller); ok {
		s.ScrollToEnd(animated)
	}
}

// SetNativeProps passes props straight to the body.
func (h *HeaderScrollView) SetNativeProps(props map[string]any) {
	if s, ok := h.attached().(NativePropsSetter); ok {
		s.SetNativeProps(props)
	}
}

// RecordInteraction notes a user interaction on the body.
func (h *HeaderScrollView) RecordInteraction() {
	if s, ok := h.attached().(InteractionRecorder); ok {
		s.RecordInteraction()
	}
}

// FlashScrollIndicators briefly shows the body's scroll indicators.
func (h *HeaderScrollView) FlashScrollIndicators() {
	if s, ok := h.attached().(IndicatorFlasher); ok {
		s.FlashScrollIndicators()
	}
}

// Metrics returns the body's metrics. ok is false when the body is
// detached or does not report metrics.
func (h *HeaderScrollView) Metrics() (m Metrics, ok bool) {
	if s, ok := h.attached().(MetricsProvider); ok {
		return s.Metrics(), true
	}
	return Metrics{}, false
}

// ScrollToIndex scrolls a list body to an item index.
func (h *HeaderScrollView) ScrollToIndex(p ScrollToIndexParams) {
	if s, ok := h.attached().(IndexScroller); ok {
		s.ScrollToIndex(p)
	}
}

// ScrollToItem scrolls a list body to an item.
func (h *HeaderScrollView) ScrollToItem(p ScrollToItemParams) {
	if s, ok := h.attached().(ItemScroller); ok {
		s.ScrollToItem(p)
	}
}

// ScrollToOffset scrolls a list body to an absolute offset.
func (h *HeaderScrollView) ScrollToOffset(p ScrollToOffsetParams) {
	if s, ok := h.attached().(OffsetScroller); ok {
		s.ScrollToOffset(p)
	}
}

// ScrollToLocation scrolls a sectioned body to an item within a section.
func (h *HeaderScrollView) ScrollToLocation(p ScrollToLocationParams) {
	if s, ok := h.attached().(LocationScroller); ok {
		s.ScrollToLocation(p)
	}
}
