package headerview

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

const (
	scrollDuration      = 0.25 // seconds, animated scroll-to
	springBackDuration  = 0.3  // seconds, return from overscroll
	springBackDelay     = 0.12 // seconds of wheel idle before springing back
	indicatorFadeTime   = 0.8  // seconds
	indicatorWidth      = 3
	indicatorMinHeight  = 16
	wheelStep           = 40 // content pixels per wheel notch
	maxOverscrollFactor = 0.5
	refreshThreshold    = 64
)

// Input sources, replaceable in tests.
var (
	readWheel  = ebiten.Wheel
	readCursor = func() (float64, float64) {
		x, y := ebiten.CursorPosition()
		return float64(x), float64(y)
	}
)

// ScrollView is the default Scrollable: a clipped viewport over a vertical
// content container, scrolled with the mouse wheel or programmatically.
type ScrollView struct {
	node       *Node // clipping viewport
	backdrop   *Node // Style.BackgroundColor fill
	container  *Node // translated by -offset
	background *Node // ContentContainerStyle.BackgroundColor fill
	indicator  *Node

	props         ScrollProps
	frame         Rect
	scrollEnabled bool
	showIndicator bool
	overscroll    bool

	offset       Vec2
	anim         *TweenGroup
	animX, animY float64
	fade         *TweenGroup
	wheelIdle    float64
	sinceEmit    time.Duration
	emitted      bool
	pending      bool
	refreshing   bool
	interactions int
}

// NewScrollView creates an empty scroll view. Attach content with SetProps.
func NewScrollView() *ScrollView {
	v := &ScrollView{
		node:          NewContainer("scrollView"),
		backdrop:      NewRect("scrollViewBackdrop", 0, 0, ColorTransparent),
		container:     NewContainer("scrollContent"),
		background:    NewRect("scrollContentBackground", 0, 0, ColorTransparent),
		indicator:     NewRect("scrollIndicator", indicatorWidth, 0, Color{0, 0, 0, 0.5}),
		scrollEnabled: true,
		showIndicator: true,
	}
	v.node.Clip = true
	v.indicator.Alpha = 0
	v.node.AddChild(v.backdrop)
	v.node.AddChild(v.container)
	v.container.AddChild(v.background)
	v.node.AddChild(v.indicator)
	v.node.OnUpdate = v.update
	return v
}

// Node implements Scrollable.
func (v *ScrollView) Node() *Node {
	return v.node
}

// SetFrame implements Scrollable.
func (v *ScrollView) SetFrame(r Rect) {
	v.frame = r
	v.layout()
}

// SetProps implements Scrollable.
func (v *ScrollView) SetProps(p ScrollProps) {
	if v.props.Content != nil && v.props.Content != p.Content && v.props.Content.Parent == v.container {
		v.container.RemoveChild(v.props.Content)
	}
	v.props = p
	if p.Content != nil && p.Content.Parent != v.container {
		v.container.AddChild(p.Content)
	}
	v.scrollEnabled = orDefault(p.ScrollEnabled, true)
	v.showIndicator = orDefault(p.ShowsVerticalScrollIndicator, true)
	v.overscroll = p.OverScrollMode == OverScrollAuto || p.OverScrollMode == OverScrollAlways
	v.layout()
}

// layout places the viewport, content and fills for the current frame,
// props and content size.
func (v *ScrollView) layout() {
	st := v.props.Style
	off := orDefault(st.Offset, Vec2{})
	v.node.SetPosition(v.frame.X+off.X, v.frame.Y+off.Y)
	v.node.SetSize(v.frame.Width, v.frame.Height)
	v.node.SetAlpha(orDefault(st.Opacity, 1))
	v.backdrop.SetSize(v.frame.Width, v.frame.Height)
	v.backdrop.Color = orDefault(st.BackgroundColor, ColorTransparent)

	cs := v.props.ContentContainerStyle
	marginTop := orDefault(cs.MarginTop, 0)
	padTop := orDefault(cs.PaddingTop, 0)
	v.background.SetPosition(0, marginTop)
	v.background.SetSize(v.contentWidth(), v.contentLength()-marginTop)
	v.background.Color = orDefault(cs.BackgroundColor, ColorTransparent)
	if c := v.props.Content; c != nil {
		c.SetPosition(0, marginTop+padTop)
	}

	v.indicator.SetPosition(v.frame.Width-indicatorWidth, v.indicator.Y)
	v.setOffset(v.offset.X, v.offset.Y, true)
}

// contentLength is the scrollable content height including insets.
func (v *ScrollView) contentLength() float64 {
	cs := v.props.ContentContainerStyle
	h := orDefault(cs.MarginTop, 0) + orDefault(cs.PaddingTop, 0) + orDefault(cs.PaddingBottom, 0)
	if c := v.props.Content; c != nil {
		h += c.Height
	}
	return h
}

func (v *ScrollView) contentWidth() float64 {
	if c := v.props.Content; c != nil && c.Width > v.frame.Width {
		return c.Width
	}
	return v.frame.Width
}

// maxOffset returns the largest in-bounds offset on each axis.
func (v *ScrollView) maxOffset() Vec2 {
	return Vec2{
		X: math.Max(0, v.contentWidth()-v.frame.Width),
		Y: math.Max(0, v.contentLength()-v.frame.Height),
	}
}

// clampOffset limits (x, y) to the content bounds.
func (v *ScrollView) clampOffset(x, y float64) (float64, float64) {
	m := v.maxOffset()
	return math.Max(0, math.Min(x, m.X)), math.Max(0, math.Min(y, m.Y))
}

// Offset returns the current content offset.
func (v *ScrollView) Offset() Vec2 {
	return v.offset
}

// setOffset moves the content. Out-of-bounds values are clamped unless
// overscroll is allowed. force re-applies positions even when unchanged.
func (v *ScrollView) setOffset(x, y float64, force bool) {
	if !v.overscroll {
		x, y = v.clampOffset(x, y)
	}
	changed := x != v.offset.X || y != v.offset.Y
	if !changed && !force {
		return
	}
	v.offset = Vec2{x, y}
	v.container.SetPosition(-x, -y)
	v.placeIndicator()
	if !changed {
		return
	}

	v.checkRefresh()
	v.pending = true
	if v.canEmit() {
		v.emit()
	}
}

// canEmit reports whether the throttle window allows another event.
func (v *ScrollView) canEmit() bool {
	return !v.emitted || v.sinceEmit >= v.props.ScrollEventThrottle
}

// emit delivers the pending scroll event.
func (v *ScrollView) emit() {
	v.pending = false
	v.emitted = true
	v.sinceEmit = 0
	if v.props.OnScroll == nil {
		return
	}
	v.props.OnScroll(ScrollEvent{
		ContentOffset:     v.offset,
		ContentSize:       Vec2{v.contentWidth(), v.contentLength()},
		LayoutMeasurement: Vec2{v.frame.Width, v.frame.Height},
	})
}

func (v *ScrollView) checkRefresh() {
	if v.offset.Y >= 0 {
		v.refreshing = false
		return
	}
	if v.offset.Y < -refreshThreshold && !v.refreshing && v.props.OnRefresh != nil {
		v.refreshing = true
		v.props.OnRefresh()
	}
}

// placeIndicator sizes the indicator to the visible fraction of content.
func (v *ScrollView) placeIndicator() {
	total := v.contentLength()
	m := v.maxOffset().Y
	if !v.showIndicator || m <= 0 || total <= 0 {
		v.indicator.Visible = false
		return
	}
	v.indicator.Visible = true
	h := math.Max(indicatorMinHeight, v.frame.Height*v.frame.Height/total)
	t := math.Max(0, math.Min(v.offset.Y/m, 1))
	v.indicator.SetSize(indicatorWidth, h)
	v.indicator.SetY(t * (v.frame.Height - h))
}

// update advances animations, reads wheel input and flushes a throttled
// trailing scroll event. Installed as the viewport's OnUpdate.
func (v *ScrollView) update(dt float64) {
	v.sinceEmit += time.Duration(dt * float64(time.Second))

	if v.fade != nil {
		v.fade.Update(float32(dt))
		if v.fade.Done {
			v.fade = nil
		}
	}

	if v.anim != nil {
		v.anim.Update(float32(dt))
		v.setOffset(v.animX, v.animY, false)
		if v.anim.Done {
			v.anim = nil
		}
	}

	v.wheelIdle += dt
	if v.scrollEnabled && v.cursorInside() {
		if _, dy := readWheel(); dy != 0 {
			v.wheel(dy)
		}
	}
	if v.overscroll && v.anim == nil && v.wheelIdle >= springBackDelay {
		if cx, cy := v.clampOffset(v.offset.X, v.offset.Y); cx != v.offset.X || cy != v.offset.Y {
			v.animateTo(cx, cy, springBackDuration)
		}
	}

	if v.pending && v.canEmit() {
		v.emit()
	}
}

// wheel scrolls by dy wheel notches; positive dy scrolls toward the top.
func (v *ScrollView) wheel(dy float64) {
	v.wheelIdle = 0
	v.anim = nil
	y := v.offset.Y - dy*wheelStep
	if v.overscroll {
		limit := v.frame.Height * maxOverscrollFactor
		y = math.Max(-limit, math.Min(y, v.maxOffset().Y+limit))
	}
	v.setOffset(v.offset.X, y, false)
	v.showBriefly()
}

func (v *ScrollView) cursorInside() bool {
	x, y := readCursor()
	lx, ly := v.node.WorldToLocal(x, y)
	return lx >= 0 && ly >= 0 && lx <= v.frame.Width && ly <= v.frame.Height
}

func (v *ScrollView) animateTo(x, y float64, duration float32) {
	v.animX, v.animY = v.offset.X, v.offset.Y
	v.anim = TweenPair(v.node, &v.animX, &v.animY, x, y, duration, ease.OutCubic)
}

// showBriefly reveals the indicator and fades it out.
func (v *ScrollView) showBriefly() {
	if !v.indicator.Visible {
		return
	}
	v.indicator.SetAlpha(1)
	v.fade = TweenAlpha(v.indicator, 0, indicatorFadeTime, ease.InQuint)
}

// --- Control surface ---

// ScrollResponder implements ScrollResponderProvider.
func (v *ScrollView) ScrollResponder() ScrollResponder {
	return v
}

// ScrollableNode returns the clipping viewport node.
func (v *ScrollView) ScrollableNode() *Node {
	return v.node
}

// InnerViewNode returns the translated content container.
func (v *ScrollView) InnerViewNode() *Node {
	return v.container
}

// ScrollTo scrolls to (x, y), clamped to the content bounds.
func (v *ScrollView) ScrollTo(x, y float64, animated bool) {
	x, y = v.clampOffset(x, y)
	if animated {
		v.animateTo(x, y, scrollDuration)
		return
	}
	v.anim = nil
	v.setOffset(x, y, false)
}

// ScrollToEnd scrolls to the bottom of the content.
func (v *ScrollView) ScrollToEnd(animated bool) {
	v.ScrollTo(v.offset.X, v.maxOffset().Y, animated)
}

// ScrollToOffset scrolls vertically to p.Offset.
func (v *ScrollView) ScrollToOffset(p ScrollToOffsetParams) {
	v.ScrollTo(v.offset.X, p.Offset, p.Animated)
}

// FlashScrollIndicators shows the indicator momentarily.
func (v *ScrollView) FlashScrollIndicators() {
	v.placeIndicator()
	v.showBriefly()
}

// Metrics reports the content and viewport extents.
func (v *ScrollView) Metrics() Metrics {
	total := v.contentLength()
	return Metrics{
		ContentLength:       total,
		VisibleLength:       v.frame.Height,
		TotalScrollDistance: math.Max(0, total-v.frame.Height),
	}
}

// RecordInteraction notes a user interaction.
func (v *ScrollView) RecordInteraction() {
	v.interactions++
}

// Interactions returns how many interactions were recorded.
func (v *ScrollView) Interactions() int {
	return v.interactions
}

// SetNativeProps applies a subset of props directly, without replacing
// the rest: "scrollEnabled" and "showsVerticalScrollIndicator" (bool),
// "contentOffset" (Vec2). Unknown keys are ignored.
func (v *ScrollView) SetNativeProps(props map[string]any) {
	if b, ok := props["scrollEnabled"].(bool); ok {
		v.scrollEnabled = b
		v.props.ScrollEnabled = Ptr(b)
	}
	if b, ok := props["showsVerticalScrollIndicator"].(bool); ok {
		v.showIndicator = b
		v.props.ShowsVerticalScrollIndicator = Ptr(b)
		v.placeIndicator()
	}
	if off, ok := props["contentOffset"].(Vec2); ok {
		v.ScrollTo(off.X, off.Y, false)
	}
}
