package headerview

import "time"

// ScrollEvent reports the body's scroll position.
type ScrollEvent struct {
	ContentOffset     Vec2
	ContentSize       Vec2
	LayoutMeasurement Vec2
}

// OverScrollMode controls whether the body may scroll past its ends.
type OverScrollMode uint8

const (
	OverScrollDefault OverScrollMode = iota // let the host choose
	OverScrollAuto                          // platform behavior; treated as Always
	OverScrollAlways                        // allow pulling past the ends
	OverScrollNever                         // clamp to the content bounds
)

// ScrollProps configures a scroll body. Zero fields mean "unset"; the
// scroll body applies its own defaults for them.
type ScrollProps struct {
	// Content is the node scrolled inside the body.
	Content *Node
	// OnScroll observes every scroll event.
	OnScroll func(ScrollEvent)
	// ScrollEventThrottle is the minimum interval between OnScroll calls.
	ScrollEventThrottle time.Duration

	Style                 Style
	ContentContainerStyle Style

	OverScrollMode               OverScrollMode
	ShowsVerticalScrollIndicator *bool
	ScrollEnabled                *bool

	// OnRefresh fires when the content is pulled down past the refresh
	// threshold while overscroll is allowed.
	OnRefresh func()
}

// Scrollable is the scroll body primitive hosted by HeaderScrollView.
// Control operations beyond this are discovered through the optional
// capability interfaces below.
type Scrollable interface {
	// Node is the body's root node, placed in the layer tree by the host.
	Node() *Node
	// SetFrame positions the body in its parent's coordinates.
	SetFrame(r Rect)
	// SetProps replaces the body's configuration.
	SetProps(p ScrollProps)
}

// ScrollResponder is the low-level scroll surface of a body.
type ScrollResponder interface {
	ScrollableNode() *Node
	InnerViewNode() *Node
	ScrollTo(x, y float64, animated bool)
}

// Metrics describes a body's scrollable extent.
type Metrics struct {
	ContentLength       float64
	VisibleLength       float64
	TotalScrollDistance float64
}

// ScrollToIndexParams addresses an item by index. ViewPosition places the
// item within the viewport: 0 top, 0.5 middle, 1 bottom.
type ScrollToIndexParams struct {
	Index        int
	Animated     bool
	ViewOffset   float64
	ViewPosition float64
}

// ScrollToItemParams addresses an item by identity.
type ScrollToItemParams struct {
	Item         any
	Animated     bool
	ViewPosition float64
}

// ScrollToOffsetParams addresses an absolute content offset.
type ScrollToOffsetParams struct {
	Offset   float64
	Animated bool
}

// ScrollToLocationParams addresses an item within a section.
type ScrollToLocationParams struct {
	SectionIndex int
	ItemIndex    int
	Animated     bool
	ViewOffset   float64
	ViewPosition float64
}

// Optional capabilities of a Scrollable.
type (
	ScrollResponderProvider interface{ ScrollResponder() ScrollResponder }
	EndScroller             interface{ ScrollToEnd(animated bool) }
	NativePropsSetter       interface{ SetNativeProps(props map[string]any) }
	InteractionRecorder     interface{ RecordInteraction() }
	IndicatorFlasher        interface{ FlashScrollIndicators() }
	MetricsProvider         interface{ Metrics() Metrics }
	IndexScroller           interface{ ScrollToIndex(p ScrollToIndexParams) }
	ItemScroller            interface{ ScrollToItem(p ScrollToItemParams) }
	OffsetScroller          interface{ ScrollToOffset(p ScrollToOffsetParams) }
	LocationScroller        interface{ ScrollToLocation(p ScrollToLocationParams) }
)
