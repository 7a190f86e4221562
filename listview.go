package headerview

// ListView is a ScrollView over a vertical stack of item nodes. It adds
// index- and item-addressed scrolling on top of the ScrollView surface.
type ListView struct {
	*ScrollView
	column *Node
	items  []*Node
}

// NewListView creates a list showing items top to bottom. Each item's
// Height determines its slot.
func NewListView(items []*Node) *ListView {
	l := &ListView{
		ScrollView: NewScrollView(),
		column:     NewContainer("listColumn"),
	}
	l.SetItems(items)
	return l
}

// SetItems replaces the list's items.
func (l *ListView) SetItems(items []*Node) {
	l.column.RemoveChildren()
	l.items = items
	y, w := 0.0, 0.0
	for _, it := range items {
		it.SetPosition(it.X, y)
		l.column.AddChild(it)
		y += it.Height
		if it.Width > w {
			w = it.Width
		}
	}
	l.column.SetSize(w, y)
	l.SetProps(l.props)
}

// Items returns the list's items. The returned slice MUST NOT be mutated.
func (l *ListView) Items() []*Node {
	return l.items
}

// SetProps implements Scrollable. The list always scrolls its own item
// column; p.Content is ignored.
func (l *ListView) SetProps(p ScrollProps) {
	p.Content = l.column
	l.ScrollView.SetProps(p)
}

// ScrollToIndex scrolls so item p.Index sits at p.ViewPosition within the
// viewport, shifted up by p.ViewOffset. Out-of-range indices are ignored.
func (l *ListView) ScrollToIndex(p ScrollToIndexParams) {
	if p.Index < 0 || p.Index >= len(l.items) {
		return
	}
	it := l.items[p.Index]
	cs := l.props.ContentContainerStyle
	top := orDefault(cs.MarginTop, 0) + orDefault(cs.PaddingTop, 0) + it.Y
	y := top - p.ViewPosition*(l.frame.Height-it.Height) - p.ViewOffset
	l.ScrollTo(l.offset.X, y, p.Animated)
}

// ScrollToItem scrolls to the item whose node or UserData equals p.Item.
func (l *ListView) ScrollToItem(p ScrollToItemParams) {
	for i, it := range l.items {
		if any(it) == p.Item || (it.UserData != nil && it.UserData == p.Item) {
			l.ScrollToIndex(ScrollToIndexParams{Index: i, Animated: p.Animated, ViewPosition: p.ViewPosition})
			return
		}
	}
}
