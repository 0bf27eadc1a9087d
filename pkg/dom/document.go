package dom

// ScrollAlign positions a scroll-into-view target within the viewport.
type ScrollAlign string

const (
	AlignStart  ScrollAlign = "start"
	AlignCenter ScrollAlign = "center"
)

// ScrollRecord captures one scroll-into-view request so hosts and tests can
// observe where the viewport was asked to move.
type ScrollRecord struct {
	Target *Element
	Align  ScrollAlign
	Smooth bool
}

// Document wraps a root element with the viewport-level state the enhancement
// modules interact with: vertical scroll offset, scroll-into-view requests,
// and the focused element.
type Document struct {
	root    *Element
	scrollY int
	active  *Element
	scrolls []ScrollRecord
}

// NewDocument wraps root. A nil root is replaced with an empty body element.
func NewDocument(root *Element) *Document {
	if root == nil {
		root = NewElement("body")
	}
	return &Document{root: root}
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.root
}

// FindAll queries the whole tree in document order.
func (d *Document) FindAll(match Matcher) []*Element {
	return d.root.FindAll(match)
}

// Find returns the first match in document order, or nil.
func (d *Document) Find(match Matcher) *Element {
	return d.root.Find(match)
}

// ByID returns the element with the given id, or nil.
func (d *Document) ByID(id string) *Element {
	return d.root.Find(ByID(id))
}

// Focus moves input focus to el. Passing nil clears focus.
func (d *Document) Focus(el *Element) {
	d.active = el
}

// ActiveElement returns the currently focused element, or nil.
func (d *Document) ActiveElement() *Element {
	return d.active
}

// ScrollIntoView records a request to bring el into the viewport.
func (d *Document) ScrollIntoView(el *Element, align ScrollAlign, smooth bool) {
	if el == nil {
		return
	}
	d.scrolls = append(d.scrolls, ScrollRecord{Target: el, Align: align, Smooth: smooth})
}

// LastScroll returns the most recent scroll-into-view request.
func (d *Document) LastScroll() (ScrollRecord, bool) {
	if len(d.scrolls) == 0 {
		return ScrollRecord{}, false
	}
	return d.scrolls[len(d.scrolls)-1], true
}

// ScrollLog returns a copy of every scroll-into-view request so far.
func (d *Document) ScrollLog() []ScrollRecord {
	if len(d.scrolls) == 0 {
		return nil
	}
	out := make([]ScrollRecord, len(d.scrolls))
	copy(out, d.scrolls)
	return out
}

// ScrollOffset returns the current vertical scroll position.
func (d *Document) ScrollOffset() int {
	return d.scrollY
}

// SetScrollOffset moves the viewport and dispatches a scroll event against
// the root element, where scroll observers subscribe.
func (d *Document) SetScrollOffset(y int) {
	if y < 0 {
		y = 0
	}
	d.scrollY = y
	d.root.Dispatch(&Event{Kind: EventScroll, Target: d.root})
}
