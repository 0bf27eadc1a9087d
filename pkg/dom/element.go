package dom

import "strings"

// Element is a single node in the tree: a tag name, attributes, an ordered
// class list, control state for inputs, and optional text content. Value,
// Checked, and Text behave like live control state and are mutated directly.
type Element struct {
	Tag     string
	Value   string
	Checked bool
	Text    string

	attrs     map[string]string
	classes   []string
	parent    *Element
	children  []*Element
	listeners map[EventKind][]Handler
}

// ElementOption configures an element during construction.
type ElementOption func(*Element)

// WithAttr sets an attribute. Boolean attributes use an empty value.
func WithAttr(name, value string) ElementOption {
	return func(e *Element) {
		e.SetAttr(name, value)
	}
}

// WithClass appends one or more class names.
func WithClass(names ...string) ElementOption {
	return func(e *Element) {
		for _, name := range names {
			e.AddClass(name)
		}
	}
}

// WithValue seeds the control value.
func WithValue(value string) ElementOption {
	return func(e *Element) {
		e.Value = value
	}
}

// WithChecked seeds the checked state.
func WithChecked(checked bool) ElementOption {
	return func(e *Element) {
		e.Checked = checked
	}
}

// WithText seeds the text content.
func WithText(text string) ElementOption {
	return func(e *Element) {
		e.Text = text
	}
}

// WithChildren appends child elements in order.
func WithChildren(children ...*Element) ElementOption {
	return func(e *Element) {
		for _, child := range children {
			e.AppendChild(child)
		}
	}
}

// NewElement constructs an element applying any provided options.
func NewElement(tag string, options ...ElementOption) *Element {
	e := &Element{Tag: strings.ToLower(strings.TrimSpace(tag))}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Attr returns the attribute value, or the empty string when absent.
func (e *Element) Attr(name string) string {
	if e == nil || e.attrs == nil {
		return ""
	}
	return e.attrs[name]
}

// HasAttr reports whether the attribute is present, regardless of value.
func (e *Element) HasAttr(name string) bool {
	if e == nil || e.attrs == nil {
		return false
	}
	_, ok := e.attrs[name]
	return ok
}

// SetAttr sets an attribute, creating the map lazily.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// RemoveAttr deletes an attribute if present.
func (e *Element) RemoveAttr(name string) {
	if e.attrs == nil {
		return
	}
	delete(e.attrs, name)
}

// Type returns the type attribute lowercased, the discriminator used to pick
// checkbox vs text-like semantics for form controls.
func (e *Element) Type() string {
	return strings.ToLower(e.Attr("type"))
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return e.Attr("id")
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	if e == nil {
		return false
	}
	for _, class := range e.classes {
		if class == name {
			return true
		}
	}
	return false
}

// AddClass appends name to the class list unless already present.
func (e *Element) AddClass(name string) {
	name = strings.TrimSpace(name)
	if name == "" || e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
}

// RemoveClass drops name from the class list. No-op when absent.
func (e *Element) RemoveClass(name string) {
	for i, class := range e.classes {
		if class == name {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

// ToggleClass adds or removes name and reports whether it is now present.
func (e *Element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

// Classes returns a copy of the class list.
func (e *Element) Classes() []string {
	if len(e.classes) == 0 {
		return nil
	}
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// Parent returns the containing element, nil for detached nodes and the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	if len(e.children) == 0 {
		return nil
	}
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// AppendChild attaches child as the last child, detaching it from any
// previous parent first.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child == e {
		return
	}
	child.Detach()
	child.parent = e
	e.children = append(e.children, child)
}

// InsertAfter places node immediately after ref in this element's child list.
// Falls back to AppendChild when ref is not a child.
func (e *Element) InsertAfter(ref, node *Element) {
	if node == nil || node == e {
		return
	}
	node.Detach()
	for i, child := range e.children {
		if child == ref {
			node.parent = e
			e.children = append(e.children[:i+1], append([]*Element{node}, e.children[i+1:]...)...)
			return
		}
	}
	e.AppendChild(node)
}

// Detach removes the element from its parent. No-op for detached nodes.
func (e *Element) Detach() {
	parent := e.parent
	if parent == nil {
		return
	}
	for i, child := range parent.children {
		if child == e {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// NextSibling returns the element immediately following this one in its
// parent's child list, or nil.
func (e *Element) NextSibling() *Element {
	parent := e.parent
	if parent == nil {
		return nil
	}
	for i, child := range parent.children {
		if child == e && i+1 < len(parent.children) {
			return parent.children[i+1]
		}
	}
	return nil
}

// Matcher selects elements during tree queries.
type Matcher func(*Element) bool

// FindAll returns every descendant matching the predicate in document order.
// The receiver itself is not considered.
func (e *Element) FindAll(match Matcher) []*Element {
	if e == nil || match == nil {
		return nil
	}
	var out []*Element
	var walk func(*Element)
	walk = func(node *Element) {
		for _, child := range node.children {
			if match(child) {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(e)
	return out
}

// Find returns the first matching descendant in document order, or nil.
func (e *Element) Find(match Matcher) *Element {
	if e == nil || match == nil {
		return nil
	}
	var found *Element
	var walk func(*Element) bool
	walk = func(node *Element) bool {
		for _, child := range node.children {
			if match(child) {
				found = child
				return true
			}
			if walk(child) {
				return true
			}
		}
		return false
	}
	walk(e)
	return found
}

// ByTag matches elements whose tag is any of the given names.
func ByTag(tags ...string) Matcher {
	return func(e *Element) bool {
		for _, tag := range tags {
			if e.Tag == tag {
				return true
			}
		}
		return false
	}
}

// ByClass matches elements carrying the class name.
func ByClass(name string) Matcher {
	return func(e *Element) bool {
		return e.HasClass(name)
	}
}

// ByAttr matches elements where the attribute is present.
func ByAttr(name string) Matcher {
	return func(e *Element) bool {
		return e.HasAttr(name)
	}
}

// ByAttrValue matches elements where the attribute equals value.
func ByAttrValue(name, value string) Matcher {
	return func(e *Element) bool {
		return e.HasAttr(name) && e.Attr(name) == value
	}
}

// ByID matches the element with the given id attribute.
func ByID(id string) Matcher {
	return ByAttrValue("id", id)
}
