package nav

import (
	"strings"

	"github.com/goliatone/go-enhance/pkg/dom"
)

// HeaderOption configures the header scroll binding.
type HeaderOption func(*Header)

// WithHeaderClass overrides the class locating the header element.
func WithHeaderClass(name string) HeaderOption {
	return func(h *Header) {
		if strings.TrimSpace(name) != "" {
			h.headerClass = name
		}
	}
}

// WithScrolledClass overrides the class applied past the offset threshold.
func WithScrolledClass(name string) HeaderOption {
	return func(h *Header) {
		if strings.TrimSpace(name) != "" {
			h.scrolledClass = name
		}
	}
}

// WithHeaderOffset overrides the scroll offset past which the header is
// styled as scrolled.
func WithHeaderOffset(offset int) HeaderOption {
	return func(h *Header) {
		if offset >= 0 {
			h.offset = offset
		}
	}
}

// Header styles the page header once the viewport scrolls past an offset.
type Header struct {
	headerClass   string
	scrolledClass string
	offset        int

	doc    *dom.Document
	header *dom.Element
}

// BindHeader locates the header and subscribes the scroll observer. Returns
// nil when the page has no header to enhance.
func BindHeader(doc *dom.Document, options ...HeaderOption) *Header {
	h := &Header{
		headerClass:   DefaultHeaderClass,
		scrolledClass: DefaultScrolledCls,
		offset:        DefaultHeaderOffset,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}

	if doc == nil {
		return nil
	}
	h.doc = doc
	h.header = doc.Find(dom.ByClass(h.headerClass))
	if h.header == nil {
		return nil
	}

	doc.Root().On(dom.EventScroll, func(*dom.Event) {
		h.apply()
	})
	h.apply()
	return h
}

// Scrolled reports whether the header currently carries the scrolled class.
func (h *Header) Scrolled() bool {
	return h.header.HasClass(h.scrolledClass)
}

func (h *Header) apply() {
	if h.doc.ScrollOffset() > h.offset {
		h.header.AddClass(h.scrolledClass)
	} else {
		h.header.RemoveClass(h.scrolledClass)
	}
}
