package scroll

import (
	"strings"

	"github.com/goliatone/go-enhance/pkg/dom"
)

// AnchorOption configures the anchor binding.
type AnchorOption func(*anchorConfig)

type anchorConfig struct {
	align dom.ScrollAlign
}

// WithAnchorAlign overrides the viewport alignment for anchor scrolls.
func WithAnchorAlign(align dom.ScrollAlign) AnchorOption {
	return func(cfg *anchorConfig) {
		if align != "" {
			cfg.align = align
		}
	}
}

// BindAnchors subscribes every in-page anchor link to smooth scrolling.
// Returns the number of links bound.
func BindAnchors(doc *dom.Document, options ...AnchorOption) int {
	if doc == nil {
		return 0
	}
	cfg := &anchorConfig{align: dom.AlignStart}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	bound := 0
	for _, link := range doc.FindAll(dom.ByTag("a")) {
		href := link.Attr("href")
		if !strings.HasPrefix(href, "#") || len(href) < 2 {
			continue
		}
		id := href[1:]
		link.On(dom.EventClick, func(ev *dom.Event) {
			target := doc.ByID(id)
			if target == nil {
				// Let the native jump handle unknown fragments.
				return
			}
			ev.PreventDefault()
			doc.ScrollIntoView(target, cfg.align, true)
		})
		bound++
	}
	return bound
}
