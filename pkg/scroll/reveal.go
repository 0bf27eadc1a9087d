package scroll

import (
	"strings"

	"github.com/goliatone/go-enhance/pkg/dom"
)

// Default reveal classes: candidates opt in with the reveal class and gain
// the visible class once they intersect the viewport.
const (
	DefaultRevealClass  = "fade-in"
	DefaultVisibleClass = "visible"
)

// RevealOption configures the reveal binding.
type RevealOption func(*revealConfig)

type revealConfig struct {
	revealClass  string
	visibleClass string
}

// WithRevealClass overrides the class marking reveal candidates.
func WithRevealClass(name string) RevealOption {
	return func(cfg *revealConfig) {
		if strings.TrimSpace(name) != "" {
			cfg.revealClass = name
		}
	}
}

// WithVisibleClass overrides the class applied on intersection.
func WithVisibleClass(name string) RevealOption {
	return func(cfg *revealConfig) {
		if strings.TrimSpace(name) != "" {
			cfg.visibleClass = name
		}
	}
}

// BindReveal subscribes every reveal candidate to intersection events.
// Returns the number of elements bound. The visible class sticks once
// applied; elements leaving the viewport do not fade out again.
func BindReveal(doc *dom.Document, options ...RevealOption) int {
	if doc == nil {
		return 0
	}
	cfg := &revealConfig{
		revealClass:  DefaultRevealClass,
		visibleClass: DefaultVisibleClass,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	candidates := doc.FindAll(dom.ByClass(cfg.revealClass))
	for _, el := range candidates {
		el := el
		el.On(dom.EventIntersect, func(ev *dom.Event) {
			if ev.Intersecting {
				el.AddClass(cfg.visibleClass)
			}
		})
	}
	return len(candidates)
}
