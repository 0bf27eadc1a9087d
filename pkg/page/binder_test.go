package page_test

import (
	"testing"

	"github.com/goliatone/go-enhance/pkg/config"
	"github.com/goliatone/go-enhance/pkg/dom"
	"github.com/goliatone/go-enhance/pkg/page"
	"github.com/goliatone/go-enhance/pkg/track"
)

type captureTracker struct {
	events []track.Event
}

func (c *captureTracker) Track(event track.Event) {
	c.events = append(c.events, event)
}

// landingPage assembles the markup shape the library targets: header with
// mobile nav, anchored sections with reveal candidates, an opted-in contact
// form, and outbound/conversion links.
type landingPage struct {
	doc     *dom.Document
	header  *dom.Element
	toggle  *dom.Element
	menu    *dom.Element
	anchor  *dom.Element
	reveal  *dom.Element
	form    *dom.Element
	name    *dom.Element
	email   *dom.Element
	outLink *dom.Element
	cta     *dom.Element
}

func newLandingPage() *landingPage {
	p := &landingPage{}

	p.toggle = dom.NewElement("button", dom.WithClass("nav-toggle"))
	p.anchor = dom.NewElement("a", dom.WithAttr("href", "#contact"))
	p.menu = dom.NewElement("nav", dom.WithClass("nav-menu"), dom.WithChildren(p.anchor))
	p.header = dom.NewElement("header", dom.WithClass("site-header"), dom.WithChildren(p.toggle, p.menu))

	p.reveal = dom.NewElement("section", dom.WithClass("fade-in"))

	p.name = dom.NewElement("input", dom.WithAttr("name", "name"), dom.WithAttr("required", ""))
	p.email = dom.NewElement("input", dom.WithAttr("type", "email"), dom.WithAttr("name", "email"))
	p.form = dom.NewElement("form", dom.WithAttr("data-validate", ""), dom.WithAttr("id", "contact-form"), dom.WithChildren(
		dom.NewElement("div", dom.WithChildren(p.name)),
		dom.NewElement("div", dom.WithChildren(p.email)),
	))
	contact := dom.NewElement("section", dom.WithAttr("id", "contact"), dom.WithChildren(p.form))

	p.outLink = dom.NewElement("a", dom.WithAttr("href", "https://partner.example/offer"))
	p.cta = dom.NewElement("a", dom.WithAttr("data-conversion", "signup"))

	p.doc = dom.NewDocument(dom.NewElement("body", dom.WithChildren(
		p.header, p.reveal, contact, p.outLink, p.cta,
	)))
	return p
}

func TestBinder_WiresEveryModule(t *testing.T) {
	p := newLandingPage()

	cfg := config.Default()
	cfg.Tracking.SiteHost = "my.site"

	bound, err := page.New(page.WithConfig(cfg)).Bind(p.doc)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	if len(bound.Forms) != 1 {
		t.Fatalf("expected one form, got %d", len(bound.Forms))
	}
	if bound.Menu == nil || bound.Header == nil {
		t.Fatalf("expected menu and header bound")
	}
	if bound.Anchors != 1 || bound.Reveals != 1 {
		t.Fatalf("expected one anchor and one reveal, got %d/%d", bound.Anchors, bound.Reveals)
	}
	if bound.Outbound != 1 || bound.Conversions != 1 {
		t.Fatalf("expected outbound and conversion bindings, got %d/%d", bound.Outbound, bound.Conversions)
	}
}

func TestBinder_EndToEndInteraction(t *testing.T) {
	p := newLandingPage()

	capture := &captureTracker{}
	cfg := config.Default()
	cfg.Tracking.SiteHost = "my.site"

	bound, err := page.New(
		page.WithConfig(cfg),
		page.WithTracker(capture),
	).Bind(p.doc)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	// Menu toggle and anchor scrolling.
	p.toggle.Click()
	if !p.menu.HasClass("open") {
		t.Fatalf("expected menu opened")
	}
	if p.anchor.Click() {
		t.Fatalf("expected anchor jump suppressed")
	}
	if p.menu.HasClass("open") {
		t.Fatalf("expected menu closed after navigation")
	}
	rec, ok := p.doc.LastScroll()
	if !ok || rec.Target.ID() != "contact" {
		t.Fatalf("expected scroll to contact section, got %+v", rec)
	}

	// Header styling follows the scroll offset.
	p.doc.SetScrollOffset(200)
	if !p.header.HasClass("scrolled") {
		t.Fatalf("expected scrolled header")
	}

	// Reveal on intersection.
	p.reveal.Intersect(true)
	if !p.reveal.HasClass("visible") {
		t.Fatalf("expected revealed section")
	}

	// Invalid submission is blocked and presented inline.
	if p.form.Submit() {
		t.Fatalf("expected invalid submission blocked")
	}
	if !p.name.HasClass("error") {
		t.Fatalf("expected required field flagged")
	}
	if p.doc.ActiveElement() != p.name {
		t.Fatalf("expected first invalid field focused")
	}

	// Without consent, nothing tracks.
	p.outLink.Click()
	p.cta.Click()
	if len(capture.events) != 0 {
		t.Fatalf("expected no events before consent, got %+v", capture.events)
	}

	// With consent, outbound, conversion, and accepted-form events flow.
	bound.Consent.Grant()
	p.outLink.Click()
	p.cta.Click()

	p.name.Value = "Ada"
	if !p.form.Submit() {
		t.Fatalf("expected fixed form to submit")
	}

	var names []string
	for _, event := range capture.events {
		names = append(names, event.Name)
	}
	want := []string{track.EventOutbound, track.EventConversion, track.EventFormSubmit}
	if len(names) != len(want) {
		t.Fatalf("expected events %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, names)
		}
	}
}

func TestBinder_UnknownSinkFails(t *testing.T) {
	cfg := config.Default()
	cfg.Validation.Sink = "holographic"

	_, err := page.New(page.WithConfig(cfg)).Bind(dom.NewDocument(nil))
	if err == nil {
		t.Fatalf("expected unknown sink to fail the bind")
	}
}

func TestBinder_RequiresDocument(t *testing.T) {
	if _, err := page.New().Bind(nil); err == nil {
		t.Fatalf("expected error for nil document")
	}
}
