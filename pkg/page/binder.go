package page

import (
	"fmt"

	"github.com/goliatone/go-enhance/pkg/config"
	"github.com/goliatone/go-enhance/pkg/dom"
	"github.com/goliatone/go-enhance/pkg/forms"
	"github.com/goliatone/go-enhance/pkg/nav"
	"github.com/goliatone/go-enhance/pkg/present"
	"github.com/goliatone/go-enhance/pkg/scroll"
	"github.com/goliatone/go-enhance/pkg/track"
	"go.uber.org/zap"
)

// Option customises the binder configuration.
type Option func(*Binder)

// WithConfig replaces the default configuration.
func WithConfig(cfg config.Config) Option {
	return func(b *Binder) {
		b.cfg = cfg
	}
}

// WithSink injects a presentation sink directly, bypassing registry lookup.
func WithSink(sink forms.Sink) Option {
	return func(b *Binder) {
		if sink != nil {
			b.sink = sink
		}
	}
}

// WithSinkRegistry injects a sink registry for configuration-driven lookup.
func WithSinkRegistry(registry *present.Registry) Option {
	return func(b *Binder) {
		if registry != nil {
			b.registry = registry
		}
	}
}

// WithTracker injects the analytics tracker. Without one, events go through
// a zap tracker on the binder's logger.
func WithTracker(tracker track.Tracker) Option {
	return func(b *Binder) {
		if tracker != nil {
			b.tracker = tracker
		}
	}
}

// WithJar injects the cookie jar backing consent state.
func WithJar(jar *track.Jar) Option {
	return func(b *Binder) {
		if jar != nil {
			b.jar = jar
		}
	}
}

// WithLogger injects the logger used for binder diagnostics and the default
// tracker.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Binder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Binder assembles the enhancement modules. Construct with New, then call
// Bind once per document.
type Binder struct {
	cfg      config.Config
	sink     forms.Sink
	registry *present.Registry
	tracker  track.Tracker
	jar      *track.Jar
	logger   *zap.Logger
}

// Page holds everything one Bind call wired onto a document.
type Page struct {
	Doc     *dom.Document
	Engine  *forms.Engine
	Forms   []*forms.Form
	Menu    *nav.Menu
	Header  *nav.Header
	Consent *track.Consent

	Anchors     int
	Reveals     int
	Outbound    int
	Conversions int
}

// New constructs a Binder applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Binder {
	b := &Binder{
		cfg:    config.Default(),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	b.applyDefaults()
	return b
}

func (b *Binder) applyDefaults() {
	if b.registry == nil {
		b.registry = present.NewRegistry()
	}
	if !b.registry.Has("inline") {
		b.registry.MustRegister(present.NewInline(
			present.WithErrorClass(b.cfg.Classes.Error),
			present.WithMessageClass(b.cfg.Classes.ErrorMessage),
		))
	}
	if b.jar == nil {
		b.jar = track.NewJar()
	}
	if b.tracker == nil {
		b.tracker = track.NewZapTracker(b.logger)
	}
}

// Bind wires every enhancement module onto doc and returns the assembled
// page. Modules whose markup is absent (no menu, no header, no reveal
// candidates) bind to nothing and are simply skipped.
func (b *Binder) Bind(doc *dom.Document) (*Page, error) {
	if doc == nil {
		return nil, fmt.Errorf("page: document is required")
	}

	sink := b.sink
	if sink == nil {
		resolved, err := b.registry.Get(b.cfg.Validation.Sink)
		if err != nil {
			return nil, fmt.Errorf("page: resolve sink: %w", err)
		}
		sink = resolved
	}

	p := &Page{
		Doc:     doc,
		Consent: track.NewConsent(b.jar, b.cfg.Tracking.ConsentCookie),
	}

	tracker := track.Gated(b.tracker, p.Consent)

	engineOpts := []forms.Option{
		forms.WithSink(sink),
		forms.WithValidateAttr(b.cfg.Validation.Attr),
		forms.WithMessages(forms.Messages{
			Required: b.cfg.Validation.Messages.Required,
			Email:    b.cfg.Validation.Messages.Email,
			Phone:    b.cfg.Validation.Messages.Phone,
		}),
	}
	if b.cfg.Tracking.Enabled {
		engineOpts = append(engineOpts, forms.WithAcceptedFunc(track.FormAccepted(tracker)))
	}
	p.Engine = forms.New(engineOpts...)
	p.Forms = p.Engine.Bind(doc)

	p.Menu = nav.BindMenu(doc,
		nav.WithToggleClass(b.cfg.Classes.NavToggle),
		nav.WithMenuClass(b.cfg.Classes.NavMenu),
		nav.WithOpenClass(b.cfg.Classes.MenuOpen),
		nav.WithActiveClass(b.cfg.Classes.ToggleActive),
	)
	p.Header = nav.BindHeader(doc,
		nav.WithHeaderClass(b.cfg.Classes.Header),
		nav.WithScrolledClass(b.cfg.Classes.HeaderScrolled),
		nav.WithHeaderOffset(b.cfg.HeaderOffset),
	)
	p.Anchors = scroll.BindAnchors(doc)
	p.Reveals = scroll.BindReveal(doc,
		scroll.WithRevealClass(b.cfg.Classes.Reveal),
		scroll.WithVisibleClass(b.cfg.Classes.Visible),
	)

	if b.cfg.Tracking.Enabled {
		p.Outbound = track.BindOutbound(doc, tracker, b.cfg.Tracking.SiteHost)
		p.Conversions = track.BindConversions(doc, tracker)
	}

	b.logger.Debug("page bound",
		zap.Int("forms", len(p.Forms)),
		zap.Int("anchors", p.Anchors),
		zap.Int("reveals", p.Reveals),
		zap.Int("outbound", p.Outbound),
		zap.Int("conversions", p.Conversions),
		zap.Bool("menu", p.Menu != nil),
		zap.Bool("header", p.Header != nil),
	)
	return p, nil
}
