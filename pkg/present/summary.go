package present

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-enhance/pkg/forms"
	"github.com/goliatone/go-enhance/pkg/present/template"
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
)

const defaultSummaryTemplate = "templates/summary.tmpl"

// themePartialSummary is the go-theme partial key that overrides the summary
// template path.
const themePartialSummary = "forms.errors"

// SummaryClasses names the chrome classes emitted by the summary fragment.
type SummaryClasses struct {
	Container string
	Heading   string
	Item      string
}

// DefaultSummaryClasses returns the stock chrome class set.
func DefaultSummaryClasses() SummaryClasses {
	return SummaryClasses{
		Container: "form-errors",
		Heading:   "form-errors-heading",
		Item:      "form-errors-item",
	}
}

// SummaryOption configures the summary renderer.
type SummaryOption func(*Summary)

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer template.Renderer) SummaryOption {
	return func(s *Summary) {
		if renderer != nil {
			s.templates = renderer
		}
	}
}

// WithTemplateName overrides the template resolved for the fragment.
func WithTemplateName(name string) SummaryOption {
	return func(s *Summary) {
		if strings.TrimSpace(name) != "" {
			s.templateName = name
		}
	}
}

// WithSummaryClasses overrides the chrome classes.
func WithSummaryClasses(classes SummaryClasses) SummaryOption {
	return func(s *Summary) {
		s.classes = classes
	}
}

// WithTheme passes a resolved go-theme configuration through to the
// fragment: tokens become CSS custom properties and a "forms.errors" partial
// overrides the template path.
func WithTheme(cfg *theme.RendererConfig) SummaryOption {
	return func(s *Summary) {
		s.theme = cfg
	}
}

// Summary renders a form's current failures as an HTML fragment for hosts
// that surface feedback server-side. Message text is sanitized before it is
// interpolated into markup.
type Summary struct {
	templates    template.Renderer
	templateName string
	classes      SummaryClasses
	theme        *theme.RendererConfig
}

// NewSummary constructs the renderer applying any provided options. Without
// an injected template renderer the embedded template bundle is used.
func NewSummary(options ...SummaryOption) (*Summary, error) {
	s := &Summary{
		templateName: defaultSummaryTemplate,
		classes:      DefaultSummaryClasses(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.templates == nil {
		engine, err := template.New(
			template.WithFS(TemplatesFS()),
			template.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("present: configure template renderer: %w", err)
		}
		s.templates = engine
	}
	return s, nil
}

// Render produces the fragment for the failing verdicts. An empty failure
// set renders to an empty string.
func (s *Summary) Render(verdicts []forms.Verdict) (string, error) {
	failed := forms.Failed(verdicts)
	if len(failed) == 0 {
		return "", nil
	}

	items := make([]map[string]any, 0, len(failed))
	for _, v := range failed {
		name := ""
		if v.Field != nil {
			name = v.Field.Name
		}
		items = append(items, map[string]any{
			"field":   sanitizeText(name),
			"message": sanitizeText(v.Message),
		})
	}

	data := map[string]any{
		"errors": items,
		"count":  len(failed),
		"classes": map[string]any{
			"container": s.classes.Container,
			"heading":   s.classes.Heading,
			"item":      s.classes.Item,
		},
		"css_vars_style": cssVarsStyle(s.theme),
	}

	name := s.templateName
	if s.theme != nil {
		if partial := strings.TrimSpace(s.theme.Partials[themePartialSummary]); partial != "" {
			name = partial
		}
	}

	out, err := s.templates.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("present: render summary: %w", err)
	}
	return out, nil
}

// cssVarsStyle flattens theme tokens into a deterministic inline style of
// custom properties, the same shape renderers derive from go-theme tokens.
func cssVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.Tokens) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.Tokens))
	for key := range cfg.Tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("--")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cfg.Tokens[key])
		b.WriteString(";")
	}
	return b.String()
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips any markup from text destined for the fragment.
// Messages are configurable, so they are not trusted to be plain.
func sanitizeText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(textPolicy.Sanitize(raw))
}
