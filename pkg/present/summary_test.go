package present

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-enhance/pkg/forms"
	"github.com/goliatone/go-enhance/pkg/present/template"
	theme "github.com/goliatone/go-theme"
)

func failedVerdicts() []forms.Verdict {
	return []forms.Verdict{
		{Field: &forms.Field{Name: "name"}, Valid: false, Message: forms.MessageRequired},
		{Field: &forms.Field{Name: "email"}, Valid: true},
		{Field: &forms.Field{Name: "email"}, Valid: false, Message: forms.MessageEmail},
	}
}

func TestSummary_RendersFailures(t *testing.T) {
	summary, err := NewSummary()
	if err != nil {
		t.Fatalf("new summary: %v", err)
	}

	out, err := summary.Render(failedVerdicts())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		`class="form-errors"`,
		`data-field="name"`,
		`data-field="email"`,
		forms.MessageRequired,
		forms.MessageEmail,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "<li") != 2 {
		t.Fatalf("expected two items:\n%s", out)
	}
}

func TestSummary_EmptyFailuresRenderNothing(t *testing.T) {
	summary, err := NewSummary()
	if err != nil {
		t.Fatalf("new summary: %v", err)
	}

	out, err := summary.Render([]forms.Verdict{{Valid: true}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestSummary_SanitizesMessageMarkup(t *testing.T) {
	summary, err := NewSummary()
	if err != nil {
		t.Fatalf("new summary: %v", err)
	}

	out, err := summary.Render([]forms.Verdict{{
		Field:   &forms.Field{Name: "name"},
		Valid:   false,
		Message: `<script>alert(1)</script>Required`,
	}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected markup stripped:\n%s", out)
	}
	if !strings.Contains(out, "Required") {
		t.Fatalf("expected text preserved:\n%s", out)
	}
}

func TestSummary_ThemeTokensAndPartialOverride(t *testing.T) {
	files := fstest.MapFS{
		"themes/acme/errors.tmpl": &fstest.MapFile{
			Data: []byte(`<section style="{{ css_vars_style }}">{{ count }} problems</section>`),
		},
	}
	engine, err := template.New(template.WithFS(files), template.WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	summary, err := NewSummary(
		WithTemplateRenderer(engine),
		WithTheme(&theme.RendererConfig{
			Theme:  "acme",
			Tokens: map[string]string{"error-color": "#c00"},
			Partials: map[string]string{
				"forms.errors": "themes/acme/errors",
			},
		}),
	)
	if err != nil {
		t.Fatalf("new summary: %v", err)
	}

	out, err := summary.Render(failedVerdicts())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "--error-color: #c00;") {
		t.Fatalf("expected theme token as css var:\n%s", out)
	}
	if !strings.Contains(out, "2 problems") {
		t.Fatalf("expected override template used:\n%s", out)
	}
}
