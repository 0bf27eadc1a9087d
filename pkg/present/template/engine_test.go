package template

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/greeting.tmpl": &fstest.MapFile{
			Data: []byte(`Hello {{ name }}{% if site %} from {{ site }}{% endif %}!`),
		},
	}
}

func TestEngine_RequiresSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	// Extension is appended when missing.
	out, err := engine.RenderTemplate("templates/greeting", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello Ada!" {
		t.Fatalf("unexpected output %q", out)
	}

	var buf bytes.Buffer
	if _, err := engine.RenderTemplate("templates/greeting.tmpl", map[string]any{"name": "Ada"}, &buf); err != nil {
		t.Fatalf("render with writer: %v", err)
	}
	if buf.String() != "Hello Ada!" {
		t.Fatalf("writer should receive rendered output, got %q", buf.String())
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString(`{{ count }} errors`, map[string]any{"count": 3})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "3 errors" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine, err := New(
		WithFS(testFS()),
		WithGlobalData(map[string]any{"site": "example.com"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("templates/greeting", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "from example.com") {
		t.Fatalf("expected global data applied, got %q", out)
	}
}

func TestEngine_StructDataRoundTrips(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	data := struct {
		Name string `json:"name"`
	}{Name: "Grace"}

	out, err := engine.RenderString(`{{ name }}`, data)
	if err != nil {
		t.Fatalf("render struct data: %v", err)
	}
	if out != "Grace" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.RenderTemplate("templates/missing", nil); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}
