package forms

import (
	"testing"

	"github.com/goliatone/go-enhance/pkg/dom"
)

func TestSinkFuncs_PartialAdapterIsSafe(t *testing.T) {
	field := dom.NewElement("input")

	var marked []string
	sink := SinkFuncs{
		OnMark: func(_ *dom.Element, message string) {
			marked = append(marked, message)
		},
	}

	sink.MarkInvalid(field, "nope")
	sink.ClearInvalid(field)
	sink.Reset(field)
	if sink.IsInvalid(field) {
		t.Fatalf("nil OnCheck must report valid")
	}
	if len(marked) != 1 || marked[0] != "nope" {
		t.Fatalf("expected one mark, got %v", marked)
	}
}

func TestSinkFuncs_DrivesEngineValidation(t *testing.T) {
	field := dom.NewElement("input", dom.WithAttr("name", "name"), dom.WithAttr("required", ""))
	form := dom.NewElement("form", dom.WithAttr("data-validate", ""), dom.WithChildren(
		dom.NewElement("div", dom.WithChildren(field)),
	))
	doc := dom.NewDocument(dom.NewElement("body", dom.WithChildren(form)))

	invalid := map[*dom.Element]string{}
	engine := New(WithSink(SinkFuncs{
		OnMark:  func(el *dom.Element, message string) { invalid[el] = message },
		OnClear: func(el *dom.Element) { delete(invalid, el) },
		OnCheck: func(el *dom.Element) bool { _, ok := invalid[el]; return ok },
		OnReset: func(*dom.Element) { invalid = map[*dom.Element]string{} },
	}))
	bound := engine.Bind(doc)
	if len(bound) != 1 {
		t.Fatalf("expected one bound form, got %d", len(bound))
	}

	if form.Submit() {
		t.Fatalf("expected empty required field to block submission")
	}
	if invalid[field] != MessageRequired {
		t.Fatalf("expected required message recorded, got %q", invalid[field])
	}

	field.Value = "Ada"
	field.Input()
	if len(invalid) != 0 {
		t.Fatalf("expected input to clear the recorded error, got %v", invalid)
	}
}
