package dom

import "testing"

func TestDocument_ByID(t *testing.T) {
	target := NewElement("section", WithAttr("id", "pricing"))
	doc := NewDocument(NewElement("body", WithChildren(
		NewElement("header"),
		target,
	)))

	if got := doc.ByID("pricing"); got != target {
		t.Fatalf("expected pricing section")
	}
	if got := doc.ByID("missing"); got != nil {
		t.Fatalf("expected nil for unknown id")
	}
}

func TestDocument_FocusAndScroll(t *testing.T) {
	field := NewElement("input")
	doc := NewDocument(NewElement("body", WithChildren(field)))

	if doc.ActiveElement() != nil {
		t.Fatalf("expected no initial focus")
	}
	doc.Focus(field)
	if doc.ActiveElement() != field {
		t.Fatalf("expected field focused")
	}

	if _, ok := doc.LastScroll(); ok {
		t.Fatalf("expected empty scroll log")
	}
	doc.ScrollIntoView(field, AlignCenter, true)
	rec, ok := doc.LastScroll()
	if !ok {
		t.Fatalf("expected scroll recorded")
	}
	if rec.Target != field || rec.Align != AlignCenter || !rec.Smooth {
		t.Fatalf("unexpected scroll record: %+v", rec)
	}
	if got := len(doc.ScrollLog()); got != 1 {
		t.Fatalf("expected one scroll entry, got %d", got)
	}
}

func TestDocument_ScrollOffsetDispatches(t *testing.T) {
	doc := NewDocument(nil)

	fired := 0
	doc.Root().On(EventScroll, func(*Event) {
		fired++
	})

	doc.SetScrollOffset(120)
	if doc.ScrollOffset() != 120 {
		t.Fatalf("expected offset 120, got %d", doc.ScrollOffset())
	}
	doc.SetScrollOffset(-5)
	if doc.ScrollOffset() != 0 {
		t.Fatalf("negative offsets clamp to zero")
	}
	if fired != 2 {
		t.Fatalf("expected 2 scroll events, got %d", fired)
	}
}
