package present

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	sink := NewInline()

	if err := registry.Register(sink); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(sink); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}

	got, err := registry.Get("inline")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != sink {
		t.Fatalf("expected registered sink returned")
	}

	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("expected lookup error for unknown sink")
	}
	if !registry.Has("inline") || registry.Has("missing") {
		t.Fatalf("Has reports wrong state")
	}
	if diff := cmp.Diff([]string{"inline"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RejectsNil(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil sink rejected")
	}
}
