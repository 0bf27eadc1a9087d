package forms

import "github.com/goliatone/go-enhance/pkg/dom"

// Sink is the presentation contract the engine drives. Implementations own
// the visual vocabulary (classes, message elements); the engine only decides
// when a field enters or leaves the error state. pkg/present ships the
// default implementation.
type Sink interface {
	// MarkInvalid flags the field and attaches message, replacing any
	// existing message element so at most one exists per field.
	MarkInvalid(field *dom.Element, message string)
	// ClearInvalid removes the flag and message element. No-op when the
	// field carries no error.
	ClearInvalid(field *dom.Element)
	// IsInvalid reports whether the field currently carries the error flag.
	IsInvalid(field *dom.Element) bool
	// Reset clears every error flag and message element under scope.
	Reset(scope *dom.Element)
}

// SinkFuncs adapts plain functions into a Sink. Nil fields behave as no-ops
// and IsInvalid reports false, so partial adapters stay safe to use.
type SinkFuncs struct {
	OnMark  func(field *dom.Element, message string)
	OnClear func(field *dom.Element)
	OnCheck func(field *dom.Element) bool
	OnReset func(scope *dom.Element)
}

func (s SinkFuncs) MarkInvalid(field *dom.Element, message string) {
	if s.OnMark != nil {
		s.OnMark(field, message)
	}
}

func (s SinkFuncs) ClearInvalid(field *dom.Element) {
	if s.OnClear != nil {
		s.OnClear(field)
	}
}

func (s SinkFuncs) IsInvalid(field *dom.Element) bool {
	if s.OnCheck != nil {
		return s.OnCheck(field)
	}
	return false
}

func (s SinkFuncs) Reset(scope *dom.Element) {
	if s.OnReset != nil {
		s.OnReset(scope)
	}
}

// noopSink keeps the engine total when no sink is configured.
type noopSink struct{}

func (noopSink) MarkInvalid(*dom.Element, string) {}
func (noopSink) ClearInvalid(*dom.Element)        {}
func (noopSink) IsInvalid(*dom.Element) bool      { return false }
func (noopSink) Reset(*dom.Element)               {}
