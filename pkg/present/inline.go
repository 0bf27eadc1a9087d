package present

import (
	"strings"

	"github.com/goliatone/go-enhance/pkg/dom"
	"github.com/goliatone/go-enhance/pkg/forms"
)

// Default visual vocabulary, part of the styling contract with the host page.
const (
	DefaultErrorClass   = "error"
	DefaultMessageClass = "error-message"
	DefaultMessageTag   = "span"
)

// InlineOption configures the inline sink.
type InlineOption func(*Inline)

// WithErrorClass overrides the class toggled on invalid fields.
func WithErrorClass(name string) InlineOption {
	return func(s *Inline) {
		if strings.TrimSpace(name) != "" {
			s.errorClass = name
		}
	}
}

// WithMessageClass overrides the class carried by message elements.
func WithMessageClass(name string) InlineOption {
	return func(s *Inline) {
		if strings.TrimSpace(name) != "" {
			s.messageClass = name
		}
	}
}

// WithMessageTag overrides the tag used for message elements.
func WithMessageTag(tag string) InlineOption {
	return func(s *Inline) {
		if strings.TrimSpace(tag) != "" {
			s.messageTag = tag
		}
	}
}

// Inline is the default presentation sink: it flags invalid fields with an
// error class and maintains at most one adjacent message element per field.
type Inline struct {
	errorClass   string
	messageClass string
	messageTag   string
}

var _ forms.Sink = (*Inline)(nil)

// NewInline constructs the sink applying any provided options.
func NewInline(options ...InlineOption) *Inline {
	s := &Inline{
		errorClass:   DefaultErrorClass,
		messageClass: DefaultMessageClass,
		messageTag:   DefaultMessageTag,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Name identifies the sink in a Registry.
func (s *Inline) Name() string {
	return "inline"
}

// MarkInvalid flags the field and attaches message in a sibling element,
// replacing any existing message so exactly one exists per invalid field.
// The field's parent is the attachment point; fields are expected to have
// one.
func (s *Inline) MarkInvalid(field *dom.Element, message string) {
	if field == nil {
		return
	}
	field.AddClass(s.errorClass)

	s.removeMessage(field)

	parent := field.Parent()
	if parent == nil {
		return
	}
	parent.InsertAfter(field, dom.NewElement(s.messageTag,
		dom.WithClass(s.messageClass),
		dom.WithText(message),
	))
}

// ClearInvalid removes the flag and any message element. No-op for fields
// without a current error.
func (s *Inline) ClearInvalid(field *dom.Element) {
	if field == nil {
		return
	}
	field.RemoveClass(s.errorClass)
	s.removeMessage(field)
}

// IsInvalid reports whether the field carries the error class.
func (s *Inline) IsInvalid(field *dom.Element) bool {
	return field.HasClass(s.errorClass)
}

// Reset clears every error flag and detaches every message element under
// scope. Idempotent.
func (s *Inline) Reset(scope *dom.Element) {
	if scope == nil {
		return
	}
	for _, el := range scope.FindAll(dom.ByClass(s.errorClass)) {
		el.RemoveClass(s.errorClass)
	}
	for _, msg := range scope.FindAll(dom.ByClass(s.messageClass)) {
		msg.Detach()
	}
}

func (s *Inline) removeMessage(field *dom.Element) {
	if next := field.NextSibling(); next != nil && next.HasClass(s.messageClass) {
		next.Detach()
	}
}
