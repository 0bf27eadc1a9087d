package forms

import (
	"strings"

	"github.com/goliatone/go-enhance/pkg/dom"
)

// DefaultValidateAttr is the opt-in marker a form carries to request
// validation. Forms without it are never touched.
const DefaultValidateAttr = "data-validate"

// Option customises the engine configuration.
type Option func(*Engine)

// WithSink injects the presentation sink errors are rendered through.
func WithSink(sink Sink) Option {
	return func(e *Engine) {
		if sink != nil {
			e.sink = sink
		}
	}
}

// WithMessages overrides the per-rule message set.
func WithMessages(messages Messages) Option {
	return func(e *Engine) {
		e.messages = messages
	}
}

// WithValidateAttr overrides the opt-in marker attribute.
func WithValidateAttr(attr string) Option {
	return func(e *Engine) {
		attr = strings.TrimSpace(attr)
		if attr != "" {
			e.validateAttr = attr
		}
	}
}

// WithAcceptedFunc registers a hook invoked when a submission passes every
// check and the native submission is allowed to proceed. Conversion tracking
// subscribes here.
func WithAcceptedFunc(fn func(*Form)) Option {
	return func(e *Engine) {
		if fn != nil {
			e.accepted = append(e.accepted, fn)
		}
	}
}

// Engine enforces the validation rules on opted-in forms. Construct with New,
// then Bind once against the document; all later work happens inside the
// event handlers the bind installs.
type Engine struct {
	doc          *dom.Document
	sink         Sink
	messages     Messages
	validateAttr string
	accepted     []func(*Form)
	forms        []*Form
}

// New constructs an Engine applying any provided options. A missing sink is
// replaced with a no-op so the engine stays usable for headless rule checks.
func New(options ...Option) *Engine {
	e := &Engine{
		sink:         noopSink{},
		messages:     DefaultMessages(),
		validateAttr: DefaultValidateAttr,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Bind locates every form carrying the opt-in marker, subscribes to its
// submission event, and subscribes blur/input on each of its fields. Returns
// the bound forms in document order. Calling Bind once per document is the
// caller's contract.
func (e *Engine) Bind(doc *dom.Document) []*Form {
	if doc == nil {
		return nil
	}
	e.doc = doc
	for _, formEl := range doc.FindAll(dom.ByAttr(e.validateAttr)) {
		if formEl.Tag != "form" {
			continue
		}
		e.forms = append(e.forms, e.bindForm(formEl))
	}
	return e.forms
}

// Forms returns the forms bound so far.
func (e *Engine) Forms() []*Form {
	return e.forms
}

func (e *Engine) bindForm(formEl *dom.Element) *Form {
	form := &Form{El: formEl}
	for _, el := range formEl.FindAll(dom.ByTag(fieldTags...)) {
		form.Fields = append(form.Fields, newField(el))
	}

	formEl.On(dom.EventSubmit, func(ev *dom.Event) {
		if verdicts := e.Validate(form); len(Failed(verdicts)) > 0 {
			ev.PreventDefault()
			return
		}
		for _, fn := range e.accepted {
			fn(form)
		}
	})

	for _, field := range form.Fields {
		field := field
		field.El.On(dom.EventBlur, func(*dom.Event) {
			e.revalidateOnBlur(field)
		})
		field.El.On(dom.EventInput, func(*dom.Event) {
			e.revalidateOnInput(field)
		})
	}
	return form
}

// Validate runs the full submission pass against one form: resets all error
// presentation, applies the required checks then the format checks, and on
// any failure scrolls the first invalid field into centered view and focuses
// it. The returned verdicts cover every rule that ran, passes included.
func (e *Engine) Validate(form *Form) []Verdict {
	if form == nil {
		return nil
	}
	e.sink.Reset(form.El)

	var verdicts []Verdict
	invalid := make(map[*Field]bool)

	fail := func(field *Field, message string) {
		verdicts = append(verdicts, Verdict{Field: field, Valid: false, Message: message})
		invalid[field] = true
		e.sink.MarkInvalid(field.El, message)
	}
	pass := func(field *Field) {
		verdicts = append(verdicts, Verdict{Field: field, Valid: true})
	}

	// Required presence runs before format rules.
	for _, field := range form.Fields {
		if !field.Required {
			continue
		}
		if ValidateField(field) {
			pass(field)
		} else {
			fail(field, e.messages.required())
		}
	}

	// Format rules apply only to non-empty values, and re-mark a field even
	// when presence already passed.
	for _, field := range form.Fields {
		if field.Kind != FieldEmail || strings.TrimSpace(field.El.Value) == "" {
			continue
		}
		if IsValidEmail(field.El.Value) {
			pass(field)
		} else {
			fail(field, e.messages.email())
		}
	}
	for _, field := range form.Fields {
		if field.Kind != FieldTel || strings.TrimSpace(field.El.Value) == "" {
			continue
		}
		if IsValidPhone(field.El.Value) {
			pass(field)
		} else {
			fail(field, e.messages.phone())
		}
	}

	if len(invalid) > 0 {
		e.focusFirstInvalid(form, invalid)
	}
	return verdicts
}

// focusFirstInvalid brings the first flagged field in document order into
// centered view and moves focus to it. Fields keeps document order, so the
// first flagged entry is the first error marker in the tree regardless of
// which rule group set it.
func (e *Engine) focusFirstInvalid(form *Form, invalid map[*Field]bool) {
	for _, field := range form.Fields {
		if !invalid[field] {
			continue
		}
		if e.doc != nil {
			e.doc.ScrollIntoView(field.El, dom.AlignCenter, true)
			e.doc.Focus(field.El)
		}
		return
	}
}

// revalidateOnBlur sets or clears the required error for a field losing
// focus. Non-required fields only ever get cleared here.
func (e *Engine) revalidateOnBlur(field *Field) {
	if field.Required && !ValidateField(field) {
		e.sink.MarkInvalid(field.El, e.messages.required())
		return
	}
	e.sink.ClearInvalid(field.El)
}

// revalidateOnInput clears the error on an already-flagged field once its
// content passes the presence check. Input never sets a new error; those
// surface on blur or submission.
func (e *Engine) revalidateOnInput(field *Field) {
	if e.sink.IsInvalid(field.El) && ValidateField(field) {
		e.sink.ClearInvalid(field.El)
	}
}
