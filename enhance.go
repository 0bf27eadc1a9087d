// Package enhance is the top-level facade for the page enhancement library:
// form validation with inline feedback, mobile navigation, header scroll
// styling, smooth anchor scrolling, reveal animations, and consent-gated
// analytics helpers, all bound onto an element tree through one explicit
// initialization call.
package enhance

import (
	"github.com/goliatone/go-enhance/pkg/config"
	"github.com/goliatone/go-enhance/pkg/dom"
	"github.com/goliatone/go-enhance/pkg/forms"
	"github.com/goliatone/go-enhance/pkg/page"
)

// Option is re-exported from pkg/page for callers configuring the binder
// through the facade.
type Option = page.Option

// Page aliases the wired page assembly returned by Bind.
type Page = page.Page

// Config aliases the binder configuration document.
type Config = config.Config

// Field, Form, and Verdict alias the validation engine's records for callers
// inspecting results through the facade.
type Field = forms.Field
type Form = forms.Form
type Verdict = forms.Verdict

// NewBinder exposes the binder constructor from the top-level module.
func NewBinder(options ...page.Option) *page.Binder {
	return page.New(options...)
}

// Bind assembles a binder with the provided options and wires it onto doc in
// one call, the simplest entry point for hosts.
func Bind(doc *dom.Document, options ...page.Option) (*page.Page, error) {
	return page.New(options...).Bind(doc)
}

// WithConfig re-exports the binder configuration option.
func WithConfig(cfg config.Config) page.Option {
	return page.WithConfig(cfg)
}

// IsValidEmail re-exports the email rule for hosts validating values outside
// a bound document.
func IsValidEmail(value string) bool {
	return forms.IsValidEmail(value)
}

// IsValidPhone re-exports the phone rule.
func IsValidPhone(value string) bool {
	return forms.IsValidPhone(value)
}
