// Package present renders validation error state. The Inline sink is the
// default presentation: an error class toggled on the invalid field plus a
// single sibling message element, the contract consumed by page styling. The
// Summary renderer produces a theme-aware HTML fragment of a whole form's
// failures for hosts that render feedback server-side. Sinks register by name
// in a Registry so binders can resolve them via configuration.
package present
