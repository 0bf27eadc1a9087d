// Package forms implements opt-in form validation over a dom tree: required
// presence, permissive email format, and a loose phone format, enforced on
// submission and re-checked live on blur/input. Forms request the behavior
// with a data-validate marker; everything else is left untouched. Field and
// Form records are built once at bind time with their capability flags
// (required, kind) so event handlers never re-derive attributes. Failed
// checks surface through a presentation Sink as an error class plus a single
// adjacent message element per field; validation outcomes are verdict values,
// never errors.
package forms
