// Package track holds the thin analytics and consent helpers: a Tracker
// contract with a zap-backed implementation, cookie read/write with expiry,
// a consent gate that silently drops events until the visitor opts in,
// outbound link click tracking, and conversion tracking for validated form
// submissions and marked call-to-action elements.
package track
