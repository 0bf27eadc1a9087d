// Package nav wires the navigation enhancements: the mobile menu toggle and
// the header scroll styling. Both are pure class toggles driven by click and
// scroll events; styling stays the host stylesheet's responsibility.
package nav
