// Package dom provides the element-tree contract the enhancement modules bind
// against: a tree of elements carrying attributes, class lists, control state
// (value/checked), and per-element event subscription, plus a document wrapper
// that models the viewport concerns the modules need (scroll offset, scroll
// into view, input focus). Any host capable of projecting its UI tree onto
// these types can drive the library; the in-memory implementation here is also
// what the test suites run against. Queries return elements in document order
// (depth-first, left to right) so "first invalid field" style lookups behave
// the way callers expect.
package dom
