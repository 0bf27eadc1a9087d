// Package scroll wires the viewport enhancements: smooth scrolling for
// in-page anchor links and the scroll-triggered reveal animation. Anchors
// whose fragment resolves to an element suppress the native jump and request
// a smooth scroll instead; missing targets fall through untouched. Reveal
// candidates gain the visible class the first time they intersect the
// viewport and keep it afterwards.
package scroll
