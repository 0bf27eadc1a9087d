// Package page is the initialization entry point: a Binder assembles the
// enhancement modules from configuration and wires them onto one document in
// a single explicit call. There is no implicit process-wide state; everything
// a Bind creates lives in the returned Page and in the event subscriptions it
// installed.
package page
