package nav

import (
	"strings"

	"github.com/goliatone/go-enhance/pkg/dom"
)

// Default selector and state classes for the mobile menu.
const (
	DefaultToggleClass  = "nav-toggle"
	DefaultMenuClass    = "nav-menu"
	DefaultOpenClass    = "open"
	DefaultActiveClass  = "active"
	ariaExpandedAttr    = "aria-expanded"
	DefaultHeaderClass  = "site-header"
	DefaultScrolledCls  = "scrolled"
	DefaultHeaderOffset = 50
)

// MenuOption configures the menu binding.
type MenuOption func(*Menu)

// WithToggleClass overrides the class locating the toggle button.
func WithToggleClass(name string) MenuOption {
	return func(m *Menu) {
		if strings.TrimSpace(name) != "" {
			m.toggleClass = name
		}
	}
}

// WithMenuClass overrides the class locating the menu container.
func WithMenuClass(name string) MenuOption {
	return func(m *Menu) {
		if strings.TrimSpace(name) != "" {
			m.menuClass = name
		}
	}
}

// WithOpenClass overrides the class toggled on the open menu.
func WithOpenClass(name string) MenuOption {
	return func(m *Menu) {
		if strings.TrimSpace(name) != "" {
			m.openClass = name
		}
	}
}

// WithActiveClass overrides the class toggled on the active toggle button.
func WithActiveClass(name string) MenuOption {
	return func(m *Menu) {
		if strings.TrimSpace(name) != "" {
			m.activeClass = name
		}
	}
}

// Menu is a bound mobile menu: a toggle button and the menu container it
// opens and closes.
type Menu struct {
	toggleClass string
	menuClass   string
	openClass   string
	activeClass string

	toggle *dom.Element
	menu   *dom.Element
}

// BindMenu locates the toggle and menu elements and subscribes the click
// handlers. Returns nil when the page has no menu to enhance.
func BindMenu(doc *dom.Document, options ...MenuOption) *Menu {
	m := &Menu{
		toggleClass: DefaultToggleClass,
		menuClass:   DefaultMenuClass,
		openClass:   DefaultOpenClass,
		activeClass: DefaultActiveClass,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}

	if doc == nil {
		return nil
	}
	m.toggle = doc.Find(dom.ByClass(m.toggleClass))
	m.menu = doc.Find(dom.ByClass(m.menuClass))
	if m.toggle == nil || m.menu == nil {
		return nil
	}

	m.toggle.SetAttr(ariaExpandedAttr, "false")
	m.toggle.On(dom.EventClick, func(*dom.Event) {
		m.Toggle()
	})

	// Following a link closes the menu again on one-page navigations.
	for _, link := range m.menu.FindAll(dom.ByTag("a")) {
		link.On(dom.EventClick, func(*dom.Event) {
			m.Close()
		})
	}
	return m
}

// Open reports whether the menu is currently open.
func (m *Menu) Open() bool {
	return m.menu.HasClass(m.openClass)
}

// Toggle flips the menu state.
func (m *Menu) Toggle() {
	open := m.menu.ToggleClass(m.openClass)
	if open {
		m.toggle.AddClass(m.activeClass)
	} else {
		m.toggle.RemoveClass(m.activeClass)
	}
	if open {
		m.toggle.SetAttr(ariaExpandedAttr, "true")
	} else {
		m.toggle.SetAttr(ariaExpandedAttr, "false")
	}
}

// Close collapses the menu if open.
func (m *Menu) Close() {
	if m.Open() {
		m.Toggle()
	}
}
