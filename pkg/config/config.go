// Package config defines the YAML-loadable settings for the page binder:
// validation messages and markers, the class vocabulary shared with the host
// stylesheet, and tracking options. Values merge over the defaults, so a
// config document only states what it changes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validation configures the form validation engine.
type Validation struct {
	// Attr is the opt-in marker attribute forms carry.
	Attr string `yaml:"attr"`
	// Sink names the presentation sink resolved from the registry.
	Sink     string   `yaml:"sink"`
	Messages Messages `yaml:"messages"`
}

// Messages carries the per-rule error text.
type Messages struct {
	Required string `yaml:"required"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
}

// Classes is the visual vocabulary shared with the host stylesheet.
type Classes struct {
	Error          string `yaml:"error"`
	ErrorMessage   string `yaml:"error_message"`
	NavToggle      string `yaml:"nav_toggle"`
	NavMenu        string `yaml:"nav_menu"`
	MenuOpen       string `yaml:"menu_open"`
	ToggleActive   string `yaml:"toggle_active"`
	Header         string `yaml:"header"`
	HeaderScrolled string `yaml:"header_scrolled"`
	Reveal         string `yaml:"reveal"`
	Visible        string `yaml:"visible"`
}

// Tracking configures the analytics helpers.
type Tracking struct {
	Enabled       bool   `yaml:"enabled"`
	SiteHost      string `yaml:"site_host"`
	ConsentCookie string `yaml:"consent_cookie"`
}

// Config is the full binder configuration.
type Config struct {
	Validation   Validation `yaml:"validation"`
	Classes      Classes    `yaml:"classes"`
	HeaderOffset int        `yaml:"header_offset"`
	Tracking     Tracking   `yaml:"tracking"`
}

// Default returns the stock configuration every load merges over.
func Default() Config {
	return Config{
		Validation: Validation{
			Attr: "data-validate",
			Sink: "inline",
			Messages: Messages{
				Required: "This field is required",
				Email:    "Please enter a valid email address",
				Phone:    "Please enter a valid phone number",
			},
		},
		Classes: Classes{
			Error:          "error",
			ErrorMessage:   "error-message",
			NavToggle:      "nav-toggle",
			NavMenu:        "nav-menu",
			MenuOpen:       "open",
			ToggleActive:   "active",
			Header:         "site-header",
			HeaderScrolled: "scrolled",
			Reveal:         "fade-in",
			Visible:        "visible",
		},
		HeaderOffset: 50,
		Tracking: Tracking{
			Enabled:       true,
			ConsentCookie: "cookie_consent",
		},
	}
}

// Load unmarshals a YAML document over the defaults.
func Load(raw []byte) (Config, error) {
	cfg := Default()
	if len(raw) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse yaml: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Load(raw)
}
