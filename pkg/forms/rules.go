package forms

import (
	"regexp"
	"strings"
)

// Default messages shown when a rule fails. Literal, not localized.
const (
	MessageRequired = "This field is required"
	MessageEmail    = "Please enter a valid email address"
	MessagePhone    = "Please enter a valid phone number"
)

// Messages carries the user-facing text per rule. Zero values fall back to
// the defaults above.
type Messages struct {
	Required string
	Email    string
	Phone    string
}

// DefaultMessages returns the stock message set.
func DefaultMessages() Messages {
	return Messages{
		Required: MessageRequired,
		Email:    MessageEmail,
		Phone:    MessagePhone,
	}
}

func (m Messages) required() string {
	if m.Required != "" {
		return m.Required
	}
	return MessageRequired
}

func (m Messages) email() string {
	if m.Email != "" {
		return m.Email
	}
	return MessageEmail
}

func (m Messages) phone() string {
	if m.Phone != "" {
		return m.Phone
	}
	return MessagePhone
}

var (
	// emailPattern is a UX gate, not a format authority: anything@anything.anything
	// with no whitespace and no second @ on either side of the dot.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// phonePattern permits digits, spaces, and the symbols + - ( ).
	phonePattern = regexp.MustCompile(`^[\d\s()+-]+$`)
)

// phoneMinLength is the floor on total characters, counting every permitted
// symbol, not digits alone. "(--------)" passes. Known looseness, kept until
// product intent says otherwise.
const phoneMinLength = 10

// ValidateField is the presence predicate: checkboxes must be checked, every
// other control must hold a non-whitespace value. Pure, no side effects.
func ValidateField(field *Field) bool {
	if field == nil || field.El == nil {
		return false
	}
	if field.Kind == FieldCheckbox {
		return field.El.Checked
	}
	return strings.TrimSpace(field.El.Value) != ""
}

// IsValidEmail reports whether value passes the permissive anchored pattern.
func IsValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// IsValidPhone reports whether value is made of permitted phone characters
// and meets the length floor.
func IsValidPhone(value string) bool {
	return len(value) >= phoneMinLength && phonePattern.MatchString(value)
}
