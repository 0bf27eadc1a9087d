package forms

import "github.com/goliatone/go-enhance/pkg/dom"

// FieldKind is the simplified enum of control kinds the rules care about.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldEmail    FieldKind = "email"
	FieldTel      FieldKind = "tel"
	FieldCheckbox FieldKind = "checkbox"
	FieldTextarea FieldKind = "textarea"
	FieldSelect   FieldKind = "select"
)

// Field is one form control with its capability flags resolved at bind time.
type Field struct {
	El       *dom.Element
	Name     string
	Kind     FieldKind
	Required bool
}

// Form is an opted-in form element plus its fields in document order.
type Form struct {
	El     *dom.Element
	Fields []*Field
}

// Verdict is the ephemeral outcome of one rule applied to one field. Message
// is empty for passing verdicts.
type Verdict struct {
	Field   *Field
	Valid   bool
	Message string
}

// Failed filters verdicts down to the failures.
func Failed(verdicts []Verdict) []Verdict {
	var out []Verdict
	for _, v := range verdicts {
		if !v.Valid {
			out = append(out, v)
		}
	}
	return out
}

// fieldTags are the tags considered editable controls inside a form.
var fieldTags = []string{"input", "textarea", "select"}

func newField(el *dom.Element) *Field {
	return &Field{
		El:       el,
		Name:     el.Attr("name"),
		Kind:     kindOf(el),
		Required: el.HasAttr("required"),
	}
}

func kindOf(el *dom.Element) FieldKind {
	switch el.Tag {
	case "textarea":
		return FieldTextarea
	case "select":
		return FieldSelect
	}
	switch el.Type() {
	case "email":
		return FieldEmail
	case "tel":
		return FieldTel
	case "checkbox":
		return FieldCheckbox
	default:
		return FieldText
	}
}
