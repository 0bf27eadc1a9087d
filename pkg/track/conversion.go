package track

import (
	"github.com/goliatone/go-enhance/pkg/dom"
	"github.com/goliatone/go-enhance/pkg/forms"
)

// Conversion event names and the opt-in marker for call-to-action elements.
const (
	EventFormSubmit = "form_submit"
	EventConversion = "conversion"
	ConversionAttr  = "data-conversion"
)

// FormAccepted returns a hook for forms.WithAcceptedFunc that records a
// conversion each time a validated submission proceeds.
func FormAccepted(tracker Tracker) func(*forms.Form) {
	return func(form *forms.Form) {
		if tracker == nil || form == nil {
			return
		}
		props := map[string]string{}
		if form.El != nil {
			if id := form.El.ID(); id != "" {
				props["form"] = id
			} else if name := form.El.Attr("name"); name != "" {
				props["form"] = name
			}
		}
		tracker.Track(Event{Name: EventFormSubmit, Props: props})
	}
}

// BindConversions subscribes click tracking on every element carrying the
// data-conversion marker; the attribute value becomes the conversion label.
// Returns the number of elements bound.
func BindConversions(doc *dom.Document, tracker Tracker) int {
	if doc == nil || tracker == nil {
		return 0
	}

	targets := doc.FindAll(dom.ByAttr(ConversionAttr))
	for _, el := range targets {
		label := el.Attr(ConversionAttr)
		el.On(dom.EventClick, func(*dom.Event) {
			props := map[string]string{}
			if label != "" {
				props["label"] = label
			}
			tracker.Track(Event{Name: EventConversion, Props: props})
		})
	}
	return len(targets)
}
