package track

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-enhance/pkg/dom"
)

// EventOutbound is emitted when a visitor follows a link off-site.
const EventOutbound = "outbound_click"

// BindOutbound subscribes click tracking on every link leaving siteHost.
// Links with unparsable or same-host destinations are skipped. Returns the
// number of links bound.
func BindOutbound(doc *dom.Document, tracker Tracker, siteHost string) int {
	if doc == nil || tracker == nil {
		return 0
	}
	siteHost = strings.ToLower(strings.TrimSpace(siteHost))

	bound := 0
	for _, link := range doc.FindAll(dom.ByTag("a")) {
		href := link.Attr("href")
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			continue
		}
		parsed, err := url.Parse(href)
		if err != nil {
			continue
		}
		host := strings.ToLower(parsed.Hostname())
		if host == "" || host == siteHost {
			continue
		}
		link.On(dom.EventClick, func(*dom.Event) {
			tracker.Track(Event{
				Name:  EventOutbound,
				Props: map[string]string{"url": href, "host": host},
			})
		})
		bound++
	}
	return bound
}
