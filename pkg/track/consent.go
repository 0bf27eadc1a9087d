package track

// Consent cookie contract shared with the host page's consent banner.
const (
	DefaultConsentCookie = "cookie_consent"
	ConsentAccepted      = "accepted"
	DefaultConsentDays   = 365
)

// Consent reads and writes the opt-in state backing the tracking gate.
type Consent struct {
	jar        *Jar
	cookieName string
}

// NewConsent wraps a jar with the consent cookie convention. An empty cookie
// name falls back to the default.
func NewConsent(jar *Jar, cookieName string) *Consent {
	if jar == nil {
		jar = NewJar()
	}
	if cookieName == "" {
		cookieName = DefaultConsentCookie
	}
	return &Consent{jar: jar, cookieName: cookieName}
}

// Granted reports whether the visitor accepted tracking.
func (c *Consent) Granted() bool {
	value, ok := c.jar.Get(c.cookieName)
	return ok && value == ConsentAccepted
}

// Grant records acceptance for the standard retention window.
func (c *Consent) Grant() {
	c.jar.Set(c.cookieName, ConsentAccepted, DefaultConsentDays)
}

// Revoke drops the consent cookie.
func (c *Consent) Revoke() {
	c.jar.Delete(c.cookieName)
}

// Gated wraps a tracker so events are dropped until consent is granted.
func Gated(tracker Tracker, consent *Consent) Tracker {
	return TrackerFunc(func(event Event) {
		if consent == nil || !consent.Granted() {
			return
		}
		tracker.Track(event)
	})
}
