package track

import (
	"sync"
	"time"
)

// JarOption configures the cookie jar.
type JarOption func(*Jar)

// WithClock overrides the time source, used by expiry tests.
func WithClock(now func() time.Time) JarOption {
	return func(j *Jar) {
		if now != nil {
			j.now = now
		}
	}
}

type cookie struct {
	value   string
	expires time.Time
}

// Jar is the browser-cookie stand-in: named string values with day-granular
// expiry. It is the only persistent state the whole library touches.
type Jar struct {
	mu      sync.Mutex
	cookies map[string]cookie
	now     func() time.Time
}

// NewJar constructs an empty jar.
func NewJar(options ...JarOption) *Jar {
	j := &Jar{
		cookies: make(map[string]cookie),
		now:     time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(j)
	}
	return j
}

// Set stores a cookie expiring after the given number of days. Days <= 0
// stores a session cookie that never expires within the jar's lifetime.
func (j *Jar) Set(name, value string, days int) {
	j.mu.Lock()
	defer j.mu.Unlock()

	c := cookie{value: value}
	if days > 0 {
		c.expires = j.now().Add(time.Duration(days) * 24 * time.Hour)
	}
	j.cookies[name] = c
}

// Get returns the cookie value. Expired cookies are dropped and report as
// missing.
func (j *Jar) Get(name string) (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	c, ok := j.cookies[name]
	if !ok {
		return "", false
	}
	if !c.expires.IsZero() && !j.now().Before(c.expires) {
		delete(j.cookies, name)
		return "", false
	}
	return c.value, true
}

// Delete removes a cookie if present.
func (j *Jar) Delete(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	delete(j.cookies, name)
}
