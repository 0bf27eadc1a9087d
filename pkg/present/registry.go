package present

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-enhance/pkg/forms"
)

// NamedSink is a presentation sink that can be resolved by name.
type NamedSink interface {
	forms.Sink
	Name() string
}

// Registry stores sinks by name, providing discovery and duplication
// safeguards for binders that resolve presentation via configuration.
type Registry struct {
	mu    sync.RWMutex
	sinks map[string]NamedSink
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		sinks: make(map[string]NamedSink),
	}
}

// Register adds a sink by its Name(). Duplicate names return an error.
func (r *Registry) Register(sink NamedSink) error {
	if sink == nil {
		return fmt.Errorf("present: sink is required")
	}
	name := sink.Name()
	if name == "" {
		return fmt.Errorf("present: sink name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sinks[name]; exists {
		return fmt.Errorf("present: sink %q already registered", name)
	}

	r.sinks[name] = sink
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(sink NamedSink) {
	if err := r.Register(sink); err != nil {
		panic(err)
	}
}

// Get retrieves a sink by name.
func (r *Registry) Get(name string) (NamedSink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sink, ok := r.sinks[name]
	if !ok {
		return nil, fmt.Errorf("present: sink %q not found", name)
	}
	return sink, nil
}

// Has reports whether a sink is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.sinks[name]
	return ok
}

// List returns a sorted list of sink names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sinks))
	for name := range r.sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
