package demo

import (
	"sync"

	"github.com/skillsenselab/demokit/errors"
	"github.com/skillsenselab/demokit/logger"
)

// Registry holds demonstration units with deterministic ordering.
// Units run in the order they were registered. Registration and
// execution never interleave: the registry is populated at startup
// and only read afterwards.
type Registry struct {
	units  []Unit
	lookup map[string]int
	mu     sync.RWMutex
}

// NewRegistry creates an empty unit registry.
func NewRegistry() *Registry {
	return &Registry{
		units:  make([]Unit, 0),
		lookup: make(map[string]int),
	}
}

// Register adds a unit to the registry. A duplicate name, an empty
// name, or a nil entry procedure leaves the registry unchanged and
// returns an error to the caller.
func (r *Registry) Register(u Unit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.Name == "" {
		return errors.InvalidUnit("name must not be empty")
	}
	if u.Run == nil {
		return errors.InvalidUnit("entry procedure must not be nil").WithDetail("unit", u.Name)
	}
	if _, exists := r.lookup[u.Name]; exists {
		return errors.DuplicateUnit(u.Name)
	}

	r.lookup[u.Name] = len(r.units)
	r.units = append(r.units, u)

	logger.Debug("unit registered", logger.Fields(logger.FieldUnit, u.Name))
	return nil
}

// MustRegister registers a unit and panics on error. Intended for
// static registration at program start, where a bad unit definition
// is a programming mistake.
func (r *Registry) MustRegister(u Unit) {
	if err := r.Register(u); err != nil {
		panic(err)
	}
}

// Get returns a registered unit by name.
func (r *Registry) Get(name string) (Unit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.lookup[name]
	if !ok {
		return Unit{}, false
	}
	return r.units[i], true
}

// Names returns all registered unit names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.units))
	for i, u := range r.units {
		names[i] = u.Name
	}
	return names
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.units)
}
