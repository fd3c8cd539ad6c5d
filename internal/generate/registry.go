// registry.go implements the generator registration system.
//
// Separated from generate.go to isolate the global registry state and
// thread-safe access patterns. Generators self-register during init(),
// before main() runs, and the registered names form the generator
// catalogue the filter validator checks against.
//
// Registration panics on duplicates, following database/sql.Register
// conventions: a duplicate name is a programmer mistake that should fail
// fast during development, not a runtime condition. Registration order is
// preserved so catalogue listings are deterministic across runs.

package generate

import "sync"

var (
	mu       sync.RWMutex
	registry = make(map[string]Generator)
	order    []string // preserve registration order
)

// Register adds a generator to the registry. Called from init() functions.
func Register(g Generator) {
	mu.Lock()
	defer mu.Unlock()

	name := g.Name()
	if _, exists := registry[name]; exists {
		panic("generator already registered: " + name)
	}

	registry[name] = g
	order = append(order, name)
}

// All returns all registered generators in registration order.
func All() []Generator {
	mu.RLock()
	defer mu.RUnlock()

	gens := make([]Generator, 0, len(order))
	for _, name := range order {
		gens = append(gens, registry[name])
	}
	return gens
}

// Get returns a specific generator by name, or nil if not found.
func Get(name string) Generator {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Names returns the names of all registered generators in registration
// order. This is the generator catalogue consumed by the filter validator.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, len(order))
	copy(names, order)
	return names
}
