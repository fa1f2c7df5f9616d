// File: internal/movement/registry.go
package movement

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps algorithm names to Movement implementations.
type Registry struct {
	mu         sync.RWMutex
	algorithms map[string]Movement
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{algorithms: make(map[string]Movement)}
}

// DefaultRegistry returns a registry holding the oxy algorithm.
func DefaultRegistry(oxy *Oxy) (*Registry, error) {
	if oxy == nil {
		return nil, fmt.Errorf("algorithm %q has a nil implementation", AlgorithmOxy)
	}
	r := NewRegistry()
	if err := r.Register(AlgorithmOxy, oxy); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds or replaces an algorithm.
func (r *Registry) Register(name string, m Movement) error {
	if name == "" {
		return fmt.Errorf("algorithm name must not be empty")
	}
	if m == nil {
		return fmt.Errorf("algorithm %q has a nil implementation", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.algorithms[name] = m
	return nil
}

// Get looks up an algorithm by name.
func (r *Registry) Get(name string) (Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return m, nil
}

// Names lists the registered algorithms in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
