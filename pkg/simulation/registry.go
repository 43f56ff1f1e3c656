package simulation

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrKernelNotFound indicates no kernel is registered under the requested name.
var ErrKernelNotFound = errors.New("kernel not found")

// Registry manages available kernel backends
type Registry struct {
	mu      sync.RWMutex
	kernels map[string]func() Kernel
}

// NewRegistry creates a new kernel registry
func NewRegistry() *Registry {
	return &Registry{
		kernels: make(map[string]func() Kernel),
	}
}

// Register adds a kernel factory to the registry
func (r *Registry) Register(name string, factory func() Kernel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.kernels[name]; exists {
		return fmt.Errorf("kernel %s already registered", name)
	}

	r.kernels[name] = factory
	return nil
}

// Get returns a new instance of the requested kernel
func (r *Registry) Get(name string) (Kernel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.kernels[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrKernelNotFound, name)
	}

	return factory(), nil
}

// List returns registered kernel names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.kernels))
	for name := range r.kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global kernel registry
var DefaultRegistry = NewRegistry()
