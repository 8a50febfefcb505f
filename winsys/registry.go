// Copyright 2026 The vantage Authors
// SPDX-License-Identifier: MIT

package winsys

import (
	"errors"
	"sort"
	"sync"
)

// Factory creates a new backend instance.
type Factory func() Backend

// RegistryEntry represents a registered windowing backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: the platform's native binding (SDL2)
	//   - 50: alternative bindings (GLFW)
	//   - 10: headless/test backends
	Priority int

	// Factory creates backend instances.
	Factory Factory

	// Available reports if the backend is usable on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered windowing backends.
//
// The registry lets backend packages register themselves without the core
// library importing them (and their cgo dependencies):
//
//	func init() {
//	    winsys.Register("sdl", 100, func() winsys.Backend { return &Backend{} }, nil)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register, Get and Default.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*RegistryEntry)}
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Available returns names of all available backends sorted by priority
// (highest first).
func Available() []string {
	return globalRegistry.Available()
}

// Get returns a backend instance by name from the global registry.
func Get(name string) (Backend, error) {
	return globalRegistry.Get(name)
}

// Default returns an instance of the best available backend from the
// global registry.
func Default() (Backend, error) {
	return globalRegistry.Default()
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}
	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a backend instance by name.
func (r *Registry) Get(name string) (Backend, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return entry.Factory(), nil
}

// Default returns an instance of the highest-priority available backend.
func (r *Registry) Default() (Backend, error) {
	r.mu.RLock()
	names := r.sortedNames(true)
	r.mu.RUnlock()

	for _, name := range names {
		b, err := r.Get(name)
		if err == nil && b != nil {
			return b, nil
		}
	}
	return nil, ErrNoBackend
}

// sortedNames returns backend names sorted by priority (highest first).
// If onlyAvailable is true, filters to available backends only.
// Must be called with the lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoBackend is returned when no windowing backends are
	// registered or available on the current system.
	ErrNoBackend = errors.New("winsys: no backend available")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "winsys: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "winsys: backend unavailable: " + e.Name
}
