// Package registry manages custom renderers: user-supplied functions that
// augment how values of a specific runtime type appear in inspection
// results.
package registry

import (
	"reflect"
	"sync"
)

// RenderFunc produces the custom rendering for a value. The result is
// attached to the inspection node as an overlay; it does not replace the
// node's structural content.
type RenderFunc func(v any) any

// Registry maps runtime types to renderers. Matching is exact: a renderer
// registered for T does not apply to types assignable to T, nor to *T.
type Registry struct {
	mu        sync.RWMutex
	renderers map[reflect.Type]RenderFunc
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		renderers: make(map[reflect.Type]RenderFunc),
	}
}

// Register adds a renderer for exactly the given type.
// If a renderer for the same type exists, it is overwritten.
// There is no way to remove a renderer once registered.
func (r *Registry) Register(t reflect.Type, fn RenderFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[t] = fn
}

// RegisterFor registers a renderer for the runtime type of the given
// specimen value. Convenience over Register for callers that would
// otherwise write reflect.TypeOf themselves.
func (r *Registry) RegisterFor(specimen any, fn RenderFunc) {
	r.Register(reflect.TypeOf(specimen), fn)
}

// Lookup returns the renderer for the given type, or nil if none is
// registered.
func (r *Registry) Lookup(t reflect.Type) RenderFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.renderers[t]
}

// Len returns the number of registered renderers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.renderers)
}

var defaultRegistry = New()

// Default returns the process-wide registry used when no caller-owned
// registry is injected. It starts empty and grows only through Register
// calls.
func Default() *Registry {
	return defaultRegistry
}
