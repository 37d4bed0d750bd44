package image

import "sync"

// Registry is the process module list: it resolves loaded modules by name
// and knows which image is the host executable. Lookup with an empty name
// returns the host, matching module-handle semantics.
type Registry struct {
	host   Module
	byName map[string]Module
	mu     sync.RWMutex
}

// NewRegistry creates a registry with the given host image.
func NewRegistry(host Module) *Registry {
	r := &Registry{
		host:   host,
		byName: make(map[string]Module),
	}
	if host != nil {
		r.byName[host.Name()] = host
	}
	return r
}

// Host returns the host executable's image.
func (r *Registry) Host() Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.host
}

// Add registers a loaded module.
func (r *Registry) Add(m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[m.Name()] = m
}

// Lookup resolves a module by name. An empty name resolves to the host.
func (r *Registry) Lookup(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name == "" {
		return r.host, r.host != nil
	}
	m, ok := r.byName[name]
	return m, ok
}
