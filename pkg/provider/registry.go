package provider

import "fmt"

// Registry holds the closed set of configured provider adapters.
type Registry struct {
	adapters map[string]Adapter
	ids      []string
}

// NewRegistry creates a registry from the given adapters. Later adapters
// with the same id replace earlier ones.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[string]Adapter, len(adapters))}
	for _, a := range adapters {
		if _, exists := r.adapters[a.ID()]; !exists {
			r.ids = append(r.ids, a.ID())
		}
		r.adapters[a.ID()] = a
	}
	return r
}

// Get returns the adapter for the given provider id.
func (r *Registry) Get(id string) (Adapter, error) {
	a, ok := r.adapters[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, id)
	}
	return a, nil
}

// IDs returns the registered provider ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	return ids
}
