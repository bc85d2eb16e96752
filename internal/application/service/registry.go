package service

import (
	"action-agent/internal/application/port/output"
	"action-agent/internal/domain/entity"
)

// ProviderRegistry is the read-only set of providers known to the process.
// It is built once at startup and never mutated afterwards, so it is safe to
// share across concurrent executions without locking.
type ProviderRegistry struct {
	providers map[string]output.Provider
	order     []string
}

func NewProviderRegistry(providers ...output.Provider) *ProviderRegistry {
	r := &ProviderRegistry{
		providers: make(map[string]output.Provider, len(providers)),
	}
	for _, p := range providers {
		name := p.Descriptor().Name
		if _, exists := r.providers[name]; exists {
			continue
		}
		r.providers[name] = p
		r.order = append(r.order, name)
	}
	return r
}

func (r *ProviderRegistry) Get(name string) (output.Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// Names returns provider names in registration order.
func (r *ProviderRegistry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *ProviderRegistry) Descriptors() []entity.Descriptor {
	out := make([]entity.Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.providers[name].Descriptor())
	}
	return out
}

func (r *ProviderRegistry) Len() int {
	return len(r.order)
}
