package plan

import (
	"fmt"
	"sync"
)

// Registry is the in-memory mapping from plan name to Plan. It is created at
// startup and passed explicitly to the components that need it; there is no
// on-disk persistence, plans live for the process lifetime only.
type Registry struct {
	mu    sync.RWMutex
	plans map[string]*Plan
	order []string // insertion order, keeps "show all" output stable
}

// NewRegistry creates an empty plan registry.
func NewRegistry() *Registry {
	return &Registry{plans: make(map[string]*Plan)}
}

// Create validates, builds and registers a new plan. It fails with
// ErrDuplicateName when the name is already taken.
func (r *Registry) Create(name string, budget float64, goal string, ingredients []string, timeMinutes int) (*Plan, error) {
	p, err := New(name, budget, goal, ingredients, timeMinutes)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.plans[name]; exists {
		return nil, fmt.Errorf("plan %q: %w", name, ErrDuplicateName)
	}
	r.plans[name] = p
	r.order = append(r.order, name)
	return p, nil
}

// Get returns the plan registered under name, or false when absent.
func (r *Registry) Get(name string) (*Plan, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[name]
	return p, ok
}

// Remove deletes the plan registered under name. It fails with ErrNotFound
// when no such plan exists.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.plans[name]; !exists {
		return fmt.Errorf("plan %q: %w", name, ErrNotFound)
	}
	delete(r.plans, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListAll returns every registered plan in creation order.
func (r *Registry) ListAll() []*Plan {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Plan, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.plans[name])
	}
	return out
}

// Len returns the number of registered plans.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plans)
}
