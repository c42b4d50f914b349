package module

import (
	"fmt"
	"sort"
)

// Registry indexes the modules main built, by name
type Registry struct {
	byName map[string]Module
}

// NewRegistry rejects nil modules and duplicate names
func NewRegistry(ms ...Module) (*Registry, error) {
	r := &Registry{byName: make(map[string]Module, len(ms))}
	for _, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("module registry: nil module")
		}
		if _, dup := r.byName[m.Name()]; dup {
			return nil, fmt.Errorf("module registry: duplicate name %q", m.Name())
		}
		r.byName[m.Name()] = m
	}
	return r, nil
}

func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for n := range r.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) Lookup(name string) (Module, bool) {
	m, ok := r.byName[name]
	return m, ok
}

// PortOf is PortsOf on the module registered under name
func PortOf[T any](r *Registry, name string) (T, error) {
	var zero T
	m, ok := r.Lookup(name)
	if !ok {
		return zero, fmt.Errorf("module registry: no module %q", name)
	}
	v, ok := PortsOf[T](m)
	if !ok {
		return zero, fmt.Errorf("module registry: %q has no such port", name)
	}
	return v, nil
}
