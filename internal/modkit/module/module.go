// Package module is the contract modules implement and the lookups main uses to wire them
package module

import (
	"fmt"
	"reflect"
)

// Module is kept apart from modkit so a module's ports package can import it without a cycle
type Module interface {
	Name() string
	Ports() any
}

// PortsOf finds a T in m's ports: the bundle itself, else its first exported field that is a T
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if v, ok := p.(T); ok {
		return v, true
	}
	if p == nil {
		return zero, false
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for _, f := range reflect.VisibleFields(rv.Type()) {
		if !f.IsExported() || len(f.Index) > 1 {
			continue
		}
		if v, ok := rv.FieldByIndex(f.Index).Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf panics naming the module and the missing type
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("module %s: requested port not found: %s", m.Name(), reflect.TypeFor[T]()))
	}
	return v
}
