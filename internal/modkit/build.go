package modkit

import "filmnames/internal/modkit/module"

// Module is the surface every batch module exposes
type Module = module.Module

// Built is the result of applying options; later options win
type Built struct {
	Name string
	// Ports holds what the caller wired in, typed by the receiving module
	Ports any
}

type Option func(*Built)

func WithName(name string) Option {
	return func(b *Built) { b.Name = name }
}

// WithPorts hands a module the ports it uses from other modules
func WithPorts[T any](p T) Option {
	return func(b *Built) { b.Ports = p }
}

func Build(opts ...Option) (b Built) {
	for _, apply := range opts {
		apply(&b)
	}
	return b
}
