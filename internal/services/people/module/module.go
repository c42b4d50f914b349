// Package module provides the people module
package module

import (
	"filmnames/internal/modkit"
	"filmnames/internal/services/people/domain"
	"filmnames/internal/services/people/repo"
	"filmnames/internal/services/people/service"
)

// Ports exposed by the people module
type Ports struct {
	Reader domain.ReaderPort
	Writer domain.WriterPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new people module; deps.PG is required
func New(deps modkit.Deps) *Module {
	if deps.PG == nil {
		panic("people module: deps.PG is required")
	}
	opts := FromConfig(deps.Cfg)

	svc := service.New(deps.PG, repo.NewPG(), service.Config{
		HardLimit:   opts.HardLimit,
		LockTimeout: opts.LockTimeout,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Reader: svc, Writer: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "people" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
