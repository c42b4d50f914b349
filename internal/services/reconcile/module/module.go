// Package module provides the reconcile module
package module

import (
	"filmnames/internal/modkit"
	kndom "filmnames/internal/services/knownnames/domain"
	pdom "filmnames/internal/services/people/domain"
	"filmnames/internal/services/reconcile/domain"
	"filmnames/internal/services/reconcile/service"
)

// Uses are the ports reconcile consumes from other modules, passed via modkit.WithPorts
type Uses struct {
	People pdom.ReaderPort
	Writer pdom.WriterPort
	Known  kndom.ReaderPort
}

// Ports exposed by the reconcile module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module
type Module struct {
	name  string
	opts  Options
	svc   *service.Service
	ports Ports
}

// New constructs the module. Non-zero overrides win over env config
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("reconcile")}, opts...)...)
	uses, ok := b.Ports.(Uses)
	if !ok || uses.People == nil || uses.Writer == nil || uses.Known == nil {
		panic("reconcile module: WithPorts(Uses{People, Writer, Known}) is required")
	}

	cfg := FromConfig(deps.Cfg)
	if overrides.Workers > 0 {
		cfg.Workers = overrides.Workers
	}
	if overrides.PageSize > 0 {
		cfg.PageSize = overrides.PageSize
	}
	if overrides.ExportDir != "" {
		cfg.ExportDir = overrides.ExportDir
	}
	if overrides.MaxListed > 0 {
		cfg.MaxListed = overrides.MaxListed
	}
	cfg.NoColor = cfg.NoColor || overrides.NoColor

	svc := service.New(uses.People, uses.Writer, uses.Known, service.Config{
		Workers:  cfg.Workers,
		PageSize: cfg.PageSize,
		NoColor:  cfg.NoColor,
	})

	return &Module{name: b.Name, opts: cfg, svc: svc, ports: Ports{Runner: svc}}
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.name }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Options returns the resolved options; commands use them as flag defaults
func (m *Module) Options() Options { return m.opts }
