// Package module provides the known given names module
package module

import (
	"filmnames/internal/modkit"
	"filmnames/internal/services/knownnames/domain"
	"filmnames/internal/services/knownnames/repo"
	"filmnames/internal/services/knownnames/service"
)

// Ports exposed by the known names module
type Ports struct {
	Reader domain.ReaderPort
	Source domain.SourcePort
}

// Module implements modkit.Module
type Module struct {
	name   string
	deps   modkit.Deps
	ports  Ports
	cached *service.Cached
}

// New constructs the module. Options override env config field by field
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("knownnames")}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	if overrides.TTL != 0 {
		cfg.TTL = overrides.TTL
	}
	if overrides.File != "" {
		cfg.File = overrides.File
	}
	if len(overrides.Extra) > 0 {
		cfg.Extra = overrides.Extra
	}
	if overrides.SharedKey != "" {
		cfg.SharedKey = overrides.SharedKey
	}

	var src domain.SourcePort
	switch {
	case cfg.File != "":
		src = repo.NewFile(cfg.File)
	case deps.PG != nil:
		src = service.NewPGSource(deps.PG, repo.NewPG())
	default:
		panic("knownnames module: need deps.PG or a known names file")
	}

	// the shared layer is skipped for file sources so edits show up on the next run
	var shared service.SharedSet
	if deps.RDS != nil && cfg.File == "" {
		shared = deps.RDS
	}

	cached := service.NewCached(src, shared, service.Config{
		TTL:       cfg.TTL,
		SharedKey: cfg.SharedKey,
		Extra:     cfg.Extra,
	})

	return &Module{
		name:   b.Name,
		deps:   deps,
		cached: cached,
		ports:  Ports{Reader: cached, Source: src},
	}
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.name }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Invalidate drops the cached snapshot
func (m *Module) Invalidate() { m.cached.Invalidate() }
