// Package modkit provides module wiring and core deps
package modkit

import (
	"filmnames/internal/modkit/repokit"
	"filmnames/internal/platform/config"
	"filmnames/internal/platform/logger"
	"filmnames/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	RDS store.Redis
}

// FromStore copies the configured seams of st into a Deps
func FromStore(st *store.Store, cfg config.Conf, log logger.Logger) Deps {
	d := Deps{Log: log, Cfg: cfg}
	if st != nil {
		d.PG = st.PG
		d.RDS = st.RDS
	}
	return d
}
