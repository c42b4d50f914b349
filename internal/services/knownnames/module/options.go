package module

import (
	"time"

	"filmnames/internal/platform/config"
)

// Options configures the known names module
type Options struct {
	TTL       time.Duration
	File      string   // YAML source instead of Postgres when set
	Extra     []string // names merged into every snapshot
	SharedKey string
}

// FromConfig reads CORE_KNOWNNAMES_* options
func FromConfig(cfg config.Conf) Options {
	kf := cfg.Prefix("CORE_KNOWNNAMES_")
	return Options{
		TTL:       kf.MayDuration("TTL", 5*time.Minute),
		File:      kf.MayString("FILE", ""),
		Extra:     kf.MayCSV("EXTRA", nil),
		SharedKey: kf.MayString("REDIS_KEY", ""),
	}
}
