package module

import (
	"time"

	"filmnames/internal/platform/config"
)

// Options configures the people module
type Options struct {
	HardLimit   int
	LockTimeout time.Duration
}

// FromConfig reads CORE_PEOPLE_* options
func FromConfig(cfg config.Conf) Options {
	pf := cfg.Prefix("CORE_PEOPLE_")
	return Options{
		HardLimit:   pf.MayPositiveInt("HARD_LIMIT", 1000),
		LockTimeout: pf.MayDuration("LOCK_TIMEOUT", 2*time.Second),
	}
}
