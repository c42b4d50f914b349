package module

import (
	"runtime"

	"filmnames/internal/platform/config"
)

// Options configures the reconcile module
type Options struct {
	Workers   int
	PageSize  int
	ExportDir string
	MaxListed int
	NoColor   bool
}

// FromConfig reads CORE_RECONCILE_* options; LOG_NO_COLOR also turns report colors off
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("CORE_RECONCILE_")
	return Options{
		Workers:   rf.MayPositiveInt("WORKERS", runtime.GOMAXPROCS(0)),
		PageSize:  rf.MayPositiveInt("PAGE_SIZE", 500),
		ExportDir: rf.MayString("EXPORT_DIR", "."),
		MaxListed: rf.MayPositiveInt("MAX_LISTED", 100),
		NoColor:   cfg.Prefix("LOG_").MayBool("NO_COLOR", false),
	}
}
