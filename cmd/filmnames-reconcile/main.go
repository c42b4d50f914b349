package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"filmnames/internal/core/version"
	"filmnames/internal/modkit"
	"filmnames/internal/modkit/module"
	"filmnames/internal/modkit/repokit"
	"filmnames/internal/platform/config"
	perr "filmnames/internal/platform/errors"
	"filmnames/internal/platform/logger"
	"filmnames/internal/platform/store"
	"filmnames/internal/platform/validate"

	knownmod "filmnames/internal/services/knownnames/module"
	peoplemod "filmnames/internal/services/people/module"
	"filmnames/internal/services/reconcile/domain"
	reconcilemod "filmnames/internal/services/reconcile/module"
)

const service = "filmnames-reconcile"

type flags struct {
	Fix       bool
	Confirm   bool
	ExportDir string `flag:"export-dir"`
	KnownFile string `flag:"known-names-file" validate:"omitempty,yamlfile"`
	Workers   int    `flag:"workers" validate:"min=1,max=256"`
	PageSize  int    `flag:"page-size" validate:"min=1,max=10000"`
	MaxListed int    `flag:"max-listed" validate:"min=0"`
	NoColor   bool
	Version   bool
}

func main() {
	os.Exit(run())
}

func run() int {
	root := config.New()

	lo := logger.FromEnv()
	if lo.Service == "" {
		lo.Service = service
	}
	logger.Init(lo)
	l := logger.Get()

	def := reconcilemod.FromConfig(root)
	var f flags
	flag.BoolVar(&f.Fix, "fix", false, "apply the suggested corrections (dry-run unless --confirm)")
	flag.BoolVar(&f.Confirm, "confirm", false, "persist corrections; needs --fix")
	flag.StringVar(&f.ExportDir, "export-dir", def.ExportDir, "directory for the CSV export, empty to skip")
	flag.StringVar(&f.KnownFile, "known-names-file", "", "YAML file of known given names instead of Postgres")
	flag.IntVar(&f.Workers, "workers", def.Workers, "segmentation workers per page")
	flag.IntVar(&f.PageSize, "page-size", def.PageSize, "records read per page")
	flag.IntVar(&f.MaxListed, "max-listed", def.MaxListed, "candidates printed before the rest are summarized")
	flag.BoolVar(&f.NoColor, "no-color", def.NoColor, "disable colored output")
	flag.BoolVar(&f.Version, "version", false, "print version and exit")
	flag.Parse()

	if f.Version {
		fmt.Println(version.Info(service))
		return 0
	}
	if err := validate.Struct(f); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", service, err)
		flag.Usage()
		return perr.ExitCode(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sc := store.FromEnv(root, service)
	if !sc.PG.Enabled {
		err := perr.InvalidArgf("SERVICE_PGSQL_DBURL is required")
		l.Error().Err(err).Msg("missing database")
		return perr.ExitCode(err)
	}
	st, err := store.Open(ctx, sc, store.WithLogger(*l))
	if err != nil {
		l.Error().Err(err).Msg("store.Open failed")
		return perr.ExitCode(perr.WrapIf(err, perr.ErrorCodeUnavailable, "open store"))
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if err := repokit.Guard(ctx, st); err != nil {
		l.Error().Err(err).Msg("dependencies not ready")
		return perr.ExitCode(err)
	}

	deps := modkit.FromStore(st, root, *l)

	km := knownmod.New(deps, knownmod.Options{File: f.KnownFile})
	pm := peoplemod.New(deps)
	rm := reconcilemod.New(deps,
		reconcilemod.Options{Workers: f.Workers, PageSize: f.PageSize, NoColor: f.NoColor},
		modkit.WithPorts(reconcilemod.Uses{
			People: module.MustPortsOf[peoplemod.Ports](pm).Reader,
			Writer: module.MustPortsOf[peoplemod.Ports](pm).Writer,
			Known:  module.MustPortsOf[knownmod.Ports](km).Reader,
		}),
	)
	reg, err := module.NewRegistry(km, pm, rm)
	if err != nil {
		l.Error().Err(err).Msg("module wiring failed")
		return 1
	}
	runner, err := module.PortOf[domain.RunnerPort](reg, "reconcile")
	if err != nil {
		l.Error().Err(err).Msg("module wiring failed")
		return 1
	}
	l.Debug().Strs("modules", reg.Names()).Msg("modules wired")

	sum, err := runner.Run(ctx, domain.RunOptions{
		Fix:       f.Fix,
		Confirm:   f.Confirm,
		ExportDir: f.ExportDir,
		MaxListed: f.MaxListed,
	})
	if err != nil {
		l.Error().Err(err).Str("code", perr.CodeOf(err).String()).Msg("reconcile failed")
		return perr.ExitCode(err)
	}
	if sum.Failed() {
		l.Warn().Int("errors", sum.Errors).Msg("some corrections were not written")
		return 1
	}
	return 0
}
