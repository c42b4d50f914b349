package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"filmnames/internal/core/names"
	"filmnames/internal/core/version"
	"filmnames/internal/modkit"
	"filmnames/internal/modkit/module"
	"filmnames/internal/platform/config"
	perr "filmnames/internal/platform/errors"
	"filmnames/internal/platform/logger"
	"filmnames/internal/platform/store"
	str "filmnames/internal/platform/strings"
	"filmnames/internal/platform/validate"

	kndom "filmnames/internal/services/knownnames/domain"
	knownmod "filmnames/internal/services/knownnames/module"
)

const service = "filmnames-segment"

type flags struct {
	KnownFile string `flag:"known-names-file" validate:"omitempty,yamlfile"`
	JSON      bool
	Version   bool
}

// line is one --json output record
type line struct {
	Input     string  `json:"input"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Rule      string  `json:"rule"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, in io.Reader, out io.Writer) int {
	root := config.New()

	lo := logger.FromEnv()
	if lo.Service == "" {
		lo.Service = service
	}
	logger.Init(lo)
	l := logger.Get()

	fs := flag.NewFlagSet(service, flag.ContinueOnError)
	var f flags
	fs.StringVar(&f.KnownFile, "known-names-file", "", "YAML file of known given names instead of Postgres")
	fs.BoolVar(&f.JSON, "json", false, "print one JSON object per name")
	fs.BoolVar(&f.Version, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if f.Version {
		fmt.Fprintln(out, version.Info(service))
		return 0
	}
	if err := validate.Struct(f); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", service, err)
		return perr.ExitCode(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	known, closeFn, err := loadKnown(ctx, root, f.KnownFile, *l)
	if err != nil {
		l.Error().Err(err).Msg("load known names failed")
		return perr.ExitCode(err)
	}
	defer closeFn()

	emit := tabLine
	if f.JSON {
		emit = jsonLine
	}

	if err := segmentAll(fs.Args(), in, out, known, emit); err != nil {
		l.Error().Err(err).Msg("segment failed")
		return perr.ExitCode(err)
	}
	return 0
}

type emitFn func(w io.Writer, input string, a names.Analysis) error

func tabLine(w io.Writer, _ string, a names.Analysis) error {
	_, err := fmt.Fprintf(w, "%s\t%s\n", str.Deref(a.Result.FirstName), str.Deref(a.Result.LastName))
	return err
}

func jsonLine(w io.Writer, input string, a names.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(line{Input: input, FirstName: a.Result.FirstName, LastName: a.Result.LastName, Rule: a.Rule.String()})
}

// segmentAll segments every argument, or every stdin line when there are none
func segmentAll(args []string, in io.Reader, out io.Writer, known names.KnownSet, emit emitFn) error {
	bw := bufio.NewWriter(out)
	defer bw.Flush()

	if len(args) > 0 {
		for _, a := range args {
			if err := emit(bw, a, names.Analyze(a, known)); err != nil {
				return perr.Wrap(err, perr.ErrorCodeUnknown, "write output")
			}
		}
		return nil
	}

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := emit(bw, sc.Text(), names.Analyze(sc.Text(), known)); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "write output")
		}
	}
	if err := sc.Err(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "read stdin")
	}
	return nil
}

// loadKnown reads the YAML file when given, else Postgres via SERVICE_PGSQL_DBURL
func loadKnown(ctx context.Context, root config.Conf, file string, l logger.Logger) (names.KnownSet, func(), error) {
	noop := func() {}
	sc := store.FromEnv(root, service)
	if file == "" && !sc.PG.Enabled {
		return names.KnownSet{}, noop, perr.InvalidArgf("need --known-names-file or SERVICE_PGSQL_DBURL")
	}

	var st *store.Store
	if file == "" {
		sc.PG.MaxConns = 1
		sc.RDS.Enabled = false
		var err error
		st, err = store.Open(ctx, sc, store.WithLogger(l))
		if err != nil {
			return names.KnownSet{}, noop, perr.WrapIf(err, perr.ErrorCodeUnavailable, "open store")
		}
	}
	closeFn := func() {
		if st != nil {
			_ = st.Close(context.Background())
		}
	}

	km := knownmod.New(modkit.FromStore(st, root, l), knownmod.Options{File: file})
	known, err := module.MustPortsOf[kndom.ReaderPort](km).KnownNames(ctx)
	if err != nil {
		closeFn()
		return names.KnownSet{}, noop, err
	}
	return known, closeFn, nil
}
