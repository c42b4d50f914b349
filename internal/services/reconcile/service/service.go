// Package service implements the reconciliation batch: scan, report and apply
package service

import (
	"context"
	"io"
	"os"

	"filmnames/internal/core/names"
	perr "filmnames/internal/platform/errors"
	"filmnames/internal/platform/logger"
	str "filmnames/internal/platform/strings"
	ptime "filmnames/internal/platform/time"
	"filmnames/internal/platform/validate"
	kndom "filmnames/internal/services/knownnames/domain"
	pdom "filmnames/internal/services/people/domain"
	"filmnames/internal/services/reconcile/domain"
	"filmnames/internal/services/reconcile/report"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Config for the reconcile service
type Config struct {
	Workers  int
	PageSize int
	NoColor  bool
}

// Service implements domain.RunnerPort
type Service struct {
	People pdom.ReaderPort
	Writer pdom.WriterPort
	Known  kndom.ReaderPort
	Cfg    Config
	Out    io.Writer
}

var _ domain.RunnerPort = (*Service)(nil)

// New constructs a new reconcile service writing its console report to stdout
func New(people pdom.ReaderPort, writer pdom.WriterPort, known kndom.ReaderPort, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 500
	}
	return &Service{People: people, Writer: writer, Known: known, Cfg: cfg, Out: os.Stdout}
}

// Scan pages through every record and returns the candidates ordered by id
// and the number of records read. Any read failure aborts the scan
func (s *Service) Scan(ctx context.Context, known names.KnownSet) ([]domain.Candidate, int, error) {
	var (
		out     []domain.Candidate
		scanned int
		after   int64
	)
	for {
		rows, next, err := s.People.List(ctx, pdom.ListInput{After: after, Limit: s.Cfg.PageSize})
		if err != nil {
			return nil, scanned, err
		}
		if len(rows) == 0 {
			return out, scanned, nil
		}
		scanned += len(rows)

		type slot struct {
			c  domain.Candidate
			ok bool
		}
		slots := make([]slot, len(rows))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.Cfg.Workers)
		for i := range rows {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				c, ok := Check(rows[i], known)
				slots[i] = slot{c: c, ok: ok}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, scanned, err
		}

		for _, sl := range slots {
			if sl.ok {
				out = append(out, sl.c)
			}
		}
		logger.C(ctx).Debug().Int("page", len(rows)).Int64("after", after).Int("candidates", len(out)).Msg("scanned page")

		if next <= after {
			return nil, scanned, perr.Internalf("people cursor did not advance past %d", after)
		}
		after = next
	}
}

// Apply walks candidates in order. With confirm=false nothing is written and each
// intended change is logged. With confirm=true each suggestion is written on its own;
// a transient failure is retried once, any other failure is logged and counted and
// the batch continues. Cancellation stops
// before the next write and is returned with the partial summary
func (s *Service) Apply(ctx context.Context, cands []domain.Candidate, confirm bool) (domain.Summary, error) {
	sum := domain.Summary{Candidates: len(cands), DryRun: !confirm}
	log := logger.C(ctx)

	for _, c := range cands {
		if err := ctx.Err(); err != nil {
			log.Warn().Int("done", sum.Corrected+sum.Errors).Int("total", len(cands)).Msg("apply canceled")
			return sum, err
		}

		if !confirm {
			logChange(log, c, "would update")
			continue
		}

		if err := s.write(ctx, c); err != nil {
			sum.Errors++
			log.Error().Err(err).Int64("id", c.ID).Str("slug", c.Slug).Msg("update failed")
			continue
		}
		sum.Corrected++
		logChange(log, c, "updated")
	}
	return sum, nil
}

// write persists one suggestion, running it a second time when the first failure is transient
func (s *Service) write(ctx context.Context, c domain.Candidate) error {
	err := s.Writer.UpdateName(ctx, c.ID, c.SuggestedFirstName, c.SuggestedLastName)
	if err == nil || !perr.IsRetryable(err) {
		return err
	}
	logger.C(ctx).Debug().Err(err).Int64("id", c.ID).Msg("transient update failure; retrying")
	return s.Writer.UpdateName(ctx, c.ID, c.SuggestedFirstName, c.SuggestedLastName)
}

func logChange(log *logger.Logger, c domain.Candidate, msg string) {
	log.Info().
		Int64("id", c.ID).
		Str("slug", c.Slug).
		Str("first", str.Deref(c.SuggestedFirstName)).
		Str("last", str.Deref(c.SuggestedLastName)).
		Stringer("reason", c.Reason).
		Msg(msg)
}

// Run executes one batch: load known names, scan, export, report, then apply when asked
func (s *Service) Run(ctx context.Context, opts domain.RunOptions) (domain.Summary, error) {
	if err := validate.Struct(opts); err != nil {
		return domain.Summary{}, err
	}
	if logger.RunID(ctx) == "" {
		ctx = logger.WithRun(ctx, uuid.NewString(), opts.Mode())
	}
	log := logger.C(ctx)
	started := ptime.Now()

	if opts.Confirm && !opts.Fix {
		log.Warn().Msg("--confirm has no effect without --fix; running a scan only")
	}

	known, err := s.Known.KnownNames(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	log.Info().Int("known_names", known.Len()).Msg("known names loaded")

	cands, scanned, err := s.Scan(ctx, known)
	if err != nil {
		return domain.Summary{Scanned: scanned}, err
	}
	sum := domain.Summary{Scanned: scanned, Candidates: len(cands), DryRun: !(opts.Fix && opts.Confirm)}
	log.Info().Int("scanned", scanned).Int("candidates", len(cands)).Msg("scan finished")

	if opts.ExportDir != "" && len(cands) > 0 {
		path, err := report.ExportFile(opts.ExportDir, cands)
		if err != nil {
			return sum, err
		}
		sum.ExportPath = path
		log.Info().Str("path", path).Msg("candidates exported")
	}

	con := report.NewConsole(s.Out, report.ConsoleOptions{NoColor: s.Cfg.NoColor, MaxListed: opts.MaxListed})
	con.Candidates(cands)

	var applyErr error
	if opts.Fix {
		applied, err := s.Apply(ctx, cands, opts.Confirm)
		sum.Corrected, sum.Errors = applied.Corrected, applied.Errors
		applyErr = err
	}

	con.Summary(sum)
	log.Info().
		Int("scanned", sum.Scanned).
		Int("candidates", sum.Candidates).
		Int("corrected", sum.Corrected).
		Int("errors", sum.Errors).
		Bool("dry_run", sum.DryRun).
		Dur("took", ptime.Since(started)).
		Msg("reconcile finished")
	return sum, applyErr
}
