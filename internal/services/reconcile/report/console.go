package report

import (
	"fmt"
	"io"

	str "filmnames/internal/platform/strings"
	"filmnames/internal/services/reconcile/domain"

	"github.com/fatih/color"
)

// DefaultMaxListed is how many candidates are printed before the remainder is summarized
const DefaultMaxListed = 100

// ConsoleOptions tune the console report
type ConsoleOptions struct {
	NoColor   bool
	MaxListed int // zero means DefaultMaxListed
}

// Console prints a human readable report
type Console struct {
	w      io.Writer
	max    int
	colors map[string]*color.Color
}

// NewConsole builds a console report writing to w
func NewConsole(w io.Writer, o ConsoleOptions) *Console {
	if o.MaxListed <= 0 {
		o.MaxListed = DefaultMaxListed
	}
	c := &Console{
		w:   w,
		max: o.MaxListed,
		colors: map[string]*color.Color{
			"title":  color.New(color.FgWhite, color.Bold),
			"before": color.New(color.FgRed),
			"after":  color.New(color.FgGreen),
			"reason": color.New(color.FgYellow),
			"muted":  color.New(color.FgCyan),
			"error":  color.New(color.FgRed, color.Bold),
		},
	}
	if o.NoColor {
		for _, col := range c.colors {
			col.DisableColor()
		}
	}
	return c
}

// Candidates prints up to the configured number of candidates then a remainder line
func (c *Console) Candidates(cands []domain.Candidate) {
	if len(cands) == 0 {
		c.colors["after"].Fprintln(c.w, "No hay correcciones pendientes.")
		return
	}
	c.colors["title"].Fprintf(c.w, "%d correcciones sugeridas\n\n", len(cands))

	for i, cand := range cands {
		if i == c.max {
			c.colors["muted"].Fprintf(c.w, "... y %d más\n", len(cands)-c.max)
			break
		}
		c.colors["title"].Fprintf(c.w, "#%d %s\n", cand.ID, cand.Slug)
		fmt.Fprint(c.w, "  antes:   ")
		c.colors["before"].Fprintln(c.w, split(cand.CurrentFirstName, cand.CurrentLastName))
		fmt.Fprint(c.w, "  después: ")
		c.colors["after"].Fprintln(c.w, split(cand.SuggestedFirstName, cand.SuggestedLastName))
		fmt.Fprint(c.w, "  razón:   ")
		c.colors["reason"].Fprintln(c.w, cand.Reason.Label())
	}
	fmt.Fprintln(c.w)
}

// Summary prints the final counts; corrected and errors are always distinct lines
func (c *Console) Summary(s domain.Summary) {
	c.colors["title"].Fprintln(c.w, "Resumen")
	fmt.Fprintf(c.w, "  registros revisados: %d\n", s.Scanned)
	fmt.Fprintf(c.w, "  correcciones:        %d\n", s.Candidates)
	if s.ExportPath != "" {
		fmt.Fprintf(c.w, "  exportado a:         %s\n", s.ExportPath)
	}
	if s.DryRun {
		c.colors["muted"].Fprintln(c.w, "  modo simulación: no se escribió ningún cambio")
		return
	}
	fmt.Fprint(c.w, "  corregidos:          ")
	c.colors["after"].Fprintf(c.w, "%d\n", s.Corrected)
	fmt.Fprint(c.w, "  errores:             ")
	if s.Errors > 0 {
		c.colors["error"].Fprintf(c.w, "%d\n", s.Errors)
	} else {
		fmt.Fprintf(c.w, "%d\n", s.Errors)
	}
}

// split renders "first | last" with a dash for empty parts
func split(first, last *string) string {
	return fmt.Sprintf("%s | %s", str.Or(first, "-"), str.Or(last, "-"))
}
