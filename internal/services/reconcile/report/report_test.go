package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	kit "filmnames/internal/platform/testkit"
	ptime "filmnames/internal/platform/time"
	"filmnames/internal/services/reconcile/domain"

	"github.com/stretchr/testify/require"
)

func sp(s string) *string { return &s }

func sample() []domain.Candidate {
	return []domain.Candidate{
		{ID: 1, Slug: "shakira", CurrentFirstName: sp("Shakira"), SuggestedLastName: sp("Shakira"), Reason: domain.ReasonSingleWord},
		{ID: 2, Slug: "bochini", CurrentFirstName: sp("Ricardo"), CurrentLastName: sp(`"Bocha", Bochini`),
			SuggestedFirstName: sp(`Ricardo "Bocha",`), SuggestedLastName: sp("Bochini"), Reason: domain.ReasonNickname},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, Header, rows[0])
	require.Equal(t, []string{"1", "shakira", "Shakira", "", "", "Shakira", "Una sola palabra: va en apellido"}, rows[1])
	require.Equal(t, `"Bocha", Bochini`, rows[2][3])
	require.Equal(t, "Contiene apodo entre comillas", rows[2][6])

}

func TestWriteCSV_QuotesCommasAndQuotes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample()[1:]))
	kit.MustContain(t, buf.String(), `"""Bocha"", Bochini"`)
}

func TestExportFile(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &ptime.Now, func() time.Time { return time.Date(2026, 10, 19, 8, 0, 0, 0, time.Local) })

	dir := filepath.Join(t.TempDir(), "out")
	path, err := ExportFile(dir, sample())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "correcciones-nombres-2026-10-19.csv"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(b), "ID,Slug,Nombre Actual,Apellido Actual,Nombre Sugerido,Apellido Sugerido,Razón\n"))

	// same day overwrites and leaves no temp files behind
	_, err = ExportFile(dir, sample()[:1])
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, kit.Lines(string(b)), 2)
}

func TestExportFile_BadDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(f, nil, 0o600))
	_, err := ExportFile(filepath.Join(f, "sub"), sample())
	require.Error(t, err)
}

func TestConsole_Candidates(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, ConsoleOptions{NoColor: true}).Candidates(sample())
	out := buf.String()

	kit.MustContain(t, out, "2 correcciones sugeridas")
	kit.MustContain(t, out, "#1 shakira")
	kit.MustContain(t, out, "antes:   Shakira | -")
	kit.MustContain(t, out, "después: - | Shakira")
	kit.MustContain(t, out, "razón:   Una sola palabra: va en apellido")
	kit.MustNotContain(t, out, "\x1b[")
	kit.MustNotContain(t, out, "más")
}

func TestConsole_TruncatesListing(t *testing.T) {
	var cands []domain.Candidate
	for i := 1; i <= 105; i++ {
		cands = append(cands, domain.Candidate{ID: int64(i), Slug: fmt.Sprintf("p-%d", i), SuggestedLastName: sp("X")})
	}

	var buf bytes.Buffer
	NewConsole(&buf, ConsoleOptions{NoColor: true}).Candidates(cands)
	out := buf.String()
	kit.MustContain(t, out, "#100 p-100")
	kit.MustNotContain(t, out, "#101 p-101")
	kit.MustContain(t, out, "... y 5 más")

	buf.Reset()
	NewConsole(&buf, ConsoleOptions{NoColor: true, MaxListed: 3}).Candidates(cands)
	kit.MustContain(t, buf.String(), "... y 102 más")
}

func TestConsole_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, ConsoleOptions{NoColor: true}).Candidates(nil)
	require.Equal(t, "No hay correcciones pendientes.\n", buf.String())
}

func TestConsole_Summary(t *testing.T) {
	var buf bytes.Buffer
	con := NewConsole(&buf, ConsoleOptions{NoColor: true})

	con.Summary(domain.Summary{Scanned: 10, Candidates: 3, DryRun: true, ExportPath: "x.csv"})
	out := buf.String()
	kit.MustContain(t, out, "registros revisados: 10")
	kit.MustContain(t, out, "correcciones:        3")
	kit.MustContain(t, out, "exportado a:         x.csv")
	kit.MustContain(t, out, "modo simulación")
	kit.MustNotContain(t, out, "corregidos")

	buf.Reset()
	con.Summary(domain.Summary{Scanned: 10, Candidates: 3, Corrected: 2, Errors: 1})
	out = buf.String()
	kit.MustContain(t, out, "corregidos:          2")
	kit.MustContain(t, out, "errores:             1")
}
