// Package report renders correction candidates as CSV and as a console listing
package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	perr "filmnames/internal/platform/errors"
	str "filmnames/internal/platform/strings"
	ptime "filmnames/internal/platform/time"
	"filmnames/internal/services/reconcile/domain"
)

// Header is the CSV header row
var Header = []string{"ID", "Slug", "Nombre Actual", "Apellido Actual", "Nombre Sugerido", "Apellido Sugerido", "Razón"}

// FilePrefix names export files as FilePrefix + day + ".csv"
const FilePrefix = "correcciones-nombres-"

// FileName returns the export file name for a day stamp (YYYY-MM-DD)
func FileName(day string) string { return FilePrefix + day + ".csv" }

// WriteCSV writes the header and one row per candidate; nil parts are empty cells
func WriteCSV(w io.Writer, cands []domain.Candidate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, c := range cands {
		rec := []string{
			strconv.FormatInt(c.ID, 10),
			c.Slug,
			str.Deref(c.CurrentFirstName),
			str.Deref(c.CurrentLastName),
			str.Deref(c.SuggestedFirstName),
			str.Deref(c.SuggestedLastName),
			c.Reason.Label(),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFile writes cands to dir/correcciones-nombres-<today>.csv, replacing a file
// from an earlier run the same day, and returns the path
func ExportFile(dir string, cands []domain.Candidate) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "create export dir %s", dir)
	}
	path := filepath.Join(dir, FileName(ptime.Today()))

	tmp, err := os.CreateTemp(dir, ".correcciones-*.csv")
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "create export file in %s", dir)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := WriteCSV(tmp, cands); err != nil {
		_ = tmp.Close()
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "close %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "move export into %s", path)
	}
	return path, nil
}
