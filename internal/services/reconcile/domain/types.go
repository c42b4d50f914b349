// Package domain defines correction candidates, reasons and run summaries
package domain

// Reason explains why a record was flagged; the first matching reason wins
type Reason uint8

const (
	// ReasonReorganized is the fallback when no specific reason applies
	ReasonReorganized Reason = iota
	ReasonSingleWord
	ReasonNickname
	ReasonInitials
	ReasonNoKnownName
	ReasonSurnameStartsWithGivenName
	ReasonSurnameStartsWithPreposition
)

// Label is the Spanish text exported in reports
func (r Reason) Label() string {
	switch r {
	case ReasonSingleWord:
		return "Una sola palabra: va en apellido"
	case ReasonNickname:
		return "Contiene apodo entre comillas"
	case ReasonInitials:
		return "Contiene iniciales"
	case ReasonNoKnownName:
		return "Sin nombre de pila conocido: nombre institucional"
	case ReasonSurnameStartsWithGivenName:
		return "El apellido actual empieza con un nombre de pila conocido"
	case ReasonSurnameStartsWithPreposition:
		return "El apellido actual empieza con preposición"
	default:
		return "Nombre reorganizado"
	}
}

// String is the stable machine label used in logs
func (r Reason) String() string {
	switch r {
	case ReasonSingleWord:
		return "single_word"
	case ReasonNickname:
		return "nickname"
	case ReasonInitials:
		return "initials"
	case ReasonNoKnownName:
		return "no_known_name"
	case ReasonSurnameStartsWithGivenName:
		return "surname_starts_with_given_name"
	case ReasonSurnameStartsWithPreposition:
		return "surname_starts_with_preposition"
	default:
		return "reorganized"
	}
}

// Candidate is a record whose stored split differs from the engine's suggestion
type Candidate struct {
	ID                 int64
	Slug               string
	CurrentFirstName   *string
	CurrentLastName    *string
	SuggestedFirstName *string
	SuggestedLastName  *string
	Reason             Reason
}

// Summary reports one run; Corrected and Errors are only set by the apply step
type Summary struct {
	Scanned    int
	Candidates int
	Corrected  int
	Errors     int
	DryRun     bool
	ExportPath string
}

// Failed reports whether a confirmed apply recorded per-record errors
func (s Summary) Failed() bool { return !s.DryRun && s.Errors > 0 }

// RunOptions selects the workflow steps
type RunOptions struct {
	// Fix runs the apply step after scanning; dry-run unless Confirm
	Fix bool
	// Confirm persists suggestions; ignored without Fix
	Confirm bool
	// ExportDir receives the CSV; empty skips the export
	ExportDir string `flag:"export-dir"`
	// MaxListed caps the per-candidate console lines
	MaxListed int `flag:"max-listed" validate:"min=0"`
}

// Mode names the run for logs
func (o RunOptions) Mode() string {
	switch {
	case o.Fix && o.Confirm:
		return "apply"
	case o.Fix:
		return "dry-run"
	default:
		return "scan"
	}
}
