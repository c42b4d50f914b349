package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgState is how one SQLSTATE maps onto project codes
type pgState struct {
	code  ErrorCode
	retry bool // transient; the same statement may succeed if run again
}

// pgStates lists the SQLSTATEs the people and known-name queries can hit.
// Anything else maps to ErrorCodeDB and is not retried
var pgStates = map[string]pgState{
	"23505": {code: ErrorCodeDuplicateKey},     // unique_violation
	"23503": {code: ErrorCodeInvalidArgument},  // foreign_key_violation
	"22001": {code: ErrorCodeInvalidArgument},  // string_data_right_truncation
	"22P02": {code: ErrorCodeInvalidArgument},  // invalid_text_representation
	"23502": {code: ErrorCodeValidation},       // not_null_violation
	"23514": {code: ErrorCodeValidation},       // check_violation
	"42P01": {code: ErrorCodeDB},               // undefined_table
	"40001": {code: ErrorCodeDB, retry: true},  // serialization_failure
	"40P01": {code: ErrorCodeDB, retry: true},  // deadlock_detected
	"55P03": {code: ErrorCodeDB, retry: true},  // lock_not_available
	"25006": {code: ErrorCodeUnavailable},      // read_only_sql_transaction
	"57P01": {code: ErrorCodeUnavailable},      // admin_shutdown
	"57P03": {code: ErrorCodeUnavailable},      // cannot_connect_now
}

// transientText covers failures pgx reports without a PgError, e.g. on commit
var transientText = []string{
	"commit unexpectedly resulted in rollback",
	"deadlock detected",
	"could not serialize access",
	"canceling statement due to lock timeout",
	"terminating connection due to administrator command",
}

// ExtractPgError returns the *pgconn.PgError at the root of err
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with the given SQLSTATE
func IsSQLState(err error, state string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == state
}

// DBErrorCode maps a Postgres error to a project code; ok is false for non-pg errors
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if st, known := pgStates[pgErr.Code]; known {
		return st.code, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with its mapped code, ErrorCodeDB for anything unmapped.
// nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// FromPostgresf is FromPostgres with a formatted message
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// IsRetryable reports whether a database failure is transient. Context
// cancellation and deadlines never are
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := ExtractPgError(err); ok {
		return pgStates[pgErr.Code].retry
	}
	msg := strings.ToLower(Root(err).Error())
	for _, s := range transientText {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
