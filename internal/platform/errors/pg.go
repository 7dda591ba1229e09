package errors

// Mapping from pgx errors to project ErrorCode values

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the mapping distinguishes
const (
	sqlstateUnique           = "23505"
	sqlstateForeignKey       = "23503"
	sqlstateNotNull          = "23502"
	sqlstateCheck            = "23514"
	sqlstateStringTruncation = "22001"
	sqlstateBadTextRep = "22P02"

	sqlstateSerialization   = "40001"
	sqlstateDeadlock       = "40P01"
	sqlstateLockUnavailable       = "55P03"
	sqlstateReadOnlyTx = "25006"
	sqlstateCannotConnect       = "57P03"
)

// codeBySQLState collapses the states above into project codes. States not
// listed here map to ErrorCodeDB
var codeBySQLState = map[string]ErrorCode{
	sqlstateUnique: ErrorCodeDuplicateKey,

	// input referenced a missing row
	sqlstateForeignKey: ErrorCodeInvalidArgument,

	sqlstateNotNull: ErrorCodeValidation,
	sqlstateCheck:   ErrorCodeValidation,

	sqlstateStringTruncation: ErrorCodeInvalidArgument,
	sqlstateBadTextRep: ErrorCodeInvalidArgument,

	sqlstateSerialization: ErrorCodeDB,
	sqlstateDeadlock:     ErrorCodeDB,
	sqlstateLockUnavailable:     ErrorCodeDB,

	sqlstateReadOnlyTx: ErrorCodeUnavailable,
	sqlstateCannotConnect:       ErrorCodeUnavailable,
}

// ExtractPgError returns (*pgconn.PgError, true) when the root cause is a PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var cause *pgconn.PgError
	if stderrs.As(Root(err), &cause) {
		return cause, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with the given SQLSTATE
func IsSQLState(err error, code string) bool {
	cause, ok := ExtractPgError(err)
	return ok && cause.Code == code
}

// IsDuplicateKey reports whether err is a unique constraint violation.
// The member and book repos use this to turn an insert race into a Conflict
func IsDuplicateKey(err error) bool {
	return IsSQLState(err, sqlstateUnique)
}

// DBErrorCode maps a Postgres error to an ErrorCode. !ok means err was
// not a PgError at all
func DBErrorCode(err error) (ErrorCode, bool) {
	var cause *pgconn.PgError
	if !stderrs.As(err, &cause) {
		return ErrorCodeUnknown, false
	}
	if code, hit := codeBySQLState[cause.Code]; hit {
		return code, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps a database error with its mapped ErrorCode.
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
