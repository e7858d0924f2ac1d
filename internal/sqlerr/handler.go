package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/gym-membership/internal/errs"
)

// ErrCode reports the Code of the first *Error in err's chain, or Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError converts a raw Postgres error into *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// Wrap tags a driver error with the operation that produced it.
//
// "No rows" from pgx or database/sql becomes ErrNotFound; anything else
// becomes *Error. A nil err stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := ConvertPgError(pgErr)
		sqlErr.Op = op
		sqlErr.driverErr = err
		return sqlErr
	}

	code := Other
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		code = ConnectionFailure
	}

	return &Error{
		Op:        op,
		Code:      code,
		Severity:  SeverityError,
		Message:   err.Error(),
		driverErr: err,
	}
}

// Describe renders a readable summary of a database failure for logs,
// e.g. "The Email is required".
func Describe(sqlErr *Error) string {
	switch sqlErr.Code {
	case NotNullViolation:
		if field := humanizeText(sqlErr.ColumnName); field != "" {
			return fmt.Sprintf("The %s is required", field)
		}
		return "A required value is missing"
	case UniqueViolation:
		return fmt.Sprintf("A %s with this identifier already exists", entityName(sqlErr.TableName))
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName(sqlErr.TableName))
	case CheckViolation:
		if field := humanizeText(sqlErr.ColumnName); field != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", field)
		}
		return "One or more values do not meet required conditions"
	case UndefinedTable:
		return "The table does not exist"
	case ConnectionFailure:
		return "The database is unreachable"
	default:
		return "The database rejected the statement"
	}
}

// entityName singularizes a table name crudely: "members" -> "Member".
func entityName(tableName string) string {
	if tableName == "" {
		return "record"
	}
	if strings.HasSuffix(tableName, "s") && len(tableName) > 1 {
		tableName = tableName[:len(tableName)-1]
	}
	return humanizeText(tableName)
}

// humanizeText converts snake_case into Title Case: "first_name" -> "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a repository error into the HTTP error for the client.
//
// Output:
//   - *errs.HTTPError: returned unchanged
//   - ErrNotFound: 404 "Not found"
//   - *Error (any driver failure): 500 "Database operation failed"
//   - anything else: 500 "Internal server error"
//
// Constraint violations are not singled out: the client only learns that
// the database operation failed, the detail stays in the logs.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if errors.Is(err, ErrNotFound) {
		return errs.NewNotFoundError(err)
	}

	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return errs.NewDatabaseError(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) || errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return HandleError(Wrap("query", err))
	}

	return errs.NewInternalServerError(err)
}
