package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

// SQLSTATE codes the repositories care about.
const (
	codeNotNullViolation = "23502"
	codeForeignKey       = "23503"
	codeUniqueViolation  = "23505"
	codeCheckViolation   = "23514"
	codeQueryCanceled    = "57014"
)

// MapError wraps a pgx error as "<entity> <key>: <cause>" and names the cause
// with a domain sentinel. Context errors pass through unmapped. Constraint
// failures on a known column become field-level validation errors. Anything
// else is domain.ErrStorage with the driver error still reachable.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}
	wrap := func(cause error) error { return fmt.Errorf("%s %s: %w", entity, key, cause) }

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return wrap(err)
	case errors.Is(err, pgx.ErrNoRows):
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s %s: %w: %w", entity, key, domain.ErrStorage, err)
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return wrap(domain.ErrAlreadyExists)
	case codeForeignKey:
		return wrap(domain.ErrNotFound)
	case codeNotNullViolation:
		return wrap(domain.NewValidationError(fieldName(pgErr.ColumnName), "required"))
	case codeCheckViolation:
		if col := checkedColumn(pgErr.TableName, pgErr.ConstraintName); col != "" {
			return wrap(domain.NewValidationError(fieldName(col), "invalid value"))
		}
		return wrap(domain.ErrValidation)
	case codeQueryCanceled:
		return fmt.Errorf("%s %s: %w: statement timeout: %w", entity, key, domain.ErrStorage, err)
	}

	return fmt.Errorf("%s %s: %w: %w", entity, key, domain.ErrStorage, err)
}

// checkedColumn recovers the column from a default check constraint name,
// which postgres builds as <table>_<column>_check.
func checkedColumn(table, constraint string) string {
	col, ok := strings.CutPrefix(constraint, table+"_")
	if !ok {
		return ""
	}
	col, ok = strings.CutSuffix(col, "_check")
	if !ok {
		return ""
	}
	return col
}

// fieldName turns a snake_case column into the camelCase name clients send.
func fieldName(column string) string {
	parts := strings.Split(column, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
