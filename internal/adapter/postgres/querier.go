package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Builder is the squirrel statement builder shared by the repositories.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Querier is what the repositories need from a connection. *pgxpool.Pool
// and pgxmock pools both satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
