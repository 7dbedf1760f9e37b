// Package user implements the local account repository using PostgreSQL.
// It backs the self-hosted identity provider only.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/dreamjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "username", "password_hash", "created_at"}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Account is a stored user together with its password hash.
type Account struct {
	User         domain.User
	PasswordHash string
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	acc, err := r.getOne(ctx, "id", id.String(), sql, args)
	if err != nil {
		return nil, err
	}
	return &acc.User, nil
}

// GetByEmail returns the account registered under the email,
// compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*Account, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Expr("lower(email) = lower(?)", strings.TrimSpace(email))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user by email: %w", err)
	}

	return r.getOne(ctx, "email", email, sql, args)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new account.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, email, username, passwordHash string) (*domain.User, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("email", "username", "password_hash").
		Values(email, username, passwordHash).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	acc, err := r.getOne(ctx, "email", email, sql, args)
	if err != nil {
		return nil, err
	}
	return &acc.User, nil
}

// UpdateUsername sets the display username.
func (r *Repo) UpdateUsername(ctx context.Context, id uuid.UUID, username string) (*domain.User, error) {
	sql, args, err := postgres.Builder.
		Update(table).
		Set("username", username).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	acc, err := r.getOne(ctx, "id", id.String(), sql, args)
	if err != nil {
		return nil, err
	}
	return &acc.User, nil
}

func (r *Repo) getOne(ctx context.Context, keyName, key, sql string, args []any) (*Account, error) {
	var row userRow
	if err := pgxscan.Get(ctx, r.db, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("user %s=%s: %w", keyName, key, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "user", key)
	}

	return &Account{
		User: domain.User{
			ID:        row.ID,
			Email:     row.Email,
			Username:  row.Username,
			CreatedAt: row.CreatedAt,
		},
		PasswordHash: row.PasswordHash,
	}, nil
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
