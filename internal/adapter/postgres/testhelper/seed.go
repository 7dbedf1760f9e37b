package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a local account with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:        uuid.New(),
		Email:     "dreamer-" + suffix + "@example.com",
		Username:  "Dreamer " + suffix,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Username, "$2a$10$seededseededseededseededseededseededseededseededseede", user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedDream inserts a dream for the owner dated at the given time.
func SeedDream(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, title string, date time.Time) domain.Dream {
	t.Helper()
	ctx := context.Background()

	dream := domain.Dream{
		ID:          uuid.New(),
		UserID:      ownerID,
		Title:       title,
		Date:        date.UTC().Truncate(time.Microsecond),
		Description: "Seeded dream " + uniqueSuffix(),
		Tags:        []string{"seed"},
		Emotions:    []string{"Peaceful"},
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO dreams (id, user_id, title, date, description, tags, emotions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		dream.ID, dream.UserID, dream.Title, dream.Date, dream.Description, dream.Tags, dream.Emotions,
	).Scan(&dream.CreatedAt, &dream.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDream insert dream: %v", err)
	}

	return dream
}
