// Package dream implements the Dream repository using PostgreSQL.
// Every statement is filtered by the owning user's id.
package dream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/dreamjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

const table = "dreams"

var columns = []string{
	"id", "user_id", "title", "date", "description", "tags", "emotions",
	"ai_interpretation", "generated_image_url", "created_at", "updated_at",
}

// touchUpdatedAt keeps updated_at strictly increasing even when two writes
// land within the same clock tick.
var touchUpdatedAt = squirrel.Expr("GREATEST(now(), updated_at + interval '1 microsecond')")

// Repo provides dream persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new dream repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the owner's dreams ordered by date DESC.
// A non-empty filter.Query matches title or description case-insensitively.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, filter domain.DreamFilter) ([]domain.Dream, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultDreamListLimit
	}

	query := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("date DESC", "created_at DESC").
		Limit(uint64(limit))

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list dreams: %w", err)
	}

	var rows []dreamRow
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "dreams of", ownerID.String())
	}

	dreams := make([]domain.Dream, 0, len(rows))
	for _, row := range rows {
		d, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		dreams = append(dreams, d)
	}

	return dreams, nil
}

// GetByID returns a dream by primary key.
// Returns domain.ErrNotFound if the dream does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, ownerID, dreamID uuid.UUID) (*domain.Dream, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": dreamID}).
		Where(squirrel.Eq{"user_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get dream: %w", err)
	}

	return r.getOne(ctx, dreamID, sql, args)
}

// Count returns the number of dreams the owner has recorded.
func (r *Repo) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"user_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count dreams: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "dreams of", ownerID.String())
	}

	return int(count), nil
}

// TopEmotions returns the owner's most frequent emotion labels, highest
// count first and ties broken alphabetically.
func (r *Repo) TopEmotions(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.EmotionCount, error) {
	sql, args, err := postgres.Builder.
		Select("e AS emotion", "count(*) AS total").
		From(table + ", unnest(emotions) AS e").
		Where(squirrel.Eq{"user_id": ownerID}).
		GroupBy("e").
		OrderBy("total DESC", "e ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build top emotions: %w", err)
	}

	var rows []struct {
		Emotion string `db:"emotion"`
		Total   int64  `db:"total"`
	}
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "emotions of", ownerID.String())
	}

	out := make([]domain.EmotionCount, len(rows))
	for i, row := range rows {
		out[i] = domain.EmotionCount{Emotion: row.Emotion, Count: int(row.Total)}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new dream and returns the persisted record with its
// generated id and timestamps.
func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, fields domain.DreamFields) (*domain.Dream, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("user_id", "title", "date", "description", "tags", "emotions").
		Values(ownerID, fields.Title, fields.Date, fields.Description, nonNil(fields.Tags), nonNil(fields.Emotions)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert dream: %w", err)
	}

	return r.getOne(ctx, uuid.Nil, sql, args)
}

// Update overwrites the editable fields of an owned dream.
// Returns domain.ErrNotFound if no owned row matched.
func (r *Repo) Update(ctx context.Context, ownerID, dreamID uuid.UUID, fields domain.DreamFields) (*domain.Dream, error) {
	return r.update(ctx, ownerID, dreamID, map[string]any{
		"title":       fields.Title,
		"date":        fields.Date,
		"description": fields.Description,
		"tags":        nonNil(fields.Tags),
		"emotions":    nonNil(fields.Emotions),
	})
}

// SetInterpretation stores an AI interpretation on an owned dream,
// replacing any previous one.
func (r *Repo) SetInterpretation(ctx context.Context, ownerID, dreamID uuid.UUID, interp domain.AIInterpretation) (*domain.Dream, error) {
	if interp.Symbols == nil {
		interp.Symbols = []domain.DreamSymbol{}
	}
	raw, err := json.Marshal(interp)
	if err != nil {
		return nil, fmt.Errorf("marshal interpretation: %w", err)
	}

	return r.update(ctx, ownerID, dreamID, map[string]any{"ai_interpretation": raw})
}

// SetImage stores a generated image reference on an owned dream,
// replacing any previous one.
func (r *Repo) SetImage(ctx context.Context, ownerID, dreamID uuid.UUID, imageURL string) (*domain.Dream, error) {
	return r.update(ctx, ownerID, dreamID, map[string]any{"generated_image_url": imageURL})
}

// Delete removes an owned dream. It reports whether a row was removed;
// a missing or foreign dream is not an error.
func (r *Repo) Delete(ctx context.Context, ownerID, dreamID uuid.UUID) (bool, error) {
	sql, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": dreamID}).
		Where(squirrel.Eq{"user_id": ownerID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete dream: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "dream", dreamID.String())
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repo) update(ctx context.Context, ownerID, dreamID uuid.UUID, set map[string]any) (*domain.Dream, error) {
	sql, args, err := postgres.Builder.
		Update(table).
		SetMap(set).
		Set("updated_at", touchUpdatedAt).
		Where(squirrel.Eq{"id": dreamID}).
		Where(squirrel.Eq{"user_id": ownerID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update dream: %w", err)
	}

	return r.getOne(ctx, dreamID, sql, args)
}

func (r *Repo) getOne(ctx context.Context, dreamID uuid.UUID, sql string, args []any) (*domain.Dream, error) {
	var row dreamRow
	if err := pgxscan.Get(ctx, r.db, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("dream %s: %w", dreamID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "dream", dreamID.String())
	}

	d, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers: row -> domain
// ---------------------------------------------------------------------------

type dreamRow struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	Title            string    `db:"title"`
	Date             time.Time `db:"date"`
	Description      string    `db:"description"`
	Tags             []string  `db:"tags"`
	Emotions         []string  `db:"emotions"`
	AIInterpretation []byte    `db:"ai_interpretation"`
	ImageURL         *string   `db:"generated_image_url"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (row dreamRow) toDomain() (domain.Dream, error) {
	d := domain.Dream{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Date:        row.Date,
		Description: row.Description,
		Tags:        nonNil(row.Tags),
		Emotions:    nonNil(row.Emotions),
		ImageURL:    row.ImageURL,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if len(row.AIInterpretation) > 0 && string(row.AIInterpretation) != "null" {
		var interp domain.AIInterpretation
		if err := json.Unmarshal(row.AIInterpretation, &interp); err != nil {
			return domain.Dream{}, fmt.Errorf("dream %s: decode ai_interpretation: %w: %w", row.ID, domain.ErrStorage, err)
		}
		if interp.Symbols == nil {
			interp.Symbols = []domain.DreamSymbol{}
		}
		d.Interpretation = &interp
	}

	return d, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
