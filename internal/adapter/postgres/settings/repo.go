// Package settings implements the UserSettings repository over PostgreSQL
// with read-through creation of the default row.
package settings

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

// getOrCreateSQL returns the existing row or inserts the configured
// default, in one statement. The no-op DO UPDATE makes RETURNING yield the
// row either way.
const getOrCreateSQL = `
INSERT INTO user_settings (user_id, topics_per_day)
VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING user_id, topics_per_day, created_at, updated_at`

// updateSQL upserts so a settings write works even before the first read.
const updateSQL = `
INSERT INTO user_settings (user_id, topics_per_day)
VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE SET topics_per_day = EXCLUDED.topics_per_day, updated_at = now()
RETURNING user_id, topics_per_day, created_at, updated_at`

type row struct {
	UserID       uuid.UUID `db:"user_id"`
	TopicsPerDay int       `db:"topics_per_day"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.UserSettings {
	return &domain.UserSettings{
		UserID:       r.UserID,
		TopicsPerDay: r.TopicsPerDay,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
	// defaultTopicsPerDay seeds the row created on first read.
	defaultTopicsPerDay int
}

// New creates a new settings repository.
func New(db postgres.Querier, defaultTopicsPerDay int) *Repo {
	return &Repo{db: db, defaultTopicsPerDay: defaultTopicsPerDay}
}

// GetOrCreate returns the user's settings, inserting the default row on
// first read.
func (r *Repo) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, getOrCreateSQL, userID, r.defaultTopicsPerDay); err != nil {
		return nil, postgres.MapError(err, "get or create settings")
	}
	return stored.toDomain(), nil
}

// Update changes the topics-per-day target, creating the row if needed.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, topicsPerDay int) (*domain.UserSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, updateSQL, userID, topicsPerDay); err != nil {
		return nil, postgres.MapError(err, "update settings")
	}
	return stored.toDomain(), nil
}
