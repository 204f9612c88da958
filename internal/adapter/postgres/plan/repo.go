// Package plan implements the DailyPlan repository over PostgreSQL.
//
// Completed-set mutations are single UPDATE statements over the uuid[]
// column so concurrent completions of different topics never lose writes.
package plan

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "daily_plans"

var columns = []string{
	"id", "user_id", "date", "selected_topic_ids", "completed_topic_ids",
	"created_at", "updated_at",
}

// addCompletedSQL appends the topic ID only when absent, keeping the
// operation idempotent at the database level.
const addCompletedSQL = `
UPDATE daily_plans
SET completed_topic_ids = CASE
        WHEN $3 = ANY(completed_topic_ids) THEN completed_topic_ids
        ELSE array_append(completed_topic_ids, $3)
    END,
    updated_at = now()
WHERE user_id = $1 AND id = $2
RETURNING id, user_id, date, selected_topic_ids, completed_topic_ids, created_at, updated_at`

const removeCompletedSQL = `
UPDATE daily_plans
SET completed_topic_ids = array_remove(completed_topic_ids, $3),
    updated_at = now()
WHERE user_id = $1 AND id = $2
RETURNING id, user_id, date, selected_topic_ids, completed_topic_ids, created_at, updated_at`

type row struct {
	ID                uuid.UUID   `db:"id"`
	UserID            uuid.UUID   `db:"user_id"`
	Date              domain.Date `db:"date"`
	SelectedTopicIDs  []uuid.UUID `db:"selected_topic_ids"`
	CompletedTopicIDs []uuid.UUID `db:"completed_topic_ids"`
	CreatedAt         time.Time   `db:"created_at"`
	UpdatedAt         time.Time   `db:"updated_at"`
}

func (r row) toDomain() *domain.DailyPlan {
	return &domain.DailyPlan{
		ID:                r.ID,
		UserID:            r.UserID,
		Date:              r.Date,
		SelectedTopicIDs:  r.SelectedTopicIDs,
		CompletedTopicIDs: r.CompletedTopicIDs,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// Repo provides daily plan persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new daily plan repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a plan. A second insert for the same (user, date) trips the
// unique index and comes back as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.DailyPlan) (*domain.DailyPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert(table).
		Columns("id", "user_id", "date", "selected_topic_ids", "completed_topic_ids").
		Values(p.ID, p.UserID, p.Date, p.SelectedTopicIDs, p.CompletedTopicIDs).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build insert plan")
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "insert plan")
	}
	return stored.toDomain(), nil
}

// GetByID returns one plan owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, planID uuid.UUID) (*domain.DailyPlan, error) {
	return r.get(ctx, squirrel.Eq{"id": planID, "user_id": userID})
}

// GetByDate returns the user's plan for a calendar date.
func (r *Repo) GetByDate(ctx context.Context, userID uuid.UUID, date domain.Date) (*domain.DailyPlan, error) {
	return r.get(ctx, squirrel.Eq{"user_id": userID, "date": date})
}

func (r *Repo) get(ctx context.Context, where squirrel.Eq) (*domain.DailyPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build select plan")
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "get plan")
	}
	return stored.toDomain(), nil
}

// AddCompleted marks a topic completed. Re-adding a present ID is a no-op.
func (r *Repo) AddCompleted(ctx context.Context, userID, planID, topicID uuid.UUID) (*domain.DailyPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, addCompletedSQL, userID, planID, topicID); err != nil {
		return nil, postgres.MapError(err, "add completed topic")
	}
	return stored.toDomain(), nil
}

// RemoveCompleted unmarks a topic. Removing an absent ID is a no-op.
func (r *Repo) RemoveCompleted(ctx context.Context, userID, planID, topicID uuid.UUID) (*domain.DailyPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, removeCompletedSQL, userID, planID, topicID); err != nil {
		return nil, postgres.MapError(err, "remove completed topic")
	}
	return stored.toDomain(), nil
}

func columnList() string {
	return strings.Join(columns, ", ")
}
