// Package topic implements the Topic repository over PostgreSQL using
// squirrel for query building and scany for row scanning.
package topic

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

const table = "topics"

var columns = []string{
	"id", "user_id", "subject_id", "title", "notes",
	"last_reviewed_at", "next_review_at", "total_reviews", "last_score_percent",
	"created_at", "updated_at",
}

type row struct {
	ID               uuid.UUID    `db:"id"`
	UserID           uuid.UUID    `db:"user_id"`
	SubjectID        uuid.UUID    `db:"subject_id"`
	Title            string       `db:"title"`
	Notes            string       `db:"notes"`
	LastReviewedAt   *domain.Date `db:"last_reviewed_at"`
	NextReviewAt     *domain.Date `db:"next_review_at"`
	TotalReviews     int          `db:"total_reviews"`
	LastScorePercent *int         `db:"last_score_percent"`
	CreatedAt        time.Time    `db:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at"`
}

func (r row) toDomain() *domain.Topic {
	return &domain.Topic{
		ID:               r.ID,
		UserID:           r.UserID,
		SubjectID:        r.SubjectID,
		Title:            r.Title,
		Notes:            r.Notes,
		LastReviewedAt:   r.LastReviewedAt,
		NextReviewAt:     r.NextReviewAt,
		TotalReviews:     r.TotalReviews,
		LastScorePercent: r.LastScorePercent,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toDomainList(rows []row) []*domain.Topic {
	topics := make([]*domain.Topic, 0, len(rows))
	for _, r := range rows {
		topics = append(topics, r.toDomain())
	}
	return topics
}

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts one topic and returns the stored row.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert(table).
		Columns("id", "user_id", "subject_id", "title", "notes").
		Values(t.ID, t.UserID, t.SubjectID, t.Title, t.Notes).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build insert topic")
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "insert topic")
	}
	return stored.toDomain(), nil
}

// CreateBatch inserts topics in one statement and returns the stored rows
// in insertion order.
func (r *Repo) CreateBatch(ctx context.Context, topics []*domain.Topic) ([]*domain.Topic, error) {
	if len(topics) == 0 {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := qb.Insert(table).Columns("id", "user_id", "subject_id", "title", "notes")
	for _, t := range topics {
		insert = insert.Values(t.ID, t.UserID, t.SubjectID, t.Title, t.Notes)
	}

	sql, args, err := insert.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build insert topics")
	}

	var stored []row
	if err := pgxscan.Select(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "insert topics")
	}
	return toDomainList(stored), nil
}

// GetByID returns one topic owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": topicID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build select topic")
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "get topic")
	}
	return stored.toDomain(), nil
}

// GetByIDs returns the topics matching the given IDs. IDs with no row are
// silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Topic, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build select topics")
	}

	var stored []row
	if err := pgxscan.Select(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "get topics by ids")
	}
	return toDomainList(stored), nil
}

// ListByUser returns all of the user's topics ordered by creation time.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

// ListBySubject returns the user's topics under one subject.
func (r *Repo) ListBySubject(ctx context.Context, userID, subjectID uuid.UUID) ([]*domain.Topic, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID, "subject_id": subjectID})
}

func (r *Repo) list(ctx context.Context, where squirrel.Eq) ([]*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build list topics")
	}

	var stored []row
	if err := pgxscan.Select(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "list topics")
	}
	return toDomainList(stored), nil
}

// Update applies the non-nil content params and returns the updated topic.
func (r *Repo) Update(ctx context.Context, userID, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := qb.Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": topicID, "user_id": userID}).
		Suffix("RETURNING " + columnList())
	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Notes != nil {
		update = update.Set("notes", *params.Notes)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build update topic")
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "update topic")
	}
	return stored.toDomain(), nil
}

// UpdateSchedule writes a completed review's scheduling fields in one update.
func (r *Repo) UpdateSchedule(ctx context.Context, userID, topicID uuid.UUID, params domain.ScheduleUpdateParams) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update(table).
		Set("last_reviewed_at", params.LastReviewedAt).
		Set("next_review_at", params.NextReviewAt).
		Set("total_reviews", params.TotalReviews).
		Set("last_score_percent", params.LastScorePercent).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": topicID, "user_id": userID}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build update topic schedule")
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "update topic schedule")
	}
	return stored.toDomain(), nil
}

// Delete removes one topic row.
func (r *Repo) Delete(ctx context.Context, userID, topicID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Delete(table).
		Where(squirrel.Eq{"id": topicID, "user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "build delete topic")
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "delete topic")
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "delete topic")
	}
	return nil
}

// DeleteBySubject removes all of a subject's topics and reports how many
// rows went away.
func (r *Repo) DeleteBySubject(ctx context.Context, userID, subjectID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Delete(table).
		Where(squirrel.Eq{"user_id": userID, "subject_id": subjectID}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "build delete topics by subject")
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "delete topics by subject")
	}
	return tag.RowsAffected(), nil
}

func columnList() string {
	return strings.Join(columns, ", ")
}
