// Package reviewlog implements the append-only ReviewLog repository over
// PostgreSQL. Logs are never updated; they are deleted only when their topic
// or subject is hard-deleted.
package reviewlog

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

const table = "review_logs"

var columns = []string{
	"id", "user_id", "topic_id", "reviewed_on", "correct_answers",
	"score_percent", "next_review_at", "note", "created_at",
}

// deleteBySubjectSQL removes the logs of every topic under a subject. The
// subquery keeps this a single statement inside the cascade transaction.
const deleteBySubjectSQL = `
DELETE FROM review_logs
WHERE user_id = $1
  AND topic_id IN (SELECT id FROM topics WHERE user_id = $1 AND subject_id = $2)`

type row struct {
	ID             uuid.UUID   `db:"id"`
	UserID         uuid.UUID   `db:"user_id"`
	TopicID        uuid.UUID   `db:"topic_id"`
	ReviewedOn     domain.Date `db:"reviewed_on"`
	CorrectAnswers int         `db:"correct_answers"`
	ScorePercent   int         `db:"score_percent"`
	NextReviewAt   domain.Date `db:"next_review_at"`
	Note           string      `db:"note"`
	CreatedAt      time.Time   `db:"created_at"`
}

func (r row) toDomain() *domain.ReviewLog {
	return &domain.ReviewLog{
		ID:             r.ID,
		UserID:         r.UserID,
		TopicID:        r.TopicID,
		ReviewedOn:     r.ReviewedOn,
		CorrectAnswers: r.CorrectAnswers,
		ScorePercent:   r.ScorePercent,
		NextReviewAt:   r.NextReviewAt,
		Note:           r.Note,
		CreatedAt:      r.CreatedAt,
	}
}

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends one review log and returns the stored row.
func (r *Repo) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert(table).
		Columns("id", "user_id", "topic_id", "reviewed_on", "correct_answers", "score_percent", "next_review_at", "note").
		Values(log.ID, log.UserID, log.TopicID, log.ReviewedOn, log.CorrectAnswers, log.ScorePercent, log.NextReviewAt, log.Note).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build insert review log")
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "insert review log")
	}
	return stored.toDomain(), nil
}

// ListByTopic returns a topic's review logs, newest first.
func (r *Repo) ListByTopic(ctx context.Context, userID, topicID uuid.UUID) ([]*domain.ReviewLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "topic_id": topicID}).
		OrderBy("reviewed_on DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build list review logs")
	}

	var stored []row
	if err := pgxscan.Select(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "list review logs")
	}

	logs := make([]*domain.ReviewLog, 0, len(stored))
	for _, l := range stored {
		logs = append(logs, l.toDomain())
	}
	return logs, nil
}

// DeleteByTopic removes a topic's logs and reports how many rows went away.
func (r *Repo) DeleteByTopic(ctx context.Context, userID, topicID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Delete(table).
		Where(squirrel.Eq{"user_id": userID, "topic_id": topicID}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "build delete review logs")
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "delete review logs")
	}
	return tag.RowsAffected(), nil
}

// DeleteBySubject removes the logs of all topics under a subject.
func (r *Repo) DeleteBySubject(ctx context.Context, userID, subjectID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteBySubjectSQL, userID, subjectID)
	if err != nil {
		return 0, postgres.MapError(err, "delete review logs by subject")
	}
	return tag.RowsAffected(), nil
}
