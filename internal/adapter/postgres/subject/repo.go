// Package subject implements the Subject repository over PostgreSQL using
// squirrel for query building and scany for row scanning.
package subject

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

const table = "subjects"

var columns = []string{"id", "user_id", "name", "is_active", "created_at", "updated_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Subject {
	return &domain.Subject{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides subject persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new subject repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a subject and returns the stored row.
func (r *Repo) Create(ctx context.Context, s *domain.Subject) (*domain.Subject, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert(table).
		Columns("id", "user_id", "name", "is_active").
		Values(s.ID, s.UserID, s.Name, s.IsActive).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build insert subject")
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "insert subject")
	}
	return stored.toDomain(), nil
}

// GetByID returns one subject owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": subjectID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build select subject")
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "get subject")
	}
	return stored.toDomain(), nil
}

// ListByUser returns the user's subjects ordered by name, active only unless
// includeArchived is set.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Subject, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("name ASC")
	if !includeArchived {
		query = query.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build list subjects")
	}

	var stored []row
	if err := pgxscan.Select(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "list subjects")
	}

	subjects := make([]*domain.Subject, 0, len(stored))
	for _, s := range stored {
		subjects = append(subjects, s.toDomain())
	}
	return subjects, nil
}

// ListActive returns the user's active subjects. This is the candidate set
// for plan generation.
func (r *Repo) ListActive(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error) {
	return r.ListByUser(ctx, userID, false)
}

// Update applies the non-nil params and returns the updated subject.
func (r *Repo) Update(ctx context.Context, userID, subjectID uuid.UUID, params domain.SubjectUpdateParams) (*domain.Subject, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := qb.Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": subjectID, "user_id": userID}).
		Suffix("RETURNING " + columnList())
	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.IsActive != nil {
		update = update.Set("is_active", *params.IsActive)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build update subject")
	}

	var stored row
	if err := pgxscan.Get(ctx, q, &stored, sql, args...); err != nil {
		return nil, postgres.MapError(err, "update subject")
	}
	return stored.toDomain(), nil
}

// Delete removes a subject row. Child rows must already be gone.
func (r *Repo) Delete(ctx context.Context, userID, subjectID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Delete(table).
		Where(squirrel.Eq{"id": subjectID, "user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "build delete subject")
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "delete subject")
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "delete subject")
	}
	return nil
}

func columnList() string {
	return strings.Join(columns, ", ")
}
