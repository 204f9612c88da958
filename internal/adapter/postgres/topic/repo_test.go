package topic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(func() { mock.Close() })
	return mock
}

func datePtr(d domain.Date) *domain.Date { return &d }

func TestRepo_UpdateSchedule(t *testing.T) {
	userID := uuid.New()
	topicID := uuid.New()
	subjectID := uuid.New()
	now := time.Now()
	score := 70

	mock := newMock(t)
	rows := pgxmock.NewRows(columns).
		AddRow(topicID, userID, subjectID, "Algebra", "",
			datePtr("2024-01-05"), datePtr("2024-01-15"), 3, &score, now, now)
	mock.ExpectQuery(`UPDATE topics SET`).
		WithArgs(domain.Date("2024-01-05"), domain.Date("2024-01-15"), 3, 70, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(rows)

	repo := New(mock)
	got, err := repo.UpdateSchedule(context.Background(), userID, topicID, domain.ScheduleUpdateParams{
		LastReviewedAt:   "2024-01-05",
		NextReviewAt:     "2024-01-15",
		TotalReviews:     3,
		LastScorePercent: 70,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TotalReviews != 3 {
		t.Errorf("total reviews = %d", got.TotalReviews)
	}
	if got.NextReviewAt == nil || *got.NextReviewAt != "2024-01-15" {
		t.Errorf("next review = %v", got.NextReviewAt)
	}
	if got.LastScorePercent == nil || *got.LastScorePercent != 70 {
		t.Errorf("score = %v", got.LastScorePercent)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_UpdateSchedule_NotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE topics SET`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	repo := New(mock)
	_, err := repo.UpdateSchedule(context.Background(), uuid.New(), uuid.New(), domain.ScheduleUpdateParams{
		LastReviewedAt:   "2024-01-05",
		NextReviewAt:     "2024-01-15",
		TotalReviews:     1,
		LastScorePercent: 70,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRepo_GetByIDs_Empty(t *testing.T) {
	repo := New(newMock(t))

	got, err := repo.GetByIDs(context.Background(), uuid.New(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil without touching the database", got)
	}
}

func TestRepo_CreateBatch(t *testing.T) {
	userID := uuid.New()
	subjectID := uuid.New()
	now := time.Now()
	topics := []*domain.Topic{
		{ID: uuid.New(), UserID: userID, SubjectID: subjectID, Title: "Algebra"},
		{ID: uuid.New(), UserID: userID, SubjectID: subjectID, Title: "Geometry"},
	}

	mock := newMock(t)
	rows := pgxmock.NewRows(columns).
		AddRow(topics[0].ID, userID, subjectID, "Algebra", "", (*domain.Date)(nil), (*domain.Date)(nil), 0, (*int)(nil), now, now).
		AddRow(topics[1].ID, userID, subjectID, "Geometry", "", (*domain.Date)(nil), (*domain.Date)(nil), 0, (*int)(nil), now, now)
	mock.ExpectQuery(`INSERT INTO topics`).
		WithArgs(
			topics[0].ID, userID, subjectID, "Algebra", "",
			topics[1].ID, userID, subjectID, "Geometry", "",
		).
		WillReturnRows(rows)

	repo := New(mock)
	got, err := repo.CreateBatch(context.Background(), topics)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Algebra" || got[1].Title != "Geometry" {
		t.Errorf("got %+v", got)
	}
}
