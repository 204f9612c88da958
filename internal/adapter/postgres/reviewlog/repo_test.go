package reviewlog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
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

func logRows(l *domain.ReviewLog) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "topic_id", "reviewed_on", "correct_answers",
		"score_percent", "next_review_at", "note", "created_at",
	}).AddRow(l.ID, l.UserID, l.TopicID, l.ReviewedOn, l.CorrectAnswers,
		l.ScorePercent, l.NextReviewAt, l.Note, time.Now())
}

func TestRepo_Create(t *testing.T) {
	log := &domain.ReviewLog{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		TopicID:        uuid.New(),
		ReviewedOn:     "2024-03-10",
		CorrectAnswers: 8,
		ScorePercent:   80,
		NextReviewAt:   "2024-03-25",
		Note:           "felt solid",
	}

	mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO review_logs`).
		WithArgs(log.ID, log.UserID, log.TopicID, log.ReviewedOn, log.CorrectAnswers,
			log.ScorePercent, log.NextReviewAt, log.Note).
		WillReturnRows(logRows(log))

	repo := New(mock)
	got, err := repo.Create(context.Background(), log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != log.ID || got.ScorePercent != 80 {
		t.Errorf("got %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_ListByTopic_NewestFirst(t *testing.T) {
	userID := uuid.New()
	topicID := uuid.New()

	newer := &domain.ReviewLog{ID: uuid.New(), UserID: userID, TopicID: topicID, ReviewedOn: "2024-03-10", NextReviewAt: "2024-03-25"}
	older := &domain.ReviewLog{ID: uuid.New(), UserID: userID, TopicID: topicID, ReviewedOn: "2024-02-20", NextReviewAt: "2024-03-06"}

	rows := logRows(newer).AddRow(older.ID, older.UserID, older.TopicID, older.ReviewedOn,
		older.CorrectAnswers, older.ScorePercent, older.NextReviewAt, older.Note, time.Now())

	mock := newMock(t)
	mock.ExpectQuery(`SELECT .* FROM review_logs`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(rows)

	repo := New(mock)
	got, err := repo.ListByTopic(context.Background(), userID, topicID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(got))
	}
	if got[0].ReviewedOn != "2024-03-10" {
		t.Errorf("expected newest log first, got %s", got[0].ReviewedOn)
	}
}

func TestRepo_DeleteBySubject(t *testing.T) {
	userID := uuid.New()
	subjectID := uuid.New()

	mock := newMock(t)
	mock.ExpectExec(`DELETE FROM review_logs`).
		WithArgs(userID, subjectID).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	repo := New(mock)
	n, err := repo.DeleteBySubject(context.Background(), userID, subjectID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 deleted rows, got %d", n)
	}
}
