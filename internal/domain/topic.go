package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a single revisable unit of study content belonging to a subject.
//
// Scheduling fields move together: a completed review sets LastReviewedAt,
// NextReviewAt, and LastScorePercent and increments TotalReviews in one
// update. Invariant: TotalReviews == 0 exactly when LastReviewedAt is nil.
// Notes is free text editable independently of scheduling.
type Topic struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SubjectID        uuid.UUID
	Title            string
	Notes            string
	LastReviewedAt   *Date
	NextReviewAt     *Date
	TotalReviews     int
	LastScorePercent *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsNew reports whether the topic has never been reviewed.
func (t *Topic) IsNew() bool {
	return t.LastReviewedAt == nil
}

// IsDue reports whether the topic has a scheduled review on or before the
// target date.
func (t *Topic) IsDue(target Date) bool {
	if t.NextReviewAt == nil {
		return false
	}
	return !t.NextReviewAt.After(target)
}

// TopicUpdateParams holds the mutable content fields of a topic.
// Nil means "leave as is". Scheduling fields are never touched here.
type TopicUpdateParams struct {
	Title *string
	Notes *string
}

// ScheduleUpdateParams holds the scheduling fields persisted on a topic
// after a completed review.
type ScheduleUpdateParams struct {
	LastReviewedAt   Date
	NextReviewAt     Date
	TotalReviews     int
	LastScorePercent int
}
