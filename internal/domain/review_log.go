package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewLog records a single completed review of a topic.
// Logs are append-only and never mutated after creation.
type ReviewLog struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	TopicID        uuid.UUID
	ReviewedOn     Date
	CorrectAnswers int // raw correct-answer count out of a 10-question quiz
	ScorePercent   int
	NextReviewAt   Date // the review date computed from this result
	Note           string
	CreatedAt      time.Time
}
