package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuestionsPerTopic is the fixed quiz length. Scores are always reported as
// correct answers out of this many questions.
const QuestionsPerTopic = 10

// UserSettings holds per-user study preferences. A default row is created
// on first read for users who never touched their settings.
type UserSettings struct {
	UserID       uuid.UUID
	TopicsPerDay int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
