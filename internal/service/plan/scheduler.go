// Package plan implements daily plan generation and spaced-repetition
// scheduling: the interval rule that maps a quiz score to the next review
// date, topic classification against a target date, bounded selection with
// subject diversity, and the idempotent per-day orchestration around them.
package plan

import (
	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

// Review intervals in days for the three performance tiers (3/10/15 rule
// over a 10-question quiz).
const (
	lowIntervalDays    = 3  // score < 70%
	mediumIntervalDays = 10 // 70% <= score < 80%
	highIntervalDays   = 15 // score >= 80%
)

// ScheduleResult is the outcome of the spaced-repetition rule.
type ScheduleResult struct {
	NextReviewAt    domain.Date
	DaysUntilReview int
	Tier            domain.PerformanceTier
}

// ScorePercent converts a correct-answer count into a percentage score.
func ScorePercent(correctAnswers int) int {
	return correctAnswers * 100 / domain.QuestionsPerTopic
}

// TierFor returns the performance tier for a correct-answer count.
func TierFor(correctAnswers int) domain.PerformanceTier {
	score := ScorePercent(correctAnswers)
	switch {
	case score < 70:
		return domain.PerformanceTierLow
	case score < 80:
		return domain.PerformanceTierMedium
	default:
		return domain.PerformanceTierHigh
	}
}

// CalculateNextReview is a pure function. No DB, no context, no clock.
// The caller guarantees correctAnswers is in [0, 10] and baseDate is valid;
// inputs are validated at the service boundary before this is reached.
func CalculateNextReview(correctAnswers int, baseDate domain.Date) ScheduleResult {
	var days int
	switch TierFor(correctAnswers) {
	case domain.PerformanceTierLow:
		days = lowIntervalDays
	case domain.PerformanceTierMedium:
		days = mediumIntervalDays
	default:
		days = highIntervalDays
	}

	return ScheduleResult{
		NextReviewAt:    baseDate.AddDays(days),
		DaysUntilReview: days,
		Tier:            TierFor(correctAnswers),
	}
}

// DaysUntilReview returns the whole days from today until the topic's next
// review (negative when overdue), or nil when no review is scheduled.
// Display helper; selection decisions never depend on it.
func DaysUntilReview(next *domain.Date, today domain.Date) *int {
	if next == nil {
		return nil
	}
	days, err := next.DaysUntil(today)
	if err != nil {
		return nil
	}
	return &days
}
