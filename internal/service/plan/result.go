package plan

import (
	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

// PlanGenerationResult is the outcome of GenerateDailyPlan.
// Stats are always computed live from current topic state, so two calls for
// the same plan can report different stats if topics were reviewed between
// them.
type PlanGenerationResult struct {
	Plan  *domain.DailyPlan
	IsNew bool
	Stats domain.PlanStats
}

// CompleteTopicResult is the outcome of completing a topic review.
type CompleteTopicResult struct {
	Topic    *domain.Topic
	Plan     *domain.DailyPlan
	Log      *domain.ReviewLog
	Schedule ScheduleResult
}
