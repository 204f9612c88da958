package plan

import (
	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

// Classify derives a topic's scheduling status relative to the target date.
//
// Precedence matters and must not be reordered: a topic that has never been
// reviewed is NEW even when a due date happens to be set on it.
func Classify(t *domain.Topic, target domain.Date) domain.TopicStatus {
	switch {
	case t.IsNew():
		return domain.TopicStatusNew
	case t.IsDue(target):
		return domain.TopicStatusMandatory
	case t.NextReviewAt != nil:
		return domain.TopicStatusEarly
	default:
		// Reviewed but no next date scheduled. The completion flow always
		// sets a next date, so this only appears on hand-edited data.
		return domain.TopicStatusFuture
	}
}
