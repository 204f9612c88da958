package topic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/internal/service/plan"
	"github.com/heartmarshall/revisaquest-backend/pkg/ctxutil"
)

// TopicWithStatus is a topic enriched with its scheduling status relative to
// a target date.
type TopicWithStatus struct {
	Topic           *domain.Topic
	Status          domain.TopicStatus
	DaysUntilReview *int
}

// ListTopics returns the user's topics, optionally scoped to one subject,
// each classified against the target date.
func (s *Service) ListTopics(ctx context.Context, input ListTopicsInput) ([]*TopicWithStatus, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		topics []*domain.Topic
		err    error
	)
	if input.SubjectID != nil {
		topics, err = s.topics.ListBySubject(ctx, userID, *input.SubjectID)
	} else {
		topics, err = s.topics.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	enriched := make([]*TopicWithStatus, 0, len(topics))
	for _, t := range topics {
		enriched = append(enriched, &TopicWithStatus{
			Topic:           t,
			Status:          plan.Classify(t, input.Date),
			DaysUntilReview: plan.DaysUntilReview(t.NextReviewAt, input.Date),
		})
	}
	return enriched, nil
}
