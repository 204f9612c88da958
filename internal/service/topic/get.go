package topic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/internal/service/plan"
	"github.com/heartmarshall/revisaquest-backend/pkg/ctxutil"
)

// TopicDetails is a topic with its scheduling status and full review history.
type TopicDetails struct {
	Topic           *domain.Topic
	Status          domain.TopicStatus
	DaysUntilReview *int
	// History is the topic's review logs, newest first.
	History []*domain.ReviewLog
}

// GetTopic fetches one topic with its review history.
func (s *Service) GetTopic(ctx context.Context, input GetTopicInput) (*TopicDetails, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	t, err := s.topics.GetByID(ctx, userID, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	history, err := s.reviews.ListByTopic(ctx, userID, t.ID)
	if err != nil {
		return nil, fmt.Errorf("list review logs: %w", err)
	}

	return &TopicDetails{
		Topic:           t,
		Status:          plan.Classify(t, input.Date),
		DaysUntilReview: plan.DaysUntilReview(t.NextReviewAt, input.Date),
		History:         history,
	}, nil
}
