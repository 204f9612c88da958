package plan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/pkg/ctxutil"
)

// CompleteTopic records a finished review for a topic in a plan.
//
// Three effects run in one transaction: the topic's scheduling fields are
// advanced per the spaced-repetition rule, an immutable review log is
// appended, and the topic ID joins the plan's completed set. Marking an
// already-completed topic again still re-runs the scheduling update and
// appends another log; only the completed-set addition is a no-op.
func (s *Service) CompleteTopic(ctx context.Context, input CompleteTopicInput) (*CompleteTopicResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.plans.GetByID(ctx, userID, input.PlanID)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	if !p.IsSelected(input.TopicID) {
		return nil, fmt.Errorf("topic %s is not part of the plan selection: %w", input.TopicID, domain.ErrConflict)
	}

	topic, err := s.topics.GetByID(ctx, userID, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	schedule := CalculateNextReview(input.CorrectAnswers, input.Date)
	score := ScorePercent(input.CorrectAnswers)

	var (
		updatedTopic *domain.Topic
		updatedPlan  *domain.DailyPlan
		logEntry     *domain.ReviewLog
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		updatedTopic, txErr = s.topics.UpdateSchedule(txCtx, userID, topic.ID, domain.ScheduleUpdateParams{
			LastReviewedAt:   input.Date,
			NextReviewAt:     schedule.NextReviewAt,
			TotalReviews:     topic.TotalReviews + 1,
			LastScorePercent: score,
		})
		if txErr != nil {
			return fmt.Errorf("update topic schedule: %w", txErr)
		}

		logEntry, txErr = s.reviews.Create(txCtx, &domain.ReviewLog{
			ID:             uuid.New(),
			UserID:         userID,
			TopicID:        topic.ID,
			ReviewedOn:     input.Date,
			CorrectAnswers: input.CorrectAnswers,
			ScorePercent:   score,
			NextReviewAt:   schedule.NextReviewAt,
			Note:           input.Note,
		})
		if txErr != nil {
			return fmt.Errorf("create review log: %w", txErr)
		}

		updatedPlan, txErr = s.plans.AddCompleted(txCtx, userID, p.ID, topic.ID)
		if txErr != nil {
			return fmt.Errorf("mark topic completed: %w", txErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic review completed",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topic.ID.String()),
		slog.Int("score_percent", score),
		slog.String("tier", schedule.Tier.String()),
		slog.String("next_review_at", schedule.NextReviewAt.String()),
	)

	return &CompleteTopicResult{
		Topic:    updatedTopic,
		Plan:     updatedPlan,
		Log:      logEntry,
		Schedule: schedule,
	}, nil
}

// UncompleteTopic removes a topic from the plan's completed set.
//
// The topic's scheduling fields are NOT reverted: the next-review date,
// review counter, and last score keep the values the completion wrote.
func (s *Service) UncompleteTopic(ctx context.Context, input UncompleteTopicInput) (*domain.DailyPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.plans.GetByID(ctx, userID, input.PlanID)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}

	updated, err := s.plans.RemoveCompleted(ctx, userID, p.ID, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("unmark topic completed: %w", err)
	}

	s.log.InfoContext(ctx, "topic review un-completed",
		slog.String("user_id", userID.String()),
		slog.String("plan_id", p.ID.String()),
		slog.String("topic_id", input.TopicID.String()),
	)

	return updated, nil
}
