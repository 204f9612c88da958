package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/pkg/ctxutil"
)

// DeleteTopic removes a topic and its review logs in one transaction.
// Daily plans that reference the topic are left untouched; their dangling
// IDs are skipped by plan lookups.
func (s *Service) DeleteTopic(ctx context.Context, input DeleteTopicInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	t, err := s.topics.GetByID(ctx, userID, input.TopicID)
	if err != nil {
		return fmt.Errorf("get topic: %w", err)
	}

	var logsDeleted int64

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		logsDeleted, txErr = s.reviews.DeleteByTopic(txCtx, userID, t.ID)
		if txErr != nil {
			return fmt.Errorf("delete review logs: %w", txErr)
		}

		if txErr = s.topics.Delete(txCtx, userID, t.ID); txErr != nil {
			return fmt.Errorf("delete topic: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", t.ID.String()),
		slog.String("title", t.Title),
		slog.Int64("logs_deleted", logsDeleted),
	)

	return nil
}
