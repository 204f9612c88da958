package subject

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/pkg/ctxutil"
)

// DeleteSubject permanently removes a subject, its topics, and their review
// logs in one transaction. Past daily plans are not rewritten; they keep the
// dangling topic IDs, which lookups skip.
func (s *Service) DeleteSubject(ctx context.Context, input DeleteSubjectInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	subj, err := s.subjects.GetByID(ctx, userID, input.SubjectID)
	if err != nil {
		return fmt.Errorf("get subject: %w", err)
	}

	var topicsDeleted, logsDeleted int64

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		logsDeleted, txErr = s.reviews.DeleteBySubject(txCtx, userID, subj.ID)
		if txErr != nil {
			return fmt.Errorf("delete review logs: %w", txErr)
		}

		topicsDeleted, txErr = s.topics.DeleteBySubject(txCtx, userID, subj.ID)
		if txErr != nil {
			return fmt.Errorf("delete topics: %w", txErr)
		}

		if txErr = s.subjects.Delete(txCtx, userID, subj.ID); txErr != nil {
			return fmt.Errorf("delete subject: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "subject deleted",
		slog.String("user_id", userID.String()),
		slog.String("subject_id", subj.ID.String()),
		slog.String("name", subj.Name),
		slog.Int64("topics_deleted", topicsDeleted),
		slog.Int64("logs_deleted", logsDeleted),
	)

	return nil
}
