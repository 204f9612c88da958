package subject

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/pkg/ctxutil"
)

// CreateSubjectResult is the outcome of creating a subject with its initial
// batch of topics.
type CreateSubjectResult struct {
	Subject *domain.Subject
	Topics  []*domain.Topic
}

// CreateSubject creates a subject and its initial topics in one transaction.
// Every non-blank line of TopicTitles becomes one new, never-reviewed topic.
func (s *Service) CreateSubject(ctx context.Context, input CreateSubjectInput) (*CreateSubjectResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	titles := splitTitles(input.TopicTitles)

	var (
		created *domain.Subject
		topics  []*domain.Topic
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.subjects.Create(txCtx, &domain.Subject{
			ID:       uuid.New(),
			UserID:   userID,
			Name:     name,
			IsActive: true,
		})
		if txErr != nil {
			return fmt.Errorf("create subject: %w", txErr)
		}

		if len(titles) == 0 {
			return nil
		}

		batch := make([]*domain.Topic, 0, len(titles))
		for _, title := range titles {
			batch = append(batch, &domain.Topic{
				ID:        uuid.New(),
				UserID:    userID,
				SubjectID: created.ID,
				Title:     title,
			})
		}

		topics, txErr = s.topics.CreateBatch(txCtx, batch)
		if txErr != nil {
			return fmt.Errorf("create topics: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "subject created",
		slog.String("user_id", userID.String()),
		slog.String("subject_id", created.ID.String()),
		slog.String("name", name),
		slog.Int("topics", len(topics)),
	)

	return &CreateSubjectResult{Subject: created, Topics: topics}, nil
}
