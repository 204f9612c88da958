package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/pkg/ctxutil"
)

// CreateTopic creates a single topic under an existing subject.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	subj, err := s.subjects.GetByID(ctx, userID, input.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}

	created, err := s.topics.Create(ctx, &domain.Topic{
		ID:        uuid.New(),
		UserID:    userID,
		SubjectID: subj.ID,
		Title:     strings.TrimSpace(input.Title),
		Notes:     input.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", created.ID.String()),
		slog.String("subject_id", subj.ID.String()),
	)

	return created, nil
}

// CreateTopicBatch creates several topics under one subject in one transaction.
func (s *Service) CreateTopicBatch(ctx context.Context, input CreateTopicBatchInput) ([]*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	subj, err := s.subjects.GetByID(ctx, userID, input.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}

	batch := make([]*domain.Topic, 0, len(input.Titles))
	for _, title := range input.Titles {
		batch = append(batch, &domain.Topic{
			ID:        uuid.New(),
			UserID:    userID,
			SubjectID: subj.ID,
			Title:     strings.TrimSpace(title),
		})
	}

	var created []*domain.Topic
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.topics.CreateBatch(txCtx, batch)
		if txErr != nil {
			return fmt.Errorf("create topics: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topics created",
		slog.String("user_id", userID.String()),
		slog.String("subject_id", subj.ID.String()),
		slog.Int("count", len(created)),
	)

	return created, nil
}
