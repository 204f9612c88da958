package subject

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/pkg/ctxutil"
)

// RenameSubject changes a subject's name.
func (s *Service) RenameSubject(ctx context.Context, input RenameSubjectInput) (*domain.Subject, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	updated, err := s.subjects.Update(ctx, userID, input.SubjectID, domain.SubjectUpdateParams{Name: &name})
	if err != nil {
		return nil, fmt.Errorf("rename subject: %w", err)
	}

	s.log.InfoContext(ctx, "subject renamed",
		slog.String("user_id", userID.String()),
		slog.String("subject_id", updated.ID.String()),
		slog.String("name", name),
	)

	return updated, nil
}

// ArchiveSubject soft-deletes a subject. Its topics stop appearing in plan
// generation but all historical data is retained.
func (s *Service) ArchiveSubject(ctx context.Context, input ArchiveSubjectInput) (*domain.Subject, error) {
	return s.setActive(ctx, input, false, "subject archived")
}

// RestoreSubject reverses an archive, returning the subject's topics to the
// plan-generation pool.
func (s *Service) RestoreSubject(ctx context.Context, input ArchiveSubjectInput) (*domain.Subject, error) {
	return s.setActive(ctx, input, true, "subject restored")
}

func (s *Service) setActive(ctx context.Context, input ArchiveSubjectInput, active bool, msg string) (*domain.Subject, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.subjects.Update(ctx, userID, input.SubjectID, domain.SubjectUpdateParams{IsActive: &active})
	if err != nil {
		return nil, fmt.Errorf("update subject: %w", err)
	}

	s.log.InfoContext(ctx, msg,
		slog.String("user_id", userID.String()),
		slog.String("subject_id", updated.ID.String()),
	)

	return updated, nil
}
