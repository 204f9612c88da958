package subject

import (
	"context"
	"fmt"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/pkg/ctxutil"
)

// ListSubjects returns the user's subjects, active only unless asked otherwise.
func (s *Service) ListSubjects(ctx context.Context, input ListSubjectsInput) ([]*domain.Subject, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	subjects, err := s.subjects.ListByUser(ctx, userID, input.IncludeArchived)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}
