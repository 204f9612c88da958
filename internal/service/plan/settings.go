package plan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/pkg/ctxutil"
)

// GetSettings returns the user's study settings, creating the default row on
// first read.
func (s *Service) GetSettings(ctx context.Context) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// UpdateSettingsInput holds the parameters for updating study settings.
// The quiz length is fixed and not updatable.
type UpdateSettingsInput struct {
	TopicsPerDay int
}

// Validate checks all fields and collects all errors.
func (i *UpdateSettingsInput) Validate() error {
	if i.TopicsPerDay < 1 || i.TopicsPerDay > maxPlanCapacity {
		return domain.NewValidationError("topics_per_day", "must be between 1 and 50")
	}
	return nil
}

// UpdateSettings changes how many topics a generated plan targets per day.
// Existing plans are not regenerated.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.settings.Update(ctx, userID, input.TopicsPerDay)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("user_id", userID.String()),
		slog.Int("topics_per_day", updated.TopicsPerDay),
	)

	return updated, nil
}
