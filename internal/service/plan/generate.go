package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/pkg/ctxutil"
)

// GenerateDailyPlan returns the plan for the given date, creating it if the
// date has none yet.
//
// The operation is idempotent per (user, date): an existing plan is returned
// unchanged with IsNew=false; regeneration is not supported.
// Stats are recomputed live over the plan's selected topic IDs either way,
// since topic scheduling fields may have moved since the plan was created.
func (s *Service) GenerateDailyPlan(ctx context.Context, input GeneratePlanInput) (*PlanGenerationResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.plans.GetByDate(ctx, userID, input.Date)
	if err == nil {
		stats, statsErr := s.computeStats(ctx, userID, existing.SelectedTopicIDs, input.Date)
		if statsErr != nil {
			return nil, statsErr
		}
		return &PlanGenerationResult{Plan: existing, IsNew: false, Stats: stats}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get plan by date: %w", err)
	}

	// Settings are consulted only when a plan actually has to be built;
	// the read-through default row must not be created on the return path.
	capacity := input.Capacity
	if capacity == 0 {
		settings, err := s.settings.GetOrCreate(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		capacity = settings.TopicsPerDay
	}

	candidates, err := s.activeTopics(ctx, userID)
	if err != nil {
		return nil, err
	}

	selected, stats := SelectTopics(candidates, capacity, input.Date)

	created, err := s.plans.Create(ctx, &domain.DailyPlan{
		ID:                uuid.New(),
		UserID:            userID,
		Date:              input.Date,
		SelectedTopicIDs:  selected,
		CompletedTopicIDs: []uuid.UUID{},
	})
	if err != nil {
		// A concurrent request for the same date won the insert; the unique
		// index on (user_id, date) rejected ours. Return the winner.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return s.refetchAfterRace(ctx, userID, input.Date)
		}
		return nil, fmt.Errorf("create plan: %w", err)
	}

	s.log.InfoContext(ctx, "daily plan generated",
		slog.String("user_id", userID.String()),
		slog.String("date", created.Date.String()),
		slog.Int("selected", len(created.SelectedTopicIDs)),
		slog.Int("mandatory", stats.Mandatory),
		slog.Int("new", stats.New),
		slog.Int("early", stats.Early),
	)

	return &PlanGenerationResult{Plan: created, IsNew: true, Stats: stats}, nil
}

// GetPlan fetches the existing plan for a date with live stats.
// Returns domain.ErrNotFound when the date has no plan.
func (s *Service) GetPlan(ctx context.Context, input GetPlanInput) (*PlanGenerationResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.plans.GetByDate(ctx, userID, input.Date)
	if err != nil {
		return nil, fmt.Errorf("get plan by date: %w", err)
	}

	stats, err := s.computeStats(ctx, userID, p.SelectedTopicIDs, input.Date)
	if err != nil {
		return nil, err
	}

	return &PlanGenerationResult{Plan: p, IsNew: false, Stats: stats}, nil
}

// activeTopics returns the user's topics whose subject is active.
// Inactive-subject filtering happens here, not in the selector.
func (s *Service) activeTopics(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error) {
	topics, err := s.topics.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	subjects, err := s.subjects.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list active subjects: %w", err)
	}

	active := make(map[uuid.UUID]bool, len(subjects))
	for _, sub := range subjects {
		active[sub.ID] = true
	}

	candidates := make([]*domain.Topic, 0, len(topics))
	for _, t := range topics {
		if active[t.SubjectID] {
			candidates = append(candidates, t)
		}
	}
	return candidates, nil
}

// computeStats classifies the given topic IDs against the target date.
// IDs whose topic no longer exists are skipped silently.
func (s *Service) computeStats(ctx context.Context, userID uuid.UUID, topicIDs []uuid.UUID, target domain.Date) (domain.PlanStats, error) {
	var stats domain.PlanStats
	if len(topicIDs) == 0 {
		return stats, nil
	}

	topics, err := s.topics.GetByIDs(ctx, userID, topicIDs)
	if err != nil {
		return stats, fmt.Errorf("load plan topics: %w", err)
	}

	for _, t := range topics {
		switch Classify(t, target) {
		case domain.TopicStatusMandatory:
			stats.Mandatory++
		case domain.TopicStatusNew:
			stats.New++
		default:
			stats.Early++
		}
	}
	return stats, nil
}

func (s *Service) refetchAfterRace(ctx context.Context, userID uuid.UUID, date domain.Date) (*PlanGenerationResult, error) {
	winner, err := s.plans.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("refetch plan after duplicate insert: %w", err)
	}

	stats, err := s.computeStats(ctx, userID, winner.SelectedTopicIDs, date)
	if err != nil {
		return nil, err
	}

	return &PlanGenerationResult{Plan: winner, IsNew: false, Stats: stats}, nil
}
