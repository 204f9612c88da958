package plan

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type topicRepo interface {
	GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error)
	GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Topic, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error)
	UpdateSchedule(ctx context.Context, userID, topicID uuid.UUID, params domain.ScheduleUpdateParams) (*domain.Topic, error)
}

type subjectRepo interface {
	ListActive(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error)
}

type planRepo interface {
	GetByID(ctx context.Context, userID, planID uuid.UUID) (*domain.DailyPlan, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date domain.Date) (*domain.DailyPlan, error)
	Create(ctx context.Context, p *domain.DailyPlan) (*domain.DailyPlan, error)
	AddCompleted(ctx context.Context, userID, planID, topicID uuid.UUID) (*domain.DailyPlan, error)
	RemoveCompleted(ctx context.Context, userID, planID, topicID uuid.UUID) (*domain.DailyPlan, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
}

type settingsRepo interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	Update(ctx context.Context, userID uuid.UUID, topicsPerDay int) (*domain.UserSettings, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements plan generation and review completion.
type Service struct {
	topics   topicRepo
	subjects subjectRepo
	plans    planRepo
	reviews  reviewLogRepo
	settings settingsRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Plan service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	subjects subjectRepo,
	plans planRepo,
	reviews reviewLogRepo,
	settings settingsRepo,
	tx txManager,
) *Service {
	return &Service{
		topics:   topics,
		subjects: subjects,
		plans:    plans,
		reviews:  reviews,
		settings: settings,
		tx:       tx,
		log:      log.With("service", "plan"),
	}
}
