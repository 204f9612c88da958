package subject

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

type subjectRepo interface {
	Create(ctx context.Context, s *domain.Subject) (*domain.Subject, error)
	GetByID(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error)
	ListByUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Subject, error)
	Update(ctx context.Context, userID, subjectID uuid.UUID, params domain.SubjectUpdateParams) (*domain.Subject, error)
	Delete(ctx context.Context, userID, subjectID uuid.UUID) error
}

type topicRepo interface {
	CreateBatch(ctx context.Context, topics []*domain.Topic) ([]*domain.Topic, error)
	DeleteBySubject(ctx context.Context, userID, subjectID uuid.UUID) (int64, error)
}

type reviewLogRepo interface {
	DeleteBySubject(ctx context.Context, userID, subjectID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides subject management operations.
type Service struct {
	subjects subjectRepo
	topics   topicRepo
	reviews  reviewLogRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Subject service.
func NewService(
	log *slog.Logger,
	subjects subjectRepo,
	topics topicRepo,
	reviews reviewLogRepo,
	tx txManager,
) *Service {
	return &Service{
		subjects: subjects,
		topics:   topics,
		reviews:  reviews,
		tx:       tx,
		log:      log.With("service", "subject"),
	}
}

// splitTitles turns a newline-separated block into trimmed, non-empty titles.
func splitTitles(block string) []string {
	var titles []string
	for _, line := range strings.Split(block, "\n") {
		title := strings.TrimSpace(line)
		if title != "" {
			titles = append(titles, title)
		}
	}
	return titles
}
