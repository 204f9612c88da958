package topic

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

type topicRepo interface {
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	CreateBatch(ctx context.Context, topics []*domain.Topic) ([]*domain.Topic, error)
	GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error)
	ListBySubject(ctx context.Context, userID, subjectID uuid.UUID) ([]*domain.Topic, error)
	Update(ctx context.Context, userID, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error)
	Delete(ctx context.Context, userID, topicID uuid.UUID) error
}

type subjectRepo interface {
	GetByID(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error)
}

type reviewLogRepo interface {
	ListByTopic(ctx context.Context, userID, topicID uuid.UUID) ([]*domain.ReviewLog, error)
	DeleteByTopic(ctx context.Context, userID, topicID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides topic management operations.
type Service struct {
	topics   topicRepo
	subjects subjectRepo
	reviews  reviewLogRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	subjects subjectRepo,
	reviews reviewLogRepo,
	tx txManager,
) *Service {
	return &Service{
		topics:   topics,
		subjects: subjects,
		reviews:  reviews,
		tx:       tx,
		log:      log.With("service", "topic"),
	}
}
