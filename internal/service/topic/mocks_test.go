package topic

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

type topicRepoMock struct {
	CreateFunc        func(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	CreateBatchFunc   func(ctx context.Context, topics []*domain.Topic) ([]*domain.Topic, error)
	GetByIDFunc       func(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error)
	ListByUserFunc    func(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error)
	ListBySubjectFunc func(ctx context.Context, userID, subjectID uuid.UUID) ([]*domain.Topic, error)
	UpdateFunc        func(ctx context.Context, userID, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error)
	DeleteFunc        func(ctx context.Context, userID, topicID uuid.UUID) error
}

func (m *topicRepoMock) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	return m.CreateFunc(ctx, t)
}

func (m *topicRepoMock) CreateBatch(ctx context.Context, topics []*domain.Topic) ([]*domain.Topic, error) {
	return m.CreateBatchFunc(ctx, topics)
}

func (m *topicRepoMock) GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error) {
	return m.GetByIDFunc(ctx, userID, topicID)
}

func (m *topicRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error) {
	return m.ListByUserFunc(ctx, userID)
}

func (m *topicRepoMock) ListBySubject(ctx context.Context, userID, subjectID uuid.UUID) ([]*domain.Topic, error) {
	return m.ListBySubjectFunc(ctx, userID, subjectID)
}

func (m *topicRepoMock) Update(ctx context.Context, userID, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error) {
	return m.UpdateFunc(ctx, userID, topicID, params)
}

func (m *topicRepoMock) Delete(ctx context.Context, userID, topicID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, topicID)
}

type subjectRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error)
}

func (m *subjectRepoMock) GetByID(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error) {
	return m.GetByIDFunc(ctx, userID, subjectID)
}

type reviewLogRepoMock struct {
	ListByTopicFunc   func(ctx context.Context, userID, topicID uuid.UUID) ([]*domain.ReviewLog, error)
	DeleteByTopicFunc func(ctx context.Context, userID, topicID uuid.UUID) (int64, error)
}

func (m *reviewLogRepoMock) ListByTopic(ctx context.Context, userID, topicID uuid.UUID) ([]*domain.ReviewLog, error) {
	return m.ListByTopicFunc(ctx, userID, topicID)
}

func (m *reviewLogRepoMock) DeleteByTopic(ctx context.Context, userID, topicID uuid.UUID) (int64, error) {
	return m.DeleteByTopicFunc(ctx, userID, topicID)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		return fn(ctx)
	}
	return m.RunInTxFunc(ctx, fn)
}
