package subject

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

type subjectRepoMock struct {
	CreateFunc     func(ctx context.Context, s *domain.Subject) (*domain.Subject, error)
	GetByIDFunc    func(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Subject, error)
	UpdateFunc     func(ctx context.Context, userID, subjectID uuid.UUID, params domain.SubjectUpdateParams) (*domain.Subject, error)
	DeleteFunc     func(ctx context.Context, userID, subjectID uuid.UUID) error
}

func (m *subjectRepoMock) Create(ctx context.Context, s *domain.Subject) (*domain.Subject, error) {
	return m.CreateFunc(ctx, s)
}

func (m *subjectRepoMock) GetByID(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error) {
	return m.GetByIDFunc(ctx, userID, subjectID)
}

func (m *subjectRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Subject, error) {
	return m.ListByUserFunc(ctx, userID, includeArchived)
}

func (m *subjectRepoMock) Update(ctx context.Context, userID, subjectID uuid.UUID, params domain.SubjectUpdateParams) (*domain.Subject, error) {
	return m.UpdateFunc(ctx, userID, subjectID, params)
}

func (m *subjectRepoMock) Delete(ctx context.Context, userID, subjectID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, subjectID)
}

type topicRepoMock struct {
	CreateBatchFunc     func(ctx context.Context, topics []*domain.Topic) ([]*domain.Topic, error)
	DeleteBySubjectFunc func(ctx context.Context, userID, subjectID uuid.UUID) (int64, error)
}

func (m *topicRepoMock) CreateBatch(ctx context.Context, topics []*domain.Topic) ([]*domain.Topic, error) {
	return m.CreateBatchFunc(ctx, topics)
}

func (m *topicRepoMock) DeleteBySubject(ctx context.Context, userID, subjectID uuid.UUID) (int64, error) {
	return m.DeleteBySubjectFunc(ctx, userID, subjectID)
}

type reviewLogRepoMock struct {
	DeleteBySubjectFunc func(ctx context.Context, userID, subjectID uuid.UUID) (int64, error)
}

func (m *reviewLogRepoMock) DeleteBySubject(ctx context.Context, userID, subjectID uuid.UUID) (int64, error) {
	return m.DeleteBySubjectFunc(ctx, userID, subjectID)
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
