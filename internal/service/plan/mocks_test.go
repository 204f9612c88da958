package plan

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

type topicRepoMock struct {
	GetByIDFunc        func(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error)
	GetByIDsFunc       func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Topic, error)
	ListByUserFunc     func(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error)
	UpdateScheduleFunc func(ctx context.Context, userID, topicID uuid.UUID, params domain.ScheduleUpdateParams) (*domain.Topic, error)
}

func (m *topicRepoMock) GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error) {
	return m.GetByIDFunc(ctx, userID, topicID)
}

func (m *topicRepoMock) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Topic, error) {
	return m.GetByIDsFunc(ctx, userID, ids)
}

func (m *topicRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error) {
	return m.ListByUserFunc(ctx, userID)
}

func (m *topicRepoMock) UpdateSchedule(ctx context.Context, userID, topicID uuid.UUID, params domain.ScheduleUpdateParams) (*domain.Topic, error) {
	return m.UpdateScheduleFunc(ctx, userID, topicID, params)
}

type subjectRepoMock struct {
	ListActiveFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error)
}

func (m *subjectRepoMock) ListActive(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error) {
	return m.ListActiveFunc(ctx, userID)
}

type planRepoMock struct {
	GetByIDFunc         func(ctx context.Context, userID, planID uuid.UUID) (*domain.DailyPlan, error)
	GetByDateFunc       func(ctx context.Context, userID uuid.UUID, date domain.Date) (*domain.DailyPlan, error)
	CreateFunc          func(ctx context.Context, p *domain.DailyPlan) (*domain.DailyPlan, error)
	AddCompletedFunc    func(ctx context.Context, userID, planID, topicID uuid.UUID) (*domain.DailyPlan, error)
	RemoveCompletedFunc func(ctx context.Context, userID, planID, topicID uuid.UUID) (*domain.DailyPlan, error)
}

func (m *planRepoMock) GetByID(ctx context.Context, userID, planID uuid.UUID) (*domain.DailyPlan, error) {
	return m.GetByIDFunc(ctx, userID, planID)
}

func (m *planRepoMock) GetByDate(ctx context.Context, userID uuid.UUID, date domain.Date) (*domain.DailyPlan, error) {
	return m.GetByDateFunc(ctx, userID, date)
}

func (m *planRepoMock) Create(ctx context.Context, p *domain.DailyPlan) (*domain.DailyPlan, error) {
	return m.CreateFunc(ctx, p)
}

func (m *planRepoMock) AddCompleted(ctx context.Context, userID, planID, topicID uuid.UUID) (*domain.DailyPlan, error) {
	return m.AddCompletedFunc(ctx, userID, planID, topicID)
}

func (m *planRepoMock) RemoveCompleted(ctx context.Context, userID, planID, topicID uuid.UUID) (*domain.DailyPlan, error) {
	return m.RemoveCompletedFunc(ctx, userID, planID, topicID)
}

type reviewLogRepoMock struct {
	CreateFunc func(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
}

func (m *reviewLogRepoMock) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	return m.CreateFunc(ctx, log)
}

type settingsRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpdateFunc      func(ctx context.Context, userID uuid.UUID, topicsPerDay int) (*domain.UserSettings, error)
}

func (m *settingsRepoMock) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	return m.GetOrCreateFunc(ctx, userID)
}

func (m *settingsRepoMock) Update(ctx context.Context, userID uuid.UUID, topicsPerDay int) (*domain.UserSettings, error) {
	return m.UpdateFunc(ctx, userID, topicsPerDay)
}

// txManagerMock runs the callback inline. A nil RunInTxFunc is a pass-through.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		return fn(ctx)
	}
	return m.RunInTxFunc(ctx, fn)
}
