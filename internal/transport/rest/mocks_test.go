package rest

import (
	"context"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/internal/service/plan"
	"github.com/heartmarshall/revisaquest-backend/internal/service/subject"
	"github.com/heartmarshall/revisaquest-backend/internal/service/topic"
)

type planServiceMock struct {
	GenerateDailyPlanFunc func(ctx context.Context, input plan.GeneratePlanInput) (*plan.PlanGenerationResult, error)
	GetPlanFunc           func(ctx context.Context, input plan.GetPlanInput) (*plan.PlanGenerationResult, error)
	CompleteTopicFunc     func(ctx context.Context, input plan.CompleteTopicInput) (*plan.CompleteTopicResult, error)
	UncompleteTopicFunc   func(ctx context.Context, input plan.UncompleteTopicInput) (*domain.DailyPlan, error)
	GetSettingsFunc       func(ctx context.Context) (*domain.UserSettings, error)
	UpdateSettingsFunc    func(ctx context.Context, input plan.UpdateSettingsInput) (*domain.UserSettings, error)
}

func (m *planServiceMock) GenerateDailyPlan(ctx context.Context, input plan.GeneratePlanInput) (*plan.PlanGenerationResult, error) {
	return m.GenerateDailyPlanFunc(ctx, input)
}

func (m *planServiceMock) GetPlan(ctx context.Context, input plan.GetPlanInput) (*plan.PlanGenerationResult, error) {
	return m.GetPlanFunc(ctx, input)
}

func (m *planServiceMock) CompleteTopic(ctx context.Context, input plan.CompleteTopicInput) (*plan.CompleteTopicResult, error) {
	return m.CompleteTopicFunc(ctx, input)
}

func (m *planServiceMock) UncompleteTopic(ctx context.Context, input plan.UncompleteTopicInput) (*domain.DailyPlan, error) {
	return m.UncompleteTopicFunc(ctx, input)
}

func (m *planServiceMock) GetSettings(ctx context.Context) (*domain.UserSettings, error) {
	return m.GetSettingsFunc(ctx)
}

func (m *planServiceMock) UpdateSettings(ctx context.Context, input plan.UpdateSettingsInput) (*domain.UserSettings, error) {
	return m.UpdateSettingsFunc(ctx, input)
}

type subjectServiceMock struct {
	CreateSubjectFunc  func(ctx context.Context, input subject.CreateSubjectInput) (*subject.CreateSubjectResult, error)
	ListSubjectsFunc   func(ctx context.Context, input subject.ListSubjectsInput) ([]*domain.Subject, error)
	RenameSubjectFunc  func(ctx context.Context, input subject.RenameSubjectInput) (*domain.Subject, error)
	ArchiveSubjectFunc func(ctx context.Context, input subject.ArchiveSubjectInput) (*domain.Subject, error)
	RestoreSubjectFunc func(ctx context.Context, input subject.ArchiveSubjectInput) (*domain.Subject, error)
	DeleteSubjectFunc  func(ctx context.Context, input subject.DeleteSubjectInput) error
}

func (m *subjectServiceMock) CreateSubject(ctx context.Context, input subject.CreateSubjectInput) (*subject.CreateSubjectResult, error) {
	return m.CreateSubjectFunc(ctx, input)
}

func (m *subjectServiceMock) ListSubjects(ctx context.Context, input subject.ListSubjectsInput) ([]*domain.Subject, error) {
	return m.ListSubjectsFunc(ctx, input)
}

func (m *subjectServiceMock) RenameSubject(ctx context.Context, input subject.RenameSubjectInput) (*domain.Subject, error) {
	return m.RenameSubjectFunc(ctx, input)
}

func (m *subjectServiceMock) ArchiveSubject(ctx context.Context, input subject.ArchiveSubjectInput) (*domain.Subject, error) {
	return m.ArchiveSubjectFunc(ctx, input)
}

func (m *subjectServiceMock) RestoreSubject(ctx context.Context, input subject.ArchiveSubjectInput) (*domain.Subject, error) {
	return m.RestoreSubjectFunc(ctx, input)
}

func (m *subjectServiceMock) DeleteSubject(ctx context.Context, input subject.DeleteSubjectInput) error {
	return m.DeleteSubjectFunc(ctx, input)
}

type topicServiceMock struct {
	CreateTopicFunc      func(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	CreateTopicBatchFunc func(ctx context.Context, input topic.CreateTopicBatchInput) ([]*domain.Topic, error)
	ListTopicsFunc       func(ctx context.Context, input topic.ListTopicsInput) ([]*topic.TopicWithStatus, error)
	GetTopicFunc         func(ctx context.Context, input topic.GetTopicInput) (*topic.TopicDetails, error)
	UpdateTopicFunc      func(ctx context.Context, input topic.UpdateTopicInput) (*domain.Topic, error)
	DeleteTopicFunc      func(ctx context.Context, input topic.DeleteTopicInput) error
}

func (m *topicServiceMock) CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error) {
	return m.CreateTopicFunc(ctx, input)
}

func (m *topicServiceMock) CreateTopicBatch(ctx context.Context, input topic.CreateTopicBatchInput) ([]*domain.Topic, error) {
	return m.CreateTopicBatchFunc(ctx, input)
}

func (m *topicServiceMock) ListTopics(ctx context.Context, input topic.ListTopicsInput) ([]*topic.TopicWithStatus, error) {
	return m.ListTopicsFunc(ctx, input)
}

func (m *topicServiceMock) GetTopic(ctx context.Context, input topic.GetTopicInput) (*topic.TopicDetails, error) {
	return m.GetTopicFunc(ctx, input)
}

func (m *topicServiceMock) UpdateTopic(ctx context.Context, input topic.UpdateTopicInput) (*domain.Topic, error) {
	return m.UpdateTopicFunc(ctx, input)
}

func (m *topicServiceMock) DeleteTopic(ctx context.Context, input topic.DeleteTopicInput) error {
	return m.DeleteTopicFunc(ctx, input)
}
