package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/internal/service/plan"
	"github.com/heartmarshall/revisaquest-backend/internal/service/topic"
)

type subjectResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type topicResponse struct {
	ID               string    `json:"id"`
	SubjectID        string    `json:"subjectId"`
	Title            string    `json:"title"`
	Notes            string    `json:"notes,omitempty"`
	LastReviewedAt   *string   `json:"lastReviewedAt,omitempty"`
	NextReviewAt     *string   `json:"nextReviewAt,omitempty"`
	TotalReviews     int       `json:"totalReviews"`
	LastScorePercent *int      `json:"lastScorePercent,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type topicStatusResponse struct {
	topicResponse
	Status          string `json:"status"`
	DaysUntilReview *int   `json:"daysUntilReview,omitempty"`
}

type reviewLogResponse struct {
	ID             string    `json:"id"`
	TopicID        string    `json:"topicId"`
	ReviewedOn     string    `json:"reviewedOn"`
	CorrectAnswers int       `json:"correctAnswers"`
	ScorePercent   int       `json:"scorePercent"`
	NextReviewAt   string    `json:"nextReviewAt"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type planStatsResponse struct {
	Mandatory int `json:"mandatory"`
	New       int `json:"new"`
	Early     int `json:"early"`
}

type planResponse struct {
	ID                string             `json:"id"`
	Date              string             `json:"date"`
	SelectedTopicIDs  []string           `json:"selectedTopicIds"`
	CompletedTopicIDs []string           `json:"completedTopicIds"`
	IsNew             bool               `json:"isNew"`
	Stats             *planStatsResponse `json:"stats,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

type scheduleResponse struct {
	NextReviewAt    string `json:"nextReviewAt"`
	DaysUntilReview int    `json:"daysUntilReview"`
	Tier            string `json:"tier"`
}

type completeTopicResponse struct {
	Topic    topicResponse     `json:"topic"`
	Plan     planResponse      `json:"plan"`
	Log      reviewLogResponse `json:"log"`
	Schedule scheduleResponse  `json:"schedule"`
}

type settingsResponse struct {
	TopicsPerDay int       `json:"topicsPerDay"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toSubjectResponse(s *domain.Subject) subjectResponse {
	return subjectResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toTopicResponse(t *domain.Topic) topicResponse {
	return topicResponse{
		ID:               t.ID.String(),
		SubjectID:        t.SubjectID.String(),
		Title:            t.Title,
		Notes:            t.Notes,
		LastReviewedAt:   datePtr(t.LastReviewedAt),
		NextReviewAt:     datePtr(t.NextReviewAt),
		TotalReviews:     t.TotalReviews,
		LastScorePercent: t.LastScorePercent,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func toTopicStatusResponse(t *topic.TopicWithStatus) topicStatusResponse {
	return topicStatusResponse{
		topicResponse:   toTopicResponse(t.Topic),
		Status:          t.Status.String(),
		DaysUntilReview: t.DaysUntilReview,
	}
}

func toReviewLogResponse(l *domain.ReviewLog) reviewLogResponse {
	return reviewLogResponse{
		ID:             l.ID.String(),
		TopicID:        l.TopicID.String(),
		ReviewedOn:     l.ReviewedOn.String(),
		CorrectAnswers: l.CorrectAnswers,
		ScorePercent:   l.ScorePercent,
		NextReviewAt:   l.NextReviewAt.String(),
		Note:           l.Note,
		CreatedAt:      l.CreatedAt,
	}
}

func toPlanResponse(p *domain.DailyPlan, isNew bool, stats *domain.PlanStats) planResponse {
	resp := planResponse{
		ID:                p.ID.String(),
		Date:              p.Date.String(),
		SelectedTopicIDs:  uuidStrings(p.SelectedTopicIDs),
		CompletedTopicIDs: uuidStrings(p.CompletedTopicIDs),
		IsNew:             isNew,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if stats != nil {
		resp.Stats = &planStatsResponse{
			Mandatory: stats.Mandatory,
			New:       stats.New,
			Early:     stats.Early,
		}
	}
	return resp
}

func toScheduleResponse(s plan.ScheduleResult) scheduleResponse {
	return scheduleResponse{
		NextReviewAt:    s.NextReviewAt.String(),
		DaysUntilReview: s.DaysUntilReview,
		Tier:            s.Tier.String(),
	}
}

func toSettingsResponse(s *domain.UserSettings) settingsResponse {
	return settingsResponse{
		TopicsPerDay: s.TopicsPerDay,
		UpdatedAt:    s.UpdatedAt,
	}
}

func datePtr(d *domain.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
