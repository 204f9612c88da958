package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/internal/service/topic"
)

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	CreateTopicBatch(ctx context.Context, input topic.CreateTopicBatchInput) ([]*domain.Topic, error)
	ListTopics(ctx context.Context, input topic.ListTopicsInput) ([]*topic.TopicWithStatus, error)
	GetTopic(ctx context.Context, input topic.GetTopicInput) (*topic.TopicDetails, error)
	UpdateTopic(ctx context.Context, input topic.UpdateTopicInput) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, input topic.DeleteTopicInput) error
}

// TopicHandler serves topic REST endpoints.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
	loc *time.Location
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger, loc *time.Location) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topic"), loc: loc}
}

type createTopicRequest struct {
	SubjectID string `json:"subjectId"`
	Title     string `json:"title"`
	Notes     string `json:"notes"`
}

type createTopicBatchRequest struct {
	SubjectID string   `json:"subjectId"`
	Titles    []string `json:"titles"`
}

type updateTopicRequest struct {
	Title *string `json:"title"`
	Notes *string `json:"notes"`
}

type topicDetailsResponse struct {
	topicStatusResponse
	History []reviewLogResponse `json:"history"`
}

// Create handles POST /api/v1/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subject id")
		return
	}

	created, err := h.svc.CreateTopic(r.Context(), topic.CreateTopicInput{
		SubjectID: subjectID,
		Title:     req.Title,
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(created))
}

// CreateBatch handles POST /api/v1/topics/batch.
func (h *TopicHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req createTopicBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subject id")
		return
	}

	created, err := h.svc.CreateTopicBatch(r.Context(), topic.CreateTopicBatchInput{
		SubjectID: subjectID,
		Titles:    req.Titles,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	resp := make([]topicResponse, 0, len(created))
	for _, t := range created {
		resp = append(resp, toTopicResponse(t))
	}
	writeJSON(w, http.StatusCreated, resp)
}

// List handles GET /api/v1/topics. Optional subject_id scopes the listing;
// optional date (default today) anchors status classification.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	input := topic.ListTopicsInput{Date: h.resolveDate(r.URL.Query().Get("date"))}

	if raw := r.URL.Query().Get("subject_id"); raw != "" {
		subjectID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid subject id")
			return
		}
		input.SubjectID = &subjectID
	}

	topics, err := h.svc.ListTopics(r.Context(), input)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	resp := make([]topicStatusResponse, 0, len(topics))
	for _, t := range topics {
		resp = append(resp, toTopicStatusResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	details, err := h.svc.GetTopic(r.Context(), topic.GetTopicInput{
		TopicID: id,
		Date:    h.resolveDate(r.URL.Query().Get("date")),
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	resp := topicDetailsResponse{
		topicStatusResponse: topicStatusResponse{
			topicResponse:   toTopicResponse(details.Topic),
			Status:          details.Status.String(),
			DaysUntilReview: details.DaysUntilReview,
		},
		History: make([]reviewLogResponse, 0, len(details.History)),
	}
	for _, l := range details.History {
		resp.History = append(resp.History, toReviewLogResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PATCH /api/v1/topics/{id}. Only title and notes are
// editable; scheduling state belongs to the completion flow.
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	var req updateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateTopic(r.Context(), topic.UpdateTopicInput{
		TopicID: id,
		Title:   req.Title,
		Notes:   req.Notes,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(updated))
}

// Delete handles DELETE /api/v1/topics/{id}.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	if err := h.svc.DeleteTopic(r.Context(), topic.DeleteTopicInput{TopicID: id}); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TopicHandler) resolveDate(raw string) domain.Date {
	if raw == "" || raw == "today" {
		return domain.DateOf(time.Now().In(h.loc))
	}
	return domain.Date(raw)
}
