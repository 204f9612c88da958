package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/internal/service/plan"
)

// planService defines the minimal interface needed by PlanHandler.
type planService interface {
	GenerateDailyPlan(ctx context.Context, input plan.GeneratePlanInput) (*plan.PlanGenerationResult, error)
	GetPlan(ctx context.Context, input plan.GetPlanInput) (*plan.PlanGenerationResult, error)
	CompleteTopic(ctx context.Context, input plan.CompleteTopicInput) (*plan.CompleteTopicResult, error)
	UncompleteTopic(ctx context.Context, input plan.UncompleteTopicInput) (*domain.DailyPlan, error)
	GetSettings(ctx context.Context) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, input plan.UpdateSettingsInput) (*domain.UserSettings, error)
}

// PlanHandler serves daily-plan and settings REST endpoints.
type PlanHandler struct {
	svc planService
	log *slog.Logger
	loc *time.Location
}

// NewPlanHandler creates a PlanHandler. The location resolves "today" for
// requests that omit an explicit date.
func NewPlanHandler(svc planService, logger *slog.Logger, loc *time.Location) *PlanHandler {
	return &PlanHandler{svc: svc, log: logger.With("handler", "plan"), loc: loc}
}

type generatePlanRequest struct {
	Date     string `json:"date"`
	Capacity int    `json:"capacity"`
}

type completeTopicRequest struct {
	TopicID        string `json:"topicId"`
	CorrectAnswers int    `json:"correctAnswers"`
	Note           string `json:"note"`
	Date           string `json:"date"`
}

type uncompleteTopicRequest struct {
	TopicID string `json:"topicId"`
}

type updateSettingsRequest struct {
	TopicsPerDay int `json:"topicsPerDay"`
}

// Generate handles POST /api/v1/plans/generate. Returns 201 for a freshly
// created plan and 200 when the day's plan already existed.
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.GenerateDailyPlan(r.Context(), plan.GeneratePlanInput{
		Date:     h.resolveDate(req.Date),
		Capacity: req.Capacity,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	status := http.StatusOK
	if result.IsNew {
		status = http.StatusCreated
	}
	writeJSON(w, status, toPlanResponse(result.Plan, result.IsNew, &result.Stats))
}

// Get handles GET /api/v1/plans/{date}. The literal "today" resolves to the
// current date in the configured timezone.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetPlan(r.Context(), plan.GetPlanInput{
		Date: h.resolveDate(r.PathValue("date")),
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(result.Plan, result.IsNew, &result.Stats))
}

// Complete handles POST /api/v1/plans/{id}/complete.
func (h *PlanHandler) Complete(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	var req completeTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	topicID, err := uuid.Parse(req.TopicID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	result, err := h.svc.CompleteTopic(r.Context(), plan.CompleteTopicInput{
		PlanID:         planID,
		TopicID:        topicID,
		CorrectAnswers: req.CorrectAnswers,
		Note:           req.Note,
		Date:           h.resolveDate(req.Date),
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, completeTopicResponse{
		Topic:    toTopicResponse(result.Topic),
		Plan:     toPlanResponse(result.Plan, false, nil),
		Log:      toReviewLogResponse(result.Log),
		Schedule: toScheduleResponse(result.Schedule),
	})
}

// Uncomplete handles POST /api/v1/plans/{id}/uncomplete.
func (h *PlanHandler) Uncomplete(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	var req uncompleteTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	topicID, err := uuid.Parse(req.TopicID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	updated, err := h.svc.UncompleteTopic(r.Context(), plan.UncompleteTopicInput{
		PlanID:  planID,
		TopicID: topicID,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(updated, false, nil))
}

// GetSettings handles GET /api/v1/settings.
func (h *PlanHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.GetSettings(r.Context())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}

// UpdateSettings handles PUT /api/v1/settings.
func (h *PlanHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.svc.UpdateSettings(r.Context(), plan.UpdateSettingsInput{
		TopicsPerDay: req.TopicsPerDay,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}

// resolveDate maps an empty value or "today" to the current date in the
// configured timezone. Anything else passes through and is validated by the
// service layer.
func (h *PlanHandler) resolveDate(raw string) domain.Date {
	if raw == "" || raw == "today" {
		return domain.DateOf(time.Now().In(h.loc))
	}
	return domain.Date(raw)
}
