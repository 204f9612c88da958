package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
	"github.com/heartmarshall/revisaquest-backend/internal/service/subject"
)

// subjectService defines the minimal interface needed by SubjectHandler.
type subjectService interface {
	CreateSubject(ctx context.Context, input subject.CreateSubjectInput) (*subject.CreateSubjectResult, error)
	ListSubjects(ctx context.Context, input subject.ListSubjectsInput) ([]*domain.Subject, error)
	RenameSubject(ctx context.Context, input subject.RenameSubjectInput) (*domain.Subject, error)
	ArchiveSubject(ctx context.Context, input subject.ArchiveSubjectInput) (*domain.Subject, error)
	RestoreSubject(ctx context.Context, input subject.ArchiveSubjectInput) (*domain.Subject, error)
	DeleteSubject(ctx context.Context, input subject.DeleteSubjectInput) error
}

// SubjectHandler serves subject REST endpoints.
type SubjectHandler struct {
	svc subjectService
	log *slog.Logger
}

// NewSubjectHandler creates a SubjectHandler.
func NewSubjectHandler(svc subjectService, logger *slog.Logger) *SubjectHandler {
	return &SubjectHandler{svc: svc, log: logger.With("handler", "subject")}
}

type createSubjectRequest struct {
	Name string `json:"name"`
	// Topics is a newline-separated block; each non-blank line becomes a
	// topic title.
	Topics string `json:"topics"`
}

type createSubjectResponse struct {
	Subject subjectResponse `json:"subject"`
	Topics  []topicResponse `json:"topics"`
}

type renameSubjectRequest struct {
	Name string `json:"name"`
}

// Create handles POST /api/v1/subjects.
func (h *SubjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.CreateSubject(r.Context(), subject.CreateSubjectInput{
		Name:        req.Name,
		TopicTitles: req.Topics,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	resp := createSubjectResponse{
		Subject: toSubjectResponse(result.Subject),
		Topics:  make([]topicResponse, 0, len(result.Topics)),
	}
	for _, t := range result.Topics {
		resp.Topics = append(resp.Topics, toTopicResponse(t))
	}
	writeJSON(w, http.StatusCreated, resp)
}

// List handles GET /api/v1/subjects. Archived subjects are included only
// with ?include_archived=true.
func (h *SubjectHandler) List(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.svc.ListSubjects(r.Context(), subject.ListSubjectsInput{
		IncludeArchived: r.URL.Query().Get("include_archived") == "true",
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	resp := make([]subjectResponse, 0, len(subjects))
	for _, s := range subjects {
		resp = append(resp, toSubjectResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Rename handles PATCH /api/v1/subjects/{id}.
func (h *SubjectHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subject id")
		return
	}

	var req renameSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.RenameSubject(r.Context(), subject.RenameSubjectInput{
		SubjectID: id,
		Name:      req.Name,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubjectResponse(updated))
}

// Archive handles POST /api/v1/subjects/{id}/archive.
func (h *SubjectHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, h.svc.ArchiveSubject)
}

// Restore handles POST /api/v1/subjects/{id}/restore.
func (h *SubjectHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, h.svc.RestoreSubject)
}

func (h *SubjectHandler) setActive(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, subject.ArchiveSubjectInput) (*domain.Subject, error),
) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subject id")
		return
	}

	updated, err := op(r.Context(), subject.ArchiveSubjectInput{SubjectID: id})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubjectResponse(updated))
}

// Delete handles DELETE /api/v1/subjects/{id}. The subject and all its
// topics and review logs are removed permanently.
func (h *SubjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subject id")
		return
	}

	if err := h.svc.DeleteSubject(r.Context(), subject.DeleteSubjectInput{SubjectID: id}); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
