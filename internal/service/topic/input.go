package topic

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

const (
	maxTitleLength    = 200
	maxNotesLength    = 5000
	maxTopicsPerBatch = 100
)

// CreateTopicInput holds the parameters for creating a single topic.
type CreateTopicInput struct {
	SubjectID uuid.UUID
	Title     string
	Notes     string
}

// Validate checks all fields and collects all errors.
func (i *CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if len(i.Notes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateTopicBatchInput holds the parameters for creating several topics
// under one subject at once.
type CreateTopicBatchInput struct {
	SubjectID uuid.UUID
	Titles    []string
}

// Validate checks all fields and collects all errors.
func (i *CreateTopicBatchInput) Validate() error {
	var errs []domain.FieldError

	if i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}
	if len(i.Titles) == 0 {
		errs = append(errs, domain.FieldError{Field: "titles", Message: "at least one title required"})
	}
	if len(i.Titles) > maxTopicsPerBatch {
		errs = append(errs, domain.FieldError{Field: "titles", Message: "max 100 titles per batch"})
	}
	for _, title := range i.Titles {
		trimmed := strings.TrimSpace(title)
		if trimmed == "" || len(trimmed) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "titles", Message: "each title must be 1 to 200 characters"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateTopicInput holds the parameters for editing topic content.
// Nil leaves a field unchanged; scheduling fields cannot be edited here.
type UpdateTopicInput struct {
	TopicID uuid.UUID
	Title   *string
	Notes   *string
}

// Validate checks all fields and collects all errors.
func (i *UpdateTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.Title == nil && i.Notes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListTopicsInput holds the parameters for listing topics.
// SubjectID nil means all subjects. Date is the target day used to classify
// each topic's scheduling status.
type ListTopicsInput struct {
	SubjectID *uuid.UUID
	Date      domain.Date
}

// Validate checks all fields and collects all errors.
func (i *ListTopicsInput) Validate() error {
	if err := i.Date.Validate(); err != nil {
		return domain.NewValidationError("date", "must be a YYYY-MM-DD calendar date")
	}
	return nil
}

// GetTopicInput holds the parameters for fetching one topic with history.
type GetTopicInput struct {
	TopicID uuid.UUID
	Date    domain.Date
}

// Validate checks all fields and collects all errors.
func (i *GetTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if err := i.Date.Validate(); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be a YYYY-MM-DD calendar date"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeleteTopicInput holds the parameters for deleting a topic.
type DeleteTopicInput struct {
	TopicID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *DeleteTopicInput) Validate() error {
	if i.TopicID == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}
	return nil
}
