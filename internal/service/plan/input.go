package plan

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

// maxPlanCapacity caps how many topics a single daily plan may hold.
const maxPlanCapacity = 50

// maxNoteLength bounds free-text review notes.
const maxNoteLength = 2000

// GeneratePlanInput holds the parameters for generating (or fetching) the
// daily plan for a date.
type GeneratePlanInput struct {
	Date domain.Date
	// Capacity overrides the user's topics-per-day setting when > 0.
	Capacity int
}

// Validate checks all fields and collects all errors.
func (i *GeneratePlanInput) Validate() error {
	var errs []domain.FieldError

	if err := i.Date.Validate(); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be a YYYY-MM-DD calendar date"})
	}
	if i.Capacity < 0 || i.Capacity > maxPlanCapacity {
		errs = append(errs, domain.FieldError{Field: "capacity", Message: "must be between 0 and 50"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetPlanInput holds the parameters for fetching an existing plan.
type GetPlanInput struct {
	Date domain.Date
}

// Validate checks all fields and collects all errors.
func (i *GetPlanInput) Validate() error {
	if err := i.Date.Validate(); err != nil {
		return domain.NewValidationError("date", "must be a YYYY-MM-DD calendar date")
	}
	return nil
}

// CompleteTopicInput holds the parameters for completing a topic review.
type CompleteTopicInput struct {
	PlanID         uuid.UUID
	TopicID        uuid.UUID
	CorrectAnswers int
	Note           string
	// Date is the calendar day of the review, resolved once by the caller.
	Date domain.Date
}

// Validate checks all fields and collects all errors.
func (i *CompleteTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_id", Message: "required"})
	}
	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.CorrectAnswers < 0 || i.CorrectAnswers > domain.QuestionsPerTopic {
		errs = append(errs, domain.FieldError{Field: "correct_answers", Message: "must be between 0 and 10"})
	}
	if len(i.Note) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long (max 2000)"})
	}
	if err := i.Date.Validate(); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be a YYYY-MM-DD calendar date"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UncompleteTopicInput holds the parameters for un-completing a topic.
type UncompleteTopicInput struct {
	PlanID  uuid.UUID
	TopicID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *UncompleteTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_id", Message: "required"})
	}
	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
