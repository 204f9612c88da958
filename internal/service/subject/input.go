package subject

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

const (
	maxNameLength     = 100
	maxTitleLength    = 200
	maxTopicsPerBatch = 100
)

// CreateSubjectInput holds the parameters for creating a subject.
// TopicTitles is a newline-separated block of topic titles to create along
// with the subject; blank lines are skipped.
type CreateSubjectInput struct {
	Name        string
	TopicTitles string
}

// Validate checks all fields and collects all errors.
func (i *CreateSubjectInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	titles := splitTitles(i.TopicTitles)
	if len(titles) > maxTopicsPerBatch {
		errs = append(errs, domain.FieldError{Field: "topic_titles", Message: "max 100 topics per subject creation"})
	}
	for _, title := range titles {
		if len(title) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "topic_titles", Message: "each title max 200 characters"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListSubjectsInput holds the parameters for listing subjects.
type ListSubjectsInput struct {
	// IncludeArchived also returns subjects with IsActive=false.
	IncludeArchived bool
}

// RenameSubjectInput holds the parameters for renaming a subject.
type RenameSubjectInput struct {
	SubjectID uuid.UUID
	Name      string
}

// Validate checks all fields and collects all errors.
func (i *RenameSubjectInput) Validate() error {
	var errs []domain.FieldError

	if i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ArchiveSubjectInput holds the parameters for archiving or restoring a subject.
type ArchiveSubjectInput struct {
	SubjectID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *ArchiveSubjectInput) Validate() error {
	if i.SubjectID == uuid.Nil {
		return domain.NewValidationError("subject_id", "required")
	}
	return nil
}

// DeleteSubjectInput holds the parameters for hard-deleting a subject.
type DeleteSubjectInput struct {
	SubjectID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *DeleteSubjectInput) Validate() error {
	if i.SubjectID == uuid.Nil {
		return domain.NewValidationError("subject_id", "required")
	}
	return nil
}
