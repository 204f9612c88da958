package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subject is a named grouping of topics owned by a user.
// Archiving a subject flips IsActive to false: its topics stop appearing in
// plan generation but all historical data (topics, review logs, past plans)
// is retained.
type Subject struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubjectUpdateParams holds the mutable subject fields. Nil means "leave as is".
type SubjectUpdateParams struct {
	Name     *string
	IsActive *bool
}
