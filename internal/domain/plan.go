package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DailyPlan is the bounded, date-scoped selection of topics a user studies
// on a given day. At most one plan exists per (user, date), enforced by a
// unique index, so a racing duplicate insert is rejected rather than stored.
//
// The plan references topic IDs, it does not own the topics: a topic deleted
// later simply becomes a dangling ID that lookups skip.
type DailyPlan struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Date              Date
	SelectedTopicIDs  []uuid.UUID
	CompletedTopicIDs []uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsCompleted reports whether the topic is in the plan's completed set.
func (p *DailyPlan) IsCompleted(topicID uuid.UUID) bool {
	return slices.Contains(p.CompletedTopicIDs, topicID)
}

// IsSelected reports whether the topic is part of the plan's selection.
func (p *DailyPlan) IsSelected(topicID uuid.UUID) bool {
	return slices.Contains(p.SelectedTopicIDs, topicID)
}

// PlanStats counts how many of a plan's topics fall into each selection
// bucket. Reported to the caller, never persisted: for an existing plan the
// stats are recomputed live from current topic state.
type PlanStats struct {
	Mandatory int
	New       int
	Early     int
}
