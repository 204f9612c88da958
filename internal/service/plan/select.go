package plan

import (
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/internal/domain"
)

// SelectTopics picks at most capacity topics for the target date.
// Deterministic for identical inputs: no randomness, no clock reads.
//
// Priority order:
//  1. mandatory reviews (due/overdue): forced, in encounter order, never
//     skipped for diversity; when they alone exceed capacity the tail is
//     truncated in encounter order
//  2. new topics, preferring subjects not yet represented in the selection
//  3. upcoming reviews sorted by soonest date, same diversity preference
//
// Topics in the degenerate reviewed-but-undated state are not candidates.
// The result never exceeds capacity and never contains duplicates.
func SelectTopics(candidates []*domain.Topic, capacity int, target domain.Date) ([]uuid.UUID, domain.PlanStats) {
	selected := []uuid.UUID{}
	var stats domain.PlanStats
	if capacity <= 0 {
		return selected, stats
	}

	var mandatory, fresh, upcoming []*domain.Topic
	for _, t := range candidates {
		switch Classify(t, target) {
		case domain.TopicStatusMandatory:
			mandatory = append(mandatory, t)
		case domain.TopicStatusNew:
			fresh = append(fresh, t)
		case domain.TopicStatusEarly:
			upcoming = append(upcoming, t)
		}
	}

	// Soonest review first; stable so encounter order breaks ties.
	sort.SliceStable(upcoming, func(i, j int) bool {
		a, b := upcoming[i].NextReviewAt, upcoming[j].NextReviewAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})

	seen := make(map[uuid.UUID]bool, capacity)
	usedSubjects := make(map[uuid.UUID]bool)

	for _, t := range mandatory {
		if len(selected) >= capacity {
			break
		}
		if seen[t.ID] {
			continue
		}
		selected = append(selected, t.ID)
		seen[t.ID] = true
		usedSubjects[t.SubjectID] = true
		stats.Mandatory++
	}

	for len(selected) < capacity {
		t := pickDiverse(fresh, seen, usedSubjects)
		if t == nil {
			break
		}
		selected = append(selected, t.ID)
		seen[t.ID] = true
		usedSubjects[t.SubjectID] = true
		stats.New++
	}

	for len(selected) < capacity {
		t := pickDiverse(upcoming, seen, usedSubjects)
		if t == nil {
			break
		}
		selected = append(selected, t.ID)
		seen[t.ID] = true
		usedSubjects[t.SubjectID] = true
		stats.Early++
	}

	return selected, stats
}

// pickDiverse returns the first unselected topic whose subject has not yet
// contributed to the selection, falling back to the first unselected topic
// when every remaining candidate's subject is already represented.
func pickDiverse(pool []*domain.Topic, seen, usedSubjects map[uuid.UUID]bool) *domain.Topic {
	var fallback *domain.Topic
	for _, t := range pool {
		if seen[t.ID] {
			continue
		}
		if !usedSubjects[t.SubjectID] {
			return t
		}
		if fallback == nil {
			fallback = t
		}
	}
	return fallback
}
