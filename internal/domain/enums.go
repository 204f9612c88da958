package domain

// TopicStatus is the scheduling state of a topic relative to a target date.
type TopicStatus string

const (
	// TopicStatusNew marks a topic that has never been reviewed.
	// New takes precedence over a due date even when one is set.
	TopicStatusNew TopicStatus = "NEW"
	// TopicStatusMandatory marks a topic whose review is due or overdue.
	TopicStatusMandatory TopicStatus = "MANDATORY"
	// TopicStatusEarly marks a topic with a scheduled review in the future.
	TopicStatusEarly TopicStatus = "EARLY"
	// TopicStatusFuture marks a reviewed topic with no scheduled review,
	// a state that the normal completion flow never produces.
	TopicStatusFuture TopicStatus = "FUTURE"
)

func (s TopicStatus) String() string { return string(s) }

func (s TopicStatus) IsValid() bool {
	switch s {
	case TopicStatusNew, TopicStatusMandatory, TopicStatusEarly, TopicStatusFuture:
		return true
	}
	return false
}

// PerformanceTier groups a quiz score into one of three bands that drive
// the review interval.
type PerformanceTier string

const (
	PerformanceTierLow    PerformanceTier = "LOW"    // score < 70%
	PerformanceTierMedium PerformanceTier = "MEDIUM" // 70% <= score < 80%
	PerformanceTierHigh   PerformanceTier = "HIGH"   // score >= 80%
)

func (p PerformanceTier) String() string { return string(p) }

func (p PerformanceTier) IsValid() bool {
	switch p {
	case PerformanceTierLow, PerformanceTierMedium, PerformanceTierHigh:
		return true
	}
	return false
}
