package goal

type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusAbandoned  Status = "abandoned"
)

var AllStatuses = []Status{
	StatusNotStarted,
	StatusInProgress,
	StatusCompleted,
	StatusAbandoned,
}

func (s Status) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// NextStatus computes the status after a progress change. Completed is
// sticky: reducing progress afterwards never reopens the goal. Abandoned is
// only ever set by an explicit user update, not here.
func NextStatus(current Status, progress, target float64) Status {
	if current == StatusCompleted {
		return StatusCompleted
	}
	if progress >= target {
		return StatusCompleted
	}
	if current == StatusNotStarted && progress > 0 {
		return StatusInProgress
	}
	return current
}
