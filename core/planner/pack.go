package planner

import "github.com/kilianp07/pawpal/core/model"

// Pack greedily partitions an already-sorted task sequence against the
// available time budget in minutes. Tasks are taken in order; a task
// that does not fit the remaining budget is rejected and never
// reconsidered, even if a later, shorter task still fits. That keeps
// the configured ordering authoritative: the packer never skips ahead
// to save room for a smaller task.
//
// Rejected tasks are an expected outcome, not an error. Completed tasks
// are packed like any other; excluding them is a filter the caller
// applies beforehand.
func Pack(sorted []*model.Task, availableMinutes int) (scheduled, rejected []*model.Task) {
	remaining := availableMinutes
	for _, t := range sorted {
		if t.DurationMinutes() <= remaining {
			scheduled = append(scheduled, t)
			remaining -= t.DurationMinutes()
		} else {
			rejected = append(rejected, t)
		}
	}
	return scheduled, rejected
}
