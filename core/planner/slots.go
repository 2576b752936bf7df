package planner

import (
	"time"

	"github.com/kilianp07/pawpal/core/model"
)

// AssignSlots stamps each task in order with a contiguous time slot:
// the first task starts at dayStart, every following task starts where
// the previous one ended. Slots are half-open [start, end), so a
// back-to-back pair never overlaps. The resulting schedule is
// conflict-free by construction.
func AssignSlots(tasks []*model.Task, dayStart time.Time) {
	cursor := dayStart
	for _, t := range tasks {
		end := cursor.Add(time.Duration(t.DurationMinutes()) * time.Minute)
		t.SetSchedule(cursor, end)
		cursor = end
	}
}
