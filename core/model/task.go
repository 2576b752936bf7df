package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskType classifies a care task. The common types are listed below but
// the type is an open string so callers can introduce their own.
type TaskType string

const (
	TypeFeeding    TaskType = "feeding"
	TypeWalk       TaskType = "walk"
	TypeMedication TaskType = "medication"
	TypeGrooming   TaskType = "grooming"
	TypeEnrichment TaskType = "enrichment"
	TypeCleaning   TaskType = "cleaning"
)

// Recurrence describes how often a task repeats.
type Recurrence string

const (
	Daily  Recurrence = "daily"
	Weekly Recurrence = "weekly"
	Once   Recurrence = "once"
)

// Task is a single care activity for a pet. Its definition (name, type,
// duration, priority, recurrence) is validated once at construction and
// never changes afterwards; only the planning state (completed flag and
// the assigned time slot) is mutable, through dedicated methods.
type Task struct {
	id              uuid.UUID
	name            string
	taskType        TaskType
	durationMinutes int
	priority        int
	recurrence      Recurrence
	pet             *Pet

	completed      bool
	scheduledStart time.Time
	scheduledEnd   time.Time
}

// NewTask validates and creates a task. Duration must be positive and
// priority must be in [1,5], 1 being the most critical. The task is not
// attached to any pet until Pet.AddTask is called.
func NewTask(name string, taskType TaskType, durationMinutes, priority int, recurrence Recurrence) (*Task, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationErr("task name", "must not be empty")
	}
	if durationMinutes <= 0 {
		return nil, validationErr("duration", "must be positive")
	}
	if priority < 1 || priority > 5 {
		return nil, validationErr("priority", "must be between 1 (highest) and 5 (lowest)")
	}
	if recurrence == "" {
		recurrence = Daily
	}
	return &Task{
		id:              uuid.New(),
		name:            name,
		taskType:        taskType,
		durationMinutes: durationMinutes,
		priority:        priority,
		recurrence:      recurrence,
	}, nil
}

func (t *Task) ID() uuid.UUID          { return t.id }
func (t *Task) Name() string           { return t.name }
func (t *Task) Type() TaskType         { return t.taskType }
func (t *Task) DurationMinutes() int   { return t.durationMinutes }
func (t *Task) Priority() int          { return t.priority }
func (t *Task) Recurrence() Recurrence { return t.recurrence }

// Pet returns the pet this task belongs to, or nil if it has not been
// added to one yet.
func (t *Task) Pet() *Pet { return t.pet }

// PetName returns the owning pet's name, or "" for an unattached task.
func (t *Task) PetName() string {
	if t.pet == nil {
		return ""
	}
	return t.pet.Name()
}

// HighPriority reports whether the task is critical (priority 1 or 2).
func (t *Task) HighPriority() bool { return t.priority <= 2 }

func (t *Task) Completed() bool { return t.completed }

// ToggleCompleted flips the completion flag.
func (t *Task) ToggleCompleted() { t.completed = !t.completed }

// MarkCompleted sets the completion flag.
func (t *Task) MarkCompleted() { t.completed = true }

// MarkIncomplete resets the completion flag.
func (t *Task) MarkIncomplete() { t.completed = false }

// SetSchedule assigns the task's time slot. Callers normally leave this
// to the slot assigner; setting it directly is useful when validating
// externally produced schedules.
func (t *Task) SetSchedule(start, end time.Time) {
	t.scheduledStart = start
	t.scheduledEnd = end
}

// ClearSchedule removes any assigned time slot.
func (t *Task) ClearSchedule() {
	t.scheduledStart = time.Time{}
	t.scheduledEnd = time.Time{}
}

// Scheduled reports whether the task carries a complete time slot.
func (t *Task) Scheduled() bool {
	return !t.scheduledStart.IsZero() && !t.scheduledEnd.IsZero()
}

func (t *Task) ScheduledStart() time.Time { return t.scheduledStart }
func (t *Task) ScheduledEnd() time.Time   { return t.scheduledEnd }
