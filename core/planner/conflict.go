package planner

import (
	"fmt"

	"github.com/kilianp07/pawpal/core/model"
)

// ConflictKind classifies a scheduling conflict.
type ConflictKind string

const (
	// ConflictSamePet marks two overlapping tasks for the same pet. A
	// pet cannot do two things at once, so this is always a hard
	// conflict.
	ConflictSamePet ConflictKind = "same_pet"
	// ConflictOwnerAttention marks two overlapping tasks for different
	// pets. One owner cannot supervise both at the same time, but
	// whether that matters depends on the household, so it is reported
	// as an advisory.
	ConflictOwnerAttention ConflictKind = "owner_attention"
)

// Conflict is a pair of scheduled tasks whose time windows overlap.
type Conflict struct {
	A      *model.Task
	B      *model.Task
	Kind   ConflictKind
	Reason string
}

// Detector finds overlapping time slots in a set of tasks. Tasks
// without a complete schedule cannot conflict and are skipped.
type Detector struct {
	// CrossPetAdvisory enables owner_attention advisories for
	// overlapping tasks that belong to different pets. Same-pet
	// overlaps are always reported.
	CrossPetAdvisory bool
}

// Detect compares every pair of scheduled tasks and returns the
// conflicting ones in input order. Two slots overlap iff
// a.start < b.end && b.start < a.end; slots that merely touch do not
// conflict. All-pairs comparison is fine at daily task counts.
func (d Detector) Detect(tasks []*model.Task) []Conflict {
	var scheduled []*model.Task
	for _, t := range tasks {
		if t.Scheduled() {
			scheduled = append(scheduled, t)
		}
	}

	var conflicts []Conflict
	for i := 0; i < len(scheduled); i++ {
		for j := i + 1; j < len(scheduled); j++ {
			a, b := scheduled[i], scheduled[j]
			if !overlaps(a, b) {
				continue
			}
			samePet := a.Pet() != nil && a.Pet() == b.Pet()
			if !samePet && !d.CrossPetAdvisory {
				continue
			}
			kind := ConflictOwnerAttention
			reason := fmt.Sprintf("%q and %q overlap: one owner cannot attend %s and %s at the same time",
				a.Name(), b.Name(), a.PetName(), b.PetName())
			if samePet {
				kind = ConflictSamePet
				reason = fmt.Sprintf("%q and %q overlap for %s", a.Name(), b.Name(), a.PetName())
			}
			conflicts = append(conflicts, Conflict{A: a, B: b, Kind: kind, Reason: reason})
		}
	}
	return conflicts
}

func overlaps(a, b *model.Task) bool {
	return a.ScheduledStart().Before(b.ScheduledEnd()) && b.ScheduledStart().Before(a.ScheduledEnd())
}
