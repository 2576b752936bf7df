package planner

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kilianp07/pawpal/core/model"
)

// Policy names a task ordering strategy.
type Policy string

const (
	// PriorityFirst orders by ascending priority number (1 before 5).
	PriorityFirst Policy = "priority_first"
	// DurationFirst orders shortest task first.
	DurationFirst Policy = "duration_first"
	// DurationDescending orders longest task first.
	DurationDescending Policy = "duration_descending"
	// SmartCombo blends priority and duration so that priority always
	// dominates and duration only breaks ties within a priority band.
	SmartCombo Policy = "smart_combo"
	// ByPet groups tasks by pet name in lexicographic order.
	ByPet Policy = "by_pet"
)

// ErrUnknownPolicy is returned when a sort policy name is not
// recognised. This signals a configuration mistake, not bad task data.
var ErrUnknownPolicy = errors.New("unknown sort policy")

// Policies lists every supported policy name.
func Policies() []Policy {
	return []Policy{PriorityFirst, DurationFirst, DurationDescending, SmartCombo, ByPet}
}

// comboPriorityWeight must exceed any duration that fits within a day
// (1440 minutes) so a priority difference can never be outweighed by a
// duration difference.
const comboPriorityWeight = 1440

func comboScore(t *model.Task) int {
	return t.Priority()*comboPriorityWeight + t.DurationMinutes()
}

// Sort returns a new slice holding the same tasks ordered under the
// given policy. The input slice is never modified. All policies use a
// stable sort, so tasks comparing equal keep their relative input
// order.
func Sort(tasks []*model.Task, policy Policy) ([]*model.Task, error) {
	out := append([]*model.Task(nil), tasks...)
	switch policy {
	case PriorityFirst:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority() < out[j].Priority()
		})
	case DurationFirst:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DurationMinutes() < out[j].DurationMinutes()
		})
	case DurationDescending:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DurationMinutes() > out[j].DurationMinutes()
		})
	case SmartCombo:
		sort.SliceStable(out, func(i, j int) bool {
			return comboScore(out[i]) < comboScore(out[j])
		})
	case ByPet:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PetName() < out[j].PetName()
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
	return out, nil
}
