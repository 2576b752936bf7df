package planner

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/pawpal/core/logger"
	"github.com/kilianp07/pawpal/core/model"
)

// Config defines planning parameters, typically loaded from the
// configuration file.
type Config struct {
	// Policy selects the task ordering strategy.
	Policy Policy `json:"policy"`
	// ExcludeCompleted filters already-completed tasks out before
	// packing.
	ExcludeCompleted bool `json:"exclude_completed"`
	// CrossPetAdvisory enables owner_attention conflict advisories.
	CrossPetAdvisory bool `json:"cross_pet_advisory"`
}

// Stats summarises one planning run.
type Stats struct {
	TaskCount            int     `json:"task_count"`
	TimeUsedMinutes      int     `json:"time_used_minutes"`
	TimeAvailableMinutes int     `json:"time_available_minutes"`
	EfficiencyPercent    float64 `json:"efficiency_percent"`
	RejectedCount        int     `json:"rejected_count"`
	MeanTaskMinutes      float64 `json:"mean_task_minutes"`
}

// Plan is the result of one planning run: the packed tasks with their
// time slots, the tasks that did not fit, and summary statistics.
type Plan struct {
	Scheduled []*model.Task
	Rejected  []*model.Task
	Stats     Stats
}

// Planner runs the full sort/pack/assign pipeline for one owner.
type Planner struct {
	cfg Config
	log logger.Logger
}

// New creates a Planner. A nil logger is replaced by a no-op one.
func New(cfg Config, log logger.Logger) *Planner {
	if log == nil {
		log = logger.Nop{}
	}
	return &Planner{cfg: cfg, log: log}
}

// GeneratePlan aggregates all tasks of the owner's pets, orders them
// under the configured policy, packs them into the owner's daily time
// budget and assigns back-to-back slots starting at dayStart. Stale
// slots from earlier runs are cleared first, so a plan only ever
// carries its own assignments.
func (p *Planner) GeneratePlan(owner *model.Owner, dayStart time.Time) (Plan, error) {
	tasks := owner.AllTasks()
	for _, t := range tasks {
		t.ClearSchedule()
	}
	if p.cfg.ExcludeCompleted {
		tasks = ByCompletion(tasks, false)
	}

	sorted, err := Sort(tasks, p.cfg.Policy)
	if err != nil {
		return Plan{}, err
	}

	scheduled, rejected := Pack(sorted, owner.AvailableMinutes())
	AssignSlots(scheduled, dayStart)

	plan := Plan{
		Scheduled: scheduled,
		Rejected:  rejected,
		Stats:     buildStats(scheduled, rejected, owner.AvailableMinutes()),
	}
	p.log.Debugw("plan generated", map[string]any{
		"owner":     owner.Name(),
		"policy":    string(p.cfg.Policy),
		"scheduled": len(scheduled),
		"rejected":  len(rejected),
	})
	return plan, nil
}

// Conflicts runs conflict detection with the configured cross-pet
// advisory setting.
func (p *Planner) Conflicts(tasks []*model.Task) []Conflict {
	return Detector{CrossPetAdvisory: p.cfg.CrossPetAdvisory}.Detect(tasks)
}

func buildStats(scheduled, rejected []*model.Task, availableMinutes int) Stats {
	used := 0
	durations := make([]float64, 0, len(scheduled))
	for _, t := range scheduled {
		used += t.DurationMinutes()
		durations = append(durations, float64(t.DurationMinutes()))
	}
	s := Stats{
		TaskCount:            len(scheduled),
		TimeUsedMinutes:      used,
		TimeAvailableMinutes: availableMinutes,
		RejectedCount:        len(rejected),
	}
	if availableMinutes > 0 {
		s.EfficiencyPercent = float64(used) / float64(availableMinutes) * 100
	}
	if len(durations) > 0 {
		s.MeanTaskMinutes = stat.Mean(durations, nil)
	}
	return s
}
