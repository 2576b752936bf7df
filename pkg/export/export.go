// Package export renders a generated plan as JSON, CSV or a
// human-readable text summary.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kilianp07/pawpal/core/model"
	"github.com/kilianp07/pawpal/core/planner"
)

// Entry is the serializable view of one task in a plan.
type Entry struct {
	Task            string `json:"task"`
	Pet             string `json:"pet"`
	Type            string `json:"type"`
	Priority        int    `json:"priority"`
	DurationMinutes int    `json:"duration_minutes"`
	Completed       bool   `json:"completed"`
	Start           string `json:"start,omitempty"`
	End             string `json:"end,omitempty"`
}

type document struct {
	Scheduled []Entry       `json:"scheduled"`
	Rejected  []Entry       `json:"rejected"`
	Stats     planner.Stats `json:"stats"`
}

func entry(t *model.Task) Entry {
	e := Entry{
		Task:            t.Name(),
		Pet:             t.PetName(),
		Type:            string(t.Type()),
		Priority:        t.Priority(),
		DurationMinutes: t.DurationMinutes(),
		Completed:       t.Completed(),
	}
	if t.Scheduled() {
		e.Start = t.ScheduledStart().Format(time.RFC3339)
		e.End = t.ScheduledEnd().Format(time.RFC3339)
	}
	return e
}

func entries(tasks []*model.Task) []Entry {
	out := make([]Entry, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, entry(t))
	}
	return out
}

// WriteJSON writes the plan to w in JSON format.
func WriteJSON(w io.Writer, plan planner.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(document{
		Scheduled: entries(plan.Scheduled),
		Rejected:  entries(plan.Rejected),
		Stats:     plan.Stats,
	})
}

// WriteCSV writes the plan to w in CSV format. Scheduled rows come
// first, rejected rows follow with empty time columns.
func WriteCSV(w io.Writer, plan planner.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"status", "task", "pet", "type", "priority", "duration_min", "start", "end"}); err != nil {
		return err
	}
	write := func(status string, tasks []*model.Task) error {
		for _, t := range tasks {
			e := entry(t)
			rec := []string{
				status,
				e.Task,
				e.Pet,
				e.Type,
				strconv.Itoa(e.Priority),
				strconv.Itoa(e.DurationMinutes),
				e.Start,
				e.End,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	}
	if err := write("scheduled", plan.Scheduled); err != nil {
		return err
	}
	if err := write("rejected", plan.Rejected); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummary writes a human-readable daily schedule for the owner.
func WriteSummary(w io.Writer, owner *model.Owner, plan planner.Plan) error {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "DAILY SCHEDULE FOR %s\n", strings.ToUpper(owner.Name()))
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "Available time: %d minutes\n", plan.Stats.TimeAvailableMinutes)
	fmt.Fprintf(&b, "Scheduled: %d minutes (%.1f%% of budget)\n\n", plan.Stats.TimeUsedMinutes, plan.Stats.EfficiencyPercent)

	for i, t := range plan.Scheduled {
		status := "[ ]"
		if t.Completed() {
			status = "[x]"
		}
		fmt.Fprintf(&b, "%d. %s [%s] %s\n", i+1, status, priorityLabel(t), t.Name())
		fmt.Fprintf(&b, "   Pet: %s | %s-%s | %d min | %s\n",
			t.PetName(),
			t.ScheduledStart().Format("15:04"),
			t.ScheduledEnd().Format("15:04"),
			t.DurationMinutes(),
			t.Type())
	}

	if len(plan.Rejected) > 0 {
		fmt.Fprintf(&b, "\nCould not fit in today's budget:\n")
		for _, t := range plan.Rejected {
			fmt.Fprintf(&b, "- %s (%d min, priority %d) for %s\n",
				t.Name(), t.DurationMinutes(), t.Priority(), t.PetName())
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func priorityLabel(t *model.Task) string {
	switch {
	case t.HighPriority():
		return "HIGH"
	case t.Priority() == 3:
		return "MEDIUM"
	default:
		return "LOW"
	}
}
