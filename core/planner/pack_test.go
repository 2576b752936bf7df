package planner

import (
	"testing"

	"github.com/kilianp07/pawpal/core/model"
)

func TestPackGreedyTradeOff(t *testing.T) {
	// The 50-minute priority-1 task is taken first; the 20-minute task
	// then exceeds the remaining 10 minutes and is rejected for good,
	// as is the 15-minute one. Greedy never revisits a rejection.
	sorted := []*model.Task{
		mustTask(t, "critical", 1, 50),
		mustTask(t, "walk", 2, 20),
		mustTask(t, "play", 2, 15),
	}
	scheduled, rejected := Pack(sorted, 60)
	assertOrder(t, scheduled, "critical")
	assertOrder(t, rejected, "walk", "play")
}

func TestPackLaterSmallerTaskStillFits(t *testing.T) {
	sorted := []*model.Task{
		mustTask(t, "a", 1, 50),
		mustTask(t, "b", 2, 20),
		mustTask(t, "c", 2, 10),
	}
	scheduled, rejected := Pack(sorted, 60)
	assertOrder(t, scheduled, "a", "c")
	assertOrder(t, rejected, "b")
}

func TestPackZeroBudget(t *testing.T) {
	sorted := []*model.Task{
		mustTask(t, "a", 1, 5),
		mustTask(t, "b", 2, 10),
	}
	scheduled, rejected := Pack(sorted, 0)
	if len(scheduled) != 0 {
		t.Fatalf("nothing fits a zero budget, got %v", names(scheduled))
	}
	assertOrder(t, rejected, "a", "b")
}

func TestPackEmptyInput(t *testing.T) {
	scheduled, rejected := Pack(nil, 120)
	if len(scheduled) != 0 || len(rejected) != 0 {
		t.Fatalf("empty input should produce empty partitions")
	}
}

func TestPackIncludesCompletedTasks(t *testing.T) {
	done := mustTask(t, "done", 1, 30)
	done.MarkCompleted()
	scheduled, rejected := Pack([]*model.Task{done}, 60)
	assertOrder(t, scheduled, "done")
	if len(rejected) != 0 {
		t.Fatalf("completed tasks are packed like any other")
	}
}

func TestPackPartitionIsExact(t *testing.T) {
	var input []*model.Task
	for i := 0; i < 100; i++ {
		input = append(input, mustTask(t, "task", 1+i%5, 5+i%23))
	}
	scheduled, rejected := Pack(input, 240)
	if len(scheduled)+len(rejected) != len(input) {
		t.Fatalf("partition size mismatch: %d + %d != %d", len(scheduled), len(rejected), len(input))
	}
	seen := make(map[*model.Task]int, len(input))
	for _, task := range scheduled {
		seen[task]++
	}
	for _, task := range rejected {
		seen[task]++
	}
	for _, task := range input {
		if seen[task] != 1 {
			t.Fatalf("task appears %d times in the partition", seen[task])
		}
	}
	used := 0
	for _, task := range scheduled {
		used += task.DurationMinutes()
	}
	if used > 240 {
		t.Fatalf("budget exceeded: %d minutes", used)
	}
}
