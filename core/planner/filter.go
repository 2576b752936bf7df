package planner

import "github.com/kilianp07/pawpal/core/model"

// Filters return the matching subset of tasks in their original order.
// Each filter does one thing; callers compose them by chaining.

// ByPetName keeps tasks belonging to the named pet.
func ByPetName(tasks []*model.Task, name string) []*model.Task {
	var out []*model.Task
	for _, t := range tasks {
		if t.PetName() == name {
			out = append(out, t)
		}
	}
	return out
}

// ByCompletion keeps tasks whose completion flag equals done.
func ByCompletion(tasks []*model.Task, done bool) []*model.Task {
	var out []*model.Task
	for _, t := range tasks {
		if t.Completed() == done {
			out = append(out, t)
		}
	}
	return out
}

// ByPriorityRange keeps tasks with low <= priority <= high.
func ByPriorityRange(tasks []*model.Task, low, high int) []*model.Task {
	var out []*model.Task
	for _, t := range tasks {
		if t.Priority() >= low && t.Priority() <= high {
			out = append(out, t)
		}
	}
	return out
}

// ByType keeps tasks of the given type.
func ByType(tasks []*model.Task, taskType model.TaskType) []*model.Task {
	var out []*model.Task
	for _, t := range tasks {
		if t.Type() == taskType {
			out = append(out, t)
		}
	}
	return out
}

// HighPriority keeps critical tasks (priority 1 or 2).
func HighPriority(tasks []*model.Task) []*model.Task {
	return ByPriorityRange(tasks, 1, 2)
}
