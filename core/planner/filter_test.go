package planner

import (
	"testing"

	"github.com/kilianp07/pawpal/core/model"
)

func filterFixture(t *testing.T) []*model.Task {
	t.Helper()
	max, err := model.NewPet("Max", "Dog", 5)
	if err != nil {
		t.Fatalf("new pet: %v", err)
	}
	whiskers, err := model.NewPet("Whiskers", "Cat", 3)
	if err != nil {
		t.Fatalf("new pet: %v", err)
	}

	meds, _ := model.NewTask("meds", model.TypeMedication, 5, 1, model.Daily)
	walk, _ := model.NewTask("walk", model.TypeWalk, 30, 2, model.Daily)
	brush, _ := model.NewTask("brush", model.TypeGrooming, 15, 4, model.Weekly)
	play, _ := model.NewTask("play", model.TypeEnrichment, 20, 3, model.Daily)
	for _, pair := range []struct {
		pet  *model.Pet
		task *model.Task
	}{{max, meds}, {max, walk}, {max, brush}, {whiskers, play}} {
		if err := pair.pet.AddTask(pair.task); err != nil {
			t.Fatalf("add task: %v", err)
		}
	}
	walk.MarkCompleted()
	return []*model.Task{meds, walk, brush, play}
}

func TestByPetName(t *testing.T) {
	tasks := filterFixture(t)
	assertOrder(t, ByPetName(tasks, "Max"), "meds", "walk", "brush")
	assertOrder(t, ByPetName(tasks, "Whiskers"), "play")
	if got := ByPetName(tasks, "Rex"); len(got) != 0 {
		t.Fatalf("unknown pet should match nothing, got %v", names(got))
	}
}

func TestByCompletion(t *testing.T) {
	tasks := filterFixture(t)
	assertOrder(t, ByCompletion(tasks, true), "walk")
	assertOrder(t, ByCompletion(tasks, false), "meds", "brush", "play")
}

func TestByPriorityRange(t *testing.T) {
	tasks := filterFixture(t)
	assertOrder(t, ByPriorityRange(tasks, 1, 2), "meds", "walk")
	assertOrder(t, ByPriorityRange(tasks, 3, 5), "brush", "play")
	assertOrder(t, ByPriorityRange(tasks, 1, 5), "meds", "walk", "brush", "play")
}

func TestByType(t *testing.T) {
	tasks := filterFixture(t)
	assertOrder(t, ByType(tasks, model.TypeMedication), "meds")
	if got := ByType(tasks, model.TypeCleaning); len(got) != 0 {
		t.Fatalf("no cleaning tasks expected, got %v", names(got))
	}
}

func TestHighPriority(t *testing.T) {
	tasks := filterFixture(t)
	assertOrder(t, HighPriority(tasks), "meds", "walk")
}

func TestFiltersCompose(t *testing.T) {
	tasks := filterFixture(t)
	got := HighPriority(ByCompletion(ByPetName(tasks, "Max"), false))
	assertOrder(t, got, "meds")
}
