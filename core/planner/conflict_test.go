package planner

import (
	"testing"
	"time"

	"github.com/kilianp07/pawpal/core/model"
)

func scheduledTask(t *testing.T, pet *model.Pet, name string, start, end time.Time) *model.Task {
	t.Helper()
	task, err := model.NewTask(name, model.TypeWalk, int(end.Sub(start).Minutes()), 2, model.Daily)
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	if pet != nil {
		if err := pet.AddTask(task); err != nil {
			t.Fatalf("add task: %v", err)
		}
	}
	task.SetSchedule(start, end)
	return task
}

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", "2026-08-23 "+clock)
	if err != nil {
		t.Fatalf("parse %s: %v", clock, err)
	}
	return ts
}

func TestDetectSamePetOverlap(t *testing.T) {
	pet, _ := model.NewPet("Max", "Dog", 5)
	a := scheduledTask(t, pet, "walk", at(t, "08:00"), at(t, "08:30"))
	b := scheduledTask(t, pet, "brush", at(t, "08:15"), at(t, "08:45"))

	conflicts := Detector{}.Detect([]*model.Task{a, b})
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	c := conflicts[0]
	if c.Kind != ConflictSamePet {
		t.Fatalf("expected same_pet, got %s", c.Kind)
	}
	if c.A != a || c.B != b {
		t.Fatalf("conflict pair mismatch")
	}
	if c.Reason == "" {
		t.Fatalf("reason must be populated")
	}
}

func TestDetectBackToBackIsNotConflict(t *testing.T) {
	pet, _ := model.NewPet("Max", "Dog", 5)
	a := scheduledTask(t, pet, "walk", at(t, "08:00"), at(t, "08:30"))
	b := scheduledTask(t, pet, "brush", at(t, "08:30"), at(t, "09:00"))

	if got := (Detector{CrossPetAdvisory: true}).Detect([]*model.Task{a, b}); len(got) != 0 {
		t.Fatalf("touching slots must not conflict, got %d", len(got))
	}
}

func TestDetectCrossPetAdvisory(t *testing.T) {
	max, _ := model.NewPet("Max", "Dog", 5)
	whiskers, _ := model.NewPet("Whiskers", "Cat", 3)
	a := scheduledTask(t, max, "walk", at(t, "08:00"), at(t, "08:30"))
	b := scheduledTask(t, whiskers, "play", at(t, "08:15"), at(t, "08:45"))

	if got := (Detector{}).Detect([]*model.Task{a, b}); len(got) != 0 {
		t.Fatalf("cross-pet overlap is silent unless advisory is enabled")
	}
	got := (Detector{CrossPetAdvisory: true}).Detect([]*model.Task{a, b})
	if len(got) != 1 {
		t.Fatalf("expected 1 advisory, got %d", len(got))
	}
	if got[0].Kind != ConflictOwnerAttention {
		t.Fatalf("expected owner_attention, got %s", got[0].Kind)
	}
}

func TestDetectSkipsUnscheduledTasks(t *testing.T) {
	pet, _ := model.NewPet("Max", "Dog", 5)
	a := scheduledTask(t, pet, "walk", at(t, "08:00"), at(t, "08:30"))
	idle := mustTask(t, "idle", 3, 15)
	if err := pet.AddTask(idle); err != nil {
		t.Fatalf("add task: %v", err)
	}

	if got := (Detector{CrossPetAdvisory: true}).Detect([]*model.Task{a, idle}); len(got) != 0 {
		t.Fatalf("unscheduled tasks cannot conflict")
	}
}

func TestDetectNoTimestampsEmptyResult(t *testing.T) {
	tasks := []*model.Task{mustTask(t, "a", 1, 10), mustTask(t, "b", 2, 20)}
	if got := (Detector{CrossPetAdvisory: true}).Detect(tasks); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestDetectReportsAllOverlappingPairs(t *testing.T) {
	pet, _ := model.NewPet("Max", "Dog", 5)
	a := scheduledTask(t, pet, "a", at(t, "08:00"), at(t, "09:00"))
	b := scheduledTask(t, pet, "b", at(t, "08:10"), at(t, "08:20"))
	c := scheduledTask(t, pet, "c", at(t, "08:30"), at(t, "08:40"))

	got := Detector{}.Detect([]*model.Task{a, b, c})
	if len(got) != 2 {
		t.Fatalf("expected a-b and a-c, got %d conflicts", len(got))
	}
}
