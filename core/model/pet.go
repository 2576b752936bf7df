package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Pet is an animal under an owner's care. It keeps its tasks in
// insertion order so downstream sorting stays deterministic.
type Pet struct {
	id           uuid.UUID
	name         string
	species      string
	age          int
	specialNeeds []string
	tasks        []*Task
}

// NewPet validates and creates a pet. The pet belongs to no owner until
// Owner.AddPet is called.
func NewPet(name, species string, age int, specialNeeds ...string) (*Pet, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationErr("pet name", "must not be empty")
	}
	if age < 0 {
		return nil, validationErr("age", "must not be negative")
	}
	return &Pet{
		id:           uuid.New(),
		name:         name,
		species:      species,
		age:          age,
		specialNeeds: append([]string(nil), specialNeeds...),
	}, nil
}

func (p *Pet) ID() uuid.UUID   { return p.id }
func (p *Pet) Name() string    { return p.name }
func (p *Pet) Species() string { return p.species }
func (p *Pet) Age() int        { return p.age }

// AddSpecialNeed appends a care note, ignoring duplicates.
func (p *Pet) AddSpecialNeed(need string) {
	for _, n := range p.specialNeeds {
		if n == need {
			return
		}
	}
	p.specialNeeds = append(p.specialNeeds, need)
}

// SpecialNeeds returns a copy of the pet's care notes.
func (p *Pet) SpecialNeeds() []string {
	return append([]string(nil), p.specialNeeds...)
}

// Info returns a one-line human-readable description of the pet.
func (p *Pet) Info() string {
	needs := "None"
	if len(p.specialNeeds) > 0 {
		needs = strings.Join(p.specialNeeds, ", ")
	}
	return fmt.Sprintf("%s (%s, %d years old) - Special needs: %s", p.name, p.species, p.age, needs)
}

// AddTask attaches a task to this pet. A task belongs to exactly one
// pet; re-adding the same task or a task already owned elsewhere is
// rejected.
func (p *Pet) AddTask(t *Task) error {
	if t == nil {
		return validationErr("task", "must not be nil")
	}
	if t.pet != nil {
		return validationErr("task", "already belongs to a pet")
	}
	t.pet = p
	p.tasks = append(p.tasks, t)
	return nil
}

// Tasks returns the pet's tasks in insertion order. The returned slice
// is a copy; the tasks themselves are shared.
func (p *Pet) Tasks() []*Task {
	return append([]*Task(nil), p.tasks...)
}
