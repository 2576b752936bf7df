// Package planfile loads owner, pet and task definitions from a YAML
// document and converts them into validated model entities. The plan
// file is session input, not a datastore; nothing is ever written back.
package planfile

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/pawpal/core/model"
)

// TaskDef describes one care task. Start and End are optional RFC3339
// timestamps for validating externally produced schedules.
type TaskDef struct {
	Name            string `yaml:"name"`
	Type            string `yaml:"type"`
	DurationMinutes int    `yaml:"duration_minutes"`
	Priority        int    `yaml:"priority"`
	Recurrence      string `yaml:"recurrence,omitempty"`
	Completed       bool   `yaml:"completed,omitempty"`
	Start           string `yaml:"start,omitempty"`
	End             string `yaml:"end,omitempty"`
}

// PetDef describes one pet and its tasks.
type PetDef struct {
	Name         string    `yaml:"name"`
	Species      string    `yaml:"species"`
	Age          int       `yaml:"age"`
	SpecialNeeds []string  `yaml:"special_needs,omitempty"`
	Tasks        []TaskDef `yaml:"tasks"`
}

// OwnerDef is the root of a plan file.
type OwnerDef struct {
	Name             string   `yaml:"name"`
	AvailableMinutes int      `yaml:"available_minutes"`
	Pets             []PetDef `yaml:"pets"`
}

// Load reads and builds a plan file.
func Load(path string) (*model.Owner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def OwnerDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse plan file: %w", err)
	}
	return def.Build()
}

// Build converts the definitions into model entities, preserving
// declaration order. Validation errors from the constructors are
// returned with the offending entity named.
func (d OwnerDef) Build() (*model.Owner, error) {
	owner, err := model.NewOwner(d.Name, d.AvailableMinutes)
	if err != nil {
		return nil, err
	}
	for _, pd := range d.Pets {
		pet, err := model.NewPet(pd.Name, pd.Species, pd.Age, pd.SpecialNeeds...)
		if err != nil {
			return nil, fmt.Errorf("pet %q: %w", pd.Name, err)
		}
		owner.AddPet(pet)
		for _, td := range pd.Tasks {
			task, err := td.build()
			if err != nil {
				return nil, fmt.Errorf("pet %q: %w", pd.Name, err)
			}
			if err := pet.AddTask(task); err != nil {
				return nil, fmt.Errorf("pet %q: %w", pd.Name, err)
			}
		}
	}
	return owner, nil
}

func (d TaskDef) build() (*model.Task, error) {
	task, err := model.NewTask(d.Name, model.TaskType(d.Type), d.DurationMinutes, d.Priority, model.Recurrence(d.Recurrence))
	if err != nil {
		return nil, fmt.Errorf("task %q: %w", d.Name, err)
	}
	if d.Completed {
		task.MarkCompleted()
	}
	if d.Start != "" || d.End != "" {
		start, err := time.Parse(time.RFC3339, d.Start)
		if err != nil {
			return nil, fmt.Errorf("task %q: start: %w", d.Name, err)
		}
		end, err := time.Parse(time.RFC3339, d.End)
		if err != nil {
			return nil, fmt.Errorf("task %q: end: %w", d.Name, err)
		}
		task.SetSchedule(start, end)
	}
	return task, nil
}
