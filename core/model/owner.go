package model

import "strings"

// Owner holds the daily care-time budget and the pets it applies to.
// The planning engine only ever reads an Owner; pets are added by the
// caller and never removed here.
type Owner struct {
	name             string
	availableMinutes int
	preferences      map[string]string
	pets             []*Pet
}

// NewOwner validates and creates an owner with the given daily time
// budget in minutes.
func NewOwner(name string, availableMinutes int) (*Owner, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationErr("owner name", "must not be empty")
	}
	if availableMinutes < 0 {
		return nil, validationErr("available minutes", "must not be negative")
	}
	return &Owner{
		name:             name,
		availableMinutes: availableMinutes,
		preferences:      make(map[string]string),
	}, nil
}

func (o *Owner) Name() string          { return o.name }
func (o *Owner) AvailableMinutes() int { return o.availableMinutes }

// SetPreference stores a free-form owner preference.
func (o *Owner) SetPreference(key, value string) { o.preferences[key] = value }

// Preference returns a stored preference and whether it exists.
func (o *Owner) Preference(key string) (string, bool) {
	v, ok := o.preferences[key]
	return v, ok
}

// AddPet registers a pet with this owner. Insertion order is preserved;
// duplicate pointers are ignored.
func (o *Owner) AddPet(p *Pet) {
	if p == nil {
		return
	}
	for _, existing := range o.pets {
		if existing == p {
			return
		}
	}
	o.pets = append(o.pets, p)
}

// Pets returns the owner's pets in insertion order.
func (o *Owner) Pets() []*Pet {
	return append([]*Pet(nil), o.pets...)
}

// AllTasks flattens every task of every pet into one slice, in pet
// insertion order and task insertion order within each pet.
func (o *Owner) AllTasks() []*Task {
	var all []*Task
	for _, p := range o.pets {
		all = append(all, p.tasks...)
	}
	return all
}
