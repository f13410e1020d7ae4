package ecs

import (
	"slices"

	"github.com/rotisserie/eris"
)

// System is per-tick behavior driven by Engine.Update.
type System interface {
	Update(dt float64)
}

// Activator is called once when the system is added.
type Activator interface {
	Activate(engine *Engine)
}

// Deactivator is called once when the system is removed.
type Deactivator interface {
	Deactivate()
}

type EntityAddedHandler interface {
	OnAddEntity(e *Entity)
}

type EntityRemovedHandler interface {
	OnRemoveEntity(e *Entity)
}

// Common priorities. Lower values run first.
const (
	PriorityFirst   = -1000
	PriorityDefault = 0
	PriorityLast    = 1000
)

type systemEntry struct {
	system   System
	priority int
	active   bool
}

// AddSystem inserts s after every system with a priority lower than or equal
// to priority, activates it and replays OnAddEntity for the live entities.
func (en *Engine) AddSystem(s System, priority int) error {
	if isNil(s) {
		return ErrNilSystem
	}
	if en.systemIndex(s) >= 0 {
		return eris.Wrapf(ErrSystemExists, "%T", s)
	}

	entry := &systemEntry{system: s, priority: priority, active: true}
	i := slices.IndexFunc(en.systems, func(x *systemEntry) bool { return x.priority > priority })
	if i < 0 {
		en.systems = append(en.systems, entry)
	} else {
		en.systems = slices.Insert(en.systems, i, entry)
	}

	if a, ok := s.(Activator); ok {
		a.Activate(en)
	}
	if h, ok := s.(EntityAddedHandler); ok {
		for _, e := range en.Entities() {
			h.OnAddEntity(e)
		}
	}
	return nil
}

func (en *Engine) RemoveSystem(s System) bool {
	i := en.systemIndex(s)
	if i < 0 {
		return false
	}
	en.systems = slices.Delete(en.systems, i, i+1)
	if d, ok := s.(Deactivator); ok {
		d.Deactivate()
	}
	return true
}

// SetSystemActive toggles whether Update dispatches to s.
func (en *Engine) SetSystemActive(s System, active bool) bool {
	i := en.systemIndex(s)
	if i < 0 {
		return false
	}
	en.systems[i].active = active
	return true
}

// Systems returns the systems in execution order.
func (en *Engine) Systems() []System {
	out := make([]System, len(en.systems))
	for i, entry := range en.systems {
		out[i] = entry.system
	}
	return out
}

// Update runs every active system once, in ascending priority.
func (en *Engine) Update(dt float64) {
	for _, entry := range slices.Clone(en.systems) {
		if entry.active {
			entry.system.Update(dt)
		}
	}
}

func (en *Engine) systemIndex(s System) int {
	return slices.IndexFunc(en.systems, func(x *systemEntry) bool { return equalValues(x.system, s) })
}
