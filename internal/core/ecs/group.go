package ecs

import (
	"slices"
	"strings"

	"github.com/kelindar/bitmap"
	"github.com/rotisserie/eris"

	"github.com/zeusync/scene/pkg/sequence"
)

// ComponentGroup is a live view of the entities that hold every required
// component. The engine maintains it incrementally.
type ComponentGroup struct {
	key      string
	names    []string
	mask     bitmap.Bitmap
	required int
	members  *orderedMap[string, *Entity]
	active   bool
}

// ComponentGroup returns the group for the given component names. Order and
// duplicates are irrelevant; asking twice for the same set returns the same
// group.
func (en *Engine) ComponentGroup(names ...string) (*ComponentGroup, error) {
	set := slices.Clone(names)
	slices.Sort(set)
	set = slices.Compact(set)
	set = slices.DeleteFunc(set, func(n string) bool { return n == "" })
	if len(set) == 0 {
		return nil, ErrEmptyGroup
	}

	key := strings.Join(set, "\x00")
	for _, g := range en.groups {
		if g.key == key {
			return g, nil
		}
	}

	g := &ComponentGroup{
		key:     key,
		names:   set,
		members: newOrderedMap[string, *Entity](),
		active:  true,
	}
	for _, n := range set {
		g.mask.Set(en.bit(n))
	}
	g.required = g.mask.Count()

	for _, e := range en.entities.Values() {
		if g.matches(e) {
			g.add(e)
		}
	}
	en.groups = append(en.groups, g)
	return g, nil
}

// MustComponentGroup is ComponentGroup for literal name lists.
func (en *Engine) MustComponentGroup(names ...string) *ComponentGroup {
	g, err := en.ComponentGroup(names...)
	if err != nil {
		panic(eris.Wrap(err, "component group"))
	}
	return g
}

// RemoveComponentGroup stops maintaining g. Its last membership stays
// readable.
func (en *Engine) RemoveComponentGroup(g *ComponentGroup) bool {
	i := slices.Index(en.groups, g)
	if i < 0 {
		return false
	}
	en.groups = slices.Delete(en.groups, i, i+1)
	g.active = false
	return true
}

// Entities returns a copy of the members in the order they joined.
func (g *ComponentGroup) Entities() []*Entity { return g.members.Values() }

// Iter iterates over a snapshot of the members.
func (g *ComponentGroup) Iter() *sequence.Iterator[*Entity] {
	return sequence.From(g.members.Values())
}

func (g *ComponentGroup) HasEntity(e *Entity) bool {
	return e != nil && g.members.Has(e.id)
}

func (g *ComponentGroup) Len() int { return g.members.Len() }

// Requires returns the required component names, sorted.
func (g *ComponentGroup) Requires() []string { return slices.Clone(g.names) }

func (g *ComponentGroup) Active() bool { return g.active }

func (g *ComponentGroup) requires(name string) bool {
	_, found := slices.BinarySearch(g.names, name)
	return found
}

func (g *ComponentGroup) matches(e *Entity) bool {
	if !e.alive {
		return false
	}
	intersect := g.mask.Clone(nil)
	intersect.And(e.mask)
	return intersect.Count() == g.required
}

func (g *ComponentGroup) add(e *Entity) {
	g.members.Set(e.id, e)
}

func (g *ComponentGroup) remove(e *Entity) {
	g.members.Delete(e.id)
}
