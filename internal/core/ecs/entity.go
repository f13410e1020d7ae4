package ecs

import (
	"github.com/kelindar/bitmap"
	"github.com/rotisserie/eris"

	"github.com/zeusync/scene/internal/core/observability/log"
)

// RootID is the id of the engine root entity.
const RootID = "0"

// Entity is a node of the scene graph. Entities are created detached by
// Engine.NewEntity and become live once added to the engine, directly or
// through a live parent.
type Entity struct {
	id         string
	name       string
	owner      *Engine
	alive      bool
	parent     *Entity
	attachment Attachable
	children   *orderedMap[string, *Entity]
	components *orderedMap[string, Component]
	mask       bitmap.Bitmap
	watches    map[string]func()
}

func newEntity(owner *Engine, id, name string) *Entity {
	return &Entity{
		id:         id,
		name:       name,
		owner:      owner,
		children:   newOrderedMap[string, *Entity](),
		components: newOrderedMap[string, Component](),
		watches:    make(map[string]func()),
	}
}

func (e *Entity) ID() string   { return e.id }
func (e *Entity) Name() string { return e.name }

func (e *Entity) SetName(name string) { e.name = name }

// Alive reports whether the entity is currently added to its engine.
func (e *Entity) Alive() bool { return e.alive }

// Engine returns the engine the entity is live in, or nil.
func (e *Entity) Engine() *Engine {
	if !e.alive {
		return nil
	}
	return e.owner
}

// Parent returns the parent entity. Live entities without an explicit parent
// report the root; attached entities report nil.
func (e *Entity) Parent() *Entity { return e.parent }

// Attachment returns the virtual parent, if any.
func (e *Entity) Attachment() Attachable { return e.attachment }

func (e *Entity) Children() []*Entity { return e.children.Values() }

func (e *Entity) logger() log.Log {
	return e.owner.log.With(log.Entity(e.id))
}

// AddComponent attaches c under its component name. It fails when the slot is
// already taken.
func (e *Entity) AddComponent(c Component) error {
	if isNil(c) {
		return eris.Wrapf(ErrNilComponent, "entity %s", e.id)
	}
	name := c.ComponentName()
	if e.components.Has(name) {
		return eris.Wrapf(ErrComponentExists, "entity %s already has %q", e.id, name)
	}
	if d, ok := c.(DisposableComponent); ok {
		if owner := d.disposable().engine; owner != nil && owner != e.owner {
			return eris.Wrapf(ErrForeignEntity, "component %s registered with another engine", d.ComponentID())
		}
	}

	e.components.Set(name, c)
	e.mask.Set(e.owner.bit(name))
	if e.alive {
		e.owner.componentAdded(e, c)
	}
	return nil
}

// AddComponentOrReplace attaches c, replacing any component stored under the
// same name. The replacement keeps group membership and emits only a
// ComponentAdded event.
func (e *Entity) AddComponentOrReplace(c Component) {
	if isNil(c) {
		e.logger().Warn("ignoring nil component")
		return
	}
	name := c.ComponentName()
	existing, ok := e.components.Get(name)
	if !ok {
		_ = e.AddComponent(c)
		return
	}
	if equalValues(existing, c) {
		return
	}

	if e.alive {
		e.owner.componentDetached(e, name)
	}
	e.components.Set(name, c)
	if e.alive {
		e.owner.componentAdded(e, c)
	}
}

func (e *Entity) GetComponent(name string) (Component, error) {
	c, ok := e.components.Get(name)
	if !ok {
		return nil, eris.Wrapf(ErrComponentNotFound, "entity %s has no %q", e.id, name)
	}
	return c, nil
}

// GetComponentOrNull returns nil when the slot is empty.
func (e *Entity) GetComponentOrNull(name string) Component {
	c, _ := e.components.Get(name)
	return c
}

// GetComponentOrCreate returns the component stored under name, attaching the
// result of factory when the slot is empty.
func (e *Entity) GetComponentOrCreate(name string, factory func() Component) (Component, error) {
	if c, ok := e.components.Get(name); ok {
		return c, nil
	}
	c := factory()
	if isNil(c) {
		return nil, eris.Wrapf(ErrNilComponent, "factory for %q", name)
	}
	if c.ComponentName() != name {
		return nil, eris.Wrapf(ErrComponentType, "factory for %q built %q", name, c.ComponentName())
	}
	if err := e.AddComponent(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (e *Entity) HasComponent(name string) bool {
	return e.components.Has(name)
}

// Components returns the attached components in attach order.
func (e *Entity) Components() []Component { return e.components.Values() }

func (e *Entity) ComponentNames() []string { return e.components.Keys() }

// RemoveComponent detaches the component stored under name. With
// triggerEvent false no ComponentRemoved event is published; groups and
// indexes are updated either way.
func (e *Entity) RemoveComponent(name string, triggerEvent bool) bool {
	c, ok := e.components.Get(name)
	if !ok {
		e.logger().Warn("trying to remove inexistent component", log.Component(name))
		return false
	}
	e.detach(name, c, triggerEvent)
	return true
}

// RemoveComponentInstance detaches c only if it is the instance stored under
// its name.
func (e *Entity) RemoveComponentInstance(c Component, triggerEvent bool) bool {
	if isNil(c) {
		return false
	}
	name := c.ComponentName()
	existing, ok := e.components.Get(name)
	if !ok {
		e.logger().Warn("trying to remove inexistent component", log.Component(name))
		return false
	}
	if !equalValues(existing, c) {
		e.logger().Warn("trying to remove a component that does not belong to the entity", log.Component(name))
		return false
	}
	e.detach(name, c, triggerEvent)
	return true
}

func (e *Entity) detach(name string, c Component, triggerEvent bool) {
	e.components.Delete(name)
	e.mask.Remove(e.owner.bit(name))
	if e.alive {
		e.owner.componentRemoved(e, name, c, triggerEvent)
	}
}

// SetParent makes p the parent of e. A nil parent means the root for live
// entities. Parenting under a live entity adds e to the engine; parenting a
// live entity under a detached one removes it.
func (e *Entity) SetParent(p *Entity) error {
	if e == e.owner.root {
		return eris.Wrapf(ErrRootEntity, "root cannot have a parent")
	}
	if p == e {
		return eris.Wrapf(ErrSelfParent, "entity %s", e.id)
	}
	if p == nil && e.alive {
		p = e.owner.root
	}
	if p != nil {
		if p.owner != e.owner {
			return eris.Wrapf(ErrForeignEntity, "parent %s", p.id)
		}
		for a := p; a != nil; a = a.parent {
			if a == e {
				return eris.Wrapf(ErrCircularParent, "entity %s is an ancestor of %s", e.id, p.id)
			}
		}
	}

	if p != nil && !p.alive && e.alive {
		e.owner.RemoveEntity(e)
	}

	e.unlinkParent()
	e.attachment = AttachNone
	e.parent = p
	if p != nil && p.id != RootID {
		p.children.Set(e.id, e)
	}

	if p != nil && p.alive && !e.alive {
		if err := e.owner.AddEntity(e); err != nil {
			return err
		}
	}
	if e.alive {
		e.owner.publish(ParentChanged{Entity: e, Parent: p, ParentID: parentID(p)})
	}
	return nil
}

// SetParentAttachable attaches e to a virtual parent such as the avatar. The
// entity leaves the tree for parenting purposes. AttachNone reparents to the
// root.
func (e *Entity) SetParentAttachable(a Attachable) error {
	if e == e.owner.root {
		return eris.Wrapf(ErrRootEntity, "root cannot be attached to %q", a)
	}
	if !e.alive {
		return eris.Wrapf(ErrNotInEngine, "entity %s", e.id)
	}
	if a == AttachNone {
		return e.SetParent(nil)
	}

	e.unlinkParent()
	e.parent = nil
	e.attachment = a
	e.owner.publish(ParentChanged{Entity: e, ParentID: string(a), Attachment: a})
	return nil
}

func (e *Entity) unlinkParent() {
	if e.parent != nil {
		e.parent.children.Delete(e.id)
	}
}

func parentID(p *Entity) string {
	if p == nil {
		return RootID
	}
	return p.id
}

// Get returns the component of type T stored under T's component name.
// T's ComponentName must not depend on receiver state.
func Get[T Component](e *Entity) (T, error) {
	var zero T
	c, err := e.GetComponent(zero.ComponentName())
	if err != nil {
		return zero, err
	}
	t, ok := c.(T)
	if !ok {
		return zero, eris.Wrapf(ErrComponentType, "entity %s: %q is %T", e.id, c.ComponentName(), c)
	}
	return t, nil
}

// GetOrNull is Get returning the zero T when the slot is empty or holds a
// different type.
func GetOrNull[T Component](e *Entity) T {
	t, _ := Get[T](e)
	return t
}
