package ecs

import (
	"github.com/rotisserie/eris"

	"github.com/zeusync/scene/internal/core/events/bus"
	"github.com/zeusync/scene/internal/core/observability/log"
)

// Engine owns the entity tree, the disposable component registry, the
// component groups and the ordered systems of one scene. All methods must be
// called from the scene goroutine.
type Engine struct {
	log  log.Log
	ids  IDAllocator
	bus  bus.EventBus
	root *Entity

	entities      *orderedMap[string, *Entity]
	disposables   *orderedMap[string, DisposableComponent]
	withComponent map[string]*orderedMap[string, *Entity]
	groups        []*ComponentGroup
	systems       []*systemEntry
	bits          map[string]uint32
}

type Option func(*Engine)

func WithLogger(l log.Log) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func WithIDAllocator(ids IDAllocator) Option {
	return func(e *Engine) {
		if ids != nil {
			e.ids = ids
		}
	}
}

func WithBus(b bus.EventBus) Option {
	return func(e *Engine) {
		if b != nil {
			e.bus = b
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	en := &Engine{
		log:           log.NewNop(),
		ids:           NewSequentialIDs(),
		bus:           bus.New(),
		entities:      newOrderedMap[string, *Entity](),
		disposables:   newOrderedMap[string, DisposableComponent](),
		withComponent: make(map[string]*orderedMap[string, *Entity]),
		bits:          make(map[string]uint32),
	}
	for _, opt := range opts {
		opt(en)
	}
	en.log = en.log.With(log.String("component", "engine"))

	en.root = newEntity(en, RootID, "scene")
	en.root.alive = true
	en.entities.Set(RootID, en.root)
	return en
}

func (en *Engine) Root() *Entity     { return en.root }
func (en *Engine) Bus() bus.EventBus { return en.bus }
func (en *Engine) Logger() log.Log   { return en.log }
func (en *Engine) IDs() IDAllocator  { return en.ids }

// NewEntity creates a detached entity with a fresh id.
func (en *Engine) NewEntity(name string) *Entity {
	return newEntity(en, en.ids.NewID("E"), name)
}

// Entity returns the live entity with the given id.
func (en *Engine) Entity(id string) (*Entity, bool) {
	return en.entities.Get(id)
}

// Entities returns every live entity except the root, in insertion order.
func (en *Engine) Entities() []*Entity {
	out := make([]*Entity, 0, en.entities.Len())
	for id, e := range en.entities.All() {
		if id != RootID {
			out = append(out, e)
		}
	}
	return out
}

// EntitiesWithComponent returns live entities holding a component named name.
func (en *Engine) EntitiesWithComponent(name string) []*Entity {
	idx, ok := en.withComponent[name]
	if !ok {
		return nil
	}
	return idx.Values()
}

// AddEntity makes e and its subtree live. Adding a live entity is a no-op.
func (en *Engine) AddEntity(e *Entity) error {
	if e == nil {
		return ErrNilEntity
	}
	if e.owner != en {
		return eris.Wrapf(ErrForeignEntity, "entity %s", e.id)
	}
	if e.alive {
		return nil
	}

	en.entities.Set(e.id, e)
	e.alive = true

	for _, c := range e.components.Values() {
		en.track(e, c)
	}
	for _, g := range en.groups {
		if g.matches(e) {
			g.add(e)
		}
	}
	for _, s := range en.systems {
		if h, ok := s.system.(EntityAddedHandler); ok {
			h.OnAddEntity(e)
		}
	}
	en.log.Debug("entity added", log.Entity(e.id))
	en.publish(EntityAdded{Entity: e})

	if e.parent == nil && e.attachment == AttachNone {
		e.parent = en.root
		en.publish(ParentChanged{Entity: e, Parent: en.root, ParentID: RootID})
	}

	for _, child := range e.children.Values() {
		if err := en.AddEntity(child); err != nil {
			return err
		}
	}
	return nil
}

// RemoveEntity takes e and its subtree out of the engine. Components stay on
// the entities so they can be added again.
func (en *Engine) RemoveEntity(e *Entity) bool {
	if e == nil || e.owner != en || !e.alive {
		id := ""
		if e != nil {
			id = e.id
		}
		en.log.Warn("entity is not in the engine", log.Entity(id))
		return false
	}
	if e == en.root {
		en.log.Warn("the root entity cannot be removed")
		return false
	}

	for _, name := range e.components.Keys() {
		en.untrack(e, name)
	}
	for _, g := range en.groups {
		g.remove(e)
	}
	en.entities.Delete(e.id)

	for _, s := range en.systems {
		if h, ok := s.system.(EntityRemovedHandler); ok {
			h.OnRemoveEntity(e)
		}
	}
	en.log.Debug("entity removed", log.Entity(e.id))
	en.publish(EntityRemoved{Entity: e})

	for _, child := range e.children.Values() {
		en.RemoveEntity(child)
	}
	e.alive = false
	return true
}

// RegisterComponent assigns an id to d and adds it to the registry. Disposable
// components referenced by d are registered first. Registering twice is a
// no-op.
func (en *Engine) RegisterComponent(d DisposableComponent) error {
	if isNil(d) {
		return ErrNilComponent
	}
	base := d.disposable()
	switch base.engine {
	case en:
		return nil
	case nil:
	default:
		return eris.Wrapf(ErrForeignEntity, "component %s registered with another engine", base.id)
	}

	if base.id == "" {
		base.id = en.ids.NewID("C")
	}
	base.engine = en
	en.disposables.Set(base.id, d)

	for _, ref := range d.observable().References() {
		en.adopt(ref)
	}

	base.unwatch = d.OnChange(func(field string, value, old any) {
		en.adopt(value)
		en.publish(DisposableComponentUpdated{ComponentID: base.id, Component: d, Touched: equalValues(value, old)})
	})

	en.log.Debug("component registered", log.String("component_id", base.id), log.Component(d.ComponentName()))
	en.publish(DisposableComponentCreated{
		ComponentID:   base.id,
		ComponentName: d.ComponentName(),
		ClassID:       d.ClassID(),
		Component:     d,
	})
	en.publish(DisposableComponentUpdated{ComponentID: base.id, Component: d})
	return nil
}

// DisposeComponent removes d from the registry. Entities still referencing it
// keep their reference.
func (en *Engine) DisposeComponent(d DisposableComponent) bool {
	if isNil(d) {
		return false
	}
	base := d.disposable()
	if base.engine != en {
		en.log.Warn("disposing unregistered component", log.String("component_id", base.id))
		return false
	}

	en.disposables.Delete(base.id)
	if base.unwatch != nil {
		base.unwatch()
		base.unwatch = nil
	}
	base.engine = nil

	en.publish(DisposableComponentRemoved{ComponentID: base.id, Component: d})
	if disposer, ok := d.(Disposer); ok {
		disposer.OnDispose()
	}
	return true
}

// UpdateComponent announces that d changed outside the field setters.
func (en *Engine) UpdateComponent(d DisposableComponent) error {
	if isNil(d) {
		return ErrNilComponent
	}
	base := d.disposable()
	if base.engine != en {
		return eris.Wrapf(ErrUnregisteredComponent, "component %q", d.ComponentName())
	}
	en.publish(DisposableComponentUpdated{ComponentID: base.id, Component: d, Touched: true})
	return nil
}

// DisposableComponents returns registered components in registration order.
func (en *Engine) DisposableComponents() []DisposableComponent {
	return en.disposables.Values()
}

// DisposableComponent looks a registered component up by id.
func (en *Engine) DisposableComponent(id string) (DisposableComponent, bool) {
	return en.disposables.Get(id)
}

// componentAdded runs when c is attached to, or replaces a component on, a
// live entity.
func (en *Engine) componentAdded(e *Entity, c Component) {
	name := c.ComponentName()
	en.track(e, c)
	for _, g := range en.groups {
		if g.requires(name) && g.matches(e) {
			g.add(e)
		}
	}
	en.publish(ComponentAdded{Entity: e, ComponentName: name, ClassID: classOf(c), Component: c})
}

// componentDetached drops the change watch of a replaced component.
func (en *Engine) componentDetached(e *Entity, name string) {
	if unwatch, ok := e.watches[name]; ok {
		unwatch()
		delete(e.watches, name)
	}
}

func (en *Engine) componentRemoved(e *Entity, name string, c Component, triggerEvent bool) {
	en.untrack(e, name)
	for _, g := range en.groups {
		if g.requires(name) {
			g.remove(e)
		}
	}
	if triggerEvent {
		en.publish(ComponentRemoved{Entity: e, ComponentName: name, Component: c})
	}
}

// track registers the disposables behind c, indexes e under the component
// name and forwards field changes of entity-owned components to the bus.
func (en *Engine) track(e *Entity, c Component) {
	name := c.ComponentName()
	en.adopt(c)

	idx, ok := en.withComponent[name]
	if !ok {
		idx = newOrderedMap[string, *Entity]()
		en.withComponent[name] = idx
	}
	idx.Set(e.id, e)

	if _, ok := c.(DisposableComponent); ok {
		return
	}
	oc, ok := c.(ObservableComponent)
	if !ok {
		return
	}
	for _, ref := range oc.observable().References() {
		en.adopt(ref)
	}
	en.componentDetached(e, name)
	e.watches[name] = oc.OnChange(func(field string, value, old any) {
		en.adopt(value)
		en.publish(ComponentChanged{Entity: e, ComponentName: name, Field: field, Touched: equalValues(value, old)})
	})
}

func (en *Engine) untrack(e *Entity, name string) {
	en.componentDetached(e, name)
	if idx, ok := en.withComponent[name]; ok {
		idx.Delete(e.id)
	}
}

// adopt registers v when it is a disposable component nobody registered yet.
func (en *Engine) adopt(v any) {
	d, ok := v.(DisposableComponent)
	if !ok || isNil(d) || d.disposable().engine != nil {
		return
	}
	if err := en.RegisterComponent(d); err != nil {
		en.log.Error("failed to register referenced component", log.Component(d.ComponentName()), log.Error(err))
	}
}

func (en *Engine) bit(name string) uint32 {
	b, ok := en.bits[name]
	if !ok {
		b = uint32(len(en.bits))
		en.bits[name] = b
	}
	return b
}

func (en *Engine) publish(ev bus.Event) {
	if err := en.bus.Publish(ev); err != nil {
		en.log.Error("event handler failed", log.String("event", ev.Type()), log.Error(err))
	}
}
