package systems

import (
	"sync/atomic"

	"github.com/rotisserie/eris"

	"github.com/zeusync/scene/internal/core/components"
	"github.com/zeusync/scene/internal/core/ecs"
	"github.com/zeusync/scene/internal/core/events/bus"
	"github.com/zeusync/scene/internal/core/observability/log"
)

var ErrUnexpectedEvent = eris.New("unexpected event payload")

type uuidHandler struct {
	entity    *ecs.Entity
	component components.UUIDEventComponent
}

// live reports whether the handler's component is still attached to a live
// entity.
func (h uuidHandler) live() bool {
	if !h.entity.Alive() {
		return false
	}
	c := h.entity.GetComponentOrNull(h.component.ComponentName())
	return c == ecs.Component(h.component)
}

// UUIDEventSystem delivers renderer events to the event component whose uuid
// they carry.
type UUIDEventSystem struct {
	log      log.Log
	engine   *ecs.Engine
	handlers map[string]uuidHandler
	subs     subscriptions

	delivered atomic.Uint64
	dropped   atomic.Uint64
}

func NewUUIDEventSystem(l log.Log) *UUIDEventSystem {
	if l == nil {
		l = log.NewNop()
	}
	return &UUIDEventSystem{
		log:      l.With(log.String("system", "uuid_events")),
		handlers: make(map[string]uuidHandler),
	}
}

func (s *UUIDEventSystem) Activate(en *ecs.Engine) {
	s.engine = en
	b := en.Bus()
	for eventType, h := range map[string]bus.EventHandler{
		ecs.EventComponentAdded:   s.onComponentAdded,
		ecs.EventComponentRemoved: s.onComponentRemoved,
		ecs.EventUUID:             s.onUUIDEvent,
	} {
		if err := s.subs.subscribe(b, eventType, h); err != nil {
			s.log.Error("failed to subscribe", log.String("event", eventType), log.Error(err))
		}
	}
}

func (s *UUIDEventSystem) Deactivate() {
	s.subs.cancel()
	clear(s.handlers)
	s.engine = nil
}

func (s *UUIDEventSystem) OnAddEntity(e *ecs.Entity) {
	for _, c := range e.Components() {
		s.register(e, c)
	}
}

func (s *UUIDEventSystem) OnRemoveEntity(e *ecs.Entity) {
	for _, c := range e.Components() {
		if ev, ok := c.(components.UUIDEventComponent); ok {
			delete(s.handlers, ev.UUID())
		}
	}
}

func (s *UUIDEventSystem) Update(float64) {}

// Handlers reports how many uuids are currently routable.
func (s *UUIDEventSystem) Handlers() int { return len(s.handlers) }

func (s *UUIDEventSystem) Delivered() uint64 { return s.delivered.Load() }

// Dropped counts events whose uuid matched no live component.
func (s *UUIDEventSystem) Dropped() uint64 { return s.dropped.Load() }

func (s *UUIDEventSystem) register(e *ecs.Entity, c ecs.Component) {
	ev, ok := c.(components.UUIDEventComponent)
	if !ok {
		return
	}
	s.handlers[ev.UUID()] = uuidHandler{entity: e, component: ev}
}

func (s *UUIDEventSystem) onComponentAdded(event bus.Event) error {
	added, ok := event.(ecs.ComponentAdded)
	if !ok {
		return eris.Wrapf(ErrUnexpectedEvent, "%T", event)
	}
	s.register(added.Entity, added.Component)
	return nil
}

func (s *UUIDEventSystem) onComponentRemoved(event bus.Event) error {
	removed, ok := event.(ecs.ComponentRemoved)
	if !ok {
		return eris.Wrapf(ErrUnexpectedEvent, "%T", event)
	}
	if ev, ok := removed.Component.(components.UUIDEventComponent); ok {
		delete(s.handlers, ev.UUID())
	}
	return nil
}

func (s *UUIDEventSystem) onUUIDEvent(event bus.Event) error {
	ev, ok := event.(ecs.UUIDEvent)
	if !ok {
		return eris.Wrapf(ErrUnexpectedEvent, "%T", event)
	}

	h, ok := s.handlers[ev.UUID]
	if ok && !h.live() {
		delete(s.handlers, ev.UUID)
		ok = false
	}
	if !ok {
		s.dropped.Add(1)
		s.log.Debug("dropping event for unknown uuid", log.String("uuid", ev.UUID))
		return nil
	}

	h.component.Invoke(ev.Payload)
	s.delivered.Add(1)
	return nil
}
