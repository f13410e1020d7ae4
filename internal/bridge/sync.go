package bridge

import (
	"context"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"

	"github.com/zeusync/scene/internal/core/ecs"
	"github.com/zeusync/scene/internal/core/events/bus"
	"github.com/zeusync/scene/internal/core/observability/log"
)

type SyncOption func(*SyncSystem)

// WithDelta attaches a JSON patch against the last sent snapshot to every
// component update after the first.
func WithDelta(enabled bool) SyncOption {
	return func(s *SyncSystem) { s.delta = enabled }
}

func WithSyncLogger(l log.Log) SyncOption {
	return func(s *SyncSystem) {
		if l != nil {
			s.log = l
		}
	}
}

// WithContext sets the context passed to the sink from Update.
func WithContext(ctx context.Context) SyncOption {
	return func(s *SyncSystem) { s.ctx = ctx }
}

type SyncStats struct {
	Flushes    uint64
	Sent       uint64
	Suppressed uint64
	Errors     uint64
}

type pendingKind uint8

const (
	pendingMessage pendingKind = iota
	pendingEntityComponent
	pendingDisposable
)

type pending struct {
	kind   pendingKind
	msg    Message
	entity *ecs.Entity
	name   string
	id     string
	force  bool
}

type sentState struct {
	hash uint64
	data []byte
}

// SyncSystem mirrors engine state to a Sink. Structural changes are queued
// in the order they happen; component updates are coalesced per component and
// serialized when the tick is flushed. Updates whose payload matches the last
// one sent are suppressed.
type SyncSystem struct {
	log   log.Log
	ctx   context.Context
	sink  Sink
	delta bool

	engine *ecs.Engine
	subs   []bus.Subscription

	queue  []pending
	queued map[string]int
	sent   map[string]sentState
	stats  SyncStats
}

func NewSyncSystem(sink Sink, opts ...SyncOption) (*SyncSystem, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	s := &SyncSystem{
		log:    log.NewNop(),
		ctx:    context.Background(),
		sink:   sink,
		queued: make(map[string]int),
		sent:   make(map[string]sentState),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(log.String("system", "sync"))
	return s, nil
}

// Activate subscribes to the engine bus and queues the state that already
// exists so a fresh renderer converges.
func (s *SyncSystem) Activate(en *ecs.Engine) {
	s.engine = en
	handlers := []struct {
		eventType string
		handler   bus.EventHandler
	}{
		{ecs.EventEntityAdded, s.onEntityAdded},
		{ecs.EventEntityRemoved, s.onEntityRemoved},
		{ecs.EventParentChanged, s.onParentChanged},
		{ecs.EventComponentAdded, s.onComponentAdded},
		{ecs.EventComponentRemoved, s.onComponentRemoved},
		{ecs.EventComponentChanged, s.onComponentChanged},
		{ecs.EventDisposableComponentCreated, s.onDisposableCreated},
		{ecs.EventDisposableComponentUpdated, s.onDisposableUpdated},
		{ecs.EventDisposableComponentRemoved, s.onDisposableRemoved},
	}
	for _, h := range handlers {
		sub, err := en.Bus().Subscribe(h.eventType, h.handler)
		if err != nil {
			s.log.Error("failed to subscribe", log.String("event", h.eventType), log.Error(err))
			continue
		}
		s.subs = append(s.subs, sub)
	}

	for _, d := range en.DisposableComponents() {
		s.push(pending{kind: pendingMessage, msg: componentCreated(d)})
		s.queueDisposable(d.ComponentID(), true)
	}
	for _, e := range en.Entities() {
		s.queueEntity(e)
		if p := e.Parent(); p != nil {
			s.push(pending{kind: pendingMessage, msg: setParent(e, p.ID())})
		} else if a := e.Attachment(); a != ecs.AttachNone {
			s.push(pending{kind: pendingMessage, msg: setParent(e, string(a))})
		}
	}
}

func (s *SyncSystem) Deactivate() {
	for _, sub := range s.subs {
		_ = sub.Cancel()
	}
	s.subs = nil
	s.engine = nil
}

// Update flushes the tick. Sink failures are logged and counted.
func (s *SyncSystem) Update(float64) {
	if err := s.Flush(s.ctx); err != nil {
		s.log.Error("failed to flush renderer messages", log.Error(err))
	}
}

func (s *SyncSystem) Stats() SyncStats { return s.stats }

// Pending reports how many queued entries the next flush will consider.
func (s *SyncSystem) Pending() int { return len(s.queue) }

// Flush serializes the queued changes and hands them to the sink in one batch.
func (s *SyncSystem) Flush(ctx context.Context) error {
	queue := s.queue
	s.queue = nil
	clear(s.queued)

	msgs := make([]Message, 0, len(queue))
	for _, p := range queue {
		switch p.kind {
		case pendingMessage:
			msgs = append(msgs, p.msg)
		case pendingEntityComponent:
			if m, ok := s.entityUpdate(p); ok {
				msgs = append(msgs, m)
			}
		case pendingDisposable:
			if m, ok := s.disposableUpdate(p); ok {
				msgs = append(msgs, m)
			}
		}
	}
	if len(msgs) == 0 {
		return nil
	}

	s.stats.Flushes++
	if err := s.sink.Send(ctx, msgs); err != nil {
		s.stats.Errors++
		return eris.Wrapf(err, "failed to send %d messages", len(msgs))
	}
	s.stats.Sent += uint64(len(msgs))
	return nil
}

func (s *SyncSystem) entityUpdate(p pending) (Message, bool) {
	if !p.entity.Alive() {
		return Message{}, false
	}
	c, ok := p.entity.GetComponentOrNull(p.name).(ecs.ObservableComponent)
	if !ok {
		return Message{}, false
	}
	if _, disposable := c.(ecs.DisposableComponent); disposable {
		return Message{}, false
	}
	return s.encode(entityKey(p.entity.ID(), p.name), c, p.force, Message{
		Type:          MsgUpdateEntityComponent,
		EntityID:      p.entity.ID(),
		ComponentName: p.name,
		ClassID:       c.ClassID(),
	})
}

func (s *SyncSystem) disposableUpdate(p pending) (Message, bool) {
	if s.engine == nil {
		return Message{}, false
	}
	d, ok := s.engine.DisposableComponent(p.id)
	if !ok {
		return Message{}, false
	}
	return s.encode(disposableKey(p.id), d, p.force, Message{
		Type:        MsgComponentUpdated,
		ComponentID: p.id,
	})
}

func (s *SyncSystem) encode(key string, c ecs.ObservableComponent, force bool, m Message) (Message, bool) {
	data, err := json.Marshal(c.ToJSON())
	if err != nil {
		s.log.Error("failed to serialize component", log.String("key", key), log.Component(c.ComponentName()), log.Error(err))
		return Message{}, false
	}

	hash := xxhash.Sum64(data)
	prev, seen := s.sent[key]
	if seen && prev.hash == hash && !force {
		s.stats.Suppressed++
		return Message{}, false
	}

	m.Data = data
	if s.delta && seen && prev.hash != hash {
		patch, err := jsondiff.CompareJSON(prev.data, data)
		if err != nil {
			s.log.Warn("failed to diff component", log.String("key", key), log.Error(err))
		} else if raw, err := json.Marshal(patch); err == nil {
			m.Patch = raw
		}
	}
	s.sent[key] = sentState{hash: hash, data: data}
	return m, true
}

func (s *SyncSystem) push(p pending) {
	s.queue = append(s.queue, p)
}

// queueUpdate keeps a single pending update per key. A forced update upgrades
// the one already queued.
func (s *SyncSystem) queueUpdate(key string, p pending) {
	if i, ok := s.queued[key]; ok {
		s.queue[i].force = s.queue[i].force || p.force
		return
	}
	s.queued[key] = len(s.queue)
	s.push(p)
}

func (s *SyncSystem) queueEntityUpdate(e *ecs.Entity, name string, force bool) {
	s.queueUpdate(entityKey(e.ID(), name), pending{kind: pendingEntityComponent, entity: e, name: name, force: force})
}

func (s *SyncSystem) queueDisposable(id string, force bool) {
	s.queueUpdate(disposableKey(id), pending{kind: pendingDisposable, id: id, force: force})
}

// queueEntity announces e and every component it holds.
func (s *SyncSystem) queueEntity(e *ecs.Entity) {
	s.push(pending{kind: pendingMessage, msg: addEntity(e)})
	for _, c := range e.Components() {
		s.queueComponent(e, c)
	}
}

func (s *SyncSystem) queueComponent(e *ecs.Entity, c ecs.Component) {
	name := c.ComponentName()
	if d, ok := c.(ecs.DisposableComponent); ok {
		s.push(pending{kind: pendingMessage, msg: attachComponent(e, name, d.ComponentID())})
		return
	}
	if _, ok := c.(ecs.ObservableComponent); ok {
		delete(s.sent, entityKey(e.ID(), name))
		s.queueEntityUpdate(e, name, true)
	}
}

func (s *SyncSystem) forgetEntity(id string) {
	prefix := entityKey(id, "")
	for key := range s.sent {
		if strings.HasPrefix(key, prefix) {
			delete(s.sent, key)
		}
	}
}

func (s *SyncSystem) onEntityAdded(event bus.Event) error {
	ev, ok := event.(ecs.EntityAdded)
	if !ok {
		return eris.Errorf("unexpected event %T", event)
	}
	s.queueEntity(ev.Entity)
	return nil
}

func (s *SyncSystem) onEntityRemoved(event bus.Event) error {
	ev, ok := event.(ecs.EntityRemoved)
	if !ok {
		return eris.Errorf("unexpected event %T", event)
	}
	s.push(pending{kind: pendingMessage, msg: removeEntity(ev.Entity)})
	s.forgetEntity(ev.Entity.ID())
	return nil
}

func (s *SyncSystem) onParentChanged(event bus.Event) error {
	ev, ok := event.(ecs.ParentChanged)
	if !ok {
		return eris.Errorf("unexpected event %T", event)
	}
	s.push(pending{kind: pendingMessage, msg: setParent(ev.Entity, ev.ParentID)})
	return nil
}

func (s *SyncSystem) onComponentAdded(event bus.Event) error {
	ev, ok := event.(ecs.ComponentAdded)
	if !ok {
		return eris.Errorf("unexpected event %T", event)
	}
	s.queueComponent(ev.Entity, ev.Component)
	return nil
}

func (s *SyncSystem) onComponentRemoved(event bus.Event) error {
	ev, ok := event.(ecs.ComponentRemoved)
	if !ok {
		return eris.Errorf("unexpected event %T", event)
	}
	s.push(pending{kind: pendingMessage, msg: removeComponent(ev.Entity, ev.ComponentName)})
	delete(s.sent, entityKey(ev.Entity.ID(), ev.ComponentName))
	return nil
}

func (s *SyncSystem) onComponentChanged(event bus.Event) error {
	ev, ok := event.(ecs.ComponentChanged)
	if !ok {
		return eris.Errorf("unexpected event %T", event)
	}
	s.queueEntityUpdate(ev.Entity, ev.ComponentName, ev.Touched)
	return nil
}

func (s *SyncSystem) onDisposableCreated(event bus.Event) error {
	ev, ok := event.(ecs.DisposableComponentCreated)
	if !ok {
		return eris.Errorf("unexpected event %T", event)
	}
	s.push(pending{kind: pendingMessage, msg: componentCreated(ev.Component)})
	return nil
}

func (s *SyncSystem) onDisposableUpdated(event bus.Event) error {
	ev, ok := event.(ecs.DisposableComponentUpdated)
	if !ok {
		return eris.Errorf("unexpected event %T", event)
	}
	s.queueDisposable(ev.ComponentID, ev.Touched)
	return nil
}

func (s *SyncSystem) onDisposableRemoved(event bus.Event) error {
	ev, ok := event.(ecs.DisposableComponentRemoved)
	if !ok {
		return eris.Errorf("unexpected event %T", event)
	}
	s.push(pending{kind: pendingMessage, msg: componentDisposed(ev.ComponentID)})
	delete(s.sent, disposableKey(ev.ComponentID))
	return nil
}

func entityKey(entityID, name string) string { return "e:" + entityID + "/" + name }

func disposableKey(id string) string { return "c:" + id }
