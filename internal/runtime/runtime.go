// Package runtime assembles an engine with the built-in systems and drives
// its tick loop.
package runtime

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/zeusync/scene/internal/bridge"
	"github.com/zeusync/scene/internal/config"
	"github.com/zeusync/scene/internal/core/ecs"
	"github.com/zeusync/scene/internal/core/observability/log"
	"github.com/zeusync/scene/internal/core/systems"
)

// Scene is an engine wired to a renderer bridge.
type Scene struct {
	log    log.Log
	cfg    config.EngineConfig
	input  string
	engine *ecs.Engine

	Dispatcher *bridge.Dispatcher
	Sync       *bridge.SyncSystem
	UUIDEvents *systems.UUIDEventSystem
	Videos     *systems.VideoEventSystem

	ticks uint64
}

// NewIDAllocator maps the configured id scheme to an allocator.
func NewIDAllocator(cfg config.EngineConfig) ecs.IDAllocator {
	if cfg.IDs == "uuid" {
		return ecs.UUIDs{}
	}
	return ecs.NewSequentialIDs()
}

// New builds the engine and registers the dispatcher first, the event
// systems at default priority and the sync system last.
func New(cfg config.Config, l log.Log, sink bridge.Sink) (*Scene, error) {
	if l == nil {
		l = log.NewNop()
	}

	en := ecs.NewEngine(ecs.WithLogger(l), ecs.WithIDAllocator(NewIDAllocator(cfg.Engine)))
	syncSystem, err := bridge.NewSyncSystem(sink, bridge.WithDelta(cfg.Bridge.Delta), bridge.WithSyncLogger(l))
	if err != nil {
		return nil, err
	}

	s := &Scene{
		log:        l.With(log.String("component", "runtime")),
		cfg:        cfg.Engine,
		input:      cfg.Bridge.Input,
		engine:     en,
		Dispatcher: bridge.NewDispatcher(l),
		Sync:       syncSystem,
		UUIDEvents: systems.NewUUIDEventSystem(l),
		Videos:     systems.NewVideoEventSystem(l),
	}

	for _, entry := range []struct {
		system   ecs.System
		priority int
	}{
		{s.Dispatcher, ecs.PriorityFirst},
		{s.UUIDEvents, ecs.PriorityDefault},
		{s.Videos, ecs.PriorityDefault},
		{s.Sync, ecs.PriorityLast},
	} {
		if err := en.AddSystem(entry.system, entry.priority); err != nil {
			return nil, eris.Wrapf(err, "failed to add %T", entry.system)
		}
	}
	return s, nil
}

func (s *Scene) Engine() *ecs.Engine { return s.engine }

func (s *Scene) Logger() log.Log { return s.log }

// Input is the configured source of renderer events, empty when none.
func (s *Scene) Input() string { return s.input }

// Ticks reports how many ticks have run.
func (s *Scene) Ticks() uint64 { return s.ticks }

// Step runs one tick of dt seconds.
func (s *Scene) Step(dt float64) {
	s.engine.Update(dt)
	s.ticks++
}

// Run ticks at the configured rate until the configured tick count is
// reached or ctx is done. The final pending changes are flushed on return.
func (s *Scene) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.TickRate)
	defer ticker.Stop()

	s.log.Info("scene started",
		log.Duration("tick_rate", s.cfg.TickRate),
		log.Int("ticks", s.cfg.Ticks),
	)

	last := time.Now()
	for s.cfg.Ticks == 0 || s.ticks < uint64(s.cfg.Ticks) {
		select {
		case <-ctx.Done():
			return s.stop(ctx.Err())
		case now := <-ticker.C:
			s.Step(now.Sub(last).Seconds())
			last = now
		}
	}
	return s.stop(nil)
}

func (s *Scene) stop(cause error) error {
	flushCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Sync.Flush(flushCtx); err != nil {
		s.log.Error("final flush failed", log.Error(err))
	}

	stats := s.Sync.Stats()
	s.log.Info("scene stopped",
		log.Uint64("ticks", s.ticks),
		log.Uint64("messages", stats.Sent),
		log.Uint64("suppressed", stats.Suppressed),
		log.Uint64("uuid_dropped", s.UUIDEvents.Dropped()),
	)
	if cause != nil && !eris.Is(cause, context.Canceled) {
		return cause
	}
	return nil
}
