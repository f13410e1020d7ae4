package systems

import (
	"sync/atomic"

	"github.com/rotisserie/eris"

	"github.com/zeusync/scene/internal/core/components"
	"github.com/zeusync/scene/internal/core/ecs"
	"github.com/zeusync/scene/internal/core/events/bus"
	"github.com/zeusync/scene/internal/core/observability/log"
)

// VideoEventSystem applies renderer playback reports to video textures.
type VideoEventSystem struct {
	log    log.Log
	engine *ecs.Engine
	subs   subscriptions

	unmatched atomic.Uint64
}

func NewVideoEventSystem(l log.Log) *VideoEventSystem {
	if l == nil {
		l = log.NewNop()
	}
	return &VideoEventSystem{log: l.With(log.String("system", "video_events"))}
}

func (s *VideoEventSystem) Activate(en *ecs.Engine) {
	s.engine = en
	if err := s.subs.subscribe(en.Bus(), ecs.EventVideo, s.onVideoEvent); err != nil {
		s.log.Error("failed to subscribe", log.String("event", ecs.EventVideo), log.Error(err))
	}
}

func (s *VideoEventSystem) Deactivate() {
	s.subs.cancel()
	s.engine = nil
}

func (s *VideoEventSystem) Update(float64) {}

// Unmatched counts reports that reached no texture.
func (s *VideoEventSystem) Unmatched() uint64 { return s.unmatched.Load() }

// onVideoEvent routes by texture id first. Reports without one go to every
// texture playing the clip.
func (s *VideoEventSystem) onVideoEvent(event bus.Event) error {
	ev, ok := event.(ecs.VideoEvent)
	if !ok {
		return eris.Wrapf(ErrUnexpectedEvent, "%T", event)
	}

	var updated int
	if ev.ComponentID != "" {
		if d, ok := s.engine.DisposableComponent(ev.ComponentID); ok {
			if tex, ok := d.(*components.VideoTexture); ok && tex.Update(ev) {
				updated++
			}
		}
	} else {
		for _, d := range s.engine.DisposableComponents() {
			if tex, ok := d.(*components.VideoTexture); ok && tex.Update(ev) {
				updated++
			}
		}
	}

	if updated == 0 {
		s.unmatched.Add(1)
		s.log.Debug("video event matched no texture",
			log.String("component_id", ev.ComponentID),
			log.String("video_clip_id", ev.VideoClipID),
		)
	}
	return nil
}
