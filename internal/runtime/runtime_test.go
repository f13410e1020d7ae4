package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scene/internal/bridge"
	"github.com/zeusync/scene/internal/config"
	"github.com/zeusync/scene/internal/core/components"
	"github.com/zeusync/scene/internal/core/ecs"
)

func newScene(t *testing.T) (*Scene, *bridge.Recorder) {
	t.Helper()
	cfg := config.Default()
	cfg.Engine.TickRate = time.Millisecond
	cfg.Engine.Ticks = 3

	rec := bridge.NewRecorder()
	s, err := New(cfg, nil, rec)
	require.NoError(t, err)
	return s, rec
}

func TestSystemOrder(t *testing.T) {
	s, _ := newScene(t)
	sys := s.Engine().Systems()
	require.Len(t, sys, 4)
	assert.Same(t, s.Dispatcher, sys[0])
	assert.Same(t, s.Sync, sys[3])
}

func TestRunStopsAfterConfiguredTicks(t *testing.T) {
	s, rec := newScene(t)
	require.NoError(t, BuildDemo(s))

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, uint64(3), s.Ticks())
	assert.NotEmpty(t, rec.OfType(bridge.MsgAddEntity))
	assert.NotEmpty(t, rec.OfType(bridge.MsgAttachEntityComponent))
}

func TestRunReturnsOnCancel(t *testing.T) {
	s, _ := newScene(t)
	s.cfg.Ticks = 0

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, s.Run(ctx))
}

func TestDemoClickUpdatesLabel(t *testing.T) {
	s, rec := newScene(t)
	require.NoError(t, BuildDemo(s))
	s.Step(0.1)
	rec.Reset()

	crate := s.Engine().EntitiesWithComponent("onClick")
	require.Len(t, crate, 1)
	click, err := ecs.Get[*components.OnClick](crate[0])
	require.NoError(t, err)

	data := []byte(`{"uuid":"` + click.UUID() + `","payload":{"buttonId":0}}`)
	require.NoError(t, s.Dispatcher.Enqueue(bridge.Envelope{Type: ecs.EventUUID, Data: data}))
	s.Step(0.1)

	caption := crate[0].Children()
	require.Len(t, caption, 1)
	label, err := ecs.Get[*components.TextShape](caption[0])
	require.NoError(t, err)
	assert.Equal(t, "clicks: 1", label.Value())

	var labelUpdated bool
	for _, m := range rec.OfType(bridge.MsgUpdateEntityComponent) {
		if m.EntityID == caption[0].ID() && m.ComponentName == components.NameText {
			labelUpdated = true
		}
	}
	assert.True(t, labelUpdated)
}

func TestSpinnerRotatesMarkedEntities(t *testing.T) {
	s, _ := newScene(t)
	require.NoError(t, BuildDemo(s))

	crate := s.Engine().EntitiesWithComponent(spinName)
	require.Len(t, crate, 1)
	tr, err := ecs.Get[*components.Transform](crate[0])
	require.NoError(t, err)
	before := tr.Rotation()

	s.Step(1)
	assert.False(t, before.Equals(tr.Rotation()))
}
