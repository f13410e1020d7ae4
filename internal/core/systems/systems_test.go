package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scene/internal/core/components"
	"github.com/zeusync/scene/internal/core/ecs"
)

func TestUUIDEventReachesClickHandler(t *testing.T) {
	en := ecs.NewEngine()
	sys := NewUUIDEventSystem(nil)
	require.NoError(t, en.AddSystem(sys, ecs.PriorityDefault))

	var payloads []any
	click, err := components.NewOnClick(func(p any) { payloads = append(payloads, p) })
	require.NoError(t, err)

	e := en.NewEntity("door")
	require.NoError(t, e.AddComponent(click))
	require.NoError(t, en.AddEntity(e))
	assert.Equal(t, 1, sys.Handlers())

	require.NoError(t, en.Bus().Publish(ecs.UUIDEvent{UUID: click.UUID(), Payload: "hit"}))
	assert.Equal(t, []any{"hit"}, payloads)
	assert.Equal(t, uint64(1), sys.Delivered())
}

func TestUUIDEventForComponentAddedLater(t *testing.T) {
	en := ecs.NewEngine()
	sys := NewUUIDEventSystem(nil)
	require.NoError(t, en.AddSystem(sys, ecs.PriorityDefault))

	e := en.NewEntity("door")
	require.NoError(t, en.AddEntity(e))

	var called bool
	click, err := components.NewOnClick(func(any) { called = true })
	require.NoError(t, err)
	require.NoError(t, e.AddComponent(click))

	require.NoError(t, en.Bus().Publish(ecs.UUIDEvent{UUID: click.UUID()}))
	assert.True(t, called)
}

func TestUUIDEventSystemReplaysExistingEntities(t *testing.T) {
	en := ecs.NewEngine()
	click, err := components.NewOnClick(func(any) {})
	require.NoError(t, err)
	e := en.NewEntity("door")
	require.NoError(t, e.AddComponent(click))
	require.NoError(t, en.AddEntity(e))

	sys := NewUUIDEventSystem(nil)
	require.NoError(t, en.AddSystem(sys, ecs.PriorityDefault))
	assert.Equal(t, 1, sys.Handlers())
}

func TestUnknownUUIDIsDropped(t *testing.T) {
	en := ecs.NewEngine()
	sys := NewUUIDEventSystem(nil)
	require.NoError(t, en.AddSystem(sys, ecs.PriorityDefault))
	group, err := en.ComponentGroup(components.NameTransform, "onClick")
	require.NoError(t, err)

	var calls int
	click, err := components.NewOnClick(func(any) { calls++ })
	require.NoError(t, err)
	tr := components.NewTransform(components.TransformOptions{})
	e := en.NewEntity("door")
	require.NoError(t, e.AddComponent(tr))
	require.NoError(t, e.AddComponent(click))
	require.NoError(t, en.AddEntity(e))

	before := tr.ToJSON()
	clickBefore := click.ToJSON()
	entities := en.Entities()

	var changes int
	tr.OnChange(func(string, any, any) { changes++ })

	require.NotPanics(t, func() {
		require.NoError(t, en.Bus().Publish(ecs.UUIDEvent{UUID: "nope", Payload: "hit"}))
	})
	assert.Equal(t, uint64(1), sys.Dropped())
	assert.Zero(t, sys.Delivered())
	assert.Zero(t, calls)
	assert.Zero(t, changes)

	assert.Equal(t, before, tr.ToJSON())
	assert.Equal(t, clickBefore, click.ToJSON())
	assert.Equal(t, entities, en.Entities())
	assert.Equal(t, []string{components.NameTransform, "onClick"}, e.ComponentNames())
	assert.True(t, e.Alive())
	assert.Equal(t, []*ecs.Entity{e}, group.Entities())
	assert.Equal(t, 1, sys.Handlers())
}

func TestRemovedHandlersStopReceiving(t *testing.T) {
	en := ecs.NewEngine()
	sys := NewUUIDEventSystem(nil)
	require.NoError(t, en.AddSystem(sys, ecs.PriorityDefault))

	var calls int
	click, err := components.NewOnClick(func(any) { calls++ })
	require.NoError(t, err)
	e := en.NewEntity("door")
	require.NoError(t, e.AddComponent(click))
	require.NoError(t, en.AddEntity(e))

	require.True(t, e.RemoveComponent(click.ComponentName(), true))
	require.NoError(t, en.Bus().Publish(ecs.UUIDEvent{UUID: click.UUID()}))
	assert.Zero(t, calls)

	require.NoError(t, e.AddComponent(click))
	require.True(t, en.RemoveEntity(e))
	require.NoError(t, en.Bus().Publish(ecs.UUIDEvent{UUID: click.UUID()}))
	assert.Zero(t, calls)
	assert.Equal(t, uint64(2), sys.Dropped())
}

func TestSilentRemovalIsDetectedOnDelivery(t *testing.T) {
	en := ecs.NewEngine()
	sys := NewUUIDEventSystem(nil)
	require.NoError(t, en.AddSystem(sys, ecs.PriorityDefault))

	var calls int
	click, err := components.NewOnClick(func(any) { calls++ })
	require.NoError(t, err)
	e := en.NewEntity("door")
	require.NoError(t, e.AddComponent(click))
	require.NoError(t, en.AddEntity(e))

	require.True(t, e.RemoveComponent(click.ComponentName(), false))
	require.NoError(t, en.Bus().Publish(ecs.UUIDEvent{UUID: click.UUID()}))
	assert.Zero(t, calls)
	assert.Zero(t, sys.Handlers())
}

func TestDeactivateCancelsSubscriptions(t *testing.T) {
	en := ecs.NewEngine()
	sys := NewUUIDEventSystem(nil)
	require.NoError(t, en.AddSystem(sys, ecs.PriorityDefault))
	require.True(t, en.RemoveSystem(sys))

	require.NoError(t, en.Bus().Publish(ecs.UUIDEvent{UUID: "x"}))
	assert.Zero(t, sys.Dropped())
}

func TestVideoEventUpdatesTexture(t *testing.T) {
	en := ecs.NewEngine()
	sys := NewVideoEventSystem(nil)
	require.NoError(t, en.AddSystem(sys, ecs.PriorityDefault))

	clip := components.NewVideoClip("videos/intro.mp4")
	require.NoError(t, en.RegisterComponent(clip))
	tex, err := components.NewVideoTexture(clip, components.TextureOptions{})
	require.NoError(t, err)
	require.NoError(t, en.RegisterComponent(tex))

	require.NoError(t, en.Bus().Publish(ecs.VideoEvent{
		ComponentID:      tex.ComponentID(),
		VideoClipID:      clip.ComponentID(),
		Status:           int(components.VideoReady),
		TotalVideoLength: 30,
	}))
	assert.Equal(t, components.VideoReady, tex.Status())
	assert.Equal(t, 30.0, tex.VideoLength())

	require.NoError(t, en.Bus().Publish(ecs.VideoEvent{
		VideoClipID:   clip.ComponentID(),
		Status:        int(components.VideoPlaying),
		CurrentOffset: 4,
	}))
	assert.Equal(t, components.VideoPlaying, tex.Status())
	assert.Equal(t, 4.0, tex.Position())
	assert.Zero(t, sys.Unmatched())

	require.NoError(t, en.Bus().Publish(ecs.VideoEvent{ComponentID: "missing"}))
	assert.Equal(t, uint64(1), sys.Unmatched())
}
