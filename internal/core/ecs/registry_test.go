package ecs

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterComponentAssignsIDAndPublishes(t *testing.T) {
	en := NewEngine()
	rec := record(t, en)
	tex := newTexture("a.png")

	require.NoError(t, en.RegisterComponent(tex))
	require.NoError(t, en.RegisterComponent(tex))

	assert.NotEmpty(t, tex.ComponentID())
	assert.Same(t, en, tex.Engine())
	assert.Equal(t, []string{EventDisposableComponentCreated, EventDisposableComponentUpdated}, rec.types())
	created := rec.events[0].(DisposableComponentCreated)
	assert.Equal(t, "engine.texture", created.ComponentName)
	assert.Equal(t, ClassTexture, created.ClassID)

	got, ok := en.DisposableComponent(tex.ComponentID())
	require.True(t, ok)
	assert.Same(t, tex, got)
}

func TestRegisterComponentRegistersReferencesFirst(t *testing.T) {
	en := NewEngine()
	rec := record(t, en)
	tex := newTexture("a.png")
	m := newMaterial(tex)

	require.NoError(t, en.RegisterComponent(m))

	assert.True(t, tex.Registered())
	created := rec.events[0].(DisposableComponentCreated)
	assert.Same(t, tex, created.Component)
	assert.Equal(t, []DisposableComponent{m, tex}, en.DisposableComponents())
}

func TestDisposableMutationPublishesUpdate(t *testing.T) {
	en := NewEngine()
	tex := newTexture("a.png")
	require.NoError(t, en.RegisterComponent(tex))
	rec := record(t, en)

	tex.MustSet("wrap", 2)
	tex.MustSet("wrap", 2)
	require.NoError(t, en.UpdateComponent(tex))

	assert.Equal(t, []string{EventDisposableComponentUpdated, EventDisposableComponentUpdated}, rec.types())
}

func TestDisposeComponent(t *testing.T) {
	en := NewEngine()
	tex := newTexture("a.png")
	require.NoError(t, en.RegisterComponent(tex))
	id := tex.ComponentID()
	rec := record(t, en)

	assert.True(t, en.DisposeComponent(tex))
	assert.False(t, en.DisposeComponent(tex))

	assert.True(t, tex.disposed)
	assert.False(t, tex.Registered())
	assert.Equal(t, id, tex.ComponentID())
	assert.Empty(t, en.DisposableComponents())
	assert.Equal(t, []string{EventDisposableComponentRemoved}, rec.types())

	tex.MustSet("wrap", 1)
	assert.Len(t, rec.events, 1, "disposed component is not watched")
	assert.ErrorIs(t, en.UpdateComponent(tex), ErrUnregisteredComponent)
}

func TestAttachingDisposableToLiveEntityRegistersIt(t *testing.T) {
	en := NewEngine()
	e := en.NewEntity("")
	require.NoError(t, en.AddEntity(e))
	tex := newTexture("a.png")
	m := newMaterial(tex)

	require.NoError(t, e.AddComponent(m))

	assert.True(t, m.Registered())
	assert.True(t, tex.Registered())
}

func TestSharedTextureAcrossMaterials(t *testing.T) {
	en := NewEngine()
	tex := newTexture("shared.png")
	m1, m2 := newMaterial(tex), newMaterial(tex)
	e1, e2 := en.NewEntity("e1"), en.NewEntity("e2")
	require.NoError(t, e1.AddComponent(m1))
	require.NoError(t, e2.AddComponent(m2))
	require.NoError(t, en.AddEntity(e1))
	require.NoError(t, en.AddEntity(e2))
	rec := record(t, en)

	tex.MustSet("wrap", 1)

	ref1, _ := m1.ToJSON().Get("albedoTexture")
	ref2, _ := m2.ToJSON().Get("albedoTexture")
	assert.Equal(t, tex.ComponentID(), ref1)
	assert.Equal(t, ref1, ref2)

	require.Len(t, rec.events, 1)
	updated := rec.events[0].(DisposableComponentUpdated)
	assert.Equal(t, tex.ComponentID(), updated.ComponentID)
	data, err := json.Marshal(updated.Component.ToJSON())
	require.NoError(t, err)
	assert.JSONEq(t, `{"src":"shared.png","wrap":1}`, string(data))
}

func TestReferenceSetLaterIsRegistered(t *testing.T) {
	en := NewEngine()
	m := newMaterial(nil)
	require.NoError(t, en.RegisterComponent(m))

	tex := newTexture("late.png")
	require.NoError(t, m.Set("albedoTexture", tex))

	assert.True(t, tex.Registered())
	ref, _ := m.ToJSON().Get("albedoTexture")
	assert.Equal(t, tex.ComponentID(), ref)
}
