package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComponentTwiceFailsWithoutMutation(t *testing.T) {
	en := NewEngine()
	e := en.NewEntity("box")
	first := newPosition(0, 0)
	require.NoError(t, e.AddComponent(first))

	err := e.AddComponent(newPosition(1, 1))
	assert.ErrorIs(t, err, ErrComponentExists)

	got, err := e.GetComponent("position")
	require.NoError(t, err)
	assert.Same(t, first, got)
	assert.Equal(t, []string{"position"}, e.ComponentNames())
}

func TestAddComponentOrReplace(t *testing.T) {
	en := NewEngine()
	e := en.NewEntity("")
	require.NoError(t, en.AddEntity(e))
	rec := record(t, en)

	first := newPosition(0, 0)
	e.AddComponentOrReplace(first)
	e.AddComponentOrReplace(first)
	second := newPosition(1, 1)
	e.AddComponentOrReplace(second)
	e.AddComponentOrReplace(nil)

	assert.Same(t, second, e.GetComponentOrNull("position"))
	assert.Equal(t, []string{EventComponentAdded, EventComponentAdded}, rec.types())

	rec.reset()
	first.MustSet("x", 5.0)
	assert.Empty(t, rec.events, "replaced component is no longer watched")
	second.MustSet("x", 5.0)
	assert.Equal(t, []string{EventComponentChanged}, rec.types())
}

func TestGetComponentVariants(t *testing.T) {
	en := NewEngine()
	e := en.NewEntity("")

	_, err := e.GetComponent("position")
	assert.ErrorIs(t, err, ErrComponentNotFound)
	assert.Nil(t, e.GetComponentOrNull("position"))
	assert.False(t, e.HasComponent("position"))

	created := 0
	factory := func() Component { created++; return newPosition(0, 0) }
	c1, err := e.GetComponentOrCreate("position", factory)
	require.NoError(t, err)
	c2, err := e.GetComponentOrCreate("position", factory)
	require.NoError(t, err)
	assert.Same(t, c1, c2)
	assert.Equal(t, 1, created)

	_, err = e.GetComponentOrCreate("velocity", factory)
	assert.ErrorIs(t, err, ErrComponentType)

	p, err := Get[*position](e)
	require.NoError(t, err)
	assert.Same(t, c1, p)

	_, err = Get[*velocity](e)
	assert.ErrorIs(t, err, ErrComponentNotFound)
	assert.Nil(t, GetOrNull[*velocity](e))
}

func TestRemoveComponent(t *testing.T) {
	en := NewEngine()
	e := en.NewEntity("")
	require.NoError(t, en.AddEntity(e))
	p := newPosition(0, 0)
	require.NoError(t, e.AddComponent(p))
	rec := record(t, en)

	assert.False(t, e.RemoveComponent("velocity", true))
	assert.False(t, e.RemoveComponentInstance(newPosition(0, 0), true))
	assert.True(t, e.HasComponent("position"))

	assert.True(t, e.RemoveComponentInstance(p, true))
	assert.False(t, e.HasComponent("position"))
	assert.Equal(t, []string{EventComponentRemoved}, rec.types())

	require.NoError(t, e.AddComponent(p))
	rec.reset()
	assert.True(t, e.RemoveComponent("position", false))
	assert.Equal(t, []string{}, rec.types(), "suppressed removal publishes nothing")
	assert.Empty(t, en.EntitiesWithComponent("position"))
}

func TestSetParentRejectsCycles(t *testing.T) {
	en := NewEngine()
	e1 := en.NewEntity("e1")
	e2 := en.NewEntity("e2")

	require.NoError(t, e2.SetParent(e1))
	err := e1.SetParent(e2)
	assert.ErrorIs(t, err, ErrCircularParent)

	assert.Same(t, e1, e2.Parent())
	assert.Nil(t, e1.Parent())
	assert.Equal(t, []*Entity{e2}, e1.Children())
	assert.Empty(t, e2.Children())
}

func TestSetParentRejectsDeepCyclesAndSelf(t *testing.T) {
	en := NewEngine()
	a, b, c := en.NewEntity("a"), en.NewEntity("b"), en.NewEntity("c")
	require.NoError(t, b.SetParent(a))
	require.NoError(t, c.SetParent(b))

	assert.ErrorIs(t, a.SetParent(c), ErrCircularParent)
	assert.ErrorIs(t, a.SetParent(a), ErrSelfParent)
	assert.ErrorIs(t, NewEngine().NewEntity("x").SetParent(a), ErrForeignEntity)
}

func TestRootCannotBeParented(t *testing.T) {
	en := NewEngine()
	x := en.NewEntity("x")

	assert.ErrorIs(t, en.Root().SetParent(x), ErrRootEntity)
	assert.ErrorIs(t, en.Root().SetParentAttachable(AttachAvatar), ErrRootEntity)
	assert.Nil(t, en.Root().Parent())
	assert.Empty(t, x.Children())

	require.NoError(t, en.AddEntity(x))
	assert.Same(t, en.Root(), x.Parent())

	y := en.NewEntity("y")
	require.NoError(t, y.SetParent(x))
	assert.True(t, y.Alive())
	assert.ErrorIs(t, x.SetParent(y), ErrCircularParent)
}

func TestReparentMovesChild(t *testing.T) {
	en := NewEngine()
	a, b, child := en.NewEntity("a"), en.NewEntity("b"), en.NewEntity("child")
	require.NoError(t, child.SetParent(a))
	require.NoError(t, child.SetParent(b))

	assert.Empty(t, a.Children())
	assert.Equal(t, []*Entity{child}, b.Children())
}

func TestParentingUnderLiveEntityAddsChild(t *testing.T) {
	en := NewEngine()
	parent := en.NewEntity("parent")
	require.NoError(t, en.AddEntity(parent))
	rec := record(t, en)

	child := en.NewEntity("child")
	require.NoError(t, child.SetParent(parent))

	assert.True(t, child.Alive())
	assert.Same(t, en, child.Engine())
	assert.Equal(t, []string{EventEntityAdded, EventParentChanged}, rec.types())
	pc := rec.events[1].(ParentChanged)
	assert.Equal(t, parent.ID(), pc.ParentID)
}

func TestSetParentNilOnLiveEntityMeansRoot(t *testing.T) {
	en := NewEngine()
	parent := en.NewEntity("parent")
	child := en.NewEntity("child")
	require.NoError(t, child.SetParent(parent))
	require.NoError(t, en.AddEntity(parent))

	require.NoError(t, child.SetParent(nil))
	assert.Same(t, en.Root(), child.Parent())
	assert.Empty(t, parent.Children())
}

func TestSetParentAttachable(t *testing.T) {
	en := NewEngine()
	e := en.NewEntity("hat")

	assert.ErrorIs(t, e.SetParentAttachable(AttachAvatar), ErrNotInEngine)

	require.NoError(t, en.AddEntity(e))
	rec := record(t, en)
	require.NoError(t, e.SetParentAttachable(AttachAvatar))

	assert.Nil(t, e.Parent())
	assert.Equal(t, AttachAvatar, e.Attachment())
	require.Len(t, rec.events, 1)
	assert.Equal(t, "AvatarEntityReference", rec.events[0].(ParentChanged).ParentID)

	require.NoError(t, e.SetParentAttachable(AttachNone))
	assert.Same(t, en.Root(), e.Parent())
	assert.Equal(t, AttachNone, e.Attachment())
}

func TestForeignDisposableIsRejected(t *testing.T) {
	other := NewEngine()
	tex := newTexture("a.png")
	require.NoError(t, other.RegisterComponent(tex))

	en := NewEngine()
	e := en.NewEntity("")
	assert.ErrorIs(t, e.AddComponent(tex), ErrForeignEntity)
	assert.ErrorIs(t, e.AddComponent(nil), ErrNilComponent)
	assert.False(t, e.HasComponent("engine.texture"))
}
