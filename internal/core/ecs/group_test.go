package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupMembershipFollowsComponents(t *testing.T) {
	en := NewEngine()
	g, err := en.ComponentGroup("position", "velocity")
	require.NoError(t, err)

	e := en.NewEntity("")
	require.NoError(t, e.AddComponent(newPosition(0, 0)))
	require.NoError(t, e.AddComponent(newVelocity()))
	assert.False(t, g.HasEntity(e), "detached entities are never members")

	require.NoError(t, en.AddEntity(e))
	assert.True(t, g.HasEntity(e))

	e.RemoveComponent("velocity", true)
	assert.False(t, g.HasEntity(e))

	require.NoError(t, e.AddComponent(newVelocity()))
	assert.True(t, g.HasEntity(e))

	e.RemoveComponent("position", false)
	assert.False(t, g.HasEntity(e), "suppressed removal still updates groups")

	require.NoError(t, e.AddComponent(newPosition(0, 0)))
	require.True(t, en.RemoveEntity(e))
	assert.False(t, g.HasEntity(e))
	assert.Zero(t, g.Len())
}

func TestGroupScansOnCreationAndKeepsInsertionOrder(t *testing.T) {
	en := NewEngine()
	var want []*Entity
	for range 3 {
		e := en.NewEntity("")
		require.NoError(t, e.AddComponent(newPosition(0, 0)))
		require.NoError(t, en.AddEntity(e))
		want = append(want, e)
	}
	other := en.NewEntity("")
	require.NoError(t, en.AddEntity(other))

	g, err := en.ComponentGroup("position")
	require.NoError(t, err)
	assert.Equal(t, want, g.Entities())
	assert.Equal(t, want, g.Entities())
	assert.Equal(t, want, g.Iter().Collect())

	require.NoError(t, other.AddComponent(newPosition(0, 0)))
	assert.Equal(t, append(want, other), g.Entities())
}

func TestGroupRequirementsAreASet(t *testing.T) {
	en := NewEngine()
	g1, err := en.ComponentGroup("velocity", "position", "velocity")
	require.NoError(t, err)
	g2, err := en.ComponentGroup("position", "velocity")
	require.NoError(t, err)

	assert.Same(t, g1, g2)
	assert.Equal(t, []string{"position", "velocity"}, g1.Requires())

	_, err = en.ComponentGroup()
	assert.ErrorIs(t, err, ErrEmptyGroup)
	_, err = en.ComponentGroup("", "")
	assert.ErrorIs(t, err, ErrEmptyGroup)
}

func TestRemovedGroupIsNoLongerMaintained(t *testing.T) {
	en := NewEngine()
	g := en.MustComponentGroup("position")
	assert.True(t, en.RemoveComponentGroup(g))
	assert.False(t, en.RemoveComponentGroup(g))
	assert.False(t, g.Active())

	e := en.NewEntity("")
	require.NoError(t, e.AddComponent(newPosition(0, 0)))
	require.NoError(t, en.AddEntity(e))
	assert.Zero(t, g.Len())

	fresh := en.MustComponentGroup("position")
	assert.NotSame(t, g, fresh)
	assert.True(t, fresh.HasEntity(e))
}

func TestReplaceKeepsGroupPosition(t *testing.T) {
	en := NewEngine()
	g := en.MustComponentGroup("position")
	a, b := en.NewEntity("a"), en.NewEntity("b")
	for _, e := range []*Entity{a, b} {
		require.NoError(t, e.AddComponent(newPosition(0, 0)))
		require.NoError(t, en.AddEntity(e))
	}

	a.AddComponentOrReplace(newPosition(1, 1))
	assert.Equal(t, []*Entity{a, b}, g.Entities())
}

func TestReparentingUnderDetachedEntityEndsMembership(t *testing.T) {
	en := NewEngine()
	g, err := en.ComponentGroup("position", "velocity")
	require.NoError(t, err)

	e := en.NewEntity("e")
	require.NoError(t, e.AddComponent(newPosition(0, 0)))
	require.NoError(t, e.AddComponent(newVelocity()))
	child := en.NewEntity("child")
	require.NoError(t, child.SetParent(e))
	require.NoError(t, en.AddEntity(e))
	require.True(t, g.HasEntity(e))
	require.True(t, child.Alive())

	detached := en.NewEntity("detached")
	require.NoError(t, e.SetParent(detached))

	assert.False(t, e.Alive())
	assert.False(t, child.Alive())
	assert.False(t, detached.Alive())
	assert.False(t, g.HasEntity(e))
	assert.Same(t, detached, e.Parent())
	assert.Equal(t, []*Entity{e}, detached.Children())
	_, ok := en.Entity(e.ID())
	assert.False(t, ok)

	require.NoError(t, en.AddEntity(detached))
	assert.True(t, e.Alive())
	assert.True(t, g.HasEntity(e))
}
