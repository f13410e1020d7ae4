package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scene/internal/core/ecs"
)

func TestUUIDEventRejectsNilCallback(t *testing.T) {
	_, err := NewOnClick(nil)
	assert.ErrorIs(t, err, ErrNilCallback)

	_, err = NewOnAnimationEnd(nil)
	assert.ErrorIs(t, err, ErrNilCallback)
}

func TestOnClickSerialization(t *testing.T) {
	click, err := NewOnClick(func(any) {}, WithHoverText("Open"), WithButton(ButtonPrimary))
	require.NoError(t, err)

	assert.Equal(t, "onClick", click.ComponentName())
	assert.Equal(t, ecs.ClassUUIDEvent, click.ClassID())
	assert.Equal(t, []string{"uuid", "type", "button", "hoverText", "distance", "showFeedback"}, click.ToJSON().Keys())
	assert.Equal(t, ButtonPrimary, click.Button())
	assert.Equal(t, 10.0, click.Distance())

	uuid, _ := click.ToJSON().Get("uuid")
	assert.Equal(t, click.UUID(), uuid)
	assert.ErrorIs(t, click.Set("uuid", "forged"), ecs.ErrReadonlyField)
}

func TestUUIDEventsHaveDistinctIDs(t *testing.T) {
	a, err := NewOnPointerDown(func(any) {})
	require.NoError(t, err)
	b, err := NewOnPointerDown(func(any) {})
	require.NoError(t, err)
	assert.NotEqual(t, a.UUID(), b.UUID())
}

func TestUUIDEventInvoke(t *testing.T) {
	var got any
	ev, err := NewOnAnimationEnd(func(p any) { got = p })
	require.NoError(t, err)

	ev.Invoke(map[string]any{"clipName": "walk"})
	assert.Equal(t, map[string]any{"clipName": "walk"}, got)
	assert.Equal(t, "onAnimationEnd", ev.EventType())
	assert.Equal(t, "engine.onAnimationEnd", ev.ComponentName())
	assert.Equal(t, []string{"uuid", "type"}, ev.ToJSON().Keys())
}

func TestEventComponentNames(t *testing.T) {
	noop := func(any) {}
	build := map[string]func() (UUIDEventComponent, error){
		"pointerUp":            func() (UUIDEventComponent, error) { return NewOnPointerUp(noop) },
		"engine.onPointerLock": func() (UUIDEventComponent, error) { return NewOnPointerLock(noop) },
		"onChange":             func() (UUIDEventComponent, error) { return NewOnChanged(noop) },
		"onEnter":              func() (UUIDEventComponent, error) { return NewOnEnter(noop) },
		"onFocus":              func() (UUIDEventComponent, error) { return NewOnFocus(noop) },
		"onBlur":               func() (UUIDEventComponent, error) { return NewOnBlur(noop) },
		"onTextSubmit":         func() (UUIDEventComponent, error) { return NewOnTextSubmit(noop) },
		"gizmoEvent":           func() (UUIDEventComponent, error) { return NewOnGizmoEvent(noop) },
	}
	for name, fn := range build {
		c, err := fn()
		require.NoError(t, err, name)
		assert.Equal(t, name, c.ComponentName())
	}
}
