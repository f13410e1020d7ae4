package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/scene/internal/core/events/bus"
)

type position struct{ *Observable }

func newPosition(x, y float64) *position {
	p := &position{NewObservable(Schema{Data("x"), Data("y"), ReadOnly("frame")})}
	p.Init("x", x)
	p.Init("y", y)
	p.Init("frame", "world")
	return p
}

func (*position) ComponentName() string { return "position" }
func (*position) ClassID() ClassID      { return ClassTransform }

type velocity struct{ *Observable }

func newVelocity() *velocity {
	v := &velocity{NewObservable(Schema{Data("speed")})}
	v.Init("speed", 1.0)
	return v
}

func (*velocity) ComponentName() string { return "velocity" }
func (*velocity) ClassID() ClassID      { return ClassNone }

type texture struct {
	*Disposable
	disposed bool
}

func newTexture(src string) *texture {
	t := &texture{Disposable: NewDisposable(Schema{ReadOnly("src"), Data("wrap")})}
	t.Init("src", src)
	t.Init("wrap", 0)
	return t
}

func (*texture) ComponentName() string { return "engine.texture" }
func (*texture) ClassID() ClassID      { return ClassTexture }
func (t *texture) OnDispose()          { t.disposed = true }

type material struct{ *Disposable }

func newMaterial(albedo *texture) *material {
	m := &material{NewDisposable(Schema{Data("alpha"), Ref("albedoTexture")})}
	m.Init("alpha", 0.5)
	if albedo != nil {
		m.Init("albedoTexture", albedo)
	}
	return m
}

func (*material) ComponentName() string { return "engine.material" }
func (*material) ClassID() ClassID      { return ClassPBRMaterial }

// label is a plain component without schema.
type label struct{ text string }

func (*label) ComponentName() string { return "label" }

type recorder struct {
	events []bus.Event
}

func record(t *testing.T, en *Engine) *recorder {
	t.Helper()
	r := &recorder{}
	_, err := en.Bus().Subscribe(bus.Wildcard, func(ev bus.Event) error {
		r.events = append(r.events, ev)
		return nil
	})
	require.NoError(t, err)
	return r
}

func (r *recorder) types() []string {
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type()
	}
	return out
}

func (r *recorder) reset() { r.events = nil }
