package components

import (
	"slices"

	"github.com/goccy/go-json"

	"github.com/zeusync/scene/internal/core/ecs"
)

var animationStateSchema = ecs.Schema{
	ecs.ReadOnly("clip"),
	ecs.Data("looping"),
	ecs.Data("weight"),
	ecs.Data("playing"),
	ecs.Data("shouldReset"),
	ecs.Data("speed"),
	ecs.Data("layer"),
}

type AnimationParams struct {
	Looping *bool
	Weight  *float64
	Speed   *float64
	Layer   int
}

// AnimationState is one clip of an Animator. It is serialized inside the
// animator, never attached on its own.
type AnimationState struct {
	*ecs.Observable
	owner *Animator
}

func NewAnimationState(clip string, params AnimationParams) *AnimationState {
	a := &AnimationState{Observable: ecs.NewObservable(animationStateSchema)}
	defaults(a, map[string]any{
		"clip":        clip,
		"looping":     true,
		"weight":      1.0,
		"playing":     false,
		"shouldReset": false,
		"speed":       1.0,
		"layer":       0,
	})
	a.SetParams(params)
	return a
}

func (*AnimationState) ComponentName() string { return "engine.animationState" }
func (*AnimationState) ClassID() ecs.ClassID  { return ecs.ClassNone }

func (a *AnimationState) Clip() string     { return value[string](a, "clip") }
func (a *AnimationState) Playing() bool    { return value[bool](a, "playing") }
func (a *AnimationState) Layer() int       { return value[int](a, "layer") }
func (a *AnimationState) Owner() *Animator { return a.owner }

func (a *AnimationState) SetParams(p AnimationParams) *AnimationState {
	if p.Looping != nil {
		a.MustSet("looping", *p.Looping)
	}
	if p.Weight != nil {
		a.MustSet("weight", *p.Weight)
	}
	if p.Speed != nil {
		a.MustSet("speed", *p.Speed)
	}
	a.MustSet("layer", p.Layer)
	return a
}

// Play starts the clip through its animator, pausing clips on the same layer.
func (a *AnimationState) Play(reset bool) {
	if a.owner != nil {
		a.owner.Play(a, reset)
		return
	}
	if reset {
		a.MustSet("shouldReset", true)
	}
	a.MustSet("playing", true)
}

func (a *AnimationState) Pause() { a.MustSet("playing", false) }

func (a *AnimationState) Reset() { a.MustSet("shouldReset", true) }

func (a *AnimationState) Stop() {
	a.MustSet("playing", false)
	a.MustSet("shouldReset", true)
}

func (a *AnimationState) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ToJSON())
}

// Animator drives the animation clips of a GLTF model.
type Animator struct {
	*ecs.Observable
	states []*AnimationState
}

func NewAnimator() *Animator {
	a := &Animator{Observable: ecs.NewObservable(ecs.Schema{ecs.ReadOnly("states")})}
	a.Init("states", []*AnimationState{})
	return a
}

func (*Animator) ComponentName() string { return NameAnimator }
func (*Animator) ClassID() ecs.ClassID  { return ecs.ClassAnimation }

// AddClip adopts clip. Changes to the clip are reported as changes of the
// animator.
func (a *Animator) AddClip(clip *AnimationState) *Animator {
	a.states = append(a.states, clip)
	clip.owner = a
	clip.OnChange(func(string, any, any) { a.Touch("states") })
	a.Init("states", slices.Clone(a.states))
	a.Touch("states")
	return a
}

// GetClip returns the clip named name, creating it when missing.
func (a *Animator) GetClip(name string) *AnimationState {
	for _, s := range a.states {
		if s.Clip() == name {
			return s
		}
	}
	clip := NewAnimationState(name, AnimationParams{})
	a.AddClip(clip)
	return clip
}

func (a *Animator) Clips() []*AnimationState { return slices.Clone(a.states) }

func (a *Animator) Play(clip *AnimationState, reset bool) {
	for _, s := range a.states {
		if s != clip && s.Layer() == clip.Layer() {
			s.Pause()
		}
	}
	if reset {
		clip.MustSet("shouldReset", true)
	}
	if clip.Playing() {
		clip.Touch("playing")
		return
	}
	clip.MustSet("playing", true)
}

// Pause pauses clip, or every clip when clip is nil.
func (a *Animator) Pause(clip *AnimationState) {
	if clip != nil {
		clip.Pause()
		return
	}
	for _, s := range a.states {
		s.Pause()
	}
}

// Stop stops clip, or every clip when clip is nil.
func (a *Animator) Stop(clip *AnimationState) {
	if clip != nil {
		clip.Stop()
		return
	}
	for _, s := range a.states {
		s.Stop()
	}
}
