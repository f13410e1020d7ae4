// Package components declares the built-in scene components: their names,
// class ids, field schemas and defaults.
package components

import (
	"github.com/rotisserie/eris"
)

// Component names understood by the renderer. Variants of one family share a
// name, so an entity holds at most one shape and one material.
const (
	NameTransform          = "engine.transform"
	NameBillboard          = "engine.billboard"
	NameAvatarModifierArea = "engine.avatarModifierArea"
	NameSmartItem          = "engine.smartItem"
	NameShape              = "engine.shape"
	NameTexture            = "engine.texture"
	NameMaterial           = "engine.material"
	NameFont               = "engine.font"
	NameText               = "engine.text"
	NameAnimator           = "engine.animator"
	NameVideoClip          = "engine.VideoClip"
	NameVideoTexture       = "engine.VideoTexture"
	NameAudioClip          = "engine.AudioClip"
	NameAudioSource        = "engine.AudioSource"
	NameAudioStream        = "engine.AudioStream"
	NameGizmos             = "engine.gizmos"
)

var (
	ErrNilCallback      = eris.New("callback is nil")
	ErrInvalidVideoClip = eris.New("video texture requires a registered video clip")
	ErrInvalidAudioClip = eris.New("audio source requires a registered audio clip")
)

// initializer is the subset of ecs.Observable constructors need.
type initializer interface {
	Init(name string, value any)
}

func defaults(o initializer, values map[string]any) {
	for name, v := range values {
		o.Init(name, v)
	}
}

// value reads a field, returning the zero T when unset or of another type.
func value[T any](o interface{ Get(string) any }, name string) T {
	v, _ := o.Get(name).(T)
	return v
}
