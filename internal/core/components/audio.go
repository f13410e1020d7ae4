package components

import (
	"time"

	"github.com/rotisserie/eris"

	"github.com/zeusync/scene/internal/core/ecs"
)

type AudioClip struct {
	*ecs.Disposable
}

func NewAudioClip(url string) *AudioClip {
	a := &AudioClip{ecs.NewDisposable(ecs.Schema{ecs.ReadOnly("url"), ecs.Data("loop"), ecs.Data("volume")})}
	defaults(a, map[string]any{"url": url, "loop": false, "volume": 1.0})
	return a
}

func (*AudioClip) ComponentName() string { return NameAudioClip }
func (*AudioClip) ClassID() ecs.ClassID  { return ecs.ClassAudioClip }
func (a *AudioClip) URL() string         { return value[string](a, "url") }

// AudioSource plays an AudioClip from the entity position.
type AudioSource struct {
	*ecs.Observable
	clip *AudioClip
	now  func() time.Time
}

// NewAudioSource requires clip to be registered so its id can be recorded.
func NewAudioSource(clip *AudioClip) (*AudioSource, error) {
	if clip == nil {
		return nil, eris.Wrap(ErrInvalidAudioClip, "clip is nil")
	}
	if clip.ComponentID() == "" {
		return nil, eris.Wrapf(ErrInvalidAudioClip, "clip %q is not registered", clip.URL())
	}

	a := &AudioSource{
		Observable: ecs.NewObservable(ecs.Schema{
			ecs.ReadOnly("audioClipId"),
			ecs.Data("loop"),
			ecs.Data("volume"),
			ecs.Data("playing"),
			ecs.Data("pitch"),
			ecs.Data("playedAtTimestamp"),
		}),
		clip: clip,
		now:  time.Now,
	}
	defaults(a, map[string]any{
		"audioClipId":       clip.ComponentID(),
		"loop":              false,
		"volume":            1.0,
		"playing":           false,
		"pitch":             1.0,
		"playedAtTimestamp": int64(0),
	})
	return a, nil
}

func (*AudioSource) ComponentName() string { return NameAudioSource }
func (*AudioSource) ClassID() ecs.ClassID  { return ecs.ClassAudioSource }

func (a *AudioSource) AudioClip() *AudioClip { return a.clip }
func (a *AudioSource) Playing() bool         { return value[bool](a, "playing") }
func (a *AudioSource) SetPlaying(p bool)     { a.MustSet("playing", p) }

// PlayOnce restarts the clip from the beginning.
func (a *AudioSource) PlayOnce() *AudioSource {
	a.MustSet("playing", true)
	a.MustSet("playedAtTimestamp", a.now().UnixMilli())
	return a
}

// AudioStream plays a remote stream.
type AudioStream struct {
	*ecs.Observable
}

func NewAudioStream(url string) *AudioStream {
	a := &AudioStream{ecs.NewObservable(ecs.Schema{ecs.ReadOnly("url"), ecs.Data("playing"), ecs.Data("volume")})}
	defaults(a, map[string]any{"url": url, "playing": false, "volume": 1.0})
	return a
}

func (*AudioStream) ComponentName() string { return NameAudioStream }
func (*AudioStream) ClassID() ecs.ClassID  { return ecs.ClassAudioStream }
