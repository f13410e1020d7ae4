package components

import (
	"github.com/rotisserie/eris"

	"github.com/zeusync/scene/internal/core/ecs"
)

type VideoClip struct {
	*ecs.Disposable
}

func NewVideoClip(url string) *VideoClip {
	v := &VideoClip{ecs.NewDisposable(ecs.Schema{ecs.ReadOnly("url")})}
	v.Init("url", url)
	return v
}

func (*VideoClip) ComponentName() string { return NameVideoClip }
func (*VideoClip) ClassID() ecs.ClassID  { return ecs.ClassVideoClip }
func (v *VideoClip) URL() string         { return value[string](v, "url") }

type VideoStatus int

const (
	VideoNone VideoStatus = iota
	VideoError
	VideoLoading
	VideoReady
	VideoPlaying
	VideoBuffering
)

var videoTextureSchema = ecs.Schema{
	ecs.ReadOnly("videoClipId"),
	ecs.ReadOnly("samplingMode"),
	ecs.ReadOnly("wrap"),
	ecs.Data("volume"),
	ecs.Data("playbackRate"),
	ecs.Data("loop"),
	ecs.Data("seek"),
	ecs.Data("playing"),
}

// VideoTexture streams a VideoClip into a material. Playback status reported
// by the renderer is kept outside the schema.
type VideoTexture struct {
	*ecs.Disposable
	position    float64
	videoLength float64
	status      VideoStatus
}

// NewVideoTexture requires clip to be registered so its id can be recorded.
func NewVideoTexture(clip *VideoClip, opts TextureOptions) (*VideoTexture, error) {
	if clip == nil {
		return nil, eris.Wrap(ErrInvalidVideoClip, "clip is nil")
	}
	if clip.ComponentID() == "" {
		return nil, eris.Wrapf(ErrInvalidVideoClip, "clip %q is not registered", clip.URL())
	}

	v := &VideoTexture{Disposable: ecs.NewDisposable(videoTextureSchema), position: -1, videoLength: -1}
	defaults(v, map[string]any{
		"videoClipId":  clip.ComponentID(),
		"samplingMode": opts.SamplingMode,
		"wrap":         opts.Wrap,
		"volume":       1.0,
		"playbackRate": 1.0,
		"loop":         false,
		"seek":         -1.0,
		"playing":      false,
	})
	return v, nil
}

func (*VideoTexture) ComponentName() string { return NameVideoTexture }
func (*VideoTexture) ClassID() ecs.ClassID  { return ecs.ClassVideoTexture }
func (*VideoTexture) textureSource()        {}

func (v *VideoTexture) VideoClipID() string { return value[string](v, "videoClipId") }
func (v *VideoTexture) Playing() bool       { return value[bool](v, "playing") }

func (v *VideoTexture) Play()  { v.MustSet("playing", true) }
func (v *VideoTexture) Pause() { v.MustSet("playing", false) }

func (v *VideoTexture) Reset() {
	v.SeekTime(0)
	v.Pause()
}

// SeekTime asks the renderer to jump to seconds. Seeking twice to the same
// offset is still reported.
func (v *VideoTexture) SeekTime(seconds float64) {
	if value[float64](v, "seek") == seconds {
		v.Touch("seek")
		return
	}
	v.MustSet("seek", seconds)
}

func (v *VideoTexture) SetVolume(volume float64) { v.MustSet("volume", volume) }
func (v *VideoTexture) SetLoop(loop bool)        { v.MustSet("loop", loop) }

// ToJSON consumes a pending seek: the snapshot carries it and the field
// returns to -1 without notifying.
func (v *VideoTexture) ToJSON() ecs.Snapshot {
	snap := v.Disposable.ToJSON()
	if value[float64](v, "seek") >= 0 {
		v.Init("seek", -1.0)
	}
	return snap
}

// Update applies a renderer status report addressed to this texture's clip.
func (v *VideoTexture) Update(ev ecs.VideoEvent) bool {
	if ev.VideoClipID != v.VideoClipID() {
		return false
	}
	v.status = VideoStatus(ev.Status)
	v.videoLength = ev.TotalVideoLength
	v.position = ev.CurrentOffset
	return true
}

func (v *VideoTexture) Position() float64    { return v.position }
func (v *VideoTexture) VideoLength() float64 { return v.videoLength }
func (v *VideoTexture) Status() VideoStatus  { return v.status }
