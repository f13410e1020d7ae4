package ecs

// Event types published on the engine bus.
const (
	EventEntityAdded                = "entityAdded"
	EventEntityRemoved              = "entityRemoved"
	EventComponentAdded             = "componentAdded"
	EventComponentRemoved           = "componentRemoved"
	EventComponentChanged           = "componentChanged"
	EventParentChanged              = "parentChanged"
	EventDisposableComponentCreated = "disposableComponentCreated"
	EventDisposableComponentRemoved = "disposableComponentRemoved"
	EventDisposableComponentUpdated = "disposableComponentUpdated"
	EventUUID                       = "uuidEvent"
	EventVideo                      = "videoEvent"
)

type EntityAdded struct {
	Entity *Entity
}

func (EntityAdded) Type() string { return EventEntityAdded }

type EntityRemoved struct {
	Entity *Entity
}

func (EntityRemoved) Type() string { return EventEntityRemoved }

type ComponentAdded struct {
	Entity        *Entity
	ComponentName string
	ClassID       ClassID
	Component     Component
}

func (ComponentAdded) Type() string { return EventComponentAdded }

type ComponentRemoved struct {
	Entity        *Entity
	ComponentName string
	Component     Component
}

func (ComponentRemoved) Type() string { return EventComponentRemoved }

// ComponentChanged reports a field mutation on a non-disposable component
// attached to a live entity. Touched is set when the field was re-announced
// without changing.
type ComponentChanged struct {
	Entity        *Entity
	ComponentName string
	Field         string
	Touched       bool
}

func (ComponentChanged) Type() string { return EventComponentChanged }

// ParentChanged carries the new parent. ParentID is "0" for the root and the
// attachable reference when Attachment is set.
type ParentChanged struct {
	Entity     *Entity
	Parent     *Entity
	ParentID   string
	Attachment Attachable
}

func (ParentChanged) Type() string { return EventParentChanged }

type DisposableComponentCreated struct {
	ComponentID   string
	ComponentName string
	ClassID       ClassID
	Component     DisposableComponent
}

func (DisposableComponentCreated) Type() string { return EventDisposableComponentCreated }

type DisposableComponentRemoved struct {
	ComponentID string
	Component   DisposableComponent
}

func (DisposableComponentRemoved) Type() string { return EventDisposableComponentRemoved }

// DisposableComponentUpdated is Touched when nothing changed but the
// component must be sent again.
type DisposableComponentUpdated struct {
	ComponentID string
	Component   DisposableComponent
	Touched     bool
}

func (DisposableComponentUpdated) Type() string { return EventDisposableComponentUpdated }

// UUIDEvent is emitted by the renderer for a component identified by UUID.
type UUIDEvent struct {
	UUID    string `json:"uuid"`
	Payload any    `json:"payload"`
}

func (UUIDEvent) Type() string { return EventUUID }

// VideoEvent reports playback status for a video texture.
type VideoEvent struct {
	ComponentID      string  `json:"componentId"`
	VideoClipID      string  `json:"videoClipId"`
	Status           int     `json:"videoStatus"`
	CurrentOffset    float64 `json:"currentOffset"`
	TotalVideoLength float64 `json:"totalVideoLength"`
}

func (VideoEvent) Type() string { return EventVideo }
