package components

import (
	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/zeusync/scene/internal/core/ecs"
)

// EventCallback receives the payload of a renderer event.
type EventCallback func(payload any)

// UUIDEventComponent is a callback addressed by the renderer through its
// uuid. The UUID event system routes inbound events to Invoke.
type UUIDEventComponent interface {
	ecs.ObservableComponent
	UUID() string
	EventType() string
	Invoke(payload any)
}

type ActionButton string

const (
	ButtonPointer   ActionButton = "POINTER"
	ButtonPrimary   ActionButton = "PRIMARY"
	ButtonSecondary ActionButton = "SECONDARY"
	ButtonAny       ActionButton = "ANY"
	ButtonForward   ActionButton = "FORWARD"
	ButtonBackward  ActionButton = "BACKWARD"
	ButtonRight     ActionButton = "RIGHT"
	ButtonLeft      ActionButton = "LEFT"
	ButtonJump      ActionButton = "JUMP"
	ButtonWalk      ActionButton = "WALK"
	ButtonAction3   ActionButton = "ACTION_3"
	ButtonAction4   ActionButton = "ACTION_4"
	ButtonAction5   ActionButton = "ACTION_5"
	ButtonAction6   ActionButton = "ACTION_6"
)

var uuidEventSchema = ecs.Schema{ecs.ReadOnly("uuid"), ecs.ReadOnly("type")}

// UUIDEvent is the base embedded by every event component.
type UUIDEvent struct {
	*ecs.Observable
	callback EventCallback
}

func newUUIDEvent(kind string, callback EventCallback, extra ...ecs.FieldDef) (UUIDEvent, error) {
	if callback == nil {
		return UUIDEvent{}, eris.Wrapf(ErrNilCallback, "%s event", kind)
	}
	e := UUIDEvent{Observable: ecs.NewObservable(uuidEventSchema.Extend(extra...)), callback: callback}
	e.Init("uuid", uuid.NewString())
	e.Init("type", kind)
	return e, nil
}

func (UUIDEvent) ClassID() ecs.ClassID { return ecs.ClassUUIDEvent }

func (e UUIDEvent) UUID() string       { return value[string](e, "uuid") }
func (e UUIDEvent) EventType() string  { return value[string](e, "type") }
func (e UUIDEvent) Invoke(payload any) { e.callback(payload) }

// PointerEvent adds the interaction hints shown by the renderer.
type PointerEvent struct {
	UUIDEvent
}

type PointerOption func(*PointerEvent)

func WithButton(b ActionButton) PointerOption {
	return func(e *PointerEvent) { e.Init("button", b) }
}

func WithHoverText(text string) PointerOption {
	return func(e *PointerEvent) { e.Init("hoverText", text) }
}

func WithDistance(d float64) PointerOption {
	return func(e *PointerEvent) { e.Init("distance", d) }
}

func WithFeedback(show bool) PointerOption {
	return func(e *PointerEvent) { e.Init("showFeedback", show) }
}

func newPointerEvent(kind string, callback EventCallback, opts []PointerOption) (PointerEvent, error) {
	base, err := newUUIDEvent(kind, callback,
		ecs.Data("button"),
		ecs.Data("hoverText"),
		ecs.Data("distance"),
		ecs.Data("showFeedback"),
	)
	if err != nil {
		return PointerEvent{}, err
	}

	e := PointerEvent{base}
	defaults(e, map[string]any{
		"button":       ButtonAny,
		"hoverText":    "Interact",
		"distance":     10.0,
		"showFeedback": true,
	})
	for _, opt := range opts {
		opt(&e)
	}
	return e, nil
}

func (e PointerEvent) Button() ActionButton { return value[ActionButton](e, "button") }
func (e PointerEvent) HoverText() string    { return value[string](e, "hoverText") }
func (e PointerEvent) Distance() float64    { return value[float64](e, "distance") }

func (e PointerEvent) SetHoverText(text string) { e.MustSet("hoverText", text) }

type OnClick struct{ PointerEvent }

func NewOnClick(callback EventCallback, opts ...PointerOption) (*OnClick, error) {
	e, err := newPointerEvent("onClick", callback, opts)
	if err != nil {
		return nil, err
	}
	return &OnClick{e}, nil
}

func (*OnClick) ComponentName() string { return "onClick" }

type OnPointerDown struct{ PointerEvent }

func NewOnPointerDown(callback EventCallback, opts ...PointerOption) (*OnPointerDown, error) {
	e, err := newPointerEvent("pointerDown", callback, opts)
	if err != nil {
		return nil, err
	}
	return &OnPointerDown{e}, nil
}

func (*OnPointerDown) ComponentName() string { return "pointerDown" }

type OnPointerUp struct{ PointerEvent }

func NewOnPointerUp(callback EventCallback, opts ...PointerOption) (*OnPointerUp, error) {
	e, err := newPointerEvent("pointerUp", callback, opts)
	if err != nil {
		return nil, err
	}
	return &OnPointerUp{e}, nil
}

func (*OnPointerUp) ComponentName() string { return "pointerUp" }

type OnAnimationEnd struct{ UUIDEvent }

func NewOnAnimationEnd(callback EventCallback) (*OnAnimationEnd, error) {
	e, err := newUUIDEvent("onAnimationEnd", callback)
	if err != nil {
		return nil, err
	}
	return &OnAnimationEnd{e}, nil
}

func (*OnAnimationEnd) ComponentName() string { return "engine.onAnimationEnd" }

type OnPointerLock struct{ UUIDEvent }

func NewOnPointerLock(callback EventCallback) (*OnPointerLock, error) {
	e, err := newUUIDEvent("onPointerLock", callback)
	if err != nil {
		return nil, err
	}
	return &OnPointerLock{e}, nil
}

func (*OnPointerLock) ComponentName() string { return "engine.onPointerLock" }

type OnChanged struct{ UUIDEvent }

func NewOnChanged(callback EventCallback) (*OnChanged, error) {
	e, err := newUUIDEvent("onChange", callback)
	if err != nil {
		return nil, err
	}
	return &OnChanged{e}, nil
}

func (*OnChanged) ComponentName() string { return "onChange" }

type OnEnter struct{ UUIDEvent }

func NewOnEnter(callback EventCallback) (*OnEnter, error) {
	e, err := newUUIDEvent("onEnter", callback)
	if err != nil {
		return nil, err
	}
	return &OnEnter{e}, nil
}

func (*OnEnter) ComponentName() string { return "onEnter" }

type OnFocus struct{ UUIDEvent }

func NewOnFocus(callback EventCallback) (*OnFocus, error) {
	e, err := newUUIDEvent("onFocus", callback)
	if err != nil {
		return nil, err
	}
	return &OnFocus{e}, nil
}

func (*OnFocus) ComponentName() string { return "onFocus" }

type OnBlur struct{ UUIDEvent }

func NewOnBlur(callback EventCallback) (*OnBlur, error) {
	e, err := newUUIDEvent("onBlur", callback)
	if err != nil {
		return nil, err
	}
	return &OnBlur{e}, nil
}

func (*OnBlur) ComponentName() string { return "onBlur" }

type OnTextSubmit struct{ UUIDEvent }

func NewOnTextSubmit(callback EventCallback) (*OnTextSubmit, error) {
	e, err := newUUIDEvent("onTextSubmit", callback)
	if err != nil {
		return nil, err
	}
	return &OnTextSubmit{e}, nil
}

func (*OnTextSubmit) ComponentName() string { return "onTextSubmit" }

// OnGizmoEvent receives gizmo drag results from the builder.
type OnGizmoEvent struct{ UUIDEvent }

func NewOnGizmoEvent(callback EventCallback) (*OnGizmoEvent, error) {
	e, err := newUUIDEvent("gizmoEvent", callback)
	if err != nil {
		return nil, err
	}
	return &OnGizmoEvent{e}, nil
}

func (*OnGizmoEvent) ComponentName() string { return "gizmoEvent" }

var (
	_ UUIDEventComponent = (*OnClick)(nil)
	_ UUIDEventComponent = (*OnPointerDown)(nil)
	_ UUIDEventComponent = (*OnPointerUp)(nil)
	_ UUIDEventComponent = (*OnAnimationEnd)(nil)
	_ UUIDEventComponent = (*OnPointerLock)(nil)
	_ UUIDEventComponent = (*OnChanged)(nil)
	_ UUIDEventComponent = (*OnEnter)(nil)
	_ UUIDEventComponent = (*OnFocus)(nil)
	_ UUIDEventComponent = (*OnBlur)(nil)
	_ UUIDEventComponent = (*OnTextSubmit)(nil)
	_ UUIDEventComponent = (*OnGizmoEvent)(nil)
)
