package ecs

// Component is anything that can be attached to an entity. The name is the
// slot key: an entity holds at most one component per name.
type Component interface {
	ComponentName() string
}

// ObservableComponent is a component with a declared schema whose mutations
// are observable and whose state serializes for the renderer. Implementations
// embed *Observable or *Disposable.
type ObservableComponent interface {
	Component
	ClassID() ClassID
	Get(name string) any
	Set(name string, value any) error
	OnChange(fn ChangeFunc) (unsubscribe func())
	ToJSON() Snapshot
	observable() *Observable
}

// DisposableComponent lives independently of entities and is shared by
// reference. Its id is assigned when the engine registers it.
type DisposableComponent interface {
	ObservableComponent
	ComponentID() string
	disposable() *Disposable
}

// Disposer is implemented by disposable components that release resources
// when disposed.
type Disposer interface {
	OnDispose()
}

// Disposable is the embeddable base for disposable components.
type Disposable struct {
	*Observable
	id      string
	engine  *Engine
	unwatch func()
}

func NewDisposable(schema Schema) *Disposable {
	return &Disposable{Observable: NewObservable(schema)}
}

func (d *Disposable) disposable() *Disposable { return d }

// ComponentID is empty until the component is registered.
func (d *Disposable) ComponentID() string { return d.id }

// Engine returns the engine the component is registered with, or nil.
func (d *Disposable) Engine() *Engine { return d.engine }

func (d *Disposable) Registered() bool { return d.engine != nil }

// Attachable is a virtual parent that is not part of the entity tree.
type Attachable string

const (
	AttachNone              Attachable = ""
	AttachAvatar            Attachable = "AvatarEntityReference"
	AttachFirstPersonCamera Attachable = "FirstPersonCameraEntityReference"
)

func classOf(c Component) ClassID {
	if cc, ok := c.(interface{ ClassID() ClassID }); ok {
		return cc.ClassID()
	}
	return ClassNone
}
