package components

import (
	"github.com/zeusync/scene/internal/core/ecs"
	"github.com/zeusync/scene/internal/core/math"
)

var transformSchema = ecs.Schema{ecs.Data("position"), ecs.Data("rotation"), ecs.Data("scale")}

// Transform places an entity relative to its parent.
type Transform struct {
	*ecs.Observable
}

// TransformOptions leaves unset fields at their defaults: origin, identity
// rotation and unit scale.
type TransformOptions struct {
	Position *math.Vector3
	Rotation *math.Quaternion
	Scale    *math.Vector3
}

func NewTransform(opts TransformOptions) *Transform {
	t := &Transform{ecs.NewObservable(transformSchema)}
	t.Init("position", math.Zero())
	t.Init("rotation", math.Identity())
	t.Init("scale", math.One())
	if opts.Position != nil {
		t.Init("position", *opts.Position)
	}
	if opts.Rotation != nil {
		t.Init("rotation", *opts.Rotation)
	}
	if opts.Scale != nil {
		t.Init("scale", *opts.Scale)
	}
	return t
}

func (*Transform) ComponentName() string { return NameTransform }
func (*Transform) ClassID() ecs.ClassID  { return ecs.ClassTransform }

func (t *Transform) Position() math.Vector3    { return value[math.Vector3](t, "position") }
func (t *Transform) Rotation() math.Quaternion { return value[math.Quaternion](t, "rotation") }
func (t *Transform) Scale() math.Vector3       { return value[math.Vector3](t, "scale") }

func (t *Transform) SetPosition(v math.Vector3)    { t.MustSet("position", v) }
func (t *Transform) SetRotation(q math.Quaternion) { t.MustSet("rotation", q) }
func (t *Transform) SetScale(v math.Vector3)       { t.MustSet("scale", v) }

// EulerAngles returns the rotation in degrees.
func (t *Transform) EulerAngles() math.Vector3 { return t.Rotation().EulerAngles() }

// Translate moves the transform by v.
func (t *Transform) Translate(v math.Vector3) *Transform {
	t.SetPosition(t.Position().Add(v))
	return t
}

// Rotate applies a rotation of degrees around axis.
func (t *Transform) Rotate(axis math.Vector3, degrees float64) *Transform {
	t.SetRotation(t.Rotation().Multiply(math.AngleAxis(degrees, axis)))
	return t
}

// Billboard makes the entity face the camera on the enabled axes.
type Billboard struct {
	*ecs.Observable
}

func NewBillboard(x, y, z bool) *Billboard {
	b := &Billboard{ecs.NewObservable(ecs.Schema{ecs.Data("x"), ecs.Data("y"), ecs.Data("z")})}
	defaults(b, map[string]any{"x": x, "y": y, "z": z})
	return b
}

func (*Billboard) ComponentName() string { return NameBillboard }
func (*Billboard) ClassID() ecs.ClassID  { return ecs.ClassBillboard }

type AvatarModifier string

const (
	HideAvatars      AvatarModifier = "HIDE_AVATARS"
	DisablePassports AvatarModifier = "DISABLE_PASSPORTS"
)

type Area struct {
	Box math.Vector3 `json:"box"`
}

// AvatarModifierArea applies modifiers to avatars inside a box.
type AvatarModifierArea struct {
	*ecs.Observable
}

func NewAvatarModifierArea(area Area, modifiers ...AvatarModifier) *AvatarModifierArea {
	a := &AvatarModifierArea{ecs.NewObservable(ecs.Schema{ecs.Data("area"), ecs.Data("modifiers")})}
	if modifiers == nil {
		modifiers = []AvatarModifier{}
	}
	defaults(a, map[string]any{"area": area, "modifiers": modifiers})
	return a
}

func (*AvatarModifierArea) ComponentName() string { return NameAvatarModifierArea }
func (*AvatarModifierArea) ClassID() ecs.ClassID  { return ecs.ClassAvatarModifierArea }

// SmartItem marks an entity as a builder smart item.
type SmartItem struct {
	*ecs.Observable
}

func NewSmartItem() *SmartItem {
	return &SmartItem{ecs.NewObservable(nil)}
}

func (*SmartItem) ComponentName() string { return NameSmartItem }
func (*SmartItem) ClassID() ecs.ClassID  { return ecs.ClassSmartItem }
