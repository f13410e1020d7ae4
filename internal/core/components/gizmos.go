package components

import "github.com/zeusync/scene/internal/core/ecs"

type Gizmo string

const (
	GizmoMove   Gizmo = "MOVE"
	GizmoRotate Gizmo = "ROTATE"
	GizmoScale  Gizmo = "SCALE"
	GizmoNone   Gizmo = "NONE"
)

// Gizmos enables builder handles on an entity.
type Gizmos struct {
	*ecs.Observable
}

func NewGizmos() *Gizmos {
	g := &Gizmos{ecs.NewObservable(ecs.Schema{
		ecs.Data("position"),
		ecs.Data("rotation"),
		ecs.Data("scale"),
		ecs.Data("cycle"),
		ecs.Data("selectedGizmo"),
		ecs.Data("localReference"),
	})}
	defaults(g, map[string]any{
		"position":       true,
		"rotation":       true,
		"scale":          true,
		"cycle":          true,
		"localReference": false,
	})
	return g
}

func (*Gizmos) ComponentName() string { return NameGizmos }
func (*Gizmos) ClassID() ecs.ClassID  { return ecs.ClassGizmos }

func (g *Gizmos) Select(gizmo Gizmo) { g.MustSet("selectedGizmo", gizmo) }

func (g *Gizmos) Selected() Gizmo { return value[Gizmo](g, "selectedGizmo") }
