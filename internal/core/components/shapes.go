package components

import (
	"github.com/zeusync/scene/internal/core/ecs"
	"github.com/zeusync/scene/internal/core/math"
)

var shapeFields = ecs.Schema{ecs.Data("withCollisions"), ecs.Data("isPointerBlocker"), ecs.Data("visible")}

// ShapeBase holds the fields every shape shares. Shapes are disposable and
// can be attached to any number of entities.
type ShapeBase struct {
	*ecs.Disposable
}

func newShapeBase(extra ...ecs.FieldDef) ShapeBase {
	d := ecs.NewDisposable(shapeFields.Extend(extra...))
	defaults(d, map[string]any{"withCollisions": true, "isPointerBlocker": true, "visible": true})
	return ShapeBase{d}
}

func (s ShapeBase) Visible() bool          { return value[bool](s, "visible") }
func (s ShapeBase) WithCollisions() bool   { return value[bool](s, "withCollisions") }
func (s ShapeBase) IsPointerBlocker() bool { return value[bool](s, "isPointerBlocker") }

func (s ShapeBase) SetVisible(v bool)          { s.MustSet("visible", v) }
func (s ShapeBase) SetWithCollisions(v bool)   { s.MustSet("withCollisions", v) }
func (s ShapeBase) SetIsPointerBlocker(v bool) { s.MustSet("isPointerBlocker", v) }

type BoxShape struct{ ShapeBase }

func NewBoxShape() *BoxShape {
	return &BoxShape{newShapeBase(ecs.Data("uvs"))}
}

func (*BoxShape) ComponentName() string { return NameShape }
func (*BoxShape) ClassID() ecs.ClassID  { return ecs.ClassBoxShape }

type SphereShape struct{ ShapeBase }

func NewSphereShape() *SphereShape {
	return &SphereShape{newShapeBase()}
}

func (*SphereShape) ComponentName() string { return NameShape }
func (*SphereShape) ClassID() ecs.ClassID  { return ecs.ClassSphereShape }

type CircleShape struct{ ShapeBase }

func NewCircleShape() *CircleShape {
	return &CircleShape{newShapeBase(ecs.Data("segments"), ecs.Data("arc"))}
}

func (*CircleShape) ComponentName() string { return NameShape }
func (*CircleShape) ClassID() ecs.ClassID  { return ecs.ClassCircleShape }

type PlaneShape struct{ ShapeBase }

func NewPlaneShape() *PlaneShape {
	p := &PlaneShape{newShapeBase(ecs.Data("width"), ecs.Data("height"), ecs.Data("uvs"))}
	defaults(p, map[string]any{"width": 1.0, "height": 1.0})
	return p
}

func (*PlaneShape) ComponentName() string { return NameShape }
func (*PlaneShape) ClassID() ecs.ClassID  { return ecs.ClassPlaneShape }

var roundShapeFields = []ecs.FieldDef{
	ecs.Data("radiusTop"),
	ecs.Data("radiusBottom"),
	ecs.Data("segmentsHeight"),
	ecs.Data("segmentsRadial"),
	ecs.Data("openEnded"),
	ecs.Data("radius"),
	ecs.Data("arc"),
}

func newRoundShape(radiusTop float64) ShapeBase {
	s := newShapeBase(roundShapeFields...)
	defaults(s, map[string]any{
		"radiusTop":      radiusTop,
		"radiusBottom":   1.0,
		"segmentsHeight": 1.0,
		"segmentsRadial": 36.0,
		"openEnded":      false,
		"arc":            360.0,
	})
	return s
}

type ConeShape struct{ ShapeBase }

func NewConeShape() *ConeShape {
	return &ConeShape{newRoundShape(0)}
}

func (*ConeShape) ComponentName() string { return NameShape }
func (*ConeShape) ClassID() ecs.ClassID  { return ecs.ClassConeShape }

type CylinderShape struct{ ShapeBase }

func NewCylinderShape() *CylinderShape {
	return &CylinderShape{newRoundShape(1)}
}

func (*CylinderShape) ComponentName() string { return NameShape }
func (*CylinderShape) ClassID() ecs.ClassID  { return ecs.ClassCylinderShape }

type GLTFShape struct{ ShapeBase }

func NewGLTFShape(src string) *GLTFShape {
	s := &GLTFShape{newShapeBase(ecs.ReadOnly("src"))}
	s.Init("src", src)
	return s
}

func (*GLTFShape) ComponentName() string { return NameShape }
func (*GLTFShape) ClassID() ecs.ClassID  { return ecs.ClassGLTFShape }
func (s *GLTFShape) Src() string         { return value[string](s, "src") }

type OBJShape struct{ ShapeBase }

func NewOBJShape(src string) *OBJShape {
	s := &OBJShape{newShapeBase(ecs.ReadOnly("src"))}
	s.Init("src", src)
	return s
}

func (*OBJShape) ComponentName() string { return NameShape }
func (*OBJShape) ClassID() ecs.ClassID  { return ecs.ClassOBJShape }
func (s *OBJShape) Src() string         { return value[string](s, "src") }

type PictureFrameStyle int

const (
	FrameClassic PictureFrameStyle = iota
	FrameBaroqueOrnament
	FrameDiamondOrnament
	FrameMinimalWide
	FrameMinimalGrey
	FrameBlocky
	FrameGoldEdges
	FrameGoldCarved
	FrameGoldWide
	FrameGoldRounded
	FrameMetalMedium
	FrameMetalWide
	FrameMetalSlim
	FrameMetalRounded
	FramePins
	FrameMinimalBlack
	FrameMinimalWhite
	FrameTape
	FrameWoodSlim
	FrameWoodWide
	FrameWoodTwigs
	FrameCanvas
	FrameNone
)

// DefaultNFTColor is the frame background used when none is given.
var DefaultNFTColor = math.Color3{R: 0.6404918, G: 0.611472, B: 0.8584906}

type NFTOptions struct {
	Color *math.Color3
	Style PictureFrameStyle
}

// NFTShape displays an NFT inside a picture frame.
type NFTShape struct{ ShapeBase }

func NewNFTShape(src string, opts NFTOptions) *NFTShape {
	s := &NFTShape{newShapeBase(ecs.ReadOnly("src"), ecs.ReadOnly("style"), ecs.Data("color"))}
	color := DefaultNFTColor
	if opts.Color != nil {
		color = *opts.Color
	}
	defaults(s, map[string]any{"src": src, "style": opts.Style, "color": color})
	return s
}

// NewNFTShapeWithColor accepts the bare color form older scenes pass.
func NewNFTShapeWithColor(src string, color math.Color3) *NFTShape {
	return NewNFTShape(src, NFTOptions{Color: &color})
}

func (*NFTShape) ComponentName() string { return NameShape }
func (*NFTShape) ClassID() ecs.ClassID  { return ecs.ClassNFTShape }

func (s *NFTShape) Src() string              { return value[string](s, "src") }
func (s *NFTShape) Style() PictureFrameStyle { return value[PictureFrameStyle](s, "style") }
func (s *NFTShape) Color() math.Color3       { return value[math.Color3](s, "color") }
func (s *NFTShape) SetColor(c math.Color3)   { s.MustSet("color", c) }
