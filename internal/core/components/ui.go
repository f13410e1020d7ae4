package components

import (
	"github.com/zeusync/scene/internal/core/ecs"
	"github.com/zeusync/scene/internal/core/math"
)

// UIShape is a screen-space widget. Widgets are disposable components that
// reference their parent widget; only the canvas has none.
type UIShape interface {
	ecs.DisposableComponent
	uiShape()
}

type HAlign string

const (
	HAlignLeft   HAlign = "left"
	HAlignCenter HAlign = "center"
	HAlignRight  HAlign = "right"
)

type VAlign string

const (
	VAlignTop    VAlign = "top"
	VAlignCenter VAlign = "center"
	VAlignBottom VAlign = "bottom"
)

var uiSchema = ecs.Schema{
	ecs.Data("name"),
	ecs.Data("visible"),
	ecs.Data("opacity"),
	ecs.Data("hAlign"),
	ecs.Data("vAlign"),
	ecs.Data("width"),
	ecs.Data("height"),
	ecs.Data("positionX"),
	ecs.Data("positionY"),
	ecs.Data("isPointerBlocker"),
	ecs.Ref("parentComponent"),
}

// UIBase holds the layout fields shared by every widget.
type UIBase struct {
	*ecs.Disposable
}

func newUIBase(parent UIShape, extra ...ecs.FieldDef) UIBase {
	b := UIBase{ecs.NewDisposable(uiSchema.Extend(extra...))}
	defaults(b, map[string]any{
		"visible":          true,
		"opacity":          1.0,
		"hAlign":           HAlignCenter,
		"vAlign":           VAlignCenter,
		"width":            "100px",
		"height":           "50px",
		"positionX":        "0px",
		"positionY":        "0px",
		"isPointerBlocker": true,
		"parentComponent":  parent,
	})
	return b
}

func (UIBase) ComponentName() string { return NameShape }
func (UIBase) uiShape()              {}

func (b UIBase) Parent() UIShape { return value[UIShape](b, "parentComponent") }

func (b UIBase) SetVisible(v bool) { b.MustSet("visible", v) }

// SetSize accepts numbers or CSS-like strings such as "50%" or "120px".
func (b UIBase) SetSize(width, height any) {
	b.MustSet("width", width)
	b.MustSet("height", height)
}

func (b UIBase) SetPosition(x, y any) {
	b.MustSet("positionX", x)
	b.MustSet("positionY", y)
}

// UICanvas is the screen-space root every widget tree hangs from.
type UICanvas struct{ UIBase }

func NewUICanvas() *UICanvas {
	c := &UICanvas{newUIBase(nil)}
	c.Init("width", "100%")
	c.Init("height", "100%")
	return c
}

func (*UICanvas) ClassID() ecs.ClassID { return ecs.ClassUIScreenSpaceShape }

type UIContainerRect struct{ UIBase }

func NewUIContainerRect(parent UIShape) *UIContainerRect {
	r := &UIContainerRect{newUIBase(parent,
		ecs.Data("thickness"),
		ecs.Data("color"),
		ecs.Data("alignmentUsesSize"),
	)}
	defaults(r, map[string]any{
		"thickness":         0.0,
		"color":             math.Color4{},
		"alignmentUsesSize": true,
	})
	return r
}

func (*UIContainerRect) ClassID() ecs.ClassID { return ecs.ClassUIContainerRect }

func (r *UIContainerRect) SetColor(c math.Color4) { r.MustSet("color", c) }

type UIText struct{ UIBase }

func NewUIText(parent UIShape, text string) *UIText {
	t := &UIText{newUIBase(parent,
		ecs.Data("outlineWidth"),
		ecs.Data("outlineColor"),
		ecs.Data("color"),
		ecs.Data("fontSize"),
		ecs.Data("fontAutoSize"),
		ecs.Ref("font"),
		ecs.Data("value"),
		ecs.Data("lineSpacing"),
		ecs.Data("lineCount"),
		ecs.Data("adaptWidth"),
		ecs.Data("adaptHeight"),
		ecs.Data("textWrapping"),
		ecs.Data("shadowBlur"),
		ecs.Data("shadowOffsetX"),
		ecs.Data("shadowOffsetY"),
		ecs.Data("shadowColor"),
		ecs.Data("hTextAlign"),
		ecs.Data("vTextAlign"),
		ecs.Data("paddingTop"),
		ecs.Data("paddingRight"),
		ecs.Data("paddingBottom"),
		ecs.Data("paddingLeft"),
	)}
	defaults(t, map[string]any{
		"outlineWidth":  0.0,
		"outlineColor":  math.White().ToColor4(1),
		"color":         math.White().ToColor4(1),
		"fontSize":      10.0,
		"fontAutoSize":  false,
		"value":         text,
		"lineSpacing":   0.0,
		"lineCount":     0.0,
		"adaptWidth":    false,
		"adaptHeight":   false,
		"textWrapping":  false,
		"shadowBlur":    0.0,
		"shadowOffsetX": 0.0,
		"shadowOffsetY": 0.0,
		"shadowColor":   math.Black().ToColor4(1),
		"hTextAlign":    HAlignLeft,
		"vTextAlign":    VAlignBottom,
		"paddingTop":    0.0,
		"paddingRight":  0.0,
		"paddingBottom": 0.0,
		"paddingLeft":   0.0,
	})
	return t
}

func (*UIText) ClassID() ecs.ClassID { return ecs.ClassUITextShape }

func (t *UIText) Value() string         { return value[string](t, "value") }
func (t *UIText) SetValue(v string)     { t.MustSet("value", v) }
func (t *UIText) SetFont(f *Font) error { return t.Set("font", f) }

// UIImage draws a region of a texture.
type UIImage struct{ UIBase }

func NewUIImage(parent UIShape, source TextureSource) *UIImage {
	i := &UIImage{newUIBase(parent,
		ecs.Data("sourceLeft"),
		ecs.Data("sourceTop"),
		ecs.Data("sourceWidth"),
		ecs.Data("sourceHeight"),
		ecs.Ref("source"),
		ecs.Data("paddingTop"),
		ecs.Data("paddingRight"),
		ecs.Data("paddingBottom"),
		ecs.Data("paddingLeft"),
		ecs.Data("sizeInPixels"),
	)}
	defaults(i, map[string]any{
		"sourceLeft":    0.0,
		"sourceTop":     0.0,
		"sourceWidth":   1.0,
		"sourceHeight":  1.0,
		"source":        source,
		"paddingTop":    0.0,
		"paddingRight":  0.0,
		"paddingBottom": 0.0,
		"paddingLeft":   0.0,
		"sizeInPixels":  true,
	})
	return i
}

func (*UIImage) ClassID() ecs.ClassID { return ecs.ClassUIImageShape }

func (i *UIImage) Source() TextureSource { return value[TextureSource](i, "source") }

func (i *UIImage) SetSource(t TextureSource) error { return i.Set("source", t) }

type UIButton struct{ UIBase }

func NewUIButton(parent UIShape, text string) *UIButton {
	b := &UIButton{newUIBase(parent,
		ecs.Data("fontSize"),
		ecs.Data("fontWeight"),
		ecs.Data("thickness"),
		ecs.Data("cornerRadius"),
		ecs.Data("color"),
		ecs.Data("background"),
		ecs.Data("paddingTop"),
		ecs.Data("paddingRight"),
		ecs.Data("paddingBottom"),
		ecs.Data("paddingLeft"),
		ecs.Data("shadowBlur"),
		ecs.Data("shadowOffsetX"),
		ecs.Data("shadowOffsetY"),
		ecs.Data("shadowColor"),
		ecs.Data("text"),
	)}
	defaults(b, map[string]any{
		"fontSize":      10.0,
		"fontWeight":    "bold",
		"thickness":     0.0,
		"cornerRadius":  0.0,
		"color":         math.White().ToColor4(1),
		"background":    math.Blue().ToColor4(1),
		"paddingTop":    0.0,
		"paddingRight":  0.0,
		"paddingBottom": 0.0,
		"paddingLeft":   0.0,
		"shadowBlur":    0.0,
		"shadowOffsetX": 0.0,
		"shadowOffsetY": 0.0,
		"shadowColor":   math.Black().ToColor4(1),
		"text":          text,
	})
	return b
}

func (*UIButton) ClassID() ecs.ClassID { return ecs.ClassUIButtonShape }
