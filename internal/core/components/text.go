package components

import (
	"github.com/zeusync/scene/internal/core/ecs"
	"github.com/zeusync/scene/internal/core/math"
)

// Built-in font sources.
const (
	FontSanFrancisco         = "builtin:SF-UI-Text-Regular SDF"
	FontSanFranciscoHeavy    = "builtin:SF-UI-Text-Heavy SDF"
	FontSanFranciscoSemibold = "builtin:SF-UI-Text-Semibold SDF"
	FontLiberationSans       = "builtin:LiberationSans SDF"
	FontSansSerif            = "SansSerif"
	FontSansSerifHeavy       = "SansSerif_Heavy"
	FontSansSerifBold        = "SansSerif_Bold"
	FontSansSerifSemiBold    = "SansSerif_SemiBold"
)

type Font struct {
	*ecs.Disposable
}

func NewFont(src string) *Font {
	f := &Font{ecs.NewDisposable(ecs.Schema{ecs.ReadOnly("src")})}
	f.Init("src", src)
	return f
}

func (*Font) ComponentName() string { return NameFont }
func (*Font) ClassID() ecs.ClassID  { return ecs.ClassFont }
func (f *Font) Src() string         { return value[string](f, "src") }

var textSchema = ecs.Schema{
	ecs.Data("outlineWidth"),
	ecs.Data("outlineColor"),
	ecs.Data("color"),
	ecs.Data("fontSize"),
	ecs.Ref("font"),
	ecs.Data("opacity"),
	ecs.Data("value"),
	ecs.Data("lineSpacing"),
	ecs.Data("lineCount"),
	ecs.Data("textWrapping"),
	ecs.Data("shadowBlur"),
	ecs.Data("shadowOffsetX"),
	ecs.Data("shadowOffsetY"),
	ecs.Data("shadowColor"),
	ecs.Data("hTextAlign"),
	ecs.Data("vTextAlign"),
	ecs.Data("width"),
	ecs.Data("height"),
	ecs.Data("paddingTop"),
	ecs.Data("paddingRight"),
	ecs.Data("paddingBottom"),
	ecs.Data("paddingLeft"),
	ecs.Data("billboard"),
	ecs.Data("visible"),
}

// TextShape renders text in world space.
type TextShape struct {
	*ecs.Observable
}

func NewTextShape(text string) *TextShape {
	t := &TextShape{ecs.NewObservable(textSchema)}
	defaults(t, map[string]any{
		"outlineWidth":  0.0,
		"outlineColor":  math.White(),
		"color":         math.White(),
		"fontSize":      10.0,
		"opacity":       1.0,
		"value":         text,
		"lineSpacing":   "0px",
		"lineCount":     0.0,
		"textWrapping":  false,
		"shadowBlur":    0.0,
		"shadowOffsetX": 0.0,
		"shadowOffsetY": 0.0,
		"shadowColor":   math.White(),
		"hTextAlign":    "center",
		"vTextAlign":    "center",
		"width":         1.0,
		"height":        1.0,
		"paddingTop":    0.0,
		"paddingRight":  0.0,
		"paddingBottom": 0.0,
		"paddingLeft":   0.0,
		"billboard":     false,
		"visible":       true,
	})
	return t
}

func (*TextShape) ComponentName() string { return NameText }
func (*TextShape) ClassID() ecs.ClassID  { return ecs.ClassTextShape }

func (t *TextShape) Value() string         { return value[string](t, "value") }
func (t *TextShape) SetValue(v string)     { t.MustSet("value", v) }
func (t *TextShape) SetFont(f *Font) error { return t.Set("font", f) }
