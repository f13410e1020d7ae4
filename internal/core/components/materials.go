package components

import (
	"github.com/zeusync/scene/internal/core/ecs"
	"github.com/zeusync/scene/internal/core/math"
)

// TextureSource is a disposable component usable as a material texture.
type TextureSource interface {
	ecs.DisposableComponent
	textureSource()
}

type SamplingMode int

const (
	SamplingNearest   SamplingMode = 1
	SamplingBilinear  SamplingMode = 2
	SamplingTrilinear SamplingMode = 3
)

type WrapMode int

const (
	WrapClamp WrapMode = iota
	WrapRepeat
	WrapMirror
)

type TextureOptions struct {
	SamplingMode SamplingMode
	Wrap         WrapMode
	HasAlpha     bool
}

type Texture struct {
	*ecs.Disposable
}

func NewTexture(src string, opts TextureOptions) *Texture {
	t := &Texture{ecs.NewDisposable(ecs.Schema{
		ecs.ReadOnly("src"),
		ecs.ReadOnly("samplingMode"),
		ecs.ReadOnly("wrap"),
		ecs.ReadOnly("hasAlpha"),
	})}
	defaults(t, map[string]any{
		"src":          src,
		"samplingMode": opts.SamplingMode,
		"wrap":         opts.Wrap,
		"hasAlpha":     opts.HasAlpha,
	})
	return t
}

func (*Texture) ComponentName() string { return NameTexture }
func (*Texture) ClassID() ecs.ClassID  { return ecs.ClassTexture }
func (*Texture) textureSource()        {}

func (t *Texture) Src() string    { return value[string](t, "src") }
func (t *Texture) Wrap() WrapMode { return value[WrapMode](t, "wrap") }

type TransparencyMode int

const (
	TransparencyOpaque TransparencyMode = iota
	TransparencyAlphaTest
	TransparencyAlphaBlend
	TransparencyAlphaTestAndBlend
	TransparencyAuto
)

var materialSchema = ecs.Schema{
	ecs.Data("alphaTest"),
	ecs.Data("albedoColor"),
	ecs.Data("emissiveColor"),
	ecs.Data("metallic"),
	ecs.Data("roughness"),
	ecs.Data("reflectivityColor"),
	ecs.Data("directIntensity"),
	ecs.Data("microSurface"),
	ecs.Data("emissiveIntensity"),
	ecs.Data("specularIntensity"),
	ecs.Ref("albedoTexture"),
	ecs.Ref("alphaTexture"),
	ecs.Ref("emissiveTexture"),
	ecs.Ref("bumpTexture"),
	ecs.Data("castShadows"),
	ecs.Data("transparencyMode"),
}

// Material is the PBR material.
type Material struct {
	*ecs.Disposable
}

func NewMaterial() *Material {
	m := &Material{ecs.NewDisposable(materialSchema)}
	defaults(m, map[string]any{
		"alphaTest":        0.5,
		"castShadows":      true,
		"transparencyMode": TransparencyAuto,
	})
	return m
}

func (*Material) ComponentName() string { return NameMaterial }
func (*Material) ClassID() ecs.ClassID  { return ecs.ClassPBRMaterial }

func (m *Material) SetAlbedoColor(c math.Color3) { m.MustSet("albedoColor", c) }

func (m *Material) SetAlbedoTexture(t TextureSource) error   { return m.Set("albedoTexture", t) }
func (m *Material) SetAlphaTexture(t TextureSource) error    { return m.Set("alphaTexture", t) }
func (m *Material) SetEmissiveTexture(t TextureSource) error { return m.Set("emissiveTexture", t) }
func (m *Material) SetBumpTexture(t *Texture) error          { return m.Set("bumpTexture", t) }

// AlbedoTexture returns the referenced texture, or nil.
func (m *Material) AlbedoTexture() TextureSource { return value[TextureSource](m, "albedoTexture") }

type BasicMaterial struct {
	*ecs.Disposable
}

func NewBasicMaterial() *BasicMaterial {
	m := &BasicMaterial{ecs.NewDisposable(ecs.Schema{
		ecs.Ref("texture"),
		ecs.Data("alphaTest"),
		ecs.Data("castShadows"),
	})}
	defaults(m, map[string]any{"alphaTest": 0.5, "castShadows": true})
	return m
}

func (*BasicMaterial) ComponentName() string { return NameMaterial }
func (*BasicMaterial) ClassID() ecs.ClassID  { return ecs.ClassBasicMaterial }

func (m *BasicMaterial) SetTexture(t TextureSource) error { return m.Set("texture", t) }
