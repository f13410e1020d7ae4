package runtime

import (
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/zeusync/scene/internal/core/components"
	"github.com/zeusync/scene/internal/core/ecs"
	"github.com/zeusync/scene/internal/core/math"
	"github.com/zeusync/scene/internal/core/observability/log"
)

// Spinner rotates every entity holding a Transform and the spin marker.
type Spinner struct {
	group   *ecs.ComponentGroup
	degrees float64
}

const spinName = "demo.spin"

type spin struct{}

func (spin) ComponentName() string { return spinName }

func NewSpinner(degreesPerSecond float64) *Spinner {
	return &Spinner{degrees: degreesPerSecond}
}

func (s *Spinner) Activate(en *ecs.Engine) {
	s.group = en.MustComponentGroup(components.NameTransform, spinName)
}

func (s *Spinner) Update(dt float64) {
	for e := range s.group.Iter().Seq() {
		if tr, err := ecs.Get[*components.Transform](e); err == nil {
			tr.Rotate(math.Up(), s.degrees*dt)
		}
	}
}

// BuildDemo populates the scene with a clickable spinning crate, a label and
// a video screen.
func BuildDemo(s *Scene) error {
	en := s.Engine()
	if err := en.AddSystem(NewSpinner(45), ecs.PriorityDefault); err != nil {
		return err
	}

	wood := components.NewTexture("images/wood.png", components.TextureOptions{Wrap: components.WrapRepeat})
	crateMaterial := components.NewMaterial()
	if err := crateMaterial.SetAlbedoTexture(wood); err != nil {
		return eris.Wrap(err, "failed to texture crate")
	}

	pos := math.Vector3{X: 8, Y: 1, Z: 8}
	crate := en.NewEntity("crate")
	label := components.NewTextShape("clicks: 0")
	clicks := 0
	onClick, err := components.NewOnClick(func(any) {
		clicks++
		label.SetValue("clicks: " + strconv.Itoa(clicks))
		s.log.Info("crate clicked", log.Entity(crate.ID()), log.Int("clicks", clicks))
	}, components.WithHoverText("Spin"))
	if err != nil {
		return err
	}

	for _, c := range []ecs.Component{
		components.NewTransform(components.TransformOptions{Position: &pos}),
		components.NewBoxShape(),
		crateMaterial,
		onClick,
		spin{},
	} {
		if err := crate.AddComponent(c); err != nil {
			return eris.Wrap(err, "failed to build crate")
		}
	}

	above := math.Vector3{Y: 1.5}
	caption := en.NewEntity("caption")
	if err := caption.AddComponent(components.NewTransform(components.TransformOptions{Position: &above})); err != nil {
		return err
	}
	if err := caption.AddComponent(label); err != nil {
		return err
	}
	if err := caption.AddComponent(components.NewBillboard(false, true, false)); err != nil {
		return err
	}
	if err := caption.SetParent(crate); err != nil {
		return err
	}

	if err := en.AddEntity(crate); err != nil {
		return err
	}
	return buildScreen(en)
}

func buildScreen(en *ecs.Engine) error {
	clip := components.NewVideoClip("videos/intro.mp4")
	if err := en.RegisterComponent(clip); err != nil {
		return err
	}
	video, err := components.NewVideoTexture(clip, components.TextureOptions{})
	if err != nil {
		return err
	}
	screenMaterial := components.NewBasicMaterial()
	if err := screenMaterial.SetTexture(video); err != nil {
		return err
	}

	pos := math.Vector3{X: 4, Y: 2, Z: 12}
	screen := en.NewEntity("screen")
	for _, c := range []ecs.Component{
		components.NewTransform(components.TransformOptions{Position: &pos}),
		components.NewPlaneShape(),
		screenMaterial,
	} {
		if err := screen.AddComponent(c); err != nil {
			return err
		}
	}
	if err := en.AddEntity(screen); err != nil {
		return err
	}
	video.Play()
	return nil
}
