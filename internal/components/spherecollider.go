package components

import (
	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("sphere_collider", func(props engine.Props) (engine.Component, error) {
		s := NewSphereCollider(props.Float("radius", 0.5))
		offset, err := props.Vector3("offset", rl.Vector3{})
		if err != nil {
			return nil, err
		}
		s.Offset = offset
		return s, nil
	})
}

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// WorldRadius scales the radius by the largest world scale axis.
func (s *SphereCollider) WorldRadius() float32 {
	sc := s.GetGameObject().WorldScale()
	return s.Radius * max(abs(sc.X), abs(sc.Y), abs(sc.Z))
}

// Bounds returns the world-space min and max corners.
func (s *SphereCollider) Bounds() (lo, hi rl.Vector3) {
	r := s.WorldRadius()
	half := rl.Vector3{X: r, Y: r, Z: r}
	center := s.GetCenter()
	return rl.Vector3Subtract(center, half), rl.Vector3Add(center, half)
}
