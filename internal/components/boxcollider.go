package components

import (
	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("box_collider", func(props engine.Props) (engine.Component, error) {
		size, err := props.Vector3("size", rl.Vector3{X: 1, Y: 1, Z: 1})
		if err != nil {
			return nil, err
		}
		offset, err := props.Vector3("offset", rl.Vector3{})
		if err != nil {
			return nil, err
		}
		b := NewBoxCollider(size)
		b.Offset = offset
		return b, nil
	})
}

// BoxCollider is an axis-aligned box; object rotation is ignored.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns the size scaled by the object's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{
		X: abs(b.Size.X * s.X),
		Y: abs(b.Size.Y * s.Y),
		Z: abs(b.Size.Z * s.Z),
	}
}

// Bounds returns the world-space min and max corners.
func (b *BoxCollider) Bounds() (lo, hi rl.Vector3) {
	half := rl.Vector3Scale(b.GetWorldSize(), 0.5)
	center := b.GetCenter()
	return rl.Vector3Subtract(center, half), rl.Vector3Add(center, half)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
