package components

import (
	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("capsule_collider", func(props engine.Props) (engine.Component, error) {
		c := NewCapsuleCollider(props.Float("height", 2), props.Float("radius", 0.5))
		offset, err := props.Vector3("offset", rl.Vector3{})
		if err != nil {
			return nil, err
		}
		c.Offset = offset
		return c, nil
	})
}

// CapsuleCollider is a capsule aligned with the object's local Y axis.
// Height is the full tip-to-tip length in local units.
type CapsuleCollider struct {
	engine.BaseComponent
	Height float32
	Radius float32
	Offset rl.Vector3
}

func NewCapsuleCollider(height, radius float32) *CapsuleCollider {
	return &CapsuleCollider{Height: height, Radius: radius}
}

// GetCenter returns the world-space center of this collider
func (c *CapsuleCollider) GetCenter() rl.Vector3 {
	g := c.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), c.Offset)
}

// WorldRadius scales the radius by the larger horizontal world scale.
func (c *CapsuleCollider) WorldRadius() float32 {
	s := c.GetGameObject().WorldScale()
	return c.Radius * max(abs(s.X), abs(s.Z))
}

// Segment returns the end points of the capsule's inner segment in world
// space. A capsule shorter than its diameter collapses to a sphere.
func (c *CapsuleCollider) Segment() (a, b rl.Vector3) {
	g := c.GetGameObject()
	center := c.GetCenter()
	half := c.Height*abs(g.WorldScale().Y)*0.5 - c.WorldRadius()
	if half < 0 {
		half = 0
	}
	axis := rl.Vector3Scale(g.Up(), half)
	return rl.Vector3Subtract(center, axis), rl.Vector3Add(center, axis)
}

// Bounds returns the world-space min and max corners.
func (c *CapsuleCollider) Bounds() (lo, hi rl.Vector3) {
	a, b := c.Segment()
	r := c.WorldRadius()
	pad := rl.Vector3{X: r, Y: r, Z: r}
	return rl.Vector3Subtract(rl.Vector3Min(a, b), pad), rl.Vector3Add(rl.Vector3Max(a, b), pad)
}
