package components

import (
	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is implemented by every collider shape. The physics world uses
// Bounds for broad contact resolution against static boxes.
type Collider interface {
	engine.Component
	Bounds() (lo, hi rl.Vector3)
}

var (
	_ Collider = (*BoxCollider)(nil)
	_ Collider = (*SphereCollider)(nil)
	_ Collider = (*CapsuleCollider)(nil)
)
