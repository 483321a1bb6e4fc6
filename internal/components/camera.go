package components

import (
	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("camera", func(props engine.Props) (engine.Component, error) {
		c := NewCamera()
		c.FOV = props.Float("fov", c.FOV)
		c.Distance = props.Float("distance", c.Distance)
		c.Height = props.Float("height", c.Height)
		c.Smoothing = props.Float("smoothing", c.Smoothing)
		return c, nil
	})
}

// Camera is a third-person follow camera. It sits on its own object and
// trails Target, looking at it from Height along Normal and Distance along
// Back. Normal and Back are re-aimed by the game when the player changes
// cube face.
type Camera struct {
	engine.BaseComponent
	Target    *engine.GameObject
	FOV       float32
	Distance  float32
	Height    float32
	Smoothing float32 // 0 snaps, higher values lag more
	Normal    rl.Vector3
	Back      rl.Vector3
}

func NewCamera() *Camera {
	return &Camera{
		FOV:       45.0,
		Distance:  8,
		Height:    6,
		Smoothing: 4,
		Normal:    rl.Vector3{Y: 1},
		Back:      rl.Vector3{Z: -1},
	}
}

// Aim sets the view frame. normal is the up direction of the camera.
func (c *Camera) Aim(normal, back rl.Vector3) {
	c.Normal = rl.Vector3Normalize(normal)
	c.Back = rl.Vector3Normalize(back)
}

// DesiredPosition is where the camera wants to be this frame.
func (c *Camera) DesiredPosition() rl.Vector3 {
	if c.Target == nil {
		return c.GetGameObject().WorldPosition()
	}
	offset := rl.Vector3Add(rl.Vector3Scale(c.Normal, c.Height), rl.Vector3Scale(c.Back, c.Distance))
	return rl.Vector3Add(c.Target.WorldPosition(), offset)
}

func (c *Camera) Update(deltaTime float32) {
	g := c.GetGameObject()
	if g == nil {
		return
	}
	desired := c.DesiredPosition()
	if c.Smoothing <= 0 {
		g.Transform.Position = desired
		return
	}
	t := deltaTime * c.Smoothing
	if t > 1 {
		t = 1
	}
	g.Transform.Position = rl.Vector3Lerp(g.Transform.Position, desired, t)
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}
	target := rl.Vector3Add(g.WorldPosition(), rl.Vector3Scale(c.Back, -1))
	if c.Target != nil {
		target = c.Target.WorldPosition()
	}
	return rl.Camera3D{
		Position:   g.WorldPosition(),
		Target:     target,
		Up:         c.Normal,
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
