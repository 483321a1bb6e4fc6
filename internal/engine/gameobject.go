package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

var (
	axisForward = rl.Vector3{X: 0, Y: 0, Z: 1}
	axisUp      = rl.Vector3{X: 0, Y: 1, Z: 0}
	axisRight   = rl.Vector3{X: 1, Y: 0, Z: 0}
)

// Transform is the local pose of a GameObject relative to its parent.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

// SetEulerDegrees sets the rotation from pitch (X), yaw (Y) and roll (Z) in degrees.
func (t *Transform) SetEulerDegrees(x, y, z float32) {
	t.Rotation = rl.QuaternionFromEuler(x*rl.Deg2rad, y*rl.Deg2rad, z*rl.Deg2rad)
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.QuaternionIdentity(),
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddChild attaches child without touching its local transform.
func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// SetParent moves g under parent (nil detaches it) and rewrites the local
// transform so the world pose stays where it was.
func (g *GameObject) SetParent(parent *GameObject) {
	if g.Parent == parent {
		return
	}
	worldPos := g.WorldPosition()
	worldRot := g.WorldRotation()
	worldScale := g.WorldScale()

	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	if parent != nil {
		parent.AddChild(g)
	}

	g.SetWorldPosition(worldPos)
	g.SetWorldRotation(worldRot)
	if parent == nil {
		g.Transform.Scale = worldScale
		return
	}
	ps := parent.WorldScale()
	g.Transform.Scale = rl.Vector3{
		X: safeDiv(worldScale.X, ps.X),
		Y: safeDiv(worldScale.Y, ps.Y),
		Z: safeDiv(worldScale.Z, ps.Z),
	}
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentScale := g.Parent.WorldScale()
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}
	rotated := rl.Vector3RotateByQuaternion(scaled, g.Parent.WorldRotation())
	return rl.Vector3Add(g.Parent.WorldPosition(), rotated)
}

// SetWorldPosition places g at p in world space.
func (g *GameObject) SetWorldPosition(p rl.Vector3) {
	if g.Parent == nil {
		g.Transform.Position = p
		return
	}
	rel := rl.Vector3Subtract(p, g.Parent.WorldPosition())
	local := rl.Vector3RotateByQuaternion(rel, rl.QuaternionInvert(g.Parent.WorldRotation()))
	ps := g.Parent.WorldScale()
	g.Transform.Position = rl.Vector3{
		X: safeDiv(local.X, ps.X),
		Y: safeDiv(local.Y, ps.Y),
		Z: safeDiv(local.Z, ps.Z),
	}
}

func (g *GameObject) WorldRotation() rl.Quaternion {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.QuaternionMultiply(g.Parent.WorldRotation(), g.Transform.Rotation)
}

// SetWorldRotation sets the world-space orientation of g.
func (g *GameObject) SetWorldRotation(q rl.Quaternion) {
	if g.Parent == nil {
		g.Transform.Rotation = q
		return
	}
	g.Transform.Rotation = rl.QuaternionMultiply(rl.QuaternionInvert(g.Parent.WorldRotation()), q)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// Forward is the world-space local +Z axis.
func (g *GameObject) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(axisForward, g.WorldRotation())
}

// Up is the world-space local +Y axis.
func (g *GameObject) Up() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(axisUp, g.WorldRotation())
}

// Right is the world-space local +X axis.
func (g *GameObject) Right() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(axisRight, g.WorldRotation())
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return a
	}
	return a / b
}
