// Package player implements the player character: force-based locomotion
// on the current cube face, stick-driven facing, a short forward probe for
// pickable props, and the pick/throw cycle.
package player

import (
	"cubejam/internal/components"
	"cubejam/internal/cube"
	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Defaults for a controller built without configuration.
const (
	DefaultMoveSpeed          = 0.01
	DefaultMaxRaycastDistance = 0.3
	DefaultDebugRayDuration   = 0.3
)

func init() {
	engine.RegisterComponent("player_controller", func(props engine.Props) (engine.Component, error) {
		c := NewController(Deps{})
		c.MoveSpeed = props.Float("moveSpeed", c.MoveSpeed)
		c.MaxRaycastDistance = props.Float("maxRaycastDistance", c.MaxRaycastDistance)
		c.DebugRayDuration = props.Float("debugRayDuration", c.DebugRayDuration)
		c.FaceSource = props.String("faceSource", c.FaceSource)
		return c, nil
	})
}

// FaceProvider reports which cube face the player stands on.
type FaceProvider interface {
	PlayerCubeFace() cube.Face
}

// Body accepts forces that add to whatever the physics step already has.
type Body interface {
	AddForce(force rl.Vector3)
}

// Raycaster answers ray queries against the physics world.
type Raycaster interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool)
}

// RayDrawer shows a diagnostic ray from origin to origin+delta for duration
// seconds.
type RayDrawer interface {
	Ray(origin, delta rl.Vector3, color rl.Color, duration float32)
}

// Target is the capability a hit object must expose to be carried.
type Target interface {
	IsMovable() bool
	IsPickable() bool
	MarkPicked()
}

// Deps are the controller's collaborators. Body and Raycaster may be left
// nil; Initialize then falls back to the owning object's Rigidbody and the
// scene's world. Faces may be left nil when FaceSource names an object in
// the scene that provides faces.
type Deps struct {
	Faces     FaceProvider
	Body      Body
	Raycaster Raycaster
	Drawer    RayDrawer
	Logger    *zap.Logger
}

type Controller struct {
	engine.BaseComponent

	MoveSpeed          float32
	MaxRaycastDistance float32
	DebugRayDuration   float32
	DebugRayColor      rl.Color
	FaceSource         string

	StateChanged engine.EventWithArg[State]

	faces     FaceProvider
	body      Body
	raycaster Raycaster
	drawer    RayDrawer
	log       *zap.Logger

	frames         OrientationTable
	upVector       rl.Vector3
	originRotation rl.Quaternion
	height         float32

	rayOrigin      rl.Vector3
	held           engine.GameObjectRef
	throwDirection rl.Vector3
	state          State
}

func NewController(deps Deps) *Controller {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		MoveSpeed:          DefaultMoveSpeed,
		MaxRaycastDistance: DefaultMaxRaycastDistance,
		DebugRayDuration:   DefaultDebugRayDuration,
		DebugRayColor:      rl.Blue,
		FaceSource:         "GameManager",
		faces:              deps.Faces,
		body:               deps.Body,
		raycaster:          deps.Raycaster,
		drawer:             deps.Drawer,
		log:                log.Named("player"),
		originRotation:     rl.QuaternionIdentity(),
	}
}

// SetDrawer replaces the debug ray sink.
func (c *Controller) SetDrawer(d RayDrawer) {
	c.drawer = d
}

// SetLogger replaces the logger.
func (c *Controller) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	c.log = log.Named("player")
}

func (c *Controller) Start() {
	c.Initialize()
}

func (c *Controller) Update(deltaTime float32) {
	c.Tick(deltaTime)
}

// Initialize captures the reference frame: the orientation table, the
// current up vector and local rotation, and the capsule height.
func (c *Controller) Initialize() {
	g := c.GetGameObject()
	if g == nil {
		return
	}
	c.resolveDeps(g)

	c.frames = DefaultOrientationTable()
	c.upVector = g.Up()
	c.originRotation = g.Transform.Rotation
	if capsule := engine.GetComponent[*components.CapsuleCollider](g); capsule != nil {
		c.height = capsule.Height
	}

	c.setState(StateIdle)
}

func (c *Controller) resolveDeps(g *engine.GameObject) {
	if c.body == nil {
		if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil {
			c.body = rb
		}
	}
	if c.raycaster == nil && g.Scene != nil && g.Scene.World != nil {
		c.raycaster = g.Scene.World
	}
	if c.faces == nil && g.Scene != nil && c.FaceSource != "" {
		if src := g.Scene.FindByName(c.FaceSource); src != nil {
			c.faces = engine.FindComponent[FaceProvider](src)
		}
	}
}

// Tick recomputes the probe origin at the top of the capsule and draws the
// probe ray.
func (c *Controller) Tick(deltaTime float32) {
	g := c.GetGameObject()
	if g == nil {
		return
	}
	lift := c.height * 0.5 * g.WorldScale().Y
	c.rayOrigin = rl.Vector3Add(g.WorldPosition(), rl.Vector3Scale(c.upVector, lift))

	if c.drawer != nil {
		c.drawer.Ray(c.rayOrigin, rl.Vector3Scale(g.Forward(), c.MaxRaycastDistance), c.DebugRayColor, c.DebugRayDuration)
	}
}

// Move pushes the body along the current face's frame. Zero input is a
// no-op; a face without a frame yields a zero force.
func (c *Controller) Move(horizontal, vertical float32) {
	if horizontal == 0 && vertical == 0 {
		return
	}
	if c.body == nil {
		return
	}

	horizontalSpeed := horizontal * c.MoveSpeed
	verticalSpeed := vertical * c.MoveSpeed

	frame, _ := c.frames.Lookup(c.currentFace())
	move := rl.Vector3Add(
		rl.Vector3Scale(frame.Right, horizontalSpeed),
		rl.Vector3Scale(frame.Forward, verticalSpeed),
	)
	c.body.AddForce(move)
}

func (c *Controller) currentFace() cube.Face {
	if c.faces == nil {
		return cube.Face(-1)
	}
	return c.faces.PlayerCubeFace()
}

// Rotate sets an absolute facing from the stick direction, relative to the
// rotation captured at Initialize. Zero input is a no-op.
func (c *Controller) Rotate(horizontal, vertical float32) {
	if horizontal == 0 && vertical == 0 {
		return
	}
	g := c.GetGameObject()
	if g == nil {
		return
	}

	angle := FacingAngle(horizontal, vertical)
	turn := rl.QuaternionFromAxisAngle(c.upVector, -angle*rl.Deg2rad)
	g.SetWorldRotation(rl.QuaternionMultiply(turn, c.originRotation))
}

// RaycastForward probes MaxRaycastDistance ahead from the top of the
// capsule. It reports the hit object only if it is movable and currently
// pickable. Neither the controller nor the world is modified.
func (c *Controller) RaycastForward() (*engine.GameObject, bool) {
	g := c.GetGameObject()
	if g == nil || c.raycaster == nil {
		return nil, false
	}
	hit, ok := c.raycaster.Raycast(c.rayOrigin, g.Forward(), c.MaxRaycastDistance)
	if !ok || hit.GameObject == nil {
		return nil, false
	}

	target := engine.FindComponent[Target](hit.GameObject)
	if target == nil || !target.IsMovable() {
		return nil, false
	}
	if !target.IsPickable() {
		return nil, false
	}
	return hit.GameObject, true
}

// PickUp takes hold of obj. It fails without side effects unless the
// player is idle and obj exposes Target.
func (c *Controller) PickUp(obj *engine.GameObject) bool {
	if c.state != StateIdle {
		return false
	}
	g := c.GetGameObject()
	target := engine.FindComponent[Target](obj)
	if g == nil || target == nil {
		return false
	}

	target.MarkPicked()
	obj.SetParent(g)

	c.setState(StatePicking)
	c.held.Set(obj)
	c.log.Debug("picked up object", zap.String("object", obj.Name), zap.Uint64("uid", obj.UID))
	return true
}

// Throw enters the throwing state. The direction is computed from the
// current pose and kept for inspection; strength is not used yet.
func (c *Controller) Throw(strength float32) {
	if g := c.GetGameObject(); g != nil {
		c.throwDirection = rl.Vector3Normalize(rl.Vector3Add(g.Up(), g.Forward()))
	}
	// TODO: launch the held object along throwDirection scaled by strength
	// and the frame time, then detach it from the player.
	c.setState(StateThrowing)
}

// FinishThrow returns to idle. The held reference and the held object's
// parenting are left as they are.
func (c *Controller) FinishThrow() {
	c.setState(StateIdle)
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	prev := c.state
	c.state = s
	c.log.Debug("state changed", zap.Stringer("from", prev), zap.Stringer("to", s))
	c.StateChanged.Invoke(s)
}

func (c *Controller) State() State {
	return c.state
}

// Held is the weak reference to the last object picked up.
func (c *Controller) Held() engine.GameObjectRef {
	return c.held
}

// HeldObject resolves Held against the player's scene.
func (c *Controller) HeldObject() *engine.GameObject {
	g := c.GetGameObject()
	if g == nil {
		return nil
	}
	return c.held.Get(g.Scene)
}

func (c *Controller) RayOrigin() rl.Vector3 {
	return c.rayOrigin
}

func (c *Controller) ThrowDirection() rl.Vector3 {
	return c.throwDirection
}

func (c *Controller) Height() float32 {
	return c.height
}

// UpVector is the up axis captured at Initialize.
func (c *Controller) UpVector() rl.Vector3 {
	return c.upVector
}

// OriginRotation is the local rotation captured at Initialize.
func (c *Controller) OriginRotation() rl.Quaternion {
	return c.originRotation
}

// Frames exposes the orientation table for inspection and overrides.
func (c *Controller) Frames() *OrientationTable {
	return &c.frames
}
