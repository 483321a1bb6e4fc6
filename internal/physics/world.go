package physics

import (
	"cubejam/internal/components"
	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// DefaultGravity points down the world Y axis.
var DefaultGravity = rl.Vector3{X: 0, Y: -9.81, Z: 0}

type PhysicsWorld struct {
	Gravity    rl.Vector3
	Objects    []*engine.GameObject // dynamic rigidbodies
	Kinematics []*engine.GameObject // kinematic rigidbodies
	Statics    []*engine.GameObject // no rigidbody (the cube, walls)

	log *zap.Logger
}

func NewPhysicsWorld(log *zap.Logger) *PhysicsWorld {
	if log == nil {
		log = zap.NewNop()
	}
	return &PhysicsWorld{
		Gravity:    DefaultGravity,
		Objects:    make([]*engine.GameObject, 0),
		Kinematics: make([]*engine.GameObject, 0),
		Statics:    make([]*engine.GameObject, 0),
		log:        log.Named("physics"),
	}
}

func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	if rb == nil {
		p.Statics = append(p.Statics, g)
	} else if rb.IsKinematic {
		p.Kinematics = append(p.Kinematics, g)
	} else {
		p.Objects = append(p.Objects, g)
	}
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	p.Objects = removeObject(p.Objects, g)
	p.Kinematics = removeObject(p.Kinematics, g)
	p.Statics = removeObject(p.Statics, g)
}

func removeObject(list []*engine.GameObject, g *engine.GameObject) []*engine.GameObject {
	for i, obj := range list {
		if obj == g {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// SetGravity changes gravity and wakes every dynamic body so resting
// objects fall the new way.
func (p *PhysicsWorld) SetGravity(g rl.Vector3) {
	if g == p.Gravity {
		return
	}
	p.Gravity = g
	for _, obj := range p.Objects {
		if rb := engine.GetComponent[*components.Rigidbody](obj); rb != nil {
			rb.Wake()
		}
	}
	p.log.Debug("gravity changed", zap.Float32("x", g.X), zap.Float32("y", g.Y), zap.Float32("z", g.Z))
}

// Step advances every dynamic body by deltaTime. Forces added since the
// previous step are converted to acceleration and then cleared. Bodies that
// are parented to another object, or flagged kinematic, are carried by
// their parent and skipped; their pending force is still consumed. After
// integration overlapping dynamic bodies are pushed apart.
func (p *PhysicsWorld) Step(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}
	for _, obj := range p.Objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil {
			continue
		}
		force := rb.ConsumeForce()
		if !obj.Active || obj.Parent != nil || rb.IsKinematic || rb.IsSleeping {
			continue
		}
		p.integrate(obj, rb, force, deltaTime)
		p.resolveStatics(obj, rb)
		rb.TrySleep(deltaTime)
	}
	p.resolveBodies()
}

func (p *PhysicsWorld) integrate(obj *engine.GameObject, rb *components.Rigidbody, force rl.Vector3, dt float32) {
	accel := rl.Vector3Scale(force, 1/bodyMass(rb))
	if rb.UseGravity {
		accel = rl.Vector3Add(accel, p.Gravity)
	}
	rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(accel, dt))

	damp := 1 - rb.Friction*dt
	if damp < 0 {
		damp = 0
	}
	rb.Velocity = rl.Vector3Scale(rb.Velocity, damp)

	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(rb.Velocity, dt))
}

// resolveStatics pushes obj out of every static box it overlaps and removes
// the velocity component that drove it in.
func (p *PhysicsWorld) resolveStatics(obj *engine.GameObject, rb *components.Rigidbody) {
	col := engine.FindComponent[components.Collider](obj)
	if col == nil {
		return
	}
	for _, static := range p.Statics {
		box := engine.GetComponent[*components.BoxCollider](static)
		if box == nil || !static.Active {
			continue
		}
		lo, hi := col.Bounds()
		self := AABB{Min: lo, Max: hi}
		slo, shi := box.Bounds()
		push := self.Resolve(AABB{Min: slo, Max: shi})
		if push == (rl.Vector3{}) {
			continue
		}
		obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, push)

		n := rl.Vector3Normalize(push)
		if into := rl.Vector3DotProduct(rb.Velocity, n); into < 0 {
			rb.Velocity = rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(n, into))
		}
	}
}

// AllObjects returns dynamic, kinematic and static objects in that order.
func (p *PhysicsWorld) AllObjects() []*engine.GameObject {
	all := make([]*engine.GameObject, 0, len(p.Objects)+len(p.Kinematics)+len(p.Statics))
	all = append(all, p.Objects...)
	all = append(all, p.Kinematics...)
	all = append(all, p.Statics...)
	return all
}
