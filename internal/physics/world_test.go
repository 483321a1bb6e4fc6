package physics

import (
	"testing"

	"cubejam/internal/components"
	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBody(name string, pos rl.Vector3) (*engine.GameObject, *components.Rigidbody) {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	rb := components.NewRigidbody()
	rb.Friction = 0
	rb.CanSleep = false
	g.AddComponent(rb)
	g.AddComponent(components.NewSphereCollider(0.5))
	return g, rb
}

func newStaticBox(name string, center, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = center
	g.AddComponent(components.NewBoxCollider(size))
	return g
}

func TestAddObjectSortsByBodyKind(t *testing.T) {
	p := NewPhysicsWorld(nil)
	dyn, _ := newBody("Dyn", rl.Vector3{})
	kin, kinRb := newBody("Kin", rl.Vector3{})
	kinRb.IsKinematic = true
	static := newStaticBox("Cube", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})

	p.AddObject(dyn)
	p.AddObject(kin)
	p.AddObject(static)

	assert.Equal(t, []*engine.GameObject{dyn}, p.Objects)
	assert.Equal(t, []*engine.GameObject{kin}, p.Kinematics)
	assert.Equal(t, []*engine.GameObject{static}, p.Statics)
	assert.Len(t, p.AllObjects(), 3)

	p.RemoveObject(kin)
	assert.Empty(t, p.Kinematics)
}

func TestStepAppliesForceOnce(t *testing.T) {
	p := NewPhysicsWorld(nil)
	p.Gravity = rl.Vector3{}
	g, rb := newBody("Ball", rl.Vector3{})
	rb.Mass = 2
	p.AddObject(g)

	rb.AddForce(rl.Vector3{X: 4})
	rb.AddForce(rl.Vector3{X: 4})
	p.Step(0.5)

	// a = 8/2 = 4, v = 2, x = 1
	assert.InDelta(t, 2, rb.Velocity.X, 1e-5)
	assert.InDelta(t, 1, g.Transform.Position.X, 1e-5)
	assert.Equal(t, rl.Vector3{}, rb.PendingForce())

	p.Step(0.5)
	assert.InDelta(t, 2, rb.Velocity.X, 1e-5, "no force, no acceleration")
	assert.InDelta(t, 2, g.Transform.Position.X, 1e-5)
}

func TestStepGravityAndFriction(t *testing.T) {
	p := NewPhysicsWorld(nil)
	p.Gravity = rl.Vector3{Y: -10}
	g, rb := newBody("Ball", rl.Vector3{Y: 100})
	p.AddObject(g)

	p.Step(0.1)
	assert.InDelta(t, -1, rb.Velocity.Y, 1e-5)

	rb.UseGravity = false
	rb.Friction = 5
	p.Step(0.1)
	assert.InDelta(t, -0.5, rb.Velocity.Y, 1e-5)
}

func TestStepSkipsParentedAndKinematic(t *testing.T) {
	p := NewPhysicsWorld(nil)
	player := engine.NewGameObject("Player")
	held, rb := newBody("Crate", rl.Vector3{})
	held.SetParent(player)
	p.AddObject(held)

	rb.AddForce(rl.Vector3{X: 10})
	p.Step(0.1)

	assert.Equal(t, rl.Vector3{}, held.Transform.Position)
	assert.Equal(t, rl.Vector3{}, rb.PendingForce(), "force is still consumed")

	held.SetParent(nil)
	rb.IsKinematic = true
	p.Step(0.1)
	assert.Equal(t, rl.Vector3{}, held.Transform.Position)
}

func TestStepRestsOnStaticBox(t *testing.T) {
	p := NewPhysicsWorld(nil)
	p.Gravity = rl.Vector3{Y: -10}
	cube := newStaticBox("Cube", rl.Vector3{}, rl.Vector3{X: 10, Y: 10, Z: 10})
	ball, rb := newBody("Ball", rl.Vector3{Y: 5.6})
	p.AddObject(cube)
	p.AddObject(ball)

	for i := 0; i < 120; i++ {
		p.Step(1.0 / 60)
	}

	// Sphere radius 0.5 resting on the top face at y = 5.
	assert.InDelta(t, 5.5, ball.Transform.Position.Y, 0.01)
	assert.LessOrEqual(t, rb.Velocity.Y, float32(0))
	assert.Greater(t, rb.Velocity.Y, float32(-0.5))
}

func TestSleepingBodyWakesOnForce(t *testing.T) {
	p := NewPhysicsWorld(nil)
	p.Gravity = rl.Vector3{}
	g, rb := newBody("Ball", rl.Vector3{})
	rb.CanSleep = true
	p.AddObject(g)

	for i := 0; i < 30; i++ {
		p.Step(0.05)
	}
	require.True(t, rb.IsSleeping)

	rb.AddForce(rl.Vector3{Z: 10})
	p.Step(0.1)
	assert.False(t, rb.IsSleeping)
	assert.Greater(t, g.Transform.Position.Z, float32(0))
}

func TestSetGravityWakesBodies(t *testing.T) {
	p := NewPhysicsWorld(nil)
	g, rb := newBody("Ball", rl.Vector3{})
	rb.IsSleeping = true
	p.AddObject(g)

	p.SetGravity(rl.Vector3{Z: 9.81})

	assert.False(t, rb.IsSleeping)
	assert.Equal(t, rl.Vector3{Z: 9.81}, p.Gravity)
}

func TestAABBResolve(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{Y: 0.9}, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10})

	push := a.Resolve(b)
	assert.InDelta(t, 0.1, push.Y, 1e-5)
	assert.Zero(t, push.X)
	assert.Zero(t, push.Z)

	far := NewAABBFromCenter(rl.Vector3{Y: 5}, rl.Vector3{X: 1, Y: 1, Z: 1})
	assert.Equal(t, rl.Vector3{}, far.Resolve(b))
	assert.True(t, b.Contains(rl.Vector3{X: 5}))
	assert.False(t, b.Contains(rl.Vector3{X: 5.1}))
}

func newBoxBody(name string, pos, size rl.Vector3, mass float32) (*engine.GameObject, *components.Rigidbody) {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	rb := components.NewRigidbody()
	rb.Mass = mass
	rb.Friction = 0
	rb.UseGravity = false
	g.AddComponent(rb)
	g.AddComponent(components.NewBoxCollider(size))
	return g, rb
}

func TestStepSeparatesDynamicBodies(t *testing.T) {
	p := NewPhysicsWorld(nil)
	unit := rl.Vector3{X: 1, Y: 1, Z: 1}
	light, lightRb := newBoxBody("Light", rl.Vector3{}, unit, 1)
	heavy, heavyRb := newBoxBody("Heavy", rl.Vector3{Z: 0.7}, unit, 2)
	p.AddObject(light)
	p.AddObject(heavy)

	p.Step(1.0 / 60)

	// 0.3 of overlap, two thirds taken by the lighter body.
	assert.InDelta(t, -0.2, light.Transform.Position.Z, 1e-4)
	assert.InDelta(t, 0.8, heavy.Transform.Position.Z, 1e-4)
	assert.InDelta(t, 1, heavy.Transform.Position.Z-light.Transform.Position.Z, 1e-4)
	assert.Equal(t, rl.Vector3{}, lightRb.Velocity)
	assert.Equal(t, rl.Vector3{}, heavyRb.Velocity)
}

func TestStepPushingBodiesShareVelocity(t *testing.T) {
	p := NewPhysicsWorld(nil)
	unit := rl.Vector3{X: 1, Y: 1, Z: 1}
	pusher, pusherRb := newBoxBody("Pusher", rl.Vector3{}, unit, 1)
	crate, crateRb := newBoxBody("Crate", rl.Vector3{Z: 1.05}, unit, 1)
	crateRb.IsSleeping = true
	p.AddObject(pusher)
	p.AddObject(crate)

	pusherRb.Velocity = rl.Vector3{Z: 6}
	p.Step(1.0 / 60)

	assert.False(t, crateRb.IsSleeping)
	assert.InDelta(t, 3, pusherRb.Velocity.Z, 1e-4)
	assert.InDelta(t, 3, crateRb.Velocity.Z, 1e-4)
	gap := crate.Transform.Position.Z - pusher.Transform.Position.Z
	assert.GreaterOrEqual(t, gap, float32(1-1e-4))
}

func TestStepIgnoresCarriedBodiesInPairs(t *testing.T) {
	p := NewPhysicsWorld(nil)
	unit := rl.Vector3{X: 1, Y: 1, Z: 1}
	player, _ := newBoxBody("Player", rl.Vector3{}, unit, 1)
	held, heldRb := newBoxBody("Held", rl.Vector3{Z: 0.5}, unit, 1)
	p.AddObject(player)
	p.AddObject(held)
	// Picked up after it was registered as dynamic.
	heldRb.IsKinematic = true

	p.Step(1.0 / 60)

	assert.Equal(t, rl.Vector3{}, player.Transform.Position)
	assert.Equal(t, rl.Vector3{Z: 0.5}, held.Transform.Position)
}
