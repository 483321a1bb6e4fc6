package components

import (
	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("rigidbody", func(props engine.Props) (engine.Component, error) {
		rb := NewRigidbody()
		rb.Mass = props.Float("mass", rb.Mass)
		rb.Friction = props.Float("friction", rb.Friction)
		rb.UseGravity = props.Bool("useGravity", rb.UseGravity)
		rb.IsKinematic = props.Bool("isKinematic", rb.IsKinematic)
		rb.CanSleep = props.Bool("canSleep", rb.CanSleep)
		return rb, nil
	})
}

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.05 // units/sec - below this, object might sleep
	SleepTimeThreshold     = 0.3  // seconds of low velocity before sleeping
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity    rl.Vector3
	Mass        float32
	Friction    float32 // fraction of velocity lost per second, 0 = ice
	UseGravity  bool
	IsKinematic bool // moved by its parent or by code, never by the solver

	// Sleep state - sleeping objects skip physics simulation
	IsSleeping bool
	sleepTimer float32
	CanSleep   bool

	// force accumulated since the last physics step
	force rl.Vector3
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:       1.0,
		Friction:   0.1,
		UseGravity: true,
		CanSleep:   true,
	}
}

// AddForce accumulates f on top of whatever was already applied this step.
// The physics world turns the total into acceleration on its next Step.
func (r *Rigidbody) AddForce(f rl.Vector3) {
	if f == (rl.Vector3{}) {
		return
	}
	r.force = rl.Vector3Add(r.force, f)
	r.Wake()
}

// PendingForce returns the force accumulated since the last step.
func (r *Rigidbody) PendingForce() rl.Vector3 {
	return r.force
}

// ConsumeForce returns the accumulated force and clears it.
func (r *Rigidbody) ConsumeForce() rl.Vector3 {
	f := r.force
	r.force = rl.Vector3{}
	return f
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep puts the body to sleep after it has been nearly still for a while.
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if !r.CanSleep || r.IsSleeping {
		return
	}

	if rl.Vector3Length(r.Velocity) < SleepVelocityThreshold {
		r.sleepTimer += deltaTime
		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Velocity = rl.Vector3{}
		}
	} else {
		r.sleepTimer = 0
	}
}
