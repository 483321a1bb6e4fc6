package components

import (
	"testing"

	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRigidbodyAddForceAccumulates(t *testing.T) {
	rb := NewRigidbody()

	rb.AddForce(rl.Vector3{X: 1})
	rb.AddForce(rl.Vector3{X: 2, Z: -1})

	assert.Equal(t, rl.Vector3{X: 3, Z: -1}, rb.PendingForce())
	assert.Equal(t, rl.Vector3{X: 3, Z: -1}, rb.ConsumeForce())
	assert.Equal(t, rl.Vector3{}, rb.PendingForce(), "force is consumed once")
}

func TestRigidbodyAddForceWakes(t *testing.T) {
	rb := NewRigidbody()
	rb.IsSleeping = true

	rb.AddForce(rl.Vector3{})
	assert.True(t, rb.IsSleeping, "a zero force is not a push")

	rb.AddForce(rl.Vector3{Y: 1})
	assert.False(t, rb.IsSleeping)
}

func TestRigidbodySleepsWhenStill(t *testing.T) {
	rb := NewRigidbody()

	rb.TrySleep(0.1)
	rb.TrySleep(0.1)
	assert.False(t, rb.IsSleeping)
	rb.TrySleep(0.15)
	assert.True(t, rb.IsSleeping)

	moving := NewRigidbody()
	moving.Velocity = rl.Vector3{X: 5}
	for i := 0; i < 10; i++ {
		moving.TrySleep(0.1)
	}
	assert.False(t, moving.IsSleeping)

	never := NewRigidbody()
	never.CanSleep = false
	never.TrySleep(1)
	assert.False(t, never.IsSleeping)
}

func TestRigidbodyFromProps(t *testing.T) {
	c, err := engine.CreateComponent("rigidbody", engine.Props{
		"mass":        2.0,
		"friction":    4,
		"useGravity":  false,
		"isKinematic": true,
	})
	require.NoError(t, err)
	rb, ok := c.(*Rigidbody)
	require.True(t, ok)

	assert.Equal(t, float32(2), rb.Mass)
	assert.Equal(t, float32(4), rb.Friction)
	assert.False(t, rb.UseGravity)
	assert.True(t, rb.IsKinematic)
}
