package input

import (
	"cubejam/internal/engine"
	"cubejam/internal/player"

	"go.uber.org/zap"
)

// Player is the part of the player controller the driver steers.
type Player interface {
	Move(horizontal, vertical float32)
	Rotate(horizontal, vertical float32)
	State() player.State
	RaycastForward() (*engine.GameObject, bool)
	PickUp(obj *engine.GameObject) bool
	Throw(strength float32)
	FinishThrow()
}

var _ Player = (*player.Controller)(nil)

// Driver feeds one Source into one Player each frame. The action button
// picks up what the player faces when idle and throws when carrying; the
// throwing state ends after ThrowDuration seconds.
type Driver struct {
	ThrowStrength float32
	ThrowDuration float32

	src    Source
	player Player
	log    *zap.Logger

	throwTimer float32
	throwing   bool
}

func NewDriver(src Source, p Player, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{
		ThrowStrength: 1,
		ThrowDuration: 0.5,
		src:           src,
		player:        p,
		log:           log.Named("input"),
	}
}

func (d *Driver) Tick(deltaTime float32) {
	h, v := d.src.Axes()
	d.player.Move(h, v)
	d.player.Rotate(h, v)

	if d.throwing {
		d.throwTimer -= deltaTime
		if d.throwTimer <= 0 {
			d.throwing = false
			d.player.FinishThrow()
		}
	}

	if !d.src.ActionPressed() {
		return
	}
	switch d.player.State() {
	case player.StateIdle:
		obj, ok := d.player.RaycastForward()
		if !ok {
			return
		}
		if d.player.PickUp(obj) {
			d.log.Info("picked up", zap.String("object", obj.Name))
		}
	case player.StatePicking:
		d.player.Throw(d.ThrowStrength)
		d.throwTimer = d.ThrowDuration
		d.throwing = true
		d.log.Info("throw", zap.Float32("strength", d.ThrowStrength))
	}
}

// Throwing reports whether a throw is waiting to finish.
func (d *Driver) Throwing() bool {
	return d.throwing
}
