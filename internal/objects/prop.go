// Package objects holds the interactive props that sit on the cube.
package objects

import (
	"fmt"

	"cubejam/internal/components"
	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("prop", func(props engine.Props) (engine.Component, error) {
		kind, err := ParseKind(props.String("kind", "movable"))
		if err != nil {
			return nil, err
		}
		return NewProp(kind), nil
	})
}

// Kind says whether a prop can ever be carried.
type Kind int

const (
	KindStatic Kind = iota
	KindMovable
)

func ParseKind(s string) (Kind, error) {
	switch s {
	case "static":
		return KindStatic, nil
	case "movable":
		return KindMovable, nil
	}
	return 0, fmt.Errorf("unknown prop kind %q", s)
}

// State is where a prop is in the carry cycle.
type State int

const (
	StateGround State = iota // resting, can be picked up
	StatePicked              // carried by the player
	StateThrown              // released, in flight
)

func (s State) String() string {
	switch s {
	case StateGround:
		return "ground"
	case StatePicked:
		return "picked"
	case StateThrown:
		return "thrown"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Prop marks an object the player can interact with.
type Prop struct {
	engine.BaseComponent
	Kind  Kind
	State State
}

func NewProp(kind Kind) *Prop {
	return &Prop{Kind: kind, State: StateGround}
}

func (p *Prop) IsMovable() bool {
	return p.Kind == KindMovable
}

// IsPickable is true only while the prop rests on the ground.
func (p *Prop) IsPickable() bool {
	return p.State == StateGround
}

// MarkPicked moves the prop into the picked state.
func (p *Prop) MarkPicked() {
	p.SetState(StatePicked)
}

// SetState changes the carry state. A carried prop's rigidbody turns
// kinematic and stops, so the solver leaves it to its parent.
func (p *Prop) SetState(s State) {
	p.State = s
	rb := engine.GetComponent[*components.Rigidbody](p.GetGameObject())
	if rb == nil {
		return
	}
	rb.IsKinematic = s == StatePicked
	rb.Velocity = rl.Vector3{}
	rb.ConsumeForce()
	rb.Wake()
}
