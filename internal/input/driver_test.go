package input

import (
	"testing"

	"cubejam/internal/cube"
	"cubejam/internal/engine"
	"cubejam/internal/objects"
	"cubejam/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedSource struct {
	h, v   float32
	action bool
}

func (s *scriptedSource) Axes() (float32, float32) { return s.h, s.v }

// ActionPressed reports a press once, like a key edge.
func (s *scriptedSource) ActionPressed() bool {
	pressed := s.action
	s.action = false
	return pressed
}

type recordingPlayer struct {
	state   player.State
	target  *engine.GameObject
	moves   [][2]float32
	rotates [][2]float32
	calls   []string
	thrown  float32
}

func (p *recordingPlayer) Move(h, v float32)   { p.moves = append(p.moves, [2]float32{h, v}) }
func (p *recordingPlayer) Rotate(h, v float32) { p.rotates = append(p.rotates, [2]float32{h, v}) }
func (p *recordingPlayer) State() player.State { return p.state }

func (p *recordingPlayer) RaycastForward() (*engine.GameObject, bool) {
	p.calls = append(p.calls, "raycast")
	return p.target, p.target != nil
}

func (p *recordingPlayer) PickUp(obj *engine.GameObject) bool {
	p.calls = append(p.calls, "pickup")
	p.state = player.StatePicking
	return true
}

func (p *recordingPlayer) Throw(strength float32) {
	p.calls = append(p.calls, "throw")
	p.thrown = strength
	p.state = player.StateThrowing
}

func (p *recordingPlayer) FinishThrow() {
	p.calls = append(p.calls, "finish")
	p.state = player.StateIdle
}

func TestDriverFeedsAxesToMoveAndRotate(t *testing.T) {
	src := &scriptedSource{h: 0.5, v: -1}
	p := &recordingPlayer{state: player.StateIdle}
	d := NewDriver(src, p, nil)

	d.Tick(0.016)

	assert.Equal(t, [][2]float32{{0.5, -1}}, p.moves)
	assert.Equal(t, [][2]float32{{0.5, -1}}, p.rotates)
	assert.Empty(t, p.calls)
}

func TestDriverActionWithNothingAhead(t *testing.T) {
	src := &scriptedSource{action: true}
	p := &recordingPlayer{state: player.StateIdle}
	d := NewDriver(src, p, nil)

	d.Tick(0.016)

	assert.Equal(t, []string{"raycast"}, p.calls)
	assert.Equal(t, player.StateIdle, p.state)
}

func TestDriverPickThrowFinish(t *testing.T) {
	src := &scriptedSource{}
	p := &recordingPlayer{state: player.StateIdle, target: engine.NewGameObject("Box")}
	d := NewDriver(src, p, nil)
	d.ThrowStrength = 3
	d.ThrowDuration = 0.5

	src.action = true
	d.Tick(0.1)
	require.Equal(t, []string{"raycast", "pickup"}, p.calls)

	src.action = true
	d.Tick(0.1)
	require.Equal(t, []string{"raycast", "pickup", "throw"}, p.calls)
	assert.Equal(t, float32(3), p.thrown)
	assert.True(t, d.Throwing())

	d.Tick(0.3)
	assert.Equal(t, player.StateThrowing, p.state)

	d.Tick(0.3)
	assert.Equal(t, player.StateIdle, p.state)
	assert.False(t, d.Throwing())
	assert.Equal(t, []string{"raycast", "pickup", "throw", "finish"}, p.calls)
}

func TestDriverIgnoresActionWhileThrowing(t *testing.T) {
	src := &scriptedSource{action: true}
	p := &recordingPlayer{state: player.StateThrowing}
	d := NewDriver(src, p, nil)

	d.Tick(0.016)

	assert.Empty(t, p.calls)
}

type stubRaycaster struct {
	hit engine.RaycastResult
}

func (r *stubRaycaster) Raycast(origin, dir rl.Vector3, max float32) (engine.RaycastResult, bool) {
	return r.hit, r.hit.GameObject != nil
}

type topFace struct{}

func (topFace) PlayerCubeFace() cube.Face { return cube.YP }

func TestDriverWithController(t *testing.T) {
	scene := engine.NewScene("Test")
	box := engine.NewGameObject("Box")
	prop := objects.NewProp(objects.KindMovable)
	box.AddComponent(prop)
	scene.AddGameObject(box)

	body := engine.NewGameObject("Player")
	rays := &stubRaycaster{hit: engine.RaycastResult{GameObject: box}}
	ctrl := player.NewController(player.Deps{Faces: topFace{}, Raycaster: rays})
	body.AddComponent(ctrl)
	scene.AddGameObject(body)
	scene.Start()

	src := &scriptedSource{}
	d := NewDriver(src, ctrl, nil)
	d.ThrowDuration = 0.2

	src.action = true
	d.Tick(0.1)
	require.Equal(t, player.StatePicking, ctrl.State())
	assert.Same(t, body, box.Parent)
	assert.Equal(t, objects.StatePicked, prop.State)

	src.action = true
	d.Tick(0.1)
	require.Equal(t, player.StateThrowing, ctrl.State())

	d.Tick(0.25)
	assert.Equal(t, player.StateIdle, ctrl.State())
	assert.Same(t, box, ctrl.HeldObject())
}
