package world

import (
	"errors"
	"os"
	"testing"

	"cubejam/internal/components"
	"cubejam/internal/config"
	"cubejam/internal/cube"
	"cubejam/internal/engine"
	"cubejam/internal/objects"
	"cubejam/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
name: Test
objects:
  - name: Cube
    scale: [10, 10, 10]
    components:
      - type: box_collider
        size: [1, 1, 1]
  - name: Manager
    components:
      - type: cube_manager
  - name: Player
    position: [0, 6, 0]
    components:
      - type: capsule_collider
        height: 2
        radius: 0.2
      - type: rigidbody
        canSleep: false
      - type: player_controller
  - name: Crate
    position: [0, 6.1, 0.7]
    components:
      - type: box_collider
        size: [1, 2.2, 1]
      - type: rigidbody
      - type: prop
  - name: Cam
    components:
      - type: camera
`

func buildWorld(t *testing.T, src string) *World {
	t.Helper()
	sf, err := ParseScene([]byte(src))
	require.NoError(t, err)
	w := New(nil)
	require.NoError(t, w.Build(sf))
	return w
}

func TestParseSceneErrors(t *testing.T) {
	_, err := ParseScene([]byte("objects: ["))
	assert.ErrorContains(t, err, "parse scene")

	_, err = ParseScene([]byte("objects:\n  - position: [0, 0, 0]\n"))
	assert.ErrorContains(t, err, "has no name")
}

func TestBuildRejectsBadComponents(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown type", "objects:\n  - name: A\n    components:\n      - type: jetpack\n", "jetpack"},
		{"missing type", "objects:\n  - name: A\n    components:\n      - mass: 3\n", "no type"},
		{"bad props", "objects:\n  - name: A\n    components:\n      - type: box_collider\n        size: [1, 2]\n", "size"},
		{"unknown parent", "objects:\n  - name: A\n    parent: B\n", "unknown parent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf, err := ParseScene([]byte(tt.src))
			require.NoError(t, err)
			err = New(nil).Build(sf)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuildUnknownComponentIsWrapped(t *testing.T) {
	sf, err := ParseScene([]byte("objects:\n  - name: A\n    components:\n      - type: jetpack\n"))
	require.NoError(t, err)

	err = New(nil).Build(sf)

	assert.True(t, errors.Is(err, engine.ErrUnknownComponent))
}

func TestBuildRequiresPlayer(t *testing.T) {
	sf, err := ParseScene([]byte("objects:\n  - name: Cube\n    components:\n      - type: box_collider\n"))
	require.NoError(t, err)

	err = New(nil).Build(sf)

	assert.ErrorIs(t, err, ErrNoPlayer)
}

func TestBuildWiresWellKnownComponents(t *testing.T) {
	w := buildWorld(t, testScene)

	assert.Equal(t, "Test", w.Scene.Name)
	require.NotNil(t, w.Player)
	assert.Equal(t, "Player", w.Player.Name)
	require.NotNil(t, w.Controller)
	require.NotNil(t, w.Cube)
	require.NotNil(t, w.Camera)

	assert.Same(t, w.Player, w.Cube.Player)
	assert.Same(t, w.Player, w.Camera.Target)
	assert.Equal(t, "Manager", w.Controller.FaceSource)
	assert.Same(t, w, w.Scene.World)

	assert.Len(t, w.Physics.Objects, 2)
	assert.Len(t, w.Physics.Statics, 3)
	assert.Len(t, w.GetCollidableObjects(), 3)
}

func TestBuildAppliesTransforms(t *testing.T) {
	w := buildWorld(t, `
objects:
  - name: Player
    components:
      - type: player_controller
  - name: Base
    position: [1, 2, 3]
    rotation: [0, 90, 0]
    scale: [2, 2, 2]
  - name: Arm
    parent: Base
    active: false
    position: [0, 0, 1]
`)
	base := w.Scene.FindByName("Base")
	arm := w.Scene.FindByName("Arm")
	require.NotNil(t, base)
	require.NotNil(t, arm)

	assert.Equal(t, rl.Vector3{X: 2, Y: 2, Z: 2}, base.Transform.Scale)
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, arm.Transform.Scale)
	assert.False(t, arm.Active)
	assert.Same(t, base, arm.Parent)

	// Local +Z under a 90 degree yaw and scale 2 lands two units along +X.
	p := arm.WorldPosition()
	assert.InDelta(t, 3, p.X, 1e-4)
	assert.InDelta(t, 2, p.Y, 1e-4)
	assert.InDelta(t, 3, p.Z, 1e-4)
}

func TestConfigureOverridesSceneValues(t *testing.T) {
	w := buildWorld(t, testScene)
	cfg := config.Default()
	cfg.Player.MoveSpeed = 7
	cfg.Player.MaxRaycastDistance = 0.5
	cfg.Cube.Gravity = 20
	cfg.Cube.AlignGravity = true

	w.Configure(cfg)
	w.Start()

	assert.Equal(t, float32(7), w.Controller.MoveSpeed)
	assert.Equal(t, float32(0.5), w.Controller.MaxRaycastDistance)
	assert.Equal(t, rl.Vector3{Y: -20}, w.Physics.Gravity)
}

func TestStartAimsGravityAndCamera(t *testing.T) {
	w := buildWorld(t, testScene)

	w.Start()

	assert.Equal(t, cube.YP, w.Cube.PlayerCubeFace())
	assert.InDelta(t, -9.81, w.Physics.Gravity.Y, 1e-5)
	assert.Equal(t, rl.Vector3{Y: 1}, w.Camera.Normal)
	assert.Equal(t, rl.Vector3{Z: -1}, w.Camera.Back)
	assert.Equal(t, player.StateIdle, w.Controller.State())
}

func TestFaceChangeReaimsCamera(t *testing.T) {
	w := buildWorld(t, testScene)
	w.Start()

	w.Player.Transform.Position = rl.Vector3{Y: 1, Z: -6}
	w.Update(0.016)

	assert.Equal(t, cube.ZM, w.Cube.PlayerCubeFace())
	assert.InDelta(t, 9.81, w.Physics.Gravity.Z, 1e-5)
	assert.Equal(t, rl.Vector3{Z: -1}, w.Camera.Normal)
	assert.Equal(t, rl.Vector3{Y: -1}, w.Camera.Back)
}

func TestCameraBackOnUnmappedFaces(t *testing.T) {
	for f := cube.Face(0); f < cube.FaceCount; f++ {
		back := cameraBack(f)
		assert.InDelta(t, 1, rl.Vector3Length(back), 1e-6, f.String())
		assert.InDelta(t, 0, rl.Vector3DotProduct(back, f.Normal()), 1e-6, f.String())
	}
}

func TestPlayerPicksCrateThroughPhysicsRaycast(t *testing.T) {
	w := buildWorld(t, testScene)
	w.Start()
	w.Update(0.016)

	hit, ok := w.Controller.RaycastForward()
	require.True(t, ok)
	crate := w.Scene.FindByName("Crate")
	require.Same(t, crate, hit)

	require.True(t, w.Controller.PickUp(hit))
	assert.Same(t, w.Player, crate.Parent)
	rb := engine.GetComponent[*components.Rigidbody](crate)
	assert.True(t, rb.IsKinematic)
	assert.Equal(t, objects.StatePicked, engine.GetComponent[*objects.Prop](crate).State)

	// The carried crate rides along with the player.
	before := rl.Vector3Subtract(crate.WorldPosition(), w.Player.WorldPosition())
	w.Player.Transform.Position.X += 1
	w.Update(0.016)
	after := rl.Vector3Subtract(crate.WorldPosition(), w.Player.WorldPosition())
	assert.InDelta(t, before.X, after.X, 1e-3)
	assert.InDelta(t, before.Z, after.Z, 1e-3)
}

func TestUpdateDrawsProbeRay(t *testing.T) {
	w := buildWorld(t, testScene)
	w.Start()

	w.Update(0.016)

	assert.Equal(t, 1, w.Drawer.Len())
	assert.InDelta(t, 7, w.Controller.RayOrigin().Y, 1e-3)
}

func TestConfigureCanDisableDebugRays(t *testing.T) {
	w := buildWorld(t, testScene)
	w.Drawer.Ray(rl.Vector3{}, rl.Vector3{X: 1}, rl.Red, 5)
	cfg := config.Default()
	cfg.Player.DebugRays = false
	w.Configure(cfg)
	w.Start()

	w.Update(0.016)

	assert.Zero(t, w.Drawer.Len())
}

func TestSpawnAndDestroy(t *testing.T) {
	w := buildWorld(t, testScene)
	w.Start()

	ball := engine.NewGameObject("Ball")
	ball.AddComponent(components.NewSphereCollider(0.25))
	ball.AddComponent(components.NewRigidbody())
	child := engine.NewGameObject("Trail")
	ball.AddChild(child)
	w.SpawnObject(ball)
	w.SpawnObject(child)

	assert.Same(t, ball, w.Scene.FindByName("Ball"))
	assert.Contains(t, w.Physics.Objects, ball)

	w.Destroy(ball)

	assert.Nil(t, w.Scene.FindByName("Ball"))
	assert.Nil(t, w.Scene.FindByName("Trail"))
	assert.NotContains(t, w.Physics.Objects, ball)
	assert.NotContains(t, w.Physics.Statics, child)
}

func TestLoadSceneAsset(t *testing.T) {
	w := New(nil)
	require.NoError(t, w.LoadScene("../../assets/scenes/cube.yaml"))
	w.Configure(config.Default())
	w.Start()

	assert.Equal(t, "Player", w.Player.Name)
	assert.Equal(t, cube.YP, w.Cube.PlayerCubeFace())
	for _, name := range []string{"Crate", "Barrel", "Pillar"} {
		assert.NotNil(t, engine.GetComponent[*objects.Prop](w.Scene.FindByName(name)), name)
	}

	// A second of idle simulation leaves the player standing on the cube.
	for range 60 {
		w.Update(1.0 / 60)
	}
	assert.InDelta(t, 6, w.Player.Transform.Position.Y, 0.05)
}

func TestLoadSceneMissingFile(t *testing.T) {
	err := New(nil).LoadScene("does/not/exist.yaml")
	assert.ErrorContains(t, err, "read scene")
}

func TestPlayerPushesCrateInsteadOfPassingThrough(t *testing.T) {
	w := New(nil)
	require.NoError(t, w.LoadScene("../../assets/scenes/cube.yaml"))
	w.Configure(config.Default())
	w.Start()

	crate := w.Scene.FindByName("Crate")
	crateCol := engine.FindComponent[components.Collider](crate)
	playerCol := engine.FindComponent[components.Collider](w.Player)
	const dt = float32(1.0 / 60)

	for range 90 {
		w.Controller.Move(0, 1)
		w.Update(dt)

		_, playerHi := playerCol.Bounds()
		crateLo, _ := crateCol.Bounds()
		require.LessOrEqual(t, playerHi.Z, crateLo.Z+1e-3, "player entered the crate")
	}
	assert.Greater(t, w.Player.Transform.Position.Z, float32(1.5), "player reached the crate")
	assert.Greater(t, crate.Transform.Position.Z, float32(2.5), "crate was pushed")

	w.Update(dt)
	hit, ok := w.Controller.RaycastForward()
	require.True(t, ok)
	assert.Same(t, crate, hit)
}

func TestAssetSceneLeavesTuningToConfig(t *testing.T) {
	data, err := os.ReadFile("../../assets/scenes/cube.yaml")
	require.NoError(t, err)
	sf, err := ParseScene(data)
	require.NoError(t, err)

	overridden := map[string][]string{
		"player_controller": {"moveSpeed", "maxRaycastDistance", "debugRayDuration"},
		"cube_manager":      {"gravity", "alignGravity"},
	}
	for _, obj := range sf.Objects {
		for _, comp := range obj.Components {
			kind, _ := comp["type"].(string)
			for _, key := range overridden[kind] {
				assert.NotContains(t, comp, key, "%s.%s is set by Configure", obj.Name, key)
			}
		}
	}
}
