// Package world owns the scene, the physics world and the debug drawer, and
// wires the cube authority, the player and the camera together after a
// scene file is loaded.
package world

import (
	"errors"

	"cubejam/internal/components"
	"cubejam/internal/config"
	"cubejam/internal/cube"
	"cubejam/internal/debugdraw"
	"cubejam/internal/engine"
	"cubejam/internal/physics"
	"cubejam/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

var ErrNoPlayer = errors.New("scene has no player_controller")

var _ engine.WorldAccess = (*World)(nil)

type World struct {
	Scene   *engine.Scene
	Physics *physics.PhysicsWorld
	Drawer  *debugdraw.Drawer

	Player     *engine.GameObject
	Controller *player.Controller
	Cube       *cube.Manager
	Camera     *components.Camera

	log *zap.Logger
}

func New(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		Scene:   engine.NewScene("Main"),
		Physics: physics.NewPhysicsWorld(log),
		Drawer:  debugdraw.New(),
		log:     log.Named("world"),
	}
	w.Scene.World = w
	return w
}

// wire finds the well-known components in the scene and connects them.
func (w *World) wire() error {
	for _, g := range w.Scene.GameObjects {
		if c := engine.GetComponent[*player.Controller](g); c != nil && w.Controller == nil {
			w.Player = g
			w.Controller = c
		}
		if m := engine.GetComponent[*cube.Manager](g); m != nil && w.Cube == nil {
			w.Cube = m
		}
		if cam := engine.GetComponent[*components.Camera](g); cam != nil && w.Camera == nil {
			w.Camera = cam
		}
	}
	if w.Controller == nil {
		return ErrNoPlayer
	}

	w.Controller.SetDrawer(w.Drawer)
	w.Controller.SetLogger(w.log)

	if w.Cube != nil {
		w.Cube.Player = w.Player
		w.Cube.Gravity = w.Physics
		w.Cube.Log = w.log.Named("cube")
		w.Controller.FaceSource = w.Cube.GetGameObject().Name
		w.Cube.FaceChanged.AddListener(w.onFaceChanged)
	}
	if w.Camera != nil {
		w.Camera.Target = w.Player
	}

	w.Controller.StateChanged.AddListener(func(s player.State) {
		w.log.Debug("player state", zap.Stringer("state", s))
	})
	return nil
}

// Configure applies the config's player and cube tuning. Call it after
// loading and before Start. The config wins over the same keys set as
// player_controller or cube_manager props, so shipped scenes leave them out.
func (w *World) Configure(cfg config.Config) {
	if w.Controller != nil {
		w.Controller.MoveSpeed = cfg.Player.MoveSpeed
		w.Controller.MaxRaycastDistance = cfg.Player.MaxRaycastDistance
		w.Controller.DebugRayDuration = cfg.Player.DebugRayDuration
		if !cfg.Player.DebugRays {
			w.Controller.SetDrawer(nil)
			w.Drawer.Clear()
		}
	}
	if w.Cube != nil {
		w.Cube.GravityStrength = cfg.Cube.Gravity
		w.Cube.AlignGravity = cfg.Cube.AlignGravity
	}
}

func (w *World) Start() {
	w.Scene.Start()
	if w.Cube != nil {
		w.onFaceChanged(w.Cube.PlayerCubeFace())
	}
	w.log.Info("world started",
		zap.Int("objects", len(w.Scene.GameObjects)),
		zap.Int("dynamic", len(w.Physics.Objects)),
		zap.Int("static", len(w.Physics.Statics)),
	)
}

func (w *World) onFaceChanged(f cube.Face) {
	w.log.Info("player on face", zap.Stringer("face", f))
	if w.Camera == nil {
		return
	}
	w.Camera.Aim(f.Normal(), cameraBack(f))
}

// cameraBack points the camera behind the player's forward direction on
// face f.
func cameraBack(f cube.Face) rl.Vector3 {
	table := player.DefaultOrientationTable()
	if frame, ok := table.Lookup(f); ok {
		return rl.Vector3Negate(frame.Forward)
	}
	n := f.Normal()
	if n.Z != 0 {
		return rl.Vector3{Y: -1}
	}
	return rl.Vector3{Z: -1}
}

// Update runs components, then physics.
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.Physics.Step(deltaTime)
}

// GetCollidableObjects returns every object with a collider.
func (w *World) GetCollidableObjects() []*engine.GameObject {
	var result []*engine.GameObject
	for _, g := range w.Scene.GameObjects {
		if engine.FindComponent[components.Collider](g) != nil {
			result = append(result, g)
		}
	}
	return result
}

// SpawnObject adds g to the scene and physics and starts it.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
	g.Start()
}

// Destroy removes g and its children from the scene and physics.
func (w *World) Destroy(g *engine.GameObject) {
	w.forget(g)
	w.Scene.RemoveGameObject(g)
}

func (w *World) forget(g *engine.GameObject) {
	for _, child := range g.Children {
		w.forget(child)
	}
	w.Physics.RemoveObject(g)
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	return w.Physics.Raycast(origin, direction, maxDistance)
}
