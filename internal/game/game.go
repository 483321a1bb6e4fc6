// Package game runs the raylib window and the frame loop.
package game

import (
	"fmt"
	"time"

	"cubejam/internal/config"
	"cubejam/internal/cube"
	"cubejam/internal/hud"
	"cubejam/internal/input"
	"cubejam/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

var background = rl.NewColor(20, 20, 30, 255)

type Game struct {
	Config   config.Config
	World    *world.World
	Input    *input.Driver
	Renderer *world.Renderer
	HUD      *hud.HUD
	ShowHUD  bool

	log *zap.Logger

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg config.Config, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		Config:   cfg,
		World:    world.New(log),
		Renderer: world.NewRenderer(),
		HUD:      hud.New(),
		ShowHUD:  cfg.Window.ShowHUD,
		log:      log,
	}
}

// Load builds the scene and the input driver for src. It needs no window.
func (g *Game) Load(src input.Source) error {
	if err := g.World.LoadScene(g.Config.Scene); err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	g.World.Configure(g.Config)

	g.Input = input.NewDriver(src, g.World.Controller, g.log)
	g.Input.ThrowStrength = g.Config.Input.ThrowStrength
	g.Input.ThrowDuration = g.Config.Input.ThrowDuration

	g.World.Start()
	return nil
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(g.Config.Window.TargetFPS)

	src := input.NewRaylib(g.Config.Input.Gamepad, g.Config.Input.DeadZone)
	if err := g.Load(src); err != nil {
		return err
	}
	g.log.Info("game running", zap.String("scene", g.Config.Scene))

	for !rl.WindowShouldClose() {
		g.handleDebugKeys()
		g.Step(rl.GetFrameTime())
		g.Draw()
	}
	return nil
}

// Step advances one frame: debug-line expiry, input, components, then
// physics. Lines queued during the step are still live for the next Draw.
func (g *Game) Step(deltaTime float32) {
	start := time.Now()

	g.World.Drawer.Tick(deltaTime)
	g.Input.Tick(deltaTime)
	g.World.Update(deltaTime)

	g.updateMs = float64(time.Since(start).Microseconds()) / 1000.0
}

func (g *Game) handleDebugKeys() {
	if rl.IsKeyPressed(rl.KeyF1) {
		g.ShowHUD = !g.ShowHUD
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.HUD.ShowColliders = !g.HUD.ShowColliders
	}
}

func (g *Game) camera() rl.Camera3D {
	if g.World.Camera != nil {
		return g.World.Camera.GetRaylibCamera()
	}
	target := g.World.Player.WorldPosition()
	return rl.Camera3D{
		Position:   rl.Vector3Add(target, rl.Vector3{Y: 8, Z: -10}),
		Target:     target,
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func (g *Game) Draw() {
	camera := g.camera()
	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	g.Renderer.ShowColliders = g.HUD.ShowColliders
	g.Renderer.ShowGrid = g.HUD.ShowGrid

	rl.BeginDrawing()
	rl.ClearBackground(background)

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.Renderer.Draw(camera, aspect, g.World.Scene.GameObjects, g.World.Drawer)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	if g.ShowHUD {
		status := g.Status()
		status.FPS = rl.GetFPS()
		g.HUD.Draw(status)
		rl.DrawText(fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", g.updateMs, g.drawMs), 10, 220, 16, rl.Green)
	}
	rl.EndDrawing()
}

// Status snapshots the player for the HUD. FPS is left for the caller.
func (g *Game) Status() hud.Status {
	w := g.World
	s := hud.Status{
		State:          w.Controller.State(),
		Face:           cube.YP,
		ThrowDirection: w.Controller.ThrowDirection(),
		Position:       w.Player.WorldPosition(),
		Culled:         g.Renderer.Culled,
	}
	if w.Cube != nil {
		s.Face = w.Cube.PlayerCubeFace()
	}
	if held := w.Controller.HeldObject(); held != nil {
		s.Held = held.Name
	}
	return s
}
