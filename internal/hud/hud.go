// Package hud draws the in-game status panel with raygui.
package hud

import (
	"fmt"

	"cubejam/internal/cube"
	"cubejam/internal/player"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Dark indigo theme.
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

const (
	panelX      = 10
	panelY      = 10
	panelWidth  = 300
	lineHeight  = 20
	headerSpace = 30
)

// Status is one frame's worth of player facts for the panel.
type Status struct {
	State          player.State
	Face           cube.Face
	Held           string
	ThrowDirection rl.Vector3
	Position       rl.Vector3
	FPS            int32
	Culled         int
}

// Lines renders s as the panel's text rows.
func Lines(s Status) []string {
	held := s.Held
	if held == "" {
		held = "-"
	}
	return []string{
		fmt.Sprintf("State: %s", s.State),
		fmt.Sprintf("Face:  %s", s.Face),
		fmt.Sprintf("Held:  %s", held),
		fmt.Sprintf("Throw: (%.2f, %.2f, %.2f)", s.ThrowDirection.X, s.ThrowDirection.Y, s.ThrowDirection.Z),
		fmt.Sprintf("Pos:   (%.2f, %.2f, %.2f)", s.Position.X, s.Position.Y, s.Position.Z),
		fmt.Sprintf("FPS: %d  culled: %d", s.FPS, s.Culled),
	}
}

// HUD owns the panel and the debug toggles shown under it.
type HUD struct {
	ShowColliders bool
	ShowGrid      bool
	styled        bool
}

func New() *HUD {
	return &HUD{ShowGrid: true}
}

func (h *HUD) initStyle() {
	if h.styled {
		return
	}
	h.styled = true
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// Draw must run between BeginDrawing and EndDrawing, after the 3D pass.
func (h *HUD) Draw(s Status) {
	h.initStyle()

	lines := Lines(s)
	toggles := 2
	height := float32(headerSpace + (len(lines)+toggles)*lineHeight + 10)
	gui.Panel(rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth, Height: height}, "Player")

	y := float32(panelY + headerSpace)
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: panelX + 10, Y: y, Width: panelWidth - 20, Height: lineHeight}, line)
		y += lineHeight
	}

	box := float32(lineHeight - 6)
	h.ShowColliders = gui.CheckBox(rl.Rectangle{X: panelX + 10, Y: y + 3, Width: box, Height: box}, "Colliders", h.ShowColliders)
	y += lineHeight
	h.ShowGrid = gui.CheckBox(rl.Rectangle{X: panelX + 10, Y: y + 3, Width: box, Height: box}, "Grid", h.ShowGrid)

	rl.DrawText("WASD / stick: move   Space / A: pick up, throw", panelX, int32(rl.GetScreenHeight())-30, 18, rl.DarkGray)
}
