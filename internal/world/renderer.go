package world

import (
	"cubejam/internal/components"
	"cubejam/internal/debugdraw"
	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the scene's primitives for one camera. Call Draw inside
// BeginMode3D/EndMode3D.
type Renderer struct {
	ShowColliders bool
	ColliderColor rl.Color
	ShowGrid      bool

	// Culled counts objects skipped by the last Draw.
	Culled int
}

func NewRenderer() *Renderer {
	return &Renderer{
		ColliderColor: rl.Green,
		ShowGrid:      true,
	}
}

func (r *Renderer) Draw(camera rl.Camera3D, aspect float32, objects []*engine.GameObject, lines *debugdraw.Drawer) {
	frustum := ExtractFrustum(camera, aspect)
	r.Culled = 0

	if r.ShowGrid {
		rl.DrawGrid(40, 1)
	}
	for _, g := range VisibleRenderers(&frustum, objects, &r.Culled) {
		g.Draw()
	}
	if r.ShowColliders {
		r.drawColliders(objects)
	}
	if lines != nil {
		lines.Draw()
	}
}

// VisibleRenderers returns the renderers of active objects whose bounds
// touch the frustum. culled, if not nil, is incremented per skipped object.
func VisibleRenderers(f *Frustum, objects []*engine.GameObject, culled *int) []*components.MeshRenderer {
	var out []*components.MeshRenderer
	for _, g := range objects {
		mr := engine.GetComponent[*components.MeshRenderer](g)
		if mr == nil || !isActive(g) {
			continue
		}
		lo, hi := mr.Bounds()
		if !f.ContainsBounds(lo, hi) {
			if culled != nil {
				*culled++
			}
			continue
		}
		out = append(out, mr)
	}
	return out
}

func (r *Renderer) drawColliders(objects []*engine.GameObject) {
	for _, g := range objects {
		col := engine.FindComponent[components.Collider](g)
		if col == nil || !isActive(g) {
			continue
		}
		lo, hi := col.Bounds()
		rl.DrawBoundingBox(rl.BoundingBox{Min: lo, Max: hi}, r.ColliderColor)
	}
}

func isActive(g *engine.GameObject) bool {
	for ; g != nil; g = g.Parent {
		if !g.Active {
			return false
		}
	}
	return true
}
