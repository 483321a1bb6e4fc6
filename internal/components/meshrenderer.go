package components

import (
	"fmt"

	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("mesh_renderer", func(props engine.Props) (engine.Component, error) {
		meshType, err := ParseMeshType(props.String("mesh", "cube"))
		if err != nil {
			return nil, err
		}
		size, err := props.Vector3("size", rl.Vector3{X: 1, Y: 1, Z: 1})
		if err != nil {
			return nil, err
		}
		m := NewMeshRenderer(meshType, LookupColor(props.String("color", "White")), size)
		m.Wireframe = props.Bool("wireframe", false)
		return m, nil
	})
}

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshCapsule
)

func ParseMeshType(s string) (MeshType, error) {
	switch s {
	case "cube":
		return MeshCube, nil
	case "sphere":
		return MeshSphere, nil
	case "capsule":
		return MeshCapsule, nil
	}
	return 0, fmt.Errorf("unknown mesh %q", s)
}

// MeshRenderer draws a primitive shape at the object's world pose.
// Size is the full extent for cubes; X is the radius for spheres;
// X is the radius and Y the full height for capsules.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType  MeshType
	Color     rl.Color
	Size      rl.Vector3
	Wireframe bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// Draw must be called between BeginMode3D and EndMode3D.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()
	var axis rl.Vector3
	var angle float32
	rl.QuaternionToAxisAngle(g.WorldRotation(), &axis, &angle)

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(angle*rl.Rad2deg, axis.X, axis.Y, axis.Z)
	rl.Scalef(scale.X, scale.Y, scale.Z)

	origin := rl.Vector3{}
	switch m.MeshType {
	case MeshCube:
		if !m.Wireframe {
			rl.DrawCubeV(origin, m.Size, m.Color)
		}
		rl.DrawCubeWiresV(origin, m.Size, rl.DarkGray)
	case MeshSphere:
		if m.Wireframe {
			rl.DrawSphereWires(origin, m.Size.X, 8, 8, m.Color)
		} else {
			rl.DrawSphere(origin, m.Size.X, m.Color)
		}
	case MeshCapsule:
		half := m.Size.Y*0.5 - m.Size.X
		if half < 0 {
			half = 0
		}
		bottom := rl.Vector3{Y: -half}
		top := rl.Vector3{Y: half}
		if m.Wireframe {
			rl.DrawCapsuleWires(bottom, top, m.Size.X, 8, 4, m.Color)
		} else {
			rl.DrawCapsule(bottom, top, m.Size.X, 8, 4, m.Color)
		}
	}
	rl.PopMatrix()
}

// Bounds is a world-space box that contains the shape under any rotation.
func (m *MeshRenderer) Bounds() (lo, hi rl.Vector3) {
	g := m.GetGameObject()
	if g == nil {
		return rl.Vector3{}, rl.Vector3{}
	}
	scale := g.WorldScale()
	maxScale := max(abs(scale.X), abs(scale.Y), abs(scale.Z))

	var radius float32
	switch m.MeshType {
	case MeshCube:
		radius = rl.Vector3Length(rl.Vector3{
			X: m.Size.X * scale.X,
			Y: m.Size.Y * scale.Y,
			Z: m.Size.Z * scale.Z,
		}) * 0.5
	case MeshSphere:
		radius = m.Size.X * maxScale
	case MeshCapsule:
		radius = max(m.Size.X, m.Size.Y*0.5) * maxScale
	}
	center := g.WorldPosition()
	ext := rl.Vector3{X: radius, Y: radius, Z: radius}
	return rl.Vector3Subtract(center, ext), rl.Vector3Add(center, ext)
}

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Gold":      rl.Gold,
}

// LookupColor maps a raylib palette name to its color, White if unknown.
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}
