package world

import (
	"fmt"
	"os"

	"cubejam/internal/engine"
	_ "cubejam/internal/objects" // registers "prop"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// --- YAML types ---

type SceneFile struct {
	Name    string      `yaml:"name"`
	Objects []ObjectDef `yaml:"objects"`
}

// ObjectDef describes one GameObject. Rotation is Euler degrees; a missing
// scale means 1. Each component is a map whose "type" key names a
// registered component and whose other keys are its props.
type ObjectDef struct {
	Name       string           `yaml:"name"`
	Tags       []string         `yaml:"tags,omitempty"`
	Parent     string           `yaml:"parent,omitempty"`
	Active     *bool            `yaml:"active,omitempty"`
	Position   [3]float32       `yaml:"position"`
	Rotation   [3]float32       `yaml:"rotation"`
	Scale      *[3]float32      `yaml:"scale,omitempty"`
	Components []map[string]any `yaml:"components"`
}

// --- Loading ---

// ParseScene decodes a scene file.
func ParseScene(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	for i, obj := range sf.Objects {
		if obj.Name == "" {
			return nil, fmt.Errorf("parse scene: object %d has no name", i)
		}
	}
	return &sf, nil
}

// LoadScene reads path and builds it into the world.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	sf, err := ParseScene(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return w.Build(sf)
}

// Build instantiates every object in sf, resolves parents and wires the
// well-known components. Nothing is started.
func (w *World) Build(sf *SceneFile) error {
	if sf.Name != "" {
		w.Scene.Name = sf.Name
	}

	built := make([]*engine.GameObject, 0, len(sf.Objects))
	byName := make(map[string]*engine.GameObject, len(sf.Objects))
	for _, def := range sf.Objects {
		g, err := buildObject(def)
		if err != nil {
			return err
		}
		built = append(built, g)
		if _, dup := byName[def.Name]; !dup {
			byName[def.Name] = g
		}
	}

	for i, def := range sf.Objects {
		if def.Parent == "" {
			continue
		}
		parent, ok := byName[def.Parent]
		if !ok {
			return fmt.Errorf("object %q: unknown parent %q", def.Name, def.Parent)
		}
		if parent == built[i] {
			return fmt.Errorf("object %q: parented to itself", def.Name)
		}
		// Scene-file transforms are already local.
		parent.AddChild(built[i])
	}

	for _, g := range built {
		w.Scene.AddGameObject(g)
		w.Physics.AddObject(g)
	}

	if err := w.wire(); err != nil {
		return err
	}
	w.log.Debug("scene built", zap.String("scene", w.Scene.Name), zap.Int("objects", len(built)))
	return nil
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	if def.Active != nil {
		g.Active = *def.Active
	}
	g.Transform.Position = vec3(def.Position)
	g.Transform.SetEulerDegrees(def.Rotation[0], def.Rotation[1], def.Rotation[2])
	if def.Scale != nil {
		g.Transform.Scale = vec3(*def.Scale)
	}

	for i, raw := range def.Components {
		props := engine.Props(raw)
		kind := props.String("type", "")
		if kind == "" {
			return nil, fmt.Errorf("object %q: component %d has no type", def.Name, i)
		}
		delete(props, "type")
		c, err := engine.CreateComponent(kind, props)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", def.Name, err)
		}
		g.AddComponent(c)
	}
	return g, nil
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
