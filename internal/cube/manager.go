package cube

import (
	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

func init() {
	engine.RegisterComponent("cube_manager", func(props engine.Props) (engine.Component, error) {
		m := NewManager()
		center, err := props.Vector3("center", m.Center)
		if err != nil {
			return nil, err
		}
		m.Center = center
		m.PlayerName = props.String("player", m.PlayerName)
		m.GravityStrength = props.Float("gravity", m.GravityStrength)
		m.AlignGravity = props.Bool("alignGravity", m.AlignGravity)
		if name, ok := props["startFace"].(string); ok {
			face, err := ParseFace(name)
			if err != nil {
				return nil, err
			}
			m.face = face
		}
		return m, nil
	})
}

// GravitySetter receives the gravity vector for the player's current face.
type GravitySetter interface {
	SetGravity(g rl.Vector3)
}

// Manager is the game-state authority for the cube: it tracks which face
// the player stands on and, when AlignGravity is set, points gravity at
// the cube through that face.
type Manager struct {
	engine.BaseComponent
	Center          rl.Vector3
	PlayerName      string
	GravityStrength float32
	AlignGravity    bool

	Player  *engine.GameObject
	Gravity GravitySetter
	Log     *zap.Logger

	FaceChanged engine.EventWithArg[Face]

	face Face
}

func NewManager() *Manager {
	return &Manager{
		PlayerName:      "Player",
		GravityStrength: 9.81,
		AlignGravity:    true,
		Log:             zap.NewNop(),
		face:            YP,
	}
}

// PlayerCubeFace reports the face the player currently stands on.
func (m *Manager) PlayerCubeFace() Face {
	return m.face
}

// SetPlayerFace forces the current face, firing FaceChanged if it differs.
func (m *Manager) SetPlayerFace(f Face) {
	if !f.Valid() || f == m.face {
		return
	}
	prev := m.face
	m.face = f
	m.logger().Debug("player changed face", zap.Stringer("from", prev), zap.Stringer("to", f))
	m.applyGravity()
	m.FaceChanged.Invoke(f)
}

func (m *Manager) Start() {
	if m.Player == nil {
		if g := m.GetGameObject(); g != nil && g.Scene != nil {
			m.Player = g.Scene.FindByName(m.PlayerName)
		}
	}
	if m.Player != nil {
		m.face = Classify(rl.Vector3Subtract(m.Player.WorldPosition(), m.Center))
	}
	m.applyGravity()
}

func (m *Manager) Update(deltaTime float32) {
	if m.Player == nil {
		return
	}
	m.SetPlayerFace(Classify(rl.Vector3Subtract(m.Player.WorldPosition(), m.Center)))
}

func (m *Manager) applyGravity() {
	if !m.AlignGravity || m.Gravity == nil {
		return
	}
	m.Gravity.SetGravity(rl.Vector3Scale(m.face.Normal(), -m.GravityStrength))
}

func (m *Manager) logger() *zap.Logger {
	if m.Log == nil {
		m.Log = zap.NewNop()
	}
	return m.Log
}
