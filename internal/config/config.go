// Package config loads the game's YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Player PlayerConfig `yaml:"player"`
	Input  InputConfig  `yaml:"input"`
	Cube   CubeConfig   `yaml:"cube"`
	Scene  string       `yaml:"scene"`
	Log    LogConfig    `yaml:"log"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"targetFPS"`
	ShowHUD   bool   `yaml:"showHUD"`
}

// PlayerConfig overrides the controller values from the scene file.
type PlayerConfig struct {
	MoveSpeed          float32 `yaml:"moveSpeed"`
	MaxRaycastDistance float32 `yaml:"maxRaycastDistance"`
	DebugRayDuration   float32 `yaml:"debugRayDuration"`
	DebugRays          bool    `yaml:"debugRays"`
}

type InputConfig struct {
	DeadZone      float32 `yaml:"deadZone"`
	Gamepad       int32   `yaml:"gamepad"`
	ThrowStrength float32 `yaml:"throwStrength"`
	// ThrowDuration is how long the throwing state lasts, in seconds.
	ThrowDuration float32 `yaml:"throwDuration"`
}

type CubeConfig struct {
	Gravity      float32 `yaml:"gravity"`
	AlignGravity bool    `yaml:"alignGravity"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "cubejam",
			TargetFPS: 120,
			ShowHUD:   true,
		},
		Player: PlayerConfig{
			MoveSpeed:          12,
			MaxRaycastDistance: 0.3,
			DebugRayDuration:   0.3,
			DebugRays:          true,
		},
		Input: InputConfig{
			DeadZone:      0.2,
			Gamepad:       0,
			ThrowStrength: 1,
			ThrowDuration: 0.5,
		},
		Cube: CubeConfig{
			Gravity:      9.81,
			AlignGravity: true,
		},
		Scene: "assets/scenes/cube.yaml",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile is Load for a path the user named explicitly: a missing file is
// an error.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Player.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("player.moveSpeed %v must not be negative", c.Player.MoveSpeed))
	}
	if c.Player.MaxRaycastDistance <= 0 {
		errs = append(errs, fmt.Errorf("player.maxRaycastDistance %v must be positive", c.Player.MaxRaycastDistance))
	}
	if c.Input.DeadZone < 0 || c.Input.DeadZone >= 1 {
		errs = append(errs, fmt.Errorf("input.deadZone %v must be in [0, 1)", c.Input.DeadZone))
	}
	if c.Input.ThrowDuration < 0 {
		errs = append(errs, fmt.Errorf("input.throwDuration %v must not be negative", c.Input.ThrowDuration))
	}
	if c.Scene == "" {
		errs = append(errs, errors.New("scene path is empty"))
	}
	return errors.Join(errs...)
}
