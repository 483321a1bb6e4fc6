package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cubejam/internal/config"
	"cubejam/internal/game"
	"cubejam/internal/logging"

	"go.uber.org/zap"
)

const defaultConfig = "config.yaml"

func main() {
	configPath := flag.String("config", defaultConfig, "path to the YAML config")
	scenePath := flag.String("scene", "", "scene file, overrides the config")
	logLevel := flag.String("log-level", "", "log level, overrides the config")
	flag.Parse()

	explicitConfig := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicitConfig = true
		}
	})

	// Paths given on the command line are relative to the caller, so pin
	// them before leaving the working directory.
	if explicitConfig {
		*configPath = absPath(*configPath)
	}
	if *scenePath != "" {
		*scenePath = absPath(*scenePath)
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			_ = os.Chdir(execDir)
		}
	}

	load := config.Load
	if explicitConfig {
		load = config.LoadFile
	}
	cfg, err := load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *scenePath != "" {
		cfg.Scene = *scenePath
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, err := logging.New(logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := game.New(cfg, log).Run(); err != nil {
		log.Error("game failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
