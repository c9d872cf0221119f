package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"personaje/internal/config"
	"personaje/internal/game"
	"personaje/internal/input"
	"personaje/internal/logger"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config/personaje.yaml", "path to the YAML config")
	scene := flag.Int("scene", 0, "index into the config's scene list")
	headless := flag.Bool("headless", false, "run without a window")
	ticks := flag.Int("ticks", 500, "frames to simulate in headless mode")
	script := flag.String("script", "", "YAML input script for headless mode")
	watch := flag.Bool("watch", true, "reload the config file when it changes")
	flag.Parse()

	// Paths typed on the command line are relative to where the user ran us.
	// The default config stays relative to the executable.
	typed := []*string{script}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			typed = append(typed, configPath)
		}
	})
	if err := absPaths(typed...); err != nil {
		fmt.Fprintln(os.Stderr, "personaje:", err)
		os.Exit(1)
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	if err := run(*configPath, *scene, *headless, *ticks, *script, *watch); err != nil {
		fmt.Fprintln(os.Stderr, "personaje:", err)
		os.Exit(1)
	}
}

// absPaths makes each non-empty path absolute against the current directory.
func absPaths(paths ...*string) error {
	for _, p := range paths {
		if *p == "" {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", *p, err)
		}
		*p = abs
	}
	return nil
}

func run(configPath string, scene int, headless bool, ticks int, script string, watch bool) error {
	cfg, err := config.Load(configPath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	g := game.New(cfg, log)
	defer g.Close()

	if watch {
		if err := g.WatchConfig(configPath); err != nil {
			log.Warn("config hot reload disabled", zap.Error(err))
		}
	}

	if !headless {
		return g.Run(scene)
	}

	if err := g.LoadScene(scene); err != nil {
		return err
	}
	// Without a script the player stands idle for the whole run.
	var src input.Source = input.NewScripted(input.Step{Frames: ticks})
	if script != "" {
		s, err := input.LoadScript(script)
		if err != nil {
			return err
		}
		log.Info("replaying input script", zap.String("path", script), zap.Int("frames", s.Frames()))
		src = s
	}
	return g.RunHeadless(src, ticks)
}
