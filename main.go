// brickout is a terminal Breakout game.
//
//	go run . [--config brickout.toml] [--level path/to/level.yaml]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"brickout/internal/audio"
	"brickout/internal/config"
	"brickout/internal/game"
	"brickout/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	levelPath := flag.String("level", "", "level YAML file (overrides game.level)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if err := run(*configPath, *levelPath, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, levelPath string, mute bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if levelPath != "" {
		cfg.Game.Level = levelPath
	}
	if mute {
		cfg.Audio.Enabled = false
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := game.Options{Log: log}
	if cfg.Audio.Enabled {
		p := audio.NewPlayer(cfg.Audio.Volume)
		if err := p.Init(); err != nil {
			// Play on without sound rather than refuse to start.
			log.Warn("audio disabled", zap.Error(err))
		} else {
			defer p.Close()
			opts.Audio = p
		}
	}

	g, err := game.New(cfg, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return g.Run(ctx)
}
