// maze-shooter is a terminal maze editor and top-down shooter.
//
// Usage:
//
//	maze-shooter [-config config.yaml] [-maze saves/save.txt] [-play] [-seed N]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"maze-shooter/internal/config"
	"maze-shooter/internal/game"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgFile := flag.String("config", "config.yaml", "YAML configuration file")
	mazeFile := flag.String("maze", "", "Maze file to edit and play (default: save_file from the config)")
	play := flag.Bool("play", false, "Start playing the maze immediately")
	logFile := flag.String("log", "", "Log file (default: log_file from the config)")
	seed := flag.Int64("seed", 0, "Seed for maze generation (0 uses the clock)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		return err
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	// The terminal belongs to the game, so logs go to a file.
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(f).Level(level).With().Timestamp().Logger()

	g, err := game.NewTerminal(game.Options{
		Config:   cfg,
		MazePath: *mazeFile,
		Logger:   log,
		Seed:     *seed,
	})
	if err != nil {
		return err
	}
	if *play {
		if err := g.StartPlay(); err != nil {
			log.Warn().Err(err).Msg("cannot start play, opening editor")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = g.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
