// Package main provides the adventure binary: a single-player text adventure
// played on the terminal over a world loaded from a JSON or YAML map file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/frontend/console"
	"github.com/cory-johannsen/adventure/internal/game/engine"
	"github.com/cory-johannsen/adventure/internal/game/world"
	"github.com/cory-johannsen/adventure/internal/lifecycle"
	"github.com/cory-johannsen/adventure/internal/observability"
)

const usage = "Usage: adventure [-config file] <map file>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run plays one session and returns the process exit status: 0 when the
// session ends by quit, victory, or defeat, 1 on any usage or startup error.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	start := time.Now()

	fs := flag.NewFlagSet("adventure", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprintln(stderr, usage) }
	configPath := fs.String("config", "", "path to configuration file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}
	mapPath := fs.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "loading config: %v\n", err)
		return 1
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "initializing logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	w, err := world.LoadFromFile(mapPath)
	if err != nil {
		logger.Error("loading world", zap.String("path", mapPath), zap.Error(err))
		fmt.Fprintf(stderr, "loading world: %v\n", err)
		return 1
	}
	logger.Info("world loaded",
		zap.String("path", mapPath),
		zap.Int("rooms", w.RoomCount()),
		zap.Int("items", w.ItemCount()),
		zap.Duration("elapsed", time.Since(start)),
	)

	color := useColor(cfg.Game.Color, stdout)
	conn := console.NewConn(stdin, stdout)
	eng := engine.New(w, console.NewRenderer(conn, color), logger)
	shell := console.NewShell(conn, eng, console.Options{
		Prompt:   cfg.Game.Prompt,
		EOFLimit: cfg.Game.EOFLimit,
		Color:    color,
	}, logger)

	lc := lifecycle.New(logger)
	lc.Add("console", shell)
	if err := lc.Run(context.Background()); err != nil {
		logger.Error("session failed", zap.Error(err))
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	logger.Info("exiting",
		zap.Stringer("status", eng.Player().Status),
		zap.Duration("uptime", time.Since(start)),
	)
	return 0
}

// useColor resolves the configured color mode. Auto styles output only when
// it is a terminal.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}
