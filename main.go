package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gookit/color"

	"labyrinth/pkg/engine/terminal"
	"labyrinth/pkg/game/build"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/devtools"
	"labyrinth/pkg/game/explorer"
	"labyrinth/pkg/game/generator"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/renderer/tui"
	"labyrinth/pkg/game/setup"
	"labyrinth/pkg/game/state"
)

func main() {
	configPath := flag.String("config", "labyrinth.yaml", "path to a YAML config file")
	flag.String("map", "", "path to an ASCII map (built-in map when empty)")
	flag.Int("steps", 0, "step budget of the explorer")
	flag.Uint64("seed", 0, "randomizer seed (0 picks one from the clock)")
	flag.Bool("animate", false, "render every step")
	flag.Duration("delay", 0, "pause between two animated steps")
	flag.String("lang", "", "message language")
	flag.Bool("v", false, "debug logging")
	flag.Bool("generate", false, "draw a random map instead of reading one")
	flag.Int("rows", 0, "rows of a generated map")
	flag.Int("cols", 0, "columns of a generated map")
	flag.Int("doors", 0, "doors of a generated map")
	flag.String("dump", "", "write a debug dump of the final state to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := applyFlags(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(cfg.Verbose)
	slog.SetDefault(logger)

	if err := renderer.SetLanguage(cfg.Language); err != nil {
		logger.Warn("falling back to default language", "error", err, "available", renderer.Languages())
	}

	if !terminal.IsTerminal(os.Stdout) {
		color.Disable()
	}
	renderer.SetRenderer(tui.New(os.Stdout))
	renderer.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		logger.Error("exploration failed", "error", err)
		os.Exit(1)
	}
}

// applyFlags overrides the config with every flag set on the command line
func applyFlags(cfg *config.Config) error {
	flag.Visit(func(f *flag.Flag) {
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		v := getter.Get()
		switch f.Name {
		case "map":
			cfg.Map = v.(string)
		case "steps":
			cfg.Steps = v.(int)
		case "seed":
			cfg.Seed = v.(uint64)
		case "animate":
			cfg.Animate = v.(bool)
		case "delay":
			cfg.Delay = v.(time.Duration)
		case "lang":
			cfg.Language = v.(string)
		case "v":
			cfg.Verbose = v.(bool)
		case "generate":
			cfg.Generate.Enabled = v.(bool)
		case "rows":
			cfg.Generate.Rows = v.(int)
		case "cols":
			cfg.Generate.Cols = v.(int)
		case "doors":
			cfg.Generate.Doors = v.(int)
		case "dump":
			cfg.Dump = v.(string)
		}
	})
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadLabyrinth builds the map at path, or the built-in one when path is empty
func loadLabyrinth(path string) (*build.Labyrinth, error) {
	text := build.DefaultMap
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading map %s: %w", path, err)
		}
		text = string(data)
	}

	lab, err := build.FromASCII(text)
	if err != nil {
		return nil, fmt.Errorf("building map %q: %w", path, err)
	}
	return lab, nil
}

// generateLabyrinth draws a random map and builds it
func generateLabyrinth(gen generator.MapGenerator, g config.Generate) (*build.Labyrinth, error) {
	text, err := gen.Generate(g.Rows, g.Cols, g.Doors)
	if err != nil {
		return nil, fmt.Errorf("generating map: %w", err)
	}
	return build.FromASCII(text)
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var lab *build.Labyrinth
	var err error
	if cfg.Generate.Enabled {
		gen := generator.NewBSP(seed)
		logger.Debug("generating map", "generator", gen.Name(), "rows", cfg.Generate.Rows,
			"cols", cfg.Generate.Cols, "doors", cfg.Generate.Doors)
		lab, err = generateLabyrinth(gen, cfg.Generate)
	} else {
		lab, err = loadLabyrinth(cfg.Map)
	}
	if err != nil {
		return err
	}
	if !setup.IsSolvable(lab) {
		logger.Warn("no way out can be reached from the start of this map")
	}
	logger.Debug("starting exploration", "map", cfg.Map, "steps", cfg.Steps, "seed", seed,
		"rows", lab.Grid.Rows(), "cols", lab.Grid.Cols())

	r := state.NewRun(lab, explorer.NewRandomizer(seed), explorer.WithLogger(logger))
	r.Narrate(renderer.Translate)

	if cfg.Animate {
		err = r.Animate(ctx, cfg.Steps, cfg.Delay, func() {
			renderer.Clear()
			renderer.RenderFrame(r)
		})
	} else {
		err = r.Advance(cfg.Steps)
		renderer.RenderFrame(r)
	}

	if cfg.Dump != "" {
		path, dumpErr := devtools.DumpRunToFile(r, cfg.Dump)
		if dumpErr != nil {
			logger.Warn("could not write dump", "error", dumpErr)
		} else {
			logger.Info("wrote dump", "path", path)
		}
	}

	switch {
	case errors.Is(err, context.Canceled):
		renderer.ShowMessage(renderer.Translate("INTERRUPTED", r.Explorer.Steps()))
		return err
	case err != nil:
		return err
	case r.Done:
		renderer.ShowMessage(renderer.Translate("GOT_OUT", r.Explorer.Steps(), r.StepsLeft))
	default:
		renderer.ShowMessage(renderer.Translate("STILL_LOST", r.Explorer.Steps()))
	}
	return nil
}
