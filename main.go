package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"glyph-snake/ai"
	"glyph-snake/config"
	"glyph-snake/game"
	"glyph-snake/game/manager"
	"glyph-snake/game/types"
	"glyph-snake/telemetry"
	"glyph-snake/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	backend := flag.String("backend", "", "Display backend: terminal, window or headless (empty = use config)")
	variant := flag.String("variant", "", "Game variant: snake or letters (empty = use config)")
	tickMs := flag.Int("tick", 0, "Tick interval in milliseconds (0 = use config)")
	seed := flag.Uint64("seed", 0, "Food RNG seed (0 = time-based)")
	autopilot := flag.Bool("autopilot", false, "Steer the snake toward the food automatically")
	sound := flag.Bool("sound", false, "Play a chime when food is eaten")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logPath := flag.String("log", "", "Write logs to this file")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file
	if *backend != "" {
		cfg.Display.Backend = *backend
	}
	if *variant != "" {
		cfg.Game.Variant = *variant
	}
	if *tickMs > 0 {
		cfg.Game.TickMs = *tickMs
	}
	if *sound {
		cfg.Audio.Enabled = true
	}
	if *outputDir != "" {
		cfg.Telemetry.OutputDir = *outputDir
	}
	if err := cfg.Finalize(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(*logPath, cfg.Display.Backend == config.BackendHeadless)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	if *autopilot && cfg.Game.Variant != config.VariantSnake {
		slog.Warn("autopilot only drives the snake variant, ignoring")
	}
	if cfg.Display.Backend == config.BackendHeadless && *maxTicks == 0 {
		slog.Info("headless run without -max-ticks, stop with Ctrl-C")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, runOptions{
		seed:      *seed,
		autopilot: *autopilot,
		maxTicks:  *maxTicks,
	}); err != nil {
		slog.Error("game failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}

type runOptions struct {
	seed      uint64
	autopilot bool
	maxTicks  int
}

// newLogger writes text logs to path. Without a path logs go to stderr for
// headless runs and nowhere otherwise, since the display owns the terminal.
func newLogger(path string, headless bool) (*slog.Logger, func(), error) {
	if path == "" {
		w := io.Discard
		if headless {
			w = os.Stderr
		}
		return slog.New(slog.NewTextHandler(w, nil)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { f.Close() }, nil
}

func run(ctx context.Context, cfg *config.Config, opts runOptions) error {
	d := cfg.Derived
	sessionID := uuid.New().String()
	log := slog.Default().With("session", sessionID)

	out, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir, sessionID)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			log.Warn("closing telemetry", "error", err)
		}
	}()
	if err := out.WriteConfig(cfg); err != nil {
		return err
	}

	sinks := manager.Sinks{out}
	if cfg.Audio.Enabled {
		chime, err := ui.NewChime(cfg.Audio.Frequency, d.ChimeDuration)
		if err != nil {
			// Sound is optional
			log.Warn("audio disabled", "error", err)
		} else {
			defer chime.Close()
			sinks = append(sinks, chime)
		}
	}

	var (
		display types.Display
		term    *ui.Terminal
		win     *ui.Window
	)
	switch cfg.Display.Backend {
	case config.BackendTerminal:
		term, err = ui.OpenTerminal(d.Grid, d.Palette.Background)
		if err != nil {
			return err
		}
		defer term.Close()
		display = term
	case config.BackendWindow:
		win = ui.OpenWindow(d.Grid, d.Palette.Background, cfg.Display.CellSize, cfg.Display.Title)
		defer win.Close()
		display = win
	default:
		display = ui.NewCellBuffer(d.Grid, d.Palette.Background)
	}

	sim := newSimulation(cfg, display, sinks, sessionID, opts.seed, log)

	var pilot *ai.Autopilot
	if opts.autopilot {
		pilot = ai.NewAutopilot()
	}
	s := newSession(sim, pilot, opts.maxTicks, log)

	log.Info("starting game",
		"variant", cfg.Game.Variant,
		"backend", cfg.Display.Backend,
		"grid", fmt.Sprintf("%dx%d", d.Grid.Width, d.Grid.Height),
		"tick", d.TickInterval,
		"max_ticks", opts.maxTicks,
		"autopilot", opts.autopilot,
	)

	started := time.Now()
	switch {
	case term != nil:
		runTerminal(ctx, s, term, d.TickInterval)
	case win != nil:
		runWindow(ctx, s, win, d.TickInterval)
	default:
		runHeadless(ctx, s)
	}

	s.logSummary(cfg.Game.Variant)
	if err := out.Err(); err != nil {
		log.Warn("event log incomplete", "error", err)
	}
	log.Info("game stopped", "elapsed", time.Since(started).Round(time.Millisecond))
	return out.WriteSession(s.summary(cfg.Game.Variant))
}

// newSimulation builds the configured variant
func newSimulation(cfg *config.Config, display types.Display, sink manager.EventSink, sessionID string, seed uint64, log *slog.Logger) game.Simulation {
	d := cfg.Derived
	if cfg.Game.Variant == config.VariantLetters {
		return game.NewLetterMover(display, d.Grid, d.Palette, types.IsDrawable)
	}

	opts := game.Options{
		UUID:        sessionID,
		Grid:        d.Grid,
		MaxSegments: cfg.Game.MaxSegments,
		BodyGlyph:   d.BodyGlyph,
		FoodGlyph:   d.FoodGlyph,
		Palette:     d.Palette,
		ScorePos:    d.ScorePos,
		Drawable:    types.IsDrawable,
		Sink:        sink,
		Logger:      log,
	}
	if seed != 0 {
		opts.Source = manager.NewSource(seed)
	}
	return game.NewGame(display, opts)
}
