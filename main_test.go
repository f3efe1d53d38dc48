package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"glyph-snake/ai"
	"glyph-snake/config"
	"glyph-snake/game"
	"glyph-snake/game/manager"
	"glyph-snake/game/render"
	"glyph-snake/game/types"
	"glyph-snake/ui"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	cfg.Grid.Width = 40
	cfg.Grid.Height = 25
	cfg.Display.Backend = config.BackendHeadless
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	return cfg
}

func newTestSnake(t *testing.T) *game.Game {
	t.Helper()
	cfg := testConfig(t)
	return newSimulation(cfg, render.NewRecorder(), nil, "test", 7, quietLogger()).(*game.Game)
}

func TestHeadlessStopsAtMaxTicks(t *testing.T) {
	g := newTestSnake(t)
	s := newSession(g, nil, 25, quietLogger())

	runHeadless(context.Background(), s)

	if s.ticks != 25 || g.Ticks() != 25 {
		t.Errorf("ticks = %d/%d, want 25", s.ticks, g.Ticks())
	}
}

func TestHeadlessStopsOnCancel(t *testing.T) {
	g := newTestSnake(t)
	s := newSession(g, nil, 0, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runHeadless(ctx, s)

	if s.ticks != 0 {
		t.Errorf("ticked %d times after cancel", s.ticks)
	}
}

func TestAutopilotSession(t *testing.T) {
	g := newTestSnake(t)
	s := newSession(g, ai.NewAutopilot(), 500, quietLogger())

	runHeadless(context.Background(), s)

	if g.Score() == 0 {
		t.Error("autopilot ate nothing in 500 ticks")
	}
	rec := s.summary(config.VariantSnake)
	if rec.Score != g.Score() || rec.Segments != g.GetSnake().Used() || rec.Ticks != 500 || rec.Spawned != g.Score() {
		t.Errorf("summary = %+v", rec)
	}
}

func TestAutopilotIgnoredForLetters(t *testing.T) {
	cfg := testConfig(t)
	cfg.Game.Variant = config.VariantLetters
	sim := newSimulation(cfg, render.NewRecorder(), nil, "test", 0, quietLogger())
	if _, ok := sim.(*game.LetterMover); !ok {
		t.Fatalf("simulation = %T, want *game.LetterMover", sim)
	}

	s := newSession(sim, ai.NewAutopilot(), 3, quietLogger())
	if s.pilot != nil || s.snake != nil {
		t.Error("letter mover session should have no autopilot")
	}
	runHeadless(context.Background(), s)

	if rec := s.summary(config.VariantLetters); rec.Score != 0 || rec.Ticks != 3 {
		t.Errorf("summary = %+v", rec)
	}
}

type fakeTerminal struct {
	inputs chan ui.Input
	shows  int
	syncs  int
}

func (f *fakeTerminal) Inputs(context.Context) <-chan ui.Input { return f.inputs }
func (f *fakeTerminal) Show()                                  { f.shows++ }
func (f *fakeTerminal) Sync()                                  { f.syncs++ }

func TestTerminalLoopAppliesKeysThenQuits(t *testing.T) {
	g := newTestSnake(t)
	s := newSession(g, nil, 0, quietLogger())
	term := &fakeTerminal{inputs: make(chan ui.Input, 4)}
	term.inputs <- ui.Input{Key: types.RawKey(types.ArrowRight), HasKey: true}
	term.inputs <- ui.Input{Redraw: true}
	term.inputs <- ui.Input{Quit: true}

	// A long interval keeps the ticker out of the way
	runTerminal(context.Background(), s, term, time.Hour)

	if v := g.GetSnake().Velocity(); v != (types.Point{X: 1, Y: 0}) {
		t.Errorf("velocity = %v, want {1 0}", v)
	}
	if term.syncs != 1 {
		t.Errorf("syncs = %d, want 1", term.syncs)
	}
	if term.shows < 3 {
		t.Errorf("shows = %d, want at least 3", term.shows)
	}
	if s.keys != 1 {
		t.Errorf("keys = %d, want 1", s.keys)
	}
}

func TestTerminalLoopTicks(t *testing.T) {
	g := newTestSnake(t)
	s := newSession(g, nil, 5, quietLogger())
	term := &fakeTerminal{inputs: make(chan ui.Input)}

	done := make(chan struct{})
	go func() {
		runTerminal(context.Background(), s, term, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("terminal loop did not stop at max ticks")
	}
	if g.Ticks() != 5 {
		t.Errorf("ticks = %d, want 5", g.Ticks())
	}
}

func TestTerminalLoopStopsWhenInputsClose(t *testing.T) {
	g := newTestSnake(t)
	s := newSession(g, nil, 0, quietLogger())
	term := &fakeTerminal{inputs: make(chan ui.Input)}
	close(term.inputs)

	runTerminal(context.Background(), s, term, time.Hour)
}

type fakeWindow struct {
	frames   int
	closeAt  int
	pending  [][]ui.Input
	presents int
}

func (f *fakeWindow) ShouldClose() bool {
	f.frames++
	return f.frames > f.closeAt
}

func (f *fakeWindow) Poll() []ui.Input {
	if len(f.pending) == 0 {
		return nil
	}
	in := f.pending[0]
	f.pending = f.pending[1:]
	return in
}

func (f *fakeWindow) Present() { f.presents++ }

func TestWindowLoop(t *testing.T) {
	g := newTestSnake(t)
	s := newSession(g, nil, 0, quietLogger())
	win := &fakeWindow{
		closeAt: 4,
		pending: [][]ui.Input{
			{{Key: types.RawKey(types.ArrowDown), HasKey: true}},
			{{Key: types.CharKey('x'), HasKey: true}},
		},
	}

	// Zero interval ticks on every frame
	runWindow(context.Background(), s, win, 0)

	if g.Ticks() != 4 {
		t.Errorf("ticks = %d, want 4", g.Ticks())
	}
	if win.presents != 4 {
		t.Errorf("presents = %d, want 4", win.presents)
	}
	if head := g.GetSnake().Head(); head != (types.Point{X: 20, Y: 16}) {
		t.Errorf("head = %v, want {20 16}", head)
	}
}

func TestWindowLoopQuitKey(t *testing.T) {
	g := newTestSnake(t)
	s := newSession(g, nil, 0, quietLogger())
	win := &fakeWindow{closeAt: 100, pending: [][]ui.Input{{{Quit: true}}}}

	runWindow(context.Background(), s, win, 0)

	if g.Ticks() != 0 || win.presents != 0 {
		t.Errorf("ticks = %d, presents = %d after quit", g.Ticks(), win.presents)
	}
}

func TestNewSimulationUsesSeed(t *testing.T) {
	cfg := testConfig(t)
	cfg.Game.MaxSegments = 3
	if err := cfg.Finalize(); err != nil {
		t.Fatal(err)
	}

	g := newSimulation(cfg, render.NewRecorder(), manager.Sinks{}, "abc", 1, quietLogger()).(*game.Game)

	if g.UUID != "abc" {
		t.Errorf("UUID = %q, want abc", g.UUID)
	}
	if c := g.GetSnake().Capacity(); c != 3 {
		t.Errorf("capacity = %d, want 3", c)
	}
}

func TestNewLoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, closeLog, err := newLogger(path, false)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=hello") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewLoggerBadPath(t *testing.T) {
	if _, _, err := newLogger(filepath.Join(t.TempDir(), "missing", "game.log"), false); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestRunHeadlessWritesTelemetry(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	cfg.Telemetry.OutputDir = dir
	if err := cfg.Finalize(); err != nil {
		t.Fatal(err)
	}

	err := run(context.Background(), cfg, runOptions{seed: 5, autopilot: true, maxTicks: 400})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, name := range []string{"events.csv", "session.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "session.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], ",snake,") || !strings.Contains(lines[1], ",400,") {
		t.Errorf("session.csv = %q", data)
	}
}
