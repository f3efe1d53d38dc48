package main

import (
	"log/slog"

	"glyph-snake/ai"
	"glyph-snake/game"
	"glyph-snake/game/types"
	"glyph-snake/telemetry"
)

// session is the single owner of the running simulation. Every call into
// the simulation goes through it, from one goroutine.
type session struct {
	sim      game.Simulation
	snake    *game.Game // nil for the letter mover
	pilot    *ai.Autopilot
	maxTicks int
	ticks    int
	keys     int
	log      *slog.Logger
}

func newSession(sim game.Simulation, pilot *ai.Autopilot, maxTicks int, log *slog.Logger) *session {
	s := &session{
		sim:      sim,
		maxTicks: maxTicks,
		log:      log,
	}
	if g, ok := sim.(*game.Game); ok {
		s.snake = g
		s.pilot = pilot
	}
	return s
}

// tick lets the autopilot steer, then advances the simulation. It returns
// false once the tick limit has been reached.
func (s *session) tick() bool {
	if s.pilot != nil {
		if key, ok := s.pilot.Next(ai.Observe(s.snake)); ok {
			s.key(key)
		}
	}
	s.sim.Tick()
	s.ticks++

	if s.maxTicks > 0 && s.ticks >= s.maxTicks {
		s.log.Info("max ticks reached", "tick", s.ticks)
		return false
	}
	return true
}

func (s *session) key(ev types.KeyEvent) {
	s.keys++
	s.sim.Key(ev)
}

// summary collects the final counters for session.csv
func (s *session) summary(variant string) telemetry.SessionRecord {
	rec := telemetry.SessionRecord{
		Variant: variant,
		Ticks:   s.ticks,
	}
	if s.snake != nil {
		rec.Score = s.snake.Score()
		rec.Segments = s.snake.GetSnake().Used()
		rec.Dropped = s.snake.Dropped()
		rec.Spawned = s.snake.FoodSpawned()
	}
	return rec
}

func (s *session) logSummary(variant string) {
	rec := s.summary(variant)
	s.log.Info("session finished",
		"variant", rec.Variant,
		"ticks", rec.Ticks,
		"keys", s.keys,
		"score", rec.Score,
		"segments", rec.Segments,
		"dropped", rec.Dropped,
		"food_spawned", rec.Spawned,
	)
}
