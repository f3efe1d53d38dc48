package manager

import (
	"glyph-snake/game/types"
)

// ConsumeEvent describes one tick on which the head reached the food
type ConsumeEvent struct {
	Tick      int
	Score     int
	Segments  int
	Head      types.Point
	NextFood  types.Point
	Saturated bool
}

// EventSink receives consume events. Implementations must not call back
// into the game.
type EventSink interface {
	Consumed(ev ConsumeEvent)
}

// Sinks fans an event out to several sinks in order. Nil entries are skipped.
type Sinks []EventSink

func (s Sinks) Consumed(ev ConsumeEvent) {
	for _, sink := range s {
		if sink != nil {
			sink.Consumed(ev)
		}
	}
}

// StateManager tracks the score and counters of a session
type StateManager struct {
	score   int
	ticks   int
	dropped int
	sink    EventSink
}

func NewStateManager(sink EventSink) *StateManager {
	return &StateManager{sink: sink}
}

// AdvanceTick counts a tick and returns its number, starting at 1
func (sm *StateManager) AdvanceTick() int {
	sm.ticks++
	return sm.ticks
}

// RecordConsume bumps the score and forwards the event. The event's Score
// is filled in here.
func (sm *StateManager) RecordConsume(ev ConsumeEvent) int {
	sm.score++
	if ev.Saturated {
		sm.dropped++
	}
	ev.Score = sm.score
	ev.Tick = sm.ticks
	if sm.sink != nil {
		sm.sink.Consumed(ev)
	}
	return sm.score
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetTicks() int {
	return sm.ticks
}

// GetDropped counts consumes that could not add a body slot
func (sm *StateManager) GetDropped() int {
	return sm.dropped
}
