// Package telemetry writes session CSV logs.
package telemetry

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"glyph-snake/config"
	"glyph-snake/game/manager"
)

// EventRecord is one row of events.csv
type EventRecord struct {
	Session   string `csv:"session"`
	Tick      int    `csv:"tick"`
	Score     int    `csv:"score"`
	Segments  int    `csv:"segments"`
	HeadX     int    `csv:"head_x"`
	HeadY     int    `csv:"head_y"`
	FoodX     int    `csv:"next_food_x"`
	FoodY     int    `csv:"next_food_y"`
	Saturated bool   `csv:"saturated"`
	ElapsedMs int64  `csv:"elapsed_ms"`
}

// SessionRecord is the single row of session.csv
type SessionRecord struct {
	Session  string `csv:"session"`
	Variant  string `csv:"variant"`
	Started  string `csv:"started"`
	Ended    string `csv:"ended"`
	Ticks    int    `csv:"ticks"`
	Score    int    `csv:"score"`
	Segments int    `csv:"segments"`
	Dropped  int    `csv:"dropped"`
	Spawned  int    `csv:"food_spawned"`
}

// OutputManager handles CSV logging for one session. A nil *OutputManager
// is valid and writes nothing.
type OutputManager struct {
	dir     string
	session string
	started time.Time
	now     func() time.Time

	eventsFile          *os.File
	eventsHeaderWritten bool
	err                 error
}

// NewOutputManager creates the output directory and events.csv.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir, session string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "events.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating events.csv: %w", err)
	}

	return &OutputManager{
		dir:        dir,
		session:    session,
		started:    time.Now(),
		now:        time.Now,
		eventsFile: f,
	}, nil
}

// Consumed implements manager.EventSink. Write errors are kept and reported
// by Err and Close; logging stops after the first one.
func (om *OutputManager) Consumed(ev manager.ConsumeEvent) {
	if om == nil || om.err != nil {
		return
	}

	records := []EventRecord{{
		Session:   om.session,
		Tick:      ev.Tick,
		Score:     ev.Score,
		Segments:  ev.Segments,
		HeadX:     ev.Head.X,
		HeadY:     ev.Head.Y,
		FoodX:     ev.NextFood.X,
		FoodY:     ev.NextFood.Y,
		Saturated: ev.Saturated,
		ElapsedMs: om.now().Sub(om.started).Milliseconds(),
	}}

	var err error
	if !om.eventsHeaderWritten {
		// First write includes headers
		err = gocsv.Marshal(records, om.eventsFile)
		om.eventsHeaderWritten = err == nil
	} else {
		err = gocsv.MarshalWithoutHeaders(records, om.eventsFile)
	}
	if err != nil {
		om.err = fmt.Errorf("writing event: %w", err)
		slog.Warn("telemetry disabled", "error", om.err)
	}
}

// Err returns the first write error, if any
func (om *OutputManager) Err() error {
	if om == nil {
		return nil
	}
	return om.err
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteSession writes session.csv with the final counters. Started and
// Ended are filled in here.
func (om *OutputManager) WriteSession(rec SessionRecord) error {
	if om == nil {
		return nil
	}

	rec.Session = om.session
	rec.Started = om.started.Format(time.RFC3339)
	rec.Ended = om.now().Format(time.RFC3339)

	f, err := os.Create(filepath.Join(om.dir, "session.csv"))
	if err != nil {
		return fmt.Errorf("creating session.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.Marshal([]SessionRecord{rec}, f); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Close flushes and closes the events file.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return errors.Join(om.err, om.eventsFile.Close())
}
