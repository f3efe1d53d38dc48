package main

import (
	"context"
	"time"

	"glyph-snake/ui"
)

// runHeadless ticks as fast as possible until the tick limit or ctx ends
func runHeadless(ctx context.Context, s *session) {
	s.sim.Render()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !s.tick() {
			return
		}
	}
}

// terminal is the part of ui.Terminal the loop needs
type terminal interface {
	Inputs(ctx context.Context) <-chan ui.Input
	Show()
	Sync()
}

// runTerminal delivers ticks from a ticker and keys from the terminal's
// reader goroutine. Both arrive on this goroutine, so calls never overlap.
func runTerminal(ctx context.Context, s *session, term terminal, interval time.Duration) {
	// Stops the reader when the loop returns for any reason
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inputs := term.Inputs(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.sim.Render()
	term.Show()

	for {
		select {
		case <-ctx.Done():
			return

		case in, ok := <-inputs:
			if !ok || in.Quit {
				return
			}
			if in.Redraw {
				term.Sync()
				s.sim.Render()
			}
			if in.HasKey {
				s.key(in.Key)
			}
			term.Show()

		case <-ticker.C:
			more := s.tick()
			term.Show()
			if !more {
				return
			}
		}
	}
}

// window is the part of ui.Window the loop needs
type window interface {
	ShouldClose() bool
	Poll() []ui.Input
	Present()
}

// runWindow runs on the locked main thread. Keys are polled once per frame
// and the simulation ticks whenever interval has passed.
func runWindow(ctx context.Context, s *session, win window, interval time.Duration) {
	s.sim.Render()
	lastUpdate := time.Now()

	for !win.ShouldClose() {
		if ctx.Err() != nil {
			return
		}

		for _, in := range win.Poll() {
			if in.Quit {
				return
			}
			if in.HasKey {
				s.key(in.Key)
			}
		}

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= interval {
			lastUpdate = time.Now()
			if !s.tick() {
				win.Present()
				return
			}
		}

		win.Present()
	}
}
