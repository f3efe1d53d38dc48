// Package ui holds the display backends: a tcell terminal, a retained cell
// buffer for frame-based windows and the eat chime.
package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"glyph-snake/game/types"
)

// Terminal draws the grid into a tcell screen, one grid cell per terminal
// cell starting at the top-left corner.
type Terminal struct {
	screen tcell.Screen
	grid   types.Grid
}

// OpenTerminal initializes the real terminal
func OpenTerminal(grid types.Grid, bg types.Style) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return NewTerminal(screen, grid, bg), nil
}

// NewTerminal wraps an initialized screen
func NewTerminal(screen tcell.Screen, grid types.Grid, bg types.Style) *Terminal {
	screen.SetStyle(cellStyle(bg.Fg, bg.Bg))
	screen.HideCursor()
	screen.Clear()
	return &Terminal{screen: screen, grid: grid}
}

func cellStyle(fg, bg types.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(TerminalColor(fg)).Background(TerminalColor(bg))
}

// DrawCell implements types.Display
func (t *Terminal) DrawCell(glyph rune, x, y int, fg, bg types.Color) {
	if !t.grid.Contains(types.Point{X: x, Y: y}) {
		return
	}
	t.screen.SetContent(x, y, glyph, nil, cellStyle(fg, bg))
}

// DrawNumber implements types.Display
func (t *Terminal) DrawNumber(value, x, y int, fg, bg types.Color) {
	for i, r := range strconv.Itoa(value) {
		t.DrawCell(r, x+i, y, fg, bg)
	}
}

// Show flushes pending cells to the terminal
func (t *Terminal) Show() {
	t.screen.Show()
}

// Sync redraws the whole terminal, used after a resize
func (t *Terminal) Sync() {
	t.screen.Sync()
}

// Close restores the terminal
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Inputs starts a reader goroutine that decodes terminal events. The channel
// closes when ctx ends or the screen is finalized.
func (t *Terminal) Inputs(ctx context.Context) <-chan Input {
	return readInputs(ctx, t.screen.PollEvent)
}

func readInputs(ctx context.Context, poll func() tcell.Event) <-chan Input {
	ch := make(chan Input, 16)
	go func() {
		defer close(ch)
		for ctx.Err() == nil {
			ev := poll()
			if ev == nil {
				return
			}
			in, ok := DecodeEvent(ev)
			if !ok {
				continue
			}
			select {
			case ch <- in:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
