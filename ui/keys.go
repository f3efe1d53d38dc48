package ui

import (
	"github.com/gdamore/tcell/v2"

	"glyph-snake/game/types"
)

// Input is one decoded event from a display backend
type Input struct {
	Key    types.KeyEvent
	HasKey bool
	Quit   bool
	Redraw bool
}

// DecodeKey turns a tcell key into a game key event. Escape and Ctrl-C quit.
func DecodeKey(key tcell.Key, r rune) Input {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Input{Quit: true}
	case tcell.KeyUp:
		return keyInput(types.RawKey(types.ArrowUp))
	case tcell.KeyDown:
		return keyInput(types.RawKey(types.ArrowDown))
	case tcell.KeyLeft:
		return keyInput(types.RawKey(types.ArrowLeft))
	case tcell.KeyRight:
		return keyInput(types.RawKey(types.ArrowRight))
	case tcell.KeyRune:
		return keyInput(types.CharKey(r))
	}
	return keyInput(types.RawKey(types.KeyOther))
}

func keyInput(ev types.KeyEvent) Input {
	return Input{Key: ev, HasKey: true}
}

// DecodeEvent handles any tcell event; ok is false for events the game
// does not care about
func DecodeEvent(ev tcell.Event) (Input, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return DecodeKey(ev.Key(), ev.Rune()), true
	case *tcell.EventResize:
		return Input{Redraw: true}, true
	}
	return Input{}, false
}
