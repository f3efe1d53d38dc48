package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"glyph-snake/game/types"
)

const borderPadding = 10 // Padding around the grid

// Window is a raylib backend. The game draws into a retained CellBuffer and
// Present paints the whole buffer once per frame. Every method must be
// called from the thread that opened the window.
type Window struct {
	*CellBuffer

	cellSize int32
	fontSize int32
	border   rl.Color
}

// OpenWindow creates a window sized to fit the grid
func OpenWindow(grid types.Grid, bg types.Style, cellSize int, title string) *Window {
	w := &Window{
		CellBuffer: NewCellBuffer(grid, bg),
		cellSize:   int32(cellSize),
		fontSize:   int32(cellSize) * 4 / 5,
		border:     rl.DarkGray,
	}

	width := w.cellSize*int32(grid.Width) + borderPadding*2
	height := w.cellSize*int32(grid.Height) + borderPadding*2
	rl.InitWindow(width, height, title)
	rl.SetTargetFPS(60)
	// Exit is handled by Poll so the game loop can shut down cleanly
	rl.SetExitKey(0)
	return w
}

// ShouldClose reports whether the user asked to close the window
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// Present paints every cell of the buffer
func (w *Window) Present() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	grid := w.Grid()
	rl.DrawRectangleLines(borderPadding-1, borderPadding-1,
		w.cellSize*int32(grid.Width)+2, w.cellSize*int32(grid.Height)+2, w.border)

	w.Each(func(x, y int, c Cell) {
		px := borderPadding + int32(x)*w.cellSize
		py := borderPadding + int32(y)*w.cellSize
		rl.DrawRectangle(px, py, w.cellSize, w.cellSize, rlColor(c.Style.Bg))
		if c.Glyph == types.Background {
			return
		}
		text := string(c.Glyph)
		tx := px + (w.cellSize-rl.MeasureText(text, w.fontSize))/2
		ty := py + (w.cellSize-w.fontSize)/2
		rl.DrawText(text, tx, ty, w.fontSize, rlColor(c.Style.Fg))
	})

	rl.EndDrawing()
}

// Poll drains the keys pressed since the last frame
func (w *Window) Poll() []Input {
	var out []Input
	for {
		key := rl.GetKeyPressed()
		if key == 0 {
			break
		}
		if in, ok := DecodeWindowKey(key); ok {
			out = append(out, in)
		}
	}
	for {
		r := rl.GetCharPressed()
		if r == 0 {
			break
		}
		out = append(out, keyInput(types.CharKey(rune(r))))
	}
	return out
}

// Close destroys the window
func (w *Window) Close() {
	rl.CloseWindow()
}

// DecodeWindowKey maps a raylib key code to an input. Printable keys are
// reported through GetCharPressed instead, so ok is false for them.
func DecodeWindowKey(key int32) (Input, bool) {
	switch key {
	case rl.KeyEscape:
		return Input{Quit: true}, true
	case rl.KeyUp:
		return keyInput(types.RawKey(types.ArrowUp)), true
	case rl.KeyDown:
		return keyInput(types.RawKey(types.ArrowDown)), true
	case rl.KeyLeft:
		return keyInput(types.RawKey(types.ArrowLeft)), true
	case rl.KeyRight:
		return keyInput(types.RawKey(types.ArrowRight)), true
	}
	if key >= rl.KeySpace && key <= rl.KeyGrave {
		return Input{}, false
	}
	return keyInput(types.RawKey(types.KeyOther)), true
}

func rlColor(c types.Color) rl.Color {
	v := ColorRGB(c)
	return rl.Color{R: v.R, G: v.G, B: v.B, A: 255}
}
