package ui

import (
	"strconv"

	"glyph-snake/game/types"
)

// Cell is one character cell of a CellBuffer
type Cell struct {
	Glyph rune
	Style types.Style
}

// CellBuffer is a retained grid of cells. Backends that redraw every frame
// draw from it instead of from the game.
type CellBuffer struct {
	grid  types.Grid
	cells []Cell
}

// NewCellBuffer creates a buffer filled with background cells
func NewCellBuffer(grid types.Grid, bg types.Style) *CellBuffer {
	b := &CellBuffer{grid: grid, cells: make([]Cell, grid.Cells())}
	for i := range b.cells {
		b.cells[i] = Cell{Glyph: types.Background, Style: bg}
	}
	return b
}

// DrawCell implements types.Display. Cells outside the grid are ignored.
func (b *CellBuffer) DrawCell(glyph rune, x, y int, fg, bg types.Color) {
	p := types.Point{X: x, Y: y}
	if !b.grid.Contains(p) {
		return
	}
	b.cells[y*b.grid.Width+x] = Cell{Glyph: glyph, Style: types.Style{Fg: fg, Bg: bg}}
}

// DrawNumber implements types.Display, one digit per cell
func (b *CellBuffer) DrawNumber(value, x, y int, fg, bg types.Color) {
	for i, r := range strconv.Itoa(value) {
		b.DrawCell(r, x+i, y, fg, bg)
	}
}

// At returns the cell at x, y
func (b *CellBuffer) At(x, y int) (Cell, bool) {
	if !b.grid.Contains(types.Point{X: x, Y: y}) {
		return Cell{}, false
	}
	return b.cells[y*b.grid.Width+x], true
}

// Each calls fn for every cell, row by row
func (b *CellBuffer) Each(fn func(x, y int, c Cell)) {
	for i, c := range b.cells {
		fn(i%b.grid.Width, i/b.grid.Width, c)
	}
}

// Grid returns the buffer dimensions
func (b *CellBuffer) Grid() types.Grid {
	return b.grid
}
