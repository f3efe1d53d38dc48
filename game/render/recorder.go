package render

import (
	"strconv"

	"glyph-snake/game/types"
)

// CallKind distinguishes cell and number draws
type CallKind int

const (
	CellCall CallKind = iota
	NumberCall
)

// Call is one recorded draw
type Call struct {
	Kind  CallKind
	Glyph rune
	Value int
	X, Y  int
	Fg    types.Color
	Bg    types.Color
}

type cell struct {
	glyph rune
	style types.Style
}

// Recorder is an in-memory Display. It keeps the call log and the last
// glyph drawn into each cell.
type Recorder struct {
	Calls []Call
	cells map[types.Point]cell
}

func NewRecorder() *Recorder {
	return &Recorder{cells: make(map[types.Point]cell)}
}

func (r *Recorder) DrawCell(glyph rune, x, y int, fg, bg types.Color) {
	r.Calls = append(r.Calls, Call{Kind: CellCall, Glyph: glyph, X: x, Y: y, Fg: fg, Bg: bg})
	r.cells[types.Point{X: x, Y: y}] = cell{glyph: glyph, style: types.Style{Fg: fg, Bg: bg}}
}

// DrawNumber writes the decimal digits into consecutive cells
func (r *Recorder) DrawNumber(value, x, y int, fg, bg types.Color) {
	r.Calls = append(r.Calls, Call{Kind: NumberCall, Value: value, X: x, Y: y, Fg: fg, Bg: bg})
	for i, d := range strconv.Itoa(value) {
		r.cells[types.Point{X: x + i, Y: y}] = cell{glyph: d, style: types.Style{Fg: fg, Bg: bg}}
	}
}

// Cell returns what was last drawn at (x, y)
func (r *Recorder) Cell(x, y int) (rune, types.Style, bool) {
	c, ok := r.cells[types.Point{X: x, Y: y}]
	return c.glyph, c.style, ok
}

// Reset clears the call log but keeps the cell contents
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
