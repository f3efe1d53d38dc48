package game

import (
	"glyph-snake/game/entity"
	"glyph-snake/game/render"
	"glyph-snake/game/types"
)

// LetterMover is the earlier variant: a row of typed letters that travels
// across the grid and wraps at every edge. It has no food and no score.
type LetterMover struct {
	grid     types.Grid
	letters  []rune
	count    int
	next     int
	col, row int

	// dx and dy are unsigned deltas; grid size minus one means -1
	dx, dy    int
	direction types.Heading

	renderer *render.Renderer
	drawable func(rune) bool
}

func NewLetterMover(display types.Display, grid types.Grid, palette render.Palette, drawable func(rune) bool) *LetterMover {
	if drawable == nil {
		drawable = types.IsDrawable
	}
	letters := make([]rune, grid.Width)
	for i := range letters {
		letters[i] = 'o'
	}
	c := grid.Center()
	return &LetterMover{
		grid:      grid,
		letters:   letters,
		count:     1,
		next:      1,
		col:       c.X,
		row:       c.Y,
		direction: types.Right,
		// score cell is placed off-grid so it is never drawn
		renderer: render.NewRenderer(display, grid, palette, types.Point{X: -1, Y: -1}),
		drawable: drawable,
	}
}

func (m *LetterMover) columns() []int {
	cols := make([]int, m.count)
	for n := range cols {
		cols[n] = types.SafeAdd(n, m.col, m.grid.Width)
	}
	return cols
}

func (m *LetterMover) Tick() {
	for _, x := range m.columns() {
		m.renderer.Erase(types.Point{X: x, Y: m.row})
	}
	p := m.grid.Wrap(m.Position(), types.Point{X: m.dx, Y: m.dy})
	m.col, m.row = p.X, p.Y
	m.Render()
}

func (m *LetterMover) Render() {
	m.renderer.Frame(render.View{Segments: m.Segments()})
}

func (m *LetterMover) Key(ev types.KeyEvent) {
	if h, ok := ev.Heading(); ok {
		m.steer(h)
		return
	}
	if ev.IsChar && m.drawable(ev.Char) {
		m.letters[m.next] = ev.Char
		m.next = types.Add1(m.next, m.grid.Width)
		m.count = min(m.count+1, m.grid.Width)
	}
}

func (m *LetterMover) steer(h types.Heading) {
	switch h {
	case types.Left:
		if m.dx == 0 {
			m.dx = types.Sub1(m.dx, m.grid.Width)
			m.dy = 0
			m.direction = h
		}
	case types.Right:
		if m.dx == 0 {
			m.dx = types.Add1(m.dx, m.grid.Width)
			m.dy = 0
			m.direction = h
		}
	case types.Up:
		if m.dy == 0 {
			m.dy = types.Sub1(m.dy, m.grid.Height)
			m.dx = 0
			m.direction = h
		}
	case types.Down:
		if m.dy == 0 {
			m.dy = types.Add1(m.dy, m.grid.Height)
			m.dx = 0
			m.direction = h
		}
	}
}

// Segments lists the letters at their current cells
func (m *LetterMover) Segments() []entity.Segment {
	cols := m.columns()
	segs := make([]entity.Segment, len(cols))
	for i, x := range cols {
		segs[i] = entity.Segment{Pos: types.Point{X: x, Y: m.row}, Glyph: m.letters[i]}
	}
	return segs
}

// Position is the cell of the first letter
func (m *LetterMover) Position() types.Point {
	return types.Point{X: m.col, Y: m.row}
}

func (m *LetterMover) Direction() types.Heading {
	return m.direction
}
