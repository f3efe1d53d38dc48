// Package render translates game state into draw calls on a types.Display.
// It never mutates the state it is given.
package render

import (
	"glyph-snake/game/entity"
	"glyph-snake/game/types"
)

// View is the visual state of one frame
type View struct {
	Segments []entity.Segment
	Food     entity.Food
	Score    int
	ShowFood bool
}

// Palette holds the colors of each drawn element
type Palette struct {
	Body       types.Style
	Food       types.Style
	Score      types.Style
	Background types.Style
}

// DefaultPalette matches the classic cyan-on-black text mode look
func DefaultPalette() Palette {
	return Palette{
		Body:       types.Style{Fg: types.Cyan, Bg: types.Black},
		Food:       types.Style{Fg: types.LightRed, Bg: types.Black},
		Score:      types.Style{Fg: types.Yellow, Bg: types.Black},
		Background: types.Style{Fg: types.Black, Bg: types.Black},
	}
}

type Renderer struct {
	display  types.Display
	grid     types.Grid
	palette  Palette
	scorePos types.Point
}

func NewRenderer(display types.Display, grid types.Grid, palette Palette, scorePos types.Point) *Renderer {
	return &Renderer{
		display:  display,
		grid:     grid,
		palette:  palette,
		scorePos: scorePos,
	}
}

// Erase draws the background over p
func (r *Renderer) Erase(p types.Point) {
	r.cell(types.Background, p, r.palette.Background)
}

// Frame draws every occupied segment, the food and the score
func (r *Renderer) Frame(v View) {
	for _, seg := range v.Segments {
		r.cell(seg.Glyph, seg.Pos, r.palette.Body)
	}
	if v.ShowFood {
		r.cell(v.Food.Glyph, v.Food.Pos, r.palette.Food)
	}
	r.score(v.Score)
}

func (r *Renderer) cell(g rune, p types.Point, s types.Style) {
	if !r.grid.Contains(p) {
		return
	}
	r.display.DrawCell(g, p.X, p.Y, s.Fg, s.Bg)
}

// score keeps the whole number on the row by sliding it left
func (r *Renderer) score(value int) {
	if !r.grid.Contains(r.scorePos) {
		return
	}
	digits := Digits(value)
	if digits > r.grid.Width {
		return
	}
	x := r.scorePos.X
	if x+digits > r.grid.Width {
		x = r.grid.Width - digits
	}
	r.display.DrawNumber(value, x, r.scorePos.Y, r.palette.Score.Fg, r.palette.Score.Bg)
}

// Digits counts the decimal digits of v, including a minus sign
func Digits(v int) int {
	n := 1
	if v < 0 {
		n++
		v = -v
	}
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}
