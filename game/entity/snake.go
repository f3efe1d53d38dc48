package entity

import (
	"glyph-snake/game/types"
)

// Segment is one body cell and the glyph bound to it
type Segment struct {
	Pos   types.Point
	Glyph rune
}

// Snake holds a fixed-capacity body. Slot 0 is the head; slots at or past
// used hold stale data and are never exposed.
type Snake struct {
	body     []types.Point
	glyphs   []rune
	skinned  []bool
	used     int
	velocity types.Point
	heading  types.Heading

	skinCursor int
	skinLimit  int
}

// NewSnake allocates every slot up front. skinLimit bounds the skin write
// cursor; it is normally the grid width.
func NewSnake(start types.Point, capacity int, glyph rune, skinLimit int) *Snake {
	if capacity < 1 {
		capacity = 1
	}
	if skinLimit > capacity {
		skinLimit = capacity
	}

	s := &Snake{
		body:       make([]types.Point, capacity),
		glyphs:     make([]rune, capacity),
		skinned:    make([]bool, capacity),
		used:       1,
		heading:    types.None,
		skinCursor: 1,
		skinLimit:  skinLimit,
	}
	for i := range s.glyphs {
		s.glyphs[i] = glyph
	}
	s.body[0] = start
	return s
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

// MoveHead commits a new head position into slot 0
func (s *Snake) MoveHead(p types.Point) {
	s.body[0] = p
}

func (s *Snake) Used() int {
	return s.used
}

func (s *Snake) Capacity() int {
	return len(s.body)
}

// Full reports whether further growth would be dropped
func (s *Snake) Full() bool {
	return s.used == len(s.body)
}

func (s *Snake) Velocity() types.Point {
	return s.velocity
}

func (s *Snake) Heading() types.Heading {
	return s.heading
}

// Segment returns slot i, which must be below Used()
func (s *Snake) Segment(i int) Segment {
	return Segment{Pos: s.body[i], Glyph: s.glyphs[i]}
}

// Segments copies the occupied slots
func (s *Snake) Segments() []Segment {
	out := make([]Segment, s.used)
	for i := range out {
		out[i] = s.Segment(i)
	}
	return out
}

// Steer applies an axis-locked heading change. A request on an axis that
// already has velocity is ignored; otherwise the other axis is zeroed.
func (s *Snake) Steer(h types.Heading) bool {
	switch {
	case h == types.None:
		return false
	case h.Horizontal() && s.velocity.X != 0:
		return false
	case !h.Horizontal() && s.velocity.Y != 0:
		return false
	}
	s.velocity = h.ToPoint()
	s.heading = h
	return true
}

// Grow binds the next free slot at p. A slot carrying a skin glyph keeps it,
// any other takes glyph. Growth past capacity is dropped and reports false.
func (s *Snake) Grow(p types.Point, glyph rune) bool {
	if s.Full() {
		return false
	}
	slot := s.used
	s.body[slot] = p
	if !s.skinned[slot] {
		s.glyphs[slot] = glyph
	}
	s.used++
	return true
}

// AddSkin writes r at the skin cursor and advances it. The cursor cycles
// through slots 1..skinLimit-1 and never touches the head.
func (s *Snake) AddSkin(r rune) bool {
	if s.skinLimit < 2 {
		return false
	}
	s.glyphs[s.skinCursor] = r
	s.skinned[s.skinCursor] = true
	s.skinCursor++
	if s.skinCursor >= s.skinLimit {
		s.skinCursor = 1
	}
	return true
}

// SkinCursor is the slot the next skin glyph goes to
func (s *Snake) SkinCursor() int {
	return s.skinCursor
}
