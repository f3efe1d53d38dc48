package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"glyph-snake/game/entity"
	"glyph-snake/game/render"
	"glyph-snake/game/types"
)

// Source yields uniform integers in [0, n)
type Source interface {
	Intn(n int) int
}

// NewSource returns a PRNG seeded with seed
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// ClockSeed reads the high-resolution clock for a seed
func ClockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

type FoodManager struct {
	grid     types.Grid
	rng      Source
	glyph    rune
	renderer *render.Renderer
	spawned  int
}

// NewFoodManager creates the spawner. A nil rng is seeded from the clock on
// first spawn.
func NewFoodManager(grid types.Grid, rng Source, glyph rune, renderer *render.Renderer) *FoodManager {
	return &FoodManager{
		grid:     grid,
		rng:      rng,
		glyph:    glyph,
		renderer: renderer,
	}
}

// Initial places the first food away from the grid center
func (fm *FoodManager) Initial() entity.Food {
	c := fm.grid.Center()
	pos := types.Point{
		X: min(c.X+fm.grid.Width/4, fm.grid.Width-1),
		Y: min(c.Y+fm.grid.Height*2/5, fm.grid.Height-1),
	}
	return entity.Food{Pos: pos, Glyph: fm.glyph}
}

// Spawn erases existing and draws a new food at a random cell. The snake
// body is not consulted, so food may land under it.
func (fm *FoodManager) Spawn(existing entity.Food) entity.Food {
	fm.renderer.Erase(existing.Pos)

	if fm.rng == nil {
		fm.rng = NewSource(ClockSeed())
	}
	pos := types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
	fm.spawned++
	return entity.Food{Pos: pos, Glyph: fm.glyph}
}

// Spawned counts the foods placed by Spawn
func (fm *FoodManager) Spawned() int {
	return fm.spawned
}
