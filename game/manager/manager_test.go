package manager

import (
	"testing"

	"glyph-snake/game/entity"
	"glyph-snake/game/render"
	"glyph-snake/game/types"
)

// scripted returns its values in order, reduced modulo n
type scripted struct {
	values []int
	next   int
}

func (s *scripted) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

type sinkFunc func(ConsumeEvent)

func (f sinkFunc) Consumed(ev ConsumeEvent) { f(ev) }

func TestInitialFoodOffset(t *testing.T) {
	tests := []struct {
		grid types.Grid
		want types.Point
	}{
		{types.Grid{Width: 40, Height: 25}, types.Point{X: 30, Y: 22}},
		{types.Grid{Width: 80, Height: 25}, types.Point{X: 60, Y: 22}},
		{types.Grid{Width: 2, Height: 2}, types.Point{X: 1, Y: 1}},
	}

	for _, tt := range tests {
		fm := NewFoodManager(tt.grid, nil, '*', render.NewRenderer(render.NewRecorder(), tt.grid, render.DefaultPalette(), types.Point{}))
		got := fm.Initial()
		if got.Pos != tt.want || got.Glyph != '*' {
			t.Errorf("Initial() on %v = %+v, want %v", tt.grid, got, tt.want)
		}
	}
}

func TestSpawnErasesPreviousFood(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	rec := render.NewRecorder()
	fm := NewFoodManager(grid, &scripted{values: []int{3, 4}}, '*', render.NewRenderer(rec, grid, render.DefaultPalette(), types.Point{}))

	old := entity.Food{Pos: types.Point{X: 7, Y: 8}, Glyph: '*'}
	got := fm.Spawn(old)

	if got.Pos != (types.Point{X: 3, Y: 4}) {
		t.Errorf("Spawn() = %v, want {3 4}", got.Pos)
	}
	if len(rec.Calls) != 1 {
		t.Fatalf("calls = %+v, want a single erase", rec.Calls)
	}
	c := rec.Calls[0]
	if c.X != 7 || c.Y != 8 || c.Glyph != types.Background {
		t.Errorf("erase call = %+v, want background at (7,8)", c)
	}
	if fm.Spawned() != 1 {
		t.Errorf("Spawned() = %d, want 1", fm.Spawned())
	}
}

func TestSpawnStaysInGrid(t *testing.T) {
	grid := types.Grid{Width: 7, Height: 3}
	fm := NewFoodManager(grid, NewSource(42), '*', render.NewRenderer(render.NewRecorder(), grid, render.DefaultPalette(), types.Point{}))

	food := fm.Initial()
	for i := 0; i < 500; i++ {
		food = fm.Spawn(food)
		if !grid.Contains(food.Pos) {
			t.Fatalf("spawn %d landed outside grid: %v", i, food.Pos)
		}
	}
}

func TestSpawnSeedsLazily(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	fm := NewFoodManager(grid, nil, '#', render.NewRenderer(render.NewRecorder(), grid, render.DefaultPalette(), types.Point{}))

	food := fm.Spawn(fm.Initial())
	if !grid.Contains(food.Pos) || food.Glyph != '#' {
		t.Errorf("Spawn() = %+v", food)
	}
}

func TestCollisionManager(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 5})

	if got := cm.NextHead(types.Point{X: 9, Y: 2}, types.Point{X: 1}); got != (types.Point{X: 9, Y: 2}) {
		t.Errorf("NextHead at right wall = %v", got)
	}
	if got := cm.NextHead(types.Point{X: 3, Y: 0}, types.Point{Y: -1}); got != (types.Point{X: 3, Y: 0}) {
		t.Errorf("NextHead at top wall = %v", got)
	}
	if got := cm.NextHead(types.Point{X: 3, Y: 3}, types.Point{Y: 1}); got != (types.Point{X: 3, Y: 4}) {
		t.Errorf("NextHead = %v, want {3 4}", got)
	}
	if !cm.Blocked(types.Point{X: 9, Y: 2}, types.Point{X: 1}) {
		t.Error("Blocked at right wall = false")
	}
	if cm.Blocked(types.Point{X: 9, Y: 2}, types.Point{}) {
		t.Error("Blocked at rest = true")
	}
	if !cm.IsFoodCollision(types.Point{X: 1, Y: 1}, types.Point{X: 1, Y: 1}) {
		t.Error("IsFoodCollision on same cell = false")
	}
	if !cm.IsWallCollision(types.Point{X: -1}) {
		t.Error("IsWallCollision(-1,0) = false")
	}
}

func TestStateManagerRecordsConsumes(t *testing.T) {
	var got []ConsumeEvent
	sm := NewStateManager(sinkFunc(func(ev ConsumeEvent) { got = append(got, ev) }))

	sm.AdvanceTick()
	sm.AdvanceTick()
	sm.RecordConsume(ConsumeEvent{Segments: 2})
	sm.AdvanceTick()
	sm.RecordConsume(ConsumeEvent{Segments: 2, Saturated: true})

	if sm.GetScore() != 2 || sm.GetTicks() != 3 || sm.GetDropped() != 1 {
		t.Errorf("score %d ticks %d dropped %d", sm.GetScore(), sm.GetTicks(), sm.GetDropped())
	}
	if len(got) != 2 || got[0].Tick != 2 || got[0].Score != 1 || got[1].Tick != 3 || got[1].Score != 2 {
		t.Errorf("events = %+v", got)
	}
}

func TestStateManagerNilSink(t *testing.T) {
	sm := NewStateManager(nil)
	if sm.RecordConsume(ConsumeEvent{}) != 1 {
		t.Error("RecordConsume without a sink should still score")
	}
}

type countingSink struct{ n int }

func (c *countingSink) Consumed(ConsumeEvent) { c.n++ }

func TestSinksFanOut(t *testing.T) {
	a, b := &countingSink{}, &countingSink{}
	sm := NewStateManager(Sinks{a, nil, b})
	sm.RecordConsume(ConsumeEvent{Segments: 2})
	sm.RecordConsume(ConsumeEvent{Segments: 2, Saturated: true})
	if a.n != 2 || b.n != 2 {
		t.Errorf("sinks got %d and %d events, want 2 each", a.n, b.n)
	}
}
