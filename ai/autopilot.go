package ai

import (
	"glyph-snake/game"
	"glyph-snake/game/types"
)

type State struct {
	RelativeFoodDir [2]int      // Food direction relative to head (x, y)
	FoodDistance    int         // Manhattan distance to food
	Velocity        types.Point // Current per-axis velocity
	Head            types.Point
	Grid            types.Grid
}

// NewState creates a state from the head, food and velocity
func NewState(head, food, velocity types.Point, grid types.Grid) State {
	return State{
		RelativeFoodDir: [2]int{sign(food.X - head.X), sign(food.Y - head.Y)},
		FoodDistance:    abs(food.X-head.X) + abs(food.Y-head.Y),
		Velocity:        velocity,
		Head:            head,
		Grid:            grid,
	}
}

// Observe reads the state of a running game
func Observe(g *game.Game) State {
	s := g.GetSnake()
	return NewState(s.Head(), g.GetFood().Pos, s.Velocity(), g.Grid)
}

type Action int

const (
	Up Action = iota
	Right
	Down
	Left
)

// Key converts an action into the arrow key that requests it
func (a Action) Key() types.KeyEvent {
	switch a {
	case Up:
		return types.RawKey(types.ArrowUp)
	case Right:
		return types.RawKey(types.ArrowRight)
	case Down:
		return types.RawKey(types.ArrowDown)
	default:
		return types.RawKey(types.ArrowLeft)
	}
}

// Autopilot steers toward the food. It only ever asks for a turn onto the
// idle axis, so every action it returns is accepted by the axis lock.
type Autopilot struct {
	Turns int
}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// GetAction returns the next turn, or false to keep going straight
func (a *Autopilot) GetAction(s State) (Action, bool) {
	fx, fy := s.RelativeFoodDir[0], s.RelativeFoodDir[1]
	v := s.Velocity

	var action Action
	switch {
	case v.X == 0 && v.Y == 0:
		if fx == 0 && fy == 0 {
			return Up, false
		}
		if fx != 0 {
			action = horizontal(fx)
		} else {
			action = vertical(fy)
		}
	case v.X != 0:
		if fx == v.X {
			return Up, false
		}
		action = vertical(a.pick(fy, s.Head.Y, s.Grid.Height))
	default:
		if fy == v.Y {
			return Up, false
		}
		action = horizontal(a.pick(fx, s.Head.X, s.Grid.Width))
	}

	a.Turns++
	return action, true
}

// Next is GetAction expressed as a key event
func (a *Autopilot) Next(s State) (types.KeyEvent, bool) {
	action, ok := a.GetAction(s)
	if !ok {
		return types.KeyEvent{}, false
	}
	return action.Key(), true
}

// pick returns want, or when the food is level on that axis, the direction
// that has room to move
func (a *Autopilot) pick(want, pos, bound int) int {
	if want != 0 {
		return want
	}
	if pos < bound-1 {
		return 1
	}
	return -1
}

func horizontal(d int) Action {
	if d < 0 {
		return Left
	}
	return Right
}

func vertical(d int) Action {
	if d < 0 {
		return Up
	}
	return Down
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
