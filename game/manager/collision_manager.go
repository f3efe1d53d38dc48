package manager

import (
	"glyph-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// NextHead computes the head position after one step. Axes that would leave
// the grid keep their current coordinate.
func (cm *CollisionManager) NextHead(head, velocity types.Point) types.Point {
	return cm.grid.Step(head, velocity)
}

// IsWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// Blocked reports whether a moving head is pinned against a wall
func (cm *CollisionManager) Blocked(head, velocity types.Point) bool {
	if velocity == (types.Point{}) {
		return false
	}
	return cm.IsWallCollision(types.Point{X: head.X + velocity.X, Y: head.Y + velocity.Y})
}
