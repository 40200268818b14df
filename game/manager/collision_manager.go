package manager

import (
	"gosnake/game/entity"
	"gosnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Classify checks the snake's head position against the walls and its own
// body and returns the resulting collision type.
func (cm *CollisionManager) Classify(snake *entity.Snake) types.CollisionType {
	head := snake.Head()

	if cm.isWallCollision(head) {
		return types.WallCollision
	}

	// Check self collision, skipping the head itself
	for _, part := range snake.Body[1:] {
		if head == part {
			return types.SelfCollision
		}
	}

	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsAppleCollision checks if the snake's head has reached the apple
func (cm *CollisionManager) IsAppleCollision(snake *entity.Snake, apple *entity.Apple) bool {
	return snake.Head() == apple.Position
}

// ValidateSpawnPosition checks if a position is valid for placing a new
// snake or apple.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	if snake != nil && snake.Contains(pos) {
		return false
	}
	return true
}
