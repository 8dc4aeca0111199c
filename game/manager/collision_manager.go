package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionType represents the result of checking a move target
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
)

func (c CollisionType) String() string {
	if c == SelfCollision {
		return "self"
	}
	return "none"
}

// CollisionManager resolves self-collisions with a single grace tick
type CollisionManager struct {
	// graceUsed is set once a collision has been spared and cleared by the
	// next successful move
	graceUsed bool
}

// NewCollisionManager starts with the grace already consumed, so a collision
// before the first successful move is fatal.
func NewCollisionManager() *CollisionManager {
	return &CollisionManager{graceUsed: true}
}

// CheckCollision reports whether pos is occupied by the snake. Since
// neighbors are clamped, a blocked move targets the head itself and counts.
func (cm *CollisionManager) CheckCollision(pos types.Cell, snake *entity.Snake) CollisionType {
	if snake.Contains(pos) {
		return SelfCollision
	}
	return NoCollision
}

// HandleCollision consumes the grace tick. It returns true when the snake is
// dead, false when it was spared this time.
func (cm *CollisionManager) HandleCollision() bool {
	if cm.graceUsed {
		return true
	}
	cm.graceUsed = true
	return false
}

// ClearGrace re-arms the grace tick after a successful move
func (cm *CollisionManager) ClearGrace() {
	cm.graceUsed = false
}

func (cm *CollisionManager) GraceUsed() bool {
	return cm.graceUsed
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Cell, food types.Cell) bool {
	return pos == food
}
