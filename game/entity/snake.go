package entity

import (
	"time"

	"gosnake/game/types"
)

// Snake is the player-controlled body. Body is ordered head first; on every
// step each trailing segment takes the cell its predecessor just left.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	MoveDelay time.Duration
	pending   types.Direction
}

func NewSnake(startPos types.Point, moveDelay time.Duration) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.RIGHT, // Start moving right
		MoveDelay: moveDelay,
	}
}

// Step advances the snake one cell. The pending direction change, if any, is
// applied first, then the head moves and the tail follows.
func (s *Snake) Step() {
	if s.pending != types.NONE {
		s.Direction = s.pending
		s.pending = types.NONE
	}

	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = s.Body[0].Add(s.Direction.ToPoint())
}

// Grow appends a new tail segment one cell behind the current tail, opposite
// the direction of travel.
func (s *Snake) Grow() {
	tail := s.Body[len(s.Body)-1]
	s.Body = append(s.Body, tail.Add(s.Direction.Opposite().ToPoint()))
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// SetDirection buffers dir to be applied on the next step. Reversals are
// rejected against the direction the snake last moved in, so two quick
// presses inside one move delay cannot turn the snake back through itself.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.NONE || dir == s.Direction.Opposite() {
		return
	}
	s.pending = dir
}

// IncreaseSpeed reduces the movement delay by one step, floored at the
// minimum delay.
func (s *Snake) IncreaseSpeed() {
	s.MoveDelay -= types.MoveDelayStep
	if s.MoveDelay < types.MinMoveDelay {
		s.MoveDelay = types.MinMoveDelay
	}
}

// Score is the number of segments composing the snake.
func (s *Snake) Score() int {
	return len(s.Body)
}

// Contains reports whether any segment occupies p.
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if p == part {
			return true
		}
	}
	return false
}
