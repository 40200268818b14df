package entity

import (
	"testing"

	"gosnake/game/types"
)

func TestNewAppleAvoidsSnake(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	s := NewSnake(types.Point{X: 0, Y: 0}, types.InitialMoveDelay)
	s.Body = []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	// Only one free cell remains, the apple must land there
	a := NewApple(grid, s)
	if a.Position != (types.Point{X: 1, Y: 1}) {
		t.Errorf("Expected apple at {1 1}, got %v", a.Position)
	}
}

func TestRespawnAvoidsPreviousPosition(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	s := NewSnake(types.Point{X: 0, Y: 0}, types.InitialMoveDelay)
	s.Body = []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}

	a := &Apple{Position: types.Point{X: 0, Y: 1}}
	a.Respawn(grid, s)

	// Two cells are free but one of them is the previous apple position
	if a.Position != (types.Point{X: 1, Y: 1}) {
		t.Errorf("Expected apple at {1 1}, got %v", a.Position)
	}
}

func TestRespawnNeverLandsOnBody(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	s := NewSnake(types.Point{X: 2, Y: 2}, types.InitialMoveDelay)
	s.Body = []types.Point{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4}, {X: 1, Y: 4}}

	a := NewApple(grid, s)
	for i := 0; i < 50; i++ {
		previous := a.Position
		a.Respawn(grid, s)
		if s.Contains(a.Position) {
			t.Fatalf("Apple respawned on the snake at %v", a.Position)
		}
		if a.Position == previous {
			t.Fatalf("Apple respawned on its previous position %v", previous)
		}
		if !grid.Contains(a.Position) {
			t.Fatalf("Apple respawned out of bounds at %v", a.Position)
		}
	}
}
