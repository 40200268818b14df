package entity

import (
	"golang.org/x/exp/rand"

	"gosnake/game/types"
)

// Apple occupies one grid cell the snake grows from eating.
type Apple struct {
	Position types.Point
}

// NewApple places an apple on a random cell not covered by the snake.
func NewApple(grid types.Grid, snake *Snake) *Apple {
	a := &Apple{Position: types.Point{X: -1, Y: -1}}
	a.Respawn(grid, snake)
	return a
}

// Respawn resamples random grid cells until one avoids every snake segment
// and the apple's own previous position.
func (a *Apple) Respawn(grid types.Grid, snake *Snake) {
	previous := a.Position
	for {
		pos := types.Point{
			X: rand.Intn(grid.Width),
			Y: rand.Intn(grid.Height),
		}
		if pos == previous || snake.Contains(pos) {
			continue
		}
		a.Position = pos
		return
	}
}
