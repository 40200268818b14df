package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"gosnake/game"
	"gosnake/game/types"
	"gosnake/ui"
)

func main() {
	delay := flag.Int("delay", int(types.InitialMoveDelay/time.Millisecond),
		"Initial move delay in milliseconds (lower = faster)")
	flag.Parse()

	rand.Seed(uint64(time.Now().UnixNano()))

	rl.SetConfigFlags(rl.FlagWindowUndecorated)
	rl.InitWindow(types.ScreenWidth, types.ScreenHeight, "Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	// Escape is handled by the game, not raylib's default exit key
	rl.SetExitKey(rl.KeyNull)

	g := game.NewGame(
		types.ScreenWidth/types.CellSize,
		types.ScreenHeight/types.CellSize,
		time.Duration(*delay)*time.Millisecond,
	)
	log.Printf("session %s: grid %dx%d, initial move delay %dms",
		g.Stats.ID, g.Grid.Width, g.Grid.Height, *delay)

	renderer := ui.NewRenderer()

	for !rl.WindowShouldClose() {
		if g.Running() {
			handleInput(g)
			g.Tick(time.Now())
		} else {
			// Game over screen: Escape restarts, Q quits
			if rl.IsKeyPressed(rl.KeyEscape) {
				g.Restart(time.Now())
			}
			if rl.IsKeyPressed(rl.KeyQ) {
				break
			}
		}

		renderer.Draw(g)
	}

	log.Printf("session %s over: %d games, max score %d, avg score %.1f",
		g.Stats.ID, g.Stats.GamesPlayed(), g.Stats.MaxScore(), g.Stats.AverageScore())
}

// handleInput maps key presses to game actions for the running round.
func handleInput(g *game.Game) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		g.SetDirection(types.UP)
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		g.SetDirection(types.DOWN)
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		g.SetDirection(types.LEFT)
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		g.SetDirection(types.RIGHT)
	}

	if rl.IsKeyPressed(rl.KeyZ) {
		g.IncreaseSpeed()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		g.End(time.Now())
	}
}
