package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gosnake/game"
	"gosnake/game/types"
)

const borderPadding = 10 // Padding around game area

var (
	bodyColor = rl.Color{R: 0, G: 180, B: 80, A: 255}
	headColor = rl.Color{R: 80, G: 230, B: 120, A: 255}
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := int32(r.screenHeight / 25)

	// Calculate available space for grid after border padding and the
	// stats row at the bottom
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding*3 + fontSize)

	// Calculate cell size based on available space and grid dimensions
	cellW := availableWidth / int32(g.Grid.Width)
	cellH := availableHeight / int32(g.Grid.Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(g.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(g.Grid.Height)

	// Position grid at the top with padding
	r.offsetX = borderPadding
	r.offsetY = borderPadding

	// Draw grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	r.drawSnake(g)
	r.drawApple(g)
	r.drawStatsRow(g, fontSize)

	if !g.Running() {
		r.drawGameOver(g)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawSnake(g *game.Game) {
	snake := g.GetSnake()

	for i, p := range snake.Body {
		color := bodyColor
		if i == 0 { // Head
			color = headColor
		}
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*r.cellSize,
			r.offsetY+int32(p.Y)*r.cellSize,
			r.cellSize, r.cellSize, color)
	}

	r.drawHeadMarker(snake.Head(), snake.Direction)

	// Score in the top-left corner of the grid
	rl.DrawText(fmt.Sprintf("%d", snake.Score()),
		r.offsetX+10, r.offsetY+10, int32(r.screenHeight/25), rl.White)
}

// drawHeadMarker draws a triangle on the head pointing in the direction of
// travel.
func (r *Renderer) drawHeadMarker(head types.Point, dir types.Direction) {
	headX := r.offsetX + int32(head.X)*r.cellSize
	headY := r.offsetY + int32(head.Y)*r.cellSize
	halfCell := r.cellSize / 2

	switch dir {
	case types.RIGHT:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case types.LEFT:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case types.DOWN:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	case types.UP:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawApple(g *game.Game) {
	apple := g.GetApple()
	rl.DrawRectangle(
		r.offsetX+int32(apple.Position.X)*r.cellSize,
		r.offsetY+int32(apple.Position.Y)*r.cellSize,
		r.cellSize, r.cellSize, rl.Red)
}

func (r *Renderer) drawStatsRow(g *game.Game, fontSize int32) {
	yOffset := r.offsetY + r.totalGridHeight + borderPadding
	xOffset := r.offsetX + 10
	spacing := int32(180) // Fixed spacing between stats

	rl.DrawText(fmt.Sprintf("High: %d", g.HighScore()), xOffset, yOffset, fontSize, rl.White)
	xOffset += spacing

	rl.DrawText(fmt.Sprintf("Games: %d", g.Stats.GamesPlayed()), xOffset, yOffset, fontSize, rl.White)
	xOffset += spacing

	rl.DrawText(fmt.Sprintf("Avg: %.1f", g.Stats.AverageScore()), xOffset, yOffset, fontSize, rl.Green)
	xOffset += spacing

	rl.DrawText(fmt.Sprintf("Avg Duration: %.1fs", g.Stats.AverageDuration()), xOffset, yOffset, fontSize, rl.Purple)
}

func (r *Renderer) drawGameOver(g *game.Game) {
	// Dim the playfield
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Color{R: 0, G: 0, B: 0, A: 180})

	titleSize := int32(r.screenHeight / 10)
	textSize := int32(r.screenHeight / 30)

	title := "GAME OVER"
	titleWidth := rl.MeasureText(title, titleSize)
	rl.DrawText(title, (r.screenWidth-titleWidth)/2, r.screenHeight/2-titleSize, titleSize, rl.White)

	score := fmt.Sprintf("Score: %d   High: %d", g.GetSnake().Score(), g.HighScore())
	if cause := g.LastCollision(); cause != types.NoCollision {
		score = fmt.Sprintf("%s   (%s)", score, cause)
	}
	scoreWidth := rl.MeasureText(score, textSize)
	rl.DrawText(score, (r.screenWidth-scoreWidth)/2, r.screenHeight/2+textSize, textSize, rl.Gray)

	hint := "ESC - restart   Q - quit"
	hintWidth := rl.MeasureText(hint, textSize)
	rl.DrawText(hint, (r.screenWidth-hintWidth)/2, r.screenHeight/2+textSize*3, textSize, rl.Gray)
}
