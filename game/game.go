package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"gosnake/game/entity"
	"gosnake/game/manager"
	"gosnake/game/types"
)

// Game owns the snake, the apple and the round state. The snake and apple
// are recreated on restart; the Game value lives for the whole process.
type Game struct {
	Grid  types.Grid
	Steps int
	Stats *SessionStats

	snake         *entity.Snake
	apple         *entity.Apple
	running       bool
	roundID       string
	startTime     time.Time
	lastMove      time.Time
	initialDelay  time.Duration
	lastCollision types.CollisionType
	collisionMgr  *manager.CollisionManager
	stateMgr      *manager.StateManager
}

func NewGame(width, height int, moveDelay time.Duration) *Game {
	grid := types.Grid{
		Width:  width,
		Height: height,
	}

	g := &Game{
		Grid:         grid,
		Stats:        NewSessionStats(),
		initialDelay: moveDelay,
		collisionMgr: manager.NewCollisionManager(grid),
		stateMgr:     manager.NewStateManager(),
	}
	g.startRound(time.Now())

	return g
}

// startRound creates a fresh snake and apple and arms the tick clock.
func (g *Game) startRound(now time.Time) {
	g.snake = nil // Previous round's body no longer occupies the grid
	g.snake = entity.NewSnake(g.randomFreeCell(), g.initialDelay)
	g.apple = entity.NewApple(g.Grid, g.snake)
	g.roundID = uuid.New().String()
	g.startTime = now
	g.lastMove = now
	g.Steps = 0
	g.lastCollision = types.NoCollision
	g.running = true
}

// randomFreeCell picks a random spawn cell not covered by the snake.
func (g *Game) randomFreeCell() types.Point {
	for {
		pos := types.Point{
			X: rand.Intn(g.Grid.Width),
			Y: rand.Intn(g.Grid.Height),
		}
		if g.collisionMgr.ValidateSpawnPosition(pos, g.snake) {
			return pos
		}
	}
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetApple() *entity.Apple {
	return g.apple
}

func (g *Game) Running() bool {
	return g.running
}

func (g *Game) RoundID() string {
	return g.roundID
}

// LastCollision reports what ended the previous round.
func (g *Game) LastCollision() types.CollisionType {
	return g.lastCollision
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

func (g *Game) ScoreHistory() []int {
	return g.stateMgr.GetScoreHistory()
}

// ElapsedTime returns the current round duration in seconds.
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.startTime).Seconds()
}

// SetDirection forwards a direction change to the snake.
func (g *Game) SetDirection(dir types.Direction) {
	if !g.running {
		return
	}
	g.snake.SetDirection(dir)
}

// IncreaseSpeed manually reduces the snake's move delay, same as eating an
// apple does.
func (g *Game) IncreaseSpeed() {
	if !g.running {
		return
	}
	g.snake.IncreaseSpeed()
}

// Tick advances the game if the snake's move delay has elapsed since the
// last step. Call once per frame.
func (g *Game) Tick(now time.Time) {
	if !g.running {
		return
	}
	if now.Sub(g.lastMove) < g.snake.MoveDelay {
		return
	}
	g.lastMove = now
	g.step(now)
}

// step advances the snake one cell and resolves the result.
func (g *Game) step(now time.Time) {
	g.snake.Step()
	g.Steps++

	if cause := g.collisionMgr.Classify(g.snake); cause != types.NoCollision {
		g.endRound(cause, now)
		return
	}

	if g.collisionMgr.IsAppleCollision(g.snake, g.apple) {
		g.snake.Grow()
		g.snake.IncreaseSpeed()
		g.apple.Respawn(g.Grid, g.snake)
	}
}

// End finishes the round without a collision, as when the player presses
// Escape.
func (g *Game) End(now time.Time) {
	if !g.running {
		return
	}
	g.endRound(types.NoCollision, now)
}

func (g *Game) endRound(cause types.CollisionType, now time.Time) {
	g.running = false
	g.lastCollision = cause

	score := g.snake.Score()
	g.stateMgr.RecordScore(score)
	g.Stats.AddRound(RoundRecord{
		RoundID:   g.roundID,
		StartTime: g.startTime,
		EndTime:   now,
		Score:     score,
		Cause:     cause,
	})
}

// Restart begins a new round, keeping the session statistics.
func (g *Game) Restart(now time.Time) {
	if g.running {
		return
	}
	g.startRound(now)
}
