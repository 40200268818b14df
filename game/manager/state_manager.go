package manager

// StateManager tracks the session high score and the score of every round
// played so far. Nothing is written to disk; the state lives for the
// process only.
type StateManager struct {
	highScore    int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		highScore:    0,
		scoreHistory: make([]int, 0),
	}
}

// RecordScore appends a finished round's score to the history and updates
// the high score.
func (sm *StateManager) RecordScore(score int) {
	sm.scoreHistory = append(sm.scoreHistory, score)
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	return sm.scoreHistory
}
