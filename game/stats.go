package game

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"gosnake/game/types"
)

// RoundRecord holds the data of a single finished round.
type RoundRecord struct {
	RoundID   string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Cause     types.CollisionType
}

// Duration returns the length of the round in seconds.
func (r RoundRecord) Duration() float64 {
	return r.EndTime.Sub(r.StartTime).Seconds()
}

// SessionStats collects the rounds played during this process and provides
// aggregates over them. Kept in memory only.
type SessionStats struct {
	ID     string
	rounds []RoundRecord
	mutex  sync.RWMutex
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		ID:     uuid.New().String(),
		rounds: make([]RoundRecord, 0),
	}
}

// AddRound records a finished round.
func (s *SessionStats) AddRound(rec RoundRecord) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.rounds = append(s.rounds, rec)
}

// Rounds returns a copy of the recorded rounds in play order.
func (s *SessionStats) Rounds() []RoundRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]RoundRecord, len(s.rounds))
	copy(out, s.rounds)
	return out
}

// GamesPlayed returns the number of rounds recorded so far.
func (s *SessionStats) GamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.rounds)
}

// AverageScore returns the mean score across all recorded rounds.
func (s *SessionStats) AverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.rounds) == 0 {
		return 0
	}

	var total float64
	for _, r := range s.rounds {
		total += float64(r.Score)
	}
	return total / float64(len(s.rounds))
}

// MaxScore returns the highest score recorded this session.
func (s *SessionStats) MaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	maxScore := 0
	for _, r := range s.rounds {
		if r.Score > maxScore {
			maxScore = r.Score
		}
	}
	return maxScore
}

// AverageDuration returns the mean round duration in seconds.
func (s *SessionStats) AverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.rounds) == 0 {
		return 0
	}

	var total float64
	for _, r := range s.rounds {
		total += r.Duration()
	}
	return total / float64(len(s.rounds))
}
