package models

import "time"

type SessionStatus string

const (
	SessionWaiting  SessionStatus = "waiting"
	SessionPlaying  SessionStatus = "playing"
	SessionFinished SessionStatus = "finished"
)

// GameSession is one scheduled bingo round. Status moves one way:
// waiting -> playing -> finished.
type GameSession struct {
	ID      string            `json:"id" redis:"id"`
	Config  GameConfig        `json:"config" redis:"config"`
	Players []Player          `json:"players" redis:"players"`
	Prizes  PrizeDistribution `json:"prizes" redis:"prizes"`
	Status  SessionStatus     `json:"status" redis:"status"`

	CreatedAt time.Time `json:"created_at" redis:"created_at"`
	StartedAt time.Time `json:"started_at,omitempty" redis:"started_at"`
	EndedAt   time.Time `json:"ended_at,omitempty" redis:"ended_at"`
}

// RealPlayerCount counts non-synthetic participants.
func (s *GameSession) RealPlayerCount() int {
	count := 0
	for _, p := range s.Players {
		if !p.IsBot {
			count++
		}
	}
	return count
}
