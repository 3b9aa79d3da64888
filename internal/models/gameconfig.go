package models

import "time"

type GameCategory string

const (
	GameCategorySpeed        GameCategory = "speed"
	GameCategoryClassic      GameCategory = "classic"
	GameCategoryArena        GameCategory = "arena"
	GameCategoryTournament   GameCategory = "tournament"
	GameCategoryChampionship GameCategory = "championship"
)

// GameConfig is an immutable catalog entry describing one bingo game type.
type GameConfig struct {
	ID         string        `json:"id" redis:"id"`
	Name       string        `json:"name" redis:"name"`
	EntryFee   float64       `json:"entry_fee" redis:"entry_fee"`
	MinPlayers int           `json:"min_players" redis:"min_players"`
	MaxPlayers int           `json:"max_players" redis:"max_players"`
	Category   GameCategory  `json:"category" redis:"category"`
	Duration   time.Duration `json:"duration" redis:"duration"`
}
