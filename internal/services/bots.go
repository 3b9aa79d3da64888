package services

import (
	"fmt"
	"math/rand"
	"time"

	"bingo-arena-backend/internal/models"
)

// BotPlayerGenerator fills session rosters with synthetic players when real
// signups fall short of a config's minimum.
type BotPlayerGenerator struct {
	rng *rand.Rand
}

func NewBotPlayerGenerator() *BotPlayerGenerator {
	return NewBotPlayerGeneratorWithSeed(time.Now().UnixNano())
}

func NewBotPlayerGeneratorWithSeed(seed int64) *BotPlayerGenerator {
	return &BotPlayerGenerator{rng: rand.New(rand.NewSource(seed))}
}

var (
	botAdjectives = []string{
		"Lucky", "Swift", "Clever", "Bold", "Dapper",
		"Sneaky", "Mighty", "Jolly", "Fierce", "Quiet",
	}
	botNouns = []string{
		"Dauber", "Caller", "Shark", "Fox", "Badger",
		"Raven", "Otter", "Lynx", "Marble", "Token",
	}
)

// GenerateBotPlayers produces count synthetic players carrying the config's
// entry fee. Generated names are not deduplicated; collisions are accepted.
func (g *BotPlayerGenerator) GenerateBotPlayers(count int, cfg models.GameConfig) []models.Player {
	if count <= 0 {
		return []models.Player{}
	}

	players := make([]models.Player, 0, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("%s%s%d",
			botAdjectives[g.rng.Intn(len(botAdjectives))],
			botNouns[g.rng.Intn(len(botNouns))],
			g.rng.Intn(1000))

		players = append(players, models.Player{
			ID:           models.GeneratePlayerID(),
			Name:         name,
			IsBot:        true,
			EntryFeePaid: cfg.EntryFee,
		})
	}

	return players
}
