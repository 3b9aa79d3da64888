package services

import (
	"fmt"
	"time"

	"bingo-arena-backend/internal/models"
)

var ErrConfigNotFound = fmt.Errorf("game config not found")

// ConfigRegistry is the static catalog of playable game types.
type ConfigRegistry struct {
	configs map[string]models.GameConfig
	order   []string
}

func NewConfigRegistry() *ConfigRegistry {
	r := &ConfigRegistry{
		configs: make(map[string]models.GameConfig),
	}
	for _, cfg := range seedConfigs {
		r.configs[cfg.ID] = cfg
		r.order = append(r.order, cfg.ID)
	}
	return r
}

func (r *ConfigRegistry) Get(id string) (models.GameConfig, error) {
	cfg, ok := r.configs[id]
	if !ok {
		return models.GameConfig{}, fmt.Errorf("%w: %s", ErrConfigNotFound, id)
	}
	return cfg, nil
}

func (r *ConfigRegistry) List() []models.GameConfig {
	configs := make([]models.GameConfig, 0, len(r.order))
	for _, id := range r.order {
		configs = append(configs, r.configs[id])
	}
	return configs
}

var seedConfigs = []models.GameConfig{
	{
		ID:         "speed-bingo",
		Name:       "Speed Bingo",
		EntryFee:   5,
		MinPlayers: 3,
		MaxPlayers: 20,
		Category:   models.GameCategorySpeed,
		Duration:   5 * time.Minute,
	},
	{
		ID:         "classic-bingo",
		Name:       "Classic Bingo",
		EntryFee:   10,
		MinPlayers: 5,
		MaxPlayers: 50,
		Category:   models.GameCategoryClassic,
		Duration:   15 * time.Minute,
	},
	{
		ID:         "high-stakes-arena",
		Name:       "High Stakes Arena",
		EntryFee:   50,
		MinPlayers: 5,
		MaxPlayers: 30,
		Category:   models.GameCategoryArena,
		Duration:   20 * time.Minute,
	},
	{
		ID:         "daily-tournament",
		Name:       "Daily Tournament",
		EntryFee:   20,
		MinPlayers: 10,
		MaxPlayers: 100,
		Category:   models.GameCategoryTournament,
		Duration:   30 * time.Minute,
	},
	{
		ID:         "weekly-championship",
		Name:       "Weekly Championship",
		EntryFee:   100,
		MinPlayers: 25,
		MaxPlayers: 500,
		Category:   models.GameCategoryChampionship,
		Duration:   60 * time.Minute,
	},
}
