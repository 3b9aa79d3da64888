package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateSessionID() string {
	return fmt.Sprintf("game_%s_%d",
		time.Now().Format("20060102"),
		uuid.New().ID())
}

func GenerateTransactionID() string {
	return fmt.Sprintf("tx_%s_%d",
		time.Now().Format("20060102"),
		uuid.New().ID())
}

func GeneratePlayerID() string {
	return fmt.Sprintf("player_%d", uuid.New().ID())
}

func FormatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func (r *CreateSessionRequest) Validate() error {
	if r.GameConfigID == "" {
		return fmt.Errorf("game_config_id is required")
	}
	for i, p := range r.Players {
		if p.ID == "" {
			return fmt.Errorf("players[%d]: id is required", i)
		}
		if p.Name == "" {
			return fmt.Errorf("players[%d]: name is required", i)
		}
	}
	return nil
}
