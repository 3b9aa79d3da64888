package models

import "time"

// DailyRevenue aggregates sessions started on one local calendar day.
type DailyRevenue struct {
	Date            string  `json:"date"`
	SessionCount    int     `json:"session_count"`
	TotalRevenue    float64 `json:"total_revenue"`
	PlatformRevenue float64 `json:"platform_revenue"`
	TotalPayouts    float64 `json:"total_payouts"`
	NetProfit       float64 `json:"net_profit"`
}

// PlayerStats splits participation between real players and bots.
type PlayerStats struct {
	TotalPlayers    int       `json:"total_players"`
	RealPlayers     int       `json:"real_players"`
	BotPlayers      int       `json:"bot_players"`
	TotalPrizesPaid float64   `json:"total_prizes_paid"`
	AveragePrize    float64   `json:"average_prize"`
	GeneratedAt     time.Time `json:"generated_at"`
}
