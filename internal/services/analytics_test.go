package services_test

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"

	"bingo-arena-backend/internal/models"
	"bingo-arena-backend/internal/services"
)

func TestCalculateDailyRevenueFiltersByDay(t *testing.T) {
	clock := quartz.NewMock(t)
	analytics := services.NewRevenueAnalytics(clock)
	today := clock.Now()

	sessions := []*models.GameSession{
		{
			StartedAt: today,
			Prizes:    models.PrizeDistribution{TotalEntryFees: 100, PlatformCut: 10, PayoutPool: 90},
		},
		{
			StartedAt: today.Add(2 * time.Hour),
			Prizes:    models.PrizeDistribution{TotalEntryFees: 50, PlatformCut: 5, PayoutPool: 45},
		},
		{
			StartedAt: today.AddDate(0, 0, -1),
			Prizes:    models.PrizeDistribution{TotalEntryFees: 999, PlatformCut: 99.9, PayoutPool: 899.1},
		},
		{
			// Never started: excluded.
			Prizes: models.PrizeDistribution{TotalEntryFees: 30},
		},
	}

	report := analytics.CalculateDailyRevenue(sessions)

	assert.Equal(t, 2, report.SessionCount)
	assert.InDelta(t, 150, report.TotalRevenue, 1e-9)
	assert.InDelta(t, 15, report.PlatformRevenue, 1e-9)
	assert.InDelta(t, 135, report.TotalPayouts, 1e-9)
	assert.InDelta(t, 15, report.NetProfit, 1e-9)
	assert.Equal(t, today.Local().Format("2006-01-02"), report.Date)
}

func TestCalculateDailyRevenueEmptyInput(t *testing.T) {
	analytics := services.NewRevenueAnalytics(quartz.NewMock(t))

	report := analytics.CalculateDailyRevenue(nil)
	assert.Zero(t, report.SessionCount)
	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.NetProfit)
}

func TestCalculatePlayerStats(t *testing.T) {
	analytics := services.NewRevenueAnalytics(quartz.NewMock(t))

	sessions := []*models.GameSession{
		{
			Players: []models.Player{
				{ID: "r1", Prize: 60},
				{ID: "b1", IsBot: true, Prize: 25},
				{ID: "r2", Prize: 0},
			},
		},
		{
			Players: []models.Player{
				{ID: "b2", IsBot: true},
				{ID: "r3", Prize: 15},
			},
		},
	}

	stats := analytics.CalculatePlayerStats(sessions)

	assert.Equal(t, 5, stats.TotalPlayers)
	assert.Equal(t, 3, stats.RealPlayers)
	assert.Equal(t, 2, stats.BotPlayers)
	assert.InDelta(t, 100, stats.TotalPrizesPaid, 1e-9)
	assert.InDelta(t, 100.0/3, stats.AveragePrize, 1e-9)
}

func TestCalculatePlayerStatsEmptyInput(t *testing.T) {
	analytics := services.NewRevenueAnalytics(quartz.NewMock(t))

	stats := analytics.CalculatePlayerStats(nil)
	assert.Zero(t, stats.TotalPlayers)
	assert.Zero(t, stats.AveragePrize)
}
