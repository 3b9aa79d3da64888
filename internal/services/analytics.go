package services

import (
	"github.com/coder/quartz"

	"bingo-arena-backend/internal/models"
)

// RevenueAnalytics is the read-only reporting side. It never mutates sessions
// or the ledger; empty input yields all-zero reports.
type RevenueAnalytics struct {
	clock quartz.Clock
}

func NewRevenueAnalytics(clock quartz.Clock) *RevenueAnalytics {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &RevenueAnalytics{clock: clock}
}

// CalculateDailyRevenue aggregates sessions started on the current local
// calendar day.
func (a *RevenueAnalytics) CalculateDailyRevenue(sessions []*models.GameSession) models.DailyRevenue {
	now := a.clock.Now().Local()
	report := models.DailyRevenue{Date: now.Format("2006-01-02")}

	for _, s := range sessions {
		if s.StartedAt.IsZero() {
			continue
		}
		started := s.StartedAt.Local()
		if started.Year() != now.Year() || started.YearDay() != now.YearDay() {
			continue
		}

		report.SessionCount++
		report.TotalRevenue += s.Prizes.TotalEntryFees
		report.PlatformRevenue += s.Prizes.PlatformCut
		report.TotalPayouts += s.Prizes.PayoutPool
	}

	report.NetProfit = report.TotalRevenue - report.TotalPayouts
	return report
}

// CalculatePlayerStats splits participation between real and synthetic
// players across the given sessions.
func (a *RevenueAnalytics) CalculatePlayerStats(sessions []*models.GameSession) models.PlayerStats {
	stats := models.PlayerStats{GeneratedAt: a.clock.Now()}

	prizeWinners := 0
	for _, s := range sessions {
		for _, p := range s.Players {
			stats.TotalPlayers++
			if p.IsBot {
				stats.BotPlayers++
			} else {
				stats.RealPlayers++
			}
			if p.Prize > 0 {
				stats.TotalPrizesPaid += p.Prize
				prizeWinners++
			}
		}
	}

	if prizeWinners > 0 {
		stats.AveragePrize = stats.TotalPrizesPaid / float64(prizeWinners)
	}
	return stats
}
