package services

import "bingo-arena-backend/internal/models"

// Broadcaster pushes advisory events to connected dashboards. Reporting data
// itself is pulled; these events only nudge observers to refresh.
type Broadcaster interface {
	BroadcastSessionEvent(event string, session *models.GameSession)
	BroadcastFundAlert(health models.FundHealth)
}

type NopBroadcaster struct{}

func (NopBroadcaster) BroadcastSessionEvent(string, *models.GameSession) {}
func (NopBroadcaster) BroadcastFundAlert(models.FundHealth)             {}
