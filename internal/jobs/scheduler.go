// Package jobs runs the background cron tasks: periodic ledger reconciliation
// and the emergency fund check.
package jobs

import (
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"bingo-arena-backend/internal/models"
	"bingo-arena-backend/internal/services"
)

type Scheduler struct {
	cron        *cron.Cron
	ledger      *services.FinancialSafetyManager
	broadcaster services.Broadcaster
}

func NewScheduler(ledger *services.FinancialSafetyManager, broadcaster services.Broadcaster) *Scheduler {
	if broadcaster == nil {
		broadcaster = services.NopBroadcaster{}
	}
	return &Scheduler{
		cron:        cron.New(),
		ledger:      ledger,
		broadcaster: broadcaster,
	}
}

func (s *Scheduler) Start() {
	// Consistency check: recompute the balance from the full log and compare
	// against the stored snapshot.
	s.cron.AddFunc("@every 5m", func() {
		if !s.ledger.Reconcile() {
			log.Error("[CRON] ledger reconciliation found drift")
		}
	})

	s.cron.AddFunc("@every 15m", func() {
		health := s.ledger.EmergencyFundCheck()
		if health.Level == models.FundHealthHigh || health.Level == models.FundHealthCritical {
			log.WithFields(log.Fields{
				"level": health.Level,
				"ratio": health.Ratio,
			}).Warn("[CRON] emergency fund check raised an alert")
			s.broadcaster.BroadcastFundAlert(health)
		}
	})

	s.cron.Start()
	log.Info("Background scheduler started")
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Background scheduler stopped")
}
