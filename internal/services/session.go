package services

import (
	"context"
	"sort"
	"sync"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"bingo-arena-backend/internal/models"
)

// SessionStore persists session snapshots for reporting. A nil store keeps
// sessions in memory only.
type SessionStore interface {
	SaveGameSession(ctx context.Context, session *models.GameSession) error
}

// GameSessionManager owns the registry of in-flight sessions and orchestrates
// the waiting -> playing -> finished lifecycle. Sessions accumulate for
// reporting and are never deleted.
type GameSessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*models.GameSession

	registry *ConfigRegistry
	bots     *BotPlayerGenerator
	ledger   *FinancialSafetyManager
	store    SessionStore
	clock    quartz.Clock
	log      logrus.FieldLogger

	ranking     RankingStrategy
	broadcaster Broadcaster
}

func NewGameSessionManager(registry *ConfigRegistry, bots *BotPlayerGenerator, ledger *FinancialSafetyManager, store SessionStore, clock quartz.Clock, logger logrus.FieldLogger) *GameSessionManager {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &GameSessionManager{
		sessions:    make(map[string]*models.GameSession),
		registry:    registry,
		bots:        bots,
		ledger:      ledger,
		store:       store,
		clock:       clock,
		log:         logger,
		ranking:     ScoreRanking{},
		broadcaster: NopBroadcaster{},
	}
}

func (m *GameSessionManager) SetRankingStrategy(strategy RankingStrategy) {
	if strategy != nil {
		m.ranking = strategy
	}
}

func (m *GameSessionManager) SetBroadcaster(b Broadcaster) {
	if b != nil {
		m.broadcaster = b
	}
}

// CreateGameSession builds a roster from the supplied real players, pads with
// bots up to the config minimum and truncates to the maximum with bots dropped
// first. The prize distribution is computed once here; the advertised pool is
// fixed even if participation later changes. Entry fees are recorded into the
// ledger for every participant.
func (m *GameSessionManager) CreateGameSession(configID string, realPlayers []models.PlayerStub) (*models.GameSession, error) {
	cfg, err := m.registry.Get(configID)
	if err != nil {
		return nil, err
	}

	players := make([]models.Player, 0, len(realPlayers))
	for _, stub := range realPlayers {
		fee := stub.EntryFee
		if fee == 0 {
			fee = cfg.EntryFee
		}
		players = append(players, models.Player{
			ID:           stub.ID,
			Name:         stub.Name,
			EntryFeePaid: fee,
		})
	}

	if shortfall := cfg.MinPlayers - len(players); shortfall > 0 {
		players = append(players, m.bots.GenerateBotPlayers(shortfall, cfg)...)
	}
	players = truncateRoster(players, cfg.MaxPlayers)

	session := &models.GameSession{
		ID:        models.GenerateSessionID(),
		Config:    cfg,
		Players:   players,
		Prizes:    CalculatePrizeDistribution(players, cfg),
		Status:    models.SessionWaiting,
		CreatedAt: m.clock.Now(),
	}

	if m.ledger != nil {
		for _, p := range session.Players {
			m.ledger.ProcessEntryFee(p.ID, session.ID, p.EntryFeePaid)
		}
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	m.persist(session)
	m.broadcaster.BroadcastSessionEvent("session_created", session)

	return session, nil
}

// truncateRoster drops participants beyond max, bots first. Real players are
// only dropped once no bots remain to drop.
func truncateRoster(players []models.Player, max int) []models.Player {
	if max <= 0 || len(players) <= max {
		return players
	}

	real := make([]models.Player, 0, len(players))
	bots := make([]models.Player, 0, len(players))
	for _, p := range players {
		if p.IsBot {
			bots = append(bots, p)
		} else {
			real = append(real, p)
		}
	}

	if len(real) >= max {
		return real[:max]
	}
	return append(real, bots[:max-len(real)]...)
}

// StartGame transitions a waiting session to playing after admission control
// passes. Unknown ids (and sessions past waiting) return a nil session and a
// nil check: a benign no-op the caller must recognize. A failed admission
// check leaves the session waiting and returns the check.
func (m *GameSessionManager) StartGame(sessionID string) (*models.GameSession, *models.StartCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionID]
	if !ok || session.Status != models.SessionWaiting {
		return nil, nil, nil
	}

	if m.ledger != nil {
		check := m.ledger.CanStartGame(session.Config, len(session.Players))
		if !check.CanStart {
			m.log.WithFields(logrus.Fields{
				"session_id": sessionID,
				"reason":     check.Reason,
			}).Warn("game start refused by admission control")
			return nil, &check, nil
		}

		session.Status = models.SessionPlaying
		session.StartedAt = m.clock.Now()
		m.persist(session)
		m.broadcaster.BroadcastSessionEvent("session_started", session)
		return session, &check, nil
	}

	session.Status = models.SessionPlaying
	session.StartedAt = m.clock.Now()
	m.persist(session)
	m.broadcaster.BroadcastSessionEvent("session_started", session)
	return session, nil, nil
}

// FinishGame transitions a playing session to finished, ranks the roster,
// assigns prizes and records payout and platform fee transactions. Unknown
// ids return nil, same contract as StartGame.
func (m *GameSessionManager) FinishGame(sessionID string) (*models.GameSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionID]
	if !ok || session.Status != models.SessionPlaying {
		return nil, nil
	}

	session.Players = DistributePrizes(session.Players, session.Prizes, m.ranking)
	session.Status = models.SessionFinished
	session.EndedAt = m.clock.Now()

	if m.ledger != nil {
		for _, p := range session.Players {
			if p.Prize <= 0 {
				continue
			}
			if txn := m.ledger.ProcessPrizePayout(p.ID, session.ID, p.Prize); txn == nil {
				m.log.WithFields(logrus.Fields{
					"session_id": sessionID,
					"player_id":  p.ID,
					"prize":      p.Prize,
				}).Warn("prize payout skipped: ledger refused")
			}
		}
		m.ledger.ProcessPlatformFee(session.ID, session.Prizes.PlatformCut)
	}

	m.persist(session)
	m.broadcaster.BroadcastSessionEvent("session_finished", session)

	return session, nil
}

// GetSession returns nil for unknown ids.
func (m *GameSessionManager) GetSession(sessionID string) *models.GameSession {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[sessionID]
}

// ListSessions returns all sessions ordered by creation time.
func (m *GameSessionManager) ListSessions() []*models.GameSession {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessions := make([]*models.GameSession, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
	return sessions
}

func (m *GameSessionManager) persist(session *models.GameSession) {
	if m.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := m.store.SaveGameSession(ctx, session); err != nil {
		m.log.WithError(err).WithField("session_id", session.ID).
			Warn("failed to persist game session, continuing on in-memory state")
	}
}
