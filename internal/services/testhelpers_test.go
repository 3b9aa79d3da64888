package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"bingo-arena-backend/internal/models"
	"bingo-arena-backend/internal/services"
)

// memoryLedgerStore is an in-memory LedgerStore. It round-trips state through
// JSON so tests exercise the same serialization path as the redis store.
type memoryLedgerStore struct {
	mu    sync.Mutex
	blob  []byte
	saves int
}

func (s *memoryLedgerStore) LoadLedger(ctx context.Context) (*models.LedgerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.blob == nil {
		return nil, nil
	}
	var state models.LedgerState
	if err := json.Unmarshal(s.blob, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *memoryLedgerStore) SaveLedger(ctx context.Context, state *models.LedgerState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = data
	s.saves++
	return nil
}

// failingLedgerStore simulates a storage outage.
type failingLedgerStore struct{}

func (failingLedgerStore) LoadLedger(ctx context.Context) (*models.LedgerState, error) {
	return nil, errors.New("storage unavailable")
}

func (failingLedgerStore) SaveLedger(ctx context.Context, state *models.LedgerState) error {
	return errors.New("storage unavailable")
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestLedger(t *testing.T, store services.LedgerStore, testMode bool) *services.FinancialSafetyManager {
	t.Helper()
	if store == nil {
		store = &memoryLedgerStore{}
	}
	return services.NewFinancialSafetyManager(store, quartz.NewMock(t), quietLogger(), testMode)
}

func newTestManager(t *testing.T, ledger *services.FinancialSafetyManager) *services.GameSessionManager {
	t.Helper()
	return services.NewGameSessionManager(
		services.NewConfigRegistry(),
		services.NewBotPlayerGeneratorWithSeed(42),
		ledger,
		nil,
		quartz.NewMock(t),
		quietLogger(),
	)
}

func stubPlayers(n int, fee float64) []models.PlayerStub {
	stubs := make([]models.PlayerStub, 0, n)
	for i := 0; i < n; i++ {
		stubs = append(stubs, models.PlayerStub{
			ID:       models.GeneratePlayerID(),
			Name:     "Player",
			EntryFee: fee,
		})
	}
	return stubs
}
