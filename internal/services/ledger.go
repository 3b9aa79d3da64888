package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"bingo-arena-backend/internal/models"
)

var ErrInvalidAmount = fmt.Errorf("amount must be positive")

const (
	// safetyMarginMultiplier requires 150% of estimated payouts to be covered
	// before a game is admitted.
	safetyMarginMultiplier = 0.5
	// minBalanceRatio is the share of the required balance that must remain
	// free after the reserve is taken.
	minBalanceRatio = 0.15

	storeTimeout = 2 * time.Second
)

// LedgerStore is the durable storage boundary for the ledger. Implementations
// persist the full transaction log and balance snapshot as one opaque blob.
type LedgerStore interface {
	LoadLedger(ctx context.Context) (*models.LedgerState, error)
	SaveLedger(ctx context.Context, state *models.LedgerState) error
}

// FinancialSafetyManager owns the append-only transaction log and the balance
// derived from it. The log is the single source of truth; the balance is
// recomputed from the full log on every append so it can never drift.
//
// All mutation happens inside one mutex so concurrent writers observe a
// serialized log. Construct one instance at startup and inject it everywhere.
type FinancialSafetyManager struct {
	mu    sync.Mutex
	store LedgerStore
	clock quartz.Clock
	log   logrus.FieldLogger

	testMode bool

	transactions []*models.FinancialTransaction
	balance      models.FinancialBalance
}

func NewFinancialSafetyManager(store LedgerStore, clock quartz.Clock, logger logrus.FieldLogger, testMode bool) *FinancialSafetyManager {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	m := &FinancialSafetyManager{
		store:    store,
		clock:    clock,
		log:      logger,
		testMode: testMode,
	}
	m.loadState()
	return m
}

// loadState revives the persisted log on startup. A load failure is logged
// and the manager starts from an empty log.
func (m *FinancialSafetyManager) loadState() {
	if m.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	state, err := m.store.LoadLedger(ctx)
	if err != nil {
		m.log.WithError(err).Warn("failed to load ledger state, starting empty")
		return
	}
	if state == nil {
		return
	}

	m.transactions = state.Transactions
	m.recomputeLocked()
}

// RecordTransaction assigns id, timestamp and default status, appends the
// transaction to the log, recomputes the balance from the full log and
// persists the new state. Validation is the caller's responsibility.
func (m *FinancialSafetyManager) RecordTransaction(txn *models.FinancialTransaction) *models.FinancialTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recordLocked(txn)
}

func (m *FinancialSafetyManager) recordLocked(txn *models.FinancialTransaction) *models.FinancialTransaction {
	if txn.ID == "" {
		txn.ID = models.GenerateTransactionID()
	}
	if txn.Status == "" {
		txn.Status = models.TransactionCompleted
	}
	txn.CreatedAt = m.clock.Now()

	m.transactions = append(m.transactions, txn)
	m.recomputeLocked()
	m.persistLocked()

	return txn
}

func (m *FinancialSafetyManager) ProcessDeposit(userID string, amount float64, method string) (*models.FinancialTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: deposit of %.2f", ErrInvalidAmount, amount)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.recordLocked(&models.FinancialTransaction{
		Type:        models.TransactionTypeDeposit,
		Amount:      amount,
		UserID:      userID,
		Description: fmt.Sprintf("Deposit via %s", method),
		Metadata:    map[string]string{"method": method},
	}), nil
}

// ProcessWithdrawal is gated the same way as payouts: a withdrawal that would
// push the available balance negative is not recorded and returns nil.
func (m *FinancialSafetyManager) ProcessWithdrawal(userID string, amount float64) (*models.FinancialTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: withdrawal of %.2f", ErrInvalidAmount, amount)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.balance.Available < amount {
		m.log.WithFields(logrus.Fields{
			"user_id":   userID,
			"amount":    amount,
			"available": m.balance.Available,
		}).Warn("withdrawal refused: insufficient available balance")
		return nil, nil
	}

	return m.recordLocked(&models.FinancialTransaction{
		Type:        models.TransactionTypeWithdrawal,
		Amount:      amount,
		UserID:      userID,
		Description: "Withdrawal",
	}), nil
}

// ProcessEntryFee records unconditionally; the player already holds the
// balance client-side so entry fees are always collectible.
func (m *FinancialSafetyManager) ProcessEntryFee(userID, gameID string, amount float64) *models.FinancialTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.recordLocked(&models.FinancialTransaction{
		Type:        models.TransactionTypeEntryFee,
		Amount:      amount,
		UserID:      userID,
		GameID:      gameID,
		Description: fmt.Sprintf("Entry fee for game %s", gameID),
	})
}

// ProcessPrizePayout returns nil without recording anything when the available
// balance cannot cover the payout. Callers must branch on nil.
func (m *FinancialSafetyManager) ProcessPrizePayout(userID, gameID string, amount float64) *models.FinancialTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.balance.Available < amount {
		m.log.WithFields(logrus.Fields{
			"user_id":   userID,
			"game_id":   gameID,
			"amount":    amount,
			"available": m.balance.Available,
		}).Warn("prize payout refused: insufficient available balance")
		return nil
	}

	return m.recordLocked(&models.FinancialTransaction{
		Type:        models.TransactionTypePrizePayout,
		Amount:      amount,
		UserID:      userID,
		GameID:      gameID,
		Description: fmt.Sprintf("Prize payout for game %s", gameID),
	})
}

func (m *FinancialSafetyManager) ProcessPlatformFee(gameID string, amount float64) *models.FinancialTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.recordLocked(&models.FinancialTransaction{
		Type:        models.TransactionTypePlatformFee,
		Amount:      amount,
		GameID:      gameID,
		Description: fmt.Sprintf("Platform fee for game %s", gameID),
	})
}

// CanStartGame is the admission-control decision. Two thresholds must both
// pass: the available balance covers the required reserve, and the balance
// left after reserving still exceeds minBalanceRatio of the reserve.
func (m *FinancialSafetyManager) CanStartGame(cfg models.GameConfig, estimatedPlayers int) models.StartCheck {
	m.mu.Lock()
	defer m.mu.Unlock()

	estimated := estimatedPlayers
	if estimated < cfg.MinPlayers {
		estimated = cfg.MinPlayers
	}

	estimatedPayouts := float64(estimated) * cfg.EntryFee * payoutPoolRate
	required := estimatedPayouts * (1 + safetyMarginMultiplier)

	check := models.StartCheck{
		RequiredBalance:  required,
		AvailableBalance: m.balance.Available,
		EstimatedPayouts: estimatedPayouts,
		PlatformFee:      float64(estimated) * cfg.EntryFee * platformCutRate,
		SafetyMargin:     estimatedPayouts * safetyMarginMultiplier,
	}

	if m.testMode {
		check.CanStart = true
		check.Reason = "test mode: admission checks bypassed"
		return check
	}

	if m.balance.Available < required {
		check.Reason = fmt.Sprintf("available balance %s below required %s",
			models.FormatCurrency(m.balance.Available), models.FormatCurrency(required))
		return check
	}

	remaining := m.balance.Available - required
	if remaining < required*minBalanceRatio {
		check.Reason = fmt.Sprintf("reserving %s would leave only %s free, below the %.0f%% minimum",
			models.FormatCurrency(required), models.FormatCurrency(remaining), minBalanceRatio*100)
		return check
	}

	check.CanStart = true
	return check
}

// EmergencyFundCheck classifies financial health from the ratio of available
// balance to entry fees collected. Purely advisory.
func (m *FinancialSafetyManager) EmergencyFundCheck() models.FundHealth {
	m.mu.Lock()
	defer m.mu.Unlock()

	health := models.FundHealth{
		Available:      m.balance.Available,
		TotalEntryFees: m.balance.EntryFees,
	}

	if m.balance.EntryFees == 0 {
		health.Level = models.FundHealthLow
		health.Recommendation = "No entry fees collected yet, no action needed."
		return health
	}

	health.Ratio = m.balance.Available / m.balance.EntryFees

	switch {
	case health.Ratio < 0.25:
		health.Level = models.FundHealthCritical
		health.Recommendation = "Halt new game sessions until operator funds are deposited."
	case health.Ratio < 0.5:
		health.Level = models.FundHealthHigh
		health.Recommendation = "Pause high-stakes games and top up operator funds."
	case health.Ratio < 1.0:
		health.Level = models.FundHealthMedium
		health.Recommendation = "Monitor payout volume and consider topping up the float."
	default:
		health.Level = models.FundHealthLow
		health.Recommendation = "Fund levels healthy, no action needed."
	}

	return health
}

// MarkTransactionStatus is the only permitted mutation of a recorded
// transaction. A status change re-derives the balance and persists.
func (m *FinancialSafetyManager) MarkTransactionStatus(id string, status models.TransactionStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, txn := range m.transactions {
		if txn.ID == id {
			txn.Status = status
			m.recomputeLocked()
			m.persistLocked()
			return nil
		}
	}
	return fmt.Errorf("transaction not found: %s", id)
}

func (m *FinancialSafetyManager) Balance() models.FinancialBalance {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balance
}

// Transactions returns the most recent transactions, newest first.
func (m *FinancialSafetyManager) Transactions(limit int) []*models.FinancialTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 || limit > len(m.transactions) {
		limit = len(m.transactions)
	}

	out := make([]*models.FinancialTransaction, 0, limit)
	for i := len(m.transactions) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.transactions[i])
	}
	return out
}

// Reconcile recomputes the balance from scratch and compares it against the
// stored snapshot. Returns true when they agree. With recompute-on-every-write
// a mismatch indicates memory corruption or a bug; it is logged either way.
func (m *FinancialSafetyManager) Reconcile() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := m.balance
	m.recomputeLocked()

	if stored.Available != m.balance.Available ||
		stored.Deposits != m.balance.Deposits ||
		stored.Withdrawals != m.balance.Withdrawals ||
		stored.EntryFees != m.balance.EntryFees ||
		stored.PrizePayouts != m.balance.PrizePayouts ||
		stored.PlatformFees != m.balance.PlatformFees {
		m.log.WithFields(logrus.Fields{
			"stored_available":     stored.Available,
			"recomputed_available": m.balance.Available,
		}).Error("ledger balance drift detected, snapshot replaced by recompute")
		m.persistLocked()
		return false
	}
	return true
}

// recomputeLocked derives the balance from the full log. Only completed
// transactions contribute.
func (m *FinancialSafetyManager) recomputeLocked() {
	balance := models.FinancialBalance{}

	for _, txn := range m.transactions {
		if txn.Status != models.TransactionCompleted {
			continue
		}
		switch txn.Type {
		case models.TransactionTypeDeposit:
			balance.Deposits += txn.Amount
		case models.TransactionTypeWithdrawal:
			balance.Withdrawals += txn.Amount
		case models.TransactionTypeEntryFee:
			balance.EntryFees += txn.Amount
		case models.TransactionTypePrizePayout:
			balance.PrizePayouts += txn.Amount
		case models.TransactionTypePlatformFee:
			balance.PlatformFees += txn.Amount
		}
	}

	balance.Available = balance.Deposits + balance.EntryFees - balance.Withdrawals - balance.PrizePayouts
	balance.ReservedForPayouts = balance.EntryFees * payoutPoolRate
	balance.PlatformProfit = balance.EntryFees * platformCutRate
	balance.UpdatedAt = m.clock.Now()

	m.balance = balance
}

// persistLocked writes the full state to durable storage. A save failure is
// logged and the manager keeps serving from memory.
func (m *FinancialSafetyManager) persistLocked() {
	if m.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	state := &models.LedgerState{
		Transactions: m.transactions,
		Balance:      m.balance,
	}
	if err := m.store.SaveLedger(ctx, state); err != nil {
		m.log.WithError(err).Warn("failed to persist ledger state, continuing on in-memory state")
	}
}
