package models

import "time"

type TransactionType string

const (
	TransactionTypeDeposit     TransactionType = "deposit"
	TransactionTypeWithdrawal  TransactionType = "withdrawal"
	TransactionTypeEntryFee    TransactionType = "entry_fee"
	TransactionTypePrizePayout TransactionType = "prize_payout"
	TransactionTypePlatformFee TransactionType = "platform_fee"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionCancelled TransactionStatus = "cancelled"
)

// FinancialTransaction is one entry in the append-only ledger log. Immutable
// once recorded except for status transitions.
type FinancialTransaction struct {
	ID          string            `json:"id" redis:"id"`
	Type        TransactionType   `json:"type" redis:"type"`
	Status      TransactionStatus `json:"status" redis:"status"`
	Amount      float64           `json:"amount" redis:"amount"`
	UserID      string            `json:"user_id,omitempty" redis:"user_id"`
	GameID      string            `json:"game_id,omitempty" redis:"game_id"`
	Description string            `json:"description" redis:"description"`
	Metadata    map[string]string `json:"metadata,omitempty" redis:"metadata"`
	CreatedAt   time.Time         `json:"created_at" redis:"created_at"`
}

// FinancialBalance is a pure projection of the transaction log. Only completed
// transactions contribute; it is recomputed from scratch on every append.
type FinancialBalance struct {
	Deposits     float64 `json:"deposits" redis:"deposits"`
	Withdrawals  float64 `json:"withdrawals" redis:"withdrawals"`
	EntryFees    float64 `json:"entry_fees" redis:"entry_fees"`
	PrizePayouts float64 `json:"prize_payouts" redis:"prize_payouts"`
	PlatformFees float64 `json:"platform_fees" redis:"platform_fees"`

	Available          float64 `json:"available" redis:"available"`
	ReservedForPayouts float64 `json:"reserved_for_payouts" redis:"reserved_for_payouts"`
	PlatformProfit     float64 `json:"platform_profit" redis:"platform_profit"`

	UpdatedAt time.Time `json:"updated_at" redis:"updated_at"`
}

// LedgerState is the durable snapshot written after every ledger mutation.
type LedgerState struct {
	Transactions []*FinancialTransaction `json:"transactions"`
	Balance      FinancialBalance        `json:"balance"`
}

// StartCheck is the admission-control decision for starting a game session.
type StartCheck struct {
	CanStart         bool    `json:"can_start"`
	Reason           string  `json:"reason,omitempty"`
	RequiredBalance  float64 `json:"required_balance"`
	AvailableBalance float64 `json:"available_balance"`
	EstimatedPayouts float64 `json:"estimated_payouts"`
	PlatformFee      float64 `json:"platform_fee"`
	SafetyMargin     float64 `json:"safety_margin"`
}

type FundHealthLevel string

const (
	FundHealthLow      FundHealthLevel = "low"
	FundHealthMedium   FundHealthLevel = "medium"
	FundHealthHigh     FundHealthLevel = "high"
	FundHealthCritical FundHealthLevel = "critical"
)

// FundHealth is the advisory output of the emergency fund check. It never
// blocks operations.
type FundHealth struct {
	Level          FundHealthLevel `json:"level"`
	Ratio          float64         `json:"ratio"`
	Available      float64         `json:"available"`
	TotalEntryFees float64         `json:"total_entry_fees"`
	Recommendation string          `json:"recommendation"`
}
