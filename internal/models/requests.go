package models

// PlayerStub is the caller-supplied roster entry for session creation.
type PlayerStub struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	EntryFee float64 `json:"entry_fee"`
}

type CreateSessionRequest struct {
	GameConfigID string       `json:"game_config_id" binding:"required"`
	Players      []PlayerStub `json:"players"`
}

type DepositRequest struct {
	UserID string  `json:"user_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
	Method string  `json:"method"`
}

type WithdrawRequest struct {
	UserID string  `json:"user_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
