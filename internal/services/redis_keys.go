package services

import "time"

const (
	KeyLedgerState      = "ledger:state"
	KeyGameSession      = "game:session:%s"
	KeySessionsByCreate = "sessions:by_created"

	TTLGameSession = 30 * 24 * time.Hour // 30 days

	MaxIndexedSessions = 1000
)
