package models

// Player is a session participant, real or synthetic. Rank and Prize stay at
// their zero values until the session finishes.
type Player struct {
	ID           string  `json:"id" redis:"id"`
	Name         string  `json:"name" redis:"name"`
	IsBot        bool    `json:"is_bot" redis:"is_bot"`
	EntryFeePaid float64 `json:"entry_fee_paid" redis:"entry_fee_paid"`
	Score        float64 `json:"score" redis:"score"`
	Rank         int     `json:"rank,omitempty" redis:"rank"`
	Prize        float64 `json:"prize,omitempty" redis:"prize"`
}
