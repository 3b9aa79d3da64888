package models

// PrizeDistribution is the fixed pool split for one session, computed once at
// creation time. platform cut + payout pool always equals total entry fees,
// and the three tiers always sum to the payout pool.
type PrizeDistribution struct {
	TotalEntryFees float64 `json:"total_entry_fees" redis:"total_entry_fees"`
	PlatformCut    float64 `json:"platform_cut" redis:"platform_cut"`
	PayoutPool     float64 `json:"payout_pool" redis:"payout_pool"`
	FirstPlace     float64 `json:"first_place" redis:"first_place"`
	SecondPlace    float64 `json:"second_place" redis:"second_place"`
	ThirdPlace     float64 `json:"third_place" redis:"third_place"`
}
