package services

import (
	"math/rand"
	"sort"

	"bingo-arena-backend/internal/models"
)

const (
	platformCutRate = 0.10
	payoutPoolRate  = 0.90

	firstPlaceRate  = 0.60
	secondPlaceRate = 0.25
	thirdPlaceRate  = 0.15
)

// CalculatePrizeDistribution computes the fixed pool split for a roster. Pure
// function; an empty roster yields an all-zero distribution.
func CalculatePrizeDistribution(players []models.Player, cfg models.GameConfig) models.PrizeDistribution {
	total := 0.0
	for _, p := range players {
		total += p.EntryFeePaid
	}

	payoutPool := total * payoutPoolRate

	return models.PrizeDistribution{
		TotalEntryFees: total,
		PlatformCut:    total * platformCutRate,
		PayoutPool:     payoutPool,
		FirstPlace:     payoutPool * firstPlaceRate,
		SecondPlace:    payoutPool * secondPlaceRate,
		ThirdPlace:     payoutPool * thirdPlaceRate,
	}
}

// RankingStrategy orders a roster into finishing order, best first. It must
// not mutate its input.
type RankingStrategy interface {
	Rank(players []models.Player) []models.Player
}

// ScoreRanking is the default strategy: game score descending, ties broken by
// join order.
type ScoreRanking struct{}

func (ScoreRanking) Rank(players []models.Player) []models.Player {
	ranked := make([]models.Player, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// ShuffleRanking assigns finishing order at random. Used for exhibition play
// where no score is tracked.
type ShuffleRanking struct {
	Rng *rand.Rand
}

func (s ShuffleRanking) Rank(players []models.Player) []models.Player {
	ranked := make([]models.Player, len(players))
	copy(ranked, players)
	rng := s.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(int64(len(ranked))))
	}
	rng.Shuffle(len(ranked), func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	})
	return ranked
}

// DistributePrizes assigns ranks in the given strategy's finishing order and
// pays the top three tiers from the distribution. Returns a new slice; the
// distribution itself is never mutated.
func DistributePrizes(players []models.Player, dist models.PrizeDistribution, strategy RankingStrategy) []models.Player {
	if strategy == nil {
		strategy = ScoreRanking{}
	}

	ranked := strategy.Rank(players)
	tiers := []float64{dist.FirstPlace, dist.SecondPlace, dist.ThirdPlace}

	for i := range ranked {
		ranked[i].Rank = i + 1
		if i < len(tiers) {
			ranked[i].Prize = tiers[i]
		} else {
			ranked[i].Prize = 0
		}
	}

	return ranked
}
