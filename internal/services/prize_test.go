package services_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bingo-arena-backend/internal/models"
	"bingo-arena-backend/internal/services"
)

func rosterWithFees(fees ...float64) []models.Player {
	players := make([]models.Player, 0, len(fees))
	for i, fee := range fees {
		players = append(players, models.Player{
			ID:           models.GeneratePlayerID(),
			Name:         "P",
			EntryFeePaid: fee,
			Score:        float64(i),
		})
	}
	return players
}

func TestCalculatePrizeDistributionSpeedBingo(t *testing.T) {
	cfg := models.GameConfig{ID: "speed-bingo", EntryFee: 5, MinPlayers: 3, MaxPlayers: 20}
	players := rosterWithFees(5, 5, 5)

	dist := services.CalculatePrizeDistribution(players, cfg)

	assert.InDelta(t, 15.00, dist.TotalEntryFees, 1e-9)
	assert.InDelta(t, 1.50, dist.PlatformCut, 1e-9)
	assert.InDelta(t, 13.50, dist.PayoutPool, 1e-9)
	assert.InDelta(t, 8.10, dist.FirstPlace, 1e-9)
	assert.InDelta(t, 3.375, dist.SecondPlace, 1e-9)
	assert.InDelta(t, 2.025, dist.ThirdPlace, 1e-9)
}

func TestCalculatePrizeDistributionInvariants(t *testing.T) {
	rosters := [][]float64{
		{},
		{10},
		{5, 5, 5, 5},
		{20, 20, 20, 20, 20, 20, 20},
		{0.01, 0.02, 0.03},
		{33.33, 66.67, 100},
	}

	for _, fees := range rosters {
		players := rosterWithFees(fees...)
		dist := services.CalculatePrizeDistribution(players, models.GameConfig{})

		total := 0.0
		for _, f := range fees {
			total += f
		}

		assert.InDelta(t, total, dist.PlatformCut+dist.PayoutPool, 1e-9)
		assert.InDelta(t, dist.PayoutPool, dist.FirstPlace+dist.SecondPlace+dist.ThirdPlace, 1e-9)
		assert.GreaterOrEqual(t, dist.FirstPlace, 0.0)
		assert.GreaterOrEqual(t, dist.SecondPlace, 0.0)
		assert.GreaterOrEqual(t, dist.ThirdPlace, 0.0)
	}
}

func TestCalculatePrizeDistributionEmptyRoster(t *testing.T) {
	dist := services.CalculatePrizeDistribution(nil, models.GameConfig{EntryFee: 5})
	assert.Equal(t, models.PrizeDistribution{}, dist)
}

func TestDistributePrizesScoreRanking(t *testing.T) {
	players := rosterWithFees(10, 10, 10, 10)
	players[0].Score = 12
	players[1].Score = 99
	players[2].Score = 45
	players[3].Score = 3

	dist := services.CalculatePrizeDistribution(players, models.GameConfig{})
	ranked := services.DistributePrizes(players, dist, services.ScoreRanking{})

	require.Len(t, ranked, 4)
	assert.Equal(t, players[1].ID, ranked[0].ID)
	assert.Equal(t, players[2].ID, ranked[1].ID)
	assert.Equal(t, players[0].ID, ranked[2].ID)
	assert.Equal(t, players[3].ID, ranked[3].ID)

	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 4, ranked[3].Rank)
	assert.InDelta(t, dist.FirstPlace, ranked[0].Prize, 1e-9)
	assert.InDelta(t, dist.SecondPlace, ranked[1].Prize, 1e-9)
	assert.InDelta(t, dist.ThirdPlace, ranked[2].Prize, 1e-9)
	assert.Zero(t, ranked[3].Prize)

	// Input roster is not mutated.
	for _, p := range players {
		assert.Zero(t, p.Rank)
		assert.Zero(t, p.Prize)
	}
}

func TestDistributePrizesTieBreakByJoinOrder(t *testing.T) {
	players := rosterWithFees(5, 5, 5)
	players[0].Score = 10
	players[1].Score = 10
	players[2].Score = 10

	dist := services.CalculatePrizeDistribution(players, models.GameConfig{})
	ranked := services.DistributePrizes(players, dist, services.ScoreRanking{})

	assert.Equal(t, players[0].ID, ranked[0].ID)
	assert.Equal(t, players[1].ID, ranked[1].ID)
	assert.Equal(t, players[2].ID, ranked[2].ID)
}

func TestDistributePrizesIdempotentForFixedOrder(t *testing.T) {
	players := rosterWithFees(10, 10, 10, 10, 10)
	for i := range players {
		players[i].Score = float64(100 - i)
	}

	dist := services.CalculatePrizeDistribution(players, models.GameConfig{})
	first := services.DistributePrizes(players, dist, services.ScoreRanking{})
	second := services.DistributePrizes(first, dist, services.ScoreRanking{})

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Rank, second[i].Rank)
		assert.InDelta(t, first[i].Prize, second[i].Prize, 1e-9)
	}
}

func TestDistributePrizesShuffleRankingPreservesPool(t *testing.T) {
	players := rosterWithFees(20, 20, 20, 20, 20, 20)
	dist := services.CalculatePrizeDistribution(players, models.GameConfig{})

	ranked := services.DistributePrizes(players, dist, services.ShuffleRanking{Rng: rand.New(rand.NewSource(7))})

	paid := 0.0
	for _, p := range ranked {
		paid += p.Prize
	}
	assert.InDelta(t, dist.PayoutPool, paid, 1e-9)
}
